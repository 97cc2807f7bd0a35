package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"symcorrect/pkg/verbosity"
)

func createLookupCmd() *cobra.Command {
	var configPath string
	var distance int
	var verbosityFlag string

	cmd := &cobra.Command{
		Use:   "lookup <term>",
		Short: "Look up corrections for a single term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			engine, err := buildEngine(cfg)
			if err != nil {
				return err
			}

			v, err := verbosity.Parse(verbosityFlag)
			if err != nil {
				return err
			}
			if distance < 0 {
				distance = engine.MaxDictionaryEditDistance()
			}

			suggestions, err := engine.Lookup(args[0], v, distance)
			if err != nil {
				return err
			}
			for _, s := range suggestions {
				fmt.Printf("%s\t%d\t%d\n", s.Term, s.Distance, s.Count)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a symcorrect.toml config file")
	cmd.Flags().IntVar(&distance, "distance", -1, "maximum edit distance (defaults to the index's configured maximum)")
	cmd.Flags().StringVar(&verbosityFlag, "verbosity", "top", "top, closest, or all")
	return cmd
}
