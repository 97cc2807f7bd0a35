package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createCorrectCmd() *cobra.Command {
	var configPath string
	var distance int

	cmd := &cobra.Command{
		Use:   "correct <text>",
		Short: "Run compound lookup correction over a phrase",
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
			if distance < 0 {
				distance = engine.MaxDictionaryEditDistance()
			}

			result, err := engine.LookupCompound(args[0], distance)
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%d\t%d\n", result.Term, result.Distance, result.Count)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a symcorrect.toml config file")
	cmd.Flags().IntVar(&distance, "distance", -1, "maximum edit distance (defaults to the index's configured maximum)")
	return cmd
}
