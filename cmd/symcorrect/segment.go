package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createSegmentCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "segment <text>",
		Short: "Split a run-on phrase into its most probable words",
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

			result, err := engine.WordSegmentation(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("segmented: %s\n", result.SegmentedString)
			fmt.Printf("corrected: %s\n", result.CorrectedString)
			fmt.Printf("distance:  %d\n", result.DistanceSum)
			fmt.Printf("log-prob:  %g\n", result.ProbabilityLogSum)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a symcorrect.toml config file")
	return cmd
}
