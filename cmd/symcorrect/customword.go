package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func createCustomWordCmd() *cobra.Command {
	var configPath string

	customWordCmd := &cobra.Command{
		Use:   "custom-word",
		Short: "Manage the custom-word overlay directly against Redis",
	}

	customWordCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a symcorrect.toml config file")
	customWordCmd.AddCommand(
		createCustomWordAddCmd(&configPath),
		createCustomWordRemoveCmd(&configPath),
	)
	return customWordCmd
}

func createCustomWordAddCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <word>",
		Short: "Add a word to the custom dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			store := buildStore(cfg)
			if store == nil {
				return fmt.Errorf("no redis address configured")
			}
			if err := store.Add(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("added %q\n", args[0])
			return nil
		},
	}
}

func createCustomWordRemoveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <word>",
		Short: "Remove a word from the custom dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			store := buildStore(cfg)
			if store == nil {
				return fmt.Errorf("no redis address configured")
			}
			if err := store.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("removed %q\n", args[0])
			return nil
		},
	}
}
