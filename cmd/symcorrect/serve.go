package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"symcorrect/internal/httpapi"
)

func createServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the index and serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			engine, err := buildEngine(cfg)
			if err != nil {
				return err
			}

			router := httpapi.NewRouter(engine, buildStore(cfg))
			logger.Info("listening", "addr", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a symcorrect.toml config file")
	return cmd
}
