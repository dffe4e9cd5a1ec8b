// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package commands implements the autolog command tree.
package commands

import (
	"context"

	"github.com/MKhiriev/autolog/internal/config"
	"github.com/MKhiriev/autolog/internal/environ"
	"github.com/MKhiriev/autolog/internal/logger"
	"github.com/MKhiriev/autolog/models"
	"github.com/spf13/cobra"
)

// rootOptions is populated by the root command before any subcommand runs.
type rootOptions struct {
	store environ.Store
	cfg   *config.StructuredConfig
	log   *logger.Logger
}

// Execute runs the root command against the process environment.
func Execute(ctx context.Context, info models.AppBuildInfo) error {
	return newRootCommand(info, environ.Process()).ExecuteContext(ctx)
}

func newRootCommand(info models.AppBuildInfo, store environ.Store) *cobra.Command {
	opts := &rootOptions{store: store}

	rootCmd := &cobra.Command{
		Use:   "autolog",
		Short: "autolog - changelog automation",
		Long: `autolog keeps a project's changelog up to date.

Project settings are read from the [tool.autolog] section of pyproject.toml
and from a .env file in the project root.`,
		Version:      info.String(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetStructuredConfig(cmd.Flags())
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.log = logger.NewLogger("autolog", cfg.LogLevel())
			return nil
		},
	}

	config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(newConfigCommand(opts))

	return rootCmd
}
