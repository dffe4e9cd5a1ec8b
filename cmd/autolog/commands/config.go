// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/autolog/internal/app"
	"github.com/MKhiriev/autolog/internal/notice"
	"github.com/MKhiriev/autolog/models"
	"github.com/spf13/cobra"
)

func newConfigCommand(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "config [PROJECT_ROOT]",
		Short: "Resolve and print the project configuration",
		Long: `Resolve the autolog configuration of PROJECT_ROOT (default: current
directory), publish AUTOLOG_PROJECT_NAME and AUTOLOG_RUN_LOCALLY, validate
AUTOLOG_API_KEY unless the project runs locally, and print the result.

The project's .env file is loaded after the tool settings are built, so it
can provide AUTOLOG_API_KEY but not AUTOLOG_API_URL, AUTOLOG_API_TIMEOUT,
AUTOLOG_LOG_LEVEL or AUTOLOG_MANIFEST_DIALECT. Set those in the process
environment or with the matching flags.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			// keep stdout parseable in JSON mode
			noticeOut := cmd.OutOrStdout()
			if jsonOutput {
				noticeOut = cmd.ErrOrStderr()
			}

			a, err := app.NewApp(opts.cfg, opts.store, notice.NewConsole(noticeOut, true), opts.log)
			if err != nil {
				return err
			}

			resolved, err := a.Configure(cmd.Context(), root)
			if err != nil {
				return fmt.Errorf("configure %s: %w", root, err)
			}

			return printConfig(cmd.OutOrStdout(), resolved, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	return cmd
}

func printConfig(w io.Writer, cfg models.ResolvedConfig, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	}

	_, err := fmt.Fprintf(w, "changelog_name: %s\nlocal: %t\n", cfg.ChangelogName, cfg.Local)
	return err
}
