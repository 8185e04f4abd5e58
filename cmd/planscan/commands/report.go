// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Planscan - Planscan reads the planning and roadmap documents of a repository and reports how far along the plan is.
It parses freeform markdown checklists into phases, stages and steps, and computes per-phase and overall completion.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bartekus/planscan/cmd/planscan/internal/clierr"
	"github.com/bartekus/planscan/internal/projection"
)

// NewReportCommand returns the `planscan report` command.
func NewReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [root]",
		Short: "Write a markdown documentation progress report",
		Long: `Generate a deterministic markdown report of the project's documentation
progress and write it to docs/__generated__/documentation-progress.md.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputPath, err := cmd.Flags().GetString("output")
			if err != nil {
				return clierr.Usagef("report: get output flag: %v", err)
			}

			root, err := resolveRoot(args)
			if err != nil {
				return err
			}
			if !filepath.IsAbs(outputPath) {
				outputPath = filepath.Join(root, outputPath)
			}

			doc, err := newLoader(cmd, newLogger(cmd)).Load(cmd.Context(), root)
			if err != nil {
				return clierr.Wrap(clierr.CodeFailure, "report", err)
			}

			markdown := projection.RenderStatusReport(doc)
			if err := projection.AtomicWrite(outputPath, []byte(markdown)); err != nil {
				return clierr.Wrapf(clierr.CodeFailure, err, "report: write output %q", outputPath)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Generated documentation report at %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().String(
		"output",
		projection.DefaultReportPath,
		"path to write the generated report (relative to the project root)",
	)

	return cmd
}
