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
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/bartekus/planscan/cmd/planscan/internal/clierr"
	"github.com/bartekus/planscan/internal/projection"
	"github.com/bartekus/planscan/internal/roadmap"
	"github.com/bartekus/planscan/internal/state"
)

// NewParseCommand returns the `planscan parse` command.
func NewParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [root]",
		Short: "Parse a project's planning documents and print progress",
		Long: `Discover the planning documents of a project, parse their phases, stages
and checklist steps, and print the aggregated documentation.

With --save the result is stored as the project's last scan and the change
since the previous scan is reported on stderr.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return clierr.Usagef("parse: get format flag: %v", err)
			}
			if err := checkFormat("parse", format); err != nil {
				return err
			}
			save, err := cmd.Flags().GetBool("save")
			if err != nil {
				return clierr.Usagef("parse: get save flag: %v", err)
			}

			root, err := resolveRoot(args)
			if err != nil {
				return err
			}
			log := newLogger(cmd)
			loader := newLoader(cmd, log)

			doc, err := loader.Load(cmd.Context(), root)
			if err != nil {
				return clierr.Wrap(clierr.CodeFailure, "parse", err)
			}

			if err := writeDocumentation(cmd.OutOrStdout(), format, doc); err != nil {
				return clierr.Wrap(clierr.CodeFailure, "parse: write output", err)
			}

			if !save {
				return nil
			}
			cfg, err := loader.Config(root)
			if err != nil {
				return clierr.Wrap(clierr.CodeFailure, "parse: load config", err)
			}
			store := state.NewStore(cfg.ResolveStateDir(root))
			prev, err := store.ReadLast()
			if err != nil {
				return clierr.Wrap(clierr.CodeFailure, "parse: read last scan", err)
			}
			if err := store.WriteLast(state.Snapshot{Root: root, ParsedAt: time.Now().UTC(), Documentation: doc}); err != nil {
				return clierr.Wrap(clierr.CodeFailure, "parse: save scan", err)
			}

			d := state.Compare(prev, doc)
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Progress %s -> %s (%+.1f points, %+d steps completed)\n",
				projection.FormatPercent(d.PreviousProgress),
				projection.FormatPercent(d.CurrentProgress),
				d.ProgressChange,
				d.NewlyCompleted(),
			)
			return nil
		},
	}

	cmd.Flags().String("format", formatText, "Output format: text, json or markdown")
	cmd.Flags().Bool("save", false, "Store the result as the last scan and report the change")

	return cmd
}

// NewParseFileCommand returns the `planscan parse-file` command.
func NewParseFileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse-file <file>",
		Short: "Parse a single markdown document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return clierr.Usagef("parse-file: get format flag: %v", err)
			}
			if err := checkFormat("parse-file", format); err != nil {
				return err
			}

			path := args[0]
			data, err := os.ReadFile(path) //nolint:gosec // user-provided document path
			if err != nil {
				return clierr.Wrap(clierr.CodeFailure, "parse-file", &roadmap.ReadError{Path: path, Err: err})
			}

			name := filepath.Base(path)
			doc := roadmap.Aggregate([]roadmap.Document{{Text: string(data), Name: name, RelativePath: name}})
			if err := writeDocumentation(cmd.OutOrStdout(), format, doc); err != nil {
				return clierr.Wrap(clierr.CodeFailure, "parse-file: write output", err)
			}
			return nil
		},
	}

	cmd.Flags().String("format", formatJSON, "Output format: text, json or markdown")

	return cmd
}
