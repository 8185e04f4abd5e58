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

	"github.com/spf13/cobra"

	"github.com/bartekus/planscan/cmd/planscan/internal/clierr"
	"github.com/bartekus/planscan/internal/roadmap"
)

// NewDiscoverCommand returns the `planscan discover` command.
func NewDiscoverCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discover [root]",
		Short: "List the planning documents of a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return clierr.Usagef("discover: get format flag: %v", err)
			}
			if format != formatText && format != formatJSON {
				return clierr.Usagef("discover: unsupported format %q (want text or json)", format)
			}

			root, err := resolveRoot(args)
			if err != nil {
				return err
			}
			log := newLogger(cmd)

			infos, err := newLoader(cmd, log).Discover(cmd.Context(), root)
			if err != nil {
				return clierr.Wrap(clierr.CodeFailure, "discover", err)
			}
			if infos == nil {
				infos = []roadmap.DocFileInfo{}
			}

			out := cmd.OutOrStdout()
			if format == formatJSON {
				return writeJSON(out, infos)
			}
			for _, d := range infos {
				_, _ = fmt.Fprintln(out, d.RelativePath)
			}
			return nil
		},
	}

	cmd.Flags().String("format", formatText, "Output format: text or json")

	return cmd
}
