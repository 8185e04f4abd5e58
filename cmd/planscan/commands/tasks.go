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
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bartekus/planscan/cmd/planscan/internal/clierr"
	"github.com/bartekus/planscan/internal/tasks"
)

// NewTasksCommand returns the `planscan tasks` command.
func NewTasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks [root]",
		Short: "Print one board task per documentation step as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := cmd.Flags().GetString("project")
			if err != nil {
				return clierr.Usagef("tasks: get project flag: %v", err)
			}

			root, err := resolveRoot(args)
			if err != nil {
				return err
			}
			if projectID == "" {
				projectID = filepath.Base(root)
			}

			doc, err := newLoader(cmd, newLogger(cmd)).Load(cmd.Context(), root)
			if err != nil {
				return clierr.Wrap(clierr.CodeFailure, "tasks", err)
			}
			return writeJSON(cmd.OutOrStdout(), tasks.FromDocumentation(doc, projectID))
		},
	}

	cmd.Flags().String("project", "", "Project ID used in task IDs (default: root directory name)")

	return cmd
}
