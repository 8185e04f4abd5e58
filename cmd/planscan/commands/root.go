// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Planscan - Planscan reads the planning and roadmap documents of a repository and reports how far along the plan is.
It parses freeform markdown checklists into phases, stages and steps, and computes per-phase and overall completion.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package commands contains the Cobra commands of the planscan CLI.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bartekus/planscan/cmd/planscan/internal/clierr"
	"github.com/bartekus/planscan/internal/project"
	"github.com/bartekus/planscan/internal/projectroot"
)

// NewRootCmd constructs the planscan root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("PLANSCAN_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "planscan",
		Short:         "Planscan - progress tracking for markdown roadmaps",
		Long:          "Planscan discovers a project's planning documents, parses their phases, stages and checklist steps, and reports completion.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().String("config", "", "path to a config file (default: <root>/.planscan.yaml)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of Planscan",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Planscan version %s\n", version)
		},
	})

	cmd.AddCommand(NewDiscoverCommand())
	cmd.AddCommand(NewParseCommand())
	cmd.AddCommand(NewParseFileCommand())
	cmd.AddCommand(NewReportCommand())
	cmd.AddCommand(NewTasksCommand())
	cmd.AddCommand(NewServeCommand())

	return cmd
}

// newLogger builds the slog logger for a command; --verbose enables debug output.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// newLoader builds a project loader honoring --config.
func newLoader(cmd *cobra.Command, log *slog.Logger) *project.Loader {
	loader := project.NewLoader(nil, log)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loader.WithConfigFile(path)
	}
	return loader
}

// resolveRoot returns the directory named by the first argument, or the
// project containing the working directory when none is given.
func resolveRoot(args []string) (string, error) {
	if len(args) == 0 {
		root, err := projectroot.Find(".")
		if err != nil {
			return "", clierr.Wrap(clierr.CodeUsage, "resolving project root", err)
		}
		return root, nil
	}

	root, err := filepath.Abs(args[0])
	if err != nil {
		return "", clierr.Wrap(clierr.CodeUsage, "resolving project root", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", clierr.Wrap(clierr.CodeUsage, "resolving project root", err)
	}
	if !info.IsDir() {
		return "", clierr.Usagef("project root %s is not a directory", root)
	}
	return root, nil
}
