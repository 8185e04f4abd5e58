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
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bartekus/planscan/cmd/planscan/internal/clierr"
	"github.com/bartekus/planscan/internal/api"
)

// NewServeCommand returns the `planscan serve` command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [root]",
		Short: "Serve documentation progress over HTTP",
		Long: `Start an HTTP server exposing /health, /api/documentation, /api/documents
and /api/tasks on 127.0.0.1:8080. Requests may pass ?root=<path> naming the
served root or a directory beneath it; other paths are refused.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := cmd.Flags().GetString("addr")
			if err != nil {
				return clierr.Usagef("serve: get addr flag: %v", err)
			}

			apiKey, err := cmd.Flags().GetString("api-key")
			if err != nil {
				return clierr.Usagef("serve: get api-key flag: %v", err)
			}
			if apiKey == "" {
				apiKey = os.Getenv("PLANSCAN_API_KEY")
			}

			root, err := resolveRoot(args)
			if err != nil {
				return err
			}
			log := newLogger(cmd)

			var opts []api.Option
			if apiKey != "" {
				opts = append(opts, api.WithAPIKey(apiKey))
			}
			srv := api.NewServer(newLoader(cmd, log), log, root, opts...)

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return clierr.Wrapf(clierr.CodeFailure, err, "serve: listen on %s", addr)
			}
			return serve(cmd.Context(), ln, srv, log, root)
		},
	}

	cmd.Flags().String("addr", "127.0.0.1:8080", "Address to listen on")
	cmd.Flags().String("api-key", "", "Require this bearer token on /api routes (default: $PLANSCAN_API_KEY)")

	return cmd
}

// serve runs handler on ln until ctx is done or the server fails, and
// returns only after shutdown has finished draining connections.
func serve(ctx context.Context, ln net.Listener, handler http.Handler, log *slog.Logger, root string) error {
	httpServer := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	shutdownDone := make(chan error, 1)
	go func() {
		<-ctx.Done()
		log.Info("shutting down...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		shutdownDone <- httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting planscan", "addr", ln.Addr().String(), "root", root)
	serveErr := httpServer.Serve(ln)
	cancel()
	shutdownErr := <-shutdownDone

	if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		return clierr.Wrap(clierr.CodeFailure, "serve", serveErr)
	}
	if shutdownErr != nil {
		return clierr.Wrap(clierr.CodeFailure, "serve: shutdown", shutdownErr)
	}
	return nil
}
