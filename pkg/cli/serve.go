package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/ghtrail/pkg/cli/config"
	controller "github.com/m-mizutani/ghtrail/pkg/controller/http"
	"github.com/m-mizutani/ghtrail/pkg/usecase"
)

func (a *app) cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		githubCfg config.GitHub
	)

	flags := append(serverCfg.Flags(), githubCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP API server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			serverCfg.Merge(a.file, c.IsSet)
			githubCfg.Merge(a.file, c.IsSet)

			logger.Info("Starting ghtrail server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("github", githubCfg),
			)

			client, err := githubCfg.NewClient()
			if err != nil {
				return err
			}

			// Create use cases
			activityUC := usecase.NewActivity(client)

			// Create HTTP server with options
			server, err := controller.NewServer(
				ctx,
				activityUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithMetrics(serverCfg.Metrics),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "HTTP server error", goerr.V("addr", serverCfg.Addr))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-errCh:
				return err
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
