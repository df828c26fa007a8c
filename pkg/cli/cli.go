package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/ghtrail/pkg/cli/config"
	"github.com/m-mizutani/ghtrail/pkg/domain/types"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout)
}

// app carries what every subcommand shares: the output stream and the loaded
// configuration file (set by the root Before hook)
type app struct {
	w    io.Writer
	file *config.File
}

func run(ctx context.Context, args []string, w io.Writer) error {
	var (
		loggerCfg config.Logger
		sentryCfg config.Sentry
		fileCfg   config.ConfigFile
		logger    *slog.Logger
	)
	a := &app{w: w}

	flags := append(loggerCfg.Flags(), sentryCfg.Flags()...)
	flags = append(flags, fileCfg.Flags()...)

	root := &cli.Command{
		Name:    types.ServiceName,
		Usage:   "GitHub user activity viewer",
		Version: types.Version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)

			if err := sentryCfg.Configure(); err != nil {
				return nil, err
			}

			a.file, err = fileCfg.Load()
			if err != nil {
				return nil, err
			}

			return ctx, nil
		},
		Commands: []*cli.Command{
			a.cmdActivity(),
			a.cmdView(),
			a.cmdStarred(),
			a.cmdRepos(),
			a.cmdSummary(),
			a.cmdServe(),
		},
	}

	if err := root.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		sentryCfg.Report(err)
		return err
	}

	return nil
}
