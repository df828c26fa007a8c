package cli

import (
	"context"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/ghtrail/pkg/cli/config"
	"github.com/m-mizutani/ghtrail/pkg/domain/interfaces"
	"github.com/m-mizutani/ghtrail/pkg/domain/types"
	"github.com/m-mizutani/ghtrail/pkg/usecase"
)

type queryAction func(ctx context.Context, c *cli.Command, uc interfaces.ActivityUseCase, p *printer) error

// queryCommand builds a one-shot command that talks to GitHub and prints the result
func (a *app) queryCommand(cmd *cli.Command, action queryAction) *cli.Command {
	var (
		githubCfg config.GitHub
		noColor   bool
	)

	cmd.Flags = append(githubCfg.Flags(), &cli.BoolFlag{
		Name:        "no-color",
		Usage:       "Disable colored output",
		Destination: &noColor,
		Sources:     cli.EnvVars("GHTRAIL_NO_COLOR"),
	})

	cmd.Action = func(ctx context.Context, c *cli.Command) error {
		githubCfg.Merge(a.file, c.IsSet)
		ctxlog.From(ctx).Debug("GitHub configuration", "github", githubCfg)

		client, err := githubCfg.NewClient()
		if err != nil {
			return err
		}

		return action(ctx, c, usecase.NewActivity(client), newPrinter(a.w, noColor))
	}

	return cmd
}

func requireArg(c *cli.Command, idx int, name string) (string, error) {
	v := c.Args().Get(idx)
	if v == "" {
		return "", goerr.New(name+" is required",
			goerr.V("usage", c.UsageText),
			goerr.T(types.ErrTagInvalidArgument),
		)
	}
	return v, nil
}

func (a *app) cmdActivity() *cli.Command {
	return a.queryCommand(&cli.Command{
		Name:      "activity",
		Aliases:   []string{"a"},
		Usage:     "Show a user's recent activity timeline",
		UsageText: "ghtrail activity <username>",
	}, func(ctx context.Context, c *cli.Command, uc interfaces.ActivityUseCase, p *printer) error {
		username, err := requireArg(c, 0, "username")
		if err != nil {
			return err
		}

		lines, err := uc.Timeline(ctx, username)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return p.message(usecase.NoActivityMessage)
		}
		return p.lines(lines)
	})
}

func (a *app) cmdView() *cli.Command {
	return a.queryCommand(&cli.Command{
		Name:      "view",
		Aliases:   []string{"events"},
		Usage:     "Project a user's events through a view (" + strings.Join(usecase.ViewNames(), ", ") + ")",
		UsageText: "ghtrail view <view> <username>",
	}, func(ctx context.Context, c *cli.Command, uc interfaces.ActivityUseCase, p *printer) error {
		name, err := requireArg(c, 0, "view")
		if err != nil {
			return err
		}
		username, err := requireArg(c, 1, "username")
		if err != nil {
			return err
		}

		result, err := uc.View(ctx, username, name)
		if err != nil {
			return err
		}
		if result.Message != "" {
			return p.message(result.Message)
		}
		return p.json(result.Records)
	})
}

func (a *app) cmdStarred() *cli.Command {
	return a.queryCommand(&cli.Command{
		Name:      "starred",
		Usage:     "List repositories starred by a user",
		UsageText: "ghtrail starred <username>",
	}, func(ctx context.Context, c *cli.Command, uc interfaces.ActivityUseCase, p *printer) error {
		username, err := requireArg(c, 0, "username")
		if err != nil {
			return err
		}

		records, err := uc.Starred(ctx, username)
		if err != nil {
			return err
		}
		return p.json(records)
	})
}

func (a *app) cmdRepos() *cli.Command {
	return a.queryCommand(&cli.Command{
		Name:      "repos",
		Usage:     "List a user's repositories",
		UsageText: "ghtrail repos <username>",
	}, func(ctx context.Context, c *cli.Command, uc interfaces.ActivityUseCase, p *printer) error {
		username, err := requireArg(c, 0, "username")
		if err != nil {
			return err
		}

		records, err := uc.Repositories(ctx, username)
		if err != nil {
			return err
		}
		return p.json(records)
	})
}

func (a *app) cmdSummary() *cli.Command {
	return a.queryCommand(&cli.Command{
		Name:      "summary",
		Usage:     "Summarize a user's events, stars and repositories",
		UsageText: "ghtrail summary <username>",
	}, func(ctx context.Context, c *cli.Command, uc interfaces.ActivityUseCase, p *printer) error {
		username, err := requireArg(c, 0, "username")
		if err != nil {
			return err
		}

		summary, err := uc.Summary(ctx, username)
		if err != nil {
			return err
		}
		return p.json(summary)
	})
}
