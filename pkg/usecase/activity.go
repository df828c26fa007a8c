package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/m-mizutani/ghtrail/pkg/activity"
	"github.com/m-mizutani/ghtrail/pkg/domain/interfaces"
	"github.com/m-mizutani/ghtrail/pkg/domain/model"
	"github.com/m-mizutani/ghtrail/pkg/domain/types"
	"github.com/m-mizutani/ghtrail/pkg/infra/metrics"
)

// NoActivityMessage is shown when a user has no events at all
const NoActivityMessage = "No recent activity found."

type activityUseCase struct {
	githubClient interfaces.GitHubClient
	table        *activity.Table
}

// Option is a functional option for the activity use case
type Option func(*activityUseCase)

// WithTable replaces the extraction table used for views and timeline lines
func WithTable(table *activity.Table) Option {
	return func(uc *activityUseCase) {
		uc.table = table
	}
}

// NewActivity creates a new instance of ActivityUseCase
func NewActivity(githubClient interfaces.GitHubClient, opts ...Option) interfaces.ActivityUseCase {
	uc := &activityUseCase{
		githubClient: githubClient,
		table:        activity.DefaultTable(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ViewNames returns the view names of the default table
func ViewNames() []string {
	return activity.DefaultTable().ViewNames()
}

func (uc *activityUseCase) lookupView(name string) (activity.View, error) {
	v, ok := uc.table.View(name)
	if !ok {
		return activity.View{}, goerr.New("unknown view: "+name,
			goerr.V("view", name),
			goerr.V("available", uc.table.ViewNames()),
			goerr.T(types.ErrTagInvalidArgument),
		)
	}
	return v, nil
}

func validateUsername(username string) error {
	if username == "" {
		return goerr.New("username is required", goerr.T(types.ErrTagInvalidArgument))
	}
	return nil
}

// Timeline formats every recent event of the user, in upstream order
func (uc *activityUseCase) Timeline(ctx context.Context, username string) ([]activity.Line, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	envs, err := uc.githubClient.ListUserEvents(ctx, username)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list user events", goerr.V("username", username))
	}

	lines := make([]activity.Line, len(envs))
	for i, env := range envs {
		lines[i] = uc.table.Describe(env)
	}
	ctxlog.From(ctx).Info("Formatted user timeline",
		"username", username,
		"count", len(lines),
	)

	return lines, nil
}

// View filters the user's events by the view's kind and projects them
func (uc *activityUseCase) View(ctx context.Context, username, name string) (*model.ViewResult, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	v, err := uc.lookupView(name)
	if err != nil {
		return nil, err
	}

	envs, err := uc.githubClient.ListUserEvents(ctx, username)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list user events",
			goerr.V("username", username),
			goerr.V("view", name),
		)
	}

	records := v.Apply(envs)
	metrics.RecordsProjected.WithLabelValues(v.Name).Add(float64(len(records)))

	result := &model.ViewResult{
		Username: username,
		View:     v.Name,
		Records:  records,
	}
	if len(records) == 0 {
		result.Message = v.Empty
	}

	ctxlog.From(ctx).Info("Projected user events",
		"username", username,
		"view", v.Name,
		"envelopes", len(envs),
		"records", len(records),
	)

	return result, nil
}

// Starred projects the user's starred repositories
func (uc *activityUseCase) Starred(ctx context.Context, username string) ([]model.StarRecord, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	elems, err := uc.githubClient.ListStarred(ctx, username)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list starred repositories", goerr.V("username", username))
	}

	records := activity.ProjectStarred(elems)
	metrics.RecordsProjected.WithLabelValues("starred").Add(float64(len(records)))
	return records, nil
}

// Repositories projects the user's repositories
func (uc *activityUseCase) Repositories(ctx context.Context, username string) ([]model.RepositoryRecord, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	elems, err := uc.githubClient.ListRepositories(ctx, username)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories", goerr.V("username", username))
	}

	records := activity.ProjectRepositories(elems)
	metrics.RecordsProjected.WithLabelValues("repos").Add(float64(len(records)))
	return records, nil
}

// Summary fetches events, stars and repositories concurrently. The first failure
// cancels the other requests.
func (uc *activityUseCase) Summary(ctx context.Context, username string) (*model.Summary, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}

	var (
		envs    []*model.Envelope
		starred []model.StarRecord
		repos   []model.RepositoryRecord
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		envs, err = uc.githubClient.ListUserEvents(egCtx, username)
		return err
	})
	eg.Go(func() error {
		var err error
		starred, err = uc.Starred(egCtx, username)
		return err
	})
	eg.Go(func() error {
		var err error
		repos, err = uc.Repositories(egCtx, username)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to build user summary", goerr.V("username", username))
	}

	summary := &model.Summary{
		Username:     username,
		EventCount:   len(envs),
		KindCounts:   activity.CountByKind(envs),
		StarredCount: len(starred),
		RepoCount:    len(repos),
		Languages:    make(map[string]int),
	}
	for _, repo := range repos {
		summary.TotalStars += repo.StarCount
		if repo.Language != nil {
			summary.Languages[*repo.Language]++
		}
	}

	ctxlog.From(ctx).Info("Built user summary",
		"username", username,
		"events", summary.EventCount,
		"starred", summary.StarredCount,
		"repos", summary.RepoCount,
	)

	return summary, nil
}
