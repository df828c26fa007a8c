package interfaces

import (
	"context"

	"github.com/m-mizutani/ghtrail/pkg/activity"
	"github.com/m-mizutani/ghtrail/pkg/domain/model"
)

// ActivityUseCase exposes a user's activity to the CLI and HTTP controllers
type ActivityUseCase interface {
	// Timeline formats every recent event of the user
	Timeline(ctx context.Context, username string) ([]activity.Line, error)

	// View projects the user's events through the named view
	View(ctx context.Context, username, view string) (*model.ViewResult, error)

	// Starred projects the user's starred repositories
	Starred(ctx context.Context, username string) ([]model.StarRecord, error)

	// Repositories projects the user's repositories
	Repositories(ctx context.Context, username string) ([]model.RepositoryRecord, error)

	// Summary aggregates events, stars and repositories
	Summary(ctx context.Context, username string) (*model.Summary, error)
}
