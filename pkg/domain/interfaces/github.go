package interfaces

import (
	"context"

	"github.com/m-mizutani/ghtrail/pkg/domain/model"
)

// GitHubClient is the ingestion boundary: it fetches raw collections for a user.
// Implementations translate transport failures into errors tagged with one of the
// types.ErrTag* values.
type GitHubClient interface {
	// ListUserEvents returns the user's recent public events, newest first
	ListUserEvents(ctx context.Context, username string) ([]*model.Envelope, error)

	// ListStarred returns the raw starred-repository listing elements
	ListStarred(ctx context.Context, username string) ([]any, error)

	// ListRepositories returns the raw repository listing elements
	ListRepositories(ctx context.Context, username string) ([]any, error)
}
