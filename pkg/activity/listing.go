package activity

import (
	"github.com/m-mizutani/ghtrail/pkg/domain/model"
	"github.com/m-mizutani/ghtrail/pkg/domain/payload"
)

// Listing projectors read the "starred" and "repos" collections, which are arrays of
// repository objects rather than event envelopes. Elements that are not objects are
// skipped.

func projectListing[T any](elems []any, fn func(payload.Value) T) []T {
	out := make([]T, 0, len(elems))
	for _, elem := range elems {
		v := payload.Of(elem)
		if v.Kind() != payload.KindObject {
			continue
		}
		out = append(out, fn(v))
	}
	return out
}

// ProjectStarred builds stars from the starred listing. The listing has no star
// timestamp, so StarredAt is model.StarredAtUnknown.
func ProjectStarred(elems []any) []model.StarRecord {
	return projectListing(elems, func(v payload.Value) model.StarRecord {
		return model.StarRecord{
			RepoRef:   model.ParseRepoRef(v.Field("full_name").StringPtr()),
			StarredAt: model.StarredAtUnknown,
		}
	})
}

func ProjectRepositories(elems []any) []model.RepositoryRecord {
	return projectListing(elems, func(v payload.Value) model.RepositoryRecord {
		fullName := v.Field("full_name").StringPtr()
		return model.RepositoryRecord{
			RepoRef:     model.ParseRepoRef(fullName),
			Name:        v.Field("name").StringPtr(),
			FullName:    fullName,
			Description: v.Field("description").StringPtr(),
			Language:    v.Field("language").StringPtr(),
			StarCount:   v.Field("stargazers_count").IntOr(0),
			ForkCount:   v.Field("forks_count").IntOr(0),
			CreatedAt:   v.Field("created_at").StringPtr(),
			UpdatedAt:   v.Field("updated_at").StringPtr(),
		}
	})
}
