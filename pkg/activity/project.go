package activity

import "github.com/m-mizutani/ghtrail/pkg/domain/model"

// The projectors below expect envelopes already narrowed to one kind (see
// FilterByKind) and return exactly one record per envelope, in input order. A nil
// input yields an empty, non-nil slice.

func projectEach[T any](envs []*model.Envelope, fn func(*model.Envelope) T) []T {
	out := make([]T, len(envs))
	for i, env := range envs {
		out[i] = fn(env)
	}
	return out
}

func ProjectCommits(envs []*model.Envelope) []model.CommitRecord {
	return projectEach(envs, extractCommit)
}

func ProjectPushes(envs []*model.Envelope) []model.PushRecord {
	return projectEach(envs, extractPush)
}

func ProjectIssues(envs []*model.Envelope) []model.IssueRecord {
	return projectEach(envs, extractIssue)
}

func ProjectForks(envs []*model.Envelope) []model.ForkRecord {
	return projectEach(envs, extractFork)
}

func ProjectPullRequests(envs []*model.Envelope) []model.PullRequestRecord {
	return projectEach(envs, extractPullRequest)
}

func ProjectReleases(envs []*model.Envelope) []model.ReleaseRecord {
	return projectEach(envs, extractRelease)
}

func ProjectComments(envs []*model.Envelope) []model.CommentRecord {
	return projectEach(envs, extractComment)
}

func ProjectPublic(envs []*model.Envelope) []model.PublicRecord {
	return projectEach(envs, extractPublic)
}

func ProjectDeletes(envs []*model.Envelope) []model.DeleteRecord {
	return projectEach(envs, extractDelete)
}

func ProjectCreates(envs []*model.Envelope) []model.CreateRecord {
	return projectEach(envs, extractCreate)
}

func ProjectMembers(envs []*model.Envelope) []model.MemberRecord {
	return projectEach(envs, extractMember)
}

// ProjectWatches turns WatchEvents into stars that carry the event timestamp
func ProjectWatches(envs []*model.Envelope) []model.StarRecord {
	return projectEach(envs, extractWatch)
}

// Records widens a typed projection for consumers that handle any record
func Records[T model.Record](in []T) []model.Record {
	out := make([]model.Record, len(in))
	for i, r := range in {
		out[i] = r
	}
	return out
}
