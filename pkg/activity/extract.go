package activity

import (
	"github.com/m-mizutani/ghtrail/pkg/domain/model"
	"github.com/m-mizutani/ghtrail/pkg/domain/payload"
)

// Extraction rules, one per payload shape. Every function here is total: a nil
// envelope, a missing payload or a payload of the wrong shape yields defaults.

func repoRef(env *model.Envelope) model.RepoRef {
	return model.ParseRepoRef(env.RepoName())
}

func body(env *model.Envelope) payload.Value {
	return payload.Of(env.GetPayload())
}

// commitCount is the single definition of how a push payload is read. Both the
// commit/push projectors and the push render rule go through it.
func commitCount(env *model.Envelope) int {
	return payload.GetInt(env.GetPayload(), "size")
}

func action(env *model.Envelope) *string {
	return payload.GetString(env.GetPayload(), "action")
}

func nested(env *model.Envelope, object, key string) *string {
	return body(env).Path(object, key).StringPtr()
}

func extractCommit(env *model.Envelope) model.CommitRecord {
	return model.CommitRecord{
		RepoRef:     repoRef(env),
		CommitCount: commitCount(env),
		PushedAt:    env.GetOccurredAt(),
	}
}

func extractPush(env *model.Envelope) model.PushRecord {
	return model.PushRecord{
		RepoRef:     repoRef(env),
		CommitCount: commitCount(env),
		PushedAt:    env.GetOccurredAt(),
	}
}

func extractIssue(env *model.Envelope) model.IssueRecord {
	return model.IssueRecord{
		RepoRef:    repoRef(env),
		IssueTitle: nested(env, "issue", "title"),
		Action:     action(env),
		OccurredAt: env.GetOccurredAt(),
	}
}

func extractFork(env *model.Envelope) model.ForkRecord {
	return model.ForkRecord{
		RepoRef:        repoRef(env),
		ForkedRepoName: nested(env, "forkee", "full_name"),
		OccurredAt:     env.GetOccurredAt(),
	}
}

func extractPullRequest(env *model.Envelope) model.PullRequestRecord {
	return model.PullRequestRecord{
		RepoRef:    repoRef(env),
		Title:      nested(env, "pull_request", "title"),
		Action:     action(env),
		OccurredAt: env.GetOccurredAt(),
	}
}

func extractRelease(env *model.Envelope) model.ReleaseRecord {
	return model.ReleaseRecord{
		RepoRef:     repoRef(env),
		ReleaseName: nested(env, "release", "name"),
		Action:      action(env),
		OccurredAt:  env.GetOccurredAt(),
	}
}

func extractComment(env *model.Envelope) model.CommentRecord {
	return model.CommentRecord{
		RepoRef:     repoRef(env),
		CommentBody: nested(env, "comment", "body"),
		OccurredAt:  env.GetOccurredAt(),
	}
}

func extractPublic(env *model.Envelope) model.PublicRecord {
	return model.PublicRecord{
		RepoRef:    repoRef(env),
		OccurredAt: env.GetOccurredAt(),
	}
}

func extractDelete(env *model.Envelope) model.DeleteRecord {
	return model.DeleteRecord{
		RepoRef:    repoRef(env),
		RefType:    payload.GetString(env.GetPayload(), "ref_type"),
		Ref:        payload.GetString(env.GetPayload(), "ref"),
		OccurredAt: env.GetOccurredAt(),
	}
}

func extractCreate(env *model.Envelope) model.CreateRecord {
	return model.CreateRecord{
		RepoRef:    repoRef(env),
		RefType:    payload.GetString(env.GetPayload(), "ref_type"),
		Ref:        payload.GetString(env.GetPayload(), "ref"),
		OccurredAt: env.GetOccurredAt(),
	}
}

func extractMember(env *model.Envelope) model.MemberRecord {
	return model.MemberRecord{
		RepoRef:     repoRef(env),
		MemberLogin: nested(env, "member", "login"),
		Action:      action(env),
		OccurredAt:  env.GetOccurredAt(),
	}
}

func extractWatch(env *model.Envelope) model.StarRecord {
	return model.StarRecord{
		RepoRef:   repoRef(env),
		StarredAt: env.GetOccurredAt(),
	}
}
