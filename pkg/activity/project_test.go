package activity_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/ghtrail/pkg/activity"
	"github.com/m-mizutani/ghtrail/pkg/domain/model"
)

func TestProjectCommitsAndPushes(t *testing.T) {
	envs := []*model.Envelope{
		envelope(model.KindPush, "octo/repo1", map[string]any{"size": float64(3)}, "2025-01-01T00:00:00Z"),
	}

	commits := activity.ProjectCommits(envs)
	gt.A(t, commits).Length(1)
	gt.Equal(t, commits[0].GetName(), "repo1")
	gt.Equal(t, commits[0].GetOwner(), "octo")
	gt.Equal(t, commits[0].CommitCount, 3)
	gt.Equal(t, commits[0].PushedAt, "2025-01-01T00:00:00Z")

	pushes := activity.ProjectPushes(envs)
	gt.A(t, pushes).Length(1)
	gt.Equal(t, pushes[0].GetName(), "repo1")
	gt.Equal(t, pushes[0].GetOwner(), "octo")
	gt.Equal(t, pushes[0].CommitCount, 3)
	gt.Equal(t, pushes[0].PushedAt, "2025-01-01T00:00:00Z")
}

func TestProjectPushes_MalformedPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload any
	}{
		{name: "payload is a string", payload: "not-a-structure"},
		{name: "payload is absent", payload: nil},
		{name: "size is a string", payload: map[string]any{"size": "3"}},
		{name: "size is missing", payload: map[string]any{"head": "abc"}},
		{name: "payload is an array", payload: []any{float64(3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envs := []*model.Envelope{envelope(model.KindPush, "u/r", tt.payload, "t")}
			gt.Equal(t, activity.ProjectPushes(envs)[0].CommitCount, 0)
			gt.Equal(t, activity.ProjectCommits(envs)[0].CommitCount, 0)
		})
	}
}

func TestProjectIssues(t *testing.T) {
	envs := []*model.Envelope{
		envelope(model.KindIssues, "o/r", decode(t, `{"issue":{"title":"Bug"},"action":"opened"}`), "t1"),
		envelope(model.KindIssues, "o/r", decode(t, `{"issue":"broken","action":5}`), "t2"),
	}

	got := activity.ProjectIssues(envs)
	gt.A(t, got).Length(2)

	gt.Equal(t, got[0].GetName(), "r")
	gt.Equal(t, got[0].GetOwner(), "o")
	gt.Equal(t, *got[0].IssueTitle, "Bug")
	gt.Equal(t, *got[0].Action, "opened")
	gt.Equal(t, got[0].OccurredAt, "t1")

	gt.V(t, got[1].IssueTitle).Nil()
	gt.V(t, got[1].Action).Nil()
	gt.Equal(t, got[1].OccurredAt, "t2")
}

func TestProjectForks(t *testing.T) {
	got := activity.ProjectForks([]*model.Envelope{
		envelope(model.KindFork, "up/stream", decode(t, `{"forkee":{"full_name":"me/stream"}}`), "t"),
		envelope(model.KindFork, "up/stream", decode(t, `{"forkee":{"full_name":42}}`), "t"),
	})

	gt.Equal(t, *got[0].ForkedRepoName, "me/stream")
	gt.Equal(t, got[0].GetOwner(), "up")
	gt.V(t, got[1].ForkedRepoName).Nil()
}

func TestProjectPullRequests(t *testing.T) {
	got := activity.ProjectPullRequests([]*model.Envelope{
		envelope(model.KindPullRequest, "o/r", decode(t, `{"action":"closed","pull_request":{"title":"Fix it"}}`), "t"),
	})

	gt.Equal(t, *got[0].Title, "Fix it")
	gt.Equal(t, *got[0].Action, "closed")
}

func TestProjectReleases(t *testing.T) {
	got := activity.ProjectReleases([]*model.Envelope{
		envelope(model.KindRelease, "o/r", decode(t, `{"action":"published","release":{"name":"v1.0.0"}}`), "t"),
		envelope(model.KindRelease, "o/r", decode(t, `{"action":"published","release":{"name":null}}`), "t"),
	})

	gt.Equal(t, *got[0].ReleaseName, "v1.0.0")
	gt.Equal(t, *got[0].Action, "published")
	gt.V(t, got[1].ReleaseName).Nil()
	gt.Equal(t, *got[1].Action, "published")
}

func TestProjectComments(t *testing.T) {
	got := activity.ProjectComments([]*model.Envelope{
		envelope(model.KindIssueComment, "o/r", decode(t, `{"action":"created","comment":{"body":"LGTM"}}`), "t"),
	})

	gt.Equal(t, *got[0].CommentBody, "LGTM")
}

func TestProjectPublic(t *testing.T) {
	got := activity.ProjectPublic([]*model.Envelope{
		envelope(model.KindPublic, "o/r", decode(t, `{}`), "t"),
	})

	gt.Equal(t, got[0].GetName(), "r")
	gt.Equal(t, got[0].OccurredAt, "t")
}

func TestProjectDeletesAndCreates(t *testing.T) {
	envs := []*model.Envelope{
		envelope(model.KindDelete, "o/r", decode(t, `{"ref_type":"branch","ref":"feature/x"}`), "t"),
	}

	deletes := activity.ProjectDeletes(envs)
	gt.Equal(t, *deletes[0].RefType, "branch")
	gt.Equal(t, *deletes[0].Ref, "feature/x")

	creates := activity.ProjectCreates([]*model.Envelope{
		envelope(model.KindCreate, "o/r", decode(t, `{"ref_type":"repository","ref":null}`), "t"),
	})
	gt.Equal(t, *creates[0].RefType, "repository")
	gt.V(t, creates[0].Ref).Nil()
}

func TestProjectMembers(t *testing.T) {
	got := activity.ProjectMembers([]*model.Envelope{
		envelope(model.KindMember, "o/r", decode(t, `{"action":"added","member":{"login":"friend"}}`), "t"),
	})

	gt.Equal(t, *got[0].MemberLogin, "friend")
	gt.Equal(t, *got[0].Action, "added")
}

func TestProjectWatches(t *testing.T) {
	got := activity.ProjectWatches([]*model.Envelope{
		envelope(model.KindWatch, "a/b", decode(t, `{"action":"started"}`), "2025-02-02T00:00:00Z"),
	})

	gt.Equal(t, got[0].GetName(), "b")
	gt.Equal(t, got[0].GetOwner(), "a")
	gt.Equal(t, got[0].StarredAt, "2025-02-02T00:00:00Z")
}

func TestProjectors_AbsentRepository(t *testing.T) {
	envs := []*model.Envelope{envelope(model.KindIssues, "", decode(t, `{"action":"opened"}`), "t")}

	got := activity.ProjectIssues(envs)
	gt.A(t, got).Length(1)
	gt.V(t, got[0].Name).Nil()
	gt.V(t, got[0].Owner).Nil()
	gt.Equal(t, *got[0].Action, "opened")
}

func TestProjectors_NilEnvelope(t *testing.T) {
	got := activity.ProjectMembers([]*model.Envelope{nil})

	gt.A(t, got).Length(1)
	gt.V(t, got[0].Name).Nil()
	gt.V(t, got[0].MemberLogin).Nil()
	gt.Equal(t, got[0].OccurredAt, "")
}

func TestProjectors_EmptyInput(t *testing.T) {
	gt.A(t, activity.ProjectCommits(nil)).Length(0)
	gt.A(t, activity.ProjectPushes([]*model.Envelope{})).Length(0)
	gt.A(t, activity.ProjectIssues(nil)).Length(0)
	gt.A(t, activity.ProjectForks(nil)).Length(0)
	gt.A(t, activity.ProjectPullRequests(nil)).Length(0)
	gt.A(t, activity.ProjectReleases(nil)).Length(0)
	gt.A(t, activity.ProjectComments(nil)).Length(0)
	gt.A(t, activity.ProjectPublic(nil)).Length(0)
	gt.A(t, activity.ProjectDeletes(nil)).Length(0)
	gt.A(t, activity.ProjectCreates(nil)).Length(0)
	gt.A(t, activity.ProjectMembers(nil)).Length(0)
	gt.A(t, activity.ProjectWatches(nil)).Length(0)
	gt.Value(t, activity.ProjectCommits(nil) != nil).Equal(true)
}

func TestProjectors_Idempotent(t *testing.T) {
	envs := []*model.Envelope{
		envelope(model.KindIssues, "o/r", decode(t, `{"issue":{"title":"Bug"},"action":"opened"}`), "t1"),
		envelope(model.KindIssues, "x", nil, "t2"),
	}

	first := activity.ProjectIssues(envs)
	second := activity.ProjectIssues(envs)
	gt.Equal(t, first, second)
}

func TestProjectors_PreserveOrder(t *testing.T) {
	envs := []*model.Envelope{
		envelope(model.KindPush, "o/first", map[string]any{"size": float64(1)}, "t1"),
		envelope(model.KindPush, "o/second", map[string]any{"size": float64(2)}, "t2"),
		envelope(model.KindPush, "o/third", map[string]any{"size": float64(3)}, "t3"),
	}

	got := activity.ProjectPushes(envs)
	gt.Equal(t, got[0].GetName(), "first")
	gt.Equal(t, got[1].GetName(), "second")
	gt.Equal(t, got[2].GetName(), "third")
}
