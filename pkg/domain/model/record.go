package model

// StarredAtUnknown is the timestamp of stars taken from the starred listing, which
// does not say when the star was given
const StarredAtUnknown = "Unknown"

// Record is implemented by every projection record
type Record interface {
	Repository() RepoRef
}

// CommitRecord is the commit view of a push event
type CommitRecord struct {
	RepoRef
	CommitCount int    `json:"commit_count"`
	PushedAt    string `json:"pushed_at"`
}

// PushRecord is the push view of a push event
type PushRecord struct {
	RepoRef
	CommitCount int    `json:"commit_count"`
	PushedAt    string `json:"pushed_at"`
}

type IssueRecord struct {
	RepoRef
	IssueTitle *string `json:"issue_title"`
	Action     *string `json:"action"`
	OccurredAt string  `json:"occurred_at"`
}

type ForkRecord struct {
	RepoRef
	ForkedRepoName *string `json:"forked_repo_name"` // full name of the new fork
	OccurredAt     string  `json:"occurred_at"`
}

type PullRequestRecord struct {
	RepoRef
	Title      *string `json:"pr_title"`
	Action     *string `json:"action"`
	OccurredAt string  `json:"occurred_at"`
}

type ReleaseRecord struct {
	RepoRef
	ReleaseName *string `json:"release_name"`
	Action      *string `json:"action"`
	OccurredAt  string  `json:"occurred_at"`
}

type CommentRecord struct {
	RepoRef
	CommentBody *string `json:"comment_body"`
	OccurredAt  string  `json:"occurred_at"`
}

type PublicRecord struct {
	RepoRef
	OccurredAt string `json:"occurred_at"`
}

type DeleteRecord struct {
	RepoRef
	RefType    *string `json:"ref_type"`
	Ref        *string `json:"ref"`
	OccurredAt string  `json:"occurred_at"`
}

type CreateRecord struct {
	RepoRef
	RefType    *string `json:"ref_type"`
	Ref        *string `json:"ref"`
	OccurredAt string  `json:"occurred_at"`
}

type MemberRecord struct {
	RepoRef
	MemberLogin *string `json:"member_login"`
	Action      *string `json:"action"`
	OccurredAt  string  `json:"occurred_at"`
}

// StarRecord comes either from a WatchEvent or from the starred listing. In the latter
// case StarredAt is StarredAtUnknown.
type StarRecord struct {
	RepoRef
	StarredAt string `json:"starred_at"`
}

// RepositoryRecord is one element of a user's repository listing
type RepositoryRecord struct {
	RepoRef
	Name        *string `json:"name"`
	FullName    *string `json:"full_name"`
	Description *string `json:"description"`
	Language    *string `json:"language"`
	StarCount   int     `json:"stargazers_count"`
	ForkCount   int     `json:"forks_count"`
	CreatedAt   *string `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}
