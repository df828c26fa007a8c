package model

// EventKind is the discriminator tag of an event envelope (GitHub's "type" field).
// The set is open; kinds not listed here are still valid envelopes.
type EventKind string

const (
	KindPush         EventKind = "PushEvent"
	KindWatch        EventKind = "WatchEvent"
	KindIssues       EventKind = "IssuesEvent"
	KindFork         EventKind = "ForkEvent"
	KindPullRequest  EventKind = "PullRequestEvent"
	KindRelease      EventKind = "ReleaseEvent"
	KindIssueComment EventKind = "IssueCommentEvent"
	KindPublic       EventKind = "PublicEvent"
	KindDelete       EventKind = "DeleteEvent"
	KindCreate       EventKind = "CreateEvent"
	KindMember       EventKind = "MemberEvent"
)

// Repo is the repository reference attached to an envelope
type Repo struct {
	Name string `json:"name"` // composite "owner/name"
}

// Envelope is one raw activity event as delivered by GitHub
type Envelope struct {
	Kind       EventKind `json:"type"`
	Repo       *Repo     `json:"repo,omitempty"`
	Payload    any       `json:"payload,omitempty"` // decoded JSON; shape depends on Kind
	OccurredAt string    `json:"created_at"`
}

// RepoName returns the composite repository identifier, or nil when the envelope
// (or its repository) is absent
func (e *Envelope) RepoName() *string {
	if e == nil || e.Repo == nil {
		return nil
	}
	name := e.Repo.Name
	return &name
}

// GetKind is nil-safe
func (e *Envelope) GetKind() EventKind {
	if e == nil {
		return ""
	}
	return e.Kind
}

// GetPayload is nil-safe
func (e *Envelope) GetPayload() any {
	if e == nil {
		return nil
	}
	return e.Payload
}

// GetOccurredAt is nil-safe
func (e *Envelope) GetOccurredAt() string {
	if e == nil {
		return ""
	}
	return e.OccurredAt
}
