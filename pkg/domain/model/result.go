package model

// ViewResult is the outcome of projecting a user's events through a named view.
// An empty Records slice is a valid result; Message then explains it.
type ViewResult struct {
	Username string   `json:"username"`
	View     string   `json:"view"`
	Records  []Record `json:"records"`
	Message  string   `json:"message,omitempty"`
}

// Summary aggregates the three upstream collections of a user
type Summary struct {
	Username     string            `json:"username"`
	EventCount   int               `json:"event_count"`
	KindCounts   map[EventKind]int `json:"kind_counts"`
	StarredCount int               `json:"starred_count"`
	RepoCount    int               `json:"repo_count"`
	TotalStars   int               `json:"total_stars"` // stargazers across owned repositories
	Languages    map[string]int    `json:"languages"`
}
