package activity

import (
	"fmt"

	"github.com/m-mizutani/ghtrail/pkg/domain/model"
)

// UnknownEvent is rendered for nil envelopes and envelopes without a repository
const UnknownEvent = "Unknown event"

// Line is a formatted envelope plus the hint a presenter needs to style it
type Line struct {
	Text  string          `json:"text"`
	Kind  model.EventKind `json:"kind,omitempty"`
	Style Style           `json:"-"`
}

// Describe renders env. It never fails, whatever the envelope looks like.
func (t *Table) Describe(env *model.Envelope) Line {
	if env == nil || env.Repo == nil {
		return Line{Text: UnknownEvent, Style: StyleUnknown}
	}

	repo := model.ParseRepoRef(env.RepoName()).GetName()
	if s, ok := t.strategies[env.Kind]; ok && s.Render != nil {
		return Line{Text: s.Render(env, repo), Kind: env.Kind, Style: s.Style}
	}

	return Line{
		Text:  fmt.Sprintf("%s on %s", env.Kind, repo),
		Kind:  env.Kind,
		Style: StyleDefault,
	}
}

// Format is Describe without the style
func (t *Table) Format(env *model.Envelope) string {
	return t.Describe(env).Text
}

// Describe renders env with the default table
func Describe(env *model.Envelope) Line {
	return defaultTable.Describe(env)
}

// Format renders env with the default table
func Format(env *model.Envelope) string {
	return defaultTable.Format(env)
}

// DescribeAll renders every envelope, one line per envelope in input order
func DescribeAll(envs []*model.Envelope) []Line {
	lines := make([]Line, len(envs))
	for i, env := range envs {
		lines[i] = defaultTable.Describe(env)
	}
	return lines
}

// FormatAll is DescribeAll without styles
func FormatAll(envs []*model.Envelope) []string {
	texts := make([]string, len(envs))
	for i, env := range envs {
		texts[i] = defaultTable.Format(env)
	}
	return texts
}
