package activity

import (
	"fmt"
	"maps"
	"slices"

	"github.com/m-mizutani/ghtrail/pkg/domain/model"
)

// Style tells a presenter how a formatted line should look. The core only picks the
// style; colors and icons belong to the presenter.
type Style int

const (
	StyleDefault Style = iota
	StyleUnknown
	StylePush
	StyleStar
	StyleIssue
	StyleFork
	StylePullRequest
)

// RenderFunc renders an envelope whose repository is known. repo is the short name.
type RenderFunc func(env *model.Envelope, repo string) string

// View is a named projection of one event kind. Empty explains a result without
// records.
type View struct {
	Name    string
	Kind    model.EventKind
	Empty   string
	Project func(env *model.Envelope) model.Record
}

// Apply keeps the envelopes of the view's kind and projects them in input order
func (v View) Apply(envs []*model.Envelope) []model.Record {
	matched := FilterByKind(envs, v.Kind)
	records := make([]model.Record, len(matched))
	for i, env := range matched {
		records[i] = v.Project(env)
	}
	return records
}

// Strategy is everything the package knows about one event kind
type Strategy struct {
	Kind    model.EventKind
	Project func(env *model.Envelope) model.Record
	Render  RenderFunc // nil falls back to the generic "<kind> on <repo>" rule
	Style   Style

	// Views exposed for this kind. Kind is taken from the strategy and a nil Project
	// means the strategy's own Project.
	Views []View
}

// Table maps kind tags to strategies. A Table is never mutated after construction,
// so one instance can be shared by any number of goroutines.
type Table struct {
	strategies map[model.EventKind]Strategy
	order      []model.EventKind
	views      []View
}

// NewTable builds a table. A later strategy for the same kind replaces an earlier one.
func NewTable(strategies ...Strategy) *Table {
	t := &Table{strategies: make(map[model.EventKind]Strategy, len(strategies))}
	for _, s := range strategies {
		t.add(s)
	}
	t.index()
	return t
}

// With returns a copy of t that also knows s
func (t *Table) With(s Strategy) *Table {
	next := &Table{
		strategies: maps.Clone(t.strategies),
		order:      slices.Clone(t.order),
	}
	next.add(s)
	next.index()
	return next
}

func (t *Table) add(s Strategy) {
	if _, ok := t.strategies[s.Kind]; !ok {
		t.order = append(t.order, s.Kind)
	}
	t.strategies[s.Kind] = s
}

func (t *Table) index() {
	t.views = nil
	for _, kind := range t.order {
		s := t.strategies[kind]
		for _, v := range s.Views {
			v.Kind = s.Kind
			if v.Project == nil {
				v.Project = s.Project
			}
			if v.Project == nil {
				continue
			}
			// a later kind exposing the same name takes it over
			t.views = slices.DeleteFunc(t.views, func(x View) bool { return x.Name == v.Name })
			t.views = append(t.views, v)
		}
	}
}

// Views lists the views of every registered kind in registration order
func (t *Table) Views() []View {
	return slices.Clone(t.views)
}

// View finds a view by name
func (t *Table) View(name string) (View, bool) {
	for _, v := range t.views {
		if v.Name == name {
			return v, true
		}
	}
	return View{}, false
}

// ViewNames returns the names accepted by View
func (t *Table) ViewNames() []string {
	names := make([]string, len(t.views))
	for i, v := range t.views {
		names[i] = v.Name
	}
	return names
}

// Lookup returns the strategy registered for kind
func (t *Table) Lookup(kind model.EventKind) (Strategy, bool) {
	s, ok := t.strategies[kind]
	return s, ok
}

// Kinds lists the registered kinds in lexical order
func (t *Table) Kinds() []model.EventKind {
	return slices.Sorted(maps.Keys(t.strategies))
}

// Project converts every envelope of a registered kind into its record, keeping input
// order. Envelopes of unknown kinds, and nil envelopes, are skipped.
func (t *Table) Project(envs []*model.Envelope) []model.Record {
	records := make([]model.Record, 0, len(envs))
	for _, env := range envs {
		if env == nil {
			continue
		}
		s, ok := t.strategies[env.Kind]
		if !ok || s.Project == nil {
			continue
		}
		records = append(records, s.Project(env))
	}
	return records
}

func boxed[T model.Record](fn func(*model.Envelope) T) func(*model.Envelope) model.Record {
	return func(env *model.Envelope) model.Record {
		return fn(env)
	}
}

func renderPush(env *model.Envelope, repo string) string {
	return fmt.Sprintf("Pushed %d commits to %s -> %s", commitCount(env), repo, env.GetOccurredAt())
}

func renderWatch(_ *model.Envelope, repo string) string {
	return "Starred " + repo
}

func renderIssues(_ *model.Envelope, repo string) string {
	return "Opened an issue in " + repo
}

func renderFork(_ *model.Envelope, repo string) string {
	return "Forked " + repo
}

func renderPullRequest(_ *model.Envelope, repo string) string {
	return "Created a pull request in " + repo
}

func viewOf(name, empty string) []View {
	return []View{{Name: name, Empty: empty}}
}

var defaultTable = NewTable(
	Strategy{
		Kind:    model.KindPush,
		Project: boxed(extractPush),
		Render:  renderPush,
		Style:   StylePush,
		Views: []View{
			{Name: "commits", Empty: "The specified user has no commit events.", Project: boxed(extractCommit)},
			{Name: "pushes", Empty: "The specified user has no push events."},
		},
	},
	Strategy{Kind: model.KindIssues, Project: boxed(extractIssue), Render: renderIssues, Style: StyleIssue,
		Views: viewOf("issues", "The specified user has no opened issues.")},
	Strategy{Kind: model.KindWatch, Project: boxed(extractWatch), Render: renderWatch, Style: StyleStar,
		Views: viewOf("stars", "The specified user has no starred repositories.")},
	Strategy{Kind: model.KindFork, Project: boxed(extractFork), Render: renderFork, Style: StyleFork,
		Views: viewOf("forks", "The specified user has no fork events.")},
	Strategy{Kind: model.KindPullRequest, Project: boxed(extractPullRequest), Render: renderPullRequest, Style: StylePullRequest,
		Views: viewOf("pulls", "The specified user has no pull request events.")},
	Strategy{Kind: model.KindRelease, Project: boxed(extractRelease),
		Views: viewOf("releases", "The specified user has no release events.")},
	Strategy{Kind: model.KindIssueComment, Project: boxed(extractComment),
		Views: viewOf("comments", "The specified user has no issue comments.")},
	Strategy{Kind: model.KindPublic, Project: boxed(extractPublic),
		Views: viewOf("public", "The specified user has not made any repository public.")},
	Strategy{Kind: model.KindDelete, Project: boxed(extractDelete),
		Views: viewOf("deletes", "The specified user has no delete events.")},
	Strategy{Kind: model.KindCreate, Project: boxed(extractCreate),
		Views: viewOf("creates", "The specified user has no create events.")},
	Strategy{Kind: model.KindMember, Project: boxed(extractMember),
		Views: viewOf("members", "The specified user has no member events.")},
)

// DefaultTable returns the table of all known GitHub event kinds
func DefaultTable() *Table {
	return defaultTable
}
