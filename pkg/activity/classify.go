package activity

import "github.com/m-mizutani/ghtrail/pkg/domain/model"

// FilterByKind keeps the envelopes whose kind equals kind, in their original order.
// The result is never nil.
func FilterByKind(envs []*model.Envelope, kind model.EventKind) []*model.Envelope {
	filtered := make([]*model.Envelope, 0, len(envs))
	for _, env := range envs {
		if env != nil && env.Kind == kind {
			filtered = append(filtered, env)
		}
	}
	return filtered
}

// CountByKind tallies envelopes per kind. nil envelopes are not counted.
func CountByKind(envs []*model.Envelope) map[model.EventKind]int {
	counts := make(map[model.EventKind]int)
	for _, env := range envs {
		if env != nil {
			counts[env.Kind]++
		}
	}
	return counts
}
