package activity_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/ghtrail/pkg/domain/model"
)

func envelope(kind model.EventKind, repo string, payload any, at string) *model.Envelope {
	env := &model.Envelope{Kind: kind, Payload: payload, OccurredAt: at}
	if repo != "" {
		env.Repo = &model.Repo{Name: repo}
	}
	return env
}

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	gt.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func decodeList(t *testing.T, s string) []any {
	t.Helper()
	var v []any
	gt.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}
