package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/ghtrail/pkg/domain/model"
	"github.com/m-mizutani/ghtrail/pkg/domain/types"
)

func TestParseRepoRef(t *testing.T) {
	tests := []struct {
		name      string
		composite *string
		wantName  *string
		wantOwner *string
	}{
		{
			name:      "owner and name",
			composite: types.Ptr("octo/repo1"),
			wantName:  types.Ptr("repo1"),
			wantOwner: types.Ptr("octo"),
		},
		{
			name:      "no separator",
			composite: types.Ptr("standalone"),
			wantName:  types.Ptr("standalone"),
		},
		{
			name: "absent",
		},
		{
			name:      "suffix keeps further separators",
			composite: types.Ptr("a/b/c"),
			wantName:  types.Ptr("b/c"),
			wantOwner: types.Ptr("a"),
		},
		{
			name:      "leading separator",
			composite: types.Ptr("/name"),
			wantName:  types.Ptr("name"),
			wantOwner: types.Ptr(""),
		},
		{
			name:      "empty string",
			composite: types.Ptr(""),
			wantName:  types.Ptr(""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := model.ParseRepoRef(tt.composite)

			if tt.wantName == nil {
				gt.V(t, ref.Name).Nil()
			} else {
				gt.V(t, ref.Name).NotNil()
				gt.Equal(t, *ref.Name, *tt.wantName)
			}

			if tt.wantOwner == nil {
				gt.V(t, ref.Owner).Nil()
			} else {
				gt.V(t, ref.Owner).NotNil()
				gt.Equal(t, *ref.Owner, *tt.wantOwner)
			}
		})
	}
}

func TestEnvelope_NilSafeGetters(t *testing.T) {
	var env *model.Envelope

	gt.V(t, env.RepoName()).Nil()
	gt.Equal(t, env.GetKind(), model.EventKind(""))
	gt.V(t, env.GetPayload()).Nil()
	gt.Equal(t, env.GetOccurredAt(), "")

	env = &model.Envelope{Kind: model.KindPush, Repo: &model.Repo{Name: "o/r"}}
	gt.Equal(t, *env.RepoName(), "o/r")
}
