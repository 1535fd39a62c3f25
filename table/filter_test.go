package table

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ncobase/tablekit/data/query"
	"github.com/ncobase/tablekit/paging"
	"github.com/ncobase/tablekit/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a Builder that keeps the predicates it receives.
type recorder struct {
	preds []query.Predicate
}

func (r *recorder) Where(p query.Predicate) query.Builder {
	return &recorder{preds: append(append([]query.Predicate{}, r.preds...), p)}
}

func (r *recorder) OrderBy(string, types.Order) query.Builder { return r }

func (r *recorder) Paginate(context.Context, int, int) (*paging.Page[query.Row], error) {
	return paging.NewPage[query.Row](nil, 0, paging.Params{}), nil
}

func (r *recorder) LikeOperator() string { return "LIKE" }

func TestTextFilterPredicates(t *testing.T) {
	tests := []struct {
		c    TextCase
		want query.Predicate
	}{
		{Contains, query.Cond{Field: "email", Op: query.OpLike, Value: "%acme%"}},
		{NotContains, query.Cond{Field: "email", Op: query.OpNotLike, Value: "%acme%"}},
		{Equals, query.Cond{Field: "email", Op: query.OpEq, Value: "acme"}},
		{NotEquals, query.Cond{Field: "email", Op: query.OpNe, Value: "acme"}},
		{StartsWith, query.Cond{Field: "email", Op: query.OpLike, Value: "acme%"}},
		{EndsWith, query.Cond{Field: "email", Op: query.OpLike, Value: "%acme"}},
		{NotStartsWith, query.Cond{Field: "email", Op: query.OpNotLike, Value: "acme%"}},
		{NotEndsWith, query.Cond{Field: "email", Op: query.OpNotLike, Value: "%acme"}},
	}
	require.Len(t, tests, len(TextCases()))

	f := NewTextFilter("Email", "email")
	for _, tt := range tests {
		t.Run(string(tt.c), func(t *testing.T) {
			q, err := f.Apply(nil, &recorder{}, string(tt.c), "acme")
			require.NoError(t, err)
			assert.Equal(t, []query.Predicate{tt.want}, q.(*recorder).preds)
		})
	}
}

func TestEveryTextCaseHasPredicateAndLabel(t *testing.T) {
	for _, c := range TextCases() {
		assert.Containsf(t, textPredicates, c, "predicate for %s", c)
		assert.NotEmptyf(t, c.Label(), "label for %s", c)
	}
	assert.Len(t, textPredicates, len(TextCases()))
}

func TestTextFilterUnknownCase(t *testing.T) {
	f := NewTextFilter("Email", "email")
	for _, c := range []string{"", "CONTAINS", "between", "like"} {
		_, err := f.Apply(nil, &recorder{}, c, "v")
		var fe *FilterError
		require.Truef(t, errors.As(err, &fe), "case %q", c)
		assert.Equal(t, &FilterError{Filter: "TextFilter", Case: c}, fe)
		assert.True(t, errors.Is(err, ErrInvalidFilterCase))
	}
}

func TestTextFilterOptions(t *testing.T) {
	f := NewTextFilter("Name", "name").WithOptions(EndsWith, Contains, EndsWith)
	assert.Equal(t, []Option{{"ends_with", "Ends with"}, {"contains", "Contains"}}, f.Options())

	_, err := f.Apply(nil, &recorder{}, string(Equals), "x")
	assert.ErrorIs(t, err, ErrInvalidFilterCase)
}

func TestTextFilterJSON(t *testing.T) {
	f := NewTextFilter("Name", "name").WithOptions(StartsWith, Equals).Share("placeholder", "Search names")
	raw, err := json.Marshal(f.JSON(NewRequest(context.Background(), nil), FilterState{Case: "equals", Value: "bob", Active: true}))
	require.NoError(t, err)
	assert.Equal(t,
		`{"component":"text-filter","sharedData":{"placeholder":"Search names"},"bindings":{"classes":[],"styles":[]},`+
			`"label":"Name","attribute":"name","options":{"starts_with":"Starts with","equals":"Equals"},`+
			`"case":"equals","value":"bob","active":true}`,
		string(raw))
}

func TestFilterErrorMessage(t *testing.T) {
	err := &FilterError{Filter: "TextFilter", Case: "between"}
	assert.Equal(t, `invalid case "between" for TextFilter`, err.Error())
}
