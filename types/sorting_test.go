package types

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrder(t *testing.T) {
	for in, want := range map[string]Order{"asc": Ascending, " DESC ": Descending} {
		got, ok := ParseOrder(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got)
	}
	_, ok := ParseOrder("sideways")
	assert.False(t, ok)
}

func TestCompareValues(t *testing.T) {
	now := time.Now()
	tests := []struct {
		a, b any
		want int
	}{
		{1, 2, -1},
		{int64(5), 5.0, 0},
		{uint8(9), 3, 1},
		{"b", "a", 1},
		{now, now.Add(time.Second), -1},
		{false, true, -1},
		{nil, 1, -1},
		{1, nil, 1},
		{nil, nil, 0},
		{"1", 1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CompareValues(tt.a, tt.b), "%v vs %v", tt.a, tt.b)
	}
}

func TestDynamicSorter(t *testing.T) {
	data := []map[string]any{
		{"name": "carol", "age": 30},
		{"name": "alice", "age": 30},
		{"name": "bob", "age": 25},
	}
	sorter := &DynamicSorter{
		Data: data,
		Getter: func(item map[string]any, field string) (any, error) {
			v, ok := item[field]
			if !ok {
				return nil, errors.New("missing")
			}
			return v, nil
		},
	}

	err := sorter.Sort(MultiCriteria{Criteria: []Criterion{
		{Field: "age", Order: Descending},
		{Field: "name", Order: Ascending},
	}})
	require.NoError(t, err)

	var names []string
	for _, row := range sorter.Data {
		names = append(names, row["name"].(string))
	}
	assert.Equal(t, []string{"alice", "carol", "bob"}, names)
}

func TestDynamicSorterRequiresGetter(t *testing.T) {
	sorter := &DynamicSorter{}
	assert.Error(t, sorter.Sort(MultiCriteria{}))
}
