package types

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Order represents sorting direction.
type Order string

const (
	Ascending  Order = "asc"  // Ascending order
	Descending Order = "desc" // Descending order
)

// ParseOrder parses a direction parameter. Anything other than
// asc or desc (case-insensitive) is rejected.
func ParseOrder(s string) (Order, bool) {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case Ascending:
		return Ascending, true
	case Descending:
		return Descending, true
	}
	return "", false
}

// Criterion represents a single sorting criterion.
type Criterion struct {
	Field string `json:"field"` // Field to sort by
	Order Order  `json:"order"` // Sort direction
}

// MultiCriteria supports multi-field sorting.
type MultiCriteria struct {
	Criteria []Criterion `json:"criteria"` // List of sorting criteria
}

// Sortable represents a sortable dataset interface.
type Sortable interface {
	Sort(criteria MultiCriteria) error // Sort method to be implemented
}

// DynamicSorter provides a generic implementation for sorting based on criteria.
type DynamicSorter struct {
	Data   []map[string]any                                     // Dataset to be sorted
	Getter func(item map[string]any, field string) (any, error) // Field value getter
}

// Sort sorts the dataset based on the given MultiCriteria.
func (ds *DynamicSorter) Sort(criteria MultiCriteria) error {
	if ds.Getter == nil {
		return errors.New("getter function is not defined")
	}

	sort.SliceStable(ds.Data, func(i, j int) bool {
		for _, c := range criteria.Criteria {
			val1, err1 := ds.Getter(ds.Data[i], c.Field)
			val2, err2 := ds.Getter(ds.Data[j], c.Field)
			if err1 != nil || err2 != nil {
				continue // Skip this field if there's an error
			}

			comparison := CompareValues(val1, val2)
			if c.Order == Descending {
				comparison = -comparison
			}

			if comparison != 0 {
				return comparison < 0
			}
		}
		return false
	})

	return nil
}

// CompareValues compares two values and returns -1, 0, or 1.
// Numbers of any width compare numerically, times chronologically and
// strings lexicographically. nil sorts before everything else.
// Returns 0 if a == b or types are not comparable.
func CompareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	if isNumber(a) && isNumber(b) {
		return CompareFloat(cast.ToFloat64(a), cast.ToFloat64(b))
	}

	switch aVal := a.(type) {
	case string:
		if bVal, ok := b.(string); ok {
			return CompareString(aVal, bVal)
		}
	case time.Time:
		if bVal, ok := b.(time.Time); ok {
			return aVal.Compare(bVal)
		}
	case bool:
		if bVal, ok := b.(bool); ok {
			return CompareInt(cast.ToInt(aVal), cast.ToInt(bVal))
		}
	}
	// Consider them equal if types don't match or are unsupported
	return 0
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}

// CompareInt compares two integers.
func CompareInt(a, b int) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// CompareFloat compares two floats.
func CompareFloat(a, b float64) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// CompareString compares two strings lexicographically.
func CompareString(a, b string) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}
