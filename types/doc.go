// Package types provides small shared value types used across tablekit.
//
// Sorting:
//
//	order, ok := types.ParseOrder(c.Query("users_direction"))
//	sorter := &types.DynamicSorter{Data: rows, Getter: get}
//	_ = sorter.Sort(types.MultiCriteria{Criteria: []types.Criterion{{Field: "name", Order: order}}})
//
// CompareValues orders mixed numeric widths, strings, times and booleans the
// way a SQL ORDER BY would for a single column.
package types
