// Package query is the small query engine table renders run against.
//
// A Source opens a Builder over one model (a table name for SQL, a collection
// key for memory). Builders are immutable: Where and OrderBy return a new
// Builder, so a base query can be shared and extended per request.
//
//	q := src.NewQuery("users").
//		Where(query.Any(query.Like("name", "%ann%"), query.Like("email", "%ann%"))).
//		OrderBy("id", types.Descending)
//	page, err := q.Paginate(ctx, 20, 1)
package query
