// Package paging provides offset pagination for table views.
//
// A request names a page size and a 1-based page number:
//
//	params := paging.NormalizeParams(paging.Params{Page: 3, PerPage: 20})
//	rows, total := queryRows(params.Offset(), params.PerPage)
//
//	page := paging.NewPage(rows, total, params)
//	// {items: [...], total: 95, perPage: 20, currentPage: 3, lastPage: 5, from: 41, to: 60}
//
// Paginate wraps the two steps for a PagingFunc:
//
//	page, err := paging.Paginate(params, func(offset, limit int) ([]Row, int, error) {
//	    return repo.List(ctx, offset, limit)
//	})
//
// MapItems converts the items of a page while keeping its counters, which is
// how the table renderer turns raw rows into column objects.
package paging
