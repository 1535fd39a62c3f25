package paging

import (
	"fmt"
	"math"
)

// DefaultPerPage is used when a caller supplies no usable page size.
const DefaultPerPage = 20

// MaxPerPage bounds the page size accepted from requests.
const MaxPerPage = 1000

// Params holds the offset pagination parameters
type Params struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// Page holds one page of results and the counters the front end needs
type Page[T any] struct {
	Items       []T `json:"items"`
	Total       int `json:"total"`
	PerPage     int `json:"perPage"`
	CurrentPage int `json:"currentPage"`
	LastPage    int `json:"lastPage"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// NormalizeParams ensures that Page and PerPage are within an acceptable range
func NormalizeParams(params Params) Params {
	if params.PerPage <= 0 {
		params.PerPage = DefaultPerPage
	}
	if params.PerPage > MaxPerPage {
		params.PerPage = MaxPerPage
	}
	if params.Page < 1 {
		params.Page = 1
	}
	// keep (Page-1)*PerPage within int
	if maxPage := math.MaxInt / params.PerPage; params.Page > maxPage {
		params.Page = maxPage
	}
	return params
}

// Offset returns the number of rows to skip for the page. It saturates at
// math.MaxInt instead of overflowing.
func (p Params) Offset() int {
	if p.Page < 1 || p.PerPage < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PerPage {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PerPage
}

// NewPage builds a page from the fetched items and the total row count
func NewPage[T any](items []T, total int, params Params) *Page[T] {
	params = NormalizeParams(params)
	if items == nil {
		items = make([]T, 0)
	}

	lastPage := 1
	if total > 0 {
		lastPage = (total + params.PerPage - 1) / params.PerPage
	}

	page := &Page[T]{
		Items:       items,
		Total:       total,
		PerPage:     params.PerPage,
		CurrentPage: params.Page,
		LastPage:    lastPage,
	}
	if len(items) > 0 {
		page.From = params.Offset() + 1
		page.To = params.Offset() + len(items)
	}
	return page
}

// MapItems converts every item of the page with fn, keeping the counters.
// The first error aborts the mapping.
func MapItems[T, U any](page *Page[T], fn func(T) (U, error)) (*Page[U], error) {
	items := make([]U, 0, len(page.Items))
	for _, item := range page.Items {
		mapped, err := fn(item)
		if err != nil {
			return nil, err
		}
		items = append(items, mapped)
	}
	return &Page[U]{
		Items:       items,
		Total:       page.Total,
		PerPage:     page.PerPage,
		CurrentPage: page.CurrentPage,
		LastPage:    page.LastPage,
		From:        page.From,
		To:          page.To,
	}, nil
}

// PagingFunc is a function type that fetches one window of rows and the total count
type PagingFunc[T any] func(offset, limit int) (items []T, total int, err error)

// Paginate applies pagination using the provided PagingFunc
func Paginate[T any](params Params, paginateFunc PagingFunc[T]) (*Page[T], error) {
	params = NormalizeParams(params)
	items, total, err := paginateFunc(params.Offset(), params.PerPage)
	if err != nil {
		return nil, fmt.Errorf("pagination error: %w", err)
	}
	return NewPage(items, total, params), nil
}
