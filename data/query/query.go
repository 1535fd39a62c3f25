package query

import (
	"context"
	"errors"

	"github.com/ncobase/tablekit/paging"
	"github.com/ncobase/tablekit/types"
)

var (
	// ErrInvalidIdentifier is returned for model or field names that are not
	// plain (optionally dotted) identifiers.
	ErrInvalidIdentifier = errors.New("query: invalid identifier")
	// ErrUnknownModel is returned when a source has no data for the model.
	ErrUnknownModel = errors.New("query: unknown model")
	// ErrUnsupportedOp is returned for a Cond with an operator the engine
	// does not know.
	ErrUnsupportedOp = errors.New("query: unsupported operator")
)

// Row is one record keyed by column name.
type Row = map[string]any

// Builder accumulates conditions and ordering for one model.
type Builder interface {
	// Where returns a builder with p AND-combined onto the existing conditions.
	Where(p Predicate) Builder
	// OrderBy returns a builder with one more ordering term.
	OrderBy(field string, order types.Order) Builder
	// Paginate runs the query and returns one page of rows.
	Paginate(ctx context.Context, perPage, page int) (*paging.Page[Row], error)
	// LikeOperator names the operator the engine uses for OpLike.
	LikeOperator() string
}

// Source opens builders over named models.
type Source interface {
	NewQuery(model string) Builder
}

type orderTerm struct {
	field string
	order types.Order
}

// state is the immutable part shared by the builder implementations.
type state struct {
	model  string
	preds  []Predicate
	orders []orderTerm
}

func (s state) where(p Predicate) state {
	next := s
	next.preds = append(append(make([]Predicate, 0, len(s.preds)+1), s.preds...), p)
	return next
}

func (s state) orderBy(field string, order types.Order) state {
	if order != types.Descending {
		order = types.Ascending
	}
	next := s
	next.orders = append(append(make([]orderTerm, 0, len(s.orders)+1), s.orders...), orderTerm{field, order})
	return next
}
