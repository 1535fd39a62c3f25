package query

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/ncobase/tablekit/paging"
	"github.com/ncobase/tablekit/types"
	"github.com/ncobase/tablekit/utils/convert"
	"github.com/spf13/cast"
)

// MemorySource serves rows held in process, keyed by model name.
type MemorySource struct {
	mu   sync.RWMutex
	data map[string][]Row
}

// NewMemorySource returns a source over data. The map is not copied.
func NewMemorySource(data map[string][]Row) *MemorySource {
	if data == nil {
		data = make(map[string][]Row)
	}
	return &MemorySource{data: data}
}

// Put replaces the rows of model.
func (s *MemorySource) Put(model string, rows []Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[model] = rows
}

// NewQuery opens a builder over the rows stored for model.
func (s *MemorySource) NewQuery(model string) Builder {
	return &memQuery{src: s, state: state{model: model}}
}

type memQuery struct {
	src *MemorySource
	state
}

func (q *memQuery) Where(p Predicate) Builder {
	return &memQuery{src: q.src, state: q.state.where(p)}
}

func (q *memQuery) OrderBy(field string, order types.Order) Builder {
	return &memQuery{src: q.src, state: q.state.orderBy(field, order)}
}

func (q *memQuery) LikeOperator() string { return "LIKE" }

func (q *memQuery) Paginate(ctx context.Context, perPage, page int) (*paging.Page[Row], error) {
	q.src.mu.RLock()
	all, ok := q.src.data[q.model]
	q.src.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, q.model)
	}

	var matched []Row
	for _, row := range all {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		keep := true
		for _, p := range q.preds {
			ok, err := eval(p, row)
			if err != nil {
				return nil, err
			}
			if !ok {
				keep = false
				break
			}
		}
		if keep {
			matched = append(matched, row)
		}
	}

	if len(q.orders) > 0 {
		criteria := types.MultiCriteria{}
		for _, o := range q.orders {
			criteria.Criteria = append(criteria.Criteria, types.Criterion{Field: o.field, Order: o.order})
		}
		sorter := &types.DynamicSorter{Data: matched, Getter: fieldValue}
		if err := sorter.Sort(criteria); err != nil {
			return nil, err
		}
	}

	params := paging.Params{Page: page, PerPage: perPage}
	return paging.Paginate(params, func(offset, limit int) ([]Row, int, error) {
		if offset < 0 || offset >= len(matched) {
			return nil, len(matched), nil
		}
		end := min(offset+limit, len(matched))
		return matched[offset:end], len(matched), nil
	})
}

func fieldValue(row map[string]any, field string) (any, error) {
	v, _ := convert.Get(row, field)
	return v, nil
}

func eval(p Predicate, row Row) (bool, error) {
	switch p := p.(type) {
	case nil:
		return true, nil
	case Group:
		return evalGroup(p, row)
	case Cond:
		return evalCond(p, row)
	}
	return false, fmt.Errorf("%w: %T", ErrUnsupportedOp, p)
}

func evalGroup(g Group, row Row) (bool, error) {
	for _, p := range g.Preds {
		if p == nil {
			continue
		}
		ok, err := eval(p, row)
		if err != nil {
			return false, err
		}
		if g.Or && ok {
			return true, nil
		}
		if !g.Or && !ok {
			return false, nil
		}
	}
	// no OR member matched, or every AND member did
	return !g.Or, nil
}

func evalCond(c Cond, row Row) (bool, error) {
	if !identPattern.MatchString(c.Field) {
		return false, fmt.Errorf("%w: %q", ErrInvalidIdentifier, c.Field)
	}
	v, _ := convert.Get(row, c.Field)

	switch c.Op {
	case OpEq:
		return equal(v, c.Value), nil
	case OpNe:
		return !equal(v, c.Value), nil
	case OpLike, OpNotLike:
		if v == nil {
			// NULL never matches a pattern in either direction
			return false, nil
		}
		re, err := likePattern(cast.ToString(c.Value))
		if err != nil {
			return false, err
		}
		matched := re.MatchString(cast.ToString(v))
		if c.Op == OpNotLike {
			return !matched, nil
		}
		return matched, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnsupportedOp, c.Op)
}

func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	as, errA := cast.ToStringE(a)
	bs, errB := cast.ToStringE(b)
	if errA != nil || errB != nil {
		return types.CompareValues(a, b) == 0
	}
	return as == bs
}

// likePattern translates a LIKE pattern into an anchored, case-insensitive
// regular expression.
func likePattern(pattern string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteString("(?is)^")
	for _, r := range pattern {
		switch r {
		case '%':
			sb.WriteString(".*")
		case '_':
			sb.WriteString(".")
		default:
			sb.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	sb.WriteString("$")
	return regexp.Compile(sb.String())
}
