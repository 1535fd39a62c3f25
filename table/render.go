package table

import (
	"context"
	"fmt"

	"github.com/Velocidex/ordereddict"
	"github.com/ncobase/tablekit/data/query"
	"github.com/ncobase/tablekit/logging/logger"
	"github.com/ncobase/tablekit/paging"
	"github.com/ncobase/tablekit/types"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// Cells is one rendered row: a serialized cell per authorized column.
type Cells = []*ordereddict.Dict

// Envelope is the rendered table.
type Envelope struct {
	*paging.Page[Cells]
	Key               string              `json:"key"`
	Headings          []Heading           `json:"headings"`
	IsSearchable      bool                `json:"isSearchable"`
	Actions           []*ordereddict.Dict `json:"actions"`
	StandaloneActions []*ordereddict.Dict `json:"standaloneActions"`
	Filters           []*ordereddict.Dict `json:"filters"`
	HasActions        bool                `json:"hasActions"`
	Debounce          float64             `json:"debounce"`
	Bindings          Binding             `json:"bindings"`
}

// Render runs the query for req and serializes the page.
//
// Parameters are namespaced by the table key: _search, _per_page, _page,
// _sort, _direction, and _filter_<attribute> with _filter_<attribute>_case.
// Unusable paging and sort values fall back silently; an invalid filter
// case aborts with a *FilterError.
func (t *Table) Render(req *Request) (*Envelope, error) {
	if req == nil {
		req = NewRequest(context.Background(), nil)
	}
	req = req.WithSettings(t.settings)
	def := t.def

	columns := lo.Filter(def.Columns(req), func(c *Column, _ int) bool {
		return c != nil && c.Authorize(req)
	})
	headings := lo.Map(columns, func(c *Column, _ int) Heading { return c.Heading() })

	q := t.source.NewQuery(def.Model())
	if hooked := def.Query(req, q); hooked != nil {
		q = hooked
	}

	searchable := lo.Compact(def.Search(req))
	q = t.applySearch(req, q, searchable)

	q, filters, err := t.applyFilters(req, q)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", t.key, err)
	}

	q = t.applySort(req, q, columns)

	perPage := t.perPage(req)
	page, err := q.Paginate(req.Context(), perPage, req.Integer(t.param("page")))
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", t.key, err)
	}

	rows, err := paging.MapItems(page, func(row query.Row) (Cells, error) {
		cells := make(Cells, 0, len(columns))
		for _, c := range columns {
			cell, err := c.JSON(req, row)
			if err != nil {
				return nil, err
			}
			cells = append(cells, cell)
		}
		return cells, nil
	})
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", t.key, err)
	}

	actions := t.resolveActions(req, def.Actions(req))
	standalone := t.resolveActions(req, def.StandaloneActions(req))

	logger.Debugf(req.Context(), "table %s rendered page %d/%d with %d rows (%s search)",
		t.key, rows.CurrentPage, rows.LastPage, len(rows.Items), q.LikeOperator())

	return &Envelope{
		Page:              rows,
		Key:               t.key,
		Headings:          headings,
		IsSearchable:      len(searchable) > 0,
		Actions:           actions,
		StandaloneActions: standalone,
		Filters:           filters,
		HasActions:        len(actions) > 0 || len(standalone) > 0,
		Debounce:          t.debounce(req),
		Bindings:          def.Bindings(req).Clone(),
	}, nil
}

// applySearch adds one OR group matching the term against every searchable
// attribute.
func (t *Table) applySearch(req *Request, q query.Builder, attributes []string) query.Builder {
	term := req.Input(t.param("search"))
	if term == "" || len(attributes) == 0 {
		return q
	}
	preds := lo.Map(attributes, func(attr string, _ int) query.Predicate {
		return query.Like(attr, "%"+term+"%")
	})
	return q.Where(query.Any(preds...))
}

// applyFilters applies every authorized filter whose value parameter is
// present and returns their serialized state.
func (t *Table) applyFilters(req *Request, q query.Builder) (query.Builder, []*ordereddict.Dict, error) {
	declared := lo.Filter(t.def.Filters(req), func(f Filter, _ int) bool {
		return f != nil && f.Authorize(req)
	})

	out := make([]*ordereddict.Dict, 0, len(declared))
	for _, f := range declared {
		param := t.FilterParam(f.Attribute())
		state := FilterState{Case: firstCase(f)}
		if c := req.Input(param + "_case"); c != "" {
			state.Case = c
		}

		if value := req.Input(param); value != "" {
			next, err := f.Apply(req, q, state.Case, value)
			if err != nil {
				return nil, nil, err
			}
			q = next
			state.Value = value
			state.Active = true
		}
		out = append(out, f.JSON(req, state))
	}
	return q, out, nil
}

func firstCase(f Filter) string {
	if opts := f.Options(); len(opts) > 0 {
		return opts[0].Value
	}
	return ""
}

// applySort orders by the requested column when it is authorized and sortable.
func (t *Table) applySort(req *Request, q query.Builder, columns []*Column) query.Builder {
	attr := req.Input(t.param("sort"))
	if attr == "" {
		return q
	}
	_, ok := lo.Find(columns, func(c *Column) bool { return c.IsSortable() && c.Attribute == attr })
	if !ok {
		return q
	}
	order, ok := types.ParseOrder(req.Input(t.param("direction")))
	if !ok {
		order = types.Ascending
	}
	return q.OrderBy(attr, order)
}

// perPage uses the request value when positive, else the first declared
// option, else the per_page_options setting.
func (t *Table) perPage(req *Request) int {
	if n := req.Integer(t.param("per_page")); n > 0 {
		return n
	}
	options := t.def.PerPageOptions(req)
	if len(options) == 0 {
		options = cast.ToIntSlice(t.settings.Get(SettingPerPageOptions, nil))
	}
	if len(options) > 0 && options[0] > 0 {
		return options[0]
	}
	return paging.DefaultPerPage
}

// debounce prefers the definition's positive value, then a numeric setting.
func (t *Table) debounce(req *Request) float64 {
	if d := t.def.Debounce(req); d > 0 {
		return d
	}
	switch v := t.settings.Get(SettingSearchDebounce, DefaultSearchDebounce).(type) {
	case float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return cast.ToFloat64(v)
	}
	return DefaultSearchDebounce
}

func (t *Table) resolveActions(req *Request, actions []*Action) []*ordereddict.Dict {
	out := make([]*ordereddict.Dict, 0, len(actions))
	for _, a := range actions {
		if a != nil && a.Authorize(req) {
			out = append(out, a.JSON(req))
		}
	}
	return out
}
