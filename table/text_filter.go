package table

import (
	"github.com/Velocidex/ordereddict"
	"github.com/ncobase/tablekit/data/query"
	"github.com/samber/lo"
)

// TextFilterComponent renders text filters.
const TextFilterComponent = "text-filter"

// TextCase is the operator of a text filter.
type TextCase string

const (
	Contains      TextCase = "contains"
	NotContains   TextCase = "not_contains"
	Equals        TextCase = "equals"
	NotEquals     TextCase = "not_equals"
	StartsWith    TextCase = "starts_with"
	EndsWith      TextCase = "ends_with"
	NotStartsWith TextCase = "not_starts_with"
	NotEndsWith   TextCase = "not_ends_with"
)

// TextCases returns every text case in display order.
func TextCases() []TextCase {
	return []TextCase{Contains, NotContains, Equals, NotEquals, StartsWith, EndsWith, NotStartsWith, NotEndsWith}
}

var textCaseLabels = map[TextCase]string{
	Contains:      "Contains",
	NotContains:   "Does not contain",
	Equals:        "Equals",
	NotEquals:     "Does not equal",
	StartsWith:    "Starts with",
	EndsWith:      "Ends with",
	NotStartsWith: "Does not start with",
	NotEndsWith:   "Does not end with",
}

// Label is the display label of the case.
func (c TextCase) Label() string { return textCaseLabels[c] }

// textPredicates must have an entry for every TextCase.
var textPredicates = map[TextCase]func(attr, v string) query.Predicate{
	Contains:      func(a, v string) query.Predicate { return query.Like(a, "%"+v+"%") },
	NotContains:   func(a, v string) query.Predicate { return query.NotLike(a, "%"+v+"%") },
	Equals:        func(a, v string) query.Predicate { return query.Eq(a, v) },
	NotEquals:     func(a, v string) query.Predicate { return query.Ne(a, v) },
	StartsWith:    func(a, v string) query.Predicate { return query.Like(a, v+"%") },
	EndsWith:      func(a, v string) query.Predicate { return query.Like(a, "%"+v) },
	NotStartsWith: func(a, v string) query.Predicate { return query.NotLike(a, v+"%") },
	NotEndsWith:   func(a, v string) query.Predicate { return query.NotLike(a, "%"+v) },
}

// TextFilter matches an attribute against free text.
type TextFilter struct {
	element
	label     string
	attribute string
	cases     []TextCase
}

// NewTextFilter returns a filter offering every text case.
func NewTextFilter(label, attribute string) *TextFilter {
	return &TextFilter{
		element:   newElement(TextFilterComponent),
		label:     label,
		attribute: attribute,
		cases:     TextCases(),
	}
}

// WithOptions restricts the filter to cases, in the given order.
func (f *TextFilter) WithOptions(cases ...TextCase) *TextFilter {
	f.cases = lo.Uniq(cases)
	return f
}

// CanSee installs the authorization predicate.
func (f *TextFilter) CanSee(fn func(*Request) bool) *TextFilter {
	f.canSee(fn)
	return f
}

// Share adds a key to the shared data sent to the front end.
func (f *TextFilter) Share(key string, value any) *TextFilter {
	f.share(key, value)
	return f
}

func (f *TextFilter) Label() string     { return f.label }
func (f *TextFilter) Attribute() string { return f.attribute }

func (f *TextFilter) Options() []Option {
	return lo.Map(f.cases, func(c TextCase, _ int) Option {
		return Option{Value: string(c), Label: c.Label()}
	})
}

// Apply adds the predicate of case c. Cases outside the enumeration, or
// outside the options the filter was restricted to, fail with *FilterError.
func (f *TextFilter) Apply(_ *Request, q query.Builder, c, value string) (query.Builder, error) {
	tc := TextCase(c)
	build, ok := textPredicates[tc]
	if !ok || !lo.Contains(f.cases, tc) {
		return nil, &FilterError{Filter: "TextFilter", Case: c}
	}
	return q.Where(build(f.attribute, value)), nil
}

func (f *TextFilter) JSON(req *Request, state FilterState) *ordereddict.Dict {
	return f.baseJSON(req).
		Set("label", f.label).
		Set("attribute", f.attribute).
		Set("options", optionsDict(f.Options())).
		Set("case", state.Case).
		Set("value", state.Value).
		Set("active", state.Active)
}
