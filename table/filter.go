package table

import (
	"errors"
	"fmt"

	"github.com/Velocidex/ordereddict"
	"github.com/ncobase/tablekit/data/query"
)

// ErrInvalidFilterCase is wrapped by every FilterError.
var ErrInvalidFilterCase = errors.New("invalid filter case")

// FilterError reports a case the filter cannot apply. It stops the render:
// a bad case is a configuration defect, not missing data.
type FilterError struct {
	Filter string
	Case   string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("invalid case %q for %s", e.Case, e.Filter)
}

func (e *FilterError) Unwrap() error { return ErrInvalidFilterCase }

// Option is one selectable case of a filter.
type Option struct {
	Value string
	Label string
}

// FilterState is the case and value bound to a filter for one render.
type FilterState struct {
	Case   string
	Value  string
	Active bool
}

// Filter narrows the table query by one attribute.
type Filter interface {
	Element
	Label() string
	Attribute() string
	// Options lists the allowed cases in display order.
	Options() []Option
	// Apply returns q narrowed by attribute matching value under the case.
	Apply(req *Request, q query.Builder, c, value string) (query.Builder, error)
	// JSON serializes the filter with its bound state.
	JSON(req *Request, state FilterState) *ordereddict.Dict
}

// optionsDict keeps the option order in the serialized mapping.
func optionsDict(options []Option) *ordereddict.Dict {
	d := ordereddict.NewDict()
	for _, o := range options {
		d.Set(o.Value, o.Label)
	}
	return d
}
