package table

import (
	"fmt"

	"github.com/Velocidex/ordereddict"
	"github.com/ncobase/tablekit/data/query"
	"github.com/ncobase/tablekit/utils/convert"
)

// Column component names.
const (
	TextComponent    = "text-column"
	NumberComponent  = "number-column"
	BooleanComponent = "boolean-column"
)

// DefaultTdClass is the class every cell starts with.
const DefaultTdClass = "tc-table-td"

// Resolver computes the value of a column for one row.
type Resolver func(row query.Row, req *Request) (any, error)

// Column describes one field of the table and how its cells resolve.
// A column is not modified while rendering and may serve concurrent renders.
type Column struct {
	Authorization

	Name      string
	Attribute string

	component  string
	resolver   Resolver
	defaultVal any
	sortable   bool
	asHTML     bool
	td         Binding
	heading    Binding
}

// NewColumn returns a column rendered by component.
func NewColumn(component, name, attribute string) *Column {
	return &Column{
		Name:      name,
		Attribute: attribute,
		component: component,
		td:        Binding{Classes: []string{DefaultTdClass}, Styles: []string{}},
		heading:   NewBinding(),
	}
}

// Text returns a plain text column.
func Text(name, attribute string) *Column { return NewColumn(TextComponent, name, attribute) }

// Number returns a numeric column.
func Number(name, attribute string) *Column { return NewColumn(NumberComponent, name, attribute) }

// Boolean returns a yes/no column.
func Boolean(name, attribute string) *Column { return NewColumn(BooleanComponent, name, attribute) }

// Using sets a resolver used instead of reading the attribute.
func (c *Column) Using(fn Resolver) *Column {
	c.resolver = fn
	return c
}

// Default sets the value shown for blank cells. A nil default defers to
// the default_value setting.
func (c *Column) Default(v any) *Column {
	c.defaultVal = v
	return c
}

// Sortable allows ordering the table by this column.
func (c *Column) Sortable() *Column {
	c.sortable = true
	return c
}

// AsHTML marks the value as trusted markup.
func (c *Column) AsHTML() *Column {
	c.asHTML = true
	return c
}

// CanSee installs the authorization predicate.
func (c *Column) CanSee(fn func(*Request) bool) *Column {
	c.canSee(fn)
	return c
}

// WithComponent overrides the component name.
func (c *Column) WithComponent(name string) *Column {
	c.component = name
	return c
}

// SetTdClasses replaces the cell classes.
func (c *Column) SetTdClasses(classes ...string) *Column {
	c.td.SetClasses(classes...)
	return c
}

// AddTdClasses merges classes into the cell classes.
func (c *Column) AddTdClasses(classes ...string) *Column {
	c.td.AddClasses(classes...)
	return c
}

// SetTdStyles replaces the cell styles.
func (c *Column) SetTdStyles(styles ...string) *Column {
	c.td.SetStyles(styles...)
	return c
}

// AddTdStyles merges styles into the cell styles.
func (c *Column) AddTdStyles(styles ...string) *Column {
	c.td.AddStyles(styles...)
	return c
}

// SetHeadingClasses replaces the heading classes.
func (c *Column) SetHeadingClasses(classes ...string) *Column {
	c.heading.SetClasses(classes...)
	return c
}

// AddHeadingClasses merges classes into the heading classes.
func (c *Column) AddHeadingClasses(classes ...string) *Column {
	c.heading.AddClasses(classes...)
	return c
}

// SetHeadingStyles replaces the heading styles.
func (c *Column) SetHeadingStyles(styles ...string) *Column {
	c.heading.SetStyles(styles...)
	return c
}

// AddHeadingStyles merges styles into the heading styles.
func (c *Column) AddHeadingStyles(styles ...string) *Column {
	c.heading.AddStyles(styles...)
	return c
}

// Component implements Element.
func (c *Column) Component(*Request) string { return c.component }

// IsSortable reports whether the table may be ordered by this column.
func (c *Column) IsSortable() bool { return c.sortable }

// Resolve returns the display value of the column for row.
//
// Blank values (nil, empty strings, empty collections) are replaced by the
// column default, then by the default_value setting. Booleans and integers
// are never blank, so false and 0 display as themselves.
func (c *Column) Resolve(req *Request, row query.Row) (any, error) {
	var value any
	if c.resolver != nil {
		v, err := c.resolver(row, req)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", c.Attribute, err)
		}
		value = v
	} else {
		value, _ = convert.Get(row, c.Attribute)
	}

	if _, isBool := value.(bool); !isBool && !convert.IsInteger(value) && convert.IsBlank(value) {
		return c.resolveDefault(req), nil
	}
	return value, nil
}

func (c *Column) resolveDefault(req *Request) any {
	if c.defaultVal != nil {
		return c.defaultVal
	}
	return req.Settings().Get(SettingDefaultValue, nil)
}

// JSON serializes the cell of row.
func (c *Column) JSON(req *Request, row query.Row) (*ordereddict.Dict, error) {
	value, err := c.Resolve(req, row)
	if err != nil {
		return nil, err
	}
	return ordereddict.NewDict().
		Set("component", c.Component(req)).
		Set("value", value).
		Set("sortable", c.sortable).
		Set("asHtml", c.asHTML).
		Set("attribute", c.Attribute).
		Set("bindings", ordereddict.NewDict().
			Set("td", ordereddict.NewDict().
				Set("styles", nonNil(c.td.Styles)).
				Set("classes", nonNil(c.td.Classes)))), nil
}

// Heading is the header cell of a column.
type Heading struct {
	Attribute string   `json:"attribute"`
	Name      string   `json:"name"`
	Classes   []string `json:"classes"`
	Styles    []string `json:"styles"`
}

// Heading projects the column onto its header cell.
func (c *Column) Heading() Heading {
	return Heading{
		Attribute: c.Attribute,
		Name:      c.Name,
		Classes:   nonNil(c.heading.Classes),
		Styles:    nonNil(c.heading.Styles),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
