package table

import (
	"reflect"
	"strings"

	"github.com/huandu/xstrings"
	"github.com/ncobase/tablekit/data/query"
)

// Definition declares a table. Embed Base to inherit the defaults and
// implement Model and Columns.
type Definition interface {
	// URIKey namespaces the request parameters. Empty derives the key
	// from the definition's type name.
	URIKey() string
	// Model names the resource the source queries.
	Model() string
	// Columns lists every column in display order, before authorization.
	Columns(req *Request) []*Column
	// Search lists the attributes matched by the search term.
	Search(req *Request) []string
	// Query narrows the base query before search and filters apply.
	Query(req *Request, q query.Builder) query.Builder
	// PerPageOptions lists the page sizes; the first is the default.
	PerPageOptions(req *Request) []int
	Filters(req *Request) []Filter
	Actions(req *Request) []*Action
	StandaloneActions(req *Request) []*Action
	// Debounce is the search debounce in seconds; 0 uses the setting.
	Debounce(req *Request) float64
	Bindings(req *Request) Binding
}

// Base provides the default behaviour of a Definition.
type Base struct{}

func (Base) URIKey() string                                  { return "" }
func (Base) Search(*Request) []string                        { return nil }
func (Base) Query(_ *Request, q query.Builder) query.Builder { return q }
func (Base) PerPageOptions(*Request) []int                   { return []int{20, 50, 100} }
func (Base) Filters(*Request) []Filter                       { return nil }
func (Base) Actions(*Request) []*Action                      { return nil }
func (Base) StandaloneActions(*Request) []*Action            { return nil }
func (Base) Debounce(*Request) float64                       { return 0 }
func (Base) Bindings(*Request) Binding                       { return NewBinding("table") }

// Table renders one definition against a query source.
type Table struct {
	def      Definition
	source   query.Source
	settings Settings
	key      string
}

// New returns a table for def reading from source. A nil settings uses
// the built-in defaults.
func New(def Definition, source query.Source, settings Settings) *Table {
	if settings == nil {
		settings = MapSettings(nil)
	}
	return &Table{
		def:      def,
		source:   source,
		settings: settings,
		key:      uriKey(def),
	}
}

// Key returns the URI key. It depends only on the definition, so every
// render of the table uses the same key.
func (t *Table) Key() string { return t.key }

// Definition returns the wrapped definition.
func (t *Table) Definition() Definition { return t.def }

func uriKey(def Definition) string {
	if key := strings.ToLower(strings.TrimSpace(def.URIKey())); key != "" {
		return key
	}
	typ := reflect.TypeOf(def)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return strings.ToLower(strings.TrimSpace(xstrings.ToSnakeCase(typ.Name())))
}

// param namespaces name with the table key.
func (t *Table) param(name string) string {
	return t.key + "_" + name
}

// FilterParam is the request parameter carrying the value of the filter
// on attribute; the case travels in the same name suffixed with _case.
func (t *Table) FilterParam(attribute string) string {
	return t.param("filter_" + attribute)
}
