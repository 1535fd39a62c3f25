package table

import (
	"github.com/Velocidex/ordereddict"
)

// Element is the capability shared by columns, filters and actions.
type Element interface {
	// Authorize reports whether the element is visible for req.
	Authorize(req *Request) bool
	// Component names the front-end component rendering the element.
	Component(req *Request) string
}

// Authorization permits every request unless a predicate is installed.
type Authorization struct {
	see func(*Request) bool
}

// Authorize implements Element.
func (a Authorization) Authorize(req *Request) bool {
	if a.see == nil {
		return true
	}
	return a.see(req)
}

func (a *Authorization) canSee(fn func(*Request) bool) {
	a.see = fn
}

// element carries the state common to filters and actions.
type element struct {
	Authorization
	component  string
	sharedData *ordereddict.Dict
	bindings   Binding
}

func newElement(component string) element {
	return element{
		component:  component,
		sharedData: ordereddict.NewDict(),
		bindings:   NewBinding(),
	}
}

// Component implements Element.
func (e *element) Component(*Request) string { return e.component }

func (e *element) share(key string, value any) {
	e.sharedData.Set(key, value)
}

// baseJSON returns the shape concrete elements extend.
func (e *element) baseJSON(req *Request) *ordereddict.Dict {
	return ordereddict.NewDict().
		Set("component", e.Component(req)).
		Set("sharedData", e.sharedData).
		Set("bindings", e.bindings)
}
