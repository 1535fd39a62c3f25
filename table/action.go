package table

import (
	"strings"

	"github.com/Velocidex/ordereddict"
	"github.com/huandu/xstrings"
)

// ActionComponent renders actions.
const ActionComponent = "table-action"

// Action is an operation the front end offers on selected rows, or on the
// table as a whole when standalone. Executing it is up to the caller.
type Action struct {
	element
	name   string
	uriKey string
}

// NewAction returns an action keyed by the kebab case of name.
func NewAction(name string) *Action {
	return &Action{
		element: newElement(ActionComponent),
		name:    name,
		uriKey:  xstrings.ToKebabCase(strings.TrimSpace(name)),
	}
}

// WithURIKey overrides the key derived from the name.
func (a *Action) WithURIKey(key string) *Action {
	a.uriKey = strings.ToLower(strings.TrimSpace(key))
	return a
}

// WithComponent overrides the component name.
func (a *Action) WithComponent(name string) *Action {
	a.component = name
	return a
}

// CanSee installs the authorization predicate.
func (a *Action) CanSee(fn func(*Request) bool) *Action {
	a.canSee(fn)
	return a
}

// Share adds a key to the shared data sent to the front end.
func (a *Action) Share(key string, value any) *Action {
	a.share(key, value)
	return a
}

// Name is the display name.
func (a *Action) Name() string { return a.name }

// URIKey identifies the action in requests.
func (a *Action) URIKey() string { return a.uriKey }

// JSON serializes the action.
func (a *Action) JSON(req *Request) *ordereddict.Dict {
	return a.baseJSON(req).
		Set("name", a.name).
		Set("uriKey", a.uriKey)
}
