package table

import (
	"encoding/json"

	"github.com/samber/lo"
)

// Binding holds the CSS classes and inline styles attached to an element.
type Binding struct {
	Classes []string
	Styles  []string
}

// NewBinding returns a binding with the given classes and no styles.
func NewBinding(classes ...string) Binding {
	return Binding{Classes: lo.Uniq(classes), Styles: []string{}}
}

// AddClasses merges classes, dropping duplicates and keeping first-seen order.
func (b *Binding) AddClasses(classes ...string) {
	b.Classes = merge(b.Classes, classes)
}

// SetClasses replaces the classes.
func (b *Binding) SetClasses(classes ...string) {
	b.Classes = append([]string{}, classes...)
}

// AddStyles merges styles, dropping duplicates and keeping first-seen order.
func (b *Binding) AddStyles(styles ...string) {
	b.Styles = merge(b.Styles, styles)
}

// SetStyles replaces the styles.
func (b *Binding) SetStyles(styles ...string) {
	b.Styles = append([]string{}, styles...)
}

// Clone returns a deep copy.
func (b Binding) Clone() Binding {
	return Binding{
		Classes: append([]string{}, b.Classes...),
		Styles:  append([]string{}, b.Styles...),
	}
}

func merge(dst, src []string) []string {
	out := make([]string, 0, len(dst)+len(src))
	out = append(out, dst...)
	return lo.Uniq(append(out, src...))
}

// MarshalJSON always emits both lists, empty rather than null.
func (b Binding) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Classes []string `json:"classes"`
		Styles  []string `json:"styles"`
	}{
		Classes: lo.Ternary(b.Classes == nil, []string{}, b.Classes),
		Styles:  lo.Ternary(b.Styles == nil, []string{}, b.Styles),
	})
}
