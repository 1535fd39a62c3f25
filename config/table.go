package config

import (
	"fmt"
	"sync/atomic"

	"github.com/ncobase/tablekit/validator"
	"github.com/spf13/viper"
)

// DefaultSearchDebounce is the search debounce in seconds when none is configured.
const DefaultSearchDebounce = 0.5

// Table holds the settings shared by every table render.
//
// Keys exposed through Get:
//   - default_value: value shown for blank cells
//   - search_debounce: front-end search debounce in seconds
//   - per_page_options: page sizes offered when a table declares none
type Table struct {
	DefaultValue   any     `json:"default_value" mapstructure:"default_value"`
	SearchDebounce float64 `json:"search_debounce" mapstructure:"search_debounce" validate:"gte=0"`
	PerPageOptions []int   `json:"per_page_options" mapstructure:"per_page_options" validate:"omitempty,dive,gt=0"`

	values map[string]any
}

// Get returns the configured value for key, or def when it is not set.
func (t *Table) Get(key string, def any) any {
	if t == nil {
		return def
	}
	if v, ok := t.values[key]; ok && v != nil {
		return v
	}
	return def
}

// TableSettings serves the current table section and can be swapped while
// renders are in flight, so a config reload takes effect on the next render.
type TableSettings struct {
	current atomic.Pointer[Table]
}

// NewTableSettings returns settings serving t.
func NewTableSettings(t *Table) *TableSettings {
	s := &TableSettings{}
	s.Store(t)
	return s
}

// Get returns the value for key from the current section, or def.
func (s *TableSettings) Get(key string, def any) any {
	return s.current.Load().Get(key, def)
}

// Store replaces the current section.
func (s *TableSettings) Store(t *Table) {
	s.current.Store(t)
}

func getTableConfig(v *viper.Viper) (*Table, error) {
	t := &Table{
		SearchDebounce: getFloat64OrDefault(v, "table.search_debounce", DefaultSearchDebounce),
		PerPageOptions: v.GetIntSlice("table.per_page_options"),
		values:         make(map[string]any),
	}
	if v.IsSet("table.default_value") {
		t.DefaultValue = v.Get("table.default_value")
		t.values["default_value"] = t.DefaultValue
	}
	t.values["search_debounce"] = t.SearchDebounce
	t.values["per_page_options"] = t.PerPageOptions

	if err := validator.Error(t); err != nil {
		return nil, fmt.Errorf("invalid table config: %w", err)
	}
	return t, nil
}
