package table

// Setting keys read by the renderer.
const (
	// SettingDefaultValue is shown for blank cells of columns without a default.
	SettingDefaultValue = "default_value"
	// SettingSearchDebounce is the search debounce in seconds for tables
	// that do not set their own.
	SettingSearchDebounce = "search_debounce"
	// SettingPerPageOptions is used for tables that declare no page sizes.
	SettingPerPageOptions = "per_page_options"
)

// DefaultSearchDebounce applies when the debounce setting is missing or not a number.
const DefaultSearchDebounce = 0.5

// Settings is the key/value configuration consulted while rendering.
type Settings interface {
	Get(key string, def any) any
}

// MapSettings is a Settings backed by a map.
type MapSettings map[string]any

// Get returns the value stored under key, or def.
func (m MapSettings) Get(key string, def any) any {
	if v, ok := m[key]; ok && v != nil {
		return v
	}
	return def
}
