package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := FromViper(v)
	if err != nil {
		t.Fatalf("FromViper() error = %v", err)
	}
	if cfg.AppName != "tablekit" {
		t.Errorf("AppName = %q", cfg.AppName)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d", cfg.Port)
	}
	if cfg.TrustIdentityHeaders {
		t.Error("TrustIdentityHeaders should default to false")
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q", cfg.Database.Driver)
	}
	if cfg.Table.SearchDebounce != DefaultSearchDebounce {
		t.Errorf("SearchDebounce = %v", cfg.Table.SearchDebounce)
	}
	if got := cfg.Table.Get("default_value", "fallback"); got != "fallback" {
		t.Errorf("Get(default_value) = %v, want fallback", got)
	}
	if got := cfg.Table.Get("search_debounce", nil); got != 0.5 {
		t.Errorf("Get(search_debounce) = %v", got)
	}
}

func TestFromViperTrustIdentityHeaders(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("server.trust_identity_headers", true)

	cfg, err := FromViper(v)
	if err != nil {
		t.Fatalf("FromViper() error = %v", err)
	}
	if !cfg.TrustIdentityHeaders {
		t.Error("TrustIdentityHeaders = false, want true")
	}
}

func TestFromViperTableSection(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("table.default_value", "-")
	v.Set("table.search_debounce", 1.25)
	v.Set("table.per_page_options", []int{10, 25})

	cfg, err := FromViper(v)
	if err != nil {
		t.Fatalf("FromViper() error = %v", err)
	}
	if got := cfg.Table.Get("default_value", nil); got != "-" {
		t.Errorf("Get(default_value) = %v", got)
	}
	if cfg.Table.SearchDebounce != 1.25 {
		t.Errorf("SearchDebounce = %v", cfg.Table.SearchDebounce)
	}
	if len(cfg.Table.PerPageOptions) != 2 || cfg.Table.PerPageOptions[0] != 10 {
		t.Errorf("PerPageOptions = %v", cfg.Table.PerPageOptions)
	}
}

func TestFromViperInvalidTable(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{"negative debounce", "table.search_debounce", -1},
		{"zero page size", "table.per_page_options", []int{20, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			setDefaults(v)
			v.Set(tt.key, tt.val)
			if _, err := FromViper(v); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("app_name: demo\nserver:\n  port: 9090\ndata:\n  database:\n    driver: postgres\n    max_life_time: 30s\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.AppName != "demo" || cfg.Port != 9090 {
		t.Errorf("got app=%q port=%d", cfg.AppName, cfg.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Driver = %q", cfg.Database.Driver)
	}
	if cfg.Database.ConnMaxLifeTime.Seconds() != 30 {
		t.Errorf("ConnMaxLifeTime = %v", cfg.Database.ConnMaxLifeTime)
	}
	if cfg.Host != "127.0.0.1" {
		t.Errorf("Host default lost: %q", cfg.Host)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit file")
	}
}

func TestTableGetNil(t *testing.T) {
	var tbl *Table
	if got := tbl.Get("default_value", 7); got != 7 {
		t.Errorf("nil Table Get = %v", got)
	}
}

func TestTableSettingsStore(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	cfg, err := FromViper(v)
	if err != nil {
		t.Fatalf("FromViper() error = %v", err)
	}

	s := NewTableSettings(cfg.Table)
	if got := s.Get("search_debounce", nil); got != DefaultSearchDebounce {
		t.Errorf("Get(search_debounce) = %v", got)
	}

	v.Set("table.search_debounce", 2.5)
	v.Set("table.default_value", "-")
	next, err := FromViper(v)
	if err != nil {
		t.Fatalf("FromViper() error = %v", err)
	}
	s.Store(next.Table)
	if got := s.Get("search_debounce", nil); got != 2.5 {
		t.Errorf("Get(search_debounce) after Store = %v, want 2.5", got)
	}
	if got := s.Get("default_value", nil); got != "-" {
		t.Errorf("Get(default_value) after Store = %v, want -", got)
	}

	s.Store(nil)
	if got := s.Get("search_debounce", "fallback"); got != "fallback" {
		t.Errorf("Get() with nil section = %v, want fallback", got)
	}
}
