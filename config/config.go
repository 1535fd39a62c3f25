package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config represents the configuration implementation.
type Config struct {
	AppName  string
	RunMode  string
	Host     string
	Port     int
	// TrustIdentityHeaders lets the X-User-* request headers set the caller
	// identity. Enable it only behind a proxy that authenticates callers
	// and strips those headers from client requests.
	TrustIdentityHeaders bool
	Logger               *Logger
	Database             *Database
	Table                *Table
	Viper                *viper.Viper
}

var mu sync.Mutex

// LoadConfig loads the configuration from the file. An empty path searches
// the usual locations for config.{yaml,json,toml}; a missing file there is
// not an error and leaves the defaults in place.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("TABLEKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("/etc/tablekit")
		v.AddConfigPath("$HOME/.tablekit")
		v.AddConfigPath(".")
		if ex, err := os.Executable(); err == nil {
			v.AddConfigPath(filepath.Dir(ex))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	table, err := getTableConfig(v)
	if err != nil {
		return nil, err
	}

	return &Config{
		AppName:  v.GetString("app_name"),
		RunMode:  v.GetString("run_mode"),
		Host:     v.GetString("server.host"),
		Port:     v.GetInt("server.port"),

		TrustIdentityHeaders: v.GetBool("server.trust_identity_headers"),

		Logger:   getLoggerConfig(v),
		Database: getDatabaseConfig(v),
		Table:    table,
		Viper:    v,
	}, nil
}

// Watch watches the configuration file and calls callback with the
// reloaded configuration when it changes. Reloads that fail validation
// are dropped and the previous configuration stays in effect.
func Watch(cfg *Config, callback func(*Config, error)) {
	v := cfg.Viper
	v.OnConfigChange(func(e fsnotify.Event) {
		mu.Lock()
		defer mu.Unlock()

		next, err := FromViper(v)
		if err != nil {
			callback(nil, fmt.Errorf("failed to reload config %s: %w", e.Name, err))
			return
		}
		callback(next, nil)
	})
	v.WatchConfig()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "tablekit")
	v.SetDefault("run_mode", "release")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.trust_identity_headers", false)
	v.SetDefault("logger.level", 4)
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("data.database.driver", "sqlite")
	v.SetDefault("data.database.source", "file::memory:?cache=shared")
	v.SetDefault("table.search_debounce", DefaultSearchDebounce)
	v.SetDefault("table.per_page_options", []int{20, 50, 100})
}
