// Package config loads tablekit configuration through Viper.
//
// Sources, in increasing precedence: built-in defaults, a YAML/JSON/TOML file,
// and environment variables prefixed with TABLEKIT (dots become underscores,
// so TABLEKIT_SERVER_PORT overrides server.port).
//
//	app_name: tablekit
//	server:
//	  host: 0.0.0.0
//	  port: 8080
//	logger:
//	  level: 4
//	  format: json
//	  output: stdout
//	data:
//	  database:
//	    driver: sqlite
//	    source: file:tablekit.db
//	table:
//	  default_value: "-"
//	  search_debounce: 0.5
//	  per_page_options: [20, 50, 100]
//
// Table implements the settings lookup used by the table renderer.
// Watch reloads the file on change.
package config
