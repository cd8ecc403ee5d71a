// Package config handles loading and parsing playpen configuration files.
//
// # Overview
//
// playpen reads a small TOML file to find the playground API, the default
// compiler version for new projects, and where to keep its log file and
// compiler cache. Every field is optional.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/playpen/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing or empty, use defaults
//
// # Default Values
//
//   - API URL: http://127.0.0.1:1337
//   - Elm version: 0.18.0
//   - Log file: ~/.local/share/playpen/playpen.log
//   - Cache dir: ~/.cache/playpen/elm-stuff
//   - Requests per second: 5
//   - Header height / sidebar width: 3 rows / 28 columns
//
// # TOML Format
//
//	api_url = "http://127.0.0.1:1337"
//	elm_version = "0.18.0"
//	log_file = "~/.local/share/playpen/playpen.log"
//	cache_dir = "~/.cache/playpen/elm-stuff"
//	requests_per_second = 5
//	header_height = 3
//	sidebar_width = 28
//
// Tilde expansion is performed for log_file and cache_dir. Non-positive
// numbers are treated as missing.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors and malformed elm_version values
//
// Missing config files are NOT an error.
package config
