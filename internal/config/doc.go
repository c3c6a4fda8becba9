// Package config loads vitrine's TOML configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided (--config), use it
//  2. Otherwise, use ~/.config/vitrine/config.toml
//  3. If the file doesn't exist, use defaults
//  4. Empty or missing fields keep their defaults
//
// The VITRINE_API_KEY environment variable overrides api_key in every case.
//
// # TOML Format
//
//	api_url = "https://api.harvardartmuseums.org"
//	api_key = "..."
//	page_size = 10            # 1..100
//	request_timeout = "10s"   # Go duration
//	log_file = "~/.local/state/vitrine/vitrine.log"
//	loading_mode = "flag"     # or "counter"
//	discard_stale = false     # drop responses superseded by a newer fetch
//	start_term = "medium"     # optional search run at startup
//	start_value = "bronze"
//
// # Error Handling
//
// Load returns errors for unreadable files, invalid TOML, an unparseable
// request_timeout, or an unknown loading_mode. A missing file is not an
// error.
package config
