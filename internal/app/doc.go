// Package app is the composition root for vitrine.
//
// # Overview
//
// Run wires configuration, preferences, logging, the museum client and the
// shared state.Store into the Bubble Tea UI, then blocks until the user quits
// or the context is cancelled.
//
// # Startup Order
//
//  1. Load config from ~/.config/vitrine/config.toml (or --config)
//  2. Load prefs (theme) from ~/.config/vitrine/prefs.toml
//  3. Open the log file; the terminal is reserved for the UI
//  4. Build the museum client from api_url, api_key, page_size and request_timeout
//  5. Create the store with the configured loading mode and stale policy
//  6. Start the UI, passing the optional startup search
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()       Read config
//	       ├─────> prefs.Load()        Read theme
//	       ├─────> openLogger()        charmbracelet/log on the log file
//	       ├─────> museum.NewClient()  HTTP client for the catalog
//	       ├─────> state.NewStore()    Shared results/feature/loading
//	       └─────> ui.Run()            Start TUI (blocks)
//
// # Error Handling
//
// Startup failures (bad config, unwritable log file, invalid api_url) are
// returned wrapped. Fetch failures once the UI is running are logged and
// shown in the header; they never end the program.
package app
