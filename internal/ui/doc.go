// Package ui provides the terminal interface for browsing the museum
// collection.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea program. Model owns layout, focus and key
// handling; the shared state.Store owns the current results, the featured
// record and the loading indicator. Fetches run as tea.Cmds on their own
// goroutines and report back with a fetchDoneMsg; every store replacement
// happens in Update.
//
// # Package Structure
//
//   - app.go: Model, Options, Init/Update/View, focus and layout, Run
//   - fetch.go: the shared fetch lifecycle (begin, settle)
//   - searchable.go: Searchable, the link that runs a term/value search
//   - preview.go: the Result Browser (pager controls, cards, selection)
//   - feature.go: the Feature Detail (fact model, link cursor, photos)
//   - prompt.go: the / keyword prompt
//   - header.go: status bar and error line
//   - keys.go, help.go: key bindings and the help overlay
//   - theme.go, style_helpers.go: palettes and lipgloss styles
//
// # Fetch Lifecycle
//
// Every fetch-triggering control goes through the same steps:
//
//  1. SetLoading(true) and a generation ticket are taken synchronously
//  2. The command calls the museum.Searcher under the request timeout
//  3. On success the result set replaces the current one wholesale
//  4. On failure the previous results stay; the error is logged and counted
//  5. SetLoading(false) runs last on every path
//
// With the default store policy the last response to arrive wins and the
// first settle clears the loading flag. state.Policy can switch on stale
// discarding or a pending-request counter.
//
// # Key Bindings
//
//   - /: Keyword search
//   - tab: Switch between results and feature
//   - j/k, g/G: Move the card cursor or the feature link cursor
//   - enter: Feature the selected card, or follow the selected link
//   - p/[ and n/]: Previous and next page
//   - ctrl+d/u: Scroll the feature pane
//   - T: Cycle theme (saved to prefs)
//   - ?: Help
//   - q or ctrl+c: Quit
package ui
