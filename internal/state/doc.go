// Package state holds the shared application state for vitrine.
//
// # Overview
//
// One Store exists per session. It owns the three values every pane reads:
//
//   - the current SearchResultSet (nil until a search succeeds)
//   - the featured Record (nil until the user selects one)
//   - the loading indicator
//
// The search link, the pager, and the record list never talk to each other;
// they only read a Snapshot and write through the Mutator interface.
//
// # Fetch Lifecycle
//
// Every fetch follows the same shape:
//
//	store.SetLoading(true)
//	ticket := store.Issue()
//	... fetch runs on a goroutine ...
//	if err != nil {
//		store.RecordFailure(err)          // results untouched
//	} else if store.Accepts(ticket) {
//		store.SetResults(results)         // wholesale replacement
//	} else {
//		store.RecordDiscard()
//	}
//	store.SetLoading(false)               // always, last
//
// # Overlapping Fetches
//
// Policy decides what happens when fetches overlap.
//
// Loading:
//   - LoadingFlag (default): one boolean. The first fetch to settle hides the
//     indicator while others may still be in flight.
//   - LoadingCounter: the indicator stays on until the pending count is zero.
//
// Ordering:
//   - DiscardStale=false (default): last write wins in completion order. A
//     slow early response can overwrite a fast later one.
//   - DiscardStale=true: only the newest ticket's response is installed.
//
// # Concurrency
//
// Bubble Tea delivers every message on one goroutine, so mutation already has
// a single writer. The RWMutex keeps Snapshot safe for any other reader.
package state
