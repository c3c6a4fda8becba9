package state

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/five82/vitrine/internal/museum"
)

// LoadingMode selects how overlapping fetches drive the loading indicator.
type LoadingMode int

const (
	// LoadingFlag is a single boolean: the first fetch to settle clears it,
	// even when another fetch is still pending.
	LoadingFlag LoadingMode = iota
	// LoadingCounter counts pending fetches and stays on until all settle.
	LoadingCounter
)

func (m LoadingMode) String() string {
	switch m {
	case LoadingCounter:
		return "counter"
	default:
		return "flag"
	}
}

// ParseLoadingMode maps a config value to a LoadingMode. Empty means flag.
func ParseLoadingMode(value string) (LoadingMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "flag":
		return LoadingFlag, nil
	case "counter":
		return LoadingCounter, nil
	}
	return LoadingFlag, fmt.Errorf("unknown loading mode %q (want flag or counter)", value)
}

// Policy controls how the store resolves overlapping fetches.
type Policy struct {
	Loading LoadingMode
	// DiscardStale drops responses whose ticket is older than the newest
	// issued one. Off means last write wins in completion order.
	DiscardStale bool
}

// Ticket identifies one issued fetch.
type Ticket uint64

// Mutator is the write side handed to the search, page, and selection
// controls.
type Mutator interface {
	SetLoading(on bool)
	SetResults(results *museum.SearchResultSet)
	SetFeature(record *museum.Record)
}

// Ensure Store implements Mutator at compile time.
var _ Mutator = (*Store)(nil)

// Snapshot is a read-only view of the application state. Results and Feature
// point at installed values; installed result sets are never mutated, only
// replaced.
type Snapshot struct {
	Results             *museum.SearchResultSet
	Feature             *museum.Record
	Loading             bool
	Pending             int
	Generation          Ticket
	LastError           error
	LastUpdated         time.Time
	ConsecutiveFailures int
	Discarded           int
}

// HasResults reports whether any search has completed successfully.
func (s Snapshot) HasResults() bool {
	return s.Results != nil
}

// Store owns the shared application state: current results, featured record,
// and loading indicator. The zero value is ready to use with the default
// policy.
type Store struct {
	mu sync.RWMutex

	policy     Policy
	results    *museum.SearchResultSet
	feature    *museum.Record
	loading    bool
	pending    int
	generation Ticket

	lastError   error
	lastUpdated time.Time
	failures    int
	discarded   int
}

// NewStore returns an empty store using policy.
func NewStore(policy Policy) *Store {
	return &Store{policy: policy}
}

// Policy returns the store's overlap policy.
func (s *Store) Policy() Policy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy
}

// SetLoading marks a fetch as issued (true) or settled (false).
func (s *Store) SetLoading(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// pending is tracked in both modes; only the counter mode reads it.
	if on {
		s.pending++
	} else if s.pending > 0 {
		s.pending--
	}
	s.loading = on
}

// SetResults installs results wholesale. A nil set is ignored: once a search
// has succeeded, results are never cleared.
func (s *Store) SetResults(results *museum.SearchResultSet) {
	if results == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results = results
	s.lastError = nil
	s.lastUpdated = time.Now()
	s.failures = 0
}

// SetFeature installs the featured record. nil clears it.
func (s *Store) SetFeature(record *museum.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feature = record
}

// Issue hands out a ticket for a new fetch. The newest ticket supersedes all
// earlier ones when the policy discards stale responses.
func (s *Store) Issue() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

// Accepts reports whether a response carrying t may be installed.
func (s *Store) Accepts(t Ticket) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.policy.DiscardStale {
		return true
	}
	return t == s.generation
}

// RecordFailure notes a failed fetch. Results and feature are left as they
// were.
func (s *Store) RecordFailure(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = err
	s.lastUpdated = time.Now()
	s.failures++
}

// RecordDiscard notes a response dropped as stale.
func (s *Store) RecordDiscard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discarded++
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Results:             s.results,
		Feature:             s.feature,
		Pending:             s.pending,
		Generation:          s.generation,
		LastUpdated:         s.lastUpdated,
		LastError:           s.lastError,
		ConsecutiveFailures: s.failures,
		Discarded:           s.discarded,
	}
	switch s.policy.Loading {
	case LoadingCounter:
		snap.Loading = s.pending > 0
	default:
		snap.Loading = s.loading
	}
	return snap
}
