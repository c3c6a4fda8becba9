package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/five82/vitrine/internal/museum"
	"github.com/five82/vitrine/internal/state"
)

// fetchKind tells a settled fetch which control issued it.
type fetchKind int

const (
	fetchSearch fetchKind = iota
	fetchPage
)

func (k fetchKind) String() string {
	if k == fetchPage {
		return "page"
	}
	return "search"
}

// fetchState is the slice of the store that fetch-triggering controls touch.
type fetchState interface {
	state.Mutator
	Issue() state.Ticket
	Accepts(t state.Ticket) bool
	RecordFailure(err error)
	RecordDiscard()
}

// Ensure *state.Store satisfies fetchState at compile time.
var _ fetchState = (*state.Store)(nil)

// fetcher bundles what a search link or pager control needs to run a fetch.
type fetcher struct {
	ctx     context.Context
	client  museum.Searcher
	store   fetchState
	timeout time.Duration
	logger  *log.Logger
}

// fetchDoneMsg carries a settled fetch back to Update.
type fetchDoneMsg struct {
	kind    fetchKind
	query   string
	ticket  state.Ticket
	results *museum.SearchResultSet
	err     error
}

// begin marks the store loading before returning, then runs call on the
// command goroutine.
func (f fetcher) begin(kind fetchKind, query string, call func(ctx context.Context) (*museum.SearchResultSet, error)) tea.Cmd {
	f.store.SetLoading(true)
	ticket := f.store.Issue()
	f.logger.Debug("fetch issued", "kind", kind, "query", query, "ticket", ticket)

	parent := f.ctx
	if parent == nil {
		parent = context.Background()
	}
	timeout := f.timeout

	return func() tea.Msg {
		ctx := parent
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(parent, timeout)
			defer cancel()
		}
		results, err := call(ctx)
		return fetchDoneMsg{kind: kind, query: query, ticket: ticket, results: results, err: err}
	}
}

// settle applies a finished fetch to the store and reports whether its
// results were installed. A superseded fetch is discarded whether it
// succeeded or failed. Loading is cleared on every path.
func (f fetcher) settle(msg fetchDoneMsg) bool {
	defer f.store.SetLoading(false)

	if !f.store.Accepts(msg.ticket) {
		f.logger.Debug("discarding stale response", "kind", msg.kind, "query", msg.query, "ticket", msg.ticket, "err", msg.err)
		f.store.RecordDiscard()
		return false
	}
	if msg.err != nil {
		f.logger.Error("fetch failed", "kind", msg.kind, "query", msg.query, "err", msg.err)
		f.store.RecordFailure(msg.err)
		return false
	}
	if msg.results == nil {
		f.logger.Error("fetch returned no result set", "kind", msg.kind, "query", msg.query)
		return false
	}
	f.store.SetResults(msg.results)
	return true
}
