package ui

import (
	"context"
	"fmt"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/five82/vitrine/internal/museum"
	"github.com/five82/vitrine/internal/state"
)

// fakeSearcher answers from canned result sets keyed by "term=value" or by
// page locator, and records every call.
type fakeSearcher struct {
	mu       sync.Mutex
	answers  map[string]*museum.SearchResultSet
	err      error
	searches []string
	pages    []string
}

func newFakeSearcher() *fakeSearcher {
	return &fakeSearcher{answers: map[string]*museum.SearchResultSet{}}
}

func (f *fakeSearcher) answer(key string, rs *museum.SearchResultSet) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answers[key] = rs
}

func (f *fakeSearcher) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeSearcher) FetchByTermAndValue(_ context.Context, term, value string) (*museum.SearchResultSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := term + "=" + value
	f.searches = append(f.searches, key)
	return f.lookup(museum.OpSearch, key)
}

func (f *fakeSearcher) FetchByPageLocator(_ context.Context, locator string) (*museum.SearchResultSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages = append(f.pages, locator)
	return f.lookup(museum.OpPage, locator)
}

func (f *fakeSearcher) lookup(op, key string) (*museum.SearchResultSet, error) {
	if f.err != nil {
		return nil, &museum.FetchError{Op: op, Err: f.err}
	}
	if rs, ok := f.answers[key]; ok {
		return rs, nil
	}
	return nil, &museum.FetchError{Op: op, Err: fmt.Errorf("no canned answer for %q", key)}
}

func (f *fakeSearcher) searchCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.searches...)
}

func (f *fakeSearcher) pageCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.pages...)
}

// recordingState wraps a real store and logs the mutator calls in order.
type recordingState struct {
	*state.Store
	calls []string
}

func (r *recordingState) SetLoading(on bool) {
	r.calls = append(r.calls, fmt.Sprintf("loading:%t", on))
	r.Store.SetLoading(on)
}

func (r *recordingState) SetResults(rs *museum.SearchResultSet) {
	r.calls = append(r.calls, "results")
	r.Store.SetResults(rs)
}

func (r *recordingState) SetFeature(rec *museum.Record) {
	r.calls = append(r.calls, "feature")
	r.Store.SetFeature(rec)
}

func (r *recordingState) RecordFailure(err error) {
	r.calls = append(r.calls, "failure")
	r.Store.RecordFailure(err)
}

func resultSet(info museum.PaginationInfo, titles ...string) *museum.SearchResultSet {
	rs := &museum.SearchResultSet{Info: info, Records: []museum.Record{}}
	for i, title := range titles {
		rs.Records = append(rs.Records, museum.Record{ID: int64(i + 1), Title: title})
	}
	return rs
}

// newTestModel builds a sized model over a fake searcher.
func newTestModel(t *testing.T, client museum.Searcher, policy state.Policy) Model {
	t.Helper()
	m := New(Options{
		Client:    client,
		Store:     state.NewStore(policy),
		Prefs:     nil,
		ThemeName: "Nightfox",
	})
	return update(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return out
}

// press sends a key and returns the model plus any command it produced.
func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return out, cmd
}

// settle runs a fetch command and feeds its message back into the model.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd, "expected a fetch command")
	msg := cmd()
	done, ok := msg.(fetchDoneMsg)
	require.True(t, ok, "command produced %T, want fetchDoneMsg", msg)
	return update(t, m, done)
}
