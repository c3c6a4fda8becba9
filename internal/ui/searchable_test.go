package ui

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/vitrine/internal/museum"
	"github.com/five82/vitrine/internal/state"
)

func testFetcher(client museum.Searcher, store fetchState) fetcher {
	return fetcher{client: client, store: store, logger: log.New(io.Discard)}
}

func TestSearchable_TextDefaultsToValue(t *testing.T) {
	assert.Equal(t, "bronze", Searchable{Term: TermMedium, Value: "bronze"}.Text())
	assert.Equal(t, "Bronze", Searchable{Term: TermMedium, Value: "bronze", Label: "Bronze"}.Text())
	assert.Equal(t, "medium: bronze", Searchable{Term: TermMedium, Value: "bronze"}.Query())
}

func TestSearchable_ActivateLifecycleOrder(t *testing.T) {
	client := newFakeSearcher()
	rs := resultSet(museum.PaginationInfo{}, "Bowl")
	client.answer("medium=bronze", rs)
	rec := &recordingState{Store: state.NewStore(state.Policy{})}
	f := testFetcher(client, rec)

	cmd := Searchable{Term: TermMedium, Value: "bronze"}.Activate(f)
	require.NotNil(t, cmd)

	// Loading is set before the request runs.
	assert.Equal(t, []string{"loading:true"}, rec.calls)
	assert.Empty(t, client.searchCalls())
	assert.True(t, rec.Snapshot().Loading)

	msg := cmd().(fetchDoneMsg)
	assert.Equal(t, []string{"medium=bronze"}, client.searchCalls())

	installed := f.settle(msg)
	assert.True(t, installed)
	if diff := cmp.Diff([]string{"loading:true", "results", "loading:false"}, rec.calls); diff != "" {
		t.Fatalf("call order mismatch (-want +got):\n%s", diff)
	}
	snap := rec.Snapshot()
	assert.Same(t, rs, snap.Results)
	assert.False(t, snap.Loading)
}

func TestSearchable_FailureKeepsResultsAndClearsLoading(t *testing.T) {
	client := newFakeSearcher()
	client.fail(errors.New("boom"))
	store := state.NewStore(state.Policy{})
	prior := resultSet(museum.PaginationInfo{}, "Kept")
	store.SetResults(prior)
	rec := &recordingState{Store: store}
	f := testFetcher(client, rec)

	cmd := Searchable{Term: TermCulture, Value: "Chinese"}.Activate(f)
	installed := f.settle(cmd().(fetchDoneMsg))

	assert.False(t, installed)
	assert.Equal(t, []string{"loading:true", "failure", "loading:false"}, rec.calls)
	snap := store.Snapshot()
	assert.Same(t, prior, snap.Results)
	assert.False(t, snap.Loading)
	require.Error(t, snap.LastError)

	var fe *museum.FetchError
	require.ErrorAs(t, snap.LastError, &fe)
	assert.Equal(t, museum.OpSearch, fe.Op)
}

func TestSearchable_RapidActivationsAreIndependent(t *testing.T) {
	client := newFakeSearcher()
	client.answer("technique=Cast", resultSet(museum.PaginationInfo{}, "A"))
	store := state.NewStore(state.Policy{Loading: state.LoadingCounter})
	f := testFetcher(client, store)

	link := Searchable{Term: TermTechnique, Value: "Cast"}
	first := link.Activate(f)
	second := link.Activate(f)
	assert.Equal(t, 2, store.Snapshot().Pending)

	first()
	second()
	assert.Equal(t, []string{"technique=Cast", "technique=Cast"}, client.searchCalls())
}

func TestKeywordSearch(t *testing.T) {
	_, ok := keywordSearch("   ")
	assert.False(t, ok)

	s, ok := keywordSearch("  tea bowl ")
	require.True(t, ok)
	assert.Equal(t, Searchable{Term: TermKeyword, Value: "tea bowl"}, s)
}
