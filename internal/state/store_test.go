package state

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/vitrine/internal/museum"
)

func resultSet(ids ...int64) *museum.SearchResultSet {
	rs := &museum.SearchResultSet{Records: []museum.Record{}}
	for _, id := range ids {
		rs.Records = append(rs.Records, museum.Record{ID: id})
	}
	return rs
}

func TestStore_ZeroValueIsInitialState(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	assert.Nil(t, snap.Results)
	assert.Nil(t, snap.Feature)
	assert.False(t, snap.Loading)
	assert.False(t, snap.HasResults())
	assert.Equal(t, LoadingFlag, s.Policy().Loading)
}

func TestStore_SetResultsReplacesWholesale(t *testing.T) {
	var s Store

	first := resultSet(1, 2, 3)
	s.SetResults(first)
	second := resultSet(9)
	s.SetResults(second)

	snap := s.Snapshot()
	require.Same(t, second, snap.Results)
	assert.Len(t, snap.Results.Records, 1)

	s.SetResults(nil)
	assert.Same(t, second, s.Snapshot().Results, "nil results must not clear installed set")
}

func TestStore_FailureKeepsPreviousResults(t *testing.T) {
	var s Store

	installed := resultSet(1)
	s.SetResults(installed)

	before := time.Now()
	origErr := errors.New("boom")
	s.RecordFailure(origErr)

	snap := s.Snapshot()
	require.Same(t, installed, snap.Results)
	require.Error(t, snap.LastError)
	assert.Equal(t, "boom", snap.LastError.Error())
	assert.Same(t, origErr, snap.LastError)
	assert.False(t, snap.LastUpdated.Before(before))
	assert.Equal(t, 1, snap.ConsecutiveFailures)

	s.RecordFailure(errors.New("again"))
	assert.Equal(t, 2, s.Snapshot().ConsecutiveFailures)

	s.SetResults(resultSet(2))
	snap = s.Snapshot()
	assert.NoError(t, snap.LastError)
	assert.Zero(t, snap.ConsecutiveFailures)
}

func TestStore_FeatureIsIdentity(t *testing.T) {
	var s Store
	rs := resultSet(1, 2)
	s.SetResults(rs)

	s.SetFeature(&rs.Records[1])
	require.Same(t, &rs.Records[1], s.Snapshot().Feature)

	s.SetFeature(nil)
	assert.Nil(t, s.Snapshot().Feature)
}

func TestStore_FlagModeFirstSettleClearsLoading(t *testing.T) {
	s := NewStore(Policy{Loading: LoadingFlag})

	s.SetLoading(true)
	s.SetLoading(true)
	require.True(t, s.Snapshot().Loading)
	assert.Equal(t, 2, s.Snapshot().Pending)

	s.SetLoading(false)
	snap := s.Snapshot()
	assert.False(t, snap.Loading, "single flag clears on the first settle")
	assert.Equal(t, 1, snap.Pending)

	s.SetLoading(false)
	assert.False(t, s.Snapshot().Loading)
	assert.Zero(t, s.Snapshot().Pending)
}

func TestStore_CounterModeWaitsForAllFetches(t *testing.T) {
	s := NewStore(Policy{Loading: LoadingCounter})

	s.SetLoading(true)
	s.SetLoading(true)
	s.SetLoading(false)
	assert.True(t, s.Snapshot().Loading, "one fetch still pending")

	s.SetLoading(false)
	assert.False(t, s.Snapshot().Loading)

	s.SetLoading(false)
	assert.Zero(t, s.Snapshot().Pending, "pending never goes negative")
	assert.False(t, s.Snapshot().Loading)
}

func TestStore_TicketsWithoutDiscardAcceptEverything(t *testing.T) {
	var s Store

	a := s.Issue()
	b := s.Issue()
	assert.True(t, s.Accepts(a))
	assert.True(t, s.Accepts(b))
	assert.Equal(t, b, s.Snapshot().Generation)
}

func TestStore_DiscardStaleAcceptsOnlyNewestTicket(t *testing.T) {
	s := NewStore(Policy{DiscardStale: true})

	a := s.Issue()
	b := s.Issue()
	assert.False(t, s.Accepts(a))
	assert.True(t, s.Accepts(b))

	s.RecordDiscard()
	assert.Equal(t, 1, s.Snapshot().Discarded)
}

func TestParseLoadingMode(t *testing.T) {
	cases := []struct {
		in      string
		want    LoadingMode
		wantErr bool
	}{
		{"", LoadingFlag, false},
		{"flag", LoadingFlag, false},
		{" Counter ", LoadingCounter, false},
		{"semaphore", LoadingFlag, true},
	}
	for _, tc := range cases {
		got, err := ParseLoadingMode(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
	assert.Equal(t, "counter", LoadingCounter.String())
	assert.Equal(t, "flag", LoadingFlag.String())
}
