package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ladle-labs/ladle-cli/internal/connectors/mealdb"
	"github.com/ladle-labs/ladle-cli/internal/core/domain"
)

const (
	testDebounce = 20 * time.Millisecond
	waitTimeout  = 2 * time.Second
	waitTick     = 5 * time.Millisecond
)

// --- Mock implementations ---

// mockCatalog implements driven.RecipeCatalog with scripted responses.
// A query can be gated so the test controls when its dispatch
// completes, which makes completion-order races reproducible.
type mockCatalog struct {
	mu      sync.Mutex
	calls   []string
	results map[string][]domain.Recipe
	errs    map[string]error
	gates   map[string]chan struct{}
	lookups map[string]*domain.Recipe
	random  *domain.Recipe
}

func newMockCatalog() *mockCatalog {
	return &mockCatalog{
		results: make(map[string][]domain.Recipe),
		errs:    make(map[string]error),
		gates:   make(map[string]chan struct{}),
		lookups: make(map[string]*domain.Recipe),
	}
}

func (m *mockCatalog) SearchByName(ctx context.Context, query string) ([]domain.Recipe, error) {
	m.mu.Lock()
	m.calls = append(m.calls, query)
	gate := m.gates[query]
	results := m.results[query]
	err := m.errs[query]
	m.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (m *mockCatalog) LookupByID(_ context.Context, id string) (*domain.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if recipe, ok := m.lookups[id]; ok {
		copied := *recipe
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockCatalog) Random(context.Context) (*domain.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.random == nil {
		return nil, domain.ErrNotFound
	}
	copied := *m.random
	return &copied, nil
}

// gate makes dispatches for query block until release is called.
func (m *mockCatalog) gate(query string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gates[query] = make(chan struct{})
}

func (m *mockCatalog) release(query string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	close(m.gates[query])
	delete(m.gates, query)
}

func (m *mockCatalog) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockCatalog) allCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func recipes(ids ...string) []domain.Recipe {
	out := make([]domain.Recipe, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Recipe{ID: id, Name: "Recipe " + id})
	}
	return out
}

// waitForStatus polls until the session reaches the wanted status at
// or beyond the wanted generation.
func waitForStatus(t *testing.T, s *Session, status domain.SearchStatus, gen uint64) domain.SearchSnapshot {
	t.Helper()
	require.Eventually(t, func() bool {
		snap := s.Snapshot()
		return snap.Status == status && snap.Generation >= gen
	}, waitTimeout, waitTick)
	return s.Snapshot()
}

// --- Tests ---

func TestNewSession_DispatchesEmptyQueryOnce(t *testing.T) {
	defer goleak.VerifyNone(t)

	catalog := newMockCatalog()
	catalog.results[""] = recipes("1", "2")

	s := NewSession(context.Background(), catalog, testDebounce)
	defer s.Close()

	snap := waitForStatus(t, s, domain.StatusIdle, 1)
	assert.Equal(t, []string{""}, catalog.allCalls(), "exactly one dispatch, for the empty query")
	assert.Equal(t, "", snap.Query)
	assert.Len(t, snap.Results, 2)
	assert.Nil(t, snap.LastError)
	assert.Equal(t, uint64(1), snap.Generation)
}

func TestSession_DebounceCollapsesRapidEdits(t *testing.T) {
	defer goleak.VerifyNone(t)

	catalog := newMockCatalog()
	catalog.results["app"] = recipes("7")

	s := NewSession(context.Background(), catalog, testDebounce)
	defer s.Close()
	waitForStatus(t, s, domain.StatusIdle, 1)

	s.SetQuery("a")
	s.SetQuery("ap")
	s.SetQuery("app")

	snap := waitForStatus(t, s, domain.StatusIdle, 2)
	assert.Equal(t, []string{"", "app"}, catalog.allCalls(), "rapid edits collapse into one dispatch with the last text")
	assert.Equal(t, "app", snap.Query)
	assert.Len(t, snap.Results, 1)

	// No trailing dispatch once the window is quiet.
	time.Sleep(4 * testDebounce)
	assert.Equal(t, 2, catalog.callCount())
}

func TestSession_SetQuerySameValueIsNoOp(t *testing.T) {
	defer goleak.VerifyNone(t)

	catalog := newMockCatalog()
	s := NewSession(context.Background(), catalog, testDebounce)
	defer s.Close()
	waitForStatus(t, s, domain.StatusIdle, 1)

	s.SetQuery("")
	time.Sleep(4 * testDebounce)
	assert.Equal(t, 1, catalog.callCount(), "re-setting the current text must not dispatch")
}

func TestSession_RefreshBypassesDebounce(t *testing.T) {
	defer goleak.VerifyNone(t)

	catalog := newMockCatalog()
	catalog.results["pasta"] = recipes("3")

	// A debounce long enough that only Refresh can explain a dispatch.
	s := NewSession(context.Background(), catalog, 10*time.Second)
	defer s.Close()
	waitForStatus(t, s, domain.StatusIdle, 1)

	s.SetQuery("pasta")
	s.Refresh()

	snap := waitForStatus(t, s, domain.StatusIdle, 2)
	assert.Equal(t, []string{"", "pasta"}, catalog.allCalls())
	assert.Len(t, snap.Results, 1)

	// The armed timer was cancelled; nothing else fires.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 2, catalog.callCount())
}

func TestSession_ErrorKeepsPreviousResults(t *testing.T) {
	defer goleak.VerifyNone(t)

	catalog := newMockCatalog()
	catalog.results[""] = recipes("1", "2")
	catalog.errs["bad"] = &mealdb.HTTPError{StatusCode: 500, URL: "https://api.test"}
	catalog.results["good"] = recipes("9")

	s := NewSession(context.Background(), catalog, testDebounce)
	defer s.Close()
	waitForStatus(t, s, domain.StatusIdle, 1)

	s.SetQuery("bad")
	snap := waitForStatus(t, s, domain.StatusError, 2)

	require.NotNil(t, snap.LastError)
	assert.True(t, mealdb.IsHTTP(snap.LastError), "error kind must survive to the snapshot")
	assert.Contains(t, snap.LastError.Error(), "500")
	assert.Len(t, snap.Results, 2, "failed dispatch must not clobber previous results")

	// A later successful dispatch clears the error.
	s.SetQuery("good")
	snap = waitForStatus(t, s, domain.StatusIdle, 3)
	assert.Nil(t, snap.LastError)
	assert.Len(t, snap.Results, 1)
}

func TestSession_LoadingClearsLastError(t *testing.T) {
	defer goleak.VerifyNone(t)

	catalog := newMockCatalog()
	catalog.results[""] = recipes("1")
	catalog.errs["bad"] = &mealdb.HTTPError{StatusCode: 500, URL: "https://api.test"}
	catalog.gate("slow")

	s := NewSession(context.Background(), catalog, testDebounce)
	defer s.Close()
	waitForStatus(t, s, domain.StatusIdle, 1)

	s.SetQuery("bad")
	waitForStatus(t, s, domain.StatusError, 2)

	// The error belongs to the failed dispatch; re-entering loading
	// must not carry it along.
	s.SetQuery("slow")
	snap := waitForStatus(t, s, domain.StatusLoading, 2)
	assert.Nil(t, snap.LastError)

	catalog.release("slow")
	waitForStatus(t, s, domain.StatusIdle, 3)
}

func TestSession_EmptySuccessReplacesResults(t *testing.T) {
	defer goleak.VerifyNone(t)

	catalog := newMockCatalog()
	catalog.results[""] = recipes("1", "2")
	catalog.results["zzzz"] = []domain.Recipe{}

	s := NewSession(context.Background(), catalog, testDebounce)
	defer s.Close()
	waitForStatus(t, s, domain.StatusIdle, 1)

	s.SetQuery("zzzz")
	snap := waitForStatus(t, s, domain.StatusIdle, 2)

	assert.Empty(t, snap.Results, "zero matches is a success that replaces results")
	assert.Nil(t, snap.LastError)
}

func TestSession_StaleCompletionAfterNewerApplied(t *testing.T) {
	defer goleak.VerifyNone(t)

	catalog := newMockCatalog()
	catalog.results[""] = recipes("0")
	catalog.results["slow"] = recipes("OLD")
	catalog.results["fast"] = recipes("NEW")
	catalog.gate("slow")

	s := NewSession(context.Background(), catalog, testDebounce)
	defer s.Close()
	waitForStatus(t, s, domain.StatusIdle, 1)

	// Dispatch for "slow" goes out and hangs on the network.
	s.SetQuery("slow")
	require.Eventually(t, func() bool { return catalog.callCount() == 2 }, waitTimeout, waitTick)

	// Meanwhile the user keeps typing; "fast" dispatches and lands.
	s.SetQuery("fast")
	snap := waitForStatus(t, s, domain.StatusIdle, 3)
	require.Equal(t, "NEW", snap.Results[0].ID)

	// The old response finally arrives and must be dropped.
	catalog.release("slow")
	time.Sleep(50 * time.Millisecond)

	snap = s.Snapshot()
	assert.Equal(t, domain.StatusIdle, snap.Status)
	assert.Equal(t, "NEW", snap.Results[0].ID, "stale completion must not overwrite newer results")
	assert.Equal(t, uint64(3), snap.Generation)
}

func TestSession_StaleCompletionWhileNewerInFlight(t *testing.T) {
	defer goleak.VerifyNone(t)

	catalog := newMockCatalog()
	catalog.results[""] = recipes("0")
	catalog.results["slow"] = recipes("OLD")
	catalog.results["fast"] = recipes("NEW")
	catalog.gate("slow")
	catalog.gate("fast")

	s := NewSession(context.Background(), catalog, testDebounce)
	defer s.Close()
	waitForStatus(t, s, domain.StatusIdle, 1)

	s.SetQuery("slow")
	require.Eventually(t, func() bool { return catalog.callCount() == 2 }, waitTimeout, waitTick)
	s.SetQuery("fast")
	require.Eventually(t, func() bool { return catalog.callCount() == 3 }, waitTimeout, waitTick)

	// The superseded dispatch completes first. It must be discarded
	// and the session stays loading for the one still in flight.
	catalog.release("slow")
	time.Sleep(50 * time.Millisecond)

	snap := s.Snapshot()
	assert.Equal(t, domain.StatusLoading, snap.Status)
	assert.Equal(t, "0", snap.Results[0].ID)
	assert.Equal(t, uint64(1), snap.Generation)

	catalog.release("fast")
	snap = waitForStatus(t, s, domain.StatusIdle, 3)
	assert.Equal(t, "NEW", snap.Results[0].ID)
}

func TestSession_SelectAndSelected(t *testing.T) {
	defer goleak.VerifyNone(t)

	catalog := newMockCatalog()
	catalog.results[""] = recipes("1", "2")

	s := NewSession(context.Background(), catalog, testDebounce)
	defer s.Close()
	waitForStatus(t, s, domain.StatusIdle, 1)

	_, ok := s.Selected()
	assert.False(t, ok, "nothing selected initially")

	require.NoError(t, s.Select("2"))
	selected, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "Recipe 2", selected.Name)

	err := s.Select("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Fresh results clear the selection.
	s.Refresh()
	waitForStatus(t, s, domain.StatusIdle, 2)
	_, ok = s.Selected()
	assert.False(t, ok)
}

func TestSession_UpdatesCarriesLatestSnapshot(t *testing.T) {
	defer goleak.VerifyNone(t)

	catalog := newMockCatalog()
	catalog.results[""] = recipes("1")
	catalog.results["stew"] = recipes("2")

	s := NewSession(context.Background(), catalog, testDebounce)
	defer s.Close()

	// Several notifications have happened by now (initial, loading,
	// completion); an unhurried reader still sees only the newest.
	waitForStatus(t, s, domain.StatusIdle, 1)
	select {
	case snap := <-s.Updates():
		assert.Equal(t, domain.StatusIdle, snap.Status)
		assert.Equal(t, uint64(1), snap.Generation)
	default:
		t.Fatal("updates channel should hold a snapshot")
	}

	s.SetQuery("stew")
	waitForStatus(t, s, domain.StatusIdle, 2)
	select {
	case snap := <-s.Updates():
		assert.Equal(t, uint64(2), snap.Generation)
		assert.Equal(t, "stew", snap.Query)
	default:
		t.Fatal("updates channel should hold a snapshot")
	}
}

func TestSession_Close(t *testing.T) {
	defer goleak.VerifyNone(t)

	catalog := newMockCatalog()
	catalog.results[""] = recipes("1")

	s := NewSession(context.Background(), catalog, testDebounce)
	waitForStatus(t, s, domain.StatusIdle, 1)

	s.SetQuery("pending")
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "close is idempotent")

	// The armed debounce died with the session.
	time.Sleep(4 * testDebounce)
	assert.Equal(t, 1, catalog.callCount())

	// Later calls are ignored.
	s.SetQuery("more")
	s.Refresh()
	time.Sleep(4 * testDebounce)
	assert.Equal(t, 1, catalog.callCount())

	assert.ErrorIs(t, s.Select("1"), domain.ErrSessionClosed)

	// Subscribers observe the channel closing once it drains.
	for {
		if _, ok := <-s.Updates(); !ok {
			break
		}
	}
}
