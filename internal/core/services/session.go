package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ladle-labs/ladle-cli/internal/core/domain"
	"github.com/ladle-labs/ladle-cli/internal/core/ports/driven"
	"github.com/ladle-labs/ladle-cli/internal/core/ports/driving"
	"github.com/ladle-labs/ladle-cli/internal/logger"
)

// DefaultDebounce is the pause after the last query edit before a
// catalog dispatch fires. Long enough to let fast typists finish a
// word, short enough to feel instant.
const DefaultDebounce = 450 * time.Millisecond

// Ensure Session implements the interface.
var _ driving.SearchSession = (*Session)(nil)

// Session owns the interactive search loop: it debounces query edits,
// dispatches catalog requests and folds their completions into one
// snapshot. Each dispatch carries a generation number; only the
// completion of the newest dispatch is ever applied, so a slow
// response for an old query can never overwrite fresh results.
//
// One Session serves one caller. Methods are safe for concurrent use.
type Session struct {
	ctx      context.Context
	catalog  driven.RecipeCatalog
	debounce time.Duration

	mu         sync.Mutex
	query      string
	status     domain.SearchStatus
	results    []domain.Recipe
	lastErr    error
	selected   *domain.Recipe
	timer      *time.Timer // pending debounce, nil when none
	nextGen    uint64      // generation of the newest dispatch
	appliedGen uint64      // generation of the last applied completion
	closed     bool
	updates    chan domain.SearchSnapshot
}

// NewSession creates a session and immediately dispatches the empty
// query, so callers open onto the full catalog while it loads. The
// context bounds every catalog call the session makes; cancelling it
// is how an owner abandons in-flight work, since Close never does.
// A non-positive debounce selects DefaultDebounce.
func NewSession(ctx context.Context, catalog driven.RecipeCatalog, debounce time.Duration) *Session {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	s := &Session{
		ctx:      ctx,
		catalog:  catalog,
		debounce: debounce,
		status:   domain.StatusLoading,
		nextGen:  1,
		updates:  make(chan domain.SearchSnapshot, 1),
	}

	s.mu.Lock()
	s.notifyLocked()
	s.mu.Unlock()

	logger.Debug("session: initial dispatch for empty query")
	go s.runDispatch(1, "")
	return s
}

// SetQuery records a new query string. Setting the current value again
// is a no-op, which also keeps the initial empty query from being
// dispatched twice. A changed value cancels any pending debounce timer
// and arms a fresh one, so only the newest text is ever dispatched.
func (s *Session) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || query == s.query {
		return
	}
	s.query = query
	s.notifyLocked()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.fire)
	logger.Debug("session: debounce armed for %q", query)
}

// Refresh dispatches the current query right away. Any pending
// debounce timer is cancelled so the same text does not fire twice.
func (s *Session) Refresh() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	gen, query := s.beginDispatchLocked()
	s.mu.Unlock()

	go s.runDispatch(gen, query)
}

// Select marks the result with the given recipe ID as the current
// selection.
func (s *Session) Select(recipeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrSessionClosed
	}
	for i := range s.results {
		if s.results[i].ID == recipeID {
			recipe := s.results[i]
			s.selected = &recipe
			return nil
		}
	}
	return fmt.Errorf("select %s: %w", recipeID, domain.ErrNotFound)
}

// Selected returns the currently selected recipe, if any.
func (s *Session) Selected() (domain.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return domain.Recipe{}, false
	}
	return *s.selected, true
}

// Snapshot returns a copy of the current session state. The results
// slice is shared but never mutated in place; completions replace it
// wholesale.
func (s *Session) Snapshot() domain.SearchSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Updates returns the snapshot channel. It has capacity one and always
// holds the latest snapshot; it is closed by Close.
func (s *Session) Updates() <-chan domain.SearchSnapshot {
	return s.updates
}

// Close cancels any pending debounce timer, closes the updates channel
// and marks the session closed. In-flight catalog calls are left to
// finish against the owner's context; their completions are discarded
// on arrival.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	close(s.updates)
	logger.Debug("session: closed")
	return nil
}

// fire runs when the debounce window lapses with no further edits.
func (s *Session) fire() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	gen, query := s.beginDispatchLocked()
	s.mu.Unlock()

	s.runDispatch(gen, query)
}

// beginDispatchLocked allocates the next generation and moves the
// session to loading. The last error belongs to the superseded
// dispatch, so it clears here. Caller holds mu.
func (s *Session) beginDispatchLocked() (uint64, string) {
	s.nextGen++
	s.status = domain.StatusLoading
	s.lastErr = nil
	s.notifyLocked()
	logger.Debug("session: dispatch %d for %q", s.nextGen, s.query)
	return s.nextGen, s.query
}

// runDispatch performs the catalog call for one dispatch and applies
// its outcome.
func (s *Session) runDispatch(gen uint64, query string) {
	results, err := s.catalog.SearchByName(s.ctx, query)
	s.apply(gen, query, results, err)
}

// apply folds one dispatch outcome into the snapshot. A completion
// whose generation is not the newest dispatched is a stale echo of a
// superseded request and is dropped without touching state.
func (s *Session) apply(gen uint64, query string, results []domain.Recipe, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if gen != s.nextGen {
		logger.Debug("session: dropping stale completion %d for %q (newest is %d)", gen, query, s.nextGen)
		return
	}
	s.appliedGen = gen

	if err != nil {
		// Results keep their previous value so the caller's list does
		// not flash empty on a transient failure.
		s.status = domain.StatusError
		s.lastErr = err
		logger.Warn("session: dispatch %d for %q failed: %v", gen, query, err)
	} else {
		s.status = domain.StatusIdle
		s.results = results
		s.lastErr = nil
		s.selected = nil
		logger.Debug("session: dispatch %d for %q returned %d recipes", gen, query, len(results))
	}
	s.notifyLocked()
}

// snapshotLocked builds the published view. Caller holds mu.
func (s *Session) snapshotLocked() domain.SearchSnapshot {
	return domain.SearchSnapshot{
		Query:      s.query,
		Status:     s.status,
		Results:    s.results,
		LastError:  s.lastErr,
		Generation: s.appliedGen,
	}
}

// notifyLocked publishes the current snapshot, displacing an unread
// one so the channel always carries the latest. Caller holds mu.
func (s *Session) notifyLocked() {
	snap := s.snapshotLocked()
	select {
	case s.updates <- snap:
		return
	default:
	}
	// Channel full: drop the unread snapshot and retry. A concurrent
	// reader may win the race for the old value, in which case the
	// buffer is free either way.
	select {
	case <-s.updates:
	default:
	}
	select {
	case s.updates <- snap:
	default:
	}
}
