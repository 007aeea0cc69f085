package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ladle-labs/ladle-cli/internal/core/domain"
	"github.com/ladle-labs/ladle-cli/internal/core/ports/driven"
)

// Ensure FavoriteStore implements the interface.
var _ driven.FavoriteStore = (*FavoriteStore)(nil)

// FavoriteStore is an in-memory implementation of driven.FavoriteStore.
// Pins do not survive the process; it stands in when the SQLite store
// cannot be opened.
type FavoriteStore struct {
	mu        sync.RWMutex
	favorites map[string]domain.Favorite
	seq       map[string]uint64
	nextSeq   uint64
}

// NewFavoriteStore creates a new in-memory favorite store.
func NewFavoriteStore() *FavoriteStore {
	return &FavoriteStore{
		favorites: make(map[string]domain.Favorite),
		seq:       make(map[string]uint64),
	}
}

// Add stores a favorite. Re-pinning is a conflict.
func (s *FavoriteStore) Add(_ context.Context, fav domain.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.favorites[fav.RecipeID]; ok {
		return domain.ErrAlreadyExists
	}
	s.nextSeq++
	s.favorites[fav.RecipeID] = fav
	s.seq[fav.RecipeID] = s.nextSeq
	return nil
}

// Remove deletes a favorite by recipe ID.
func (s *FavoriteStore) Remove(_ context.Context, recipeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.favorites[recipeID]; !ok {
		return domain.ErrNotFound
	}
	delete(s.favorites, recipeID)
	delete(s.seq, recipeID)
	return nil
}

// Get retrieves a favorite by recipe ID.
func (s *FavoriteStore) Get(_ context.Context, recipeID string) (*domain.Favorite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fav, ok := s.favorites[recipeID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &fav, nil
}

// List returns all favorites, most recently pinned first. Pins from
// the same instant fall back to insertion order, newest first.
func (s *FavoriteStore) List(_ context.Context) ([]domain.Favorite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	favs := make([]domain.Favorite, 0, len(s.favorites))
	for _, fav := range s.favorites {
		favs = append(favs, fav)
	}
	sort.Slice(favs, func(i, j int) bool {
		if !favs[i].PinnedAt.Equal(favs[j].PinnedAt) {
			return favs[i].PinnedAt.After(favs[j].PinnedAt)
		}
		return s.seq[favs[i].RecipeID] > s.seq[favs[j].RecipeID]
	})
	return favs, nil
}

// Close is a no-op for the in-memory store.
func (s *FavoriteStore) Close() error {
	return nil
}
