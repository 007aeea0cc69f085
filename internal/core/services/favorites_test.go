package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladle-labs/ladle-cli/internal/core/domain"
)

// mockFavoriteStore implements driven.FavoriteStore in memory.
type mockFavoriteStore struct {
	favs    map[string]domain.Favorite
	order   []string // insertion order, newest last
	failAll error    // returned by every method when set
}

func newMockFavoriteStore() *mockFavoriteStore {
	return &mockFavoriteStore{favs: make(map[string]domain.Favorite)}
}

func (m *mockFavoriteStore) Add(_ context.Context, fav domain.Favorite) error {
	if m.failAll != nil {
		return m.failAll
	}
	if _, exists := m.favs[fav.RecipeID]; exists {
		return domain.ErrAlreadyExists
	}
	m.favs[fav.RecipeID] = fav
	m.order = append(m.order, fav.RecipeID)
	return nil
}

func (m *mockFavoriteStore) Remove(_ context.Context, recipeID string) error {
	if m.failAll != nil {
		return m.failAll
	}
	if _, exists := m.favs[recipeID]; !exists {
		return domain.ErrNotFound
	}
	delete(m.favs, recipeID)
	return nil
}

func (m *mockFavoriteStore) Get(_ context.Context, recipeID string) (*domain.Favorite, error) {
	if m.failAll != nil {
		return nil, m.failAll
	}
	fav, exists := m.favs[recipeID]
	if !exists {
		return nil, domain.ErrNotFound
	}
	return &fav, nil
}

func (m *mockFavoriteStore) List(context.Context) ([]domain.Favorite, error) {
	if m.failAll != nil {
		return nil, m.failAll
	}
	out := make([]domain.Favorite, 0, len(m.favs))
	for i := len(m.order) - 1; i >= 0; i-- {
		if fav, exists := m.favs[m.order[i]]; exists {
			out = append(out, fav)
		}
	}
	return out, nil
}

func (m *mockFavoriteStore) Close() error { return nil }

func TestFavoritesService_Pin(t *testing.T) {
	store := newMockFavoriteStore()
	svc := NewFavoritesService(store)

	pinnedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return pinnedAt }

	recipe := domain.Recipe{ID: "52771", Name: "Spicy Arrabiata Penne", Category: "Vegetarian", Cuisine: "Italian"}
	require.NoError(t, svc.Pin(context.Background(), recipe))

	fav, ok := store.favs["52771"]
	require.True(t, ok)
	assert.Equal(t, "Spicy Arrabiata Penne", fav.Name)
	assert.Equal(t, "Vegetarian", fav.Category)
	assert.Equal(t, "Italian", fav.Cuisine)
	assert.Equal(t, pinnedAt, fav.PinnedAt)
}

func TestFavoritesService_Pin_RequiresIdentity(t *testing.T) {
	store := newMockFavoriteStore()
	svc := NewFavoritesService(store)

	err := svc.Pin(context.Background(), domain.Recipe{Name: "No ID"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = svc.Pin(context.Background(), domain.Recipe{ID: "1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, store.favs)
}

func TestFavoritesService_Pin_Duplicate(t *testing.T) {
	store := newMockFavoriteStore()
	svc := NewFavoritesService(store)

	recipe := domain.Recipe{ID: "1", Name: "Stew"}
	require.NoError(t, svc.Pin(context.Background(), recipe))

	err := svc.Pin(context.Background(), recipe)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestFavoritesService_Unpin(t *testing.T) {
	store := newMockFavoriteStore()
	svc := NewFavoritesService(store)

	require.NoError(t, svc.Pin(context.Background(), domain.Recipe{ID: "1", Name: "Stew"}))
	require.NoError(t, svc.Unpin(context.Background(), "1"))

	err := svc.Unpin(context.Background(), "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Unpin(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFavoritesService_List(t *testing.T) {
	store := newMockFavoriteStore()
	svc := NewFavoritesService(store)

	require.NoError(t, svc.Pin(context.Background(), domain.Recipe{ID: "1", Name: "First"}))
	require.NoError(t, svc.Pin(context.Background(), domain.Recipe{ID: "2", Name: "Second"}))

	favs, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, favs, 2)
	assert.Equal(t, "2", favs[0].RecipeID, "newest first")
	assert.Equal(t, "1", favs[1].RecipeID)
}

func TestFavoritesService_List_WrapsStoreError(t *testing.T) {
	store := newMockFavoriteStore()
	store.failAll = errors.New("disk on fire")
	svc := NewFavoritesService(store)

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list favorites:")
}

func TestFavoritesService_IsPinned(t *testing.T) {
	store := newMockFavoriteStore()
	svc := NewFavoritesService(store)

	require.NoError(t, svc.Pin(context.Background(), domain.Recipe{ID: "1", Name: "Stew"}))

	pinned, err := svc.IsPinned(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, pinned)

	pinned, err = svc.IsPinned(context.Background(), "2")
	require.NoError(t, err)
	assert.False(t, pinned, "missing favorite is false, not an error")

	store.failAll = errors.New("disk on fire")
	_, err = svc.IsPinned(context.Background(), "1")
	assert.Error(t, err)
}
