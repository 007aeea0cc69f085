package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ladle-labs/ladle-cli/internal/core/domain"
	"github.com/ladle-labs/ladle-cli/internal/core/ports/driven"
)

// favoriteStore implements driven.FavoriteStore.
type favoriteStore struct {
	store *Store
}

var _ driven.FavoriteStore = (*favoriteStore)(nil)

// Add stores a favorite. Re-pinning an existing recipe is a conflict,
// reported as domain.ErrAlreadyExists.
func (s *favoriteStore) Add(ctx context.Context, fav domain.Favorite) error {
	res, err := s.store.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO favorites (recipe_id, name, category, cuisine, pinned_at)
		VALUES (?, ?, ?, ?, ?)
	`, fav.RecipeID, fav.Name, fav.Category, fav.Cuisine, fav.PinnedAt.UTC())
	if err != nil {
		return fmt.Errorf("inserting favorite: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking insert: %w", err)
	}
	if affected == 0 {
		return domain.ErrAlreadyExists
	}
	return nil
}

// Remove deletes a favorite by recipe ID.
func (s *favoriteStore) Remove(ctx context.Context, recipeID string) error {
	res, err := s.store.db.ExecContext(ctx, `DELETE FROM favorites WHERE recipe_id = ?`, recipeID)
	if err != nil {
		return fmt.Errorf("deleting favorite: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Get retrieves a favorite by recipe ID.
func (s *favoriteStore) Get(ctx context.Context, recipeID string) (*domain.Favorite, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT recipe_id, name, category, cuisine, pinned_at
		FROM favorites WHERE recipe_id = ?
	`, recipeID)

	fav, err := scanFavorite(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning favorite: %w", err)
	}
	return fav, nil
}

// List returns all favorites, most recently pinned first. The rowid
// breaks ties between rows pinned in the same instant.
func (s *favoriteStore) List(ctx context.Context) ([]domain.Favorite, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT recipe_id, name, category, cuisine, pinned_at
		FROM favorites ORDER BY pinned_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying favorites: %w", err)
	}
	defer rows.Close()

	var favs []domain.Favorite
	for rows.Next() {
		fav, err := scanFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}
		favs = append(favs, *fav)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating favorites: %w", err)
	}
	return favs, nil
}

// Close is a no-op; the owning Store holds the connection.
func (s *favoriteStore) Close() error {
	return nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanFavorite reads one favorites row.
func scanFavorite(row scanner) (*domain.Favorite, error) {
	var fav domain.Favorite
	var pinnedAt sql.NullTime
	if err := row.Scan(&fav.RecipeID, &fav.Name, &fav.Category, &fav.Cuisine, &pinnedAt); err != nil {
		return nil, err
	}
	if pinnedAt.Valid {
		fav.PinnedAt = pinnedAt.Time.UTC()
	}
	return &fav, nil
}
