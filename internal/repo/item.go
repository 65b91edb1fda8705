package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ecoleta-app/backend/internal/domain"
)

// ItemRepo defines the persistence operations for the items catalog.
type ItemRepo interface {
	// List returns all items ordered by id. Items are seed data, so there is
	// no filtering or pagination.
	List(ctx context.Context) ([]domain.Item, error)

	// TitlesByPoint returns the titles of all items a point accepts, ordered
	// by item id. A point with no associations (or an unknown point id)
	// yields an empty slice, not an error.
	TitlesByPoint(ctx context.Context, pointID int64) ([]string, error)
}

// pgItemRepo is the Postgres implementation of ItemRepo.
type pgItemRepo struct {
	db db
}

// NewItemRepo constructs an ItemRepo backed by the provided db connection.
func NewItemRepo(db db) ItemRepo {
	return &pgItemRepo{db: db}
}

// List returns the full items catalog.
func (r *pgItemRepo) List(ctx context.Context) ([]domain.Item, error) {
	const q = `
		SELECT id, title, image
		FROM items
		ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.List: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(&it.ID, &it.Title, &it.Image); err != nil {
			return nil, fmt.Errorf("repo.ItemRepo.List: scan: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.List: rows: %w", err)
	}
	return items, nil
}

// TitlesByPoint returns the item titles associated with a point.
// Duplicate associations produce duplicate titles, matching what was inserted.
func (r *pgItemRepo) TitlesByPoint(ctx context.Context, pointID int64) ([]string, error) {
	const q = `
		SELECT i.title
		FROM items i
		JOIN point_items pi ON pi.item_id = i.id
		WHERE pi.point_id = @point_id
		ORDER BY i.id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"point_id": pointID})
	if err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.TitlesByPoint: %w", err)
	}
	defer rows.Close()

	titles := []string{}
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("repo.ItemRepo.TitlesByPoint: scan: %w", err)
		}
		titles = append(titles, title)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.TitlesByPoint: rows: %w", err)
	}
	return titles, nil
}
