// Package repo contains all database access logic for the Ecoleta API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ecoleta-app/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// txDB additionally starts transactions, which the create path needs.
// Both *pgxpool.Pool and pgx.Tx satisfy it — Begin on a pgx.Tx opens a
// savepoint-backed nested transaction, so the rolled-back-transaction test
// setup keeps working for Create too.
type txDB interface {
	db
	Begin(ctx context.Context) (pgx.Tx, error)
}

// PointRepo defines the persistence operations for Points and the point_items
// join table. The service layer depends on this interface, not the concrete
// Postgres implementation, which allows it to be unit-tested with a mock.
type PointRepo interface {
	// Create inserts a point and one point_items row per item id inside a
	// single transaction. On any failure the transaction is rolled back and
	// neither the point nor any association row remains. The returned point
	// is the submitted record with the generated id set — it is not re-read
	// from the database.
	Create(ctx context.Context, point domain.Point, itemIDs []int64) (domain.Point, error)

	// GetByID retrieves a single point by primary key.
	// Returns domain.ErrNotFound if no point with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Point, error)

	// Filter returns the distinct points in the given city and uf that accept
	// at least one of the given items. City and uf are matched exactly, with
	// no case normalization. A point matching several of the requested items
	// still appears exactly once.
	Filter(ctx context.Context, city, uf string, itemIDs []int64) ([]domain.Point, error)
}

// pgPointRepo is the Postgres implementation of PointRepo.
type pgPointRepo struct {
	db txDB
}

// NewPointRepo constructs a PointRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPointRepo(db txDB) PointRepo {
	return &pgPointRepo{db: db}
}

// Create inserts the point and its item associations atomically.
// Association rows preserve the submitted order and duplicates — the schema
// deliberately has no uniqueness constraint on (point_id, item_id).
func (r *pgPointRepo) Create(ctx context.Context, point domain.Point, itemIDs []int64) (domain.Point, error) {
	const insertPoint = `
		INSERT INTO points (image, name, email, whatsapp, latitude, longitude, city, uf)
		VALUES (@image, @name, @email, @whatsapp, @latitude, @longitude, @city, @uf)
		RETURNING id`

	const insertPointItem = `
		INSERT INTO point_items (point_id, item_id)
		VALUES (@point_id, @item_id)`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Point{}, fmt.Errorf("repo.PointRepo.Create: begin: %w", err)
	}
	// Rollback is a no-op after a successful Commit.
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{
		"image":     point.Image,
		"name":      point.Name,
		"email":     point.Email,
		"whatsapp":  point.Whatsapp,
		"latitude":  point.Latitude,
		"longitude": point.Longitude,
		"city":      point.City,
		"uf":        point.UF,
	}
	if err := tx.QueryRow(ctx, insertPoint, args).Scan(&point.ID); err != nil {
		return domain.Point{}, fmt.Errorf("repo.PointRepo.Create: insert point: %w", err)
	}

	for _, itemID := range itemIDs {
		_, err := tx.Exec(ctx, insertPointItem, pgx.NamedArgs{
			"point_id": point.ID,
			"item_id":  itemID,
		})
		if err != nil {
			return domain.Point{}, fmt.Errorf("repo.PointRepo.Create: insert point_items: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Point{}, fmt.Errorf("repo.PointRepo.Create: commit: %w", err)
	}
	return point, nil
}

// GetByID retrieves a point by primary key.
func (r *pgPointRepo) GetByID(ctx context.Context, id int64) (domain.Point, error) {
	const q = `
		SELECT id, image, name, email, whatsapp, latitude, longitude, city, uf
		FROM points
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanPoint(row)
	if err != nil {
		return domain.Point{}, fmt.Errorf("repo.PointRepo.GetByID: %w", err)
	}
	return result, nil
}

// Filter returns distinct points in city/uf accepting any of the given items.
func (r *pgPointRepo) Filter(ctx context.Context, city, uf string, itemIDs []int64) ([]domain.Point, error) {
	const q = `
		SELECT DISTINCT p.id, p.image, p.name, p.email, p.whatsapp,
		       p.latitude, p.longitude, p.city, p.uf
		FROM points p
		JOIN point_items pi ON pi.point_id = p.id
		WHERE pi.item_id = ANY(@item_ids)
		  AND p.city = @city
		  AND p.uf = @uf
		ORDER BY p.id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"item_ids": itemIDs,
		"city":     city,
		"uf":       uf,
	})
	if err != nil {
		return nil, fmt.Errorf("repo.PointRepo.Filter: %w", err)
	}
	defer rows.Close()

	points := []domain.Point{}
	for rows.Next() {
		p, err := scanPoint(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PointRepo.Filter: scan: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PointRepo.Filter: rows: %w", err)
	}
	return points, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanPoint maps a single database row into a domain.Point.
func scanPoint(s scanner) (domain.Point, error) {
	var p domain.Point
	err := s.Scan(&p.ID, &p.Image, &p.Name, &p.Email, &p.Whatsapp,
		&p.Latitude, &p.Longitude, &p.City, &p.UF)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Point{}, domain.ErrNotFound
		}
		return domain.Point{}, err
	}
	return p, nil
}
