package service

import (
	"context"
	"fmt"

	"github.com/ecoleta-app/backend/internal/domain"
	"github.com/ecoleta-app/backend/internal/repo"
)

// PointService implements business logic for collection points.
type PointService struct {
	points repo.PointRepo
	items  repo.ItemRepo
}

// NewPointService constructs a PointService backed by the provided repos.
func NewPointService(points repo.PointRepo, items repo.ItemRepo) *PointService {
	return &PointService{points: points, items: items}
}

// Create persists a new point together with its item associations in a single
// transaction. The point's Image must already be the stored filename of the
// uploaded photo. Beyond that the submitted fields are persisted as-is —
// email, whatsapp and coordinates are deliberately not validated; an unknown
// item id is caught by the foreign key and rolls the whole create back.
func (s *PointService) Create(ctx context.Context, point domain.Point, itemIDs []int64) (domain.Point, error) {
	if point.Image == "" {
		return domain.Point{}, fmt.Errorf("service.PointService.Create: %w: image is required", domain.ErrValidation)
	}
	if len(itemIDs) == 0 {
		return domain.Point{}, fmt.Errorf("service.PointService.Create: %w: items list is empty", domain.ErrValidation)
	}

	created, err := s.points.Create(ctx, point, itemIDs)
	if err != nil {
		return domain.Point{}, fmt.Errorf("service.PointService.Create: %w", err)
	}
	return created, nil
}

// List returns the distinct points in city/uf accepting at least one of the
// given items.
func (s *PointService) List(ctx context.Context, city, uf string, itemIDs []int64) ([]domain.Point, error) {
	points, err := s.points.Filter(ctx, city, uf, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("service.PointService.List: %w", err)
	}
	return points, nil
}

// GetWithItems returns a point and the titles of the items it accepts.
// Returns domain.ErrNotFound when no point with that id exists.
func (s *PointService) GetWithItems(ctx context.Context, id int64) (domain.Point, []string, error) {
	point, err := s.points.GetByID(ctx, id)
	if err != nil {
		return domain.Point{}, nil, fmt.Errorf("service.PointService.GetWithItems: %w", err)
	}

	titles, err := s.items.TitlesByPoint(ctx, id)
	if err != nil {
		return domain.Point{}, nil, fmt.Errorf("service.PointService.GetWithItems: %w", err)
	}
	return point, titles, nil
}
