// Package service contains the business logic for the Ecoleta API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"

	"github.com/ecoleta-app/backend/internal/domain"
	"github.com/ecoleta-app/backend/internal/repo"
)

// ItemService implements business logic for the items catalog.
type ItemService struct {
	items repo.ItemRepo
}

// NewItemService constructs an ItemService backed by the provided ItemRepo.
func NewItemService(items repo.ItemRepo) *ItemService {
	return &ItemService{items: items}
}

// List returns the full items catalog. There is no filtering or pagination —
// the catalog is six seeded rows.
func (s *ItemService) List(ctx context.Context) ([]domain.Item, error) {
	return s.items.List(ctx)
}
