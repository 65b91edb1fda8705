package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoleta-app/backend/internal/domain"
	"github.com/ecoleta-app/backend/internal/service"
)

func TestItemService_List_OK(t *testing.T) {
	want := []domain.Item{
		{ID: 1, Title: "Lâmpadas", Image: "lampadas.svg"},
		{ID: 2, Title: "Pilhas e Baterias", Image: "baterias.svg"},
	}
	svc := service.NewItemService(&mockItemRepo{
		list: func(_ context.Context) ([]domain.Item, error) {
			return want, nil
		},
	})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestItemService_List_RepoError(t *testing.T) {
	repoErr := errors.New("connection refused")
	svc := service.NewItemService(&mockItemRepo{
		list: func(_ context.Context) ([]domain.Item, error) {
			return nil, repoErr
		},
	})

	_, err := svc.List(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}
