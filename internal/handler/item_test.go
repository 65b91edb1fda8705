package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoleta-app/backend/internal/domain"
)

func TestListItems_200(t *testing.T) {
	svc := &mockItemServicer{
		list: func(_ context.Context) ([]domain.Item, error) {
			return []domain.Item{
				{ID: 1, Title: "Lâmpadas", Image: "lampadas.svg"},
				{ID: 2, Title: "Pilhas e Baterias", Image: "baterias.svg"},
			}, nil
		},
	}
	h, _ := newTestServer(t, svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Lâmpadas", resp[0]["title"])
	assert.Equal(t, "http://localhost:8080/uploads/lampadas.svg", resp[0]["image_url"])
	// Raw filenames stay internal; only the URL is exposed.
	assert.NotContains(t, resp[0], "image")
}

func TestListItems_500(t *testing.T) {
	svc := &mockItemServicer{
		list: func(_ context.Context) ([]domain.Item, error) {
			return nil, errors.New("connection refused")
		},
	}
	h, _ := newTestServer(t, svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
