// Package handler implements the HTTP handlers for the Ecoleta API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, item.go, point.go) but all share the same Server struct
// so they can access its dependencies. The handler layer is the single place
// translating domain errors into HTTP status codes.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecoleta-app/backend/internal/domain"
	"github.com/ecoleta-app/backend/internal/upload"
)

// ItemServicer defines the business operations the item handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type ItemServicer interface {
	List(ctx context.Context) ([]domain.Item, error)
}

// PointServicer defines the business operations the point handlers depend on.
type PointServicer interface {
	Create(ctx context.Context, point domain.Point, itemIDs []int64) (domain.Point, error)
	List(ctx context.Context, city, uf string, itemIDs []int64) ([]domain.Point, error)
	GetWithItems(ctx context.Context, id int64) (domain.Point, []string, error)
}

// Server implements the HTTP handlers for all API endpoints.
// Wire it in main.go via Routes().
type Server struct {
	items      ItemServicer
	points     PointServicer
	uploads    *upload.Manager
	uploadsDir string
}

// NewServer constructs the Server with all its dependencies.
// uploadsDir is the local directory served under /uploads/*.
func NewServer(items ItemServicer, points PointServicer, uploads *upload.Manager, uploadsDir string) *Server {
	return &Server{items: items, points: points, uploads: uploads, uploadsDir: uploadsDir}
}

// Routes returns the router for the full API surface, including the static
// file server for uploaded images (item icons and point photos).
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/items", s.ListItems)
	r.Get("/points", s.ListPoints)
	r.Get("/points/{id}", s.GetPoint)
	r.Post("/points", s.CreatePoint)

	r.Handle("/uploads/*", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(s.uploadsDir))))

	return r
}
