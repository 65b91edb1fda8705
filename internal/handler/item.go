package handler

import (
	"net/http"

	"github.com/ecoleta-app/backend/internal/domain"
)

// itemResponse is the wire representation of a catalog item.
// The raw filename is never exposed — clients get a fully-qualified URL.
type itemResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

// ListItems handles GET /items.
func (s *Server) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.items.List(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	resp := make([]itemResponse, len(items))
	for i, it := range items {
		resp[i] = itemToResponse(it, s.uploads.ItemImageURL(it.Image))
	}
	writeJSON(w, http.StatusOK, resp)
}

// itemToResponse converts a domain.Item into its wire representation.
func itemToResponse(it domain.Item, imageURL string) itemResponse {
	return itemResponse{
		ID:       it.ID,
		Title:    it.Title,
		ImageURL: imageURL,
	}
}
