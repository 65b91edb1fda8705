package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ecoleta-app/backend/internal/domain"
)

// maxMultipartMemory is how much of a multipart body is held in memory before
// spilling to temp files. The overall body size is capped by the max-body-size
// middleware, not here.
const maxMultipartMemory = 10 << 20

// pointResponse is the wire representation of a collection point.
// ImageURL is only set on read responses; the create response echoes the
// submitted fields plus the stored filename, exactly as they were persisted.
type pointResponse struct {
	ID        int64   `json:"id"`
	Image     string  `json:"image"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Whatsapp  string  `json:"whatsapp"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	UF        string  `json:"uf"`
	ImageURL  string  `json:"image_url,omitempty"`
}

// itemTitleResponse is the nested item shape on the show-point response:
// titles only, no ids or images.
type itemTitleResponse struct {
	Title string `json:"title"`
}

// showPointResponse is the body of GET /points/{id}.
type showPointResponse struct {
	pointResponse
	Items []itemTitleResponse `json:"items"`
}

// ListPoints handles GET /points?city=&uf=&items=.
func (s *Server) ListPoints(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	itemIDs, err := domain.ParseItemIDs(q.Get("items"))
	if err != nil {
		badRequest(w, validationMessage(err))
		return
	}

	points, err := s.points.List(r.Context(), q.Get("city"), q.Get("uf"), itemIDs)
	if err != nil {
		serverError(w, r, err)
		return
	}

	resp := make([]pointResponse, len(points))
	for i, p := range points {
		resp[i] = pointToResponse(p, s.uploads.PointImageURL(p.Image))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetPoint handles GET /points/{id}.
// A non-numeric id can never match a point, so it gets the same response as
// an absent one.
func (s *Server) GetPoint(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		pointNotFound(w)
		return
	}

	point, titles, err := s.points.GetWithItems(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			pointNotFound(w)
			return
		}
		serverError(w, r, err)
		return
	}

	resp := showPointResponse{
		pointResponse: pointToResponse(point, s.uploads.PointImageURL(point.Image)),
		Items:         make([]itemTitleResponse, len(titles)),
	}
	for i, title := range titles {
		resp.Items[i] = itemTitleResponse{Title: title}
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreatePoint handles POST /points (multipart/form-data).
// The image is stored on disk before the database transaction runs. If the
// transaction then fails, the stored file is removed again on a best-effort
// basis so no orphan remains.
func (s *Server) CreatePoint(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		badRequest(w, "could not parse multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		badRequest(w, "image file is required")
		return
	}
	defer file.Close()

	itemIDs, err := domain.ParseItemIDs(r.FormValue("items"))
	if err != nil {
		badRequest(w, validationMessage(err))
		return
	}

	latitude, err := strconv.ParseFloat(r.FormValue("latitude"), 64)
	if err != nil {
		badRequest(w, "invalid latitude")
		return
	}
	longitude, err := strconv.ParseFloat(r.FormValue("longitude"), 64)
	if err != nil {
		badRequest(w, "invalid longitude")
		return
	}

	filename, err := s.uploads.SavePointImage(file)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			badRequest(w, validationMessage(err))
			return
		}
		serverError(w, r, err)
		return
	}

	point := domain.Point{
		Image:     filename,
		Name:      r.FormValue("name"),
		Email:     r.FormValue("email"),
		Whatsapp:  r.FormValue("whatsapp"),
		Latitude:  latitude,
		Longitude: longitude,
		City:      r.FormValue("city"),
		UF:        r.FormValue("uf"),
	}

	created, err := s.points.Create(r.Context(), point, itemIDs)
	if err != nil {
		// The upload already happened; undo it so a failed create leaves
		// neither database rows nor a stray file behind.
		if rmErr := s.uploads.RemovePointImage(filename); rmErr != nil {
			slog.WarnContext(r.Context(), "remove orphaned upload", "file", filename, "error", rmErr)
		}
		if errors.Is(err, domain.ErrValidation) {
			badRequest(w, validationMessage(err))
			return
		}
		serverError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pointToResponse(created, ""))
}

// pointToResponse converts a domain.Point into its wire representation.
// Pass imageURL="" to omit the image_url field (create responses).
func pointToResponse(p domain.Point, imageURL string) pointResponse {
	return pointResponse{
		ID:        p.ID,
		Image:     p.Image,
		Name:      p.Name,
		Email:     p.Email,
		Whatsapp:  p.Whatsapp,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		City:      p.City,
		UF:        p.UF,
		ImageURL:  imageURL,
	}
}
