// Package upload stores uploaded point photos on local disk and builds the
// public URLs under which stored files are served.
//
// Filenames are generated, never taken from the client, so two uploads can
// never collide and path traversal through a crafted filename is impossible.
package upload

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ecoleta-app/backend/internal/domain"
)

// pointsSubdir is the subdirectory for point photos. Item category icons live
// directly in the uploads root.
const pointsSubdir = "points"

// Manager writes uploaded files below a root directory and knows the public
// base URL they are served from.
type Manager struct {
	dir     string
	baseURL string
}

// NewManager constructs a Manager rooted at dir, serving files under baseURL
// (no trailing slash). The points subdirectory is created on first save.
func NewManager(dir, baseURL string) *Manager {
	return &Manager{dir: dir, baseURL: baseURL}
}

// SavePointImage reads an uploaded image, verifies it is a JPEG or PNG by
// sniffing the content (the client-supplied Content-Type header is ignored),
// and writes it under the points subdirectory with a collision-free generated
// name. It returns the bare filename to store on the point record.
//
// A non-image payload returns an error wrapping domain.ErrValidation.
func (m *Manager) SavePointImage(r io.Reader) (string, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("upload.Manager.SavePointImage: read: %w", err)
	}

	var ext string
	switch contentType := http.DetectContentType(buf); contentType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	default:
		return "", fmt.Errorf("%w: file format %s not allowed, upload a JPEG or PNG image",
			domain.ErrValidation, contentType)
	}

	if err := os.MkdirAll(filepath.Join(m.dir, pointsSubdir), 0o755); err != nil {
		return "", fmt.Errorf("upload.Manager.SavePointImage: mkdir: %w", err)
	}

	filename := uuid.NewString() + ext
	path := filepath.Join(m.dir, pointsSubdir, filename)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return "", fmt.Errorf("upload.Manager.SavePointImage: write: %w", err)
	}

	return filename, nil
}

// RemovePointImage deletes a previously stored point photo.
// Used as a compensating delete when the create transaction fails after the
// upload already succeeded.
func (m *Manager) RemovePointImage(filename string) error {
	path := filepath.Join(m.dir, pointsSubdir, filepath.Base(filename))
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("upload.Manager.RemovePointImage: %w", err)
	}
	return nil
}

// ItemImageURL returns the public URL of an item category icon.
func (m *Manager) ItemImageURL(filename string) string {
	if filename == "" {
		return ""
	}
	return m.baseURL + "/" + filename
}

// PointImageURL returns the public URL of a point photo.
func (m *Manager) PointImageURL(filename string) string {
	if filename == "" {
		return ""
	}
	return m.baseURL + "/" + pointsSubdir + "/" + filename
}
