// Package domain contains the core data types for the Ecoleta backend.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

// Item represents a category of collectible waste (e.g. batteries, cooking oil).
// Items are catalog data: they are created by the seed migration and never
// mutated through the API.
type Item struct {
	ID    int64
	Title string
	// Image is the bare filename of the category icon under the uploads
	// directory. Full URLs are computed at response time, never stored.
	Image string
}
