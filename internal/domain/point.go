package domain

// Point represents a physical waste-collection location with contact info and
// geocoordinates. A point is created exactly once, together with its item
// associations, and is never updated or deleted by this system.
type Point struct {
	ID int64
	// Image is the generated filename of the uploaded photo, relative to the
	// points uploads directory. The upload itself happens before the point is
	// persisted.
	Image     string
	Name      string
	Email     string
	Whatsapp  string
	Latitude  float64
	Longitude float64
	City      string
	// UF is the two-letter Brazilian state abbreviation. Matched exactly —
	// no case normalization.
	UF string
}
