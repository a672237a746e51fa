package entities

// ReferenceKind names one of the open-ended option lists. The value is the
// remote table name.
type ReferenceKind string

const (
	ReferenceBrands    ReferenceKind = "marcas"
	ReferenceLocations ReferenceKind = "locais"
)

// ReferenceOption is an entry of a reference list (a brand or a location).
// Equipment records point at options by Name, not by ID.
type ReferenceOption struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}
