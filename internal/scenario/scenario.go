// Package scenario defines the rehearsal scenario value consumed by the
// scoring and coaching engines. The scenario catalog itself lives outside this
// module; only the shape it exposes is defined here.
package scenario

// Category flavors coaching notes and the try-again focus. The set is fixed.
type Category string

const (
	CategoryInterview    Category = "interview"
	CategoryPresentation Category = "presentation"
	CategorySmallTalk    Category = "smalltalk"
	CategoryNegotiation  Category = "negotiation"
	CategoryConflict     Category = "conflict"
)

// Categories lists every valid category in a stable order.
func Categories() []Category {
	return []Category{
		CategoryInterview,
		CategoryPresentation,
		CategorySmallTalk,
		CategoryNegotiation,
		CategoryConflict,
	}
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryInterview, CategoryPresentation, CategorySmallTalk,
		CategoryNegotiation, CategoryConflict:
		return true
	}
	return false
}

// Scenario is one rehearsal scenario from the catalog. Pro marks the access
// tier; gating on it is the catalog's concern, not the engine's.
type Scenario struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category Category `json:"category"`
	Pro      bool     `json:"pro"`
}
