package query

import (
	"errors"
	"maps"
	"slices"
	"time"
)

// Kind configures a Controller for one entity type. It carries everything that
// differs between entity kinds: identity accessors, search fields, facets, the
// sort comparator, the business key, and the mutation hooks.
type Kind[E any] struct {
	// Name is the singular label used in messages and logs, e.g. "gate".
	Name string

	ID    func(E) string
	SetID func(*E, string)

	// Search lists the fields the free-text term is matched against.
	Search []Field[E]
	// Facets maps a facet name to the field it constrains by exact equality.
	Facets map[string]Field[E]

	// Compare orders the filtered result. It must be a total order; ties keep
	// collection order.
	Compare func(a, b E) int

	// Key returns the business key that must stay unique across the
	// collection. Nil means the kind has none.
	Key func(E) string

	// Validate checks required fields on a draft before any mutation.
	Validate func(E) error

	// Init populates audit fields and counters of a freshly created entity.
	Init func(e *E, now time.Time)

	// Merge copies the mutable fields of draft onto dst and refreshes its
	// audit timestamp. Identity and creation data on dst are preserved.
	Merge func(dst *E, draft E, now time.Time)

	// SetStatus applies a status change. Nil means the kind does not support
	// status changes.
	SetStatus func(e *E, status string, now time.Time) error
}

func (k Kind[E]) check() error {
	switch {
	case k.Name == "":
		return errors.New("query: kind name is required")
	case k.ID == nil || k.SetID == nil:
		return errors.New("query: kind id accessors are required")
	case k.Compare == nil:
		return errors.New("query: kind comparator is required")
	case k.Init == nil || k.Merge == nil:
		return errors.New("query: kind init and merge hooks are required")
	}
	return nil
}

// FacetNames returns the facet names the kind defines, sorted.
func (k Kind[E]) FacetNames() []string {
	return slices.Sorted(maps.Keys(k.Facets))
}
