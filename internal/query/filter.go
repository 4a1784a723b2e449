package query

import (
	"maps"
	"strings"
)

// Field extracts a string attribute from an entity.
type Field[E any] func(E) string

// Filters is the current filter state: a free-text term plus facet values.
// An empty term or a missing facet key places no constraint.
type Filters struct {
	Search string            `json:"search"`
	Facets map[string]string `json:"facets"`
}

// Active reports whether any filter constrains the result.
func (f Filters) Active() bool {
	if f.Search != "" {
		return true
	}
	for _, v := range f.Facets {
		if v != "" {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of f.
func (f Filters) Clone() Filters {
	out := Filters{Search: f.Search, Facets: make(map[string]string, len(f.Facets))}
	maps.Copy(out.Facets, f.Facets)
	return out
}

// Chain evaluates the search predicate and every active facet predicate
// against each entity. An entity passes when all of them pass.
type Chain[E any] struct {
	search []Field[E]
	facets map[string]Field[E]
}

// NewChain builds a Chain from the searchable fields and facet accessors.
func NewChain[E any](search []Field[E], facets map[string]Field[E]) Chain[E] {
	return Chain[E]{search: search, facets: facets}
}

// HasFacet reports whether name is a facet the chain knows about.
func (c Chain[E]) HasFacet(name string) bool {
	_, ok := c.facets[name]
	return ok
}

// Apply returns the entities of items that satisfy f, in their original order.
// Facet keys the chain does not know are ignored.
func (c Chain[E]) Apply(items []E, f Filters) []E {
	term := strings.ToLower(strings.TrimSpace(f.Search))

	type facet struct {
		field Field[E]
		want  string
	}
	active := make([]facet, 0, len(f.Facets))
	for name, want := range f.Facets {
		field, ok := c.facets[name]
		if !ok || want == "" {
			continue
		}
		active = append(active, facet{field: field, want: want})
	}

	out := make([]E, 0, len(items))
	for _, e := range items {
		if !c.matchSearch(e, term) {
			continue
		}
		pass := true
		for _, fc := range active {
			if fc.field(e) != fc.want {
				pass = false
				break
			}
		}
		if pass {
			out = append(out, e)
		}
	}
	return out
}

// matchSearch expects term to be lower-cased already.
func (c Chain[E]) matchSearch(e E, term string) bool {
	if term == "" {
		return true
	}
	for _, field := range c.search {
		if strings.Contains(strings.ToLower(field(e)), term) {
			return true
		}
	}
	return false
}
