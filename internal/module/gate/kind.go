// Package gate serves the fare gate list screen.
package gate

import (
	"strings"
	"time"

	"github.com/simp-lee/gateadmin/internal/domain"
	"github.com/simp-lee/gateadmin/internal/query"
)

// Kind returns the collection configuration for gates.
func Kind() query.Kind[domain.Gate] {
	return query.Kind[domain.Gate]{
		Name:  "gate",
		ID:    func(g domain.Gate) string { return g.ID },
		SetID: func(g *domain.Gate, id string) { g.ID = id },
		Search: []query.Field[domain.Gate]{
			func(g domain.Gate) string { return g.Code },
			func(g domain.Gate) string { return g.Name },
			func(g domain.Gate) string { return g.StationName },
		},
		Facets: map[string]query.Field[domain.Gate]{
			"status":  func(g domain.Gate) string { return string(g.Status) },
			"type":    func(g domain.Gate) string { return string(g.Type) },
			"station": func(g domain.Gate) string { return g.StationID },
		},
		Compare:  query.Ascending(func(g domain.Gate) string { return g.Code }),
		Key:      func(g domain.Gate) string { return g.Code },
		Validate: validate,
		Init: func(g *domain.Gate, now time.Time) {
			g.CreatedAt = now
			g.UpdatedAt = now
			g.PassCount = 0
		},
		Merge: merge,
	}
}

// NewController builds a gate controller over seed.
func NewController(seed []domain.Gate, opts ...query.Option) (*query.Controller[domain.Gate], error) {
	return query.New(Kind(), seed, opts...)
}

func validate(g domain.Gate) error {
	switch {
	case strings.TrimSpace(g.Code) == "":
		return domain.RequiredError("code")
	case strings.TrimSpace(g.Name) == "":
		return domain.RequiredError("name")
	case strings.TrimSpace(g.StationID) == "":
		return domain.RequiredError("station_id")
	case g.Type == "":
		return domain.RequiredError("type")
	case !g.Type.Valid():
		return domain.InvalidValueError("type", string(g.Type))
	case g.Status == "":
		return domain.RequiredError("status")
	case !g.Status.Valid():
		return domain.InvalidValueError("status", string(g.Status))
	}
	return nil
}

// merge keeps the device counters: PassCount and LastHeartbeat are reported
// by the gate, not edited.
func merge(dst *domain.Gate, draft domain.Gate, now time.Time) {
	dst.Code = draft.Code
	dst.Name = draft.Name
	dst.StationID = draft.StationID
	dst.StationName = draft.StationName
	dst.Type = draft.Type
	dst.Status = draft.Status
	dst.IPAddress = draft.IPAddress
	dst.UpdatedAt = now
}
