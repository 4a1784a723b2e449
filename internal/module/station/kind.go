// Package station serves the station list screen.
package station

import (
	"strings"
	"time"

	"github.com/simp-lee/gateadmin/internal/domain"
	"github.com/simp-lee/gateadmin/internal/query"
)

// Kind returns the collection configuration for stations.
func Kind() query.Kind[domain.Station] {
	return query.Kind[domain.Station]{
		Name:  "station",
		ID:    func(s domain.Station) string { return s.ID },
		SetID: func(s *domain.Station, id string) { s.ID = id },
		Search: []query.Field[domain.Station]{
			func(s domain.Station) string { return s.Code },
			func(s domain.Station) string { return s.Name },
			func(s domain.Station) string { return s.Address },
		},
		Facets: map[string]query.Field[domain.Station]{
			"city":   func(s domain.Station) string { return s.City },
			"line":   func(s domain.Station) string { return s.Line },
			"status": func(s domain.Station) string { return string(s.Status) },
		},
		Compare:  query.Ascending(func(s domain.Station) string { return s.Code }),
		Key:      func(s domain.Station) string { return s.Code },
		Validate: validate,
		Init:     initStation,
		Merge:    merge,
	}
}

// NewController builds a station controller over seed.
func NewController(seed []domain.Station, opts ...query.Option) (*query.Controller[domain.Station], error) {
	return query.New(Kind(), seed, opts...)
}

func validate(s domain.Station) error {
	switch {
	case strings.TrimSpace(s.Code) == "":
		return domain.RequiredError("code")
	case strings.TrimSpace(s.Name) == "":
		return domain.RequiredError("name")
	case strings.TrimSpace(s.City) == "":
		return domain.RequiredError("city")
	case strings.TrimSpace(s.Line) == "":
		return domain.RequiredError("line")
	case s.Status != "" && !s.Status.Valid():
		return domain.InvalidValueError("status", string(s.Status))
	}
	return nil
}

func initStation(s *domain.Station, now time.Time) {
	s.CreatedAt = now
	s.UpdatedAt = now
	if s.Status == "" {
		s.Status = domain.StationActive
	}
}

func merge(dst *domain.Station, draft domain.Station, now time.Time) {
	dst.Code = draft.Code
	dst.Name = draft.Name
	dst.City = draft.City
	dst.Line = draft.Line
	dst.Address = draft.Address
	if draft.Status != "" {
		dst.Status = draft.Status
	}
	dst.UpdatedAt = now
}
