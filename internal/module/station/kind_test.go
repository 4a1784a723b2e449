package station

import (
	"fmt"
	"testing"
	"time"

	"github.com/simp-lee/gateadmin/internal/domain"
	"github.com/simp-lee/gateadmin/internal/query"
)

var now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func sample(i int, city, line string) domain.Station {
	return domain.Station{
		BaseModel: domain.BaseModel{ID: fmt.Sprintf("st-%02d", i)},
		Code:      fmt.Sprintf("S%03d", i),
		Name:      fmt.Sprintf("Station %d", i),
		City:      city,
		Line:      line,
		Address:   fmt.Sprintf("%d Harbour Road", i),
		Status:    domain.StationActive,
	}
}

func TestValidate(t *testing.T) {
	ok := sample(1, "Lisbon", "L1")
	tests := []struct {
		name    string
		mutate  func(*domain.Station)
		wantErr string
	}{
		{"valid", func(*domain.Station) {}, ""},
		{"empty status allowed", func(s *domain.Station) { s.Status = "" }, ""},
		{"missing code", func(s *domain.Station) { s.Code = "  " }, "code is required"},
		{"missing name", func(s *domain.Station) { s.Name = "" }, "name is required"},
		{"missing city", func(s *domain.Station) { s.City = "" }, "city is required"},
		{"missing line", func(s *domain.Station) { s.Line = "" }, "line is required"},
		{"bad status", func(s *domain.Station) { s.Status = "closed" }, `invalid status "closed"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ok
			tt.mutate(&s)
			err := validate(s)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validate() = %v; want nil", err)
				}
				return
			}
			if !domain.IsValidation(err) || err.Error() != tt.wantErr {
				t.Errorf("validate() = %v; want %q", err, tt.wantErr)
			}
		})
	}
}

func TestInitAndMerge(t *testing.T) {
	s := domain.Station{Code: "S1"}
	initStation(&s, now)
	if s.Status != domain.StationActive || !s.CreatedAt.Equal(now) || !s.UpdatedAt.Equal(now) {
		t.Errorf("initStation = %+v", s)
	}

	later := now.Add(time.Hour)
	draft := domain.Station{Code: "S2", Name: "Renamed", City: "Porto", Line: "L2"}
	merge(&s, draft, later)
	if s.Code != "S2" || s.City != "Porto" || s.Status != domain.StationActive {
		t.Errorf("merge = %+v; want fields copied and status kept", s)
	}
	if !s.CreatedAt.Equal(now) || !s.UpdatedAt.Equal(later) {
		t.Errorf("merge timestamps = %v / %v", s.CreatedAt, s.UpdatedAt)
	}
}

func TestController_FacetsAndSort(t *testing.T) {
	seed := []domain.Station{
		sample(3, "Lisbon", "L1"),
		sample(1, "Porto", "L2"),
		sample(2, "Lisbon", "L2"),
	}
	seed[2].Status = domain.StationMaintenance

	ctrl, err := NewController(seed)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}

	v := ctrl.View()
	if got := []string{v.Items[0].Code, v.Items[1].Code, v.Items[2].Code}; got[0] != "S001" || got[2] != "S003" {
		t.Errorf("order = %v; want code ascending", got)
	}

	ctrl.SetFacet("city", "Lisbon")
	v = ctrl.SetFacet("line", "L2")
	if v.Total != 1 || v.Items[0].Code != "S002" {
		t.Errorf("city+line = %+v", v)
	}

	ctrl.ResetFilters()
	v = ctrl.SetSearchTerm("harbour")
	if v.Total != 3 {
		t.Errorf("address search total = %d; want 3", v.Total)
	}
}

func TestController_NoStatusChange(t *testing.T) {
	ctrl, err := query.New(Kind(), []domain.Station{sample(1, "Lisbon", "L1")})
	if err != nil {
		t.Fatalf("query.New: %v", err)
	}
	if _, err := ctrl.ChangeStatus("st-01", "inactive"); !domain.IsValidation(err) {
		t.Errorf("ChangeStatus = %v; want validation error", err)
	}
}
