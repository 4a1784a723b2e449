package query

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type device struct {
	ID        string
	Code      string
	Name      string
	City      string
	Status    string
	Hits      int
	CreatedAt time.Time
	UpdatedAt time.Time
}

var epoch = time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

func deviceKind() Kind[device] {
	return Kind[device]{
		Name:  "device",
		ID:    func(d device) string { return d.ID },
		SetID: func(d *device, id string) { d.ID = id },
		Search: []Field[device]{
			func(d device) string { return d.Code },
			func(d device) string { return d.Name },
		},
		Facets: map[string]Field[device]{
			"city":   func(d device) string { return d.City },
			"status": func(d device) string { return d.Status },
		},
		Compare: Ascending(func(d device) string { return d.Code }),
		Key:     func(d device) string { return d.Code },
		Validate: func(d device) error {
			if strings.TrimSpace(d.Code) == "" {
				return errors.New("code is required")
			}
			return nil
		},
		Init: func(d *device, now time.Time) {
			d.CreatedAt = now
			d.UpdatedAt = now
			d.Hits = 0
		},
		Merge: func(dst *device, draft device, now time.Time) {
			dst.Code = draft.Code
			dst.Name = draft.Name
			dst.City = draft.City
			dst.Status = draft.Status
			dst.UpdatedAt = now
		},
		SetStatus: func(d *device, status string, now time.Time) error {
			switch status {
			case "online", "offline", "maintenance":
			default:
				return fmt.Errorf("unknown status %q", status)
			}
			d.Status = status
			d.UpdatedAt = now
			return nil
		},
	}
}

// devices returns n online devices G01..Gnn in Berlin, ids dev-01..dev-nn.
func devices(n int) []device {
	out := make([]device, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, device{
			ID:        fmt.Sprintf("dev-%02d", i),
			Code:      fmt.Sprintf("G%02d", i),
			Name:      fmt.Sprintf("Gate %d", i),
			City:      "Berlin",
			Status:    "online",
			CreatedAt: epoch.Add(time.Duration(i) * time.Minute),
		})
	}
	return out
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	}
}

func fixedClock() func() time.Time {
	return func() time.Time { return epoch.Add(24 * time.Hour) }
}

func codes(items []device) []string {
	out := make([]string, len(items))
	for i, d := range items {
		out[i] = d.Code
	}
	return out
}

// allSorted returns every entity of c in display order, ignoring filters.
func allSorted[E any](c *Controller[E]) []E {
	return Sorted(c.store.All(), c.kind.Compare)
}
