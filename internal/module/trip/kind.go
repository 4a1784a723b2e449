// Package trip serves the passenger trip record list screen.
package trip

import (
	"strings"
	"time"

	"github.com/simp-lee/gateadmin/internal/domain"
	"github.com/simp-lee/gateadmin/internal/query"
)

// Kind returns the collection configuration for trip records. Most recently
// finished trips come first; trips still in progress are listed last.
func Kind() query.Kind[domain.TripRecord] {
	return query.Kind[domain.TripRecord]{
		Name:  "trip",
		ID:    func(t domain.TripRecord) string { return t.ID },
		SetID: func(t *domain.TripRecord, id string) { t.ID = id },
		Search: []query.Field[domain.TripRecord]{
			func(t domain.TripRecord) string { return t.TripNo },
			func(t domain.TripRecord) string { return t.CardNo },
			func(t domain.TripRecord) string { return t.PassengerName },
			func(t domain.TripRecord) string { return t.EntryStation },
			func(t domain.TripRecord) string { return t.ExitStation },
		},
		Facets: map[string]query.Field[domain.TripRecord]{
			"status":         func(t domain.TripRecord) string { return string(t.Status) },
			"payment_method": func(t domain.TripRecord) string { return string(t.PaymentMethod) },
			"entry_station":  func(t domain.TripRecord) string { return t.EntryStation },
		},
		Compare:  query.Newest(func(t domain.TripRecord) time.Time { return t.ExitTime }),
		Validate: validate,
		Init:     initTrip,
		Merge:    merge,
	}
}

// NewController builds a trip controller over seed.
func NewController(seed []domain.TripRecord, opts ...query.Option) (*query.Controller[domain.TripRecord], error) {
	return query.New(Kind(), seed, opts...)
}

func validate(t domain.TripRecord) error {
	switch {
	case strings.TrimSpace(t.CardNo) == "":
		return domain.RequiredError("card_no")
	case strings.TrimSpace(t.EntryStation) == "":
		return domain.RequiredError("entry_station")
	case t.EntryTime.IsZero():
		return domain.RequiredError("entry_time")
	case !t.ExitTime.IsZero() && t.ExitTime.Before(t.EntryTime):
		return domain.NewAppError(domain.CodeValidation, "exit_time must not be before entry_time", nil)
	case t.Fare < 0:
		return domain.NewAppError(domain.CodeValidation, "fare must not be negative", nil)
	case t.Status != "" && !t.Status.Valid():
		return domain.InvalidValueError("status", string(t.Status))
	case t.PaymentMethod != "" && !t.PaymentMethod.Valid():
		return domain.InvalidValueError("payment_method", string(t.PaymentMethod))
	}
	return nil
}

// TripNo formats the display number of a trip: entry date plus the first
// eight characters of its id.
func TripNo(entry time.Time, id string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return "T" + entry.Format("20060102") + suffix
}

func initTrip(t *domain.TripRecord, now time.Time) {
	t.CreatedAt = now
	t.UpdatedAt = now
	if strings.TrimSpace(t.TripNo) == "" {
		t.TripNo = TripNo(t.EntryTime, t.ID)
	}
	if t.Status == "" {
		t.Status = statusFor(*t)
	}
}

func merge(dst *domain.TripRecord, draft domain.TripRecord, now time.Time) {
	if strings.TrimSpace(draft.TripNo) != "" {
		dst.TripNo = draft.TripNo
	}
	dst.CardNo = draft.CardNo
	dst.PassengerName = draft.PassengerName
	dst.EntryStation = draft.EntryStation
	dst.EntryGate = draft.EntryGate
	dst.EntryTime = draft.EntryTime
	dst.ExitStation = draft.ExitStation
	dst.ExitGate = draft.ExitGate
	dst.ExitTime = draft.ExitTime
	dst.Fare = draft.Fare
	dst.PaymentMethod = draft.PaymentMethod
	if draft.Status != "" {
		dst.Status = draft.Status
	} else {
		dst.Status = statusFor(*dst)
	}
	dst.UpdatedAt = now
}

func statusFor(t domain.TripRecord) domain.TripStatus {
	if t.ExitTime.IsZero() {
		return domain.TripInProgress
	}
	return domain.TripCompleted
}
