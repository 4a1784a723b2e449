package trip

import (
	"strings"
	"time"

	"github.com/simp-lee/gateadmin/internal/domain"
)

// Request is the body of trip create and update calls. Times are RFC 3339.
type Request struct {
	TripNo        string    `json:"trip_no" form:"trip_no" binding:"max=32"`
	CardNo        string    `json:"card_no" form:"card_no" binding:"required,max=32"`
	PassengerName string    `json:"passenger_name" form:"passenger_name" binding:"max=100"`
	EntryStation  string    `json:"entry_station" form:"entry_station" binding:"required,max=100"`
	EntryGate     string    `json:"entry_gate" form:"entry_gate" binding:"max=32"`
	EntryTime     time.Time `json:"entry_time" form:"entry_time" binding:"required"`
	ExitStation   string    `json:"exit_station" form:"exit_station" binding:"max=100"`
	ExitGate      string    `json:"exit_gate" form:"exit_gate" binding:"max=32"`
	ExitTime      time.Time `json:"exit_time" form:"exit_time"`
	Fare          int64     `json:"fare" form:"fare" binding:"min=0"`
	Status        string    `json:"status" form:"status" binding:"omitempty,oneof=completed in_progress abnormal"`
	PaymentMethod string    `json:"payment_method" form:"payment_method" binding:"omitempty,oneof=card qr cash"`
}

// Entity converts the request into a trip draft carrying id.
func (r Request) Entity(id string) domain.TripRecord {
	return domain.TripRecord{
		BaseModel:     domain.BaseModel{ID: id},
		TripNo:        strings.TrimSpace(r.TripNo),
		CardNo:        strings.TrimSpace(r.CardNo),
		PassengerName: strings.TrimSpace(r.PassengerName),
		EntryStation:  strings.TrimSpace(r.EntryStation),
		EntryGate:     strings.TrimSpace(r.EntryGate),
		EntryTime:     r.EntryTime,
		ExitStation:   strings.TrimSpace(r.ExitStation),
		ExitGate:      strings.TrimSpace(r.ExitGate),
		ExitTime:      r.ExitTime,
		Fare:          r.Fare,
		Status:        domain.TripStatus(r.Status),
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
	}
}
