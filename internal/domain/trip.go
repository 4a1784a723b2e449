package domain

import "time"

// TripStatus is the settlement state of a trip.
type TripStatus string

const (
	TripCompleted  TripStatus = "completed"
	TripInProgress TripStatus = "in_progress"
	TripAbnormal   TripStatus = "abnormal"
)

// Valid reports whether s is a known trip status.
func (s TripStatus) Valid() bool {
	switch s {
	case TripCompleted, TripInProgress, TripAbnormal:
		return true
	}
	return false
}

// PaymentMethod is how a trip fare was paid.
type PaymentMethod string

const (
	PayCard PaymentMethod = "card"
	PayQR   PaymentMethod = "qr"
	PayCash PaymentMethod = "cash"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PayCard, PayQR, PayCash:
		return true
	}
	return false
}

// TripRecord is one passenger journey from entry gate to exit gate.
// ExitTime is zero while the trip is in progress.
type TripRecord struct {
	BaseModel
	TripNo        string        `gorm:"size:32;index" json:"trip_no"`
	CardNo        string        `gorm:"size:32;index;not null" json:"card_no"`
	PassengerName string        `gorm:"size:100" json:"passenger_name"`
	EntryStation  string        `gorm:"size:100;index;not null" json:"entry_station"`
	EntryGate     string        `gorm:"size:32" json:"entry_gate"`
	EntryTime     time.Time     `gorm:"not null" json:"entry_time"`
	ExitStation   string        `gorm:"size:100" json:"exit_station"`
	ExitGate      string        `gorm:"size:32" json:"exit_gate"`
	ExitTime      time.Time     `json:"exit_time"`
	Fare          int64         `json:"fare"`
	Status        TripStatus    `gorm:"size:16;index;not null" json:"status"`
	PaymentMethod PaymentMethod `gorm:"size:16;index" json:"payment_method"`
}
