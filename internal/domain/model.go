package domain

import "time"

// BaseModel is embedded by every managed entity.
// ID is generated on create and never changes afterwards.
type BaseModel struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ViewQuery holds the view-state inputs carried by a list request.
// Nil pointers and absent map keys mean "leave the current value alone".
type ViewQuery struct {
	Search   *string
	Facets   map[string]string
	Page     int
	PageSize int
}
