package domain

// StationStatus is the operating state of a station.
type StationStatus string

const (
	StationActive      StationStatus = "active"
	StationInactive    StationStatus = "inactive"
	StationMaintenance StationStatus = "maintenance"
)

// Valid reports whether s is a known station status.
func (s StationStatus) Valid() bool {
	switch s {
	case StationActive, StationInactive, StationMaintenance:
		return true
	}
	return false
}

// Station is a site on a transit line that hosts fare gates.
type Station struct {
	BaseModel
	Code    string        `gorm:"size:32;uniqueIndex;not null" json:"code"`
	Name    string        `gorm:"size:100;not null" json:"name"`
	City    string        `gorm:"size:64;index;not null" json:"city"`
	Line    string        `gorm:"size:64;index;not null" json:"line"`
	Address string        `gorm:"size:255" json:"address"`
	Status  StationStatus `gorm:"size:16;index;not null" json:"status"`
}
