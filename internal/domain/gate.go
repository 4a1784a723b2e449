package domain

import "time"

// GateStatus is the reported connectivity state of a gate device.
type GateStatus string

const (
	GateOnline      GateStatus = "online"
	GateOffline     GateStatus = "offline"
	GateMaintenance GateStatus = "maintenance"
)

// Valid reports whether s is a known gate status.
func (s GateStatus) Valid() bool {
	switch s {
	case GateOnline, GateOffline, GateMaintenance:
		return true
	}
	return false
}

// GateType is the passage direction a gate handles.
type GateType string

const (
	GateEntry         GateType = "entry"
	GateExit          GateType = "exit"
	GateBidirectional GateType = "bidirectional"
)

// Valid reports whether t is a known gate type.
func (t GateType) Valid() bool {
	switch t {
	case GateEntry, GateExit, GateBidirectional:
		return true
	}
	return false
}

// Gate is a fare gate device installed at a station.
type Gate struct {
	BaseModel
	Code          string     `gorm:"size:32;uniqueIndex;not null" json:"code"`
	Name          string     `gorm:"size:100;not null" json:"name"`
	StationID     string     `gorm:"size:36;index;not null" json:"station_id"`
	StationName   string     `gorm:"size:100" json:"station_name"`
	Type          GateType   `gorm:"size:16;not null" json:"type"`
	Status        GateStatus `gorm:"size:16;index;not null" json:"status"`
	IPAddress     string     `gorm:"size:45" json:"ip_address"`
	PassCount     int64      `json:"pass_count"`
	LastHeartbeat time.Time  `json:"last_heartbeat"`
}
