package domain

import "time"

// GateUserStatus is the account state of a gate user.
type GateUserStatus string

const (
	GateUserActive   GateUserStatus = "active"
	GateUserDisabled GateUserStatus = "disabled"
	GateUserLocked   GateUserStatus = "locked"
)

// Valid reports whether s is a known gate user status.
func (s GateUserStatus) Valid() bool {
	switch s {
	case GateUserActive, GateUserDisabled, GateUserLocked:
		return true
	}
	return false
}

// GateUserRole is the operational role of a gate user.
type GateUserRole string

const (
	RoleAdmin      GateUserRole = "admin"
	RoleOperator   GateUserRole = "operator"
	RoleMaintainer GateUserRole = "maintainer"
)

// Valid reports whether r is a known role.
func (r GateUserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleOperator, RoleMaintainer:
		return true
	}
	return false
}

// GateUser is a staff account allowed to operate gates.
type GateUser struct {
	BaseModel
	Username    string         `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Phone       string         `gorm:"size:32" json:"phone"`
	CardNo      string         `gorm:"size:32" json:"card_no"`
	Role        GateUserRole   `gorm:"size:16;index;not null" json:"role"`
	Status      GateUserStatus `gorm:"size:16;index;not null" json:"status"`
	LoginCount  int64          `json:"login_count"`
	LastLoginAt time.Time      `json:"last_login_at"`
}
