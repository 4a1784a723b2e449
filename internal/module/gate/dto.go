package gate

import (
	"strings"

	"github.com/simp-lee/gateadmin/internal/domain"
)

// Request is the body of gate create and update calls.
type Request struct {
	Code        string `json:"code" form:"code" binding:"required,max=32"`
	Name        string `json:"name" form:"name" binding:"required,max=100"`
	StationID   string `json:"station_id" form:"station_id" binding:"required,max=36"`
	StationName string `json:"station_name" form:"station_name" binding:"max=100"`
	Type        string `json:"type" form:"type" binding:"required,oneof=entry exit bidirectional"`
	Status      string `json:"status" form:"status" binding:"required,oneof=online offline maintenance"`
	IPAddress   string `json:"ip_address" form:"ip_address" binding:"omitempty,ip"`
}

// Entity converts the request into a gate draft carrying id.
func (r Request) Entity(id string) domain.Gate {
	return domain.Gate{
		BaseModel:   domain.BaseModel{ID: id},
		Code:        strings.TrimSpace(r.Code),
		Name:        strings.TrimSpace(r.Name),
		StationID:   strings.TrimSpace(r.StationID),
		StationName: strings.TrimSpace(r.StationName),
		Type:        domain.GateType(r.Type),
		Status:      domain.GateStatus(r.Status),
		IPAddress:   strings.TrimSpace(r.IPAddress),
	}
}
