package station

import (
	"strings"

	"github.com/simp-lee/gateadmin/internal/domain"
)

// Request is the body of station create and update calls.
type Request struct {
	Code    string `json:"code" form:"code" binding:"required,max=32"`
	Name    string `json:"name" form:"name" binding:"required,max=100"`
	City    string `json:"city" form:"city" binding:"required,max=64"`
	Line    string `json:"line" form:"line" binding:"required,max=64"`
	Address string `json:"address" form:"address" binding:"max=255"`
	Status  string `json:"status" form:"status" binding:"omitempty,oneof=active inactive maintenance"`
}

// Entity converts the request into a station draft carrying id.
func (r Request) Entity(id string) domain.Station {
	return domain.Station{
		BaseModel: domain.BaseModel{ID: id},
		Code:      strings.TrimSpace(r.Code),
		Name:      strings.TrimSpace(r.Name),
		City:      strings.TrimSpace(r.City),
		Line:      strings.TrimSpace(r.Line),
		Address:   strings.TrimSpace(r.Address),
		Status:    domain.StationStatus(r.Status),
	}
}
