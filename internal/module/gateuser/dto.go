package gateuser

import (
	"strings"

	"github.com/simp-lee/gateadmin/internal/domain"
)

// Request is the body of gate user create and update calls.
type Request struct {
	Username string `json:"username" form:"username" binding:"required,min=3,max=64"`
	Name     string `json:"name" form:"name" binding:"required,max=100"`
	Phone    string `json:"phone" form:"phone" binding:"omitempty,max=32"`
	CardNo   string `json:"card_no" form:"card_no" binding:"omitempty,alphanum,max=32"`
	Role     string `json:"role" form:"role" binding:"required,oneof=admin operator maintainer"`
	Status   string `json:"status" form:"status" binding:"omitempty,oneof=active disabled locked"`
}

// Entity converts the request into a gate user draft carrying id.
func (r Request) Entity(id string) domain.GateUser {
	return domain.GateUser{
		BaseModel: domain.BaseModel{ID: id},
		Username:  strings.TrimSpace(r.Username),
		Name:      strings.TrimSpace(r.Name),
		Phone:     strings.TrimSpace(r.Phone),
		CardNo:    strings.TrimSpace(r.CardNo),
		Role:      domain.GateUserRole(r.Role),
		Status:    domain.GateUserStatus(r.Status),
	}
}
