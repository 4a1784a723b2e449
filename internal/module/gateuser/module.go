package gateuser

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/gateadmin/internal/domain"
	"github.com/simp-lee/gateadmin/internal/module/resource"
)

// Handler is the gate user REST handler.
type Handler = resource.Handler[domain.GateUser, Request]

// Module implements the app.Module interface for gate users.
type Module struct {
	handler *Handler
}

// NewModule creates a Module. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("gateuser.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes mounts /gate-users on api, including the status endpoint.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	g := api.Group("/gate-users")
	m.handler.Register(g)
	m.handler.RegisterStatus(g)
}
