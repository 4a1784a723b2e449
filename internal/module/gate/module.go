package gate

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/gateadmin/internal/domain"
	"github.com/simp-lee/gateadmin/internal/module/resource"
)

// Handler is the gate REST handler.
type Handler = resource.Handler[domain.Gate, Request]

// Module implements the app.Module interface for gates.
type Module struct {
	handler *Handler
}

// NewModule creates a Module. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("gate.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes mounts /gates on api.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.handler.Register(api.Group("/gates"))
}
