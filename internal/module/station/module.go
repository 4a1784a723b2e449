package station

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/gateadmin/internal/domain"
	"github.com/simp-lee/gateadmin/internal/module/resource"
)

// Handler is the station REST handler.
type Handler = resource.Handler[domain.Station, Request]

// Module implements the app.Module interface for stations.
type Module struct {
	handler *Handler
}

// NewModule creates a Module. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("station.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes mounts /stations on api.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.handler.Register(api.Group("/stations"))
}
