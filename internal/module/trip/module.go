package trip

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/gateadmin/internal/domain"
	"github.com/simp-lee/gateadmin/internal/module/resource"
)

// Handler is the trip REST handler.
type Handler = resource.Handler[domain.TripRecord, Request]

// Module implements the app.Module interface for trip records.
type Module struct {
	handler *Handler
}

// NewModule creates a Module. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("trip.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes mounts /trips on api.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	m.handler.Register(api.Group("/trips"))
}
