// Package resource adapts a query.Controller to a JSON API and loads its
// seed collection from the database.
package resource

import (
	"log/slog"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/gateadmin/internal/domain"
	"github.com/simp-lee/gateadmin/internal/metrics"
	"github.com/simp-lee/gateadmin/internal/pkg"
	"github.com/simp-lee/gateadmin/internal/query"
)

// Draft is a bound request body that can be turned into an entity.
type Draft[E any] interface {
	Entity(id string) E
}

// Recorder receives mutation and collection-size observations.
type Recorder interface {
	Mutation(kind, op, outcome string)
	CollectionSize(kind string, n int)
}

type handlerOptions struct {
	maxPageSize int
	recorder    Recorder
	logger      *slog.Logger
}

// HandlerOption customizes a Handler.
type HandlerOption func(*handlerOptions)

// WithMaxPageSize caps the page_size accepted from clients.
func WithMaxPageSize(n int) HandlerOption {
	return func(o *handlerOptions) {
		if n > 0 {
			o.maxPageSize = n
		}
	}
}

// WithRecorder sets where mutation outcomes are reported.
func WithRecorder(r Recorder) HandlerOption {
	return func(o *handlerOptions) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithLogger sets the handler logger.
func WithLogger(l *slog.Logger) HandlerOption {
	return func(o *handlerOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

type noopRecorder struct{}

func (noopRecorder) Mutation(string, string, string) {}
func (noopRecorder) CollectionSize(string, int)      {}

// Handler serves one resource collection. All controller access goes through
// mu; the controller itself is single-caller.
type Handler[E any, D Draft[E]] struct {
	mu          sync.Mutex
	ctrl        *query.Controller[E]
	kind        string
	facets      []string
	maxPageSize int
	recorder    Recorder
	logger      *slog.Logger
}

// NewHandler wraps ctrl. Panics if ctrl is nil.
func NewHandler[E any, D Draft[E]](ctrl *query.Controller[E], opts ...HandlerOption) *Handler[E, D] {
	if ctrl == nil {
		panic("resource.NewHandler: controller must not be nil")
	}
	o := handlerOptions{
		maxPageSize: pkg.DefaultMaxPageSize,
		recorder:    noopRecorder{},
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	kind := ctrl.Kind()
	h := &Handler[E, D]{
		ctrl:        ctrl,
		kind:        kind.Name,
		facets:      kind.FacetNames(),
		maxPageSize: o.maxPageSize,
		recorder:    o.recorder,
		logger:      o.logger.With(slog.String("kind", kind.Name)),
	}
	h.recorder.CollectionSize(h.kind, ctrl.Len())
	return h
}

// Register mounts the collection routes on g.
func (h *Handler[E, D]) Register(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)

	view := g.Group("/view")
	view.GET("", h.CurrentView)
	view.PUT("/search", h.SetSearch)
	view.PUT("/facets/:name", h.SetFacet)
	view.PUT("/page", h.SetPage)
	view.PUT("/page_size", h.SetPageSize)
	view.POST("/reset", h.Reset)
}

// RegisterStatus mounts PATCH /:id/status for kinds with a mutable status.
func (h *Handler[E, D]) RegisterStatus(g *gin.RouterGroup) {
	g.PATCH("/:id/status", h.ChangeStatus)
}

// List handles GET /. Query parameters update the view state before it is
// returned; absent parameters leave it as it was.
func (h *Handler[E, D]) List(c *gin.Context) {
	q, err := pkg.ParseViewQuery(c, h.facets, h.maxPageSize)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if q.Search != nil {
		h.ctrl.SetSearchTerm(*q.Search)
	}
	for _, name := range h.facets {
		if v, ok := q.Facets[name]; ok {
			h.ctrl.SetFacet(name, v)
		}
	}
	if q.PageSize > 0 {
		if _, err := h.ctrl.SetPageSize(q.PageSize); err != nil {
			pkg.Error(c, err)
			return
		}
	}
	if q.Page > 0 {
		h.ctrl.SetPage(q.Page)
	}
	pkg.List(c, h.ctrl.View())
}

// CurrentView handles GET /view.
func (h *Handler[E, D]) CurrentView(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	filters := h.ctrl.Filters()
	pkg.Success(c, ViewState[E]{
		View:     h.ctrl.View(),
		Filters:  filters,
		Filtered: filters.Active(),
		Count:    h.ctrl.Len(),
	})
}

// Get handles GET /:id.
func (h *Handler[E, D]) Get(c *gin.Context) {
	id, err := pkg.ParamID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	h.mu.Lock()
	e, err := h.ctrl.GetByID(id)
	h.mu.Unlock()
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, e)
}

// Create handles POST /.
func (h *Handler[E, D]) Create(c *gin.Context) {
	var req D
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	h.mu.Lock()
	created, err := h.ctrl.Save(req.Entity(""), false)
	size := h.ctrl.Len()
	h.mu.Unlock()

	h.observe(c, "create", err, size)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Created(c, created)
}

// Update handles PUT /:id.
func (h *Handler[E, D]) Update(c *gin.Context) {
	id, err := pkg.ParamID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	var req D
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	h.mu.Lock()
	saved, err := h.ctrl.Save(req.Entity(id), true)
	size := h.ctrl.Len()
	h.mu.Unlock()

	h.observe(c, "update", err, size)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, saved)
}

// DeleteResult is returned by Delete.
type DeleteResult[E any] struct {
	Removed bool          `json:"removed"`
	View    query.View[E] `json:"view"`
}

// Delete handles DELETE /:id?confirm=true. Deleting an unknown id succeeds
// with removed=false.
func (h *Handler[E, D]) Delete(c *gin.Context) {
	id, err := pkg.ParamID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	if c.Query("confirm") != "true" {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation,
			"delete requires confirm=true", nil))
		return
	}

	h.mu.Lock()
	view, removed := h.ctrl.DeleteByID(id)
	size := h.ctrl.Len()
	h.mu.Unlock()

	outcome := metrics.OutcomeOK
	if !removed {
		outcome = metrics.OutcomeNoop
	}
	h.recorder.Mutation(h.kind, "delete", outcome)
	h.recorder.CollectionSize(h.kind, size)
	if removed {
		h.logger.InfoContext(c.Request.Context(), "entity deleted", slog.String("id", id))
	}

	pkg.Success(c, DeleteResult[E]{Removed: removed, View: view})
}

// StatusRequest is the body of PATCH /:id/status.
type StatusRequest struct {
	Status string `json:"status" form:"status" binding:"required"`
}

// ChangeStatus handles PATCH /:id/status.
func (h *Handler[E, D]) ChangeStatus(c *gin.Context) {
	id, err := pkg.ParamID(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	var req StatusRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	h.mu.Lock()
	updated, err := h.ctrl.ChangeStatus(id, req.Status)
	size := h.ctrl.Len()
	h.mu.Unlock()

	h.observe(c, "status", err, size)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, updated)
}

// SearchRequest is the body of PUT /view/search.
type SearchRequest struct {
	Search string `json:"search" form:"search"`
}

// SetSearch handles PUT /view/search.
func (h *Handler[E, D]) SetSearch(c *gin.Context) {
	var req SearchRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	pkg.Success(c, h.ctrl.SetSearchTerm(req.Search))
}

// FacetRequest is the body of PUT /view/facets/:name. An empty value clears
// the facet.
type FacetRequest struct {
	Value string `json:"value" form:"value"`
}

// SetFacet handles PUT /view/facets/:name.
func (h *Handler[E, D]) SetFacet(c *gin.Context) {
	var req FacetRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	pkg.Success(c, h.ctrl.SetFacet(c.Param("name"), req.Value))
}

// PageRequest is the body of PUT /view/page.
type PageRequest struct {
	Page int `json:"page" form:"page"`
}

// SetPage handles PUT /view/page. Out of range pages are clamped.
func (h *Handler[E, D]) SetPage(c *gin.Context) {
	var req PageRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	pkg.Success(c, h.ctrl.SetPage(req.Page))
}

// PageSizeRequest is the body of PUT /view/page_size.
type PageSizeRequest struct {
	PageSize int `json:"page_size" form:"page_size"`
}

// SetPageSize handles PUT /view/page_size. Sizes above the configured
// maximum are capped; non-positive sizes are rejected.
func (h *Handler[E, D]) SetPageSize(c *gin.Context) {
	var req PageSizeRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	view, err := h.ctrl.SetPageSize(min(req.PageSize, h.maxPageSize))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, view)
}

// Reset handles POST /view/reset.
func (h *Handler[E, D]) Reset(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	pkg.Success(c, h.ctrl.ResetFilters())
}

// ViewState is the body of GET /view. Count is the collection size before
// filtering.
type ViewState[E any] struct {
	View     query.View[E] `json:"view"`
	Filters  query.Filters `json:"filters"`
	Filtered bool          `json:"filtered"`
	Count    int           `json:"count"`
}

func (h *Handler[E, D]) observe(c *gin.Context, op string, err error, size int) {
	if err != nil {
		h.recorder.Mutation(h.kind, op, metrics.OutcomeRejected)
		h.logger.InfoContext(c.Request.Context(), "mutation rejected",
			slog.String("op", op), slog.String("error", err.Error()))
		return
	}
	h.recorder.Mutation(h.kind, op, metrics.OutcomeOK)
	h.recorder.CollectionSize(h.kind, size)
}
