// Package query implements the collection controller behind every admin list
// screen: an owned collection, a filter chain, a fixed sort rule, and a
// paginator, recomputed into a View after every change.
//
// A Controller is not safe for concurrent use. It is meant to be driven by a
// single caller, one operation at a time; adapters that serve concurrent
// clients must serialize access themselves.
package query

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/simp-lee/gateadmin/internal/domain"
)

// DefaultPageSize is the page size used when no option overrides it.
const DefaultPageSize = 10

// View is the derived, paginated result exposed to renderers.
type View[E any] struct {
	Items      []E `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
}

type options struct {
	pageSize int
	now      func() time.Time
	newID    func() string
	logger   *slog.Logger
}

// Option customizes a Controller.
type Option func(*options)

// WithPageSize sets the default page size. Non-positive values are ignored.
func WithPageSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.pageSize = n
		}
	}
}

// WithClock replaces time.Now for audit timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithIDGenerator replaces the uuid generator used for new entities.
func WithIDGenerator(gen func() string) Option {
	return func(o *options) {
		if gen != nil {
			o.newID = gen
		}
	}
}

// WithLogger sets the logger used for rejected mutations.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Controller owns one collection together with its filter and pagination
// state and keeps a View consistent with all three.
type Controller[E any] struct {
	kind  Kind[E]
	store *Store[E]
	chain Chain[E]

	filters         Filters
	page            int
	pageSize        int
	defaultPageSize int
	view            View[E]

	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// New creates a Controller for kind seeded with items. Filters start empty
// and the view starts on page 1.
func New[E any](kind Kind[E], seed []E, opts ...Option) (*Controller[E], error) {
	if err := kind.check(); err != nil {
		return nil, err
	}

	o := options{
		pageSize: DefaultPageSize,
		now:      time.Now,
		newID:    uuid.NewString,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	store, err := NewStore(kind.ID, seed)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeValidation, "invalid "+kind.Name+" seed", err)
	}

	c := &Controller[E]{
		kind:            kind,
		store:           store,
		chain:           NewChain(kind.Search, kind.Facets),
		filters:         Filters{Facets: map[string]string{}},
		page:            1,
		pageSize:        o.pageSize,
		defaultPageSize: o.pageSize,
		now:             o.now,
		newID:           o.newID,
		logger:          o.logger.With(slog.String("kind", kind.Name)),
	}
	c.refresh()
	return c, nil
}

// Kind returns the configuration the controller was built with.
func (c *Controller[E]) Kind() Kind[E] { return c.kind }

// View returns the current derived view.
func (c *Controller[E]) View() View[E] {
	v := c.view
	v.Items = slices.Clone(c.view.Items)
	return v
}

// Filters returns a copy of the current filter values.
func (c *Controller[E]) Filters() Filters { return c.filters.Clone() }

// Len returns the size of the underlying collection, ignoring filters.
func (c *Controller[E]) Len() int { return c.store.Len() }

// SetSearchTerm replaces the free-text term and returns to page 1.
func (c *Controller[E]) SetSearchTerm(term string) View[E] {
	c.filters.Search = strings.TrimSpace(term)
	c.page = 1
	c.refresh()
	return c.View()
}

// SetFacet sets or clears (empty value) one facet and returns to page 1.
// Unknown facet names leave the state untouched.
func (c *Controller[E]) SetFacet(name, value string) View[E] {
	if !c.chain.HasFacet(name) {
		c.logger.Debug("unknown facet ignored", slog.String("facet", name))
		return c.View()
	}
	value = strings.TrimSpace(value)
	if value == "" {
		delete(c.filters.Facets, name)
	} else {
		c.filters.Facets[name] = value
	}
	c.page = 1
	c.refresh()
	return c.View()
}

// SetPage moves to page n, clamped to the available pages.
func (c *Controller[E]) SetPage(n int) View[E] {
	n = min(max(n, 1), c.view.TotalPages)
	if n == c.page {
		return c.View()
	}
	c.page = n
	c.refresh()
	return c.View()
}

// SetPageSize changes the page size and returns to page 1. A non-positive
// size is rejected and the previous size kept.
func (c *Controller[E]) SetPageSize(n int) (View[E], error) {
	if n <= 0 {
		return c.View(), domain.NewAppError(domain.CodeInvalidPagination,
			fmt.Sprintf("page size must be positive, got %d", n), nil)
	}
	c.pageSize = n
	c.page = 1
	c.refresh()
	return c.View(), nil
}

// ResetFilters clears every filter, restores the default page size, and
// returns to page 1.
func (c *Controller[E]) ResetFilters() View[E] {
	c.filters = Filters{Facets: map[string]string{}}
	c.pageSize = c.defaultPageSize
	c.page = 1
	c.refresh()
	return c.View()
}

// GetByID returns the entity with the given id.
func (c *Controller[E]) GetByID(id string) (E, error) {
	e, ok := c.store.Get(id)
	if !ok {
		return e, c.notFound(id)
	}
	return e, nil
}

// Save creates draft, or when isEdit is set replaces the mutable fields of the
// entity with draft's id. Rejected saves leave the collection unchanged.
func (c *Controller[E]) Save(draft E, isEdit bool) (E, error) {
	var zero E

	if c.kind.Validate != nil {
		if err := c.kind.Validate(draft); err != nil {
			if !domain.IsValidation(err) {
				err = domain.NewAppError(domain.CodeValidation, err.Error(), err)
			}
			return zero, err
		}
	}

	if isEdit {
		id := c.kind.ID(draft)
		current, ok := c.store.Get(id)
		if !ok {
			c.logger.Warn("edit skipped: entity not found", slog.String("id", id))
			return zero, c.notFound(id)
		}
		if err := c.checkKey(draft, id); err != nil {
			return zero, err
		}
		c.kind.Merge(&current, draft, c.now())
		c.store.Replace(current)
		c.refresh()
		return current, nil
	}

	if err := c.checkKey(draft, ""); err != nil {
		return zero, err
	}

	id, err := c.freshID()
	if err != nil {
		return zero, err
	}
	created := draft
	c.kind.SetID(&created, id)
	c.kind.Init(&created, c.now())
	if err := c.store.Insert(created); err != nil {
		return zero, domain.NewAppError(domain.CodeInternal, "insert "+c.kind.Name, err)
	}
	c.refresh()
	return created, nil
}

// DeleteByID removes the entity with the given id. Deleting an absent id is
// not an error; removed reports whether anything changed.
func (c *Controller[E]) DeleteByID(id string) (view View[E], removed bool) {
	if c.store.Remove(id) {
		removed = true
		c.refresh()
	}
	return c.View(), removed
}

// ChangeStatus sets the status of the entity with the given id.
func (c *Controller[E]) ChangeStatus(id, status string) (E, error) {
	var zero E
	if c.kind.SetStatus == nil {
		return zero, domain.NewAppError(domain.CodeValidation,
			c.kind.Name+" does not support status changes", nil)
	}
	current, ok := c.store.Get(id)
	if !ok {
		c.logger.Warn("status change skipped: entity not found", slog.String("id", id))
		return zero, c.notFound(id)
	}
	if err := c.kind.SetStatus(&current, strings.TrimSpace(status), c.now()); err != nil {
		if !domain.IsValidation(err) {
			err = domain.NewAppError(domain.CodeValidation, err.Error(), err)
		}
		return zero, err
	}
	c.store.Replace(current)
	c.refresh()
	return current, nil
}

// checkKey rejects draft when its business key is already held by an entity
// other than self.
func (c *Controller[E]) checkKey(draft E, self string) error {
	if c.kind.Key == nil {
		return nil
	}
	key := strings.TrimSpace(c.kind.Key(draft))
	if key == "" {
		return nil
	}
	holder, found := c.store.Find(func(e E) bool {
		return strings.TrimSpace(c.kind.Key(e)) == key
	})
	if !found || c.kind.ID(holder) == self {
		return nil
	}
	c.logger.Warn("save skipped: duplicate key", slog.String("key", key))
	return domain.NewAppError(domain.CodeAlreadyExists,
		fmt.Sprintf("%s %q already exists", c.kind.Name, key), domain.ErrDuplicateKey)
}

const maxIDAttempts = 8

func (c *Controller[E]) freshID() (string, error) {
	for range maxIDAttempts {
		id := c.newID()
		if id != "" && !c.store.Has(id) {
			return id, nil
		}
	}
	return "", domain.NewAppError(domain.CodeInternal, "could not allocate a unique "+c.kind.Name+" id", nil)
}

func (c *Controller[E]) notFound(id string) error {
	return domain.NewAppError(domain.CodeNotFound,
		fmt.Sprintf("%s %q not found", c.kind.Name, id), domain.ErrNotFound)
}

// refresh recomputes the view from the collection, filters, and pagination
// state, and writes the clamped page back.
func (c *Controller[E]) refresh() {
	filtered := Sorted(c.chain.Apply(c.store.All(), c.filters), c.kind.Compare)
	p, err := Paginate(filtered, c.page, c.pageSize)
	if err != nil {
		c.logger.Error("paginate view", slog.String("error", err.Error()),
			slog.Int("page", c.page), slog.Int("page_size", c.pageSize))
	}

	c.page = p.Page
	c.view = View[E]{
		Items:      p.Items,
		Page:       p.Page,
		TotalPages: p.TotalPages,
		PageSize:   c.pageSize,
		Total:      len(filtered),
	}
}
