package pkg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/gateadmin/internal/domain"
)

const (
	// DefaultMaxPageSize caps page_size when the caller passes no limit.
	DefaultMaxPageSize = 100

	searchParam   = "search"
	pageParam     = "page"
	pageSizeParam = "page_size"
)

// ParseViewQuery extracts view-state changes from the request query string.
//
// Only parameters that are present are reported: a present "search" (even
// empty) replaces the term, each present facet name in facets sets or clears
// that facet, and "page"/"page_size" are reported when they parse as
// integers. Any other parameter is ignored. A non-positive page_size is an
// InvalidPagination error; a page_size above maxPageSize is clamped.
func ParseViewQuery(c *gin.Context, facets []string, maxPageSize int) (domain.ViewQuery, error) {
	if maxPageSize <= 0 {
		maxPageSize = DefaultMaxPageSize
	}

	var q domain.ViewQuery
	query := c.Request.URL.Query()

	if query.Has(searchParam) {
		term := strings.TrimSpace(query.Get(searchParam))
		q.Search = &term
	}

	for _, name := range facets {
		if !query.Has(name) {
			continue
		}
		if q.Facets == nil {
			q.Facets = make(map[string]string, len(facets))
		}
		q.Facets[name] = strings.TrimSpace(query.Get(name))
	}

	if raw := strings.TrimSpace(query.Get(pageSizeParam)); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return q, domain.NewAppError(domain.CodeInvalidPagination,
				fmt.Sprintf("page_size %q is not a number", raw), err)
		}
		if size <= 0 {
			return q, domain.NewAppError(domain.CodeInvalidPagination,
				fmt.Sprintf("page_size must be positive, got %d", size), nil)
		}
		q.PageSize = min(size, maxPageSize)
	}

	if raw := strings.TrimSpace(query.Get(pageParam)); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			q.Page = max(page, 1)
		}
	}

	return q, nil
}

// ParamID returns the trimmed ":id" path parameter or a validation error when empty.
func ParamID(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", domain.NewAppError(domain.CodeValidation, "id is required", nil)
	}
	return id, nil
}
