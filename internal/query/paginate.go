package query

import (
	"context"

	"github.com/simp-lee/pagination"
)

// Page is one window of a sorted, filtered result.
type Page[E any] struct {
	Items      []E
	Page       int
	TotalPages int
}

// Paginate slices page out of items. A page past the end is clamped to the
// last page and a page below 1 to the first, so the window is only empty when
// items is. A non-positive size puts everything on one page.
func Paginate[E any](items []E, page, size int) (Page[E], error) {
	if size <= 0 {
		size = max(len(items), 1)
	}

	p, err := pagination.NewPaginator(
		pagination.WithItemsPerPage[E](size),
		pagination.WithKnownTotal[E](int64(len(items))),
		pagination.WithSliceCallback(func(_ context.Context, offset, limit int) ([]E, error) {
			end := min(offset+limit, len(items))
			return items[offset:end:end], nil
		}),
	).Paginate(context.Background(), max(page, 1))
	if err != nil {
		return Page[E]{Items: []E{}, Page: 1, TotalPages: 1}, err
	}
	return Page[E]{
		Items:      p.Items,
		Page:       p.CurrentPage,
		TotalPages: p.TotalPages,
	}, nil
}
