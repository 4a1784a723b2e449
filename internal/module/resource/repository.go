package resource

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/simp-lee/gateadmin/internal/domain"
)

const seedBatchSize = 100

// Repository reads and bulk-inserts the table backing entity type E.
type Repository[E any] struct {
	db *gorm.DB
}

// NewRepository creates a Repository backed by db.
func NewRepository[E any](db *gorm.DB) *Repository[E] {
	return &Repository[E]{db: db}
}

// Migrate creates or updates the table for E.
func (r *Repository[E]) Migrate(ctx context.Context) error {
	var model E
	if err := r.db.WithContext(ctx).AutoMigrate(&model); err != nil {
		return mapError(err)
	}
	return nil
}

// LoadAll returns every row in insertion order.
func (r *Repository[E]) LoadAll(ctx context.Context) ([]E, error) {
	var items []E
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&items).Error; err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

// Count returns the number of rows.
func (r *Repository[E]) Count(ctx context.Context) (int64, error) {
	var model E
	var n int64
	if err := r.db.WithContext(ctx).Model(&model).Count(&n).Error; err != nil {
		return 0, mapError(err)
	}
	return n, nil
}

// WithDB returns a Repository bound to db, typically an open transaction.
func (r *Repository[E]) WithDB(db *gorm.DB) *Repository[E] {
	return &Repository[E]{db: db}
}

// Insert writes items in batches without opening a transaction. Callers
// that need atomicity bind the repository to a transaction with WithDB.
func (r *Repository[E]) Insert(ctx context.Context, items []E) error {
	if len(items) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(items, seedBatchSize).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "already exists", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}

// isDuplicateKeyError detects unique constraint violations by message, since
// the pure-Go SQLite driver does not translate them to gorm.ErrDuplicatedKey.
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
