package gorm

import (
	"context"
	"sync"
	"time"

	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Store struct {
	getDatabase func(ctx context.Context) (*gorm.DB, error)
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		getDatabase: createGetDatabase(db),
	}
}

var _ port.Store = &Store{}

func createGetDatabase(db *gorm.DB) func(ctx context.Context) (*gorm.DB, error) {
	var (
		migrateOnce sync.Once
		migrateErr  error
	)

	return func(ctx context.Context) (*gorm.DB, error) {
		migrateOnce.Do(func() {
			models := []any{
				&CaseStudy{},
				&Lead{},
				&User{},
			}

			if err := db.AutoMigrate(models...); err != nil {
				migrateErr = errors.WithStack(err)
				return
			}
		})
		if migrateErr != nil {
			return nil, errors.WithStack(migrateErr)
		}

		return db.WithContext(ctx), nil
	}
}

const maxRetryAttempts = 5

// withRetry retries the operation on the given transient sqlite result codes,
// backing off between attempts. Any other failure surfaces immediately.
func (s *Store) withRetry(ctx context.Context, fn func(ctx context.Context, db *gorm.DB) error, codes ...sqlite3.ErrorCode) error {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	wait := 10 * time.Millisecond

	for attempt := 1; ; attempt++ {
		err := fn(ctx, db)
		if err == nil {
			return nil
		}

		if attempt >= maxRetryAttempts || !isRetryable(err, codes) {
			return errors.WithStack(err)
		}

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(wait):
		}

		wait *= 2
	}
}

func isRetryable(err error, codes []sqlite3.ErrorCode) bool {
	var sqliteErr *sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	for _, code := range codes {
		if sqliteErr.Code() == code {
			return true
		}
	}

	return false
}

func applyQueryOptions(db *gorm.DB, opts port.QueryOptions) *gorm.DB {
	query := db.Order("created_at DESC")

	if opts.Page != nil {
		limit := 10
		if opts.Limit != nil {
			limit = *opts.Limit
		}
		query = query.Offset(*opts.Page * limit)
	}

	if opts.Limit != nil {
		query = query.Limit(*opts.Limit)
	}

	return query
}
