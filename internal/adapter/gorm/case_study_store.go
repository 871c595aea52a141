package gorm

import (
	"context"

	"github.com/advertisingnotdead/agency/internal/core/model"
	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CountCaseStudies implements port.CaseStudyStore.
func (s *Store) CountCaseStudies(ctx context.Context) (int64, error) {
	var total int64

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Model(&CaseStudy{}).Count(&total).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return total, nil
}

// QueryCaseStudies implements port.CaseStudyStore.
func (s *Store) QueryCaseStudies(ctx context.Context, opts port.QueryOptions) ([]model.CaseStudy, error) {
	var caseStudies []*CaseStudy

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		query := applyQueryOptions(db.Model(&CaseStudy{}), opts)

		if err := query.Find(&caseStudies).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrapped := make([]model.CaseStudy, 0, len(caseStudies))
	for _, c := range caseStudies {
		wrapped = append(wrapped, &wrappedCaseStudy{c})
	}

	return wrapped, nil
}

// CreateCaseStudy implements port.CaseStudyStore. The identifier and
// timestamps are assigned here, never by the caller.
func (s *Store) CreateCaseStudy(ctx context.Context, fields port.CaseStudyFields) (model.CaseStudy, error) {
	caseStudy := &CaseStudy{
		ID:          string(model.NewCaseStudyID()),
		Title:       fields.Title,
		Description: fields.Description,
		Category:    fields.Category,
		ImageURL:    fields.ImageURL,
	}

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Create(caseStudy).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedCaseStudy{caseStudy}, nil
}
