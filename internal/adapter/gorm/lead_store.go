package gorm

import (
	"context"

	"github.com/advertisingnotdead/agency/internal/core/model"
	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CountLeads implements port.LeadStore.
func (s *Store) CountLeads(ctx context.Context) (int64, error) {
	var total int64

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Model(&Lead{}).Count(&total).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return total, nil
}

// QueryLeads implements port.LeadStore.
func (s *Store) QueryLeads(ctx context.Context, opts port.QueryOptions) ([]model.Lead, error) {
	var leads []*Lead

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		query := applyQueryOptions(db.Model(&Lead{}), opts)

		if err := query.Find(&leads).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrapped := make([]model.Lead, 0, len(leads))
	for _, l := range leads {
		wrapped = append(wrapped, &wrappedLead{l})
	}

	return wrapped, nil
}

// CreateLead implements port.LeadStore. New leads always start in the "new"
// status.
func (s *Store) CreateLead(ctx context.Context, fields port.LeadFields) (model.Lead, error) {
	lead := &Lead{
		ID:      string(model.NewLeadID()),
		Name:    fields.Name,
		Email:   fields.Email,
		Phone:   fields.Phone,
		Message: fields.Message,
		Status:  string(model.LeadStatusNew),
	}

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Create(lead).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedLead{lead}, nil
}

// UpdateLeadStatus implements port.LeadStore. The write is an unconditional
// overwrite: there is no optimistic-concurrency check and no prior-status
// precondition.
func (s *Store) UpdateLeadStatus(ctx context.Context, id model.LeadID, status model.LeadStatus) (model.Lead, error) {
	var lead Lead

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		result := db.Model(&Lead{}).Where("id = ?", string(id)).Update("status", string(status))
		if result.Error != nil {
			return errors.WithStack(result.Error)
		}

		if result.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		if err := db.First(&lead, "id = ?", string(id)).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedLead{&lead}, nil
}
