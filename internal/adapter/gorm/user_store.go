package gorm

import (
	"context"

	"github.com/advertisingnotdead/agency/internal/core/model"
	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CountUsers implements port.UserStore.
func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	var total int64

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Model(&User{}).Count(&total).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return total, nil
}

// QueryUsers implements port.UserStore.
func (s *Store) QueryUsers(ctx context.Context, opts port.QueryOptions) ([]model.User, error) {
	var users []*User

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		query := applyQueryOptions(db.Model(&User{}), opts)

		if err := query.Find(&users).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrapped := make([]model.User, 0, len(users))
	for _, u := range users {
		wrapped = append(wrapped, &wrappedUser{u})
	}

	return wrapped, nil
}

// CreateUser implements port.UserStore.
func (s *Store) CreateUser(ctx context.Context, fields port.UserFields) (model.User, error) {
	user := &User{
		ID:           string(model.NewUserID()),
		Email:        fields.Email,
		Role:         string(fields.Role),
		PasswordHash: fields.PasswordHash,
	}

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		var existing User

		err := db.First(&existing, "email = ?", fields.Email).Error
		if err == nil {
			return errors.WithStack(port.ErrAlreadyExists)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.WithStack(err)
		}

		if err := db.Create(user).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedUser{user}, nil
}

// GetUserByEmail implements port.UserStore.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var user User

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&user, "email = ?", email).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.BUSY, sqlite3.LOCKED)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedUser{&user}, nil
}
