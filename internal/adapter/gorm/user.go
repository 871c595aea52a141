package gorm

import (
	"time"

	"github.com/advertisingnotdead/agency/internal/core/model"
)

type User struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time

	Email        string `gorm:"unique"`
	Role         string
	PasswordHash string
}

// TableName keeps the external table contract.
func (User) TableName() string {
	return "users"
}

type wrappedUser struct {
	u *User
}

// ID implements model.User.
func (w *wrappedUser) ID() model.UserID {
	return model.UserID(w.u.ID)
}

// Email implements model.User.
func (w *wrappedUser) Email() string {
	return w.u.Email
}

// Role implements model.User.
func (w *wrappedUser) Role() model.UserRole {
	return model.UserRole(w.u.Role)
}

// PasswordHash implements model.User.
func (w *wrappedUser) PasswordHash() string {
	return w.u.PasswordHash
}

// CreatedAt implements model.User.
func (w *wrappedUser) CreatedAt() time.Time {
	return w.u.CreatedAt
}

var _ model.User = &wrappedUser{}
