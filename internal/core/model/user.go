package model

import (
	"time"

	"github.com/rs/xid"
)

type UserID string

func NewUserID() UserID {
	return UserID(xid.New().String())
}

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleEditor UserRole = "editor"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleEditor:
		return true
	}

	return false
}

type User interface {
	WithID[UserID]

	Email() string
	Role() UserRole
	PasswordHash() string
	CreatedAt() time.Time
}

type ReadOnlyUser struct {
	id           UserID
	email        string
	role         UserRole
	passwordHash string
	createdAt    time.Time
}

// ID implements User.
func (u *ReadOnlyUser) ID() UserID {
	return u.id
}

// Email implements User.
func (u *ReadOnlyUser) Email() string {
	return u.email
}

// Role implements User.
func (u *ReadOnlyUser) Role() UserRole {
	return u.role
}

// PasswordHash implements User.
func (u *ReadOnlyUser) PasswordHash() string {
	return u.passwordHash
}

// CreatedAt implements User.
func (u *ReadOnlyUser) CreatedAt() time.Time {
	return u.createdAt
}

var _ User = &ReadOnlyUser{}

func NewReadOnlyUser(id UserID, email string, role UserRole, passwordHash string, createdAt time.Time) *ReadOnlyUser {
	return &ReadOnlyUser{
		id:           id,
		email:        email,
		role:         role,
		passwordHash: passwordHash,
		createdAt:    createdAt,
	}
}
