package authn

import (
	"context"

	"github.com/advertisingnotdead/agency/internal/core/model"
)

type contextKey string

const keyUser contextKey = "user"

type User struct {
	ID    model.UserID
	Email string
	Role  model.UserRole
}

func ContextUser(ctx context.Context) *User {
	user, ok := ctx.Value(keyUser).(*User)
	if !ok {
		return nil
	}

	return user
}

func setContextUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, keyUser, user)
}
