package setup

import (
	"context"

	"github.com/advertisingnotdead/agency/internal/config"
	"github.com/advertisingnotdead/agency/internal/core/model"
	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// BootstrapAdmin provisions an admin account. It is an explicit operator
// action and is never run implicitly at server startup. Returns
// port.ErrAlreadyExists when the email is already taken.
func BootstrapAdmin(ctx context.Context, conf *config.Config, email string, password string) (model.User, error) {
	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "could not hash password")
	}

	user, err := store.CreateUser(ctx, port.UserFields{
		Email:        email,
		Role:         model.UserRoleAdmin,
		PasswordHash: string(passwordHash),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}
