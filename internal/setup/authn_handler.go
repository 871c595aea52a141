package setup

import (
	"context"

	"github.com/advertisingnotdead/agency/internal/config"
	"github.com/advertisingnotdead/agency/internal/http/middleware/authn/password"
	"github.com/pkg/errors"
)

func getAuthnHandlerFromConfig(ctx context.Context, conf *config.Config) (*password.Handler, error) {
	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	handler := password.NewHandler(sessionStore, store)

	return handler, nil
}
