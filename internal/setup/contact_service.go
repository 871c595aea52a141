package setup

import (
	"context"

	"github.com/advertisingnotdead/agency/internal/config"
	"github.com/advertisingnotdead/agency/internal/core/service"
	"github.com/pkg/errors"
)

var getContactServiceFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.ContactService, error) {
	mailer, err := getMailerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewContactService(mailer), nil
})
