package setup

import (
	"context"

	"github.com/advertisingnotdead/agency/internal/config"
	"github.com/advertisingnotdead/agency/internal/core/service"
	"github.com/pkg/errors"
)

var getDashboardServiceFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.DashboardService, error) {
	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return service.NewDashboardService(store), nil
})
