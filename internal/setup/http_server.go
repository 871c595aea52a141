package setup

import (
	"context"
	"net/http"

	"github.com/advertisingnotdead/agency/internal/config"
	"github.com/advertisingnotdead/agency/internal/core/model"
	agencyHTTP "github.com/advertisingnotdead/agency/internal/http"
	httpCtx "github.com/advertisingnotdead/agency/internal/http/context"
	"github.com/advertisingnotdead/agency/internal/http/handler/api"
	"github.com/advertisingnotdead/agency/internal/http/handler/metrics"
	"github.com/advertisingnotdead/agency/internal/http/handler/webui"
	"github.com/advertisingnotdead/agency/internal/http/handler/webui/dashboard"
	"github.com/advertisingnotdead/agency/internal/http/middleware/authn"
	"github.com/advertisingnotdead/agency/internal/http/middleware/authn/password"
	"github.com/advertisingnotdead/agency/internal/http/middleware/authz"
	"github.com/advertisingnotdead/agency/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
	"github.com/rs/cors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*agencyHTTP.Server, error) {
	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure store from config")
	}

	dashboardService, err := getDashboardServiceFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure dashboard service from config")
	}

	contactService, err := getContactServiceFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure contact service from config")
	}

	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure session store from config")
	}

	authnHandler, err := getAuthnHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure authn handler from config")
	}

	unauthorized := func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	}

	redirectToLogin := func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, password.LoginURL(conf.HTTP.BaseURL, httpCtx.CurrentURL(r.Context())), http.StatusSeeOther)
	}

	apiAuthn := authn.Middleware(unauthorized, authnHandler)
	webAuthn := authn.Middleware(redirectToLogin, authnHandler)

	assertAdmin := authz.Middleware(nil, authz.Has(model.UserRoleAdmin))
	assertAuthenticated := authz.Middleware(nil, authz.IsAuthenticated)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   conf.HTTP.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	apiHandler := api.NewHandler(store, dashboardService)

	webuiOpts := []webui.OptionFunc{}
	if conf.HTTP.RateLimit.Enabled {
		webuiOpts = append(webuiOpts, webui.WithContactRateLimit(ratelimit.Middleware(
			ratelimit.WithTrustProxyHeaders(conf.HTTP.RateLimit.TrustHeaders),
			ratelimit.WithLimit(conf.HTTP.RateLimit.Interval, conf.HTTP.RateLimit.MaxBurst),
			ratelimit.WithCache(conf.HTTP.RateLimit.CacheSize, conf.HTTP.RateLimit.TTL),
		)))
	}

	webuiHandler := webui.NewHandler(store, contactService, webuiOpts...)

	dashboardHandler := dashboard.NewHandler(store, dashboardService, sessionStore)

	options := []agencyHTTP.OptionFunc{
		agencyHTTP.WithAddress(conf.HTTP.Address),
		agencyHTTP.WithBaseURL(conf.HTTP.BaseURL),
		agencyHTTP.WithMount("/auth/", authnHandler),
		agencyHTTP.WithMount("/api/v1/", corsMiddleware.Handler(apiAuthn(apiHandler))),
		agencyHTTP.WithMount("/metrics/", apiAuthn(assertAdmin(metrics.NewHandler()))),
		agencyHTTP.WithMount("/dashboard/", webAuthn(assertAuthenticated(dashboardHandler))),
		agencyHTTP.WithMount("/", webuiHandler),
	}

	server := agencyHTTP.NewServer(options...)

	return server, nil
}
