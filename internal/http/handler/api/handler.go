package api

import (
	"net/http"

	"github.com/advertisingnotdead/agency/internal/core/model"
	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/advertisingnotdead/agency/internal/core/service"
	"github.com/advertisingnotdead/agency/internal/http/middleware/authz"
)

type Handler struct {
	store     port.Store
	dashboard *service.DashboardService
	mux       *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(store port.Store, dashboard *service.DashboardService) *Handler {
	h := &Handler{
		store:     store,
		dashboard: dashboard,
		mux:       &http.ServeMux{},
	}

	assertUser := authz.Middleware(nil, authz.IsAuthenticated)
	assertAdmin := authz.Middleware(nil, authz.Has(model.UserRoleAdmin))

	h.mux.Handle("GET /cases", assertUser(http.HandlerFunc(h.handleListCaseStudies)))
	h.mux.Handle("POST /cases", assertUser(http.HandlerFunc(h.handleCreateCaseStudy)))

	h.mux.Handle("GET /leads", assertUser(http.HandlerFunc(h.handleListLeads)))
	h.mux.Handle("POST /leads", assertUser(http.HandlerFunc(h.handleCreateLead)))
	h.mux.Handle("PUT /leads/{leadID}/status", assertUser(http.HandlerFunc(h.handleUpdateLeadStatus)))

	h.mux.Handle("GET /users", assertAdmin(http.HandlerFunc(h.handleListUsers)))
	h.mux.Handle("POST /users", assertAdmin(http.HandlerFunc(h.handleCreateUser)))

	h.mux.Handle("GET /stats", assertUser(http.HandlerFunc(h.handleGetStats)))

	return h
}

var _ http.Handler = &Handler{}
