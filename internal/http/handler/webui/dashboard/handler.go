package dashboard

import (
	"net/http"
	"strings"

	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/advertisingnotdead/agency/internal/core/service"
	httpCtx "github.com/advertisingnotdead/agency/internal/http/context"
	"github.com/gorilla/sessions"
)

// Handler serves the authenticated dashboard. Resource managers are built per
// request so every tab mount starts from a fresh reload.
type Handler struct {
	mux          *http.ServeMux
	store        port.Store
	dashboard    *service.DashboardService
	sessionStore sessions.Store
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(store port.Store, dashboard *service.DashboardService, sessionStore sessions.Store) *Handler {
	h := &Handler{
		mux:          http.NewServeMux(),
		store:        store,
		dashboard:    dashboard,
		sessionStore: sessionStore,
	}

	h.mux.HandleFunc("GET /{$}", h.getDashboardPage)
	h.mux.HandleFunc("POST /cases", h.handleCreateCaseStudy)
	h.mux.HandleFunc("POST /leads/{leadID}/status", h.handleUpdateLeadStatus)

	return h
}

func (h *Handler) redirectToTab(w http.ResponseWriter, r *http.Request, tab Tab) {
	baseURL := httpCtx.BaseURL(r.Context())

	http.Redirect(w, r, strings.TrimSuffix(baseURL, "/")+"/dashboard?tab="+tab.Slug(), http.StatusSeeOther)
}

var _ http.Handler = &Handler{}
