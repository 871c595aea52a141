package dashboard

import (
	"net/http"

	"github.com/advertisingnotdead/agency/internal/core/service"
)

var overviewTabTemplate = tabTemplate("overview.html.tmpl")

type overviewTabVModel struct {
	dashboardPage

	Stats service.Stats
}

func (h *Handler) renderOverviewTab(w http.ResponseWriter, r *http.Request) {
	notifier := h.notifier(w, r)

	stats := h.dashboard.Stats(r.Context(), notifier)

	renderTab(w, r, overviewTabTemplate, http.StatusOK, overviewTabVModel{
		dashboardPage: h.newPage(w, r, TabOverview),
		Stats:         stats,
	})
}
