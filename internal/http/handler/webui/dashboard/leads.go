package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/advertisingnotdead/agency/internal/core/model"
	"github.com/advertisingnotdead/agency/internal/core/service"
	"github.com/pkg/errors"
)

var leadsTabTemplate = tabTemplate("leads.html.tmpl")

type leadsTabVModel struct {
	dashboardPage

	Leads    []model.Lead
	Statuses []model.LeadStatus
}

func (h *Handler) renderLeadsTab(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	manager := service.NewLeadManager(h.store, h.notifier(w, r))

	if err := manager.Reload(ctx); err != nil {
		slog.ErrorContext(ctx, "could not reload leads", slog.Any("error", errors.WithStack(err)))
	}

	renderTab(w, r, leadsTabTemplate, http.StatusOK, leadsTabVModel{
		dashboardPage: h.newPage(w, r, TabLeads),
		Leads:         manager.Items(),
		Statuses:      model.LeadStatuses(),
	})
}

func (h *Handler) handleUpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	leadID := model.LeadID(r.PathValue("leadID"))
	status := model.LeadStatus(r.FormValue("status"))

	manager := service.NewLeadManager(h.store, h.notifier(w, r))

	if err := manager.SubmitStatusChange(ctx, leadID, status); err != nil {
		slog.ErrorContext(ctx, "could not update lead status", slog.Any("error", errors.WithStack(err)))
	}

	h.redirectToTab(w, r, TabLeads)
}
