package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/advertisingnotdead/agency/internal/core/model"
	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/pkg/errors"
)

var messagesTabTemplate = tabTemplate("messages.html.tmpl")

type messagesTabVModel struct {
	dashboardPage

	Leads []model.Lead
}

// The messages tab is an inbox view: only leads still waiting for a first
// contact are shown.
func (h *Handler) renderMessagesTab(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	leads, err := h.store.QueryLeads(ctx, port.QueryOptions{})
	if err != nil {
		slog.ErrorContext(ctx, "could not query leads", slog.Any("error", errors.WithStack(err)))
		h.notifier(w, r).Error(ctx, "failed to load messages")
	}

	newLeads := make([]model.Lead, 0, len(leads))
	for _, lead := range leads {
		if lead.Status() == model.LeadStatusNew {
			newLeads = append(newLeads, lead)
		}
	}

	renderTab(w, r, messagesTabTemplate, http.StatusOK, messagesTabVModel{
		dashboardPage: h.newPage(w, r, TabMessages),
		Leads:         newLeads,
	})
}
