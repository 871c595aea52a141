package dashboard

import (
	"net/http"

	httpCtx "github.com/advertisingnotdead/agency/internal/http/context"
	"github.com/advertisingnotdead/agency/internal/http/middleware/authn"
)

func (h *Handler) newPage(w http.ResponseWriter, r *http.Request, tab Tab) dashboardPage {
	ctx := r.Context()

	return dashboardPage{
		BaseURL:   httpCtx.BaseURL(ctx),
		User:      authn.ContextUser(ctx),
		ActiveTab: tab,
		Tabs:      Tabs(),
		Flashes:   h.popFlashes(w, r),
	}
}

func (h *Handler) getDashboardPage(w http.ResponseWriter, r *http.Request) {
	tab, err := ParseTab(r.URL.Query().Get("tab"))
	if err != nil {
		h.redirectToTab(w, r, TabOverview)
		return
	}

	switch tab {
	case TabOverview:
		h.renderOverviewTab(w, r)
	case TabLeads:
		h.renderLeadsTab(w, r)
	case TabCases:
		h.renderCasesTab(w, r, caseStudyDraft{}, http.StatusOK)
	case TabMessages:
		h.renderMessagesTab(w, r)
	case TabSettings:
		h.renderSettingsTab(w, r)
	}
}
