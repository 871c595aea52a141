package dashboard

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/advertisingnotdead/agency/internal/core/model"
	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/advertisingnotdead/agency/internal/core/service"
	"github.com/pkg/errors"
)

var casesTabTemplate = tabTemplate("cases.html.tmpl")

type caseStudyDraft struct {
	Title       string
	Description string
	Category    string
	ImageURL    string
}

type casesTabVModel struct {
	dashboardPage

	CaseStudies []model.CaseStudy
	Draft       caseStudyDraft
}

func (h *Handler) renderCasesTab(w http.ResponseWriter, r *http.Request, draft caseStudyDraft, statusCode int) {
	ctx := r.Context()

	manager := service.NewCaseStudyManager(h.store, h.notifier(w, r))

	if err := manager.Reload(ctx); err != nil {
		slog.ErrorContext(ctx, "could not reload case studies", slog.Any("error", errors.WithStack(err)))
	}

	renderTab(w, r, casesTabTemplate, statusCode, casesTabVModel{
		dashboardPage: h.newPage(w, r, TabCases),
		CaseStudies:   manager.Items(),
		Draft:         draft,
	})
}

// handleCreateCaseStudy keeps the submitted draft on any failure so the form
// can be retried without retyping.
func (h *Handler) handleCreateCaseStudy(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	draft := caseStudyDraft{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		ImageURL:    r.FormValue("image_url"),
	}

	notifier := h.notifier(w, r)

	if strings.TrimSpace(draft.Title) == "" || strings.TrimSpace(draft.Description) == "" {
		notifier.Error(ctx, "title and description are required")
		h.renderCasesTab(w, r, draft, http.StatusUnprocessableEntity)
		return
	}

	manager := service.NewCaseStudyManager(h.store, notifier)

	err := manager.SubmitCreate(ctx, port.CaseStudyFields{
		Title:       draft.Title,
		Description: draft.Description,
		Category:    draft.Category,
		ImageURL:    draft.ImageURL,
	})
	if err != nil {
		slog.ErrorContext(ctx, "could not create case study", slog.Any("error", errors.WithStack(err)))
		h.renderCasesTab(w, r, draft, http.StatusInternalServerError)
		return
	}

	h.redirectToTab(w, r, TabCases)
}
