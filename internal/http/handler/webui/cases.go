package webui

import (
	"log/slog"
	"net/http"

	"github.com/advertisingnotdead/agency/internal/core/model"
	"github.com/advertisingnotdead/agency/internal/core/port"
	httpCtx "github.com/advertisingnotdead/agency/internal/http/context"
	"github.com/advertisingnotdead/agency/internal/http/handler/webui/common"
	"github.com/pkg/errors"
)

var casesPageTemplate = pageTemplate("cases.html.tmpl")

type casesPageVModel struct {
	BaseURL     string
	CaseStudies []model.CaseStudy
}

func (h *Handler) getCasesPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caseStudies, err := h.store.QueryCaseStudies(ctx, port.QueryOptions{})
	if err != nil {
		slog.ErrorContext(ctx, "could not query case studies", slog.Any("error", errors.WithStack(err)))
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	renderPage(w, r, casesPageTemplate, http.StatusOK, casesPageVModel{
		BaseURL:     httpCtx.BaseURL(ctx),
		CaseStudies: caseStudies,
	})
}
