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

var homePageTemplate = pageTemplate("home.html.tmpl")

type homePageVModel struct {
	BaseURL     string
	CaseStudies []model.CaseStudy
}

func (h *Handler) getHomePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 3
	caseStudies, err := h.store.QueryCaseStudies(ctx, port.QueryOptions{Limit: &limit})
	if err != nil {
		slog.ErrorContext(ctx, "could not query case studies", slog.Any("error", errors.WithStack(err)))
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	renderPage(w, r, homePageTemplate, http.StatusOK, homePageVModel{
		BaseURL:     httpCtx.BaseURL(ctx),
		CaseStudies: caseStudies,
	})
}
