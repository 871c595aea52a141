package webui

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/advertisingnotdead/agency/internal/core/service"
	httpCtx "github.com/advertisingnotdead/agency/internal/http/context"
	"github.com/pkg/errors"
)

var contactPageTemplate = pageTemplate("contact.html.tmpl")

type contactPageVModel struct {
	BaseURL      string
	Values       service.Submission
	FieldErrors  service.FieldErrors
	ErrorMessage string
	Sent         bool
}

func (h *Handler) getContactPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	renderPage(w, r, contactPageTemplate, http.StatusOK, contactPageVModel{
		BaseURL: httpCtx.BaseURL(ctx),
		Sent:    r.URL.Query().Has("sent"),
	})
}

func (h *Handler) handleContactSubmission(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	submission := service.Submission{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Phone:   r.FormValue("phone"),
		Message: r.FormValue("message"),
	}

	fieldErrors, err := h.contact.Submit(ctx, submission)
	if err != nil {
		slog.ErrorContext(ctx, "could not submit contact form", slog.Any("error", errors.WithStack(err)))

		renderPage(w, r, contactPageTemplate, http.StatusBadGateway, contactPageVModel{
			BaseURL:      httpCtx.BaseURL(ctx),
			Values:       submission,
			ErrorMessage: "We could not send your message. Please try again.",
		})
		return
	}

	if !fieldErrors.Valid() {
		renderPage(w, r, contactPageTemplate, http.StatusUnprocessableEntity, contactPageVModel{
			BaseURL:     httpCtx.BaseURL(ctx),
			Values:      submission,
			FieldErrors: fieldErrors,
		})
		return
	}

	baseURL := httpCtx.BaseURL(ctx)

	http.Redirect(w, r, strings.TrimSuffix(baseURL, "/")+"/contact?sent=1", http.StatusSeeOther)
}
