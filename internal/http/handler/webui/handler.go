package webui

import (
	"net/http"

	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/advertisingnotdead/agency/internal/core/service"
)

// Handler serves the public marketing site: homepage, case study gallery and
// the contact form.
type Handler struct {
	mux     *http.ServeMux
	store   port.CaseStudyStore
	contact *service.ContactService
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(store port.CaseStudyStore, contact *service.ContactService, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)

	h := &Handler{
		mux:     http.NewServeMux(),
		store:   store,
		contact: contact,
	}

	h.mux.HandleFunc("GET /{$}", h.getHomePage)
	h.mux.HandleFunc("GET /cases", h.getCasesPage)
	h.mux.HandleFunc("GET /contact", h.getContactPage)
	h.mux.HandleFunc("GET /login", h.redirectToLogin)

	var contactSubmission http.Handler = http.HandlerFunc(h.handleContactSubmission)
	if opts.ContactRateLimit != nil {
		contactSubmission = opts.ContactRateLimit(contactSubmission)
	}

	h.mux.Handle("POST /contact", contactSubmission)

	return h
}

var _ http.Handler = &Handler{}
