package webui

import (
	"net/http"
	"strings"

	httpCtx "github.com/advertisingnotdead/agency/internal/http/context"
)

// The sign-in form lives under the auth mount; /login forwards there so the
// address users type keeps working.
func (h *Handler) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	baseURL := httpCtx.BaseURL(r.Context())

	target := strings.TrimSuffix(baseURL, "/") + "/auth/login"
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}
