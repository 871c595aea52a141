package password

import (
	"log/slog"
	"net/http"
	"strings"

	httpCtx "github.com/advertisingnotdead/agency/internal/http/context"
	"github.com/pkg/errors"
)

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.clearSession(w, r); err != nil && !errors.Is(err, errSessionNotFound) {
		slog.ErrorContext(ctx, "could not clear session", slog.Any("error", errors.WithStack(err)))
	}

	baseURL := httpCtx.BaseURL(ctx)

	http.Redirect(w, r, strings.TrimSuffix(baseURL, "/")+"/auth/login", http.StatusSeeOther)
}
