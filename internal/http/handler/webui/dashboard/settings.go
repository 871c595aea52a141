package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/advertisingnotdead/agency/internal/core/model"
	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/advertisingnotdead/agency/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

var settingsTabTemplate = tabTemplate("settings.html.tmpl")

type settingsTabVModel struct {
	dashboardPage

	IsAdmin bool
	Users   []model.User
}

func (h *Handler) renderSettingsTab(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user := authn.ContextUser(ctx)
	isAdmin := user != nil && user.Role == model.UserRoleAdmin

	var users []model.User
	if isAdmin {
		queried, err := h.store.QueryUsers(ctx, port.QueryOptions{})
		if err != nil {
			slog.ErrorContext(ctx, "could not query users", slog.Any("error", errors.WithStack(err)))
			h.notifier(w, r).Error(ctx, "failed to load users")
		}

		users = queried
	}

	renderTab(w, r, settingsTabTemplate, http.StatusOK, settingsTabVModel{
		dashboardPage: h.newPage(w, r, TabSettings),
		IsAdmin:       isAdmin,
		Users:         users,
	})
}
