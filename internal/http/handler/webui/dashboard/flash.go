package dashboard

import (
	"context"
	"encoding/gob"
	"log/slog"
	"net/http"

	"github.com/advertisingnotdead/agency/internal/core/service"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

const flashSessionName = "agency_flash"

type Flash struct {
	Kind    string
	Message string
}

func init() {
	gob.Register(Flash{})
}

// flashNotifier implements service.Notifier on top of session flashes, so
// outcome messages survive the post-redirect-get cycle.
type flashNotifier struct {
	w            http.ResponseWriter
	r            *http.Request
	sessionStore sessions.Store
}

// Success implements service.Notifier.
func (n *flashNotifier) Success(ctx context.Context, message string) {
	n.add(ctx, "success", message)
}

// Error implements service.Notifier.
func (n *flashNotifier) Error(ctx context.Context, message string) {
	n.add(ctx, "error", message)
}

func (n *flashNotifier) add(ctx context.Context, kind string, message string) {
	session, err := n.sessionStore.Get(n.r, flashSessionName)
	if err != nil {
		slog.ErrorContext(ctx, "could not get flash session", slog.Any("error", errors.WithStack(err)))
		return
	}

	session.AddFlash(Flash{Kind: kind, Message: message})

	if err := session.Save(n.r, n.w); err != nil {
		slog.ErrorContext(ctx, "could not save flash session", slog.Any("error", errors.WithStack(err)))
	}
}

var _ service.Notifier = &flashNotifier{}

func (h *Handler) notifier(w http.ResponseWriter, r *http.Request) *flashNotifier {
	return &flashNotifier{
		w:            w,
		r:            r,
		sessionStore: h.sessionStore,
	}
}

func (h *Handler) popFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	session, err := h.sessionStore.Get(r, flashSessionName)
	if err != nil {
		slog.ErrorContext(r.Context(), "could not get flash session", slog.Any("error", errors.WithStack(err)))
		return nil
	}

	rawFlashes := session.Flashes()
	if len(rawFlashes) == 0 {
		return nil
	}

	if err := session.Save(r, w); err != nil {
		slog.ErrorContext(r.Context(), "could not save flash session", slog.Any("error", errors.WithStack(err)))
	}

	flashes := make([]Flash, 0, len(rawFlashes))
	for _, raw := range rawFlashes {
		if flash, ok := raw.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}

	return flashes
}
