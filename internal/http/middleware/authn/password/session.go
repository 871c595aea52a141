package password

import (
	"encoding/gob"
	"log/slog"
	"net/http"

	"github.com/advertisingnotdead/agency/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

const sessionKeyUser = "user"

var errSessionNotFound = errors.New("session not found")

func init() {
	gob.Register(&authn.User{})
}

func (h *Handler) storeSessionUser(w http.ResponseWriter, r *http.Request, user *authn.User) error {
	session, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		return errors.WithStack(err)
	}

	session.Values[sessionKeyUser] = user

	if err := session.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (h *Handler) retrieveSessionUser(r *http.Request) (*authn.User, error) {
	session, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		// A cookie that does not decode (tampered, or signed with a rotated
		// key) counts as no session at all.
		slog.DebugContext(r.Context(), "could not decode session cookie", slog.Any("error", errors.WithStack(err)))
		return nil, errors.WithStack(errSessionNotFound)
	}

	user, ok := session.Values[sessionKeyUser].(*authn.User)
	if !ok || user == nil {
		return nil, errors.WithStack(errSessionNotFound)
	}

	return user, nil
}

func (h *Handler) clearSession(w http.ResponseWriter, r *http.Request) error {
	session, err := h.sessionStore.Get(r, h.sessionName)
	if err != nil {
		return errors.WithStack(err)
	}

	delete(session.Values, sessionKeyUser)
	session.Options.MaxAge = -1

	if err := session.Save(r, w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
