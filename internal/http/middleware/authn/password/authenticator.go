package password

import (
	"net/http"

	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/advertisingnotdead/agency/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

// Authenticate implements [authn.Authenticator].
func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) (*authn.User, error) {
	if email, password, ok := r.BasicAuth(); ok {
		user, err := h.getUserFromCredentials(r.Context(), email, password)
		if err != nil {
			if errors.Is(err, port.ErrNotFound) || errors.Is(err, errInvalidCredentials) {
				return nil, nil
			}

			return nil, errors.WithStack(err)
		}

		return user, nil
	}

	user, err := h.retrieveSessionUser(r)
	if err != nil {
		if errors.Is(err, errSessionNotFound) {
			return nil, nil
		}

		return nil, errors.WithStack(err)
	}

	return user, nil
}

var _ authn.Authenticator = &Handler{}
