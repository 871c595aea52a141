package authn

import (
	"log/slog"
	"net/http"

	"github.com/pkg/errors"
)

// ErrSkipRequest signals that the authenticator already wrote the response
// and the chain must stop without invoking anything else.
var ErrSkipRequest = errors.New("skip request")

type Authenticator interface {
	Authenticate(w http.ResponseWriter, r *http.Request) (*User, error)
}

// Middleware tries each authenticator in order and injects the first matched
// user into the request context. A failing check counts as an absent session:
// the chain moves on, and a request no authenticator claims ends at
// onUnauthorized.
func Middleware(onUnauthorized func(w http.ResponseWriter, r *http.Request), authenticators ...Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, authenticator := range authenticators {
				user, err := authenticator.Authenticate(w, r)
				if err != nil {
					if errors.Is(err, ErrSkipRequest) {
						return
					}

					slog.ErrorContext(r.Context(), "could not authenticate request", slog.Any("error", errors.WithStack(err)))
					continue
				}

				if user == nil {
					continue
				}

				next.ServeHTTP(w, r.WithContext(setContextUser(r.Context(), user)))
				return
			}

			onUnauthorized(w, r)
		})
	}
}
