package password

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/advertisingnotdead/agency/internal/core/port"
	httpCtx "github.com/advertisingnotdead/agency/internal/http/context"
	"github.com/advertisingnotdead/agency/internal/http/middleware/authn"
	"github.com/advertisingnotdead/agency/internal/metrics"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var errInvalidCredentials = errors.New("invalid credentials")

// LoginURL builds the sign-in location for an unauthenticated request,
// carrying the requested URL so the user lands back there after signing in.
func LoginURL(baseURL string, requested *url.URL) string {
	loginURL := strings.TrimSuffix(baseURL, "/") + "/auth/login"

	if requested != nil {
		loginURL += "?next=" + url.QueryEscape(requested.RequestURI())
	}

	return loginURL
}

// safeReturnPath accepts local paths only; anything that could leave the site
// (absolute URLs, protocol-relative ones) is discarded.
func safeReturnPath(raw string) string {
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return ""
	}

	return raw
}

func (h *Handler) getLoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderLoginPage(w, r, http.StatusOK, loginPageVModel{
		Next: safeReturnPath(r.URL.Query().Get("next")),
	})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	next := safeReturnPath(r.FormValue("next"))

	if email == "" || password == "" {
		h.renderLoginPage(w, r, http.StatusBadRequest, loginPageVModel{
			Email:        email,
			Next:         next,
			ErrorMessage: "Email and password are required.",
		})
		return
	}

	ctx := r.Context()

	user, err := h.getUserFromCredentials(ctx, email, password)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) || errors.Is(err, errInvalidCredentials) {
			h.renderLoginPage(w, r, http.StatusUnauthorized, loginPageVModel{
				Email:        email,
				Next:         next,
				ErrorMessage: "Invalid email or password.",
			})
			return
		}

		slog.ErrorContext(ctx, "could not retrieve user from credentials", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.storeSessionUser(w, r, user); err != nil {
		slog.ErrorContext(ctx, "could not store session user", slog.Any("error", errors.WithStack(err)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	metrics.TotalSignIns.Inc()

	if next == "" {
		next = strings.TrimSuffix(httpCtx.BaseURL(ctx), "/") + "/dashboard"
	}

	http.Redirect(w, r, next, http.StatusSeeOther)
}

func (h *Handler) getUserFromCredentials(ctx context.Context, email, password string) (*authn.User, error) {
	user, err := h.userStore.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte(password)); err != nil {
		return nil, errors.WithStack(errInvalidCredentials)
	}

	authnUser := &authn.User{
		ID:    user.ID(),
		Email: user.Email(),
		Role:  user.Role(),
	}

	return authnUser, nil
}
