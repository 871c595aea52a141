package password

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/advertisingnotdead/agency/internal/core/model"
	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/advertisingnotdead/agency/internal/http/middleware/authn"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	users map[string]model.User
}

// CountUsers implements port.UserStore.
func (s *fakeUserStore) CountUsers(ctx context.Context) (int64, error) {
	return int64(len(s.users)), nil
}

// QueryUsers implements port.UserStore.
func (s *fakeUserStore) QueryUsers(ctx context.Context, opts port.QueryOptions) ([]model.User, error) {
	return nil, errors.New("not implemented")
}

// CreateUser implements port.UserStore.
func (s *fakeUserStore) CreateUser(ctx context.Context, fields port.UserFields) (model.User, error) {
	return nil, errors.New("not implemented")
}

// GetUserByEmail implements port.UserStore.
func (s *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return user, nil
}

var _ port.UserStore = &fakeUserStore{}

func newTestUserStore(t *testing.T, email, password string) *fakeUserStore {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	user := model.NewReadOnlyUser(model.NewUserID(), email, model.UserRoleAdmin, string(passwordHash), time.Now().UTC())

	return &fakeUserStore{
		users: map[string]model.User{email: user},
	}
}

func postLogin(handler http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	return res
}

func TestLogin(t *testing.T) {
	sessionStore := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	handler := NewHandler(sessionStore, newTestUserStore(t, "admin@example.com", "s3cret"))

	res := postLogin(handler, url.Values{
		"email":    []string{"admin@example.com"},
		"password": []string{"s3cret"},
	})

	if e, g := http.StatusSeeOther, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	if e, g := "/dashboard", res.Header().Get("Location"); e != g {
		t.Errorf("location: expected %q, got %q", e, g)
	}

	if len(res.Result().Cookies()) == 0 {
		t.Error("a session cookie should have been set")
	}
}

func TestLoginReturnsToRequestedPage(t *testing.T) {
	sessionStore := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	handler := NewHandler(sessionStore, newTestUserStore(t, "admin@example.com", "s3cret"))

	res := postLogin(handler, url.Values{
		"email":    []string{"admin@example.com"},
		"password": []string{"s3cret"},
		"next":     []string{"/dashboard?tab=leads"},
	})

	if e, g := http.StatusSeeOther, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	if e, g := "/dashboard?tab=leads", res.Header().Get("Location"); e != g {
		t.Errorf("location: expected %q, got %q", e, g)
	}
}

func TestLoginDiscardsOffsiteReturnPath(t *testing.T) {
	sessionStore := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	handler := NewHandler(sessionStore, newTestUserStore(t, "admin@example.com", "s3cret"))

	for _, next := range []string{"https://attacker.example/", "//attacker.example/x", "dashboard"} {
		t.Run(next, func(t *testing.T) {
			res := postLogin(handler, url.Values{
				"email":    []string{"admin@example.com"},
				"password": []string{"s3cret"},
				"next":     []string{next},
			})

			if e, g := http.StatusSeeOther, res.Code; e != g {
				t.Fatalf("res.Code: expected %d, got %d", e, g)
			}

			if e, g := "/dashboard", res.Header().Get("Location"); e != g {
				t.Errorf("location: expected %q, got %q", e, g)
			}
		})
	}
}

func TestLoginInvalidPassword(t *testing.T) {
	sessionStore := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	handler := NewHandler(sessionStore, newTestUserStore(t, "admin@example.com", "s3cret"))

	res := postLogin(handler, url.Values{
		"email":    []string{"admin@example.com"},
		"password": []string{"wrong"},
	})

	if e, g := http.StatusUnauthorized, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	if !strings.Contains(res.Body.String(), "Invalid email or password.") {
		t.Error("body should contain the sign-in error message")
	}
}

func TestAuthenticateSession(t *testing.T) {
	sessionStore := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	handler := NewHandler(sessionStore, newTestUserStore(t, "admin@example.com", "s3cret"))

	login := postLogin(handler, url.Values{
		"email":    []string{"admin@example.com"},
		"password": []string{"s3cret"},
	})

	var contextUser *authn.User

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contextUser = authn.ContextUser(r.Context())
	})

	redirectToLogin := func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, cookie := range login.Result().Cookies() {
		req.AddCookie(cookie)
	}

	res := httptest.NewRecorder()
	authn.Middleware(redirectToLogin, handler)(next).ServeHTTP(res, req)

	if contextUser == nil {
		t.Fatal("contextUser should not be nil")
	}

	if e, g := "admin@example.com", contextUser.Email; e != g {
		t.Errorf("contextUser.Email: expected %q, got %q", e, g)
	}
}

func TestAuthenticateTamperedCookie(t *testing.T) {
	sessionStore := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	handler := NewHandler(sessionStore, newTestUserStore(t, "admin@example.com", "s3cret"))

	// Mint a session cookie with a different signing key, as left behind by a
	// key rotation.
	rotatedStore := sessions.NewCookieStore([]byte("fedcba9876543210fedcba9876543210"))
	seedReq := httptest.NewRequest(http.MethodGet, "/", nil)
	seedRes := httptest.NewRecorder()

	session, err := rotatedStore.Get(seedReq, "agency_session")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	session.Values[sessionKeyUser] = &authn.User{
		ID:    model.NewUserID(),
		Email: "admin@example.com",
		Role:  model.UserRoleAdmin,
	}

	if err := session.Save(seedReq, seedRes); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	redirectToLogin := func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, cookie := range seedRes.Result().Cookies() {
		req.AddCookie(cookie)
	}

	res := httptest.NewRecorder()
	authn.Middleware(redirectToLogin, handler)(next).ServeHTTP(res, req)

	if nextCalled {
		t.Error("next handler should not have been called")
	}

	if e, g := http.StatusSeeOther, res.Code; e != g {
		t.Errorf("res.Code: expected %d, got %d", e, g)
	}

	if e, g := "/auth/login", res.Header().Get("Location"); e != g {
		t.Errorf("location: expected %q, got %q", e, g)
	}
}

func TestLoginURL(t *testing.T) {
	if e, g := "/auth/login", LoginURL("/", nil); e != g {
		t.Errorf("LoginURL: expected %q, got %q", e, g)
	}

	requested := &url.URL{Path: "/dashboard", RawQuery: "tab=leads"}

	if e, g := "/auth/login?next=%2Fdashboard%3Ftab%3Dleads", LoginURL("/", requested); e != g {
		t.Errorf("LoginURL: expected %q, got %q", e, g)
	}

	if e, g := "/agency/auth/login?next=%2Fdashboard%3Ftab%3Dleads", LoginURL("/agency/", requested); e != g {
		t.Errorf("LoginURL: expected %q, got %q", e, g)
	}
}
