package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/advertisingnotdead/agency/internal/core/model"
	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/advertisingnotdead/agency/internal/core/service"
	"github.com/advertisingnotdead/agency/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

type memoryStore struct {
	mutex       sync.RWMutex
	caseStudies []model.CaseStudy
	leads       []model.Lead
	users       []model.User
}

// CountCaseStudies implements port.Store.
func (s *memoryStore) CountCaseStudies(ctx context.Context) (int64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return int64(len(s.caseStudies)), nil
}

// QueryCaseStudies implements port.Store.
func (s *memoryStore) QueryCaseStudies(ctx context.Context, opts port.QueryOptions) ([]model.CaseStudy, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	caseStudies := s.caseStudies
	if opts.Limit != nil && *opts.Limit < len(caseStudies) {
		caseStudies = caseStudies[:*opts.Limit]
	}

	return caseStudies, nil
}

// CreateCaseStudy implements port.Store.
func (s *memoryStore) CreateCaseStudy(ctx context.Context, fields port.CaseStudyFields) (model.CaseStudy, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := time.Now().UTC()
	caseStudy := model.NewReadOnlyCaseStudy(model.NewCaseStudyID(), fields.Title, fields.Description, fields.Category, fields.ImageURL, now, now)

	s.caseStudies = append(s.caseStudies, caseStudy)

	return caseStudy, nil
}

// CountLeads implements port.Store.
func (s *memoryStore) CountLeads(ctx context.Context) (int64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return int64(len(s.leads)), nil
}

// QueryLeads implements port.Store.
func (s *memoryStore) QueryLeads(ctx context.Context, opts port.QueryOptions) ([]model.Lead, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.leads, nil
}

// CreateLead implements port.Store.
func (s *memoryStore) CreateLead(ctx context.Context, fields port.LeadFields) (model.Lead, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	lead := model.NewReadOnlyLead(model.NewLeadID(), fields.Name, fields.Email, fields.Phone, fields.Message, model.LeadStatusNew, time.Now().UTC())

	s.leads = append(s.leads, lead)

	return lead, nil
}

// UpdateLeadStatus implements port.Store.
func (s *memoryStore) UpdateLeadStatus(ctx context.Context, id model.LeadID, status model.LeadStatus) (model.Lead, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for idx, l := range s.leads {
		if l.ID() != id {
			continue
		}

		updated := model.NewReadOnlyLead(l.ID(), l.Name(), l.Email(), l.Phone(), l.Message(), status, l.CreatedAt())
		s.leads[idx] = updated

		return updated, nil
	}

	return nil, errors.WithStack(port.ErrNotFound)
}

// CountUsers implements port.Store.
func (s *memoryStore) CountUsers(ctx context.Context) (int64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return int64(len(s.users)), nil
}

// QueryUsers implements port.Store.
func (s *memoryStore) QueryUsers(ctx context.Context, opts port.QueryOptions) ([]model.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.users, nil
}

// CreateUser implements port.Store.
func (s *memoryStore) CreateUser(ctx context.Context, fields port.UserFields) (model.User, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, u := range s.users {
		if u.Email() == fields.Email {
			return nil, errors.WithStack(port.ErrAlreadyExists)
		}
	}

	user := model.NewReadOnlyUser(model.NewUserID(), fields.Email, fields.Role, fields.PasswordHash, time.Now().UTC())

	s.users = append(s.users, user)

	return user, nil
}

// GetUserByEmail implements port.Store.
func (s *memoryStore) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, u := range s.users {
		if u.Email() == email {
			return u, nil
		}
	}

	return nil, errors.WithStack(port.ErrNotFound)
}

var _ port.Store = &memoryStore{}

type fakeAuthenticator struct {
	user *authn.User
}

// Authenticate implements authn.Authenticator.
func (a *fakeAuthenticator) Authenticate(w http.ResponseWriter, r *http.Request) (*authn.User, error) {
	return a.user, nil
}

var _ authn.Authenticator = &fakeAuthenticator{}

func newTestHandler(store port.Store, user *authn.User) http.Handler {
	unauthorized := func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	}

	middleware := authn.Middleware(unauthorized, &fakeAuthenticator{user: user})

	return middleware(NewHandler(store, service.NewDashboardService(store)))
}

func asEditor() *authn.User {
	return &authn.User{ID: model.NewUserID(), Email: "editor@example.com", Role: model.UserRoleEditor}
}

func asAdmin() *authn.User {
	return &authn.User{ID: model.NewUserID(), Email: "admin@example.com", Role: model.UserRoleAdmin}
}

func TestHandlerAnonymousUnauthorized(t *testing.T) {
	handler := newTestHandler(&memoryStore{}, nil)

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/cases", nil))

	if e, g := http.StatusUnauthorized, res.Code; e != g {
		t.Errorf("res.Code: expected %d, got %d", e, g)
	}
}

func TestHandlerListCaseStudies(t *testing.T) {
	ctx := context.Background()

	store := &memoryStore{}
	if _, err := store.CreateCaseStudy(ctx, port.CaseStudyFields{
		Title:       "Neon launch",
		Description: "A city-wide out-of-home campaign.",
		Category:    "Out-of-home",
	}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	handler := newTestHandler(store, asEditor())

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/cases", nil))

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	var payload ListCaseStudiesResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(payload.CaseStudies); e != g {
		t.Fatalf("len(payload.CaseStudies): expected %d, got %d", e, g)
	}

	if e, g := "Neon launch", payload.CaseStudies[0].Title; e != g {
		t.Errorf("payload.CaseStudies[0].Title: expected %q, got %q", e, g)
	}
}

func TestHandlerCreateCaseStudy(t *testing.T) {
	store := &memoryStore{}
	handler := newTestHandler(store, asEditor())

	body, err := json.Marshal(CreateCaseStudyRequest{
		Title:       "Neon launch",
		Description: "A city-wide out-of-home campaign.",
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/cases", bytes.NewReader(body)))

	if e, g := http.StatusCreated, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	var payload CreateCaseStudyResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if payload.CaseStudy.ID == "" {
		t.Error("payload.CaseStudy.ID should not be empty")
	}

	count, err := store.CountCaseStudies(context.Background())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(1), count; e != g {
		t.Errorf("count: expected %d, got %d", e, g)
	}
}

func TestHandlerCreateCaseStudyMissingTitle(t *testing.T) {
	handler := newTestHandler(&memoryStore{}, asEditor())

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/cases", strings.NewReader(`{"description":"no title"}`)))

	if e, g := http.StatusBadRequest, res.Code; e != g {
		t.Errorf("res.Code: expected %d, got %d", e, g)
	}
}

func TestHandlerCreateLeadInvalid(t *testing.T) {
	handler := newTestHandler(&memoryStore{}, asEditor())

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(`{"name":"Jane","email":"not-an-email","message":"hello"}`)))

	if e, g := http.StatusUnprocessableEntity, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	var payload InvalidFieldsResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "invalid email", payload.FieldErrors["email"]; e != g {
		t.Errorf(`payload.FieldErrors["email"]: expected %q, got %q`, e, g)
	}
}

func TestHandlerUpdateLeadStatus(t *testing.T) {
	ctx := context.Background()

	store := &memoryStore{}
	lead, err := store.CreateLead(ctx, port.LeadFields{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "We need a campaign.",
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	handler := newTestHandler(store, asEditor())

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodPut, "/leads/"+string(lead.ID())+"/status", strings.NewReader(`{"status":"contacted"}`)))

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	var payload UpdateLeadStatusResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "contacted", payload.Lead.Status; e != g {
		t.Errorf("payload.Lead.Status: expected %q, got %q", e, g)
	}
}

func TestHandlerUpdateLeadStatusInvalid(t *testing.T) {
	handler := newTestHandler(&memoryStore{}, asEditor())

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodPut, "/leads/some-id/status", strings.NewReader(`{"status":"closed-won"}`)))

	if e, g := http.StatusBadRequest, res.Code; e != g {
		t.Errorf("res.Code: expected %d, got %d", e, g)
	}
}

func TestHandlerUpdateLeadStatusNotFound(t *testing.T) {
	handler := newTestHandler(&memoryStore{}, asEditor())

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodPut, "/leads/does-not-exist/status", strings.NewReader(`{"status":"archived"}`)))

	if e, g := http.StatusNotFound, res.Code; e != g {
		t.Errorf("res.Code: expected %d, got %d", e, g)
	}
}

func TestHandlerCreateUserRequiresAdmin(t *testing.T) {
	handler := newTestHandler(&memoryStore{}, asEditor())

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":"new@example.com","password":"secret","role":"editor"}`)))

	if e, g := http.StatusForbidden, res.Code; e != g {
		t.Errorf("res.Code: expected %d, got %d", e, g)
	}
}

func TestHandlerCreateUser(t *testing.T) {
	store := &memoryStore{}
	handler := newTestHandler(store, asAdmin())

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":"new@example.com","password":"secret","role":"editor"}`)))

	if e, g := http.StatusCreated, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	var payload CreateUserResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "new@example.com", payload.User.Email; e != g {
		t.Errorf("payload.User.Email: expected %q, got %q", e, g)
	}

	res = httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":"new@example.com","password":"secret","role":"editor"}`)))

	if e, g := http.StatusConflict, res.Code; e != g {
		t.Errorf("res.Code: expected %d, got %d", e, g)
	}
}

func TestHandlerGetStats(t *testing.T) {
	ctx := context.Background()

	store := &memoryStore{}
	if _, err := store.CreateLead(ctx, port.LeadFields{Name: "Jane", Email: "jane@example.com", Message: "Hello"}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}
	if _, err := store.CreateCaseStudy(ctx, port.CaseStudyFields{Title: "Case", Description: "Description"}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	handler := newTestHandler(store, asEditor())

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/stats", nil))

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	var payload StatsResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(1), payload.Stats.TotalLeads; e != g {
		t.Errorf("payload.Stats.TotalLeads: expected %d, got %d", e, g)
	}

	if e, g := int64(1), payload.Stats.TotalCaseStudies; e != g {
		t.Errorf("payload.Stats.TotalCaseStudies: expected %d, got %d", e, g)
	}

	if e, g := int64(0), payload.Stats.TotalUsers; e != g {
		t.Errorf("payload.Stats.TotalUsers: expected %d, got %d", e, g)
	}
}
