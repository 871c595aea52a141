package webui

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/advertisingnotdead/agency/internal/core/service"
)

func TestLoginRedirect(t *testing.T) {
	handler := NewHandler(&fakeCaseStudyStore{}, service.NewContactService(&fakeMailer{}))

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/login", nil))

	if e, g := http.StatusSeeOther, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	if e, g := "/auth/login", res.Header().Get("Location"); e != g {
		t.Errorf("location: expected %q, got %q", e, g)
	}
}

func TestLoginRedirectKeepsQuery(t *testing.T) {
	handler := NewHandler(&fakeCaseStudyStore{}, service.NewContactService(&fakeMailer{}))

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/login?next=%2Fdashboard%3Ftab%3Dleads", nil))

	if e, g := http.StatusSeeOther, res.Code; e != g {
		t.Fatalf("res.Code: expected %d, got %d", e, g)
	}

	if e, g := "/auth/login?next=%2Fdashboard%3Ftab%3Dleads", res.Header().Get("Location"); e != g {
		t.Errorf("location: expected %q, got %q", e, g)
	}
}
