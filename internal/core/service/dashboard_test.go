package service

import (
	"context"
	"testing"

	"github.com/advertisingnotdead/agency/internal/core/model"
	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/pkg/errors"
)

type fakeStore struct {
	countCaseStudies func(ctx context.Context) (int64, error)
	countLeads       func(ctx context.Context) (int64, error)
	countUsers       func(ctx context.Context) (int64, error)
}

// CountCaseStudies implements port.Store.
func (s *fakeStore) CountCaseStudies(ctx context.Context) (int64, error) {
	return s.countCaseStudies(ctx)
}

// CountLeads implements port.Store.
func (s *fakeStore) CountLeads(ctx context.Context) (int64, error) {
	return s.countLeads(ctx)
}

// CountUsers implements port.Store.
func (s *fakeStore) CountUsers(ctx context.Context) (int64, error) {
	return s.countUsers(ctx)
}

// QueryCaseStudies implements port.Store.
func (s *fakeStore) QueryCaseStudies(ctx context.Context, opts port.QueryOptions) ([]model.CaseStudy, error) {
	return nil, errors.New("not implemented")
}

// CreateCaseStudy implements port.Store.
func (s *fakeStore) CreateCaseStudy(ctx context.Context, fields port.CaseStudyFields) (model.CaseStudy, error) {
	return nil, errors.New("not implemented")
}

// QueryLeads implements port.Store.
func (s *fakeStore) QueryLeads(ctx context.Context, opts port.QueryOptions) ([]model.Lead, error) {
	return nil, errors.New("not implemented")
}

// CreateLead implements port.Store.
func (s *fakeStore) CreateLead(ctx context.Context, fields port.LeadFields) (model.Lead, error) {
	return nil, errors.New("not implemented")
}

// UpdateLeadStatus implements port.Store.
func (s *fakeStore) UpdateLeadStatus(ctx context.Context, id model.LeadID, status model.LeadStatus) (model.Lead, error) {
	return nil, errors.New("not implemented")
}

// QueryUsers implements port.Store.
func (s *fakeStore) QueryUsers(ctx context.Context, opts port.QueryOptions) ([]model.User, error) {
	return nil, errors.New("not implemented")
}

// CreateUser implements port.Store.
func (s *fakeStore) CreateUser(ctx context.Context, fields port.UserFields) (model.User, error) {
	return nil, errors.New("not implemented")
}

// GetUserByEmail implements port.Store.
func (s *fakeStore) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return nil, errors.New("not implemented")
}

var _ port.Store = &fakeStore{}

func TestDashboardServiceStats(t *testing.T) {
	ctx := context.Background()

	store := &fakeStore{
		countLeads: func(ctx context.Context) (int64, error) {
			return 12, nil
		},
		countCaseStudies: func(ctx context.Context) (int64, error) {
			return 4, nil
		},
		countUsers: func(ctx context.Context) (int64, error) {
			return 2, nil
		},
	}

	dashboard := NewDashboardService(store)

	stats := dashboard.Stats(ctx, nil)

	if e, g := int64(12), stats.TotalLeads; e != g {
		t.Errorf("stats.TotalLeads: expected %d, got %d", e, g)
	}

	if e, g := int64(4), stats.TotalCaseStudies; e != g {
		t.Errorf("stats.TotalCaseStudies: expected %d, got %d", e, g)
	}

	if e, g := int64(2), stats.TotalUsers; e != g {
		t.Errorf("stats.TotalUsers: expected %d, got %d", e, g)
	}
}

func TestDashboardServiceStatsPartialFailure(t *testing.T) {
	ctx := context.Background()

	store := &fakeStore{
		countLeads: func(ctx context.Context) (int64, error) {
			return 0, errors.New("leads table unavailable")
		},
		countCaseStudies: func(ctx context.Context) (int64, error) {
			return 4, nil
		},
		countUsers: func(ctx context.Context) (int64, error) {
			return 2, nil
		},
	}

	dashboard := NewDashboardService(store)

	notifier := &recordingNotifier{}

	stats := dashboard.Stats(ctx, notifier)

	if e, g := int64(0), stats.TotalLeads; e != g {
		t.Errorf("stats.TotalLeads: expected %d, got %d", e, g)
	}

	if e, g := int64(4), stats.TotalCaseStudies; e != g {
		t.Errorf("stats.TotalCaseStudies: expected %d, got %d", e, g)
	}

	if e, g := int64(2), stats.TotalUsers; e != g {
		t.Errorf("stats.TotalUsers: expected %d, got %d", e, g)
	}

	if e, g := 1, len(notifier.errors); e != g {
		t.Fatalf("len(notifier.errors): expected %d, got %d", e, g)
	}

	if e, g := "failed to load leads count", notifier.errors[0]; e != g {
		t.Errorf("notifier.errors[0]: expected %q, got %q", e, g)
	}
}

func TestDashboardServiceStatsAllFailing(t *testing.T) {
	ctx := context.Background()

	store := &fakeStore{
		countLeads: func(ctx context.Context) (int64, error) {
			return 0, errors.New("leads table unavailable")
		},
		countCaseStudies: func(ctx context.Context) (int64, error) {
			return 0, errors.New("cases table unavailable")
		},
		countUsers: func(ctx context.Context) (int64, error) {
			return 0, errors.New("users table unavailable")
		},
	}

	dashboard := NewDashboardService(store)

	notifier := &recordingNotifier{}

	stats := dashboard.Stats(ctx, notifier)

	if e, g := (Stats{}), stats; e != g {
		t.Errorf("stats: expected %+v, got %+v", e, g)
	}

	// Failures are reported one by one after the fan-out, so the order is
	// stable regardless of which query fails first.
	expected := []string{
		"failed to load leads count",
		"failed to load case studies count",
		"failed to load users count",
	}

	if e, g := len(expected), len(notifier.errors); e != g {
		t.Fatalf("len(notifier.errors): expected %d, got %d", e, g)
	}

	for idx, message := range expected {
		if e, g := message, notifier.errors[idx]; e != g {
			t.Errorf("notifier.errors[%d]: expected %q, got %q", idx, e, g)
		}
	}
}
