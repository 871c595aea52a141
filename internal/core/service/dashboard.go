package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/pkg/errors"
)

type Stats struct {
	TotalLeads       int64
	TotalCaseStudies int64
	TotalUsers       int64
}

// DashboardService aggregates the overview counters.
type DashboardService struct {
	store port.Store
}

// Stats issues the three count queries concurrently. A failing query defaults
// its counter to zero and reports one error notification; the remaining
// counters are unaffected. The notifier is only ever called after the fan-out
// completes, from the calling goroutine.
func (s *DashboardService) Stats(ctx context.Context, notifier Notifier) Stats {
	if notifier == nil {
		notifier = DiscardNotifier
	}

	type counter struct {
		kind  string
		count func(ctx context.Context) (int64, error)
		total *int64
		err   error
	}

	var stats Stats

	counters := []*counter{
		{kind: "leads", count: s.store.CountLeads, total: &stats.TotalLeads},
		{kind: "case studies", count: s.store.CountCaseStudies, total: &stats.TotalCaseStudies},
		{kind: "users", count: s.store.CountUsers, total: &stats.TotalUsers},
	}

	var wg sync.WaitGroup

	for _, c := range counters {
		wg.Add(1)
		go func(c *counter) {
			defer wg.Done()

			total, err := c.count(ctx)
			if err != nil {
				c.err = errors.WithStack(err)
				return
			}

			*c.total = total
		}(c)
	}

	wg.Wait()

	for _, c := range counters {
		if c.err == nil {
			continue
		}

		slog.ErrorContext(ctx, "could not count "+c.kind, slog.Any("error", c.err))
		notifier.Error(ctx, "failed to load "+c.kind+" count")
	}

	return stats
}

func NewDashboardService(store port.Store) *DashboardService {
	return &DashboardService{
		store: store,
	}
}
