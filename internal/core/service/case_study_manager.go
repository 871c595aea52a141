package service

import (
	"context"

	"github.com/advertisingnotdead/agency/internal/core/model"
	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/advertisingnotdead/agency/internal/metrics"
	"github.com/pkg/errors"
)

// CaseStudyManager manages the dashboard's case study list. Case studies are
// create-only in the current workflow.
type CaseStudyManager struct {
	*Manager[model.CaseStudy, port.CaseStudyFields]
}

func NewCaseStudyManager(store port.CaseStudyStore, notifier Notifier) *CaseStudyManager {
	list := func(ctx context.Context) ([]model.CaseStudy, error) {
		caseStudies, err := store.QueryCaseStudies(ctx, port.QueryOptions{})
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return caseStudies, nil
	}

	create := func(ctx context.Context, fields port.CaseStudyFields) (model.CaseStudy, error) {
		caseStudy, err := store.CreateCaseStudy(ctx, fields)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		metrics.TotalCaseStudyCreates.Add(1)

		return caseStudy, nil
	}

	return &CaseStudyManager{
		Manager: NewManager("case study", list, create, notifier),
	}
}
