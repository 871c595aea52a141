package service

import (
	"context"

	"github.com/advertisingnotdead/agency/internal/core/model"
	"github.com/advertisingnotdead/agency/internal/core/port"
	"github.com/advertisingnotdead/agency/internal/metrics"
	"github.com/pkg/errors"
)

// LeadManager manages the dashboard's lead list. Leads are mutated only via
// status updates; the list itself is reconciled by reloading after each one.
type LeadManager struct {
	*Manager[model.Lead, port.LeadFields]

	store    port.LeadStore
	notifier Notifier
}

// SubmitStatusChange overwrites the lead's status then reloads the list.
// There is no transition ordering: any status may move to any other.
func (m *LeadManager) SubmitStatusChange(ctx context.Context, id model.LeadID, status model.LeadStatus) error {
	if !status.IsValid() {
		m.notifier.Error(ctx, "failed to update lead status")
		return errors.Errorf("invalid lead status %q", status)
	}

	if _, err := m.store.UpdateLeadStatus(ctx, id, status); err != nil {
		m.notifier.Error(ctx, "failed to update lead status")
		return errors.WithStack(err)
	}

	metrics.TotalLeadStatusChanges.Add(1)

	m.notifier.Success(ctx, "lead status updated")

	return errors.WithStack(m.Reload(ctx))
}

func NewLeadManager(store port.LeadStore, notifier Notifier) *LeadManager {
	if notifier == nil {
		notifier = DiscardNotifier
	}

	list := func(ctx context.Context) ([]model.Lead, error) {
		leads, err := store.QueryLeads(ctx, port.QueryOptions{})
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return leads, nil
	}

	create := func(ctx context.Context, fields port.LeadFields) (model.Lead, error) {
		lead, err := store.CreateLead(ctx, fields)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return lead, nil
	}

	return &LeadManager{
		Manager:  NewManager("lead", list, create, notifier),
		store:    store,
		notifier: notifier,
	}
}
