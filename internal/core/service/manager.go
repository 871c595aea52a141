package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"
)

type ListFunc[R any] func(ctx context.Context) ([]R, error)

type CreateFunc[R any, D any] func(ctx context.Context, draft D) (R, error)

// Manager owns a cached list of one resource kind and reconciles it after
// every mutation by reloading from the store. The local list is never
// optimistically mutated: the cache reflects only post-reload truth, so no
// client-visible state can diverge from the store.
type Manager[R any, D any] struct {
	kind     string
	list     ListFunc[R]
	create   CreateFunc[R, D]
	notifier Notifier

	mutex      sync.Mutex
	generation uint64
	items      []R
	loading    bool
}

// Items returns the last successfully loaded snapshot.
func (m *Manager[R, D]) Items() []R {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	items := make([]R, len(m.items))
	copy(items, m.items)

	return items
}

// IsLoading reports whether the latest reload is still in flight.
func (m *Manager[R, D]) IsLoading() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.loading
}

// Reload replaces the cached list wholesale with a fresh load from the store.
// Overlapping reloads are guarded by a generation counter: a result belonging
// to a superseded call is discarded, so the cache can never regress to stale
// data.
func (m *Manager[R, D]) Reload(ctx context.Context) error {
	m.mutex.Lock()
	m.generation++
	generation := m.generation
	m.loading = true
	m.mutex.Unlock()

	items, err := m.list(ctx)

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if generation != m.generation {
		// Superseded by a later reload, discard the result.
		return nil
	}

	m.loading = false

	if err != nil {
		m.notifier.Error(ctx, fmt.Sprintf("failed to load %s", m.kind))
		return errors.WithStack(err)
	}

	m.items = items

	return nil
}

// SubmitCreate sends the draft to the store then reloads. On failure the
// error is reported and returned so the caller can preserve the in-progress
// form state for retry.
func (m *Manager[R, D]) SubmitCreate(ctx context.Context, draft D) error {
	if m.create == nil {
		return errors.Errorf("%s manager does not support create", m.kind)
	}

	if _, err := m.create(ctx, draft); err != nil {
		m.notifier.Error(ctx, fmt.Sprintf("failed to create %s", m.kind))
		return errors.WithStack(err)
	}

	m.notifier.Success(ctx, fmt.Sprintf("%s created", m.kind))

	return errors.WithStack(m.Reload(ctx))
}

func NewManager[R any, D any](kind string, list ListFunc[R], create CreateFunc[R, D], notifier Notifier) *Manager[R, D] {
	if notifier == nil {
		notifier = DiscardNotifier
	}

	return &Manager[R, D]{
		kind:     kind,
		list:     list,
		create:   create,
		notifier: notifier,
		items:    make([]R, 0),
	}
}
