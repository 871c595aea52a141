package service

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
)

type recordingNotifier struct {
	mutex     sync.Mutex
	successes []string
	errors    []string
}

// Success implements Notifier.
func (n *recordingNotifier) Success(ctx context.Context, message string) {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.successes = append(n.successes, message)
}

// Error implements Notifier.
func (n *recordingNotifier) Error(ctx context.Context, message string) {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	n.errors = append(n.errors, message)
}

var _ Notifier = &recordingNotifier{}

func TestManagerReload(t *testing.T) {
	ctx := context.Background()

	items := []string{"first", "second"}

	list := func(ctx context.Context) ([]string, error) {
		return items, nil
	}

	manager := NewManager[string, string]("item", list, nil, nil)

	if e, g := 0, len(manager.Items()); e != g {
		t.Errorf("len(manager.Items()): expected %d, got %d", e, g)
	}

	if err := manager.Reload(ctx); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(manager.Items()); e != g {
		t.Fatalf("len(manager.Items()): expected %d, got %d", e, g)
	}

	if e, g := "first", manager.Items()[0]; e != g {
		t.Errorf("manager.Items()[0]: expected %q, got %q", e, g)
	}
}

func TestManagerReloadFailureKeepsSnapshot(t *testing.T) {
	ctx := context.Background()

	notifier := &recordingNotifier{}

	var fail bool
	list := func(ctx context.Context) ([]string, error) {
		if fail {
			return nil, errors.New("store unavailable")
		}

		return []string{"kept"}, nil
	}

	manager := NewManager[string, string]("item", list, nil, notifier)

	if err := manager.Reload(ctx); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	fail = true

	if err := manager.Reload(ctx); err == nil {
		t.Error("manager.Reload() should have failed")
	}

	if e, g := 1, len(manager.Items()); e != g {
		t.Errorf("len(manager.Items()): expected %d, got %d", e, g)
	}

	if e, g := 1, len(notifier.errors); e != g {
		t.Fatalf("len(notifier.errors): expected %d, got %d", e, g)
	}

	if e, g := "failed to load item", notifier.errors[0]; e != g {
		t.Errorf("notifier.errors[0]: expected %q, got %q", e, g)
	}
}

func TestManagerStaleReloadDiscarded(t *testing.T) {
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})

	var (
		mutex sync.Mutex
		calls int
	)

	list := func(ctx context.Context) ([]string, error) {
		mutex.Lock()
		calls++
		call := calls
		mutex.Unlock()

		if call == 1 {
			close(started)
			<-release
			return []string{"stale"}, nil
		}

		return []string{"fresh"}, nil
	}

	manager := NewManager[string, string]("item", list, nil, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := manager.Reload(ctx); err != nil {
			t.Errorf("%+v", errors.WithStack(err))
		}
	}()

	<-started

	if err := manager.Reload(ctx); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	close(release)
	<-done

	items := manager.Items()

	if e, g := 1, len(items); e != g {
		t.Fatalf("len(items): expected %d, got %d", e, g)
	}

	if e, g := "fresh", items[0]; e != g {
		t.Errorf("items[0]: expected %q, got %q", e, g)
	}
}

func TestManagerSubmitCreate(t *testing.T) {
	ctx := context.Background()

	notifier := &recordingNotifier{}

	var (
		mutex sync.Mutex
		items []string
	)

	list := func(ctx context.Context) ([]string, error) {
		mutex.Lock()
		defer mutex.Unlock()
		return append([]string{}, items...), nil
	}

	create := func(ctx context.Context, draft string) (string, error) {
		if draft == "" {
			return "", errors.New("empty draft")
		}

		mutex.Lock()
		defer mutex.Unlock()
		items = append(items, draft)

		return draft, nil
	}

	manager := NewManager[string, string]("item", list, create, notifier)

	if err := manager.SubmitCreate(ctx, ""); err == nil {
		t.Error("manager.SubmitCreate() should have failed")
	}

	if e, g := 1, len(notifier.errors); e != g {
		t.Fatalf("len(notifier.errors): expected %d, got %d", e, g)
	}

	if e, g := "failed to create item", notifier.errors[0]; e != g {
		t.Errorf("notifier.errors[0]: expected %q, got %q", e, g)
	}

	if e, g := 0, len(manager.Items()); e != g {
		t.Errorf("len(manager.Items()): expected %d, got %d", e, g)
	}

	if err := manager.SubmitCreate(ctx, "created"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(notifier.successes); e != g {
		t.Fatalf("len(notifier.successes): expected %d, got %d", e, g)
	}

	if e, g := "item created", notifier.successes[0]; e != g {
		t.Errorf("notifier.successes[0]: expected %q, got %q", e, g)
	}

	if e, g := 1, len(manager.Items()); e != g {
		t.Fatalf("len(manager.Items()): expected %d, got %d", e, g)
	}

	if e, g := "created", manager.Items()[0]; e != g {
		t.Errorf("manager.Items()[0]: expected %q, got %q", e, g)
	}
}
