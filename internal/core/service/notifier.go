package service

import "context"

// Notifier receives fire-and-forget user-facing outcome messages. The HTTP
// layer backs it with session flashes; tests use a recording implementation.
// Implementations need not be safe for concurrent use: services call a
// Notifier from a single goroutine only.
type Notifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

type discardNotifier struct{}

// Success implements Notifier.
func (discardNotifier) Success(ctx context.Context, message string) {}

// Error implements Notifier.
func (discardNotifier) Error(ctx context.Context, message string) {}

var _ Notifier = discardNotifier{}

// DiscardNotifier drops every message.
var DiscardNotifier Notifier = discardNotifier{}
