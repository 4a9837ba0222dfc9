package relay

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/sharemail/pkg/async"
	"github.com/dmitrymomot/sharemail/pkg/email"
	"github.com/dmitrymomot/sharemail/pkg/logger"
)

// Mode selects the dispatch execution model.
type Mode string

const (
	// ModeSync calls the provider on the request goroutine.
	ModeSync Mode = "sync"
	// ModeAsync hands the call to a bounded worker pool and awaits it.
	ModeAsync Mode = "async"
)

// DispatchResult describes a message the provider accepted.
type DispatchResult struct {
	Success    bool
	StatusCode int
	MessageID  string
	Timestamp  time.Time
}

// Dispatcher submits rendered messages to a provider. It never retries.
type Dispatcher struct {
	sender  email.Sender
	pool    *async.Pool
	timeout time.Duration
	log     *slog.Logger
	now     func() time.Time
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithPool runs provider calls on pool. Without it calls are synchronous.
func WithPool(pool *async.Pool) DispatcherOption {
	return func(d *Dispatcher) {
		d.pool = pool
	}
}

// WithTimeout bounds each provider call. Zero disables the bound.
func WithTimeout(timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.timeout = timeout
	}
}

// WithDispatchLogger sets the logger for state transitions.
func WithDispatchLogger(log *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) DispatcherOption {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// NewDispatcher creates a Dispatcher for sender.
func NewDispatcher(sender email.Sender, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		log:    logger.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch sends msg and waits for the outcome.
//
// The provider call is detached from ctx cancellation: a caller that goes
// away does not abort a call already in flight. The configured timeout still
// applies. Every failure wraps ErrDispatchFailed.
func (d *Dispatcher) Dispatch(ctx context.Context, msg RenderedMessage) (DispatchResult, error) {
	callCtx := context.WithoutCancel(ctx)
	if d.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(callCtx, d.timeout)
		defer cancel()
	}

	d.log.DebugContext(ctx, "dispatch pending",
		logger.Event("dispatch_pending"),
		logger.Provider(d.sender.Name()),
		logger.Recipient(msg.To),
	)

	start := d.now()
	res, err := d.send(callCtx, msg.Message())
	if err != nil {
		d.log.DebugContext(ctx, "dispatch failed",
			logger.Event("dispatch_failed"),
			logger.Provider(d.sender.Name()),
			logger.Duration(d.now().Sub(start)),
			logger.Error(err),
		)
		return DispatchResult{}, fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}

	d.log.DebugContext(ctx, "dispatch complete",
		logger.Event("dispatch_complete"),
		logger.Provider(d.sender.Name()),
		logger.StatusCode(res.StatusCode),
		logger.MessageID(res.MessageID),
		logger.Duration(d.now().Sub(start)),
	)

	return DispatchResult{
		Success:    true,
		StatusCode: res.StatusCode,
		MessageID:  res.MessageID,
		Timestamp:  d.now().UTC(),
	}, nil
}

func (d *Dispatcher) send(ctx context.Context, msg email.Message) (email.Result, error) {
	if d.pool == nil {
		return d.sender.Send(ctx, msg)
	}
	return async.Submit(ctx, d.pool, msg, d.sender.Send).AwaitContext(ctx)
}
