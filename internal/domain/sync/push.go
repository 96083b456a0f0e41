package sync

import (
	"context"
	"fmt"
	gosync "sync"
	"time"

	"golang.org/x/exp/slog"
)

// WaitPolicy selects whether a mutation blocks on its remote phase.
type WaitPolicy int

const (
	// Detach returns once the local write is committed.
	Detach WaitPolicy = iota
	// Await blocks until the remote call settles and reports its error.
	Await
)

func (p WaitPolicy) String() string {
	if p == Await {
		return "await"
	}
	return "detach"
}

const defaultPushTimeout = 30 * time.Second

// Pusher runs remote pushes in the background. The caller's context only
// contributes values: cancelling it does not abort a push, and completion
// still updates the local store.
type Pusher struct {
	wg      gosync.WaitGroup
	timeout time.Duration
	log     *slog.Logger
}

func NewPusher(timeout time.Duration, log *slog.Logger) *Pusher {
	if timeout <= 0 {
		timeout = defaultPushTimeout
	}
	return &Pusher{
		timeout: timeout,
		log:     log.With("component", "pusher"),
	}
}

// Start launches fn in its own goroutine and returns a handle to its outcome.
func (p *Pusher) Start(ctx context.Context, op string, fn func(ctx context.Context) error) *Push {
	push := &Push{op: op, done: make(chan struct{})}

	pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer cancel()

		err := fn(pushCtx)
		if err != nil {
			p.log.Warn("push did not complete", "op", op, "error", err)
		} else {
			p.log.Debug("push completed", "op", op)
		}
		push.finish(err)
	}()

	return push
}

// Wait blocks until every push started so far has settled.
func (p *Pusher) Wait() {
	p.wg.Wait()
}

// Finished returns an already settled push, used when the remote phase is skipped.
func Finished(op string, err error) *Push {
	push := &Push{op: op, done: make(chan struct{})}
	push.finish(err)
	return push
}

// Push is the handle of a single remote phase.
type Push struct {
	op   string
	done chan struct{}
	err  error
}

func (p *Push) finish(err error) {
	p.err = err
	close(p.done)
}

func (p *Push) Op() string {
	return p.op
}

// Done is closed once the push has settled.
func (p *Push) Done() <-chan struct{} {
	return p.done
}

// Err returns the push error. It is only meaningful after Done is closed.
func (p *Push) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}

// Wait blocks until the push settles or ctx is done. Giving up on the wait
// leaves the push running.
func (p *Push) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Settle applies policy: Await waits and wraps a failure with ErrPushFailed,
// Detach returns immediately.
func (p *Push) Settle(ctx context.Context, policy WaitPolicy) error {
	if policy != Await {
		return nil
	}
	if err := p.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPushFailed, p.op, err)
	}
	return nil
}
