package engine

import (
	"context"
	"sync"
	"time"
)

// Runner owns the two one-second tickers that drive an Engine. It must be
// stopped by whoever started it; Stop is safe to call more than once and from
// deferred cleanup on every exit path.
type Runner struct {
	engine          *Engine
	restInterval    time.Duration
	elapsedInterval time.Duration
	onTick          func(Snapshot)
	onExpire        func()

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithInterval sets both tick intervals. Tests use short intervals.
func WithInterval(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.restInterval = d
			r.elapsedInterval = d
		}
	}
}

// WithOnTick registers a hook called with a fresh snapshot after every tick.
func WithOnTick(fn func(Snapshot)) RunnerOption {
	return func(r *Runner) { r.onTick = fn }
}

// WithOnExpire registers a hook called when a rest period ends.
func WithOnExpire(fn func()) RunnerOption {
	return func(r *Runner) { r.onExpire = fn }
}

// Start launches the tickers. They run until Stop is called or ctx is done.
func Start(ctx context.Context, e *Engine, opts ...RunnerOption) *Runner {
	ctx, cancel := context.WithCancel(ctx)
	r := &Runner{
		engine:          e,
		restInterval:    time.Second,
		elapsedInterval: time.Second,
		cancel:          cancel,
		done:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}

	restTicker := time.NewTicker(r.restInterval)
	elapsedTicker := time.NewTicker(r.elapsedInterval)
	go r.loop(ctx, restTicker, elapsedTicker)
	return r
}

func (r *Runner) loop(ctx context.Context, rest, elapsed *time.Ticker) {
	defer close(r.done)
	defer rest.Stop()
	defer elapsed.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-rest.C:
			res := r.engine.TickRest()
			if res.Expired && r.onExpire != nil {
				r.onExpire()
			}
			r.publish()
		case <-elapsed.C:
			r.engine.TickElapsed()
			r.publish()
		}
	}
}

func (r *Runner) publish() {
	if r.onTick != nil {
		r.onTick(r.engine.Snapshot())
	}
}

// Stop releases both tickers and waits for the loop to exit.
func (r *Runner) Stop() {
	r.stopOnce.Do(r.cancel)
	<-r.done
}

// Done is closed once the runner has fully stopped.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}
