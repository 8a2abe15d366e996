package dashboard

import (
	"context"
	"sync"
	"time"
)

// Poller is an explicitly scoped repeating timer: Start acquires the
// timer, Stop releases it and waits for the in-flight tick to finish.
// Every background loop in the service (session re-validation, dashboard
// auto-refresh) runs through one of these so nothing leaks when the owner
// shuts down.
type Poller struct {
	Interval time.Duration
	Tick     func(ctx context.Context)

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

func NewPoller(interval time.Duration, tick func(ctx context.Context)) *Poller {
	return &Poller{Interval: interval, Tick: tick}
}

// Start begins ticking. Starting an already running poller is a no-op, as
// is starting one with a non-positive interval (polling disabled).
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running || p.Interval <= 0 {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})
	p.running = true

	go func(done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(p.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.Tick(ctx)
			}
		}
	}(p.done)
}

// Stop cancels the loop and blocks until it has exited. Stopping a
// stopped poller is a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	cancel()
	<-done
}

func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}
