// Package dispatch runs provider calls off the interactive surface and
// delivers exactly one result per accepted submission.
package dispatch

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/kmdapp/kmd/internal/provider"
)

var (
	// ErrEmptyQuery rejects blank submissions before any provider call.
	ErrEmptyQuery = errors.New("empty query")

	// ErrPending rejects a submission while another is in flight.
	ErrPending = errors.New("request already pending")

	// ErrShutdown reports that the submission was a kill phrase: the
	// shutdown hook ran and no provider call was made.
	ErrShutdown = errors.New("shutdown requested")
)

// killPhrases terminate the application instead of reaching a backend.
var killPhrases = map[string]bool{
	"exit": true,
	"quit": true,
}

// Dispatcher owns at most one outstanding provider call. A second
// submission while one is pending is rejected, which keeps result delivery
// trivially ordered: there is never more than one result on the way.
type Dispatcher struct {
	providerFn func() provider.Provider
	sink       func(provider.Result)
	shutdown   func()

	mu      sync.Mutex
	pending bool
	gen     uint64
	cancel  context.CancelFunc
}

// New builds a dispatcher. providerFn is invoked once per accepted
// submission, so each request sees a point-in-time snapshot of the
// configuration. sink receives exactly one Result per accepted submission;
// shutdown fires on a kill phrase and may be nil.
func New(providerFn func() provider.Provider, sink func(provider.Result), shutdown func()) *Dispatcher {
	return &Dispatcher{
		providerFn: providerFn,
		sink:       sink,
		shutdown:   shutdown,
	}
}

// Submit trims and validates query, then runs the provider call on its own
// goroutine. The caller gets an immediate answer: nil means a result will
// reach the sink unless CancelPending intervenes.
func (d *Dispatcher) Submit(query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return ErrEmptyQuery
	}
	if killPhrases[strings.ToLower(query)] {
		if d.shutdown != nil {
			d.shutdown()
		}
		return ErrShutdown
	}

	d.mu.Lock()
	if d.pending {
		d.mu.Unlock()
		return ErrPending
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.pending = true
	d.gen++
	gen := d.gen
	d.cancel = cancel
	p := d.providerFn()
	d.mu.Unlock()

	go func() {
		defer cancel()
		result := provider.Run(ctx, p, query)

		d.mu.Lock()
		stale := gen != d.gen
		if !stale {
			d.pending = false
			d.cancel = nil
		}
		d.mu.Unlock()

		// A stale generation means CancelPending ran while the call was
		// in flight; its result must not reach a dismissed surface.
		if stale {
			return
		}
		d.sink(result)
	}()
	return nil
}

// CancelPending cancels the in-flight call, if any, and discards its result
// should one still arrive. Safe to call when nothing is pending.
func (d *Dispatcher) CancelPending() {
	d.mu.Lock()
	cancel := d.cancel
	d.cancel = nil
	d.pending = false
	d.gen++ // invalidates the in-flight generation
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Busy reports whether a provider call is outstanding.
func (d *Dispatcher) Busy() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}
