// Package action runs user-triggered asynchronous work where only the most
// recent trigger matters, and reports working/pending state for the UI.
package action

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/lite-lake/boardkit/internal/domain"
	"github.com/lite-lake/boardkit/internal/infrastructure/logger"
)

type Func[T any] func(ctx context.Context, input T) error

// State is what a form needs to render: Working as soon as a run starts,
// Pending only once it has been running longer than the configured delay.
type State struct {
	Working bool
	Pending bool
}

type Runner[T any] struct {
	fn       Func[T]
	delay    time.Duration
	onError  func(error)
	onChange func(State)

	mu     sync.Mutex
	gen    uint64
	seq    uint64
	cancel context.CancelFunc
	timer  *time.Timer
	state  State
	closed bool
	wg     sync.WaitGroup

	notifyMu  sync.Mutex
	published uint64
}

type Option[T any] func(*Runner[T])

func WithDelay[T any](d time.Duration) Option[T] {
	return func(r *Runner[T]) {
		r.delay = d
	}
}

func WithErrorHandler[T any](fn func(error)) Option[T] {
	return func(r *Runner[T]) {
		r.onError = fn
	}
}

// WithOnChange is called after every state transition, outside the runner's lock.
// A transition that loses the race to a newer one is not delivered, so the last
// call always carries the current state. fn must not call Trigger, Cancel or Close.
func WithOnChange[T any](fn func(State)) Option[T] {
	return func(r *Runner[T]) {
		r.onChange = fn
	}
}

func NewRunner[T any](fn Func[T], opts ...Option[T]) *Runner[T] {
	r := &Runner[T]{
		fn:    fn,
		delay: domain.DefaultPendingDelay,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Trigger cancels the run in flight, if any, and starts a new one with input.
func (r *Runner[T]) Trigger(ctx context.Context, input T) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.stopLocked()

	r.gen++
	gen := r.gen
	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.state = State{Working: true}
	r.timer = time.AfterFunc(r.delay, func() { r.markPending(gen) })
	seq, state := r.transitionLocked()
	r.wg.Add(1)
	r.mu.Unlock()

	r.publish(seq, state)

	go func() {
		defer r.wg.Done()
		err := r.fn(runCtx, input)
		r.finish(ctx, gen, err)
	}()
}

func (r *Runner[T]) stopLocked() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Runner[T]) markPending(gen uint64) {
	r.mu.Lock()
	if gen != r.gen || !r.state.Working {
		r.mu.Unlock()
		return
	}
	r.state.Pending = true
	seq, state := r.transitionLocked()
	r.mu.Unlock()

	r.publish(seq, state)
}

func (r *Runner[T]) finish(ctx context.Context, gen uint64, err error) {
	r.mu.Lock()
	if gen != r.gen {
		// superseded: its outcome is dropped
		r.mu.Unlock()
		return
	}
	r.stopLocked()
	r.state = State{}
	seq, state := r.transitionLocked()
	r.mu.Unlock()

	r.publish(seq, state)

	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	if r.onError != nil {
		r.onError(err)
		return
	}
	logger.FromContext(ctx).Component("action").Error("action failed", "error", err)
}

func (r *Runner[T]) transitionLocked() (uint64, State) {
	r.seq++
	return r.seq, r.state
}

// publish delivers s unless a later transition has already been delivered.
func (r *Runner[T]) publish(seq uint64, s State) {
	if r.onChange == nil {
		return
	}
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()
	if seq <= r.published {
		return
	}
	r.published = seq
	r.onChange(s)
}

func (r *Runner[T]) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Wait blocks until every started run has returned.
func (r *Runner[T]) Wait() {
	r.wg.Wait()
}

// Cancel abandons the run in flight, if any. Its outcome is dropped.
func (r *Runner[T]) Cancel() {
	r.mu.Lock()
	if r.state == (State{}) {
		r.mu.Unlock()
		return
	}
	r.gen++
	r.stopLocked()
	r.state = State{}
	seq, state := r.transitionLocked()
	r.mu.Unlock()

	r.publish(seq, state)
}

// Close cancels the run in flight and rejects further triggers.
func (r *Runner[T]) Close() {
	r.mu.Lock()
	r.closed = true
	r.gen++
	r.stopLocked()
	r.state = State{}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Runner[T]) Working() bool { return r.State().Working }

func (r *Runner[T]) Pending() bool { return r.State().Pending }
