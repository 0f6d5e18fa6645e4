package action

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lite-lake/boardkit/internal/infrastructure/logger"
)

func TestRunner_WorkingThenIdle(t *testing.T) {
	release := make(chan struct{})
	r := NewRunner(func(ctx context.Context, _ string) error {
		<-release
		return nil
	}, WithDelay[string](time.Hour))

	r.Trigger(context.Background(), "a")
	if s := r.State(); !s.Working || s.Pending {
		t.Errorf("State() = %+v, want working and not pending", s)
	}

	close(release)
	r.Wait()
	if s := r.State(); s.Working || s.Pending {
		t.Errorf("State() = %+v, want idle", s)
	}
}

func TestRunner_PendingAfterDelay(t *testing.T) {
	release := make(chan struct{})
	pending := make(chan struct{}, 1)
	r := NewRunner(func(ctx context.Context, _ int) error {
		<-release
		return nil
	},
		WithDelay[int](5*time.Millisecond),
		WithOnChange[int](func(s State) {
			if s.Pending {
				select {
				case pending <- struct{}{}:
				default:
				}
			}
		}),
	)

	r.Trigger(context.Background(), 1)

	select {
	case <-pending:
	case <-time.After(2 * time.Second):
		t.Fatal("pending was never reported")
	}
	close(release)
	r.Wait()
	if r.State().Pending {
		t.Error("pending should reset when the run finishes")
	}
}

func TestRunner_FastRunNeverPending(t *testing.T) {
	var sawPending atomic.Bool
	r := NewRunner(func(ctx context.Context, _ int) error { return nil },
		WithDelay[int](time.Hour),
		WithOnChange[int](func(s State) {
			if s.Pending {
				sawPending.Store(true)
			}
		}),
	)

	r.Trigger(context.Background(), 1)
	r.Wait()
	if sawPending.Load() {
		t.Error("a run faster than the delay must not report pending")
	}
}

func TestRunner_LatestTriggerWins(t *testing.T) {
	var (
		mu        sync.Mutex
		cancelled []int
		completed []int
	)
	started := make(chan struct{})

	r := NewRunner(func(ctx context.Context, n int) error {
		if n == 1 {
			close(started)
			<-ctx.Done()
			mu.Lock()
			cancelled = append(cancelled, n)
			mu.Unlock()
			return ctx.Err()
		}
		mu.Lock()
		completed = append(completed, n)
		mu.Unlock()
		return nil
	}, WithDelay[int](time.Hour))

	r.Trigger(context.Background(), 1)
	<-started
	r.Trigger(context.Background(), 2)
	r.Wait()

	if len(cancelled) != 1 || cancelled[0] != 1 {
		t.Errorf("cancelled = %v, want [1]", cancelled)
	}
	if len(completed) != 1 || completed[0] != 2 {
		t.Errorf("completed = %v, want [2]", completed)
	}
	if r.State().Working {
		t.Error("runner should be idle after the latest run")
	}
}

func TestRunner_ErrorHandler(t *testing.T) {
	boom := errors.New("boom")
	var got error
	r := NewRunner(func(ctx context.Context, _ int) error { return boom },
		WithErrorHandler[int](func(err error) { got = err }),
	)

	r.Trigger(context.Background(), 1)
	r.Wait()

	if !errors.Is(got, boom) {
		t.Errorf("error handler got %v, want %v", got, boom)
	}
}

func TestRunner_SupersededErrorDropped(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{})
	r := NewRunner(func(ctx context.Context, n int) error {
		if n == 1 {
			close(started)
			<-ctx.Done()
			return errors.New("late failure")
		}
		return nil
	}, WithErrorHandler[int](func(error) { calls.Add(1) }))

	r.Trigger(context.Background(), 1)
	<-started
	r.Trigger(context.Background(), 2)
	r.Wait()

	if calls.Load() != 0 {
		t.Errorf("error handler called %d times for a superseded run", calls.Load())
	}
}

func TestRunner_Close(t *testing.T) {
	var runs atomic.Int32
	r := NewRunner(func(ctx context.Context, _ int) error {
		runs.Add(1)
		<-ctx.Done()
		return ctx.Err()
	})

	r.Trigger(context.Background(), 1)
	r.Close()
	r.Trigger(context.Background(), 2)
	r.Wait()

	if runs.Load() != 1 {
		t.Errorf("runs = %d, triggers after Close() must be ignored", runs.Load())
	}
}

func TestRunner_Cancel(t *testing.T) {
	var handled atomic.Int32
	started := make(chan struct{})
	r := NewRunner(func(ctx context.Context, _ int) error {
		close(started)
		<-ctx.Done()
		return errors.New("interrupted")
	}, WithErrorHandler[int](func(error) { handled.Add(1) }))

	r.Trigger(context.Background(), 1)
	<-started
	r.Cancel()
	if r.Working() {
		t.Error("Working() should be false right after Cancel()")
	}
	r.Wait()

	if handled.Load() != 0 {
		t.Error("a cancelled run must not report its error")
	}
	r.Cancel()
}

func TestRunner_StaleTransitionDropped(t *testing.T) {
	var got []State
	r := NewRunner(func(ctx context.Context, _ string) error { return nil },
		WithOnChange[string](func(s State) { got = append(got, s) }),
	)

	// a pending mark captured before finish but delivered after it
	r.publish(2, State{})
	r.publish(1, State{Working: true, Pending: true})

	if len(got) != 1 || got[0] != (State{}) {
		t.Errorf("delivered = %+v, want only the idle state", got)
	}
}

func TestRunner_LastDeliveredStateIsCurrent(t *testing.T) {
	var mu sync.Mutex
	var last State
	r := NewRunner(func(ctx context.Context, _ int) error { return nil },
		WithDelay[int](time.Nanosecond),
		WithOnChange[int](func(s State) {
			mu.Lock()
			last = s
			mu.Unlock()
		}),
	)

	for i := 0; i < 200; i++ {
		r.Trigger(context.Background(), i)
		r.Wait()
	}
	// let any fired pending timers run out
	time.Sleep(20 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if last != (State{}) {
		t.Errorf("last delivered state = %+v, want idle", last)
	}
	if s := r.State(); s != (State{}) {
		t.Errorf("State() = %+v, want idle", s)
	}
}

func TestRunner_FailureLoggedWithOperation(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&logger.Config{Format: "json", Output: &buf})
	ctx := logger.WithOperation(logger.ContextWithLogger(context.Background(), log), "toolbar.submit")

	r := NewRunner(func(ctx context.Context, _ string) error {
		return errors.New("boom")
	})
	r.Trigger(ctx, "a")
	r.Wait()

	out := buf.String()
	for _, want := range []string{`"msg":"action failed"`, `"operation":"toolbar.submit"`, `"component":"action"`, `"error":"boom"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
}
