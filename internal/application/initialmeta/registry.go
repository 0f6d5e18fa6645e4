// Package initialmeta chains independently registered handlers that decide the
// metadata a shape receives when the host editor creates it.
package initialmeta

import (
	"sync"
	"time"

	"github.com/lite-lake/boardkit/internal/domain/entity"
	"github.com/lite-lake/boardkit/internal/domain/valueobject"
)

// Handler returns the metadata for shapes it recognizes and nil for everything else.
// A non-nil empty Meta is a match.
type Handler func(shape *entity.Shape) valueobject.Meta

type entry struct {
	action Handler
	order  int
}

type Registry struct {
	mu      sync.RWMutex
	entries []*entry
	now     func() time.Time
}

type Option func(*Registry)

func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

func New(opts ...Option) *Registry {
	r := &Registry{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register appends h to the chain and returns a function that removes it again.
// The optional order tag is recorded but registration order alone decides precedence.
// The remover reports whether this call actually removed the handler.
func (r *Registry) Register(h Handler, order ...int) func() bool {
	if h == nil {
		return func() bool { return false }
	}
	e := &entry{action: h}
	if len(order) > 0 {
		e.order = order[0]
	}

	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()

	return func() bool {
		return r.remove(e)
	}
}

func (r *Registry) remove(e *entry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, v := range r.entries {
		if v == e {
			r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Resolve asks each handler in registration order and returns the first match,
// or Default when none matches. Handlers see a snapshot of the chain, so they may
// register, unregister or clear without affecting the resolution in progress.
// A panicking handler is not recovered.
func (r *Registry) Resolve(shape *entity.Shape) valueobject.Meta {
	r.mu.RLock()
	snapshot := make([]*entry, len(r.entries))
	copy(snapshot, r.entries)
	r.mu.RUnlock()

	for _, e := range snapshot {
		if res := e.action(shape); res != nil {
			return res
		}
	}
	return r.Default()
}

func (r *Registry) Default() valueobject.Meta {
	return valueobject.Meta{valueobject.MetaKeyCreateAt: valueobject.NowMillis(r.now())}
}

// Clear drops every handler without calling any of them.
func (r *Registry) Clear() {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Orders lists the order tags in chain order.
func (r *Registry) Orders() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]int, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.order
	}
	return out
}
