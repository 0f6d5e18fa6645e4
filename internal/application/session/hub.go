// Package session publishes the currently mounted host editor to the board
// modules and owns the initial-meta registry bound to it.
package session

import (
	"sync"

	"github.com/lite-lake/boardkit/internal/application/initialmeta"
	"github.com/lite-lake/boardkit/internal/domain"
	"github.com/lite-lake/boardkit/internal/domain/contract"
	"github.com/lite-lake/boardkit/internal/infrastructure/logger"
)

// Session is one mounted editor together with the registry installed on it.
type Session struct {
	Seq    uint64
	Editor contract.Editor
	Meta   *initialmeta.Registry
}

// Observer receives every new session and, once, the end of the stream.
// err is nil when the hub was closed normally.
type Observer struct {
	OnSession func(s *Session)
	OnEnd     func(err error)
}

type subscriber struct {
	id  int
	obs Observer

	mu      sync.Mutex
	lastSeq uint64
	ended   bool
}

func (s *subscriber) deliver(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended || sess.Seq <= s.lastSeq {
		return
	}
	s.lastSeq = sess.Seq
	if s.obs.OnSession != nil {
		s.obs.OnSession(sess)
	}
}

func (s *subscriber) end(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return
	}
	s.ended = true
	if s.obs.OnEnd != nil {
		s.obs.OnEnd(err)
	}
}

type Hub struct {
	emitMu sync.Mutex

	mu          sync.Mutex
	current     *Session
	seq         uint64
	subscribers []*subscriber
	nextID      int
	closed      bool
	endErr      error

	registryOpts []initialmeta.Option
	log          *logger.Logger
}

type Option func(*Hub)

func WithRegistryOptions(opts ...initialmeta.Option) Option {
	return func(h *Hub) {
		h.registryOpts = append(h.registryOpts, opts...)
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(h *Hub) {
		h.log = l
	}
}

func NewHub(opts ...Option) *Hub {
	h := &Hub{log: logger.Component("session")}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SetEditor publishes ed as the current editor. Nil editors and the editor
// already current are ignored. A new editor clears the previous registry and
// installs a fresh one as ed's initial-meta hook before observers hear about it.
func (h *Hub) SetEditor(ed contract.Editor) {
	if ed == nil {
		h.log.Debug("ignoring nil editor")
		return
	}

	h.emitMu.Lock()
	defer h.emitMu.Unlock()

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		h.log.Debug("editor set after close", "error", domain.ErrSessionClosed)
		return
	}
	if h.current != nil && h.current.Editor == ed {
		h.mu.Unlock()
		return
	}
	prev := h.current
	h.seq++
	next := &Session{
		Seq:    h.seq,
		Editor: ed,
		Meta:   initialmeta.New(h.registryOpts...),
	}
	h.current = next
	subs := h.snapshotLocked()
	h.mu.Unlock()

	if prev != nil {
		prev.Meta.Clear()
	}
	ed.SetInitialMetaHook(next.Meta.Resolve)
	h.log.Debug("session started", "seq", next.Seq, "observers", len(subs))

	for _, sub := range subs {
		sub.deliver(next)
	}
}

// Subscribe registers obs and replays the current session to it, if any.
// The returned function detaches obs without calling OnEnd.
func (h *Hub) Subscribe(obs Observer) func() {
	sub := &subscriber{obs: obs}

	h.mu.Lock()
	if h.closed {
		endErr := h.endErr
		h.mu.Unlock()
		sub.end(endErr)
		return func() {}
	}
	h.nextID++
	sub.id = h.nextID
	h.subscribers = append(h.subscribers, sub)
	current := h.current
	h.mu.Unlock()

	if current != nil {
		sub.deliver(current)
	}

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for i, s := range h.subscribers {
			if s == sub {
				h.subscribers = append(h.subscribers[:i:i], h.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Close completes the stream: observers get OnEnd(nil) and the registry is cleared.
func (h *Hub) Close() {
	h.finish(nil)
}

// Fail ends the stream with err.
func (h *Hub) Fail(err error) {
	h.finish(err)
}

func (h *Hub) finish(err error) {
	h.emitMu.Lock()
	defer h.emitMu.Unlock()

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	h.endErr = err
	current := h.current
	h.current = nil
	subs := h.snapshotLocked()
	h.subscribers = nil
	h.mu.Unlock()

	for _, sub := range subs {
		sub.end(err)
	}
	if current != nil {
		current.Meta.Clear()
	}
	if err != nil {
		h.log.Warn("session stream failed", "error", err)
	} else {
		h.log.Debug("session stream closed")
	}
}

func (h *Hub) snapshotLocked() []*subscriber {
	subs := make([]*subscriber, len(h.subscribers))
	copy(subs, h.subscribers)
	return subs
}

func (h *Hub) Current() *Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Editor returns the mounted editor.
func (h *Hub) Editor() (contract.Editor, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, domain.ErrSessionClosed
	}
	if h.current == nil {
		return nil, domain.ErrNoEditor
	}
	return h.current.Editor, nil
}

func (h *Hub) Registry() (*initialmeta.Registry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, domain.ErrSessionClosed
	}
	if h.current == nil {
		return nil, domain.ErrNoEditor
	}
	return h.current.Meta, nil
}

func (h *Hub) Closed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

func (h *Hub) ObserverCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}
