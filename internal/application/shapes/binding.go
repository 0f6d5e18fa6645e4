package shapes

import (
	"sync"

	"github.com/lite-lake/boardkit/internal/application/initialmeta"
	"github.com/lite-lake/boardkit/internal/application/session"
	"github.com/lite-lake/boardkit/internal/infrastructure/logger"
)

// metaBinding keeps one handler registered on whichever registry the hub
// currently exposes and withdraws it when the session stream ends.
type metaBinding struct {
	mu         sync.Mutex
	unregister func() bool
	cancel     func()
	log        *logger.Logger
}

func bindInitialMeta(hub *session.Hub, shapeType string, handler initialmeta.Handler) *metaBinding {
	b := &metaBinding{log: logger.Component("shapes").With("shape_type", shapeType)}
	cancel := hub.Subscribe(session.Observer{
		OnSession: func(s *session.Session) {
			b.mu.Lock()
			defer b.mu.Unlock()
			if b.unregister != nil {
				b.unregister()
			}
			b.unregister = s.Meta.Register(handler)
			b.log.Debug("initial meta handler registered", "session", s.Seq)
		},
		OnEnd: func(err error) {
			if err != nil {
				b.log.Debug("session ended with error", "error", err)
			}
			b.release()
		},
	})

	b.mu.Lock()
	b.cancel = cancel
	b.mu.Unlock()
	return b
}

func (b *metaBinding) release() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.unregister == nil {
		return false
	}
	removed := b.unregister()
	b.unregister = nil
	return removed
}

func (b *metaBinding) close() {
	b.mu.Lock()
	cancel := b.cancel
	b.cancel = nil
	b.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	b.release()
}
