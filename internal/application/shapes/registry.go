package shapes

import (
	"sort"
	"sync"

	"github.com/lite-lake/boardkit/internal/application/session"
	"github.com/lite-lake/boardkit/internal/domain/contract"
	"github.com/lite-lake/boardkit/internal/domain/entity"
)

type Registry struct {
	mu    sync.RWMutex
	utils map[string]ShapeUtil
}

func NewRegistry() *Registry {
	return &Registry{utils: make(map[string]ShapeUtil)}
}

// Defaults registers the card and iframe utils against hub.
func Defaults(hub *session.Hub, card entity.CardProps, iframe IframeSettings, opts ...Option) *Registry {
	r := NewRegistry()
	r.Register(NewCardShapeUtil(hub, card, opts...))
	r.Register(NewIframeShapeUtil(hub, iframe, opts...))
	return r
}

func (r *Registry) Register(u ShapeUtil) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.utils[u.Type()] = u
}

func (r *Registry) Get(shapeType string) (ShapeUtil, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.utils[shapeType]
	return u, ok
}

func (r *Registry) Definition(shapeType string) (contract.ShapeDefinition, bool) {
	u, ok := r.Get(shapeType)
	if !ok {
		return nil, false
	}
	return u, true
}

func (r *Registry) All() map[string]ShapeUtil {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make(map[string]ShapeUtil, len(r.utils))
	for k, v := range r.utils {
		result[k] = v
	}
	return result
}

func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.utils))
	for k := range r.utils {
		types = append(types, k)
	}
	sort.Strings(types)
	return types
}

// Close detaches every util from its session hub.
func (r *Registry) Close() {
	for _, u := range r.All() {
		u.Close()
	}
}
