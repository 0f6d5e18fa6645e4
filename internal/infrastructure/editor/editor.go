// Package editor is an in-memory canvas editor exposing the extension points
// the board customizations hook into.
package editor

import (
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/lite-lake/boardkit/internal/domain"
	"github.com/lite-lake/boardkit/internal/domain/contract"
	"github.com/lite-lake/boardkit/internal/domain/entity"
	"github.com/lite-lake/boardkit/internal/domain/valueobject"
	"github.com/lite-lake/boardkit/internal/infrastructure/logger"
)

var DefaultViewport = valueobject.Rect{W: 1920, H: 1080}

const minZoom = 0.1

type Editor struct {
	mu       sync.RWMutex
	defs     contract.ShapeDefinitions
	shapes   map[valueobject.ShapeID]*entity.Shape
	order    []valueobject.ShapeID
	selected []valueobject.ShapeID
	camera   valueobject.Camera
	viewport valueobject.Rect
	hook     contract.InitialMetaFunc
	now      func() time.Time
	log      *logger.Logger
}

type Option func(*Editor)

func WithViewport(r valueobject.Rect) Option {
	return func(e *Editor) {
		e.viewport = r
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Editor) {
		e.now = now
	}
}

func New(defs contract.ShapeDefinitions, opts ...Option) *Editor {
	e := &Editor{
		defs:     defs,
		shapes:   make(map[valueobject.ShapeID]*entity.Shape),
		camera:   valueobject.DefaultCamera(),
		viewport: DefaultViewport,
		now:      time.Now,
		log:      logger.Component("editor"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Editor) SetInitialMetaHook(fn contract.InitialMetaFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hook = fn
}

// GetInitialMetaForShape is the extension point consulted for every new shape.
// Without a hook it yields an empty object.
func (e *Editor) GetInitialMetaForShape(shape *entity.Shape) valueobject.Meta {
	e.mu.RLock()
	hook := e.hook
	e.mu.RUnlock()

	if hook == nil {
		return valueobject.Meta{}
	}
	return hook(shape)
}

// CreateShapes adds every partial or none of them.
func (e *Editor) CreateShapes(partials []entity.ShapePartial) error {
	created := make([]*entity.Shape, 0, len(partials))
	batch := make(map[valueobject.ShapeID]bool, len(partials))

	for _, p := range partials {
		shape, err := e.build(p)
		if err != nil {
			return err
		}
		if batch[shape.ID] {
			return fmt.Errorf("%w: %s", domain.ErrShapeExists, shape.ID)
		}
		batch[shape.ID] = true
		created = append(created, shape)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, s := range created {
		if _, ok := e.shapes[s.ID]; ok {
			return fmt.Errorf("%w: %s", domain.ErrShapeExists, s.ID)
		}
	}
	for _, s := range created {
		e.shapes[s.ID] = s
		e.order = append(e.order, s.ID)
		e.log.Debug("shape created", "shape_id", s.ID, "shape_type", s.Type, "type_name", s.Meta.TypeName())
	}
	return nil
}

func (e *Editor) build(p entity.ShapePartial) (*entity.Shape, error) {
	def, ok := e.defs.Definition(p.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownShapeType, p.Type)
	}

	id := p.ID
	if id == "" {
		id = valueobject.NewShapeID()
	}
	shape := &entity.Shape{
		ID:    id,
		Type:  p.Type,
		X:     p.X,
		Y:     p.Y,
		Props: def.DefaultProps().Merge(p.Props),
	}
	if err := def.Validate(shape.Props); err != nil {
		return nil, domain.WrapEntity("shape", string(id), err)
	}

	if p.Meta != nil {
		shape.Meta = p.Meta.Clone()
	} else {
		shape.Meta = e.GetInitialMetaForShape(shape)
	}
	return shape, nil
}

func (e *Editor) GetShape(id valueobject.ShapeID) (*entity.Shape, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s, ok := e.shapes[id]
	if !ok {
		return nil, false
	}
	return s.Clone(), true
}

// Shapes returns copies of all shapes in creation order.
func (e *Editor) Shapes() []*entity.Shape {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*entity.Shape, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.shapes[id].Clone())
	}
	return out
}

// DeleteShapes removes every listed shape or none of them.
func (e *Editor) DeleteShapes(ids ...valueobject.ShapeID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, id := range ids {
		if _, ok := e.shapes[id]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrShapeNotFound, id)
		}
	}
	for _, id := range ids {
		delete(e.shapes, id)
	}
	gone := func(id valueobject.ShapeID) bool { return slices.Contains(ids, id) }
	e.order = slices.DeleteFunc(e.order, gone)
	e.selected = slices.DeleteFunc(e.selected, gone)
	return nil
}

func (e *Editor) Select(ids ...valueobject.ShapeID) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, id := range ids {
		if _, ok := e.shapes[id]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrShapeNotFound, id)
		}
	}
	e.selected = slices.Clone(ids)
	return nil
}

func (e *Editor) SelectedShapes() []*entity.Shape {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*entity.Shape, 0, len(e.selected))
	for _, id := range e.selected {
		out = append(out, e.shapes[id].Clone())
	}
	return out
}

// ZoomToSelection centers the camera on the selection bounds and zooms out
// until they fit the viewport. It never zooms in past 100%.
func (e *Editor) ZoomToSelection(opts valueobject.ZoomOptions) {
	e.mu.Lock()
	defer e.mu.Unlock()

	bounds, ok := e.selectionBoundsLocked()
	if !ok {
		return
	}

	zoom := 1.0
	if bounds.W > 0 && bounds.H > 0 {
		zoom = math.Min(e.viewport.W/bounds.W, e.viewport.H/bounds.H)
	}
	zoom = math.Max(minZoom, math.Min(1, zoom))

	center := bounds.Center()
	e.camera = valueobject.Camera{X: center.X, Y: center.Y, Z: zoom, Duration: opts.Duration}
	e.log.Debug("zoomed to selection", "x", center.X, "y", center.Y, "z", zoom, "animation", opts.Duration)
}

func (e *Editor) selectionBoundsLocked() (valueobject.Rect, bool) {
	var bounds valueobject.Rect
	found := false
	for _, id := range e.selected {
		s := e.shapes[id]
		def, ok := e.defs.Definition(s.Type)
		if !ok {
			continue
		}
		g := def.Geometry(s)
		g.X += s.X
		g.Y += s.Y
		if !found {
			bounds, found = g, true
			continue
		}
		bounds = bounds.Union(g)
	}
	return bounds, found
}

func (e *Editor) Camera() valueobject.Camera {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.camera
}

// ResizeShape applies a resize gesture through the shape's definition and
// refreshes meta.updateAt when the shape tracks it.
func (e *Editor) ResizeShape(id valueobject.ShapeID, info valueobject.ResizeInfo) (*entity.Shape, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.shapes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrShapeNotFound, id)
	}
	def, ok := e.defs.Definition(s.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownShapeType, s.Type)
	}
	if !def.CanResize() {
		return nil, fmt.Errorf("shape %s of type %s cannot be resized", id, s.Type)
	}

	out := def.OnResize(s.Clone(), info)
	if err := def.Validate(out.Props); err != nil {
		return nil, domain.WrapEntity("shape", string(id), err)
	}
	if out.Meta != nil {
		out.Meta.Touch(e.now())
	}
	e.shapes[id] = out
	return out.Clone(), nil
}

func (e *Editor) Snapshot() *entity.Document {
	e.mu.RLock()
	defer e.mu.RUnlock()
	doc := &entity.Document{
		Shapes:   make([]entity.Shape, 0, len(e.order)),
		Camera:   e.camera,
		Selected: slices.Clone(e.selected),
	}
	for _, id := range e.order {
		doc.Shapes = append(doc.Shapes, *e.shapes[id].Clone())
	}
	return doc
}

// LoadSnapshot replaces the editor contents with doc. Stored metadata is kept
// as is; the initial-meta hook is not consulted.
func (e *Editor) LoadSnapshot(doc *entity.Document) error {
	if doc == nil {
		doc = entity.NewDocument()
	}
	if err := doc.Validate(); err != nil {
		return err
	}
	for i := range doc.Shapes {
		if _, ok := e.defs.Definition(doc.Shapes[i].Type); !ok {
			return domain.WrapEntity("shape", string(doc.Shapes[i].ID),
				fmt.Errorf("%w: %q", domain.ErrUnknownShapeType, doc.Shapes[i].Type))
		}
	}

	shapes := make(map[valueobject.ShapeID]*entity.Shape, len(doc.Shapes))
	order := make([]valueobject.ShapeID, 0, len(doc.Shapes))
	for i := range doc.Shapes {
		s := doc.Shapes[i].Clone()
		shapes[s.ID] = s
		order = append(order, s.ID)
	}

	camera := doc.Camera
	if camera.Z == 0 {
		camera.Z = 1
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.shapes = shapes
	e.order = order
	e.selected = slices.Clone(doc.Selected)
	e.camera = camera
	return nil
}
