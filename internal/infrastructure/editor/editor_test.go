package editor

import (
	"errors"
	"testing"
	"time"

	"github.com/lite-lake/boardkit/internal/application/session"
	"github.com/lite-lake/boardkit/internal/application/shapes"
	"github.com/lite-lake/boardkit/internal/domain"
	"github.com/lite-lake/boardkit/internal/domain/entity"
	"github.com/lite-lake/boardkit/internal/domain/valueobject"
)

var (
	createdAt = time.UnixMilli(1_000)
	resizedAt = time.UnixMilli(5_000)
)

func mount(t *testing.T) (*Editor, *session.Hub) {
	t.Helper()
	hub := session.NewHub()
	utils := shapes.Defaults(hub, entity.CardProps{}, shapes.IframeSettings{},
		shapes.WithClock(func() time.Time { return createdAt }))
	ed := New(utils, WithClock(func() time.Time { return resizedAt }))
	hub.SetEditor(ed)
	t.Cleanup(hub.Close)
	return ed, hub
}

func TestEditor_CreateShapesUsesInitialMeta(t *testing.T) {
	ed, _ := mount(t)

	err := ed.CreateShapes([]entity.ShapePartial{
		{ID: "shape:card", Type: domain.ShapeTypeCard},
		{ID: "shape:frame", Type: domain.ShapeTypeIframe, Props: entity.Props{"url": "https://example.com"}},
	})
	if err != nil {
		t.Fatalf("CreateShapes() unexpected error = %v", err)
	}

	card, ok := ed.GetShape("shape:card")
	if !ok {
		t.Fatal("card not created")
	}
	if card.Meta.TypeName() != shapes.CardTypeName {
		t.Errorf("card typeName = %q", card.Meta.TypeName())
	}
	if w, _ := card.Props.Float("w"); w != domain.DefaultCardWidth {
		t.Errorf("card w = %g, want default", w)
	}

	frame, _ := ed.GetShape("shape:frame")
	if frame.Meta.TypeName() != shapes.IframeTypeName {
		t.Errorf("iframe typeName = %q", frame.Meta.TypeName())
	}
	if frame.Props.String("url") != "https://example.com" {
		t.Errorf("iframe url = %q", frame.Props.String("url"))
	}
	if v, _ := frame.Meta.Int64(valueobject.MetaKeyUpdateAt); v != createdAt.UnixMilli() {
		t.Errorf("iframe updateAt = %d", v)
	}
}

func TestEditor_CreateShapesExplicitMeta(t *testing.T) {
	ed, _ := mount(t)

	meta := valueobject.Meta{"imported": true}
	if err := ed.CreateShapes([]entity.ShapePartial{{ID: "shape:a", Type: domain.ShapeTypeCard, Meta: meta}}); err != nil {
		t.Fatalf("CreateShapes() unexpected error = %v", err)
	}
	got, _ := ed.GetShape("shape:a")
	if got.Meta["imported"] != true || got.Meta.TypeName() != "" {
		t.Errorf("explicit meta should bypass the hook, got %v", got.Meta)
	}
}

func TestEditor_CreateShapesErrors(t *testing.T) {
	tests := []struct {
		name     string
		partials []entity.ShapePartial
		wantErr  error
	}{
		{
			name:     "unknown type",
			partials: []entity.ShapePartial{{Type: "geo"}},
			wantErr:  domain.ErrUnknownShapeType,
		},
		{
			name:     "invalid url",
			partials: []entity.ShapePartial{{Type: domain.ShapeTypeIframe, Props: entity.Props{"url": "ftp://x"}}},
			wantErr:  domain.ErrInvalidURL,
		},
		{
			name: "duplicate in batch",
			partials: []entity.ShapePartial{
				{ID: "shape:dup", Type: domain.ShapeTypeCard},
				{ID: "shape:dup", Type: domain.ShapeTypeCard},
			},
			wantErr: domain.ErrShapeExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed, _ := mount(t)
			err := ed.CreateShapes(tt.partials)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateShapes() error = %v, want %v", err, tt.wantErr)
			}
			if n := len(ed.Shapes()); n != 0 {
				t.Errorf("failed batch left %d shapes behind", n)
			}
		})
	}
}

func TestEditor_CreateShapesExistingID(t *testing.T) {
	ed, _ := mount(t)
	_ = ed.CreateShapes([]entity.ShapePartial{{ID: "shape:a", Type: domain.ShapeTypeCard}})

	err := ed.CreateShapes([]entity.ShapePartial{
		{ID: "shape:b", Type: domain.ShapeTypeCard},
		{ID: "shape:a", Type: domain.ShapeTypeCard},
	})
	if !errors.Is(err, domain.ErrShapeExists) {
		t.Fatalf("CreateShapes() error = %v, want %v", err, domain.ErrShapeExists)
	}
	if _, ok := ed.GetShape("shape:b"); ok {
		t.Error("batch should be all or nothing")
	}
}

func TestEditor_GeneratesIDs(t *testing.T) {
	ed, _ := mount(t)
	_ = ed.CreateShapes([]entity.ShapePartial{{Type: domain.ShapeTypeCard}, {Type: domain.ShapeTypeCard}})

	all := ed.Shapes()
	if len(all) != 2 {
		t.Fatalf("got %d shapes, want 2", len(all))
	}
	if all[0].ID == "" || all[0].ID == all[1].ID {
		t.Errorf("generated ids should be unique, got %s and %s", all[0].ID, all[1].ID)
	}
}

func TestEditor_WithoutHook(t *testing.T) {
	hub := session.NewHub()
	defer hub.Close()
	ed := New(shapes.Defaults(hub, entity.CardProps{}, shapes.IframeSettings{}))

	if got := ed.GetInitialMetaForShape(&entity.Shape{Type: domain.ShapeTypeCard}); got == nil || len(got) != 0 {
		t.Errorf("GetInitialMetaForShape() without hook = %v, want empty object", got)
	}
}

func TestEditor_SelectAndZoom(t *testing.T) {
	ed, _ := mount(t)
	_ = ed.CreateShapes([]entity.ShapePartial{
		{ID: "shape:a", Type: domain.ShapeTypeCard, X: 0, Y: 0},
		{ID: "shape:frame", Type: domain.ShapeTypeIframe, X: 1000, Y: 0, Props: entity.Props{"url": "https://example.com", "w": 3840.0, "h": 2160.0}},
	})

	if err := ed.Select("shape:missing"); !errors.Is(err, domain.ErrShapeNotFound) {
		t.Errorf("Select() error = %v, want %v", err, domain.ErrShapeNotFound)
	}

	if err := ed.Select("shape:a"); err != nil {
		t.Fatalf("Select() unexpected error = %v", err)
	}
	ed.ZoomToSelection(valueobject.ZoomOptions{Duration: 618 * time.Millisecond})
	cam := ed.Camera()
	if cam.X != 50 || cam.Y != 50 || cam.Z != 1 {
		t.Errorf("camera = %+v, want centered on card at 100%%", cam)
	}
	if cam.Duration != 618*time.Millisecond {
		t.Errorf("camera animation = %v", cam.Duration)
	}

	_ = ed.Select("shape:frame")
	ed.ZoomToSelection(valueobject.ZoomOptions{})
	if z := ed.Camera().Z; z != 0.5 {
		t.Errorf("zoom = %g, want 0.5 to fit a 4k frame", z)
	}
}

func TestEditor_ZoomRespectsViewport(t *testing.T) {
	hub := session.NewHub()
	utils := shapes.Defaults(hub, entity.CardProps{}, shapes.IframeSettings{})
	ed := New(utils, WithViewport(valueobject.Rect{W: 50, H: 200}))
	hub.SetEditor(ed)
	t.Cleanup(hub.Close)

	if err := ed.CreateShapes([]entity.ShapePartial{{ID: "shape:a", Type: domain.ShapeTypeCard}}); err != nil {
		t.Fatalf("CreateShapes() unexpected error = %v", err)
	}
	_ = ed.Select("shape:a")
	ed.ZoomToSelection(valueobject.ZoomOptions{})

	if z := ed.Camera().Z; z != 0.5 {
		t.Errorf("zoom = %g, want 0.5 to fit a 100-wide card in a 50-wide viewport", z)
	}
}

func TestEditor_ZoomWithoutSelection(t *testing.T) {
	ed, _ := mount(t)
	before := ed.Camera()
	ed.ZoomToSelection(valueobject.ZoomOptions{})
	if ed.Camera() != before {
		t.Error("ZoomToSelection without selection should leave the camera alone")
	}
}

func TestEditor_ResizeTouchesUpdateAt(t *testing.T) {
	ed, _ := mount(t)
	_ = ed.CreateShapes([]entity.ShapePartial{{ID: "shape:frame", Type: domain.ShapeTypeIframe}})

	out, err := ed.ResizeShape("shape:frame", valueobject.ResizeInfo{ScaleX: 0.5, ScaleY: 0.5})
	if err != nil {
		t.Fatalf("ResizeShape() unexpected error = %v", err)
	}
	if w, _ := out.Props.Float("w"); w != 625 {
		t.Errorf("w = %g, want 625", w)
	}
	if v, _ := out.Meta.Int64(valueobject.MetaKeyUpdateAt); v != resizedAt.UnixMilli() {
		t.Errorf("updateAt = %d, want %d", v, resizedAt.UnixMilli())
	}
	if v, _ := out.Meta.Int64(valueobject.MetaKeyCreateAt); v != createdAt.UnixMilli() {
		t.Errorf("createAt = %d, should be untouched", v)
	}

	if _, err := ed.ResizeShape("shape:none", valueobject.ResizeInfo{ScaleX: 1, ScaleY: 1}); !errors.Is(err, domain.ErrShapeNotFound) {
		t.Errorf("ResizeShape() error = %v, want %v", err, domain.ErrShapeNotFound)
	}
}

func TestEditor_DeleteShapes(t *testing.T) {
	ed, _ := mount(t)
	_ = ed.CreateShapes([]entity.ShapePartial{
		{ID: "shape:a", Type: domain.ShapeTypeCard},
		{ID: "shape:b", Type: domain.ShapeTypeCard},
	})
	_ = ed.Select("shape:a", "shape:b")

	if err := ed.DeleteShapes("shape:a", "shape:missing"); !errors.Is(err, domain.ErrShapeNotFound) {
		t.Fatalf("DeleteShapes() error = %v, want %v", err, domain.ErrShapeNotFound)
	}
	if len(ed.Shapes()) != 2 {
		t.Fatal("failed delete should remove nothing")
	}

	if err := ed.DeleteShapes("shape:a"); err != nil {
		t.Fatalf("DeleteShapes() unexpected error = %v", err)
	}
	if len(ed.Shapes()) != 1 || len(ed.SelectedShapes()) != 1 {
		t.Errorf("shapes = %d selected = %d, want 1 and 1", len(ed.Shapes()), len(ed.SelectedShapes()))
	}
}

func TestEditor_SnapshotRoundTrip(t *testing.T) {
	ed, _ := mount(t)
	_ = ed.CreateShapes([]entity.ShapePartial{
		{ID: "shape:a", Type: domain.ShapeTypeCard},
		{ID: "shape:b", Type: domain.ShapeTypeIframe},
	})
	_ = ed.Select("shape:b")
	doc := ed.Snapshot()

	restored, _ := mount(t)
	if err := restored.LoadSnapshot(doc); err != nil {
		t.Fatalf("LoadSnapshot() unexpected error = %v", err)
	}
	shapesOut := restored.Shapes()
	if len(shapesOut) != 2 || shapesOut[0].ID != "shape:a" || shapesOut[1].ID != "shape:b" {
		t.Errorf("restored order = %v", shapesOut)
	}
	if sel := restored.SelectedShapes(); len(sel) != 1 || sel[0].ID != "shape:b" {
		t.Error("selection should be restored")
	}

	bad := &entity.Document{Shapes: []entity.Shape{{ID: "shape:x", Type: "geo"}}}
	if err := restored.LoadSnapshot(bad); !errors.Is(err, domain.ErrUnknownShapeType) {
		t.Errorf("LoadSnapshot() error = %v, want %v", err, domain.ErrUnknownShapeType)
	}
}
