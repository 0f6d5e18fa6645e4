package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/lite-lake/boardkit/internal/application/session"
	"github.com/lite-lake/boardkit/internal/domain"
	"github.com/lite-lake/boardkit/internal/domain/contract"
	"github.com/lite-lake/boardkit/internal/domain/entity"
	"github.com/lite-lake/boardkit/internal/domain/valueobject"
	"github.com/lite-lake/boardkit/internal/infrastructure/logger"
)

const (
	OpCreateIframe = "toolbar.create_iframe"
	OpCreateCard   = "toolbar.create_card"
)

type ToolbarConfig struct {
	Hub          *session.Hub
	ZoomDuration time.Duration

	// OnClose dismisses the form once a submission went through, whether or not creation succeeded.
	OnClose func()
}

// Toolbar holds the actions behind the board toolbar buttons.
type Toolbar struct {
	hub          *session.Hub
	zoomDuration time.Duration
	onClose      func()
}

func NewToolbar(cfg *ToolbarConfig) *Toolbar {
	if cfg == nil {
		cfg = &ToolbarConfig{}
	}
	if cfg.ZoomDuration <= 0 {
		cfg.ZoomDuration = domain.DefaultZoomDuration
	}
	return &Toolbar{
		hub:          cfg.Hub,
		zoomDuration: cfg.ZoomDuration,
		onClose:      cfg.OnClose,
	}
}

// CreateIframe embeds rawURL on the board and focuses the camera on it.
// An empty URL is ignored and leaves the form open.
func (t *Toolbar) CreateIframe(ctx context.Context, rawURL string) (*entity.Shape, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, nil
	}
	if err := entity.ValidateEmbedURL(rawURL); err != nil {
		return nil, err
	}

	var shape *entity.Shape
	err := logger.TimedOperation(ctx, OpCreateIframe, func() error {
		var err error
		shape, err = t.create(ctx, entity.ShapePartial{
			Type:  domain.ShapeTypeIframe,
			Props: entity.Props{"url": rawURL},
		})
		return err
	})
	return shape, err
}

func (t *Toolbar) CreateCard(ctx context.Context) (*entity.Shape, error) {
	var shape *entity.Shape
	err := logger.TimedOperation(ctx, OpCreateCard, func() error {
		var err error
		shape, err = t.create(ctx, entity.ShapePartial{Type: domain.ShapeTypeCard})
		return err
	})
	return shape, err
}

func (t *Toolbar) create(ctx context.Context, p entity.ShapePartial) (*entity.Shape, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if t.hub == nil {
		return nil, domain.ErrNoEditor
	}
	ed, err := t.hub.Editor()
	if err != nil {
		return nil, err
	}

	p.ID = valueobject.NewShapeID()
	ctx = logger.WithShape(ctx, p.Type, p.ID.Short())
	createErr := ed.CreateShapes([]entity.ShapePartial{p})

	if t.onClose != nil {
		t.onClose()
	}
	if createErr != nil {
		return nil, domain.WrapOp("create "+p.Type, createErr)
	}
	logger.FromContext(ctx).Debug("shape created")

	return t.focus(ed, p.ID)
}

func (t *Toolbar) focus(ed contract.Editor, id valueobject.ShapeID) (*entity.Shape, error) {
	shape, ok := ed.GetShape(id)
	if !ok {
		return nil, nil
	}
	if err := ed.Select(shape.ID); err != nil {
		return shape, err
	}
	ed.ZoomToSelection(valueobject.ZoomOptions{Duration: t.zoomDuration})
	return shape, nil
}
