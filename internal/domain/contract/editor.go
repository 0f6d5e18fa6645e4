package contract

import (
	"github.com/lite-lake/boardkit/internal/domain/entity"
	"github.com/lite-lake/boardkit/internal/domain/valueobject"
)

// InitialMetaFunc derives the metadata stored with a shape at creation time.
type InitialMetaFunc func(shape *entity.Shape) valueobject.Meta

// Editor is the part of the host canvas editor the board customizations rely on.
type Editor interface {
	SetInitialMetaHook(fn InitialMetaFunc)
	GetInitialMetaForShape(shape *entity.Shape) valueobject.Meta
	CreateShapes(partials []entity.ShapePartial) error
	GetShape(id valueobject.ShapeID) (*entity.Shape, bool)
	Select(ids ...valueobject.ShapeID) error
	ZoomToSelection(opts valueobject.ZoomOptions)
}
