package contract

import (
	"github.com/lite-lake/boardkit/internal/domain/entity"
	"github.com/lite-lake/boardkit/internal/domain/valueobject"
)

// ShapeDefinition is what the editor needs to know about a shape type.
type ShapeDefinition interface {
	Type() string
	DefaultProps() entity.Props
	Validate(props entity.Props) error
	Geometry(shape *entity.Shape) valueobject.Rect
	CanResize() bool
	OnResize(shape *entity.Shape, info valueobject.ResizeInfo) *entity.Shape
}

type ShapeDefinitions interface {
	Definition(shapeType string) (ShapeDefinition, bool)
}
