package entity

import (
	"fmt"

	"github.com/lite-lake/boardkit/internal/domain"
	"github.com/lite-lake/boardkit/internal/domain/valueobject"
)

// Document is the persisted state of one board.
type Document struct {
	Shapes   []Shape               `yaml:"shapes"`
	Camera   valueobject.Camera    `yaml:"camera"`
	Selected []valueobject.ShapeID `yaml:"selected,omitempty"`
}

func NewDocument() *Document {
	return &Document{
		Shapes: []Shape{},
		Camera: valueobject.DefaultCamera(),
	}
}

func (d *Document) Validate() error {
	seen := make(map[valueobject.ShapeID]bool, len(d.Shapes))
	for i := range d.Shapes {
		s := &d.Shapes[i]
		if err := s.Validate(); err != nil {
			return domain.WrapEntity("shape", string(s.ID), err)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: %s", domain.ErrShapeExists, s.ID)
		}
		seen[s.ID] = true
	}
	for _, id := range d.Selected {
		if !seen[id] {
			return fmt.Errorf("selection: %w: %s", domain.ErrShapeNotFound, id)
		}
	}
	return nil
}
