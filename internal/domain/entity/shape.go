package entity

import (
	"fmt"

	"github.com/lite-lake/boardkit/internal/domain"
	"github.com/lite-lake/boardkit/internal/domain/valueobject"
)

// Props holds the type-specific properties of a shape as the editor stores them.
type Props map[string]any

func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge returns a copy of p overlaid with the non-nil values of other.
func (p Props) Merge(other Props) Props {
	out := p.Clone()
	if out == nil {
		out = Props{}
	}
	for k, v := range other {
		if v != nil {
			out[k] = v
		}
	}
	return out
}

func (p Props) Float(key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func (p Props) String(key string) string {
	s, _ := p[key].(string)
	return s
}

type Shape struct {
	ID       valueobject.ShapeID `yaml:"id"`
	Type     string              `yaml:"type"`
	X        float64             `yaml:"x"`
	Y        float64             `yaml:"y"`
	Rotation float64             `yaml:"rotation,omitempty"`
	Props    Props               `yaml:"props"`
	Meta     valueobject.Meta    `yaml:"meta,omitempty"`
}

func (s *Shape) Clone() *Shape {
	c := *s
	c.Props = s.Props.Clone()
	c.Meta = s.Meta.Clone()
	return &c
}

func (s *Shape) Size() (w, h float64) {
	w, _ = s.Props.Float("w")
	h, _ = s.Props.Float("h")
	return w, h
}

func (s *Shape) Validate() error {
	if s.ID == "" {
		return domain.RequiredField("id")
	}
	if s.Type == "" {
		return fmt.Errorf("%w: shape type is required", domain.ErrInvalidType)
	}
	return nil
}

// ShapePartial is what callers hand to the editor; empty fields are filled from defaults.
type ShapePartial struct {
	ID    valueobject.ShapeID
	Type  string
	X     float64
	Y     float64
	Props Props
	Meta  valueobject.Meta
}
