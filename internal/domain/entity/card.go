package entity

import (
	"fmt"

	"github.com/lite-lake/boardkit/internal/domain"
)

type CardProps struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func CardPropsFrom(p Props) CardProps {
	w, _ := p.Float("w")
	h, _ := p.Float("h")
	return CardProps{W: w, H: h}
}

func (c CardProps) Props() Props {
	return Props{"w": c.W, "h": c.H}
}

func (c CardProps) Validate() error {
	if c.W <= 0 || c.H <= 0 {
		return fmt.Errorf("%w: card size must be positive, got %gx%g", domain.ErrInvalidSize, c.W, c.H)
	}
	return nil
}
