// Package shapes defines the custom shape types the board adds to the host editor.
package shapes

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/lite-lake/boardkit/internal/domain/contract"
	"github.com/lite-lake/boardkit/internal/domain/entity"
	"github.com/lite-lake/boardkit/internal/domain/valueobject"
)

type ShapeUtil interface {
	contract.ShapeDefinition
	CanBind() bool
	CanRotate() bool
	Render(shape *entity.Shape) string
	Indicator(shape *entity.Shape) string
	// Close detaches the util from the session hub and withdraws its meta handler.
	Close()
}

// BaseUtil carries the host editor's default capabilities.
type BaseUtil struct{}

func (BaseUtil) CanBind() bool   { return true }
func (BaseUtil) CanResize() bool { return true }
func (BaseUtil) CanRotate() bool { return true }

func (BaseUtil) OnResize(shape *entity.Shape, _ valueobject.ResizeInfo) *entity.Shape {
	return shape
}

func (BaseUtil) Indicator(shape *entity.Shape) string {
	w, h := shape.Size()
	return fmt.Sprintf(`<rect width="%s" height="%s" />`, formatPx(w), formatPx(h))
}

type Option func(*options)

type options struct {
	now func() time.Time
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func rectangle(shape *entity.Shape) valueobject.Rect {
	w, h := shape.Size()
	return valueobject.Rect{W: w, H: h, IsFilled: true}
}

// resizeBox scales the shape's box by the gesture's factors. A negative factor
// flips the box across its origin; sizes never drop below one unit.
func resizeBox(shape *entity.Shape, info valueobject.ResizeInfo) *entity.Shape {
	out := shape.Clone()
	w, h := shape.Size()

	newW := math.Max(1, math.Abs(w*info.ScaleX))
	newH := math.Max(1, math.Abs(h*info.ScaleY))
	if info.ScaleX < 0 {
		out.X = shape.X - newW
	}
	if info.ScaleY < 0 {
		out.Y = shape.Y - newH
	}

	out.Props["w"] = newW
	out.Props["h"] = newH
	return out
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
