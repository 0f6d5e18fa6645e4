package valueobject

import "time"

type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Rect struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	W        float64 `yaml:"w"`
	H        float64 `yaml:"h"`
	IsFilled bool    `yaml:"filled,omitempty"`
}

func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) Union(o Rect) Rect {
	minX, minY := min(r.X, o.X), min(r.Y, o.Y)
	maxX, maxY := max(r.X+r.W, o.X+o.W), max(r.Y+r.H, o.Y+o.H)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

type Camera struct {
	X        float64       `yaml:"x"`
	Y        float64       `yaml:"y"`
	Z        float64       `yaml:"z"`
	Duration time.Duration `yaml:"animation,omitempty"`
}

func DefaultCamera() Camera {
	return Camera{Z: 1}
}

type ZoomOptions struct {
	Duration time.Duration
}

// ResizeInfo describes a resize gesture relative to the shape's state when it started.
type ResizeInfo struct {
	ScaleX float64
	ScaleY float64
}
