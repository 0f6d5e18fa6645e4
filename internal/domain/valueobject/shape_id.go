package valueobject

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lite-lake/boardkit/internal/domain"
)

const shapeIDPrefix = "shape:"

type ShapeID string

func NewShapeID() ShapeID {
	return ShapeID(shapeIDPrefix + uuid.NewString())
}

func ParseShapeID(s string) (ShapeID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty shape id", domain.ErrInvalidID)
	}
	if !strings.HasPrefix(s, shapeIDPrefix) {
		s = shapeIDPrefix + s
	}
	if len(s) == len(shapeIDPrefix) {
		return "", fmt.Errorf("%w: %q has no body", domain.ErrInvalidID, s)
	}
	return ShapeID(s), nil
}

func (id ShapeID) String() string {
	return string(id)
}

func (id ShapeID) Short() string {
	body := strings.TrimPrefix(string(id), shapeIDPrefix)
	if len(body) > 8 {
		return body[:8]
	}
	return body
}
