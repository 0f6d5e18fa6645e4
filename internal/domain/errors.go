package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidURL       = errors.New("invalid URL")
	ErrInvalidSize      = errors.New("invalid size")
	ErrInvalidType      = errors.New("invalid type")
	ErrInvalidID        = errors.New("invalid shape id")
	ErrRequired         = errors.New("required field missing")
	ErrUnknownShapeType = errors.New("unknown shape type")
	ErrShapeExists      = errors.New("shape already exists")
	ErrShapeNotFound    = errors.New("shape not found")

	ErrNoEditor      = errors.New("no editor mounted")
	ErrSessionClosed = errors.New("session closed")

	ErrConfigReadFailed   = errors.New("config read failed")
	ErrConfigParseFailed  = errors.New("config parse failed")
	ErrConfigValidateFail = errors.New("config validation failed")

	ErrStateReadFailed    = errors.New("state read failed")
	ErrStateWriteFailed   = errors.New("state write failed")
	ErrStateSerializeFail = errors.New("state serialization failed")
	ErrLockBusy           = errors.New("document is locked")
)

func RequiredField(field string) error {
	return fmt.Errorf("%w: %s", ErrRequired, field)
}

func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

func WrapEntity(entity, name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s[%s]: %w", entity, name, err)
}
