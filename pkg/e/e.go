package e

import (
	"context"
	"errors"
	"fmt"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternal       = errors.New("internal error")
	ErrDeadline       = errors.New("deadline exceeded")
	ErrCanceled       = errors.New("context canceled")
	ErrTransport      = errors.New("transport failure")
	ErrUpstream       = errors.New("upstream rejected request")
	ErrLocked         = errors.New("ambulance locked by assignment")
	ErrNotConfirmed   = errors.New("action not confirmed")
	ErrNoSelection    = errors.New("no case selected")
	ErrUnknownSection = errors.New("unknown section")
)

func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	return fmt.Errorf("%s: %w", op, err)
}
