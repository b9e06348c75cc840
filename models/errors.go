package models

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks every validation failure raised by the domain
// types. Match with errors.Is; the concrete message is user-facing.
var ErrInvalidArgument = errors.New("invalid argument")

type invalidArgumentError struct {
	msg string
}

func (e *invalidArgumentError) Error() string { return e.msg }

func (e *invalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// InvalidArgumentf builds a validation error that satisfies
// errors.Is(err, ErrInvalidArgument) while keeping the plain message.
func InvalidArgumentf(format string, args ...interface{}) error {
	return &invalidArgumentError{msg: fmt.Sprintf(format, args...)}
}
