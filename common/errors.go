package common

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrMissingOperand  = errors.New("missing operand")
	ErrInvalidFormat   = errors.New("invalid format")
)
