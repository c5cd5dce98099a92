package interpreter

import "errors"

var (
	ErrInvalidDimensions      = errors.New("invalid grid dimensions")
	ErrInvalidHeading         = errors.New("invalid heading")
	ErrInvalidInitialPosition = errors.New("invalid initial position")
	ErrOutOfBounds            = errors.New("out of bounds")
	ErrInvalidInstruction     = errors.New("invalid instruction")
	ErrMalformedInput         = errors.New("malformed input")
)
