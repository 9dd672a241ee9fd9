package clackers

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidConfiguration is returned when a game is built with no dice
	// or with a die that has fewer than two sides.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrIllegalChoice is returned when a Chooser picks a strategy that was
	// not offered.
	ErrIllegalChoice = errors.New("illegal choice")
	// ErrSlotOutOfRange is returned when a die is placed beyond the end of
	// the stack.
	ErrSlotOutOfRange = errors.New("slot out of range")
)
