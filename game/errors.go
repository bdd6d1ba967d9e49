package game

import "github.com/pkg/errors"

// InvalidMoveError is raised by Board.Play and Board.checkLegal for a move
// that violates the placement rules: out-of-range coordinates, an occupied
// cell, or an opposite-side same-shape collision in the move's row, column
// or section.
type InvalidMoveError struct {
	cause error
}

func (e *InvalidMoveError) Error() string { return e.cause.Error() }
func (e *InvalidMoveError) Unwrap() error { return e.cause }

func invalidMove(format string, args ...interface{}) error {
	return &InvalidMoveError{cause: errors.Errorf(format, args...)}
}

// InvalidHandError is raised by Hand.Remove when asked to take away a
// shape the hand does not hold.
type InvalidHandError struct {
	cause error
}

func (e *InvalidHandError) Error() string { return e.cause.Error() }
func (e *InvalidHandError) Unwrap() error { return e.cause }

func invalidHand(format string, args ...interface{}) error {
	return &InvalidHandError{cause: errors.Errorf(format, args...)}
}
