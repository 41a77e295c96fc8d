package lexer

import (
	"errors"
	"fmt"

	"github.com/absurd-lang/absurd/token"
)

// Error is a lexical error with its source position.
type Error struct {
	Err        error
	Pos        token.Position
	Incomplete bool
}

func (e *Error) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %v", e.Pos, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(pos token.Position, err error) error {
	return &Error{Err: err, Pos: pos}
}

func newIncompleteError(pos token.Position, err error) error {
	return &Error{
		Err:        err,
		Pos:        pos,
		Incomplete: true,
	}
}

// IsIncomplete reports whether err was caused by input that ended too early.
func IsIncomplete(err error) bool {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.Incomplete
	}
	return false
}
