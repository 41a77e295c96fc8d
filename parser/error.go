package parser

import (
	"errors"
	"fmt"

	"github.com/absurd-lang/absurd/token"
)

// Code classifies a fatal parse diagnostic.
type Code int

const (
	// UnexpectedToken: a required token or category was absent.
	UnexpectedToken Code = iota + 1
	// MalformedLiteral: a literal token lacks the payload its category promises.
	MalformedLiteral
	// InvalidConstruct: well formed, but invalid at parse time.
	InvalidConstruct
	// ExpectedUppercaseIdentifier: a name must start with an uppercase letter.
	ExpectedUppercaseIdentifier
)

func (c Code) String() string {
	switch c {
	case UnexpectedToken:
		return "E0x201"
	case MalformedLiteral:
		return "E0x202"
	case InvalidConstruct:
		return "E0x203"
	case ExpectedUppercaseIdentifier:
		return "E0x204"
	default:
		return "E0x000"
	}
}

// Error is the first fatal diagnostic of a parse. It carries the code, the
// position of the offending token and the message arguments; rendering is
// left to the caller.
type Error struct {
	Code       Code
	Pos        token.Position
	Args       []string
	Incomplete bool // raised at end of input
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s %q", e.Pos, e.Code, e.Args)
}

// IsIncomplete reports whether err was raised because the input ended early.
func IsIncomplete(err error) bool {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Incomplete
	}
	return false
}

// bailout unwinds the parser from the raise site to Parse.
type bailout struct {
	err *Error
}
