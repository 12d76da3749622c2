package sexptree

import (
	"errors"
	"fmt"
)

var (
	// ErrProtocol marks violations of the arena/stack contracts. These are
	// bugs in the caller or in the parser, never a property of the input.
	ErrProtocol = errors.New("sexptree: protocol violation")

	ErrUnmatchedClose = errors.New("unmatched ')'")
	ErrUnclosedGroup  = errors.New("unclosed '('")
	ErrTooDeep        = errors.New("nesting too deep")
)

// ProtocolError describes a broken precondition. errors.Is(err, ErrProtocol)
// holds for every ProtocolError.
type ProtocolError struct {
	Op     string
	Detail string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("sexptree: %s: %s", e.Op, e.Detail)
}

func (e *ProtocolError) Is(target error) bool {
	return target == ErrProtocol
}

func protocolErrorf(op, format string, args ...any) error {
	return &ProtocolError{Op: op, Detail: fmt.Sprintf(format, args...)}
}

// SyntaxError reports malformed input at a byte offset.
type SyntaxError struct {
	Offset int
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
