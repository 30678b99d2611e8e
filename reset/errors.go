package reset

import (
	"errors"
	"fmt"
)

// Configuration error definitions.
var (
	ErrUnknownKind    = errors.New("unknown transport kind")
	ErrInvalidAddress = errors.New("invalid address")
	ErrInvalidTiming  = errors.New("invalid timing value")
)

// Parse error fields.
const (
	FieldKind    = "kind"
	FieldAddress = "address"
	FieldDelay   = "delay"
	FieldTimeout = "timeout"
)

// ParseError reports an invalid transport kind, address or timing value.
// No channel is opened when a ParseError is returned.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %s", e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error { return e.Err }

// ConnectionError reports a failure to open the serial port or to connect the TCP socket.
type ConnectionError struct {
	Kind   Kind
	Target string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("open %s channel %s: %s", e.Kind, e.Target, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConnectionError) Unwrap() error { return e.Err }

// WriteError reports a failure while transmitting a command.
type WriteError struct {
	Cmd string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s command: %s", cmdName(e.Cmd), e.Err)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error { return e.Err }
