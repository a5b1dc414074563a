package decoder

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind discriminates the three ways a BUFR message can fail to decode.
type Kind uint8

const (
	// KindIO marks an error reading from the underlying stream: truncated
	// input, a closed file, a network read failure. Retrying with more
	// data, or against a fresh connection, may succeed.
	KindIO Kind = iota

	// KindFatal marks a structural violation of the BUFR format itself:
	// a bad magic, a table lookup that failed, an element width the decoder
	// cannot read. The message is malformed; retrying will not help.
	KindFatal

	// KindNotSupported marks a well-formed message that uses a feature
	// this decoder does not implement, such as an unrecognized Table C
	// operator.
	KindNotSupported
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindFatal:
		return "fatal"
	case KindNotSupported:
		return "not supported"
	default:
		return "unknown"
	}
}

// Error is the error type the decoder and section packages return once they
// detect a domain-level failure (descriptor resolution errors reach callers
// wrapped in one by NewDataSpec), so that callers can distinguish a
// transport hiccup from a malformed message from an unimplemented feature
// with a single type switch, the way spec.md's three error kinds require.
type Error struct {
	Kind Kind
	err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.err)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.err
}

// IOErrorf builds a KindIO *Error with a stack trace attached via
// github.com/pkg/errors, the way cmd/wav2flac wraps its I/O failures.
func IOErrorf(format string, args ...interface{}) error {
	return &Error{Kind: KindIO, err: errors.WithStack(errors.Errorf(format, args...))}
}

// Fatalf builds a KindFatal *Error.
func Fatalf(format string, args ...interface{}) error {
	return &Error{Kind: KindFatal, err: errors.WithStack(errors.Errorf(format, args...))}
}

// NotSupportedf builds a KindNotSupported *Error.
func NotSupportedf(format string, args ...interface{}) error {
	return &Error{Kind: KindNotSupported, err: errors.WithStack(errors.Errorf(format, args...))}
}

// WrapIO wraps an existing error (typically one returned by an io.Reader) as
// a KindIO *Error, preserving it as the Unwrap cause.
func WrapIO(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindIO, err: errors.WithStack(err)}
}
