package svgdom

import (
	"errors"
	"io"
	"log/slog"
)

// Errors returned by the parsers and the geometry operations. They are always wrapped with
// context, use errors.Is to test for them.
var (
	// ErrSyntax is returned for malformed numbers or list delimiters.
	ErrSyntax = errors.New("syntax error")
	// ErrInvalidValue is returned for well-formed input that has no meaning, such as an unknown unit.
	ErrInvalidValue = errors.New("invalid value")
	// ErrArgumentCount is returned when a transform function has the wrong number of arguments.
	ErrArgumentCount = errors.New("wrong number of arguments")
	// ErrNotInvertible is returned when inverting a singular matrix.
	ErrNotInvertible = errors.New("matrix not invertible")
	// ErrIndexOutOfRange is returned by list accessors.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Logger receives debug messages whenever malformed input is silently accepted, such as an
// unknown transform function or a percentage that resolves to NaN.
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
