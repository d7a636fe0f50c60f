// Package avserr defines the error kinds shared across the rendering
// pipeline. Every package wraps its failures in one of these kinds so
// callers can classify a failure with errors.Is without string
// matching.
package avserr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure the way §7 of the design doc enumerates
// them. The zero Kind is never produced by this package.
type Kind int

const (
	_ Kind = iota
	// InvalidArgument: caller passed a null pointer, wrong size, or
	// out-of-range parameter. The call fails and the caller recovers.
	InvalidArgument
	// PresetWarning: recoverable parser issue, appended to a preset's
	// warning list, never fatal.
	PresetWarning
	// UnknownEffect: a preset referenced an effect not in the registry;
	// a no-op placeholder effect is produced instead.
	UnknownEffect
	// ScriptCompileError: a script stage failed to compile.
	ScriptCompileError
	// ScriptRuntimeError: a script stage raised an error while running.
	ScriptRuntimeError
	// ResourceMissing: a file-backed asset (palette, heightmap) could
	// not be loaded; the caller degrades to a documented default.
	ResourceMissing
	// Internal: an invariant check failed (e.g. buffer size mismatch).
	// The affected effect bails out for the frame but the framebuffer
	// is left in a valid state.
	Internal
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case PresetWarning:
		return "PresetWarning"
	case UnknownEffect:
		return "UnknownEffect"
	case ScriptCompileError:
		return "ScriptCompileError"
	case ScriptRuntimeError:
		return "ScriptRuntimeError"
	case ResourceMissing:
		return "ResourceMissing"
	case Internal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error is a Kind-tagged error. Two Errors compare equal under
// errors.Is when their Kind matches, regardless of message, so callers
// can test `errors.Is(err, avserr.New(avserr.InvalidArgument, ""))`.
type Error struct {
	Kind    Kind
	Message string
	Wrapped error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Wrapped }

// Is implements errors.Is matching by Kind only, so sentinel checks
// don't need to thread the exact message through.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}
	return false
}

// New builds an Error of the given kind with a plain message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an Error of the given kind wrapping an underlying cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Wrapped: cause}
}

// Newf builds an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Sentinel instances for errors.Is comparisons that don't need a
// custom message.
var (
	ErrInvalidArgument = New(InvalidArgument, "")
	ErrUnknownEffect   = New(UnknownEffect, "")
	ErrResourceMissing = New(ResourceMissing, "")
	ErrInternal        = New(Internal, "")
)
