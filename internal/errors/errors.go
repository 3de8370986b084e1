package errors

import (
	stderrors "errors"
)

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Human-readable message
	Metadata map[string]string // Additional context (cells, shapes)
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithMetadata creates a domain error carrying extra context.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// Sentinels for errors.Is. Errors raised at runtime carry their own metadata
// but match these by code.
var (
	ErrIllegalArgument       = New(CodeIllegalArgument, "game: illegal argument")
	ErrIllegalCell           = New(CodeIllegalCell, "game: illegal cell")
	ErrCellEmpty             = New(CodeCellEmpty, "game: cell empty")
	ErrCellOccupied          = New(CodeCellOccupied, "game: cell occupied")
	ErrMoveTooFar            = New(CodeMoveTooFar, "game: move too far")
	ErrOutOfRange            = New(CodeOutOfRange, "game: out of range")
	ErrOutOfAmmo             = New(CodeOutOfAmmo, "game: out of ammo")
	ErrIllegalTarget         = New(CodeIllegalTarget, "game: illegal target")
	ErrAccessIllegalElement  = New(CodeAccessIllegalElement, "matrix: access to an illegal element")
	ErrIllegalInitialization = New(CodeIllegalInitialization, "matrix: illegal initialization values")
	ErrDimensionMismatch     = New(CodeDimensionMismatch, "matrix: dimension mismatch")
)

// CodeOf returns the code of the first *Error in err's chain, or CodeUnknown.
func CodeOf(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
