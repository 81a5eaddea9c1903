// Package errors provides error handling for charsym.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrDocumentFormat) {
//	    // handle malformed symbology document
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the two failure modes charsym distinguishes.
// Everything else is a silent no-match: character data is expected to
// be incomplete in normal use.
var (
	// ErrDocumentFormat indicates the symbology document lacks the
	// top-level structure the table builder requires. Fatal at
	// construction time; no partial table is produced.
	ErrDocumentFormat = New("malformed symbology document")

	// ErrInvalidRecord indicates the supplied character data is not a
	// usable key/value structure at all. No partial profile is produced.
	ErrInvalidRecord = New("invalid character record")
)

// IsDocumentFormatError checks if an error is or wraps ErrDocumentFormat
func IsDocumentFormatError(err error) bool {
	return err != nil && Is(err, ErrDocumentFormat)
}

// IsInvalidRecordError checks if an error is or wraps ErrInvalidRecord
func IsInvalidRecordError(err error) bool {
	return err != nil && Is(err, ErrInvalidRecord)
}

// NewDocumentFormatError creates a document-format error with a formatted message
func NewDocumentFormatError(format string, args ...interface{}) error {
	return Wrap(ErrDocumentFormat, Newf(format, args...).Error())
}

// NewInvalidRecordError creates an invalid-record error with a formatted message
func NewInvalidRecordError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidRecord, Newf(format, args...).Error())
}
