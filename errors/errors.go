// Package errors provides error handling for icongen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Sentinel errors with errors.Is checking
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := loadCatalog(); err != nil {
//	    return errors.Wrap(err, "failed to load catalog")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrUnknownStyle) {
//	    // the catalog introduced a style the generator does not handle
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
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	Mark          = crdb.Mark
)

// Common sentinel errors for use across icongen.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrUnknownStyle indicates a catalog record carries a style outside the
	// closed set the generator understands. The catalog moved ahead of the
	// generator; the generator must be taught the new style.
	ErrUnknownStyle = New("unknown icon type")

	// ErrEmptyCatalog indicates the catalog flattened to zero records
	ErrEmptyCatalog = New("catalog contains no icon records")

	// ErrStale indicates a generated file no longer matches the catalog
	ErrStale = New("generated output is out of date")
)

// NewUnknownStyle creates an unknown-style error carrying the offending value.
// The message matches the upstream generator's fatal diagnostic so build logs
// stay greppable across the migration.
func NewUnknownStyle(style string) error {
	return Mark(Newf("Unknown icon type: %s", style), ErrUnknownStyle)
}

// IsUnknownStyle checks if an error is or wraps ErrUnknownStyle
func IsUnknownStyle(err error) bool {
	return err != nil && Is(err, ErrUnknownStyle)
}

// IsStale checks if an error is or wraps ErrStale
func IsStale(err error) bool {
	return err != nil && Is(err, ErrStale)
}
