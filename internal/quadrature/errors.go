package quadrature

import (
	"errors"
	"fmt"
)

// Error represents a usage error detected while resolving or combining rules.
//
// Errors are raised synchronously before any output is produced:
//   - Invalid level: level index outside the family's supported range
//   - Unsupported order: resolved order has no tabulated data
//   - Dimension mismatch: per-dimension levels and distributions differ in length
//   - Unknown family: family selector is not one of gk16, gk18, gk22, gk24
//   - Grid too large: tensor grid exceeds the configured point limit
//   - Missing distribution: a dimension has a nil distribution
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Family is the rule family involved, if any.
	Family Family

	// Level is the requested level index (for level errors).
	Level int

	// Details contains additional context.
	Details map[string]string
}

// ErrorCode categorizes quadrature errors.
type ErrorCode string

const (
	// ErrCodeInvalidLevel indicates a level index outside [0, Levels()).
	ErrCodeInvalidLevel ErrorCode = "INVALID_LEVEL"

	// ErrCodeUnsupportedOrder indicates a resolved order with no table entry.
	ErrCodeUnsupportedOrder ErrorCode = "UNSUPPORTED_ORDER"

	// ErrCodeDimensionMismatch indicates len(levels) != len(distributions).
	ErrCodeDimensionMismatch ErrorCode = "DIMENSION_MISMATCH"

	// ErrCodeUnknownFamily indicates an invalid family selector.
	ErrCodeUnknownFamily ErrorCode = "UNKNOWN_RULE_FAMILY"

	// ErrCodeGridTooLarge indicates the tensor grid exceeds the point limit.
	ErrCodeGridTooLarge ErrorCode = "GRID_TOO_LARGE"

	// ErrCodeMissingDistribution indicates a nil distribution for a dimension.
	ErrCodeMissingDistribution ErrorCode = "MISSING_DISTRIBUTION"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Family.Valid() {
		return fmt.Sprintf("%s: %s (family=%s)", e.Code, e.Message, e.Family)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CodeOf returns the error code of err, or "" if err is not an *Error.
func CodeOf(err error) ErrorCode {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Code
	}
	return ""
}

// IsInvalidLevel reports whether err is an invalid level error.
// Uses errors.As to handle wrapped errors.
func IsInvalidLevel(err error) bool {
	return CodeOf(err) == ErrCodeInvalidLevel
}

// IsUnsupportedOrder reports whether err is an unsupported order error.
func IsUnsupportedOrder(err error) bool {
	return CodeOf(err) == ErrCodeUnsupportedOrder
}

// IsDimensionMismatch reports whether err is a dimension mismatch error.
func IsDimensionMismatch(err error) bool {
	return CodeOf(err) == ErrCodeDimensionMismatch
}

// IsUnknownFamily reports whether err is an unknown rule family error.
func IsUnknownFamily(err error) bool {
	return CodeOf(err) == ErrCodeUnknownFamily
}

// IsGridTooLarge reports whether err is a grid size error.
func IsGridTooLarge(err error) bool {
	return CodeOf(err) == ErrCodeGridTooLarge
}

// NewInvalidLevelError creates an Error for a level outside the family range.
func NewInvalidLevelError(f Family, level int) *Error {
	return &Error{
		Code:    ErrCodeInvalidLevel,
		Message: fmt.Sprintf("level %d outside [0, %d)", level, f.Levels()),
		Family:  f,
		Level:   level,
		Details: map[string]string{
			"level":  fmt.Sprintf("%d", level),
			"levels": fmt.Sprintf("%d", f.Levels()),
		},
	}
}

// NewUnsupportedOrderError creates an Error for an order with no table.
func NewUnsupportedOrderError(f Family, level, order int) *Error {
	return &Error{
		Code:    ErrCodeUnsupportedOrder,
		Message: fmt.Sprintf("no tabulated rule of order %d", order),
		Family:  f,
		Level:   level,
		Details: map[string]string{
			"order": fmt.Sprintf("%d", order),
		},
	}
}

// NewDimensionMismatchError creates an Error for mismatched input lengths.
func NewDimensionMismatchError(levels, dists int) *Error {
	return &Error{
		Code:    ErrCodeDimensionMismatch,
		Message: fmt.Sprintf("%d levels for %d distributions", levels, dists),
		Details: map[string]string{
			"levels":        fmt.Sprintf("%d", levels),
			"distributions": fmt.Sprintf("%d", dists),
		},
	}
}

// NewUnknownFamilyError creates an Error for an invalid family selector.
func NewUnknownFamilyError(selector string) *Error {
	return &Error{
		Code:    ErrCodeUnknownFamily,
		Message: fmt.Sprintf("unknown rule family %q", selector),
		Details: map[string]string{
			"family": selector,
		},
	}
}

// NewGridTooLargeError creates an Error for a grid exceeding the point limit.
func NewGridTooLargeError(sizes []int, limit int) *Error {
	return &Error{
		Code:    ErrCodeGridTooLarge,
		Message: fmt.Sprintf("tensor grid of sizes %v exceeds %d points", sizes, limit),
		Details: map[string]string{
			"max_points": fmt.Sprintf("%d", limit),
		},
	}
}

// NewMissingDistributionError creates an Error for a nil distribution.
func NewMissingDistributionError(dim int) *Error {
	return &Error{
		Code:    ErrCodeMissingDistribution,
		Message: fmt.Sprintf("dimension %d has no distribution", dim),
		Details: map[string]string{
			"dimension": fmt.Sprintf("%d", dim),
		},
	}
}
