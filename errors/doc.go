// Package errors provides standardized error handling patterns for RingKit packages.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// Transient (temporary, retryable), Invalid (bad input, non-retryable), and
// Fatal (unrecoverable, stop processing).
//
// For a container library almost every error is a construction-time Invalid
// error, but the classification keeps RingKit consistent with the systems it
// is embedded in: callers can make retry and escalation decisions without
// error string matching.
//
// # Quick Start
//
// Use standard error variables for known conditions:
//
//	if capacity <= 0 {
//	    return errors.WrapInvalid(errors.ErrInvalidCapacity, "Ring", "New", "validate capacity")
//	}
//
// Check classification at the call site:
//
//	if _, err := ring.New[int](0); errors.IsInvalid(err) {
//	    // bad configuration, do not retry
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Component", "Method", "action")
//	errors.WrapInvalid(err, "Component", "Method", "action")
//	errors.WrapFatal(err, "Component", "Method", "action")
//
// # Integration with errors.As/Is
//
// All error types support standard library error inspection. Classification
// is preserved through wrapping chains:
//
//	wrapped := errors.WrapInvalid(errors.ErrInvalidCapacity, "Ring", "New", "validate capacity")
//	errors.Is(wrapped, errors.ErrInvalidCapacity) // true
//	errors.IsInvalid(wrapped)                     // true
//
// # Thread Safety
//
// All classification and wrapping operations are thread-safe. Error variables
// are immutable and safe for concurrent access.
package errors
