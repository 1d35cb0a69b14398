package outcome

import "time"

// ValueProvider exposes the success side of an outcome.
type ValueProvider[V any] interface {
	// Value returns the success payload; ok is true iff the outcome is a success
	Value() (V, bool)
	// CreatedAt time of construction (UTC)
	CreatedAt() time.Time
}

// Inspector is the full read-side view of an outcome.
type Inspector[V, D any] interface {
	ValueProvider[V]
	// ErrorDescriptor returns the failure payload; ok is true iff the outcome is a failure
	ErrorDescriptor() (D, bool)
	// IsSuccess reports whether the outcome holds a value
	IsSuccess() bool
	// IsFailure reports whether the outcome holds an error descriptor
	IsFailure() bool
}
