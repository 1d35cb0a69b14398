package outcome

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Outcome holds the result of a call that either produced a value or an
// error descriptor. Exactly one of the two payloads is present, and the
// case never changes after construction.
type Outcome[V, D any] struct {
	id              uuid.UUID
	createdAt       time.Time
	value           V
	errorDescriptor D
	hasValue        bool
}

// OfValue builds a success Outcome holding v.
func OfValue[V, D any](v V) Outcome[V, D] {
	return Outcome[V, D]{
		value:     v,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// OfError builds a failure Outcome holding d.
func OfError[V, D any](d D) Outcome[V, D] {
	return Outcome[V, D]{
		errorDescriptor: d,
		hasValue:        false,
		createdAt:       time.Now().UTC(),
		id:              uuid.New(),
	}
}

func (o Outcome[V, D]) IsSuccess() bool {
	return o.hasValue
}

func (o Outcome[V, D]) IsFailure() bool {
	return !o.hasValue
}

// Value returns the success payload; ok is true iff the outcome is a
// success. A success holding V's zero value still reports ok == true.
func (o Outcome[V, D]) Value() (V, bool) {
	return o.value, o.hasValue
}

// ErrorDescriptor returns the failure payload; ok is true iff the outcome
// is a failure.
func (o Outcome[V, D]) ErrorDescriptor() (D, bool) {
	return o.errorDescriptor, !o.hasValue
}

func (o Outcome[V, D]) Id() uuid.UUID {
	return o.id
}

func (o Outcome[V, D]) CreatedAt() time.Time {
	return o.createdAt
}

// Equal reports whether both outcomes are the same case with deep-equal
// payloads. Provenance metadata does not participate.
func (o Outcome[V, D]) Equal(other Outcome[V, D]) bool {
	if o.hasValue != other.hasValue {
		return false
	}
	if o.hasValue {
		return reflect.DeepEqual(o.value, other.value)
	}
	return reflect.DeepEqual(o.errorDescriptor, other.errorDescriptor)
}

func (o Outcome[V, D]) String() string {
	if o.hasValue {
		return fmt.Sprintf("Outcome(value=%v)", o.value)
	}
	return fmt.Sprintf("Outcome(errorDescriptor=%v)", o.errorDescriptor)
}
