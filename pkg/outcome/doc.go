// Package outcome provides a generic success-or-failure container for calls
// that either produce a value or an error descriptor, so call sites can pass
// results around as explicit, inspectable values instead of trapping errors
// on the spot.
//
// Key operations:
// - OfValue/OfError: construct an Outcome directly
// - Invoke: run a fallible call once and trap its error into the failure case
// - Classify/ClassifyAs: run a call once and classify its return value by predicate
// - Map/MapValue/MapErrorDescriptor: transform into a new Outcome
// - Call/CallOnSuccess/CallOnError: side-effect dispatch returning the same Outcome
//
// Fallible and Unary adapt one-parameter operations to the zero-argument
// forms the helpers accept, via With (explicit parameter) and SuppliedBy
// (parameter producer).
package outcome
