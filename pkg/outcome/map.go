package outcome

// Identity returns its argument unchanged.
func Identity[T any](t T) T {
	return t
}

// Map transforms an Outcome[V, D] into an Outcome[W, E]. Exactly one
// mapper runs, chosen by case; both are required either way, and the
// produced outcome is always a new one — the source is never mutated.
func Map[V, D, W, E any](o Outcome[V, D], valueMapper func(V) W, errorMapper func(D) E) Outcome[W, E] {
	if valueMapper == nil {
		panic("outcome: Map requires a non-nil valueMapper")
	}
	if errorMapper == nil {
		panic("outcome: Map requires a non-nil errorMapper")
	}
	if o.hasValue {
		return OfValue[W, E](valueMapper(o.value))
	}
	return OfError[W, E](errorMapper(o.errorDescriptor))
}

// MapValue transforms the success payload and keeps the failure side as is.
func MapValue[V, D, W any](o Outcome[V, D], valueMapper func(V) W) Outcome[W, D] {
	return Map(o, valueMapper, Identity[D])
}

// MapErrorDescriptor transforms the failure payload and keeps the success
// side as is.
func MapErrorDescriptor[V, D, E any](o Outcome[V, D], errorMapper func(D) E) Outcome[V, E] {
	return Map(o, Identity[V], errorMapper)
}
