package outcome

// Call invokes exactly one of the two consumers, chosen by case, and
// returns the outcome unchanged for chaining. Both consumers are required
// regardless of which one runs.
func (o Outcome[V, D]) Call(onSuccess func(V), onError func(D)) Outcome[V, D] {
	if onSuccess == nil {
		panic("outcome: Call requires a non-nil onSuccess")
	}
	if onError == nil {
		panic("outcome: Call requires a non-nil onError")
	}
	if o.hasValue {
		return o.CallOnSuccess(onSuccess)
	}
	return o.CallOnError(onError)
}

// CallOnSuccess invokes onSuccess with the value if the outcome is a
// success, and returns the outcome unchanged.
func (o Outcome[V, D]) CallOnSuccess(onSuccess func(V)) Outcome[V, D] {
	if onSuccess == nil {
		panic("outcome: CallOnSuccess requires a non-nil onSuccess")
	}
	if o.hasValue {
		onSuccess(o.value)
	}
	return o
}

// CallOnError invokes onError with the error descriptor if the outcome is
// a failure, and returns the outcome unchanged.
func (o Outcome[V, D]) CallOnError(onError func(D)) Outcome[V, D] {
	if onError == nil {
		panic("outcome: CallOnError requires a non-nil onError")
	}
	if !o.hasValue {
		onError(o.errorDescriptor)
	}
	return o
}
