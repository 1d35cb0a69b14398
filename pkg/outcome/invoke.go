package outcome

// Fallible is the unary, possibly failing operation consumed by Invoke.
// It is owned by the caller; the helpers call it exactly once.
type Fallible[P, V any] func(P) (V, error)

// With fixes the parameter, producing the zero-argument form Invoke accepts.
func (f Fallible[P, V]) With(param P) func() (V, error) {
	return func() (V, error) {
		return f(param)
	}
}

// SuppliedBy materializes the parameter through supply, exactly once,
// immediately before the call.
func (f Fallible[P, V]) SuppliedBy(supply func() P) func() (V, error) {
	return func() (V, error) {
		return f(supply())
	}
}

// Unary is the non-failing unary operation consumed by the Classify helpers.
type Unary[P, V any] func(P) V

func (f Unary[P, V]) With(param P) func() V {
	return func() V {
		return f(param)
	}
}

func (f Unary[P, V]) SuppliedBy(supply func() P) func() V {
	return func() V {
		return f(supply())
	}
}

// Invoke runs call once and traps its error: a nil error yields a success
// holding the returned value, a non-nil error yields a failure holding that
// exact error.
func Invoke[V any](call func() (V, error)) Outcome[V, error] {
	v, err := call()
	if err != nil {
		return OfError[V, error](err)
	}
	return OfValue[V, error](v)
}

// Classify runs supply once and tests errorWhen on the returned value:
// true classifies the value as the failure payload, false as the success
// payload. Errors from supply are not trapped; classification is for
// domain failures, not failing calls.
func Classify[V any](supply func() V, errorWhen func(V) bool) Outcome[V, V] {
	return ClassifyAs(supply, errorWhen, Identity[V])
}

// ClassifyAs is Classify with an explicit failure mapper; describe runs
// only when errorWhen reports an error.
func ClassifyAs[V, D any](supply func() V, errorWhen func(V) bool, describe func(V) D) Outcome[V, D] {
	v := supply()
	if errorWhen(v) {
		return OfError[V, D](describe(v))
	}
	return OfValue[V, D](v)
}
