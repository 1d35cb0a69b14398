package outcome

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

type envelope struct {
	Success         bool            `json:"success"`
	Value           json.RawMessage `json:"value,omitempty"`
	ErrorDescriptor json.RawMessage `json:"errorDescriptor,omitempty"`
}

// MarshalJSON encodes the case tag and the active payload only. Provenance
// metadata stays process-local.
func (o Outcome[V, D]) MarshalJSON() ([]byte, error) {
	env := envelope{Success: o.hasValue}
	if o.hasValue {
		raw, err := json.Marshal(o.value)
		if err != nil {
			return nil, fmt.Errorf("outcome: marshal value: %w", err)
		}
		env.Value = raw
	} else {
		raw, err := json.Marshal(o.errorDescriptor)
		if err != nil {
			return nil, fmt.Errorf("outcome: marshal errorDescriptor: %w", err)
		}
		env.ErrorDescriptor = raw
	}
	return json.Marshal(env)
}

// UnmarshalJSON decodes an envelope produced by MarshalJSON. Documents
// whose success flag contradicts the populated payload are rejected. The
// rebuilt outcome gets fresh provenance metadata.
func (o *Outcome[V, D]) UnmarshalJSON(data []byte) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	if env.Success && env.ErrorDescriptor != nil {
		return errors.New("outcome: success document carries an errorDescriptor")
	}
	if !env.Success && env.Value != nil {
		return errors.New("outcome: failure document carries a value")
	}
	if env.Success {
		var v V
		if env.Value != nil {
			if err := json.Unmarshal(env.Value, &v); err != nil {
				return fmt.Errorf("outcome: unmarshal value: %w", err)
			}
		}
		*o = OfValue[V, D](v)
		return nil
	}
	var d D
	if env.ErrorDescriptor != nil {
		if err := json.Unmarshal(env.ErrorDescriptor, &d); err != nil {
			return fmt.Errorf("outcome: unmarshal errorDescriptor: %w", err)
		}
	}
	*o = OfError[V, D](d)
	return nil
}
