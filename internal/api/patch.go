package api

import (
	"encoding/json"
)

// field is a value in a PATCH request body. Set is false when the field was left out, Value is nil when it was null.
type field[T any] struct {
	Set   bool
	Value *T
}

func (f *field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	if string(b) == "null" {
		f.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

// apply replaces a nullable value when the field was set
func (f field[T]) apply(dst **T) {
	if f.Set {
		*dst = f.Value
	}
}

// applyValue replaces a value when the field was set. null becomes the zero value.
func (f field[T]) applyValue(dst *T) {
	if !f.Set {
		return
	}
	if f.Value == nil {
		var zero T
		*dst = zero
		return
	}
	*dst = *f.Value
}
