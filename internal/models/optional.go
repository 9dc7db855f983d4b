package models

import (
	"bytes"
	"encoding/json"
)

// OptionalFloat distinguishes an absent JSON field from an explicit null.
type OptionalFloat struct {
	Set   bool
	Value *float64
}

// NewOptionalFloat returns a Set value holding v.
func NewOptionalFloat(v float64) OptionalFloat {
	return OptionalFloat{Set: true, Value: &v}
}

// Null returns a Set value that clears the field.
func Null() OptionalFloat {
	return OptionalFloat{Set: true}
}

// UnmarshalJSON implements json.Unmarshaler. It is only invoked when the key
// is present, so Set records presence.
func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o OptionalFloat) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
