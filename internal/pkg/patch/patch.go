// Package patch provides a JSON field type that distinguishes "key absent"
// from "key set to null" in partial-update request bodies. A field left out
// of the body is untouched; an explicit null clears the stored value.
package patch

import "encoding/json"

// Field is an optional update for one column. Present reports whether the
// key appeared in the request body at all; a Present field with a nil Value
// is an explicit null.
type Field[T any] struct {
	Present bool
	Value   *T
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Present = true
	if string(b) == "null" {
		f.Value = nil
		return nil
	}
	return json.Unmarshal(b, &f.Value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}
