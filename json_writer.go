package kharcha

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObjectWriter helps construct a JSON object with a specific field order.
// Its zero value is ready to use.
//
// Persisted records keep a stable field order so that data files diff
// cleanly between saves.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a key/value pair to the JSON object being built.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal field %q: %w", key, err)
		return w
	}
	w.WriteString(quoteKey(key))
	w.WriteString(":")
	w.Write(raw)
	w.WriteString(",")
	return w
}

// Optional adds a key/value pair only when the value is not the type's zero
// value (empty string, zero number, nil or empty slice).
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		if v.Len() == 0 {
			return w
		}
	default:
		if !v.IsValid() || v.IsZero() {
			return w
		}
	}
	return w.Append(key, value)
}

func quoteKey(key string) string {
	b, _ := json.Marshal(key)
	return string(b)
}

// MarshalJSON terminates the object and returns its bytes.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	inner := bytes.TrimSuffix(w.Bytes(), []byte(","))
	var out bytes.Buffer
	out.WriteString("{")
	out.Write(inner)
	out.WriteString("}")
	return out.Bytes(), nil
}
