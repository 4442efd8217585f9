// Package jsonutil provides shared helpers for decoding IBGE JSON payloads
// with consistent error context.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// UnmarshalArray unmarshals a JSON array into a slice.
// An empty array (or a literal null) yields a nil slice and no error;
// an object or scalar at the top level is an error.
func UnmarshalArray[T any](data []byte, context string) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%s: empty body", context)
	}
	if trimmed[0] != '[' && !bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%s: expected JSON array", context)
	}
	var entries []T
	if err := UnmarshalWithContext(trimmed, &entries, context); err != nil {
		return nil, err
	}
	return entries, nil
}
