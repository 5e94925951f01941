package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Envelope is the optional wrapper some endpoints put around their payload.
type Envelope struct {
	Success *bool           `json:"success,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Token   string          `json:"token,omitempty"`
	UserID  string          `json:"user_id,omitempty"`
	ID      string          `json:"id,omitempty"`
}

var jsonNull = json.RawMessage("null")

// Unwrap returns the value of a top-level "data" key when raw is an object
// that has one, and raw itself otherwise.
func Unwrap(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return jsonNull
	}
	if trimmed[0] != '{' {
		return raw
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return raw
	}
	if data, ok := fields["data"]; ok {
		return data
	}
	return raw
}

// Decode unwraps raw and unmarshals the result into T.
func Decode[T any](raw json.RawMessage) (T, error) {
	var out T
	if err := json.Unmarshal(Unwrap(raw), &out); err != nil {
		return out, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// ParseEnvelope reads the envelope fields of raw; a payload that is not an
// object yields a zero Envelope.
func ParseEnvelope(raw json.RawMessage) Envelope {
	var env Envelope
	_ = json.Unmarshal(raw, &env)
	return env
}
