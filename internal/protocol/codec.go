package protocol

import (
	"encoding/json"
	"fmt"
)

// Encode marshals a payload into an envelope of the given type.
// A nil payload produces an envelope with no payload field, which is
// valid for bare control messages like start and stop.
func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, fmt.Errorf("protocol: empty envelope type")
	}

	env := Envelope{T: t}
	if payload != nil {
		pb, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("protocol: encode %q payload: %w", t, err)
		}
		env.P = pb
	}
	return json.Marshal(env)
}

// DecodeEnvelope parses the outer envelope without touching the payload.
func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, fmt.Errorf("protocol: empty message")
	}
	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return Envelope{}, fmt.Errorf("protocol: decode envelope: %w", err)
	}
	if env.T == "" {
		return Envelope{}, fmt.Errorf("protocol: envelope has no type")
	}
	return env, nil
}

// DecodePayload unmarshals an envelope's payload into a concrete type.
func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("protocol: empty payload for type %q", env.T)
	}
	if err := json.Unmarshal(env.P, &out); err != nil {
		return out, fmt.Errorf("protocol: decode %q payload: %w", env.T, err)
	}
	return out, nil
}
