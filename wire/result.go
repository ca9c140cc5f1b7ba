package wire

import (
	"encoding/json"
	"fmt"
)

// Error is the failure half of a [Result]. Code is a machine-readable
// identifier drawn from a closed vocabulary (see the bridge package);
// Message is human-readable and must never contain a credential value.
type Error struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Result is the tagged union every host function returns, serialized as
// either {"ok": <value>} or {"err": {"code": ..., "message": ...}}.
type Result[T any] struct {
	Value T
	Err   *Error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Errf builds a failed Result with a formatted message.
func Errf[T any](code, format string, args ...any) Result[T] {
	return Result[T]{Err: &Error{Code: code, Message: fmt.Sprintf(format, args...)}}
}

// ErrFrom builds a failed Result from an already-sanitized (code, message) pair.
func ErrFrom[T any](code, message string) Result[T] {
	return Result[T]{Err: &Error{Code: code, Message: message}}
}

// IsOk reports whether the result carries a value.
func (r Result[T]) IsOk() bool { return r.Err == nil }

// Unwrap converts the result into Go's usual (value, error) shape.
func (r Result[T]) Unwrap() (T, error) {
	if r.Err != nil {
		var zero T
		return zero, r.Err
	}
	return r.Value, nil
}

type resultEnvelope struct {
	Ok  json.RawMessage `json:"ok,omitempty"`
	Err *Error          `json:"err,omitempty"`
}

// MarshalJSON encodes the externally-tagged form. A successful result
// always produces an "ok" key, even for empty values, so the guest can
// distinguish success from a malformed envelope.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.Err != nil {
		return json.Marshal(resultEnvelope{Err: r.Err})
	}
	raw, err := json.Marshal(r.Value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Ok json.RawMessage `json:"ok"`
	}{Ok: raw})
}

// UnmarshalJSON decodes the externally-tagged form.
func (r *Result[T]) UnmarshalJSON(data []byte) error {
	var env resultEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	if env.Err != nil {
		r.Err = env.Err
		return nil
	}
	if env.Ok == nil {
		return fmt.Errorf("result envelope has neither ok nor err")
	}
	r.Err = nil
	return json.Unmarshal(env.Ok, &r.Value)
}

// Empty is the response type of operations that return no data on
// success (delete, update, upload). It serializes as {}.
type Empty struct{}

// APIError mirrors the error entries Salesforce embeds in operation
// results (collections, upserts, approvals).
type APIError struct {
	StatusCode string   `json:"statusCode"`
	Message    string   `json:"message"`
	Fields     []string `json:"fields,omitempty"`
}
