package salesforce

import (
	"fmt"
	"time"
)

// Kind classifies a transport-level failure.
type Kind int

const (
	// KindOther is any failure the other kinds don't cover.
	KindOther Kind = iota
	// KindHTTP is a non-2xx response with no more specific mapping.
	KindHTTP
	// KindRateLimited is HTTP 429.
	KindRateLimited
	// KindAuth is HTTP 401.
	KindAuth
	// KindAuthorization is HTTP 403.
	KindAuthorization
	// KindNotFound is HTTP 404.
	KindNotFound
	// KindPrecondition is HTTP 412, an ETag mismatch.
	KindPrecondition
	// KindTimeout is a request that ran out of time.
	KindTimeout
	// KindConnection is a failure to reach the server at all.
	KindConnection
	// KindJSON is a response body that would not decode.
	KindJSON
	// KindSerialization is a request body that would not encode.
	KindSerialization
	// KindConfig is an invalid client configuration.
	KindConfig
	// KindRetriesExhausted means every retry attempt failed.
	KindRetriesExhausted
	// KindAPI is an error response reported by Salesforce itself,
	// carrying its errorCode.
	KindAPI
)

// Error is the failure type every client in this package returns for
// transport and API errors. Status is set for KindHTTP; ErrorCode and
// Fields for KindAPI; RetryAfter for KindRateLimited when the server
// sent one.
type Error struct {
	Kind       Kind
	Status     int
	ErrorCode  string
	Message    string
	Fields     []string
	RetryAfter time.Duration

	cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("HTTP error: %d %s", e.Status, e.Message)
	case KindRateLimited:
		if e.RetryAfter > 0 {
			return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
		}
		return "rate limited"
	case KindAuth:
		return "authentication error: " + e.Message
	case KindAuthorization:
		return "authorization error: " + e.Message
	case KindNotFound:
		return "not found: " + e.Message
	case KindPrecondition:
		return "precondition failed: " + e.Message
	case KindTimeout:
		return "request timeout"
	case KindConnection:
		return "connection error: " + e.Message
	case KindJSON:
		return "json error: " + e.Message
	case KindSerialization:
		return "serialization error: " + e.Message
	case KindConfig:
		return "configuration error: " + e.Message
	case KindRetriesExhausted:
		return "retries exhausted: " + e.Message
	case KindAPI:
		return fmt.Sprintf("salesforce api error: %s - %s", e.ErrorCode, e.Message)
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error { return e.cause }

// Retryable reports whether retrying the request could help.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindRateLimited, KindTimeout, KindConnection:
		return true
	case KindHTTP:
		switch e.Status {
		case 429, 500, 502, 503, 504:
			return true
		}
	}
	return false
}

func newErr(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func wrapErr(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// BulkError is a Bulk API failure. Transport, when set, carries the
// underlying transport or API error; when nil the failure is specific
// to bulk job handling (bad job state, malformed listing).
type BulkError struct {
	Message   string
	Transport *Error
}

func (e *BulkError) Error() string {
	if e.Transport != nil {
		return "bulk: " + e.Transport.Error()
	}
	return "bulk: " + e.Message
}

func (e *BulkError) Unwrap() error {
	if e.Transport != nil {
		return e.Transport
	}
	return nil
}

// ToolingError is a Tooling API failure; see BulkError for the
// Transport convention.
type ToolingError struct {
	Message   string
	Transport *Error
}

func (e *ToolingError) Error() string {
	if e.Transport != nil {
		return "tooling: " + e.Transport.Error()
	}
	return "tooling: " + e.Message
}

func (e *ToolingError) Unwrap() error {
	if e.Transport != nil {
		return e.Transport
	}
	return nil
}

// MetadataError is a Metadata API failure. SOAP faults are reported as
// KindAPI transport errors with the fault code in ErrorCode.
type MetadataError struct {
	Message   string
	Transport *Error
}

func (e *MetadataError) Error() string {
	if e.Transport != nil {
		return "metadata: " + e.Transport.Error()
	}
	return "metadata: " + e.Message
}

func (e *MetadataError) Unwrap() error {
	if e.Transport != nil {
		return e.Transport
	}
	return nil
}
