package bridge

import (
	"errors"
	"fmt"

	"github.com/quillback/sfbridge/salesforce"
)

// The closed code vocabulary guests see. Salesforce-reported domain
// errors additionally pass their own errorCode through verbatim.
const (
	codeDecodeError        = "DECODE_ERROR"
	codeInvalidRequest     = "INVALID_REQUEST"
	codeRateLimited        = "RATE_LIMITED"
	codeAuthError          = "AUTH_ERROR"
	codeAuthorizationError = "AUTHORIZATION_ERROR"
	codeNotFound           = "NOT_FOUND"
	codePreconditionFailed = "PRECONDITION_FAILED"
	codeTimeout            = "TIMEOUT"
	codeConnectionError    = "CONNECTION_ERROR"
	codeJSONError          = "JSON_ERROR"
	codeSerializationError = "SERIALIZATION_ERROR"
	codeConfigError        = "CONFIG_ERROR"
	codeRetriesExhausted   = "RETRIES_EXHAUSTED"
	codeBulkError          = "BULK_ERROR"
	codeToolingError       = "TOOLING_ERROR"
	codeMetadataError      = "METADATA_ERROR"
	codeClientError        = "CLIENT_ERROR"
	codeOtherError         = "OTHER_ERROR"
)

// sanitizer maps an internal error to a (code, message) pair that is
// safe to hand to a guest. Implementations are pure functions of the
// error's structure; the message is scrubbed as a final backstop.
type sanitizer func(*State, error) (code, message string)

// invalidRequestError marks a request rejected by handler validation
// before any network call.
type invalidRequestError struct {
	msg string
}

func (e *invalidRequestError) Error() string { return e.msg }

func invalidRequestf(format string, args ...any) error {
	return &invalidRequestError{msg: fmt.Sprintf(format, args...)}
}

// sanitizeTransport maps a transport error to the fixed vocabulary.
// A Salesforce-reported error passes its own errorCode through.
func sanitizeTransport(e *salesforce.Error) (string, string) {
	switch e.Kind {
	case salesforce.KindHTTP:
		return fmt.Sprintf("HTTP_%d", e.Status), e.Error()
	case salesforce.KindRateLimited:
		return codeRateLimited, e.Error()
	case salesforce.KindAuth:
		return codeAuthError, e.Error()
	case salesforce.KindAuthorization:
		return codeAuthorizationError, e.Error()
	case salesforce.KindNotFound:
		return codeNotFound, e.Error()
	case salesforce.KindPrecondition:
		return codePreconditionFailed, e.Error()
	case salesforce.KindTimeout:
		return codeTimeout, e.Error()
	case salesforce.KindConnection:
		return codeConnectionError, e.Error()
	case salesforce.KindJSON:
		return codeJSONError, e.Error()
	case salesforce.KindSerialization:
		return codeSerializationError, e.Error()
	case salesforce.KindConfig:
		return codeConfigError, e.Error()
	case salesforce.KindRetriesExhausted:
		return codeRetriesExhausted, e.Error()
	case salesforce.KindAPI:
		return e.ErrorCode, e.Message
	default:
		return codeClientError, e.Error()
	}
}

func sanitizeRest(s *State, err error) (string, string) {
	code, msg := sanitizeRestBare(err)
	return code, s.scrub(msg)
}

func sanitizeRestBare(err error) (string, string) {
	var ire *invalidRequestError
	if errors.As(err, &ire) {
		return codeInvalidRequest, ire.msg
	}
	var terr *salesforce.Error
	if errors.As(err, &terr) {
		return sanitizeTransport(terr)
	}
	return codeOtherError, err.Error()
}

// sanitizeBulk prefers the category error's Transport variant; a bulk
// failure with no transport cause keeps the generic bulk code.
func sanitizeBulk(s *State, err error) (string, string) {
	var ire *invalidRequestError
	if errors.As(err, &ire) {
		return codeInvalidRequest, ire.msg
	}
	var berr *salesforce.BulkError
	if errors.As(err, &berr) {
		if berr.Transport != nil {
			code, msg := sanitizeTransport(berr.Transport)
			return code, s.scrub(msg)
		}
		return codeBulkError, s.scrub(berr.Message)
	}
	return codeBulkError, s.scrub(err.Error())
}

func sanitizeTooling(s *State, err error) (string, string) {
	var ire *invalidRequestError
	if errors.As(err, &ire) {
		return codeInvalidRequest, ire.msg
	}
	var terr *salesforce.ToolingError
	if errors.As(err, &terr) {
		if terr.Transport != nil {
			code, msg := sanitizeTransport(terr.Transport)
			return code, s.scrub(msg)
		}
		return codeToolingError, s.scrub(terr.Message)
	}
	return codeToolingError, s.scrub(err.Error())
}

func sanitizeMetadata(s *State, err error) (string, string) {
	var ire *invalidRequestError
	if errors.As(err, &ire) {
		return codeInvalidRequest, ire.msg
	}
	var merr *salesforce.MetadataError
	if errors.As(err, &merr) {
		if merr.Transport != nil {
			code, msg := sanitizeTransport(merr.Transport)
			return code, s.scrub(msg)
		}
		return codeMetadataError, s.scrub(merr.Message)
	}
	return codeMetadataError, s.scrub(err.Error())
}
