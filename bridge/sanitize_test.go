package bridge

import (
	"errors"
	"strings"
	"testing"

	"github.com/quillback/sfbridge/salesforce"
)

func TestSanitizeTransportVocabulary(t *testing.T) {
	tests := []struct {
		name string
		err  *salesforce.Error
		code string
	}{
		{"http", &salesforce.Error{Kind: salesforce.KindHTTP, Status: 502}, "HTTP_502"},
		{"rate limited", &salesforce.Error{Kind: salesforce.KindRateLimited}, "RATE_LIMITED"},
		{"auth", &salesforce.Error{Kind: salesforce.KindAuth}, "AUTH_ERROR"},
		{"authorization", &salesforce.Error{Kind: salesforce.KindAuthorization}, "AUTHORIZATION_ERROR"},
		{"not found", &salesforce.Error{Kind: salesforce.KindNotFound}, "NOT_FOUND"},
		{"precondition", &salesforce.Error{Kind: salesforce.KindPrecondition}, "PRECONDITION_FAILED"},
		{"timeout", &salesforce.Error{Kind: salesforce.KindTimeout}, "TIMEOUT"},
		{"connection", &salesforce.Error{Kind: salesforce.KindConnection}, "CONNECTION_ERROR"},
		{"json", &salesforce.Error{Kind: salesforce.KindJSON}, "JSON_ERROR"},
		{"serialization", &salesforce.Error{Kind: salesforce.KindSerialization}, "SERIALIZATION_ERROR"},
		{"config", &salesforce.Error{Kind: salesforce.KindConfig}, "CONFIG_ERROR"},
		{"retries", &salesforce.Error{Kind: salesforce.KindRetriesExhausted}, "RETRIES_EXHAUSTED"},
		{"other", &salesforce.Error{Kind: salesforce.KindOther}, "CLIENT_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := sanitizeTransport(tt.err)
			if code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, code)
			}
		})
	}
}

func TestSanitizeAPIErrorPassesCodeThrough(t *testing.T) {
	err := &salesforce.Error{
		Kind:      salesforce.KindAPI,
		ErrorCode: "DUPLICATE_VALUE",
		Message:   "duplicate value found",
	}
	code, msg := sanitizeTransport(err)
	if code != "DUPLICATE_VALUE" {
		t.Errorf("expected the Salesforce errorCode verbatim, got %s", code)
	}
	if msg != "duplicate value found" {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestSanitizeInvalidRequestWinsOverCategory(t *testing.T) {
	s := &State{}
	code, msg := sanitizeBulk(s, invalidRequestf("result type must be one of successful, failed, unprocessed; got %q", "bogus"))
	if code != "INVALID_REQUEST" {
		t.Errorf("expected INVALID_REQUEST, got %s", code)
	}
	if !strings.Contains(msg, "bogus") {
		t.Errorf("message does not name the bad value: %q", msg)
	}
}

func TestSanitizeCategoryErrors(t *testing.T) {
	s := &State{}
	tests := []struct {
		name string
		fn   sanitizer
		err  error
		code string
	}{
		{"bulk transport", sanitizeBulk, &salesforce.BulkError{Transport: &salesforce.Error{Kind: salesforce.KindNotFound}}, "NOT_FOUND"},
		{"bulk bare", sanitizeBulk, &salesforce.BulkError{Message: "job listing truncated"}, "BULK_ERROR"},
		{"tooling transport", sanitizeTooling, &salesforce.ToolingError{Transport: &salesforce.Error{Kind: salesforce.KindRateLimited}}, "RATE_LIMITED"},
		{"tooling bare", sanitizeTooling, &salesforce.ToolingError{Message: "bad anonymous body"}, "TOOLING_ERROR"},
		{"metadata fault", sanitizeMetadata, &salesforce.MetadataError{Transport: &salesforce.Error{Kind: salesforce.KindAPI, ErrorCode: "INVALID_TYPE", Message: "no such type"}}, "INVALID_TYPE"},
		{"metadata bare", sanitizeMetadata, &salesforce.MetadataError{Message: "empty manifest"}, "METADATA_ERROR"},
		{"bulk unknown", sanitizeBulk, errors.New("boom"), "BULK_ERROR"},
		{"tooling unknown", sanitizeTooling, errors.New("boom"), "TOOLING_ERROR"},
		{"metadata unknown", sanitizeMetadata, errors.New("boom"), "METADATA_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := tt.fn(s, tt.err)
			if code != tt.code {
				t.Errorf("expected %s, got %s", tt.code, code)
			}
		})
	}
}

func TestSanitizeRestUnknownError(t *testing.T) {
	code, msg := sanitizeRest(&State{}, errors.New("something odd"))
	if code != "OTHER_ERROR" {
		t.Errorf("expected OTHER_ERROR, got %s", code)
	}
	if msg != "something odd" {
		t.Errorf("unexpected message %q", msg)
	}
}

// Sanitizer output is a fixed point: scrubbing an already-scrubbed
// message changes nothing, and sanitizing an error rebuilt from a
// sanitizer's own (code, message) yields the same pair.
func TestSanitizeFixedPoint(t *testing.T) {
	const secret = "00Dxx0000001gPL!AQEAQHfixed_point_secret"
	s := &State{Scrubber: salesforce.NewScrubber(secret)}

	scrubbed := s.scrub("token " + secret + " rejected")
	if again := s.scrub(scrubbed); again != scrubbed {
		t.Errorf("scrub moved: %q then %q", scrubbed, again)
	}

	code, msg := sanitizeRest(s, &salesforce.Error{Kind: salesforce.KindAPI, ErrorCode: "DUPLICATE_VALUE", Message: "duplicate of " + secret})
	code2, msg2 := sanitizeRest(s, &salesforce.Error{Kind: salesforce.KindAPI, ErrorCode: code, Message: msg})
	if code2 != code || msg2 != msg {
		t.Errorf("rest sanitizer moved: (%s, %q) then (%s, %q)", code, msg, code2, msg2)
	}

	code, msg = sanitizeBulk(s, &salesforce.BulkError{Message: "upload with " + secret + " failed"})
	code2, msg2 = sanitizeBulk(s, &salesforce.BulkError{Message: msg})
	if code2 != code || msg2 != msg {
		t.Errorf("bulk sanitizer moved: (%s, %q) then (%s, %q)", code, msg, code2, msg2)
	}

	code, msg = sanitizeTooling(s, invalidRequestf("apex code must not be empty"))
	code2, msg2 = sanitizeTooling(s, invalidRequestf("%s", msg))
	if code2 != code || msg2 != msg {
		t.Errorf("invalid request sanitizer moved: (%s, %q) then (%s, %q)", code, msg, code2, msg2)
	}
}

func TestSanitizeScrubsRegisteredSecrets(t *testing.T) {
	const secret = "00Dxx0000001gPL!AQEAQHsanitize_secret"
	s := &State{Scrubber: salesforce.NewScrubber(secret)}

	err := &salesforce.Error{Kind: salesforce.KindAuth, Message: "token " + secret + " rejected"}
	_, msg := sanitizeRest(s, err)
	if strings.Contains(msg, secret) {
		t.Errorf("secret survived sanitization: %q", msg)
	}
	if !strings.Contains(msg, "[REDACTED]") {
		t.Errorf("expected a redaction marker, got %q", msg)
	}

	_, msg = sanitizeBulk(s, &salesforce.BulkError{Message: "upload failed with " + secret})
	if strings.Contains(msg, secret) {
		t.Errorf("secret survived bulk sanitization: %q", msg)
	}
}
