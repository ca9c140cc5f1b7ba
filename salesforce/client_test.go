package salesforce

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "00Dxx0000001gPL!AQEAQH0secret_session_value"

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL, testToken, WithMaxRetries(1))
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c, srv
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient("", "token")
	require.Error(t, err)
	var terr *Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, KindConfig, terr.Kind)

	_, err = NewClient("https://example.my.salesforce.com", "")
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, KindConfig, terr.Kind)

	_, err = NewClient("not a url", "token")
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, KindConfig, terr.Kind)
}

func TestClientSendsBearerToken(t *testing.T) {
	var got string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	var out map[string]any
	require.NoError(t, c.get(context.Background(), "/services/data", &out))
	assert.Equal(t, "Bearer "+testToken, got)
}

func TestClassifyStatus(t *testing.T) {
	cases := []struct {
		status int
		body   string
		kind   Kind
	}{
		{401, `[{"message":"Session expired","errorCode":"INVALID_SESSION_ID"}]`, KindAuth},
		{403, `[{"message":"no access","errorCode":"INSUFFICIENT_ACCESS"}]`, KindAuthorization},
		{404, `[{"message":"gone","errorCode":"NOT_FOUND"}]`, KindNotFound},
		{412, `[{"message":"etag mismatch","errorCode":"PRECONDITION_FAILED"}]`, KindPrecondition},
		{429, `[{"message":"slow down","errorCode":"REQUEST_LIMIT_EXCEEDED"}]`, KindRateLimited},
		{400, `[{"message":"bad field","errorCode":"INVALID_FIELD","fields":["Foo__c"]}]`, KindAPI},
		{500, `[{"message":"boom","errorCode":"UNKNOWN_EXCEPTION"}]`, KindHTTP},
	}
	for _, tc := range cases {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(tc.body))
		}))
		err := c.get(context.Background(), "/services/data", nil)
		var terr *Error
		require.ErrorAs(t, err, &terr, "status %d", tc.status)
		assert.Equal(t, tc.kind, terr.Kind, "status %d", tc.status)
	}
}

func TestClassifyStatusAPIFields(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(400)
		w.Write([]byte(`[{"message":"bad","errorCode":"INVALID_FIELD","fields":["Name"]}]`))
	}))
	err := c.get(context.Background(), "/services/data", nil)
	var terr *Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "INVALID_FIELD", terr.ErrorCode)
	assert.Equal(t, []string{"Name"}, terr.Fields)
}

func TestRateLimitedRetryAfter(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(429)
		w.Write([]byte(`[{"message":"limit","errorCode":"REQUEST_LIMIT_EXCEEDED"}]`))
	}))
	err := c.get(context.Background(), "/services/data", nil)
	var terr *Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, KindRateLimited, terr.Kind)
	assert.Equal(t, 30*time.Second, terr.RetryAfter)
	assert.True(t, terr.Retryable())
}

func TestErrorNeverLeaksToken(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(401)
		w.Write([]byte(`[{"message":"bad token ` + testToken + `","errorCode":"INVALID_SESSION_ID"}]`))
	}))
	err := c.get(context.Background(), "/services/data", nil)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), testToken)
}

func TestRetryable(t *testing.T) {
	assert.True(t, (&Error{Kind: KindTimeout}).Retryable())
	assert.True(t, (&Error{Kind: KindConnection}).Retryable())
	assert.True(t, (&Error{Kind: KindHTTP, Status: 503}).Retryable())
	assert.False(t, (&Error{Kind: KindHTTP, Status: 400}).Retryable())
	assert.False(t, (&Error{Kind: KindAuth}).Retryable())
	assert.False(t, (&Error{Kind: KindAPI, ErrorCode: "INVALID_FIELD"}).Retryable())
}

func TestScrubber(t *testing.T) {
	s := NewScrubber("super-secret-token")
	scrubbed := s.Scrub("request failed: Bearer super-secret-token rejected")
	assert.NotContains(t, scrubbed, "super-secret-token")

	// Scrubbing twice changes nothing.
	assert.Equal(t, scrubbed, s.Scrub(scrubbed))

	// Short values are never registered, so common words survive.
	s.AddSecret("the")
	assert.Equal(t, "the answer", s.Scrub("the answer"))
}

func TestCategoryErrorUnwrap(t *testing.T) {
	transport := &Error{Kind: KindNotFound, Message: "no such job"}
	err := &BulkError{Message: transport.Message, Transport: transport}

	var terr *Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, KindNotFound, terr.Kind)

	bare := &ToolingError{Message: "bad state"}
	assert.NoError(t, bare.Unwrap())
}
