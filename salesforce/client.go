package salesforce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	urlpkg "net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sethgrid/pester"
	"go.uber.org/zap"
)

// DefaultAPIVersion is the REST API version used when none is set.
const DefaultAPIVersion = "v62.0"

// Client is the shared HTTP layer under the REST, Bulk, Tooling, and
// Metadata clients. It owns the instance URL, the access token, a
// retrying HTTP client for idempotent requests, and a oneshot client
// for everything else.
type Client struct {
	instanceURL string
	accessToken string
	apiVersion  string

	transport *http.Transport
	retry     *pester.Client
	oneshot   *http.Client

	logger   *zap.Logger
	scrubber *Scrubber
}

// Opt configures a Client.
type Opt interface {
	apply(*Client)
}

type clientOpt struct{ fn func(*Client) }

func (o clientOpt) apply(c *Client) { o.fn(c) }

// WithLogger sets the structured logger. The default is a nop logger.
func WithLogger(l *zap.Logger) Opt {
	return clientOpt{func(c *Client) { c.logger = l }}
}

// WithAPIVersion overrides the REST API version, e.g. "v62.0".
func WithAPIVersion(v string) Opt {
	return clientOpt{func(c *Client) {
		if !strings.HasPrefix(v, "v") {
			v = "v" + v
		}
		c.apiVersion = v
	}}
}

// WithTimeout sets the per-request timeout on both HTTP clients.
func WithTimeout(d time.Duration) Opt {
	return clientOpt{func(c *Client) {
		c.retry.Timeout = d
		c.oneshot.Timeout = d
	}}
}

// WithMaxRetries sets how many times the retrying client re-attempts a
// retryable request.
func WithMaxRetries(n int) Opt {
	return clientOpt{func(c *Client) { c.retry.MaxRetries = n }}
}

// NewClient builds the shared transport for the given org. instanceURL
// must be an absolute https URL; accessToken is the session token the
// client attaches to every request and registers with its scrubber.
func NewClient(instanceURL, accessToken string, opts ...Opt) (*Client, error) {
	if instanceURL == "" {
		return nil, newErr(KindConfig, "instance URL is required")
	}
	if accessToken == "" {
		return nil, newErr(KindConfig, "access token is required")
	}
	u, err := urlpkg.Parse(instanceURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, newErr(KindConfig, fmt.Sprintf("invalid instance URL %q", instanceURL))
	}

	transport := defaultTransport()

	retry := pester.New()
	retry.Transport = transport
	retry.MaxRetries = 3
	retry.Timeout = 30 * time.Second
	retry.Backoff = pester.ExponentialJitterBackoff
	// Retry only on transport errors and 5xx; pester re-issues the
	// request itself, so non-idempotent calls go through oneshot.
	retry.RetryOnHTTP429 = true

	c := &Client{
		instanceURL: strings.TrimSuffix(u.String(), "/"),
		accessToken: accessToken,
		apiVersion:  DefaultAPIVersion,
		transport:   transport,
		retry:       retry,
		oneshot:     &http.Client{Transport: transport, Timeout: 30 * time.Second},
		logger:      zap.NewNop(),
		scrubber:    NewScrubber(accessToken),
	}
	for _, opt := range opts {
		opt.apply(c)
	}

	c.retry.LogHook = func(e pester.ErrEntry) {
		if e.Err != nil && e.Retry <= c.retry.MaxRetries {
			c.logger.Debug("retrying request",
				zap.String("method", e.Verb),
				zap.Int("attempt", e.Retry),
				zap.String("error", c.scrubber.Scrub(e.Err.Error())))
		}
	}

	return c, nil
}

// InstanceURL returns the normalized org URL.
func (c *Client) InstanceURL() string { return c.instanceURL }

// APIVersion returns the REST API version in "vXX.X" form.
func (c *Client) APIVersion() string { return c.apiVersion }

// Scrubber returns the scrubber seeded with this client's token.
func (c *Client) Scrubber() *Scrubber { return c.scrubber }

// Close releases idle connections held by the underlying transport.
func (c *Client) Close() {
	c.transport.CloseIdleConnections()
}

// dataPath builds /services/data/<version>/<path...>.
func (c *Client) dataPath(parts ...string) string {
	return "/services/data/" + c.apiVersion + "/" + strings.Join(parts, "/")
}

// get issues a GET and decodes the JSON response into out (skipped when
// out is nil). GETs are idempotent and go through the retrying client.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodGet, path, nil, out, true)
}

// post issues a POST with a JSON body through the oneshot client.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPost, path, body, out, false)
}

// patch issues a PATCH with a JSON body through the oneshot client.
func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPatch, path, body, out, false)
}

// put issues a PUT with a JSON body through the oneshot client.
func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPut, path, body, out, false)
}

// delete issues a DELETE. Deletes are idempotent on Salesforce and use
// the retrying client.
func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodDelete, path, nil, out, true)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any, retryable bool) error {
	res, err := c.sendStream(ctx, method, path, body, "application/json", retryable)
	if err != nil {
		return err
	}
	return c.decodeInto(method, path, res, out)
}

// sendStream issues a request and returns the raw response. The caller
// owns the body. body may be an io.Reader for pre-encoded payloads.
func (c *Client) sendStream(ctx context.Context, method, path string, body any, contentType string, retryable bool) (*http.Response, error) {
	req, err := c.prepareRequest(ctx, method, path, body, contentType)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("sending request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Bool("retryable", retryable))

	var res *http.Response
	if retryable {
		res, err = c.retry.Do(req)
	} else {
		res, err = c.oneshot.Do(req)
	}
	if err != nil {
		return nil, c.classifyTransportErr(err)
	}

	if res.StatusCode/100 != 2 {
		defer res.Body.Close()
		resBody, readErr := io.ReadAll(res.Body)
		if readErr != nil {
			return nil, wrapErr(KindHTTP, fmt.Sprintf("%s %s: unreadable error body", method, path), readErr)
		}
		return nil, c.classifyStatus(res, resBody)
	}
	return res, nil
}

func (c *Client) prepareRequest(ctx context.Context, method, path string, body any, contentType string) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		if v, ok := body.(io.Reader); ok {
			r = v
		} else {
			bs, err := json.Marshal(body)
			if err != nil {
				return nil, wrapErr(KindSerialization, err.Error(), err)
			}
			r = bytes.NewReader(bs)
		}
	}

	url := path
	if !strings.Contains(path, "://") {
		url = c.instanceURL + path
	}
	req, err := http.NewRequestWithContext(ctx, method, url, r)
	if err != nil {
		return nil, wrapErr(KindConfig, fmt.Sprintf("unable to create request for %s %s", method, path), err)
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	return req, nil
}

// decodeInto reads and decodes a 2xx response body.
//
//   - *[]byte receives the raw body
//   - *string receives the raw body as a string
//   - anything else is JSON-decoded
func (c *Client) decodeInto(method, path string, res *http.Response, out any) error {
	defer res.Body.Close()
	if out == nil {
		io.Copy(io.Discard, res.Body)
		return nil
	}
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return wrapErr(KindConnection, fmt.Sprintf("unable to read %s %s response body", method, path), err)
	}
	switch t := out.(type) {
	case *[]byte:
		*t = data
	case *string:
		*t = string(data)
	default:
		if len(data) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return wrapErr(KindJSON, fmt.Sprintf("unable to decode %s %s response body: %v", method, path, err), err)
		}
	}
	return nil
}

func (c *Client) classifyTransportErr(err error) *Error {
	msg := c.scrubber.Scrub(err.Error())
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return wrapErr(KindTimeout, msg, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return wrapErr(KindTimeout, msg, err)
	case strings.Contains(msg, "exhausted all retries"):
		return wrapErr(KindRetriesExhausted, msg, err)
	default:
		return wrapErr(KindConnection, msg, err)
	}
}

// apiErrorBody is one entry of the JSON array Salesforce returns on
// failed REST calls.
type apiErrorBody struct {
	Message   string   `json:"message"`
	ErrorCode string   `json:"errorCode"`
	Fields    []string `json:"fields"`
}

func (c *Client) classifyStatus(res *http.Response, body []byte) *Error {
	msg := strings.TrimSpace(string(body))
	var fields []string
	errorCode := ""
	var entries []apiErrorBody
	if err := json.Unmarshal(body, &entries); err == nil && len(entries) > 0 {
		msg = entries[0].Message
		errorCode = entries[0].ErrorCode
		fields = entries[0].Fields
	}
	msg = c.scrubber.Scrub(msg)

	switch res.StatusCode {
	case http.StatusUnauthorized:
		return newErr(KindAuth, msg)
	case http.StatusForbidden:
		return newErr(KindAuthorization, msg)
	case http.StatusNotFound:
		return newErr(KindNotFound, msg)
	case http.StatusPreconditionFailed:
		return newErr(KindPrecondition, msg)
	case http.StatusTooManyRequests:
		e := newErr(KindRateLimited, msg)
		if s := res.Header.Get("Retry-After"); s != "" {
			if secs, err := strconv.Atoi(s); err == nil {
				e.RetryAfter = time.Duration(secs) * time.Second
			}
		}
		return e
	}

	// A 400 with a Salesforce errorCode is a domain error, not a
	// transport one.
	if errorCode != "" && res.StatusCode == http.StatusBadRequest {
		return &Error{Kind: KindAPI, ErrorCode: errorCode, Message: msg, Fields: fields}
	}
	return &Error{Kind: KindHTTP, Status: res.StatusCode, ErrorCode: errorCode, Message: msg, Fields: fields}
}

func defaultTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}
