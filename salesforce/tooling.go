package salesforce

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"

	"github.com/quillback/sfbridge/wire"
)

// ToolingClient covers the Tooling API surface the bridge exposes:
// query, anonymous Apex, and tooling record CRUD.
type ToolingClient struct {
	c *Client
}

// NewToolingClient wraps the shared transport.
func NewToolingClient(c *Client) *ToolingClient {
	return &ToolingClient{c: c}
}

func (t *ToolingClient) wrap(err error) error {
	if err == nil {
		return nil
	}
	var terr *Error
	if errors.As(err, &terr) {
		return &ToolingError{Message: terr.Message, Transport: terr}
	}
	return &ToolingError{Message: err.Error()}
}

func (t *ToolingClient) path(parts ...string) string {
	return t.c.dataPath(append([]string{"tooling"}, parts...)...)
}

// Query runs a SOQL query against tooling objects.
func (t *ToolingClient) Query(ctx context.Context, soql string) (wire.QueryResponse, error) {
	var body queryBody
	if err := t.c.get(ctx, t.path("query")+"?q="+url.QueryEscape(soql), &body); err != nil {
		return wire.QueryResponse{}, t.wrap(err)
	}
	return body.toWire(), nil
}

// ExecuteAnonymous compiles and runs a block of Apex.
func (t *ToolingClient) ExecuteAnonymous(ctx context.Context, apexCode string) (wire.ExecuteAnonymousResponse, error) {
	var body struct {
		Compiled            bool   `json:"compiled"`
		Success             bool   `json:"success"`
		CompileProblem      string `json:"compileProblem"`
		ExceptionMessage    string `json:"exceptionMessage"`
		ExceptionStackTrace string `json:"exceptionStackTrace"`
		Line                *int   `json:"line"`
		Column              *int   `json:"column"`
	}
	path := t.path("executeAnonymous") + "?anonymousBody=" + url.QueryEscape(apexCode)
	if err := t.c.get(ctx, path, &body); err != nil {
		return wire.ExecuteAnonymousResponse{}, t.wrap(err)
	}
	return wire.ExecuteAnonymousResponse{
		Compiled:            body.Compiled,
		Success:             body.Success,
		CompileProblem:      body.CompileProblem,
		ExceptionMessage:    body.ExceptionMessage,
		ExceptionStackTrace: body.ExceptionStackTrace,
		Line:                body.Line,
		Column:              body.Column,
	}, nil
}

// Get reads a tooling record by ID.
func (t *ToolingClient) Get(ctx context.Context, sobject, id string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := t.c.get(ctx, t.path("sobjects", sobject, id), &out); err != nil {
		return nil, t.wrap(err)
	}
	return out, nil
}

// Create inserts a tooling record.
func (t *ToolingClient) Create(ctx context.Context, sobject string, record json.RawMessage) (wire.CreateResponse, error) {
	var out wire.CreateResponse
	if err := t.c.post(ctx, t.path("sobjects", sobject), record, &out); err != nil {
		return wire.CreateResponse{}, t.wrap(err)
	}
	return out, nil
}

// Delete removes a tooling record.
func (t *ToolingClient) Delete(ctx context.Context, sobject, id string) error {
	return t.wrap(t.c.delete(ctx, t.path("sobjects", sobject, id), nil))
}
