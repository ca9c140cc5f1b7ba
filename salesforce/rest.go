package salesforce

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/quillback/sfbridge/wire"
)

// RestClient covers the Salesforce REST API: query, CRUD, composite,
// collections, describes, actions, layouts, and the assorted standalone
// endpoints. It is safe for concurrent use.
type RestClient struct {
	c *Client
}

// NewRestClient wraps the shared transport.
func NewRestClient(c *Client) *RestClient {
	return &RestClient{c: c}
}

// queryBody is the Salesforce-casing page shape shared by query,
// queryAll, and query locators.
type queryBody struct {
	TotalSize      uint64            `json:"totalSize"`
	Done           bool              `json:"done"`
	Records        []json.RawMessage `json:"records"`
	NextRecordsURL string            `json:"nextRecordsUrl"`
}

func (b queryBody) toWire() wire.QueryResponse {
	return wire.QueryResponse{
		TotalSize:      b.TotalSize,
		Done:           b.Done,
		Records:        b.Records,
		NextRecordsURL: b.NextRecordsURL,
	}
}

// Query runs a SOQL query. includeDeleted routes it through queryAll so
// soft-deleted and archived rows are included.
func (r *RestClient) Query(ctx context.Context, soql string, includeDeleted bool) (wire.QueryResponse, error) {
	endpoint := "query"
	if includeDeleted {
		endpoint = "queryAll"
	}
	path := r.c.dataPath(endpoint) + "?q=" + url.QueryEscape(soql)
	var body queryBody
	if err := r.c.get(ctx, path, &body); err != nil {
		return wire.QueryResponse{}, err
	}
	return body.toWire(), nil
}

// QueryMore fetches the next page behind a query locator URL, as
// returned in a previous page's NextRecordsURL.
func (r *RestClient) QueryMore(ctx context.Context, nextRecordsURL string) (wire.QueryResponse, error) {
	if !strings.HasPrefix(nextRecordsURL, "/") {
		return wire.QueryResponse{}, newErr(KindConfig, "query locator must be a relative URL")
	}
	var body queryBody
	if err := r.c.get(ctx, nextRecordsURL, &body); err != nil {
		return wire.QueryResponse{}, err
	}
	return body.toWire(), nil
}

// Create inserts a record and returns its new ID.
func (r *RestClient) Create(ctx context.Context, sobject string, record json.RawMessage) (wire.CreateResponse, error) {
	var out wire.CreateResponse
	err := r.c.post(ctx, r.c.dataPath("sobjects", sobject), record, &out)
	return out, err
}

// Get reads a record by ID. fields, when non-empty, projects the result.
func (r *RestClient) Get(ctx context.Context, sobject, id string, fields []string) (json.RawMessage, error) {
	path := r.c.dataPath("sobjects", sobject, id)
	if len(fields) > 0 {
		path += "?fields=" + url.QueryEscape(strings.Join(fields, ","))
	}
	var out json.RawMessage
	err := r.c.get(ctx, path, &out)
	return out, err
}

// Update patches a record in place.
func (r *RestClient) Update(ctx context.Context, sobject, id string, record json.RawMessage) error {
	return r.c.patch(ctx, r.c.dataPath("sobjects", sobject, id), record, nil)
}

// Delete removes a record.
func (r *RestClient) Delete(ctx context.Context, sobject, id string) error {
	return r.c.delete(ctx, r.c.dataPath("sobjects", sobject, id), nil)
}

// Upsert creates or updates the record matching the external ID.
func (r *RestClient) Upsert(ctx context.Context, sobject, externalIDField, externalIDValue string, record json.RawMessage) (wire.UpsertResponse, error) {
	path := r.c.dataPath("sobjects", sobject, externalIDField, url.PathEscape(externalIDValue))
	var out wire.UpsertResponse
	err := r.c.patch(ctx, path, record, &out)
	return out, err
}

// DescribeGlobal lists every SObject visible to the session.
func (r *RestClient) DescribeGlobal(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("sobjects"), &out)
	return out, err
}

// DescribeSObject returns full metadata for one SObject.
func (r *RestClient) DescribeSObject(ctx context.Context, sobject string) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("sobjects", sobject, "describe"), &out)
	return out, err
}

// Search runs a SOSL search.
func (r *RestClient) Search(ctx context.Context, sosl string) (wire.SearchResponse, error) {
	var body struct {
		SearchRecords []json.RawMessage `json:"searchRecords"`
	}
	path := r.c.dataPath("search") + "?q=" + url.QueryEscape(sosl)
	if err := r.c.get(ctx, path, &body); err != nil {
		return wire.SearchResponse{}, err
	}
	return wire.SearchResponse{SearchRecords: body.SearchRecords}, nil
}

// Limits returns the org's limit counters.
func (r *RestClient) Limits(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("limits"), &out)
	return out, err
}

// Versions lists the API versions the org supports. This endpoint is
// unversioned.
func (r *RestClient) Versions(ctx context.Context) ([]wire.APIVersion, error) {
	var out []wire.APIVersion
	err := r.c.get(ctx, "/services/data", &out)
	return out, err
}

// GetDeleted lists records of an SObject deleted inside [start, end].
// Timestamps are ISO 8601.
func (r *RestClient) GetDeleted(ctx context.Context, sobject, start, end string) (wire.GetDeletedResult, error) {
	path := fmt.Sprintf("%s?start=%s&end=%s",
		r.c.dataPath("sobjects", sobject, "deleted"),
		url.QueryEscape(start), url.QueryEscape(end))
	var out wire.GetDeletedResult
	err := r.c.get(ctx, path, &out)
	return out, err
}

// GetUpdated lists IDs of records updated inside [start, end].
func (r *RestClient) GetUpdated(ctx context.Context, sobject, start, end string) (wire.GetUpdatedResult, error) {
	path := fmt.Sprintf("%s?start=%s&end=%s",
		r.c.dataPath("sobjects", sobject, "updated"),
		url.QueryEscape(start), url.QueryEscape(end))
	var out wire.GetUpdatedResult
	err := r.c.get(ctx, path, &out)
	return out, err
}
