package wire

import "encoding/json"

// QueryRequest asks for a SOQL query.
type QueryRequest struct {
	SOQL string `json:"soql"`
	// IncludeDeleted routes the query through the queryAll endpoint so
	// deleted and archived records are returned too.
	IncludeDeleted bool `json:"include_deleted,omitempty"`
}

// QueryResponse is one page of query results.
type QueryResponse struct {
	TotalSize      uint64            `json:"total_size"`
	Done           bool              `json:"done"`
	Records        []json.RawMessage `json:"records"`
	NextRecordsURL string            `json:"next_records_url,omitempty"`
}

// QueryMoreRequest fetches the next page of an earlier query.
type QueryMoreRequest struct {
	NextRecordsURL string `json:"next_records_url"`
}

// CreateRequest creates a record.
type CreateRequest struct {
	SObject string          `json:"sobject"`
	Record  json.RawMessage `json:"record"`
}

// CreateResponse reports the new record's ID.
type CreateResponse struct {
	ID      string     `json:"id"`
	Success bool       `json:"success"`
	Errors  []APIError `json:"errors,omitempty"`
}

// GetRequest reads a record by ID, optionally projecting fields.
type GetRequest struct {
	SObject string   `json:"sobject"`
	ID      string   `json:"id"`
	Fields  []string `json:"fields,omitempty"`
}

// UpdateRequest patches a record.
type UpdateRequest struct {
	SObject string          `json:"sobject"`
	ID      string          `json:"id"`
	Record  json.RawMessage `json:"record"`
}

// DeleteRequest deletes a record.
type DeleteRequest struct {
	SObject string `json:"sobject"`
	ID      string `json:"id"`
}

// IDRequest identifies a resource by ID alone.
type IDRequest struct {
	ID string `json:"id"`
}

// UpsertRequest creates or updates a record keyed by an external ID.
type UpsertRequest struct {
	SObject         string          `json:"sobject"`
	ExternalIDField string          `json:"external_id_field"`
	ExternalIDValue string          `json:"external_id_value"`
	Record          json.RawMessage `json:"record"`
}

// UpsertResponse reports whether the upsert created a new record.
type UpsertResponse struct {
	ID      string     `json:"id"`
	Success bool       `json:"success"`
	Created bool       `json:"created"`
	Errors  []APIError `json:"errors,omitempty"`
}

// DescribeSObjectRequest names the SObject to describe.
type DescribeSObjectRequest struct {
	SObject string `json:"sobject"`
}

// SearchRequest runs a SOSL search.
type SearchRequest struct {
	SOSL string `json:"sosl"`
}

// SearchResponse holds the matched records.
type SearchResponse struct {
	SearchRecords []json.RawMessage `json:"search_records"`
}

// APIVersion is one entry from the versions endpoint.
type APIVersion struct {
	Label   string `json:"label"`
	URL     string `json:"url"`
	Version string `json:"version"`
}

// GetDeletedRequest asks for records deleted in a date range.
type GetDeletedRequest struct {
	SObject string `json:"sobject"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// GetDeletedResult lists deleted records and the covered window.
type GetDeletedResult struct {
	DeletedRecords        []DeletedRecord `json:"deletedRecords"`
	EarliestDateAvailable string          `json:"earliestDateAvailable"`
	LatestDateCovered     string          `json:"latestDateCovered"`
}

// DeletedRecord is one entry in a GetDeletedResult.
type DeletedRecord struct {
	ID          string `json:"id"`
	DeletedDate string `json:"deletedDate"`
}

// GetUpdatedRequest asks for records updated in a date range.
type GetUpdatedRequest struct {
	SObject string `json:"sobject"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// GetUpdatedResult lists updated record IDs.
type GetUpdatedResult struct {
	IDs               []string `json:"ids"`
	LatestDateCovered string   `json:"latestDateCovered"`
}

// CompositeRequest bundles up to 25 subrequests into one round trip.
type CompositeRequest struct {
	AllOrNone   bool                  `json:"all_or_none"`
	Subrequests []CompositeSubrequest `json:"subrequests"`
}

// CompositeSubrequest is one step of a composite call.
type CompositeSubrequest struct {
	Method      string          `json:"method"`
	URL         string          `json:"url"`
	ReferenceID string          `json:"reference_id"`
	Body        json.RawMessage `json:"body,omitempty"`
}

// CompositeResponse carries per-subrequest results.
type CompositeResponse struct {
	Responses []CompositeSubresponse `json:"responses"`
}

// CompositeSubresponse is the outcome of one composite subrequest.
type CompositeSubresponse struct {
	Body           json.RawMessage `json:"body"`
	HTTPStatusCode int             `json:"http_status_code"`
	ReferenceID    string          `json:"reference_id"`
}

// CompositeBatchRequest runs independent subrequests in one call.
type CompositeBatchRequest struct {
	HaltOnError bool                       `json:"halt_on_error"`
	Subrequests []CompositeBatchSubrequest `json:"subrequests"`
}

// CompositeBatchSubrequest is one step of a composite batch call.
type CompositeBatchSubrequest struct {
	Method    string          `json:"method"`
	URL       string          `json:"url"`
	RichInput json.RawMessage `json:"rich_input,omitempty"`
}

// CompositeBatchResponse carries per-subrequest results.
type CompositeBatchResponse struct {
	HasErrors bool                        `json:"has_errors"`
	Results   []CompositeBatchSubresponse `json:"results"`
}

// CompositeBatchSubresponse is the outcome of one batch subrequest.
type CompositeBatchSubresponse struct {
	StatusCode int             `json:"status_code"`
	Result     json.RawMessage `json:"result"`
}

// CompositeTreeRequest creates nested record trees.
type CompositeTreeRequest struct {
	SObject string            `json:"sobject"`
	Records []json.RawMessage `json:"records"`
}

// CompositeTreeResponse carries per-record results.
type CompositeTreeResponse struct {
	HasErrors bool                  `json:"has_errors"`
	Results   []CompositeTreeResult `json:"results"`
}

// CompositeTreeResult is the outcome for one record in a tree request.
type CompositeTreeResult struct {
	ReferenceID string     `json:"reference_id"`
	ID          string     `json:"id,omitempty"`
	Errors      []APIError `json:"errors,omitempty"`
}

// CompositeGraphRequest executes a graph of composite subrequests.
type CompositeGraphRequest struct {
	Graphs []json.RawMessage `json:"graphs"`
}

// CreateMultipleRequest creates up to 200 records in one call.
type CreateMultipleRequest struct {
	SObject   string            `json:"sobject"`
	Records   []json.RawMessage `json:"records"`
	AllOrNone bool              `json:"all_or_none"`
}

// UpdateMultipleRequest updates up to 200 records in one call.
type UpdateMultipleRequest struct {
	SObject   string                 `json:"sobject"`
	Records   []UpdateMultipleRecord `json:"records"`
	AllOrNone bool                   `json:"all_or_none"`
}

// UpdateMultipleRecord is one (id, fields) pair in an UpdateMultipleRequest.
type UpdateMultipleRecord struct {
	ID     string          `json:"id"`
	Fields json.RawMessage `json:"fields"`
}

// GetMultipleRequest reads up to 2000 records by ID.
type GetMultipleRequest struct {
	SObject string   `json:"sobject"`
	IDs     []string `json:"ids"`
	Fields  []string `json:"fields"`
}

// DeleteMultipleRequest deletes up to 200 records in one call.
type DeleteMultipleRequest struct {
	IDs       []string `json:"ids"`
	AllOrNone bool     `json:"all_or_none"`
}

// CollectionResult is the per-record outcome of a collection operation.
type CollectionResult struct {
	ID      string     `json:"id,omitempty"`
	Success bool       `json:"success"`
	Errors  []APIError `json:"errors,omitempty"`
	Created *bool      `json:"created,omitempty"`
}
