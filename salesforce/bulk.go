package salesforce

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/quillback/sfbridge/wire"
)

// BulkClient covers the Bulk API 2.0 ingest and query job surfaces.
type BulkClient struct {
	c *Client
}

// NewBulkClient wraps the shared transport.
func NewBulkClient(c *Client) *BulkClient {
	return &BulkClient{c: c}
}

// bulkJobBody is the Salesforce-casing job shape.
type bulkJobBody struct {
	ID                     string `json:"id"`
	State                  string `json:"state"`
	Object                 string `json:"object"`
	Operation              string `json:"operation"`
	NumberRecordsProcessed int64  `json:"numberRecordsProcessed"`
	NumberRecordsFailed    int64  `json:"numberRecordsFailed"`
	CreatedDate            string `json:"createdDate"`
	SystemModstamp         string `json:"systemModstamp"`
	ErrorMessage           string `json:"errorMessage"`
}

func (b bulkJobBody) toWire() wire.BulkJobResponse {
	return wire.BulkJobResponse{
		ID:                     b.ID,
		State:                  b.State,
		Object:                 b.Object,
		Operation:              b.Operation,
		NumberRecordsProcessed: b.NumberRecordsProcessed,
		NumberRecordsFailed:    b.NumberRecordsFailed,
		CreatedDate:            b.CreatedDate,
		SystemModstamp:         b.SystemModstamp,
		ErrorMessage:           b.ErrorMessage,
	}
}

func (b *BulkClient) wrap(err error) error {
	if err == nil {
		return nil
	}
	var terr *Error
	if errors.As(err, &terr) {
		return &BulkError{Message: terr.Message, Transport: terr}
	}
	return &BulkError{Message: err.Error()}
}

// CreateIngestJob opens an ingest job. The column delimiter defaults to
// COMMA and the line ending to LF.
func (b *BulkClient) CreateIngestJob(ctx context.Context, req wire.BulkCreateIngestJobRequest) (wire.BulkJobResponse, error) {
	delim := req.ColumnDelimiter
	if delim == "" {
		delim = "COMMA"
	}
	ending := req.LineEnding
	if ending == "" {
		ending = "LF"
	}
	body := struct {
		Object              string `json:"object"`
		Operation           string `json:"operation"`
		ExternalIDFieldName string `json:"externalIdFieldName,omitempty"`
		ColumnDelimiter     string `json:"columnDelimiter"`
		LineEnding          string `json:"lineEnding"`
		ContentType         string `json:"contentType"`
	}{req.SObject, req.Operation, req.ExternalIDField, delim, ending, "CSV"}

	var job bulkJobBody
	if err := b.c.post(ctx, b.c.dataPath("jobs", "ingest"), body, &job); err != nil {
		return wire.BulkJobResponse{}, b.wrap(err)
	}
	return job.toWire(), nil
}

// UploadJobData uploads the CSV payload of an open ingest job.
func (b *BulkClient) UploadJobData(ctx context.Context, jobID, csvData string) error {
	path := b.c.dataPath("jobs", "ingest", jobID, "batches")
	res, err := b.c.sendStream(ctx, "PUT", path, strings.NewReader(csvData), "text/csv", false)
	if err != nil {
		return b.wrap(err)
	}
	return b.wrap(b.c.decodeInto("PUT", path, res, nil))
}

// CloseIngestJob marks a job's upload complete so processing starts.
func (b *BulkClient) CloseIngestJob(ctx context.Context, jobID string) (wire.BulkJobResponse, error) {
	return b.setJobState(ctx, "ingest", jobID, "UploadComplete")
}

// AbortIngestJob aborts an ingest job.
func (b *BulkClient) AbortIngestJob(ctx context.Context, jobID string) (wire.BulkJobResponse, error) {
	return b.setJobState(ctx, "ingest", jobID, "Aborted")
}

// AbortQueryJob aborts a query job.
func (b *BulkClient) AbortQueryJob(ctx context.Context, jobID string) (wire.BulkJobResponse, error) {
	return b.setJobState(ctx, "query", jobID, "Aborted")
}

func (b *BulkClient) setJobState(ctx context.Context, family, jobID, state string) (wire.BulkJobResponse, error) {
	body := struct {
		State string `json:"state"`
	}{state}
	var job bulkJobBody
	if err := b.c.patch(ctx, b.c.dataPath("jobs", family, jobID), body, &job); err != nil {
		return wire.BulkJobResponse{}, b.wrap(err)
	}
	return job.toWire(), nil
}

// GetIngestJob reads the current state of an ingest job.
func (b *BulkClient) GetIngestJob(ctx context.Context, jobID string) (wire.BulkJobResponse, error) {
	var job bulkJobBody
	if err := b.c.get(ctx, b.c.dataPath("jobs", "ingest", jobID), &job); err != nil {
		return wire.BulkJobResponse{}, b.wrap(err)
	}
	return job.toWire(), nil
}

// GetSuccessfulResults returns the CSV of successfully processed rows.
func (b *BulkClient) GetSuccessfulResults(ctx context.Context, jobID string) (string, error) {
	return b.getResultsCSV(ctx, jobID, "successfulResults")
}

// GetFailedResults returns the CSV of failed rows.
func (b *BulkClient) GetFailedResults(ctx context.Context, jobID string) (string, error) {
	return b.getResultsCSV(ctx, jobID, "failedResults")
}

// GetUnprocessedRecords returns the CSV of rows never processed.
func (b *BulkClient) GetUnprocessedRecords(ctx context.Context, jobID string) (string, error) {
	return b.getResultsCSV(ctx, jobID, "unprocessedrecords")
}

func (b *BulkClient) getResultsCSV(ctx context.Context, jobID, endpoint string) (string, error) {
	var out string
	if err := b.c.get(ctx, b.c.dataPath("jobs", "ingest", jobID, endpoint), &out); err != nil {
		return "", b.wrap(err)
	}
	return out, nil
}

// DeleteIngestJob deletes a finished ingest job.
func (b *BulkClient) DeleteIngestJob(ctx context.Context, jobID string) error {
	return b.wrap(b.c.delete(ctx, b.c.dataPath("jobs", "ingest", jobID), nil))
}

// GetAllIngestJobs returns one page of the ingest job listing.
func (b *BulkClient) GetAllIngestJobs(ctx context.Context) (wire.BulkJobListResponse, error) {
	var body struct {
		Records        []bulkJobBody `json:"records"`
		Done           bool          `json:"done"`
		NextRecordsURL string        `json:"nextRecordsUrl"`
	}
	if err := b.c.get(ctx, b.c.dataPath("jobs", "ingest"), &body); err != nil {
		return wire.BulkJobListResponse{}, b.wrap(err)
	}
	out := wire.BulkJobListResponse{Done: body.Done, NextRecordsURL: body.NextRecordsURL}
	out.Records = make([]wire.BulkJobResponse, len(body.Records))
	for i, rec := range body.Records {
		out.Records[i] = rec.toWire()
	}
	return out, nil
}

// GetQueryResults pages through the CSV results of a query job. The
// returned locator is empty once the final page has been read.
func (b *BulkClient) GetQueryResults(ctx context.Context, req wire.BulkQueryResultsRequest) (wire.BulkQueryResultsResponse, error) {
	path := b.c.dataPath("jobs", "query", req.JobID, "results")
	q := url.Values{}
	if req.Locator != "" {
		q.Set("locator", req.Locator)
	}
	if req.MaxRecords > 0 {
		q.Set("maxRecords", strconv.FormatUint(req.MaxRecords, 10))
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	res, err := b.c.sendStream(ctx, "GET", path, nil, "", true)
	if err != nil {
		return wire.BulkQueryResultsResponse{}, b.wrap(err)
	}
	locator := res.Header.Get("Sforce-Locator")
	if locator == "null" {
		locator = ""
	}
	var csv string
	if err := b.c.decodeInto("GET", path, res, &csv); err != nil {
		return wire.BulkQueryResultsResponse{}, b.wrap(err)
	}
	return wire.BulkQueryResultsResponse{CSVData: csv, Locator: locator}, nil
}
