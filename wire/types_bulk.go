package wire

// BulkCreateIngestJobRequest opens a Bulk API 2.0 ingest job.
type BulkCreateIngestJobRequest struct {
	SObject string `json:"sobject"`
	// Operation is one of insert, update, upsert, delete, hardDelete.
	Operation string `json:"operation"`
	// ExternalIDField is required for upsert operations.
	ExternalIDField string `json:"external_id_field,omitempty"`
	// ColumnDelimiter defaults to COMMA.
	ColumnDelimiter string `json:"column_delimiter,omitempty"`
	// LineEnding defaults to LF.
	LineEnding string `json:"line_ending,omitempty"`
}

// BulkJobResponse describes an ingest or query job.
type BulkJobResponse struct {
	ID                     string `json:"id"`
	State                  string `json:"state"`
	Object                 string `json:"object"`
	Operation              string `json:"operation"`
	NumberRecordsProcessed int64  `json:"number_records_processed"`
	NumberRecordsFailed    int64  `json:"number_records_failed"`
	CreatedDate            string `json:"created_date,omitempty"`
	SystemModstamp         string `json:"system_modstamp,omitempty"`
	ErrorMessage           string `json:"error_message,omitempty"`
}

// BulkUploadJobDataRequest uploads CSV data to an open ingest job.
type BulkUploadJobDataRequest struct {
	JobID   string `json:"job_id"`
	CSVData string `json:"csv_data"`
}

// BulkJobIDRequest identifies a bulk job.
type BulkJobIDRequest struct {
	JobID string `json:"job_id"`
}

// BulkJobResultsRequest fetches one class of ingest job results.
type BulkJobResultsRequest struct {
	JobID string `json:"job_id"`
	// ResultType is one of successful, failed, unprocessed.
	ResultType string `json:"result_type"`
}

// BulkJobResultsResponse carries CSV results.
type BulkJobResultsResponse struct {
	CSVData string `json:"csv_data"`
}

// BulkJobListResponse is one page of the job listing.
type BulkJobListResponse struct {
	Records        []BulkJobResponse `json:"records"`
	Done           bool              `json:"done"`
	NextRecordsURL string            `json:"next_records_url,omitempty"`
}

// BulkQueryResultsRequest pages through bulk query job results.
type BulkQueryResultsRequest struct {
	JobID      string `json:"job_id"`
	Locator    string `json:"locator,omitempty"`
	MaxRecords uint64 `json:"max_records,omitempty"`
}

// BulkQueryResultsResponse carries one page of CSV query results.
type BulkQueryResultsResponse struct {
	CSVData string `json:"csv_data"`
	// Locator is empty once all results have been returned.
	Locator string `json:"locator,omitempty"`
}
