//go:build wasip1

package guest

import "github.com/quillback/sfbridge/wire"

// BulkCreateIngestJob opens a Bulk API 2.0 ingest job.
func BulkCreateIngestJob(req wire.BulkCreateIngestJobRequest) (wire.BulkJobResponse, error) {
	return invoke[wire.BulkCreateIngestJobRequest, wire.BulkJobResponse](importBulkCreateIngestJob, req)
}

// BulkUploadJobData uploads CSV data to an open ingest job.
func BulkUploadJobData(jobID, csvData string) error {
	_, err := invoke[wire.BulkUploadJobDataRequest, wire.Empty](importBulkUploadJobData, wire.BulkUploadJobDataRequest{JobID: jobID, CSVData: csvData})
	return err
}

// BulkCloseIngestJob marks an ingest job's upload complete so
// processing starts.
func BulkCloseIngestJob(jobID string) (wire.BulkJobResponse, error) {
	return invoke[wire.BulkJobIDRequest, wire.BulkJobResponse](importBulkCloseIngestJob, wire.BulkJobIDRequest{JobID: jobID})
}

// BulkAbortIngestJob aborts an ingest job.
func BulkAbortIngestJob(jobID string) (wire.BulkJobResponse, error) {
	return invoke[wire.BulkJobIDRequest, wire.BulkJobResponse](importBulkAbortIngestJob, wire.BulkJobIDRequest{JobID: jobID})
}

// BulkGetIngestJob reads the state of an ingest job.
func BulkGetIngestJob(jobID string) (wire.BulkJobResponse, error) {
	return invoke[wire.BulkJobIDRequest, wire.BulkJobResponse](importBulkGetIngestJob, wire.BulkJobIDRequest{JobID: jobID})
}

// BulkGetJobResults fetches one class of ingest job results; resultType
// is successful, failed, or unprocessed.
func BulkGetJobResults(jobID, resultType string) (wire.BulkJobResultsResponse, error) {
	return invoke[wire.BulkJobResultsRequest, wire.BulkJobResultsResponse](importBulkGetJobResults, wire.BulkJobResultsRequest{JobID: jobID, ResultType: resultType})
}

// BulkDeleteIngestJob deletes a finished ingest job.
func BulkDeleteIngestJob(jobID string) error {
	_, err := invoke[wire.BulkJobIDRequest, wire.Empty](importBulkDeleteIngestJob, wire.BulkJobIDRequest{JobID: jobID})
	return err
}

// BulkGetAllIngestJobs lists the org's ingest jobs.
func BulkGetAllIngestJobs() (wire.BulkJobListResponse, error) {
	return invokeNullary[wire.BulkJobListResponse](importBulkGetAllIngestJobs)
}

// BulkAbortQueryJob aborts a bulk query job.
func BulkAbortQueryJob(jobID string) (wire.BulkJobResponse, error) {
	return invoke[wire.BulkJobIDRequest, wire.BulkJobResponse](importBulkAbortQueryJob, wire.BulkJobIDRequest{JobID: jobID})
}

// BulkGetQueryResults pages through bulk query job results.
func BulkGetQueryResults(req wire.BulkQueryResultsRequest) (wire.BulkQueryResultsResponse, error) {
	return invoke[wire.BulkQueryResultsRequest, wire.BulkQueryResultsResponse](importBulkGetQueryResults, req)
}
