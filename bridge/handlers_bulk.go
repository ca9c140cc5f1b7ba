package bridge

import (
	"context"

	"github.com/quillback/sfbridge/wire"
)

var bulkOperations = map[string]bool{
	"insert":     true,
	"update":     true,
	"upsert":     true,
	"delete":     true,
	"hardDelete": true,
}

var bulkResultTypes = map[string]bool{
	"successful":  true,
	"failed":      true,
	"unprocessed": true,
}

func bulkFuncs() []HostFunc {
	return []HostFunc{
		unary(wire.NameBulkCreateIngestJob, sanitizeBulk, func(ctx context.Context, s *State, req wire.BulkCreateIngestJobRequest) (wire.BulkJobResponse, error) {
			if !bulkOperations[req.Operation] {
				return wire.BulkJobResponse{}, invalidRequestf("bulk operation must be one of insert, update, upsert, delete, hardDelete; got %q", req.Operation)
			}
			if req.Operation == "upsert" && req.ExternalIDField == "" {
				return wire.BulkJobResponse{}, invalidRequestf("bulk upsert requires an external id field")
			}
			return s.Bulk.CreateIngestJob(ctx, req)
		}),
		unary(wire.NameBulkUploadJobData, sanitizeBulk, func(ctx context.Context, s *State, req wire.BulkUploadJobDataRequest) (wire.Empty, error) {
			if req.CSVData == "" {
				return wire.Empty{}, invalidRequestf("bulk upload requires csv data")
			}
			return wire.Empty{}, s.Bulk.UploadJobData(ctx, req.JobID, req.CSVData)
		}),
		unary(wire.NameBulkCloseIngestJob, sanitizeBulk, func(ctx context.Context, s *State, req wire.BulkJobIDRequest) (wire.BulkJobResponse, error) {
			return s.Bulk.CloseIngestJob(ctx, req.JobID)
		}),
		unary(wire.NameBulkAbortIngestJob, sanitizeBulk, func(ctx context.Context, s *State, req wire.BulkJobIDRequest) (wire.BulkJobResponse, error) {
			return s.Bulk.AbortIngestJob(ctx, req.JobID)
		}),
		unary(wire.NameBulkGetIngestJob, sanitizeBulk, func(ctx context.Context, s *State, req wire.BulkJobIDRequest) (wire.BulkJobResponse, error) {
			return s.Bulk.GetIngestJob(ctx, req.JobID)
		}),
		// The result type is validated before any network call; a
		// bogus value must not reach the backend.
		unary(wire.NameBulkGetJobResults, sanitizeBulk, func(ctx context.Context, s *State, req wire.BulkJobResultsRequest) (wire.BulkJobResultsResponse, error) {
			if !bulkResultTypes[req.ResultType] {
				return wire.BulkJobResultsResponse{}, invalidRequestf("result type must be one of successful, failed, unprocessed; got %q", req.ResultType)
			}
			var csv string
			var err error
			switch req.ResultType {
			case "successful":
				csv, err = s.Bulk.GetSuccessfulResults(ctx, req.JobID)
			case "failed":
				csv, err = s.Bulk.GetFailedResults(ctx, req.JobID)
			case "unprocessed":
				csv, err = s.Bulk.GetUnprocessedRecords(ctx, req.JobID)
			}
			if err != nil {
				return wire.BulkJobResultsResponse{}, err
			}
			return wire.BulkJobResultsResponse{CSVData: csv}, nil
		}),
		unary(wire.NameBulkDeleteIngestJob, sanitizeBulk, func(ctx context.Context, s *State, req wire.BulkJobIDRequest) (wire.Empty, error) {
			return wire.Empty{}, s.Bulk.DeleteIngestJob(ctx, req.JobID)
		}),
		nullary(wire.NameBulkGetAllIngestJobs, sanitizeBulk, func(ctx context.Context, s *State) (wire.BulkJobListResponse, error) {
			return s.Bulk.GetAllIngestJobs(ctx)
		}),
		unary(wire.NameBulkAbortQueryJob, sanitizeBulk, func(ctx context.Context, s *State, req wire.BulkJobIDRequest) (wire.BulkJobResponse, error) {
			return s.Bulk.AbortQueryJob(ctx, req.JobID)
		}),
		unary(wire.NameBulkGetQueryResults, sanitizeBulk, func(ctx context.Context, s *State, req wire.BulkQueryResultsRequest) (wire.BulkQueryResultsResponse, error) {
			return s.Bulk.GetQueryResults(ctx, req)
		}),
	}
}
