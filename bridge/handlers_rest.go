package bridge

import (
	"context"
	"encoding/json"

	"github.com/quillback/sfbridge/wire"
)

// restCoreFuncs covers query, CRUD, describes, search, and the org
// sync endpoints.
func restCoreFuncs() []HostFunc {
	return []HostFunc{
		unary(wire.NameQuery, sanitizeRest, func(ctx context.Context, s *State, req wire.QueryRequest) (wire.QueryResponse, error) {
			return s.Rest.Query(ctx, req.SOQL, req.IncludeDeleted)
		}),
		unary(wire.NameQueryMore, sanitizeRest, func(ctx context.Context, s *State, req wire.QueryMoreRequest) (wire.QueryResponse, error) {
			return s.Rest.QueryMore(ctx, req.NextRecordsURL)
		}),
		unary(wire.NameCreate, sanitizeRest, func(ctx context.Context, s *State, req wire.CreateRequest) (wire.CreateResponse, error) {
			return s.Rest.Create(ctx, req.SObject, req.Record)
		}),
		unary(wire.NameGet, sanitizeRest, func(ctx context.Context, s *State, req wire.GetRequest) (json.RawMessage, error) {
			return s.Rest.Get(ctx, req.SObject, req.ID, req.Fields)
		}),
		unary(wire.NameUpdate, sanitizeRest, func(ctx context.Context, s *State, req wire.UpdateRequest) (wire.Empty, error) {
			return wire.Empty{}, s.Rest.Update(ctx, req.SObject, req.ID, req.Record)
		}),
		unary(wire.NameDelete, sanitizeRest, func(ctx context.Context, s *State, req wire.DeleteRequest) (wire.Empty, error) {
			return wire.Empty{}, s.Rest.Delete(ctx, req.SObject, req.ID)
		}),
		unary(wire.NameUpsert, sanitizeRest, func(ctx context.Context, s *State, req wire.UpsertRequest) (wire.UpsertResponse, error) {
			return s.Rest.Upsert(ctx, req.SObject, req.ExternalIDField, req.ExternalIDValue, req.Record)
		}),
		nullary(wire.NameDescribeGlobal, sanitizeRest, func(ctx context.Context, s *State) (json.RawMessage, error) {
			return s.Rest.DescribeGlobal(ctx)
		}),
		unary(wire.NameDescribeSObject, sanitizeRest, func(ctx context.Context, s *State, req wire.DescribeSObjectRequest) (json.RawMessage, error) {
			return s.Rest.DescribeSObject(ctx, req.SObject)
		}),
		unary(wire.NameSearch, sanitizeRest, func(ctx context.Context, s *State, req wire.SearchRequest) (wire.SearchResponse, error) {
			return s.Rest.Search(ctx, req.SOSL)
		}),
		nullary(wire.NameLimits, sanitizeRest, func(ctx context.Context, s *State) (json.RawMessage, error) {
			return s.Rest.Limits(ctx)
		}),
		nullary(wire.NameVersions, sanitizeRest, func(ctx context.Context, s *State) ([]wire.APIVersion, error) {
			return s.Rest.Versions(ctx)
		}),
		unary(wire.NameGetDeleted, sanitizeRest, func(ctx context.Context, s *State, req wire.GetDeletedRequest) (wire.GetDeletedResult, error) {
			return s.Rest.GetDeleted(ctx, req.SObject, req.Start, req.End)
		}),
		unary(wire.NameGetUpdated, sanitizeRest, func(ctx context.Context, s *State, req wire.GetUpdatedRequest) (wire.GetUpdatedResult, error) {
			return s.Rest.GetUpdated(ctx, req.SObject, req.Start, req.End)
		}),
	}
}
