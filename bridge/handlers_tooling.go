package bridge

import (
	"context"
	"encoding/json"

	"github.com/quillback/sfbridge/wire"
)

func toolingFuncs() []HostFunc {
	return []HostFunc{
		unary(wire.NameToolingQuery, sanitizeTooling, func(ctx context.Context, s *State, req wire.ToolingQueryRequest) (wire.QueryResponse, error) {
			return s.Tooling.Query(ctx, req.SOQL)
		}),
		unary(wire.NameToolingExecuteAnonymous, sanitizeTooling, func(ctx context.Context, s *State, req wire.ExecuteAnonymousRequest) (wire.ExecuteAnonymousResponse, error) {
			if req.ApexCode == "" {
				return wire.ExecuteAnonymousResponse{}, invalidRequestf("execute anonymous requires apex code")
			}
			return s.Tooling.ExecuteAnonymous(ctx, req.ApexCode)
		}),
		unary(wire.NameToolingGet, sanitizeTooling, func(ctx context.Context, s *State, req wire.ToolingGetRequest) (json.RawMessage, error) {
			return s.Tooling.Get(ctx, req.SObject, req.ID)
		}),
		unary(wire.NameToolingCreate, sanitizeTooling, func(ctx context.Context, s *State, req wire.ToolingCreateRequest) (wire.CreateResponse, error) {
			return s.Tooling.Create(ctx, req.SObject, req.Record)
		}),
		unary(wire.NameToolingDelete, sanitizeTooling, func(ctx context.Context, s *State, req wire.ToolingDeleteRequest) (wire.Empty, error) {
			return wire.Empty{}, s.Tooling.Delete(ctx, req.SObject, req.ID)
		}),
	}
}
