package bridge

import (
	"context"
	"encoding/json"

	"github.com/quillback/sfbridge/wire"
)

const maxSubrequests = 25

func compositeFuncs() []HostFunc {
	return []HostFunc{
		unary(wire.NameComposite, sanitizeRest, func(ctx context.Context, s *State, req wire.CompositeRequest) (wire.CompositeResponse, error) {
			if len(req.Subrequests) == 0 || len(req.Subrequests) > maxSubrequests {
				return wire.CompositeResponse{}, invalidRequestf("composite takes 1 to %d subrequests, got %d", maxSubrequests, len(req.Subrequests))
			}
			return s.Rest.Composite(ctx, req)
		}),
		unary(wire.NameCompositeBatch, sanitizeRest, func(ctx context.Context, s *State, req wire.CompositeBatchRequest) (wire.CompositeBatchResponse, error) {
			if len(req.Subrequests) == 0 || len(req.Subrequests) > maxSubrequests {
				return wire.CompositeBatchResponse{}, invalidRequestf("composite batch takes 1 to %d subrequests, got %d", maxSubrequests, len(req.Subrequests))
			}
			return s.Rest.CompositeBatch(ctx, req)
		}),
		unary(wire.NameCompositeTree, sanitizeRest, func(ctx context.Context, s *State, req wire.CompositeTreeRequest) (wire.CompositeTreeResponse, error) {
			return s.Rest.CompositeTree(ctx, req.SObject, req.Records)
		}),
		unary(wire.NameCompositeGraph, sanitizeRest, func(ctx context.Context, s *State, req wire.CompositeGraphRequest) (json.RawMessage, error) {
			if len(req.Graphs) == 0 {
				return nil, invalidRequestf("composite graph takes at least one graph")
			}
			return s.Rest.CompositeGraph(ctx, req.Graphs)
		}),
	}
}

func collectionFuncs() []HostFunc {
	return []HostFunc{
		unary(wire.NameCreateMultiple, sanitizeRest, func(ctx context.Context, s *State, req wire.CreateMultipleRequest) ([]wire.CollectionResult, error) {
			return s.Rest.CreateMultiple(ctx, req)
		}),
		unary(wire.NameUpdateMultiple, sanitizeRest, func(ctx context.Context, s *State, req wire.UpdateMultipleRequest) ([]wire.CollectionResult, error) {
			return s.Rest.UpdateMultiple(ctx, req)
		}),
		unary(wire.NameGetMultiple, sanitizeRest, func(ctx context.Context, s *State, req wire.GetMultipleRequest) ([]json.RawMessage, error) {
			if len(req.IDs) == 0 {
				return nil, invalidRequestf("get multiple takes at least one id")
			}
			if len(req.Fields) == 0 {
				return nil, invalidRequestf("get multiple takes at least one field")
			}
			return s.Rest.GetMultiple(ctx, req)
		}),
		unary(wire.NameDeleteMultiple, sanitizeRest, func(ctx context.Context, s *State, req wire.DeleteMultipleRequest) ([]wire.CollectionResult, error) {
			if len(req.IDs) == 0 {
				return nil, invalidRequestf("delete multiple takes at least one id")
			}
			return s.Rest.DeleteMultiple(ctx, req)
		}),
	}
}
