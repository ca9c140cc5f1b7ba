package bridge

import (
	"context"

	"github.com/quillback/sfbridge/wire"
)

var deployTestLevels = map[string]bool{
	"NoTestRun":         true,
	"RunLocalTests":     true,
	"RunAllTestsInOrg":  true,
	"RunSpecifiedTests": true,
}

func metadataFuncs() []HostFunc {
	return []HostFunc{
		unary(wire.NameMetadataDeploy, sanitizeMetadata, func(ctx context.Context, s *State, req wire.MetadataDeployRequest) (wire.MetadataAsyncResponse, error) {
			if req.ZipBase64 == "" {
				return wire.MetadataAsyncResponse{}, invalidRequestf("metadata deploy requires a package zip")
			}
			if req.Options.TestLevel != "" && !deployTestLevels[req.Options.TestLevel] {
				return wire.MetadataAsyncResponse{}, invalidRequestf("unknown test level %q", req.Options.TestLevel)
			}
			id, err := s.Metadata.Deploy(ctx, req.ZipBase64, req.Options)
			if err != nil {
				return wire.MetadataAsyncResponse{}, err
			}
			return wire.MetadataAsyncResponse{AsyncProcessID: id}, nil
		}),
		unary(wire.NameMetadataCheckDeployStatus, sanitizeMetadata, func(ctx context.Context, s *State, req wire.MetadataCheckDeployStatusRequest) (wire.MetadataDeployResult, error) {
			return s.Metadata.CheckDeployStatus(ctx, req.AsyncProcessID, req.IncludeDetails)
		}),
		unary(wire.NameMetadataRetrieve, sanitizeMetadata, func(ctx context.Context, s *State, req wire.MetadataRetrieveRequest) (wire.MetadataAsyncResponse, error) {
			if req.IsPackaged && req.PackageName == "" {
				return wire.MetadataAsyncResponse{}, invalidRequestf("packaged retrieve requires a package name")
			}
			if !req.IsPackaged && len(req.Types) == 0 {
				return wire.MetadataAsyncResponse{}, invalidRequestf("unpackaged retrieve requires a manifest")
			}
			id, err := s.Metadata.Retrieve(ctx, req)
			if err != nil {
				return wire.MetadataAsyncResponse{}, err
			}
			return wire.MetadataAsyncResponse{AsyncProcessID: id}, nil
		}),
		unary(wire.NameMetadataCheckRetrieveStatus, sanitizeMetadata, func(ctx context.Context, s *State, req wire.MetadataCheckRetrieveStatusRequest) (wire.MetadataRetrieveResult, error) {
			return s.Metadata.CheckRetrieveStatus(ctx, req.AsyncProcessID, req.IncludeZip)
		}),
		unary(wire.NameMetadataList, sanitizeMetadata, func(ctx context.Context, s *State, req wire.MetadataListRequest) ([]wire.MetadataComponentInfo, error) {
			if req.MetadataType == "" {
				return nil, invalidRequestf("metadata list requires a type")
			}
			return s.Metadata.List(ctx, req.MetadataType, req.Folder)
		}),
		nullary(wire.NameMetadataDescribe, sanitizeMetadata, func(ctx context.Context, s *State) (wire.MetadataDescribeResult, error) {
			return s.Metadata.Describe(ctx)
		}),
	}
}
