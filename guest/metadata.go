//go:build wasip1

package guest

import "github.com/quillback/sfbridge/wire"

// MetadataDeploy deploys a base64-encoded metadata package zip and
// returns the async process ID.
func MetadataDeploy(zipBase64 string, opts wire.MetadataDeployOptions) (wire.MetadataAsyncResponse, error) {
	return invoke[wire.MetadataDeployRequest, wire.MetadataAsyncResponse](importMetadataDeploy, wire.MetadataDeployRequest{ZipBase64: zipBase64, Options: opts})
}

// MetadataCheckDeployStatus polls a deployment.
func MetadataCheckDeployStatus(asyncProcessID string, includeDetails bool) (wire.MetadataDeployResult, error) {
	return invoke[wire.MetadataCheckDeployStatusRequest, wire.MetadataDeployResult](importMetadataCheckDeployStatus, wire.MetadataCheckDeployStatusRequest{AsyncProcessID: asyncProcessID, IncludeDetails: includeDetails})
}

// MetadataRetrieve starts a metadata retrieval and returns the async
// process ID.
func MetadataRetrieve(req wire.MetadataRetrieveRequest) (wire.MetadataAsyncResponse, error) {
	return invoke[wire.MetadataRetrieveRequest, wire.MetadataAsyncResponse](importMetadataRetrieve, req)
}

// MetadataCheckRetrieveStatus polls a retrieval.
func MetadataCheckRetrieveStatus(asyncProcessID string, includeZip bool) (wire.MetadataRetrieveResult, error) {
	return invoke[wire.MetadataCheckRetrieveStatusRequest, wire.MetadataRetrieveResult](importMetadataCheckRetrieveStatus, wire.MetadataCheckRetrieveStatusRequest{AsyncProcessID: asyncProcessID, IncludeZip: includeZip})
}

// MetadataList lists the components of a metadata type.
func MetadataList(metadataType, folder string) ([]wire.MetadataComponentInfo, error) {
	return invoke[wire.MetadataListRequest, []wire.MetadataComponentInfo](importMetadataList, wire.MetadataListRequest{MetadataType: metadataType, Folder: folder})
}

// MetadataDescribe lists the metadata types of the org.
func MetadataDescribe() (wire.MetadataDescribeResult, error) {
	return invokeNullary[wire.MetadataDescribeResult](importMetadataDescribe)
}
