package wire

// MetadataDeployRequest deploys a zipped metadata package.
type MetadataDeployRequest struct {
	// ZipBase64 is the base64-encoded package zip.
	ZipBase64 string                `json:"zip_base64"`
	Options   MetadataDeployOptions `json:"options,omitempty"`
}

// MetadataDeployOptions tunes a deployment.
type MetadataDeployOptions struct {
	CheckOnly bool `json:"check_only,omitempty"`
	// TestLevel is one of NoTestRun, RunLocalTests, RunAllTestsInOrg,
	// RunSpecifiedTests.
	TestLevel       string   `json:"test_level,omitempty"`
	RunTests        []string `json:"run_tests,omitempty"`
	RollbackOnError *bool    `json:"rollback_on_error,omitempty"`
}

// MetadataAsyncResponse carries the async process ID of a deploy or
// retrieve request.
type MetadataAsyncResponse struct {
	AsyncProcessID string `json:"async_process_id"`
}

// MetadataCheckDeployStatusRequest polls a deployment.
type MetadataCheckDeployStatusRequest struct {
	AsyncProcessID string `json:"async_process_id"`
	IncludeDetails bool   `json:"include_details,omitempty"`
}

// MetadataDeployResult is the state of a deployment.
type MetadataDeployResult struct {
	ID                       string `json:"id"`
	Done                     bool   `json:"done"`
	Status                   string `json:"status"`
	Success                  bool   `json:"success"`
	ErrorMessage             string `json:"error_message,omitempty"`
	NumberComponentErrors    int    `json:"number_component_errors"`
	NumberComponentsDeployed int    `json:"number_components_deployed"`
	NumberComponentsTotal    int    `json:"number_components_total"`
	NumberTestErrors         int    `json:"number_test_errors"`
	NumberTestsCompleted     int    `json:"number_tests_completed"`
	NumberTestsTotal         int    `json:"number_tests_total"`
}

// MetadataRetrieveRequest retrieves a metadata package.
type MetadataRetrieveRequest struct {
	// IsPackaged selects retrieval of a named managed package; when
	// false, Types drives an unpackaged manifest.
	IsPackaged  bool                  `json:"is_packaged,omitempty"`
	PackageName string                `json:"package_name,omitempty"`
	Types       []MetadataPackageType `json:"types,omitempty"`
	APIVersion  string                `json:"api_version,omitempty"`
}

// MetadataPackageType is one entry of a retrieve manifest.
type MetadataPackageType struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// MetadataCheckRetrieveStatusRequest polls a retrieval.
type MetadataCheckRetrieveStatusRequest struct {
	AsyncProcessID string `json:"async_process_id"`
	IncludeZip     bool   `json:"include_zip,omitempty"`
}

// MetadataRetrieveResult is the state of a retrieval.
type MetadataRetrieveResult struct {
	ID           string `json:"id"`
	Done         bool   `json:"done"`
	Status       string `json:"status"`
	Success      bool   `json:"success"`
	ZipBase64    string `json:"zip_base64,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// MetadataListRequest lists components of a metadata type.
type MetadataListRequest struct {
	MetadataType string `json:"metadata_type"`
	Folder       string `json:"folder,omitempty"`
}

// MetadataComponentInfo describes one metadata component.
type MetadataComponentInfo struct {
	FullName         string `json:"full_name"`
	FileName         string `json:"file_name"`
	ComponentType    string `json:"component_type"`
	ID               string `json:"id"`
	NamespacePrefix  string `json:"namespace_prefix,omitempty"`
	LastModifiedDate string `json:"last_modified_date,omitempty"`
}

// MetadataDescribeResult lists the metadata types of the org.
type MetadataDescribeResult struct {
	MetadataObjects       []MetadataTypeInfo `json:"metadata_objects"`
	OrganizationNamespace string             `json:"organization_namespace"`
	PartialSaveAllowed    bool               `json:"partial_save_allowed"`
	TestRequired          bool               `json:"test_required"`
}

// MetadataTypeInfo describes one metadata type.
type MetadataTypeInfo struct {
	XMLName       string   `json:"xml_name"`
	DirectoryName string   `json:"directory_name"`
	Suffix        string   `json:"suffix,omitempty"`
	InFolder      bool     `json:"in_folder"`
	MetaFile      bool     `json:"meta_file"`
	ChildXMLNames []string `json:"child_xml_names,omitempty"`
}
