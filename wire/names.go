package wire

// Host function names. These are the import names a guest module links
// against (import module "env") and the names the bridge registers. The
// set is fixed: the bridge validates a guest's imports against it at
// construction time.
const (
	// REST: core CRUD & query
	NameQuery           = "sf_query"
	NameQueryMore       = "sf_query_more"
	NameCreate          = "sf_create"
	NameGet             = "sf_get"
	NameUpdate          = "sf_update"
	NameDelete          = "sf_delete"
	NameUpsert          = "sf_upsert"
	NameDescribeGlobal  = "sf_describe_global"
	NameDescribeSObject = "sf_describe_sobject"
	NameSearch          = "sf_search"
	NameLimits          = "sf_limits"
	NameVersions        = "sf_versions"
	NameGetDeleted      = "sf_get_deleted"
	NameGetUpdated      = "sf_get_updated"

	// REST: composite
	NameComposite      = "sf_composite"
	NameCompositeBatch = "sf_composite_batch"
	NameCompositeTree  = "sf_composite_tree"
	NameCompositeGraph = "sf_composite_graph"

	// REST: collections
	NameCreateMultiple = "sf_create_multiple"
	NameUpdateMultiple = "sf_update_multiple"
	NameGetMultiple    = "sf_get_multiple"
	NameDeleteMultiple = "sf_delete_multiple"

	// REST: process rules & approvals
	NameListProcessRules           = "sf_list_process_rules"
	NameListProcessRulesForSObject = "sf_list_process_rules_for_sobject"
	NameTriggerProcessRules        = "sf_trigger_process_rules"
	NameListPendingApprovals       = "sf_list_pending_approvals"
	NameSubmitApproval             = "sf_submit_approval"

	// REST: list views
	NameListViews        = "sf_list_views"
	NameGetListView      = "sf_get_list_view"
	NameDescribeListView = "sf_describe_list_view"
	NameExecuteListView  = "sf_execute_list_view"

	// REST: quick actions
	NameListGlobalQuickActions     = "sf_list_global_quick_actions"
	NameDescribeGlobalQuickAction  = "sf_describe_global_quick_action"
	NameListQuickActions           = "sf_list_quick_actions"
	NameDescribeQuickAction        = "sf_describe_quick_action"
	NameInvokeQuickAction          = "sf_invoke_quick_action"

	// REST: invocable actions
	NameListStandardActions     = "sf_list_standard_actions"
	NameListCustomActionTypes   = "sf_list_custom_action_types"
	NameListCustomActions       = "sf_list_custom_actions"
	NameDescribeStandardAction  = "sf_describe_standard_action"
	NameDescribeCustomAction    = "sf_describe_custom_action"
	NameInvokeStandardAction    = "sf_invoke_standard_action"
	NameInvokeCustomAction      = "sf_invoke_custom_action"

	// REST: layouts
	NameDescribeLayouts                = "sf_describe_layouts"
	NameDescribeNamedLayout            = "sf_describe_named_layout"
	NameDescribeApprovalLayouts        = "sf_describe_approval_layouts"
	NameDescribeCompactLayouts         = "sf_describe_compact_layouts"
	NameDescribeGlobalPublisherLayouts = "sf_describe_global_publisher_layouts"
	NameCompactLayoutsMulti            = "sf_compact_layouts_multi"

	// REST: knowledge
	NameKnowledgeSettings  = "sf_knowledge_settings"
	NameKnowledgeArticles  = "sf_knowledge_articles"
	NameDataCategoryGroups = "sf_data_category_groups"
	NameDataCategories     = "sf_data_categories"

	// REST: standalone endpoints
	NameTabs                   = "sf_tabs"
	NameTheme                  = "sf_theme"
	NameAppMenu                = "sf_app_menu"
	NameRecentItems            = "sf_recent_items"
	NameRelevantItems          = "sf_relevant_items"
	NamePlatformEventSchema    = "sf_platform_event_schema"
	NameLightningToggleMetrics = "sf_lightning_toggle_metrics"
	NameLightningUsage         = "sf_lightning_usage"

	// REST: user password
	NameGetUserPasswordStatus = "sf_get_user_password_status"
	NameSetUserPassword       = "sf_set_user_password"
	NameResetUserPassword     = "sf_reset_user_password"

	// REST: scheduler
	NameAppointmentCandidates = "sf_appointment_candidates"
	NameAppointmentSlots      = "sf_appointment_slots"

	// REST: consent
	NameReadConsent      = "sf_read_consent"
	NameWriteConsent     = "sf_write_consent"
	NameReadMultiConsent = "sf_read_multi_consent"

	// REST: binary
	NameGetBlob          = "sf_get_blob"
	NameGetRichTextImage = "sf_get_rich_text_image"
	NameGetRelationship  = "sf_get_relationship"

	// REST: embedded service
	NameGetEmbeddedServiceConfig = "sf_get_embedded_service_config"

	// REST: search enhancements
	NameParameterizedSearch = "sf_parameterized_search"
	NameSearchSuggestions   = "sf_search_suggestions"
	NameSearchScopeOrder    = "sf_search_scope_order"
	NameSearchResultLayouts = "sf_search_result_layouts"

	// Bulk API 2.0
	NameBulkCreateIngestJob  = "sf_bulk_create_ingest_job"
	NameBulkUploadJobData    = "sf_bulk_upload_job_data"
	NameBulkCloseIngestJob   = "sf_bulk_close_ingest_job"
	NameBulkAbortIngestJob   = "sf_bulk_abort_ingest_job"
	NameBulkGetIngestJob     = "sf_bulk_get_ingest_job"
	NameBulkGetJobResults    = "sf_bulk_get_job_results"
	NameBulkDeleteIngestJob  = "sf_bulk_delete_ingest_job"
	NameBulkGetAllIngestJobs = "sf_bulk_get_all_ingest_jobs"
	NameBulkAbortQueryJob    = "sf_bulk_abort_query_job"
	NameBulkGetQueryResults  = "sf_bulk_get_query_results"

	// Tooling API
	NameToolingQuery            = "sf_tooling_query"
	NameToolingExecuteAnonymous = "sf_tooling_execute_anonymous"
	NameToolingGet              = "sf_tooling_get"
	NameToolingCreate           = "sf_tooling_create"
	NameToolingDelete           = "sf_tooling_delete"

	// Metadata API
	NameMetadataDeploy              = "sf_metadata_deploy"
	NameMetadataCheckDeployStatus   = "sf_metadata_check_deploy_status"
	NameMetadataRetrieve            = "sf_metadata_retrieve"
	NameMetadataCheckRetrieveStatus = "sf_metadata_check_retrieve_status"
	NameMetadataList                = "sf_metadata_list"
	NameMetadataDescribe            = "sf_metadata_describe"
)

// ImportModule is the WASM import module under which the bridge
// registers every host function.
const ImportModule = "env"

// AllocExport is the guest export the host uses to place result buffers
// into guest linear memory.
const AllocExport = "sf_alloc"
