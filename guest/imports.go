//go:build wasip1

package guest

// Raw host function imports. Every wrapper in this package forwards to
// one of these; nothing else in guest code touches the packed ABI.

//go:wasmimport env sf_query
func importQuery(req uint64) uint64

//go:wasmimport env sf_query_more
func importQueryMore(req uint64) uint64

//go:wasmimport env sf_create
func importCreate(req uint64) uint64

//go:wasmimport env sf_get
func importGet(req uint64) uint64

//go:wasmimport env sf_update
func importUpdate(req uint64) uint64

//go:wasmimport env sf_delete
func importDelete(req uint64) uint64

//go:wasmimport env sf_upsert
func importUpsert(req uint64) uint64

//go:wasmimport env sf_describe_global
func importDescribeGlobal() uint64

//go:wasmimport env sf_describe_sobject
func importDescribeSObject(req uint64) uint64

//go:wasmimport env sf_search
func importSearch(req uint64) uint64

//go:wasmimport env sf_limits
func importLimits() uint64

//go:wasmimport env sf_versions
func importVersions() uint64

//go:wasmimport env sf_get_deleted
func importGetDeleted(req uint64) uint64

//go:wasmimport env sf_get_updated
func importGetUpdated(req uint64) uint64

//go:wasmimport env sf_composite
func importComposite(req uint64) uint64

//go:wasmimport env sf_composite_batch
func importCompositeBatch(req uint64) uint64

//go:wasmimport env sf_composite_tree
func importCompositeTree(req uint64) uint64

//go:wasmimport env sf_composite_graph
func importCompositeGraph(req uint64) uint64

//go:wasmimport env sf_create_multiple
func importCreateMultiple(req uint64) uint64

//go:wasmimport env sf_update_multiple
func importUpdateMultiple(req uint64) uint64

//go:wasmimport env sf_get_multiple
func importGetMultiple(req uint64) uint64

//go:wasmimport env sf_delete_multiple
func importDeleteMultiple(req uint64) uint64

//go:wasmimport env sf_list_process_rules
func importListProcessRules() uint64

//go:wasmimport env sf_list_process_rules_for_sobject
func importListProcessRulesForSObject(req uint64) uint64

//go:wasmimport env sf_trigger_process_rules
func importTriggerProcessRules(req uint64) uint64

//go:wasmimport env sf_list_pending_approvals
func importListPendingApprovals() uint64

//go:wasmimport env sf_submit_approval
func importSubmitApproval(req uint64) uint64

//go:wasmimport env sf_list_views
func importListViews(req uint64) uint64

//go:wasmimport env sf_get_list_view
func importGetListView(req uint64) uint64

//go:wasmimport env sf_describe_list_view
func importDescribeListView(req uint64) uint64

//go:wasmimport env sf_execute_list_view
func importExecuteListView(req uint64) uint64

//go:wasmimport env sf_list_global_quick_actions
func importListGlobalQuickActions() uint64

//go:wasmimport env sf_describe_global_quick_action
func importDescribeGlobalQuickAction(req uint64) uint64

//go:wasmimport env sf_list_quick_actions
func importListQuickActions(req uint64) uint64

//go:wasmimport env sf_describe_quick_action
func importDescribeQuickAction(req uint64) uint64

//go:wasmimport env sf_invoke_quick_action
func importInvokeQuickAction(req uint64) uint64

//go:wasmimport env sf_list_standard_actions
func importListStandardActions() uint64

//go:wasmimport env sf_list_custom_action_types
func importListCustomActionTypes() uint64

//go:wasmimport env sf_list_custom_actions
func importListCustomActions(req uint64) uint64

//go:wasmimport env sf_describe_standard_action
func importDescribeStandardAction(req uint64) uint64

//go:wasmimport env sf_describe_custom_action
func importDescribeCustomAction(req uint64) uint64

//go:wasmimport env sf_invoke_standard_action
func importInvokeStandardAction(req uint64) uint64

//go:wasmimport env sf_invoke_custom_action
func importInvokeCustomAction(req uint64) uint64

//go:wasmimport env sf_describe_layouts
func importDescribeLayouts(req uint64) uint64

//go:wasmimport env sf_describe_named_layout
func importDescribeNamedLayout(req uint64) uint64

//go:wasmimport env sf_describe_approval_layouts
func importDescribeApprovalLayouts(req uint64) uint64

//go:wasmimport env sf_describe_compact_layouts
func importDescribeCompactLayouts(req uint64) uint64

//go:wasmimport env sf_describe_global_publisher_layouts
func importDescribeGlobalPublisherLayouts() uint64

//go:wasmimport env sf_compact_layouts_multi
func importCompactLayoutsMulti(req uint64) uint64

//go:wasmimport env sf_knowledge_settings
func importKnowledgeSettings() uint64

//go:wasmimport env sf_knowledge_articles
func importKnowledgeArticles(req uint64) uint64

//go:wasmimport env sf_data_category_groups
func importDataCategoryGroups(req uint64) uint64

//go:wasmimport env sf_data_categories
func importDataCategories(req uint64) uint64

//go:wasmimport env sf_tabs
func importTabs() uint64

//go:wasmimport env sf_theme
func importTheme() uint64

//go:wasmimport env sf_app_menu
func importAppMenu(req uint64) uint64

//go:wasmimport env sf_recent_items
func importRecentItems() uint64

//go:wasmimport env sf_relevant_items
func importRelevantItems() uint64

//go:wasmimport env sf_platform_event_schema
func importPlatformEventSchema(req uint64) uint64

//go:wasmimport env sf_lightning_toggle_metrics
func importLightningToggleMetrics() uint64

//go:wasmimport env sf_lightning_usage
func importLightningUsage() uint64

//go:wasmimport env sf_get_user_password_status
func importGetUserPasswordStatus(req uint64) uint64

//go:wasmimport env sf_set_user_password
func importSetUserPassword(req uint64) uint64

//go:wasmimport env sf_reset_user_password
func importResetUserPassword(req uint64) uint64

//go:wasmimport env sf_appointment_candidates
func importAppointmentCandidates(req uint64) uint64

//go:wasmimport env sf_appointment_slots
func importAppointmentSlots(req uint64) uint64

//go:wasmimport env sf_read_consent
func importReadConsent(req uint64) uint64

//go:wasmimport env sf_write_consent
func importWriteConsent(req uint64) uint64

//go:wasmimport env sf_read_multi_consent
func importReadMultiConsent(req uint64) uint64

//go:wasmimport env sf_get_blob
func importGetBlob(req uint64) uint64

//go:wasmimport env sf_get_rich_text_image
func importGetRichTextImage(req uint64) uint64

//go:wasmimport env sf_get_relationship
func importGetRelationship(req uint64) uint64

//go:wasmimport env sf_get_embedded_service_config
func importGetEmbeddedServiceConfig() uint64

//go:wasmimport env sf_parameterized_search
func importParameterizedSearch(req uint64) uint64

//go:wasmimport env sf_search_suggestions
func importSearchSuggestions(req uint64) uint64

//go:wasmimport env sf_search_scope_order
func importSearchScopeOrder() uint64

//go:wasmimport env sf_search_result_layouts
func importSearchResultLayouts(req uint64) uint64

//go:wasmimport env sf_bulk_create_ingest_job
func importBulkCreateIngestJob(req uint64) uint64

//go:wasmimport env sf_bulk_upload_job_data
func importBulkUploadJobData(req uint64) uint64

//go:wasmimport env sf_bulk_close_ingest_job
func importBulkCloseIngestJob(req uint64) uint64

//go:wasmimport env sf_bulk_abort_ingest_job
func importBulkAbortIngestJob(req uint64) uint64

//go:wasmimport env sf_bulk_get_ingest_job
func importBulkGetIngestJob(req uint64) uint64

//go:wasmimport env sf_bulk_get_job_results
func importBulkGetJobResults(req uint64) uint64

//go:wasmimport env sf_bulk_delete_ingest_job
func importBulkDeleteIngestJob(req uint64) uint64

//go:wasmimport env sf_bulk_get_all_ingest_jobs
func importBulkGetAllIngestJobs() uint64

//go:wasmimport env sf_bulk_abort_query_job
func importBulkAbortQueryJob(req uint64) uint64

//go:wasmimport env sf_bulk_get_query_results
func importBulkGetQueryResults(req uint64) uint64

//go:wasmimport env sf_tooling_query
func importToolingQuery(req uint64) uint64

//go:wasmimport env sf_tooling_execute_anonymous
func importToolingExecuteAnonymous(req uint64) uint64

//go:wasmimport env sf_tooling_get
func importToolingGet(req uint64) uint64

//go:wasmimport env sf_tooling_create
func importToolingCreate(req uint64) uint64

//go:wasmimport env sf_tooling_delete
func importToolingDelete(req uint64) uint64

//go:wasmimport env sf_metadata_deploy
func importMetadataDeploy(req uint64) uint64

//go:wasmimport env sf_metadata_check_deploy_status
func importMetadataCheckDeployStatus(req uint64) uint64

//go:wasmimport env sf_metadata_retrieve
func importMetadataRetrieve(req uint64) uint64

//go:wasmimport env sf_metadata_check_retrieve_status
func importMetadataCheckRetrieveStatus(req uint64) uint64

//go:wasmimport env sf_metadata_list
func importMetadataList(req uint64) uint64

//go:wasmimport env sf_metadata_describe
func importMetadataDescribe() uint64
