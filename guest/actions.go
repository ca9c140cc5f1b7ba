//go:build wasip1

package guest

import (
	"encoding/json"

	"github.com/quillback/sfbridge/wire"
)

// ListProcessRules lists workflow rules across all SObjects.
func ListProcessRules() (wire.ProcessRuleCollection, error) {
	return invokeNullary[wire.ProcessRuleCollection](importListProcessRules)
}

// ListProcessRulesForSObject lists workflow rules for one SObject.
func ListProcessRulesForSObject(sobject string) (wire.ProcessRuleCollection, error) {
	return invoke[wire.ListProcessRulesForSObjectRequest, wire.ProcessRuleCollection](importListProcessRulesForSObject, wire.ListProcessRulesForSObjectRequest{SObject: sobject})
}

// TriggerProcessRules fires all workflow rules for the given records.
func TriggerProcessRules(contextIDs []string) (wire.ProcessRuleResult, error) {
	return invoke[wire.TriggerProcessRulesRequest, wire.ProcessRuleResult](importTriggerProcessRules, wire.TriggerProcessRulesRequest{ContextIDs: contextIDs})
}

// ListPendingApprovals lists approvals awaiting action.
func ListPendingApprovals() (wire.PendingApprovalCollection, error) {
	return invokeNullary[wire.PendingApprovalCollection](importListPendingApprovals)
}

// SubmitApproval submits, approves, or rejects an approval request.
func SubmitApproval(req wire.SubmitApprovalRequest) ([]wire.ApprovalResult, error) {
	return invoke[wire.SubmitApprovalRequest, []wire.ApprovalResult](importSubmitApproval, req)
}

// ListViews lists the list views of an SObject.
func ListViews(sobject string) (wire.ListViewsResult, error) {
	return invoke[wire.ListViewsRequest, wire.ListViewsResult](importListViews, wire.ListViewsRequest{SObject: sobject})
}

// GetListView reads one list view summary.
func GetListView(sobject, listViewID string) (wire.ListView, error) {
	return invoke[wire.ListViewRequest, wire.ListView](importGetListView, wire.ListViewRequest{SObject: sobject, ListViewID: listViewID})
}

// DescribeListView returns the full description of a list view.
func DescribeListView(sobject, listViewID string) (wire.ListViewDescribe, error) {
	return invoke[wire.ListViewRequest, wire.ListViewDescribe](importDescribeListView, wire.ListViewRequest{SObject: sobject, ListViewID: listViewID})
}

// ExecuteListView runs a list view and returns its records.
func ExecuteListView(sobject, listViewID string) (json.RawMessage, error) {
	return invoke[wire.ListViewRequest, json.RawMessage](importExecuteListView, wire.ListViewRequest{SObject: sobject, ListViewID: listViewID})
}

// ListGlobalQuickActions lists the org's global quick actions.
func ListGlobalQuickActions() ([]wire.QuickActionMetadata, error) {
	return invokeNullary[[]wire.QuickActionMetadata](importListGlobalQuickActions)
}

// DescribeGlobalQuickAction describes one global quick action.
func DescribeGlobalQuickAction(action string) (wire.QuickActionDescribe, error) {
	return invoke[wire.DescribeGlobalQuickActionRequest, wire.QuickActionDescribe](importDescribeGlobalQuickAction, wire.DescribeGlobalQuickActionRequest{Action: action})
}

// ListQuickActions lists the quick actions of an SObject.
func ListQuickActions(sobject string) ([]wire.QuickActionMetadata, error) {
	return invoke[wire.ListQuickActionsRequest, []wire.QuickActionMetadata](importListQuickActions, wire.ListQuickActionsRequest{SObject: sobject})
}

// DescribeQuickAction describes one quick action of an SObject.
func DescribeQuickAction(sobject, action string) (wire.QuickActionDescribe, error) {
	return invoke[wire.DescribeQuickActionRequest, wire.QuickActionDescribe](importDescribeQuickAction, wire.DescribeQuickActionRequest{SObject: sobject, Action: action})
}

// InvokeQuickAction invokes a quick action, on a record when RecordID
// is set.
func InvokeQuickAction(req wire.InvokeQuickActionRequest) (json.RawMessage, error) {
	return invoke[wire.InvokeQuickActionRequest, json.RawMessage](importInvokeQuickAction, req)
}

// ListStandardActions lists the standard invocable actions.
func ListStandardActions() (json.RawMessage, error) {
	return invokeNullary[json.RawMessage](importListStandardActions)
}

// ListCustomActionTypes lists the custom invocable action types.
func ListCustomActionTypes() (json.RawMessage, error) {
	return invokeNullary[json.RawMessage](importListCustomActionTypes)
}

// ListCustomActions lists the custom actions of a type.
func ListCustomActions(actionType string) (json.RawMessage, error) {
	return invoke[wire.ListCustomActionsRequest, json.RawMessage](importListCustomActions, wire.ListCustomActionsRequest{ActionType: actionType})
}

// DescribeStandardAction describes one standard invocable action.
func DescribeStandardAction(actionName string) (json.RawMessage, error) {
	return invoke[wire.ActionNameRequest, json.RawMessage](importDescribeStandardAction, wire.ActionNameRequest{ActionName: actionName})
}

// DescribeCustomAction describes one custom invocable action.
func DescribeCustomAction(actionType, actionName string) (json.RawMessage, error) {
	return invoke[wire.DescribeCustomActionRequest, json.RawMessage](importDescribeCustomAction, wire.DescribeCustomActionRequest{ActionType: actionType, ActionName: actionName})
}

// InvokeStandardAction invokes a standard action with input sets.
func InvokeStandardAction(actionName string, inputs []json.RawMessage) (json.RawMessage, error) {
	return invoke[wire.InvokeActionRequest, json.RawMessage](importInvokeStandardAction, wire.InvokeActionRequest{ActionName: actionName, Inputs: inputs})
}

// InvokeCustomAction invokes a custom action with input sets.
func InvokeCustomAction(actionType, actionName string, inputs []json.RawMessage) (json.RawMessage, error) {
	return invoke[wire.InvokeCustomActionRequest, json.RawMessage](importInvokeCustomAction, wire.InvokeCustomActionRequest{ActionType: actionType, ActionName: actionName, Inputs: inputs})
}
