package salesforce

import (
	"context"
	"encoding/json"

	"github.com/quillback/sfbridge/wire"
)

// ListProcessRules lists workflow rules across all SObjects.
func (r *RestClient) ListProcessRules(ctx context.Context) (wire.ProcessRuleCollection, error) {
	var out wire.ProcessRuleCollection
	err := r.c.get(ctx, r.c.dataPath("process", "rules"), &out)
	return out, err
}

// ListProcessRulesForSObject lists workflow rules for one SObject.
func (r *RestClient) ListProcessRulesForSObject(ctx context.Context, sobject string) (wire.ProcessRuleCollection, error) {
	var body struct {
		Rules []wire.ProcessRule `json:"rules"`
	}
	if err := r.c.get(ctx, r.c.dataPath("process", "rules", sobject), &body); err != nil {
		return wire.ProcessRuleCollection{}, err
	}
	return wire.ProcessRuleCollection{Rules: map[string][]wire.ProcessRule{sobject: body.Rules}}, nil
}

// TriggerProcessRules fires all active workflow rules on the given
// records.
func (r *RestClient) TriggerProcessRules(ctx context.Context, contextIDs []string) (wire.ProcessRuleResult, error) {
	body := struct {
		ContextIDs []string `json:"contextIds"`
	}{contextIDs}
	var out wire.ProcessRuleResult
	err := r.c.post(ctx, r.c.dataPath("process", "rules"), body, &out)
	return out, err
}

// ListPendingApprovals lists approvals awaiting the session user.
func (r *RestClient) ListPendingApprovals(ctx context.Context) (wire.PendingApprovalCollection, error) {
	var out wire.PendingApprovalCollection
	err := r.c.get(ctx, r.c.dataPath("process", "approvals"), &out)
	return out, err
}

// SubmitApproval submits, approves, rejects, or reassigns approval
// requests.
func (r *RestClient) SubmitApproval(ctx context.Context, req wire.SubmitApprovalRequest) ([]wire.ApprovalResult, error) {
	body := struct {
		Requests []wire.SubmitApprovalRequest `json:"requests"`
	}{[]wire.SubmitApprovalRequest{req}}
	var out []wire.ApprovalResult
	err := r.c.post(ctx, r.c.dataPath("process", "approvals"), body, &out)
	return out, err
}

// ListViews lists the list views defined on an SObject.
func (r *RestClient) ListViews(ctx context.Context, sobject string) (wire.ListViewsResult, error) {
	var out wire.ListViewsResult
	err := r.c.get(ctx, r.c.dataPath("sobjects", sobject, "listviews"), &out)
	return out, err
}

// GetListView returns basic information for one list view.
func (r *RestClient) GetListView(ctx context.Context, sobject, listViewID string) (wire.ListView, error) {
	var out wire.ListView
	err := r.c.get(ctx, r.c.dataPath("sobjects", sobject, "listviews", listViewID), &out)
	return out, err
}

// DescribeListView returns the full description of a list view,
// including its SOQL.
func (r *RestClient) DescribeListView(ctx context.Context, sobject, listViewID string) (wire.ListViewDescribe, error) {
	var out wire.ListViewDescribe
	err := r.c.get(ctx, r.c.dataPath("sobjects", sobject, "listviews", listViewID, "describe"), &out)
	return out, err
}

// ExecuteListView runs a list view and returns its result rows.
func (r *RestClient) ExecuteListView(ctx context.Context, sobject, listViewID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("sobjects", sobject, "listviews", listViewID, "results"), &out)
	return out, err
}

// ListGlobalQuickActions lists quick actions not tied to an SObject.
func (r *RestClient) ListGlobalQuickActions(ctx context.Context) ([]wire.QuickActionMetadata, error) {
	var out []wire.QuickActionMetadata
	err := r.c.get(ctx, r.c.dataPath("quickActions"), &out)
	return out, err
}

// DescribeGlobalQuickAction describes one global quick action.
func (r *RestClient) DescribeGlobalQuickAction(ctx context.Context, action string) (wire.QuickActionDescribe, error) {
	var out wire.QuickActionDescribe
	err := r.c.get(ctx, r.c.dataPath("quickActions", action, "describe"), &out)
	return out, err
}

// ListQuickActions lists quick actions on an SObject.
func (r *RestClient) ListQuickActions(ctx context.Context, sobject string) ([]wire.QuickActionMetadata, error) {
	var out []wire.QuickActionMetadata
	err := r.c.get(ctx, r.c.dataPath("sobjects", sobject, "quickActions"), &out)
	return out, err
}

// DescribeQuickAction describes one quick action on an SObject.
func (r *RestClient) DescribeQuickAction(ctx context.Context, sobject, action string) (wire.QuickActionDescribe, error) {
	var out wire.QuickActionDescribe
	err := r.c.get(ctx, r.c.dataPath("sobjects", sobject, "quickActions", action, "describe"), &out)
	return out, err
}

// InvokeQuickAction executes a quick action. recordID, when set,
// targets a record-context action.
func (r *RestClient) InvokeQuickAction(ctx context.Context, req wire.InvokeQuickActionRequest) (json.RawMessage, error) {
	var path string
	if req.RecordID != "" {
		path = r.c.dataPath("sobjects", req.SObject, req.RecordID, "quickActions", req.Action)
	} else {
		path = r.c.dataPath("sobjects", req.SObject, "quickActions", req.Action)
	}
	var out json.RawMessage
	err := r.c.post(ctx, path, req.Body, &out)
	return out, err
}

// ListStandardActions lists the standard invocable actions.
func (r *RestClient) ListStandardActions(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("actions", "standard"), &out)
	return out, err
}

// ListCustomActionTypes lists the custom invocable action categories
// (apex, flow, and so on).
func (r *RestClient) ListCustomActionTypes(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("actions", "custom"), &out)
	return out, err
}

// ListCustomActions lists custom actions of one type.
func (r *RestClient) ListCustomActions(ctx context.Context, actionType string) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("actions", "custom", actionType), &out)
	return out, err
}

// DescribeStandardAction describes a standard invocable action.
func (r *RestClient) DescribeStandardAction(ctx context.Context, actionName string) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("actions", "standard", actionName), &out)
	return out, err
}

// DescribeCustomAction describes a custom invocable action.
func (r *RestClient) DescribeCustomAction(ctx context.Context, actionType, actionName string) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("actions", "custom", actionType, actionName), &out)
	return out, err
}

// InvokeStandardAction invokes a standard action with a list of input
// parameter sets.
func (r *RestClient) InvokeStandardAction(ctx context.Context, actionName string, inputs []json.RawMessage) (json.RawMessage, error) {
	body := struct {
		Inputs []json.RawMessage `json:"inputs"`
	}{inputs}
	var out json.RawMessage
	err := r.c.post(ctx, r.c.dataPath("actions", "standard", actionName), body, &out)
	return out, err
}

// InvokeCustomAction invokes a custom action with a list of input
// parameter sets.
func (r *RestClient) InvokeCustomAction(ctx context.Context, actionType, actionName string, inputs []json.RawMessage) (json.RawMessage, error) {
	body := struct {
		Inputs []json.RawMessage `json:"inputs"`
	}{inputs}
	var out json.RawMessage
	err := r.c.post(ctx, r.c.dataPath("actions", "custom", actionType, actionName), body, &out)
	return out, err
}
