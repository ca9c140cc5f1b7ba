package wire

import "encoding/json"

// ProcessRuleCollection groups process rules by SObject type.
type ProcessRuleCollection struct {
	Rules map[string][]ProcessRule `json:"rules"`
}

// ProcessRule is one workflow process rule.
type ProcessRule struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SObjectType string `json:"sobjectType,omitempty"`
	URL         string `json:"url,omitempty"`
}

// ListProcessRulesForSObjectRequest scopes rule listing to one SObject.
type ListProcessRulesForSObjectRequest struct {
	SObject string `json:"sobject"`
}

// TriggerProcessRulesRequest fires rules for the given record IDs.
type TriggerProcessRulesRequest struct {
	ContextIDs []string `json:"contextIds"`
}

// ProcessRuleResult is the outcome of triggering process rules.
type ProcessRuleResult struct {
	Errors  []APIError `json:"errors,omitempty"`
	Success bool       `json:"success"`
}

// PendingApprovalCollection groups pending approvals by process.
type PendingApprovalCollection struct {
	Approvals map[string][]PendingApproval `json:"approvals"`
}

// PendingApproval is one approval awaiting action.
type PendingApproval struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Object      string `json:"object,omitempty"`
	SortOrder   *int   `json:"sortOrder,omitempty"`
}

// SubmitApprovalRequest submits, approves, or rejects an approval.
type SubmitApprovalRequest struct {
	ActionType                string   `json:"actionType"`
	ContextID                 string   `json:"contextId"`
	ContextActorID            string   `json:"contextActorId,omitempty"`
	Comments                  string   `json:"comments,omitempty"`
	NextApproverIDs           []string `json:"nextApproverIds,omitempty"`
	ProcessDefinitionNameOrID string   `json:"processDefinitionNameOrId,omitempty"`
	SkipEntryCriteria         *bool    `json:"skipEntryCriteria,omitempty"`
}

// ApprovalResult is the outcome of an approval submission.
type ApprovalResult struct {
	ActorIDs       []string   `json:"actorIds,omitempty"`
	EntityID       string     `json:"entityId"`
	Errors         []APIError `json:"errors,omitempty"`
	InstanceID     string     `json:"instanceId"`
	InstanceStatus string     `json:"instanceStatus"`
	NewWorkitemIDs []string   `json:"newWorkitemIds,omitempty"`
	Success        bool       `json:"success"`
}

// ListViewsRequest lists the views defined for an SObject.
type ListViewsRequest struct {
	SObject string `json:"sobject"`
}

// ListViewsResult is one page of list views.
type ListViewsResult struct {
	Done           bool       `json:"done"`
	NextRecordsURL string     `json:"nextRecordsUrl,omitempty"`
	ListViews      []ListView `json:"listviews"`
}

// ListView is the summary of one list view.
type ListView struct {
	ID            string `json:"id"`
	DeveloperName string `json:"developerName"`
	Label         string `json:"label"`
	DescribeURL   string `json:"describeUrl"`
	ResultsURL    string `json:"resultsUrl"`
	SObjectType   string `json:"sobjectType"`
}

// ListViewRequest names one list view of an SObject.
type ListViewRequest struct {
	SObject    string `json:"sobject"`
	ListViewID string `json:"list_view_id"`
}

// ListViewDescribe is the full description of a list view.
type ListViewDescribe struct {
	ID             string            `json:"id"`
	DeveloperName  string            `json:"developerName"`
	Label          string            `json:"label"`
	SObjectType    string            `json:"sobjectType"`
	Query          string            `json:"query,omitempty"`
	Columns        []ListViewColumn  `json:"columns,omitempty"`
	OrderBy        []json.RawMessage `json:"orderBy,omitempty"`
	WhereCondition json.RawMessage   `json:"whereCondition,omitempty"`
}

// ListViewColumn is one column of a list view.
type ListViewColumn struct {
	FieldNameOrPath string `json:"fieldNameOrPath"`
	Label           string `json:"label"`
	Sortable        bool   `json:"sortable"`
	FieldType       string `json:"type"`
}

// QuickActionMetadata is the summary of one quick action.
type QuickActionMetadata struct {
	Name       string `json:"name"`
	Label      string `json:"label"`
	ActionType string `json:"type"`
}

// DescribeGlobalQuickActionRequest names a global quick action.
type DescribeGlobalQuickActionRequest struct {
	Action string `json:"action"`
}

// ListQuickActionsRequest lists quick actions for an SObject.
type ListQuickActionsRequest struct {
	SObject string `json:"sobject"`
}

// DescribeQuickActionRequest names a quick action on an SObject.
type DescribeQuickActionRequest struct {
	SObject string `json:"sobject"`
	Action  string `json:"action"`
}

// QuickActionDescribe is the full description of a quick action.
type QuickActionDescribe struct {
	Name               string            `json:"name"`
	Label              string            `json:"label"`
	ActionType         string            `json:"type"`
	TargetSObjectType  string            `json:"targetSobjectType,omitempty"`
	TargetRecordTypeID string            `json:"targetRecordTypeId,omitempty"`
	TargetParentField  string            `json:"targetParentField,omitempty"`
	Layout             json.RawMessage   `json:"layout,omitempty"`
	DefaultValues      json.RawMessage   `json:"defaultValues,omitempty"`
	Icons              []json.RawMessage `json:"icons,omitempty"`
}

// InvokeQuickActionRequest invokes a quick action.
type InvokeQuickActionRequest struct {
	SObject  string          `json:"sobject"`
	Action   string          `json:"action"`
	RecordID string          `json:"record_id,omitempty"`
	Body     json.RawMessage `json:"body"`
}

// InvokeActionRequest invokes a standard invocable action.
type InvokeActionRequest struct {
	ActionName string            `json:"action_name"`
	Inputs     []json.RawMessage `json:"inputs"`
}

// InvokeCustomActionRequest invokes a custom invocable action.
type InvokeCustomActionRequest struct {
	ActionType string            `json:"action_type"`
	ActionName string            `json:"action_name"`
	Inputs     []json.RawMessage `json:"inputs"`
}

// DescribeCustomActionRequest names a custom action.
type DescribeCustomActionRequest struct {
	ActionType string `json:"action_type"`
	ActionName string `json:"action_name"`
}

// ListCustomActionsRequest lists custom actions of a type.
type ListCustomActionsRequest struct {
	ActionType string `json:"action_type"`
}

// ActionNameRequest names a standard invocable action.
type ActionNameRequest struct {
	ActionName string `json:"action_name"`
}

// DescribeLayoutsRequest names the SObject whose layouts to describe.
type DescribeLayoutsRequest struct {
	SObject string `json:"sobject"`
}

// DescribeNamedLayoutRequest names one layout of an SObject.
type DescribeNamedLayoutRequest struct {
	SObject    string `json:"sobject"`
	LayoutName string `json:"layout_name"`
}

// CompactLayoutsMultiRequest fetches compact layouts for a comma
// separated SObject list.
type CompactLayoutsMultiRequest struct {
	SObjectList string `json:"sobject_list"`
}
