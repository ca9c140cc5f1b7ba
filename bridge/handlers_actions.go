package bridge

import (
	"context"
	"encoding/json"

	"github.com/quillback/sfbridge/wire"
)

// approval action types Salesforce accepts.
var approvalActionTypes = map[string]bool{
	"Submit":  true,
	"Approve": true,
	"Reject":  true,
}

func processFuncs() []HostFunc {
	return []HostFunc{
		nullary(wire.NameListProcessRules, sanitizeRest, func(ctx context.Context, s *State) (wire.ProcessRuleCollection, error) {
			return s.Rest.ListProcessRules(ctx)
		}),
		unary(wire.NameListProcessRulesForSObject, sanitizeRest, func(ctx context.Context, s *State, req wire.ListProcessRulesForSObjectRequest) (wire.ProcessRuleCollection, error) {
			return s.Rest.ListProcessRulesForSObject(ctx, req.SObject)
		}),
		unary(wire.NameTriggerProcessRules, sanitizeRest, func(ctx context.Context, s *State, req wire.TriggerProcessRulesRequest) (wire.ProcessRuleResult, error) {
			if len(req.ContextIDs) == 0 {
				return wire.ProcessRuleResult{}, invalidRequestf("trigger process rules takes at least one context id")
			}
			return s.Rest.TriggerProcessRules(ctx, req.ContextIDs)
		}),
		nullary(wire.NameListPendingApprovals, sanitizeRest, func(ctx context.Context, s *State) (wire.PendingApprovalCollection, error) {
			return s.Rest.ListPendingApprovals(ctx)
		}),
		unary(wire.NameSubmitApproval, sanitizeRest, func(ctx context.Context, s *State, req wire.SubmitApprovalRequest) ([]wire.ApprovalResult, error) {
			if !approvalActionTypes[req.ActionType] {
				return nil, invalidRequestf("approval action type must be Submit, Approve, or Reject; got %q", req.ActionType)
			}
			return s.Rest.SubmitApproval(ctx, req)
		}),
	}
}

func listViewFuncs() []HostFunc {
	return []HostFunc{
		unary(wire.NameListViews, sanitizeRest, func(ctx context.Context, s *State, req wire.ListViewsRequest) (wire.ListViewsResult, error) {
			return s.Rest.ListViews(ctx, req.SObject)
		}),
		unary(wire.NameGetListView, sanitizeRest, func(ctx context.Context, s *State, req wire.ListViewRequest) (wire.ListView, error) {
			return s.Rest.GetListView(ctx, req.SObject, req.ListViewID)
		}),
		unary(wire.NameDescribeListView, sanitizeRest, func(ctx context.Context, s *State, req wire.ListViewRequest) (wire.ListViewDescribe, error) {
			return s.Rest.DescribeListView(ctx, req.SObject, req.ListViewID)
		}),
		unary(wire.NameExecuteListView, sanitizeRest, func(ctx context.Context, s *State, req wire.ListViewRequest) (json.RawMessage, error) {
			return s.Rest.ExecuteListView(ctx, req.SObject, req.ListViewID)
		}),
	}
}

func quickActionFuncs() []HostFunc {
	return []HostFunc{
		nullary(wire.NameListGlobalQuickActions, sanitizeRest, func(ctx context.Context, s *State) ([]wire.QuickActionMetadata, error) {
			return s.Rest.ListGlobalQuickActions(ctx)
		}),
		unary(wire.NameDescribeGlobalQuickAction, sanitizeRest, func(ctx context.Context, s *State, req wire.DescribeGlobalQuickActionRequest) (wire.QuickActionDescribe, error) {
			return s.Rest.DescribeGlobalQuickAction(ctx, req.Action)
		}),
		unary(wire.NameListQuickActions, sanitizeRest, func(ctx context.Context, s *State, req wire.ListQuickActionsRequest) ([]wire.QuickActionMetadata, error) {
			return s.Rest.ListQuickActions(ctx, req.SObject)
		}),
		unary(wire.NameDescribeQuickAction, sanitizeRest, func(ctx context.Context, s *State, req wire.DescribeQuickActionRequest) (wire.QuickActionDescribe, error) {
			return s.Rest.DescribeQuickAction(ctx, req.SObject, req.Action)
		}),
		unary(wire.NameInvokeQuickAction, sanitizeRest, func(ctx context.Context, s *State, req wire.InvokeQuickActionRequest) (json.RawMessage, error) {
			return s.Rest.InvokeQuickAction(ctx, req)
		}),
	}
}

func invocableActionFuncs() []HostFunc {
	return []HostFunc{
		nullary(wire.NameListStandardActions, sanitizeRest, func(ctx context.Context, s *State) (json.RawMessage, error) {
			return s.Rest.ListStandardActions(ctx)
		}),
		nullary(wire.NameListCustomActionTypes, sanitizeRest, func(ctx context.Context, s *State) (json.RawMessage, error) {
			return s.Rest.ListCustomActionTypes(ctx)
		}),
		unary(wire.NameListCustomActions, sanitizeRest, func(ctx context.Context, s *State, req wire.ListCustomActionsRequest) (json.RawMessage, error) {
			return s.Rest.ListCustomActions(ctx, req.ActionType)
		}),
		unary(wire.NameDescribeStandardAction, sanitizeRest, func(ctx context.Context, s *State, req wire.ActionNameRequest) (json.RawMessage, error) {
			return s.Rest.DescribeStandardAction(ctx, req.ActionName)
		}),
		unary(wire.NameDescribeCustomAction, sanitizeRest, func(ctx context.Context, s *State, req wire.DescribeCustomActionRequest) (json.RawMessage, error) {
			return s.Rest.DescribeCustomAction(ctx, req.ActionType, req.ActionName)
		}),
		unary(wire.NameInvokeStandardAction, sanitizeRest, func(ctx context.Context, s *State, req wire.InvokeActionRequest) (json.RawMessage, error) {
			if len(req.Inputs) == 0 {
				return nil, invalidRequestf("action invocation takes at least one input set")
			}
			return s.Rest.InvokeStandardAction(ctx, req.ActionName, req.Inputs)
		}),
		unary(wire.NameInvokeCustomAction, sanitizeRest, func(ctx context.Context, s *State, req wire.InvokeCustomActionRequest) (json.RawMessage, error) {
			if len(req.Inputs) == 0 {
				return nil, invalidRequestf("action invocation takes at least one input set")
			}
			return s.Rest.InvokeCustomAction(ctx, req.ActionType, req.ActionName, req.Inputs)
		}),
	}
}
