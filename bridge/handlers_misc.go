package bridge

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/quillback/sfbridge/wire"
)

func layoutFuncs() []HostFunc {
	return []HostFunc{
		unary(wire.NameDescribeLayouts, sanitizeRest, func(ctx context.Context, s *State, req wire.DescribeLayoutsRequest) (json.RawMessage, error) {
			return s.Rest.DescribeLayouts(ctx, req.SObject)
		}),
		unary(wire.NameDescribeNamedLayout, sanitizeRest, func(ctx context.Context, s *State, req wire.DescribeNamedLayoutRequest) (json.RawMessage, error) {
			return s.Rest.DescribeNamedLayout(ctx, req.SObject, req.LayoutName)
		}),
		unary(wire.NameDescribeApprovalLayouts, sanitizeRest, func(ctx context.Context, s *State, req wire.DescribeLayoutsRequest) (json.RawMessage, error) {
			return s.Rest.DescribeApprovalLayouts(ctx, req.SObject)
		}),
		unary(wire.NameDescribeCompactLayouts, sanitizeRest, func(ctx context.Context, s *State, req wire.DescribeLayoutsRequest) (json.RawMessage, error) {
			return s.Rest.DescribeCompactLayouts(ctx, req.SObject)
		}),
		nullary(wire.NameDescribeGlobalPublisherLayouts, sanitizeRest, func(ctx context.Context, s *State) (json.RawMessage, error) {
			return s.Rest.DescribeGlobalPublisherLayouts(ctx)
		}),
		unary(wire.NameCompactLayoutsMulti, sanitizeRest, func(ctx context.Context, s *State, req wire.CompactLayoutsMultiRequest) (json.RawMessage, error) {
			return s.Rest.CompactLayoutsMulti(ctx, req.SObjectList)
		}),
	}
}

func knowledgeFuncs() []HostFunc {
	return []HostFunc{
		nullary(wire.NameKnowledgeSettings, sanitizeRest, func(ctx context.Context, s *State) (json.RawMessage, error) {
			return s.Rest.KnowledgeSettings(ctx)
		}),
		unary(wire.NameKnowledgeArticles, sanitizeRest, func(ctx context.Context, s *State, req wire.KnowledgeArticlesRequest) (json.RawMessage, error) {
			return s.Rest.KnowledgeArticles(ctx, req)
		}),
		unary(wire.NameDataCategoryGroups, sanitizeRest, func(ctx context.Context, s *State, req wire.DataCategoryGroupsRequest) (json.RawMessage, error) {
			return s.Rest.DataCategoryGroups(ctx, req.SObject)
		}),
		unary(wire.NameDataCategories, sanitizeRest, func(ctx context.Context, s *State, req wire.DataCategoriesRequest) (json.RawMessage, error) {
			return s.Rest.DataCategories(ctx, req.Group, req.SObject)
		}),
	}
}

func standaloneFuncs() []HostFunc {
	return []HostFunc{
		nullary(wire.NameTabs, sanitizeRest, func(ctx context.Context, s *State) (json.RawMessage, error) {
			return s.Rest.Tabs(ctx)
		}),
		nullary(wire.NameTheme, sanitizeRest, func(ctx context.Context, s *State) (json.RawMessage, error) {
			return s.Rest.Theme(ctx)
		}),
		unary(wire.NameAppMenu, sanitizeRest, func(ctx context.Context, s *State, req wire.AppMenuRequest) (json.RawMessage, error) {
			if req.AppMenuType != "AppSwitcher" && req.AppMenuType != "Salesforce1" {
				return nil, invalidRequestf("app menu type must be AppSwitcher or Salesforce1; got %q", req.AppMenuType)
			}
			return s.Rest.AppMenu(ctx, req.AppMenuType)
		}),
		nullary(wire.NameRecentItems, sanitizeRest, func(ctx context.Context, s *State) (json.RawMessage, error) {
			return s.Rest.RecentItems(ctx)
		}),
		nullary(wire.NameRelevantItems, sanitizeRest, func(ctx context.Context, s *State) (json.RawMessage, error) {
			return s.Rest.RelevantItems(ctx)
		}),
		unary(wire.NamePlatformEventSchema, sanitizeRest, func(ctx context.Context, s *State, req wire.PlatformEventSchemaRequest) (json.RawMessage, error) {
			return s.Rest.PlatformEventSchema(ctx, req.EventName)
		}),
		nullary(wire.NameLightningToggleMetrics, sanitizeRest, func(ctx context.Context, s *State) (json.RawMessage, error) {
			return s.Rest.LightningToggleMetrics(ctx)
		}),
		nullary(wire.NameLightningUsage, sanitizeRest, func(ctx context.Context, s *State) (json.RawMessage, error) {
			return s.Rest.LightningUsage(ctx)
		}),
	}
}

func passwordFuncs() []HostFunc {
	return []HostFunc{
		unary(wire.NameGetUserPasswordStatus, sanitizeRest, func(ctx context.Context, s *State, req wire.IDRequest) (json.RawMessage, error) {
			return s.Rest.GetUserPasswordStatus(ctx, req.ID)
		}),
		unary(wire.NameSetUserPassword, sanitizeRest, func(ctx context.Context, s *State, req wire.SetUserPasswordRequest) (wire.Empty, error) {
			if req.Password == "" {
				return wire.Empty{}, invalidRequestf("password must not be empty")
			}
			return wire.Empty{}, s.Rest.SetUserPassword(ctx, req.UserID, req.Password)
		}),
		unary(wire.NameResetUserPassword, sanitizeRest, func(ctx context.Context, s *State, req wire.IDRequest) (json.RawMessage, error) {
			return s.Rest.ResetUserPassword(ctx, req.ID)
		}),
	}
}

func schedulerFuncs() []HostFunc {
	return []HostFunc{
		unary(wire.NameAppointmentCandidates, sanitizeRest, func(ctx context.Context, s *State, req wire.AppointmentRequest) (json.RawMessage, error) {
			return s.Rest.AppointmentCandidates(ctx, req.Body)
		}),
		unary(wire.NameAppointmentSlots, sanitizeRest, func(ctx context.Context, s *State, req wire.AppointmentRequest) (json.RawMessage, error) {
			return s.Rest.AppointmentSlots(ctx, req.Body)
		}),
	}
}

func consentFuncs() []HostFunc {
	return []HostFunc{
		unary(wire.NameReadConsent, sanitizeRest, func(ctx context.Context, s *State, req wire.ReadConsentRequest) (json.RawMessage, error) {
			if len(req.IDs) == 0 {
				return nil, invalidRequestf("consent read takes at least one id")
			}
			return s.Rest.ReadConsent(ctx, req.Action, req.IDs)
		}),
		unary(wire.NameWriteConsent, sanitizeRest, func(ctx context.Context, s *State, req wire.WriteConsentRequest) (json.RawMessage, error) {
			if len(req.Records) == 0 {
				return nil, invalidRequestf("consent write takes at least one record")
			}
			return s.Rest.WriteConsent(ctx, req.Action, req.Records)
		}),
		unary(wire.NameReadMultiConsent, sanitizeRest, func(ctx context.Context, s *State, req wire.ReadMultiConsentRequest) (json.RawMessage, error) {
			if len(req.Actions) == 0 || len(req.IDs) == 0 {
				return nil, invalidRequestf("multi consent read takes at least one action and one id")
			}
			return s.Rest.ReadMultiConsent(ctx, req.Actions, req.IDs)
		}),
	}
}

func binaryFuncs() []HostFunc {
	return []HostFunc{
		unary(wire.NameGetBlob, sanitizeRest, func(ctx context.Context, s *State, req wire.GetBlobRequest) (wire.BlobResponse, error) {
			data, err := s.Rest.GetBlob(ctx, req.SObject, req.ID, req.Field)
			if err != nil {
				return wire.BlobResponse{}, err
			}
			return wire.BlobResponse{DataBase64: base64.StdEncoding.EncodeToString(data)}, nil
		}),
		unary(wire.NameGetRichTextImage, sanitizeRest, func(ctx context.Context, s *State, req wire.GetRichTextImageRequest) (wire.BlobResponse, error) {
			data, err := s.Rest.GetRichTextImage(ctx, req.SObject, req.ID, req.Field, req.ContentReferenceID)
			if err != nil {
				return wire.BlobResponse{}, err
			}
			return wire.BlobResponse{DataBase64: base64.StdEncoding.EncodeToString(data)}, nil
		}),
		unary(wire.NameGetRelationship, sanitizeRest, func(ctx context.Context, s *State, req wire.GetRelationshipRequest) (json.RawMessage, error) {
			return s.Rest.GetRelationship(ctx, req.SObject, req.ID, req.RelationshipName)
		}),
	}
}

func embeddedServiceFuncs() []HostFunc {
	return []HostFunc{
		nullary(wire.NameGetEmbeddedServiceConfig, sanitizeRest, func(ctx context.Context, s *State) (json.RawMessage, error) {
			return s.Rest.EmbeddedServiceConfig(ctx)
		}),
	}
}

func searchFuncs() []HostFunc {
	return []HostFunc{
		unary(wire.NameParameterizedSearch, sanitizeRest, func(ctx context.Context, s *State, req wire.ParameterizedSearchRequest) (json.RawMessage, error) {
			return s.Rest.ParameterizedSearch(ctx, req)
		}),
		unary(wire.NameSearchSuggestions, sanitizeRest, func(ctx context.Context, s *State, req wire.SearchSuggestionsRequest) (json.RawMessage, error) {
			return s.Rest.SearchSuggestions(ctx, req.Query, req.SObject)
		}),
		nullary(wire.NameSearchScopeOrder, sanitizeRest, func(ctx context.Context, s *State) (json.RawMessage, error) {
			return s.Rest.SearchScopeOrder(ctx)
		}),
		unary(wire.NameSearchResultLayouts, sanitizeRest, func(ctx context.Context, s *State, req wire.SearchResultLayoutsRequest) (json.RawMessage, error) {
			if len(req.SObjects) == 0 {
				return nil, invalidRequestf("search result layouts takes at least one sobject")
			}
			return s.Rest.SearchResultLayouts(ctx, req.SObjects)
		}),
	}
}
