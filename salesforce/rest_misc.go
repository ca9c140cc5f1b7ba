package salesforce

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/quillback/sfbridge/wire"
)

// DescribeLayouts returns every page layout of an SObject.
func (r *RestClient) DescribeLayouts(ctx context.Context, sobject string) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("sobjects", sobject, "describe", "layouts"), &out)
	return out, err
}

// DescribeNamedLayout returns one named layout of an SObject.
func (r *RestClient) DescribeNamedLayout(ctx context.Context, sobject, layoutName string) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("sobjects", sobject, "describe", "namedLayouts", layoutName), &out)
	return out, err
}

// DescribeApprovalLayouts returns the approval layouts of an SObject.
func (r *RestClient) DescribeApprovalLayouts(ctx context.Context, sobject string) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("sobjects", sobject, "describe", "approvalLayouts"), &out)
	return out, err
}

// DescribeCompactLayouts returns the compact layouts of an SObject.
func (r *RestClient) DescribeCompactLayouts(ctx context.Context, sobject string) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("sobjects", sobject, "describe", "compactLayouts"), &out)
	return out, err
}

// DescribeGlobalPublisherLayouts returns the global publisher layouts.
func (r *RestClient) DescribeGlobalPublisherLayouts(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("sobjects", "Global", "describe", "layouts"), &out)
	return out, err
}

// CompactLayoutsMulti fetches primary compact layouts for a comma
// separated SObject list in one call.
func (r *RestClient) CompactLayoutsMulti(ctx context.Context, sobjectList string) (json.RawMessage, error) {
	path := r.c.dataPath("compactLayouts") + "?q=" + url.QueryEscape(sobjectList)
	var out json.RawMessage
	err := r.c.get(ctx, path, &out)
	return out, err
}

// KnowledgeSettings returns the org's knowledge base settings.
func (r *RestClient) KnowledgeSettings(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("knowledgeManagement", "settings"), &out)
	return out, err
}

// KnowledgeArticles lists or searches knowledge articles.
func (r *RestClient) KnowledgeArticles(ctx context.Context, req wire.KnowledgeArticlesRequest) (json.RawMessage, error) {
	path := r.c.dataPath("support", "knowledgeArticles")
	q := url.Values{}
	if req.Query != "" {
		q.Set("q", req.Query)
	}
	if req.Channel != "" {
		q.Set("channel", req.Channel)
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out json.RawMessage
	err := r.c.get(ctx, path, &out)
	return out, err
}

// DataCategoryGroups lists data category groups, optionally filtered to
// one SObject.
func (r *RestClient) DataCategoryGroups(ctx context.Context, sobject string) (json.RawMessage, error) {
	path := r.c.dataPath("support", "dataCategoryGroups")
	if sobject != "" {
		path += "?sObjectName=" + url.QueryEscape(sobject)
	}
	var out json.RawMessage
	err := r.c.get(ctx, path, &out)
	return out, err
}

// DataCategories returns the category tree of one group.
func (r *RestClient) DataCategories(ctx context.Context, group, sobject string) (json.RawMessage, error) {
	path := r.c.dataPath("support", "dataCategoryGroups", group)
	if sobject != "" {
		path += "?sObjectName=" + url.QueryEscape(sobject)
	}
	var out json.RawMessage
	err := r.c.get(ctx, path, &out)
	return out, err
}

// Tabs lists the tabs available to the session user.
func (r *RestClient) Tabs(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("tabs"), &out)
	return out, err
}

// Theme returns icon and color metadata for every SObject.
func (r *RestClient) Theme(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("theme"), &out)
	return out, err
}

// AppMenu returns the app menu of the given type, e.g. "AppSwitcher".
func (r *RestClient) AppMenu(ctx context.Context, appMenuType string) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("appMenu", appMenuType), &out)
	return out, err
}

// RecentItems lists records the session user viewed recently.
func (r *RestClient) RecentItems(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("recent"), &out)
	return out, err
}

// RelevantItems lists records relevant to the session user.
func (r *RestClient) RelevantItems(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("sobjects", "relevantItems"), &out)
	return out, err
}

// PlatformEventSchema returns the payload schema of a platform event.
func (r *RestClient) PlatformEventSchema(ctx context.Context, eventName string) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("sobjects", eventName, "eventSchema"), &out)
	return out, err
}

// LightningToggleMetrics returns Lightning Experience toggle metrics.
func (r *RestClient) LightningToggleMetrics(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("sobjects", "LightningToggleMetrics"), &out)
	return out, err
}

// LightningUsage returns Lightning Experience usage rollups.
func (r *RestClient) LightningUsage(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("sobjects", "LightningUsageByAppTypeMetrics"), &out)
	return out, err
}

// GetUserPasswordStatus reports whether a user's password is expired.
func (r *RestClient) GetUserPasswordStatus(ctx context.Context, userID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("sobjects", "User", userID, "password"), &out)
	return out, err
}

// SetUserPassword sets a user's password.
func (r *RestClient) SetUserPassword(ctx context.Context, userID, password string) error {
	body := struct {
		NewPassword string `json:"NewPassword"`
	}{password}
	return r.c.post(ctx, r.c.dataPath("sobjects", "User", userID, "password"), body, nil)
}

// ResetUserPassword resets a user's password and returns the generated
// one.
func (r *RestClient) ResetUserPassword(ctx context.Context, userID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.delete(ctx, r.c.dataPath("sobjects", "User", userID, "password"), &out)
	return out, err
}

// AppointmentCandidates returns available service resources for a
// Lightning Scheduler appointment.
func (r *RestClient) AppointmentCandidates(ctx context.Context, body map[string]any) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.post(ctx, r.c.dataPath("scheduling", "getAppointmentCandidates"), body, &out)
	return out, err
}

// AppointmentSlots returns available time slots for a Lightning
// Scheduler appointment.
func (r *RestClient) AppointmentSlots(ctx context.Context, body map[string]any) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.post(ctx, r.c.dataPath("scheduling", "getAppointmentSlots"), body, &out)
	return out, err
}

// ReadConsent reads consent for one action across record IDs.
func (r *RestClient) ReadConsent(ctx context.Context, action string, ids []string) (json.RawMessage, error) {
	path := r.c.dataPath("consent", "action", action) + "?ids=" + url.QueryEscape(strings.Join(ids, ","))
	var out json.RawMessage
	err := r.c.get(ctx, path, &out)
	return out, err
}

// WriteConsent writes consent results for one action.
func (r *RestClient) WriteConsent(ctx context.Context, action string, records []wire.ConsentWriteRecord) (json.RawMessage, error) {
	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.ID
	}
	path := r.c.dataPath("consent", "action", action) + "?ids=" + url.QueryEscape(strings.Join(ids, ","))
	body := struct {
		Records []wire.ConsentWriteRecord `json:"records"`
	}{records}
	var out json.RawMessage
	err := r.c.patch(ctx, path, body, &out)
	return out, err
}

// ReadMultiConsent reads consent for several actions in one call.
func (r *RestClient) ReadMultiConsent(ctx context.Context, actions, ids []string) (json.RawMessage, error) {
	path := r.c.dataPath("consent", "multiaction") +
		"?actions=" + url.QueryEscape(strings.Join(actions, ",")) +
		"&ids=" + url.QueryEscape(strings.Join(ids, ","))
	var out json.RawMessage
	err := r.c.get(ctx, path, &out)
	return out, err
}

// GetBlob downloads the binary content of a record field, e.g. an
// Attachment Body or a Document Body.
func (r *RestClient) GetBlob(ctx context.Context, sobject, id, field string) ([]byte, error) {
	res, err := r.c.sendStream(ctx, "GET", r.c.dataPath("sobjects", sobject, id, field), nil, "", true)
	if err != nil {
		return nil, err
	}
	var out []byte
	if err := r.c.decodeInto("GET", field, res, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRichTextImage downloads an image referenced from a rich text
// field.
func (r *RestClient) GetRichTextImage(ctx context.Context, sobject, id, field, contentReferenceID string) ([]byte, error) {
	path := r.c.dataPath("sobjects", sobject, id, "richTextImageFields", field, contentReferenceID)
	res, err := r.c.sendStream(ctx, "GET", path, nil, "", true)
	if err != nil {
		return nil, err
	}
	var out []byte
	if err := r.c.decodeInto("GET", path, res, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRelationship traverses a relationship field of a record.
func (r *RestClient) GetRelationship(ctx context.Context, sobject, id, relationshipName string) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("sobjects", sobject, id, relationshipName), &out)
	return out, err
}

// EmbeddedServiceConfig returns the embedded service deployment
// configuration.
func (r *RestClient) EmbeddedServiceConfig(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("support", "embeddedservice", "configuration"), &out)
	return out, err
}

// ParameterizedSearch runs a parameterized search without SOSL.
func (r *RestClient) ParameterizedSearch(ctx context.Context, req wire.ParameterizedSearchRequest) (json.RawMessage, error) {
	body := struct {
		Q        string   `json:"q"`
		SObjects []object `json:"sobjects,omitempty"`
		In       string   `json:"in,omitempty"`
		Fields   []string `json:"fields,omitempty"`
	}{
		Q:      req.Query,
		In:     req.In,
		Fields: req.Fields,
	}
	for _, name := range req.SObjects {
		body.SObjects = append(body.SObjects, object{Name: name})
	}
	var out json.RawMessage
	err := r.c.post(ctx, r.c.dataPath("parameterizedSearch"), body, &out)
	return out, err
}

type object struct {
	Name string `json:"name"`
}

// SearchSuggestions returns typeahead suggestions for a search term.
func (r *RestClient) SearchSuggestions(ctx context.Context, query, sobject string) (json.RawMessage, error) {
	path := r.c.dataPath("search", "suggestions") +
		"?q=" + url.QueryEscape(query) + "&sobject=" + url.QueryEscape(sobject)
	var out json.RawMessage
	err := r.c.get(ctx, path, &out)
	return out, err
}

// SearchScopeOrder returns the user's search scope ordering.
func (r *RestClient) SearchScopeOrder(ctx context.Context) (json.RawMessage, error) {
	var out json.RawMessage
	err := r.c.get(ctx, r.c.dataPath("search", "scopeOrder"), &out)
	return out, err
}

// SearchResultLayouts returns search result layout information for the
// given SObjects.
func (r *RestClient) SearchResultLayouts(ctx context.Context, sobjects []string) (json.RawMessage, error) {
	path := r.c.dataPath("search", "layout") + "?q=" + url.QueryEscape(strings.Join(sobjects, ","))
	var out json.RawMessage
	err := r.c.get(ctx, path, &out)
	return out, err
}
