//go:build wasip1

package guest

import (
	"encoding/json"

	"github.com/quillback/sfbridge/wire"
)

// DescribeLayouts describes the page layouts of an SObject.
func DescribeLayouts(sobject string) (json.RawMessage, error) {
	return invoke[wire.DescribeLayoutsRequest, json.RawMessage](importDescribeLayouts, wire.DescribeLayoutsRequest{SObject: sobject})
}

// DescribeNamedLayout describes one named layout of an SObject.
func DescribeNamedLayout(sobject, layoutName string) (json.RawMessage, error) {
	return invoke[wire.DescribeNamedLayoutRequest, json.RawMessage](importDescribeNamedLayout, wire.DescribeNamedLayoutRequest{SObject: sobject, LayoutName: layoutName})
}

// DescribeApprovalLayouts describes the approval layouts of an SObject.
func DescribeApprovalLayouts(sobject string) (json.RawMessage, error) {
	return invoke[wire.DescribeLayoutsRequest, json.RawMessage](importDescribeApprovalLayouts, wire.DescribeLayoutsRequest{SObject: sobject})
}

// DescribeCompactLayouts describes the compact layouts of an SObject.
func DescribeCompactLayouts(sobject string) (json.RawMessage, error) {
	return invoke[wire.DescribeLayoutsRequest, json.RawMessage](importDescribeCompactLayouts, wire.DescribeLayoutsRequest{SObject: sobject})
}

// DescribeGlobalPublisherLayouts describes the global publisher layouts.
func DescribeGlobalPublisherLayouts() (json.RawMessage, error) {
	return invokeNullary[json.RawMessage](importDescribeGlobalPublisherLayouts)
}

// CompactLayoutsMulti fetches compact layouts for a comma separated
// SObject list.
func CompactLayoutsMulti(sobjectList string) (json.RawMessage, error) {
	return invoke[wire.CompactLayoutsMultiRequest, json.RawMessage](importCompactLayoutsMulti, wire.CompactLayoutsMultiRequest{SObjectList: sobjectList})
}

// KnowledgeSettings reads the org's knowledge settings.
func KnowledgeSettings() (json.RawMessage, error) {
	return invokeNullary[json.RawMessage](importKnowledgeSettings)
}

// KnowledgeArticles queries knowledge articles.
func KnowledgeArticles(req wire.KnowledgeArticlesRequest) (json.RawMessage, error) {
	return invoke[wire.KnowledgeArticlesRequest, json.RawMessage](importKnowledgeArticles, req)
}

// DataCategoryGroups lists data category groups.
func DataCategoryGroups(sobject string) (json.RawMessage, error) {
	return invoke[wire.DataCategoryGroupsRequest, json.RawMessage](importDataCategoryGroups, wire.DataCategoryGroupsRequest{SObject: sobject})
}

// DataCategories lists the categories of a group.
func DataCategories(group, sobject string) (json.RawMessage, error) {
	return invoke[wire.DataCategoriesRequest, json.RawMessage](importDataCategories, wire.DataCategoriesRequest{Group: group, SObject: sobject})
}

// Tabs lists the tabs of the current app.
func Tabs() (json.RawMessage, error) {
	return invokeNullary[json.RawMessage](importTabs)
}

// Theme reads the org's theme information.
func Theme() (json.RawMessage, error) {
	return invokeNullary[json.RawMessage](importTheme)
}

// AppMenu reads an app menu; appMenuType is AppSwitcher or Salesforce1.
func AppMenu(appMenuType string) (json.RawMessage, error) {
	return invoke[wire.AppMenuRequest, json.RawMessage](importAppMenu, wire.AppMenuRequest{AppMenuType: appMenuType})
}

// RecentItems lists recently viewed records.
func RecentItems() (json.RawMessage, error) {
	return invokeNullary[json.RawMessage](importRecentItems)
}

// RelevantItems lists the user's relevant items.
func RelevantItems() (json.RawMessage, error) {
	return invokeNullary[json.RawMessage](importRelevantItems)
}

// PlatformEventSchema reads the schema of a platform event.
func PlatformEventSchema(eventName string) (json.RawMessage, error) {
	return invoke[wire.PlatformEventSchemaRequest, json.RawMessage](importPlatformEventSchema, wire.PlatformEventSchemaRequest{EventName: eventName})
}

// LightningToggleMetrics reads Lightning toggle metrics.
func LightningToggleMetrics() (json.RawMessage, error) {
	return invokeNullary[json.RawMessage](importLightningToggleMetrics)
}

// LightningUsage reads Lightning usage metrics.
func LightningUsage() (json.RawMessage, error) {
	return invokeNullary[json.RawMessage](importLightningUsage)
}

// GetUserPasswordStatus reports whether a user's password is expired.
func GetUserPasswordStatus(userID string) (json.RawMessage, error) {
	return invoke[wire.IDRequest, json.RawMessage](importGetUserPasswordStatus, wire.IDRequest{ID: userID})
}

// SetUserPassword sets a user's password.
func SetUserPassword(userID, password string) error {
	_, err := invoke[wire.SetUserPasswordRequest, wire.Empty](importSetUserPassword, wire.SetUserPasswordRequest{UserID: userID, Password: password})
	return err
}

// ResetUserPassword resets a user's password to a generated one.
func ResetUserPassword(userID string) (json.RawMessage, error) {
	return invoke[wire.IDRequest, json.RawMessage](importResetUserPassword, wire.IDRequest{ID: userID})
}

// AppointmentCandidates looks up scheduler appointment candidates.
func AppointmentCandidates(body map[string]any) (json.RawMessage, error) {
	return invoke[wire.AppointmentRequest, json.RawMessage](importAppointmentCandidates, wire.AppointmentRequest{Body: body})
}

// AppointmentSlots looks up scheduler appointment slots.
func AppointmentSlots(body map[string]any) (json.RawMessage, error) {
	return invoke[wire.AppointmentRequest, json.RawMessage](importAppointmentSlots, wire.AppointmentRequest{Body: body})
}

// ReadConsent reads consent for an action across record IDs.
func ReadConsent(action string, ids []string) (json.RawMessage, error) {
	return invoke[wire.ReadConsentRequest, json.RawMessage](importReadConsent, wire.ReadConsentRequest{Action: action, IDs: ids})
}

// WriteConsent writes consent results.
func WriteConsent(action string, records []wire.ConsentWriteRecord) (json.RawMessage, error) {
	return invoke[wire.WriteConsentRequest, json.RawMessage](importWriteConsent, wire.WriteConsentRequest{Action: action, Records: records})
}

// ReadMultiConsent reads consent for several actions at once.
func ReadMultiConsent(actions, ids []string) (json.RawMessage, error) {
	return invoke[wire.ReadMultiConsentRequest, json.RawMessage](importReadMultiConsent, wire.ReadMultiConsentRequest{Actions: actions, IDs: ids})
}

// GetBlob fetches a binary field of a record.
func GetBlob(sobject, id, field string) (wire.BlobResponse, error) {
	return invoke[wire.GetBlobRequest, wire.BlobResponse](importGetBlob, wire.GetBlobRequest{SObject: sobject, ID: id, Field: field})
}

// GetRichTextImage fetches an image embedded in a rich text field.
func GetRichTextImage(sobject, id, field, contentReferenceID string) (wire.BlobResponse, error) {
	return invoke[wire.GetRichTextImageRequest, wire.BlobResponse](importGetRichTextImage, wire.GetRichTextImageRequest{
		SObject:            sobject,
		ID:                 id,
		Field:              field,
		ContentReferenceID: contentReferenceID,
	})
}

// GetRelationship traverses a record relationship.
func GetRelationship(sobject, id, relationshipName string) (json.RawMessage, error) {
	return invoke[wire.GetRelationshipRequest, json.RawMessage](importGetRelationship, wire.GetRelationshipRequest{SObject: sobject, ID: id, RelationshipName: relationshipName})
}

// GetEmbeddedServiceConfig reads the embedded service configuration.
func GetEmbeddedServiceConfig() (json.RawMessage, error) {
	return invokeNullary[json.RawMessage](importGetEmbeddedServiceConfig)
}

// ParameterizedSearch runs a parameterized (non-SOSL) search.
func ParameterizedSearch(req wire.ParameterizedSearchRequest) (json.RawMessage, error) {
	return invoke[wire.ParameterizedSearchRequest, json.RawMessage](importParameterizedSearch, req)
}

// SearchSuggestions fetches typeahead suggestions.
func SearchSuggestions(query, sobject string) (json.RawMessage, error) {
	return invoke[wire.SearchSuggestionsRequest, json.RawMessage](importSearchSuggestions, wire.SearchSuggestionsRequest{Query: query, SObject: sobject})
}

// SearchScopeOrder reads the user's search scope order.
func SearchScopeOrder() (json.RawMessage, error) {
	return invokeNullary[json.RawMessage](importSearchScopeOrder)
}

// SearchResultLayouts fetches search result layouts for SObjects.
func SearchResultLayouts(sobjects []string) (json.RawMessage, error) {
	return invoke[wire.SearchResultLayoutsRequest, json.RawMessage](importSearchResultLayouts, wire.SearchResultLayoutsRequest{SObjects: sobjects})
}
