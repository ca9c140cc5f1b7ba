package wire

// KnowledgeArticlesRequest queries knowledge articles.
type KnowledgeArticlesRequest struct {
	Query   string `json:"query,omitempty"`
	Channel string `json:"channel,omitempty"`
}

// DataCategoryGroupsRequest lists category groups, optionally scoped to
// an SObject.
type DataCategoryGroupsRequest struct {
	SObject string `json:"sobject,omitempty"`
}

// DataCategoriesRequest lists categories within a group.
type DataCategoriesRequest struct {
	Group   string `json:"group"`
	SObject string `json:"sobject,omitempty"`
}

// AppMenuRequest selects which app menu to fetch.
type AppMenuRequest struct {
	AppMenuType string `json:"app_menu_type"`
}

// PlatformEventSchemaRequest names a platform event.
type PlatformEventSchemaRequest struct {
	EventName string `json:"event_name"`
}

// SetUserPasswordRequest sets a user's password.
type SetUserPasswordRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// AppointmentRequest carries the scheduler payload for candidate and
// slot lookups; the body follows the Lightning Scheduler schema.
type AppointmentRequest struct {
	Body map[string]any `json:"body"`
}

// ReadConsentRequest reads consent for an action across record IDs.
type ReadConsentRequest struct {
	Action string   `json:"action"`
	IDs    []string `json:"ids"`
}

// WriteConsentRequest writes consent results.
type WriteConsentRequest struct {
	Action  string               `json:"action"`
	Records []ConsentWriteRecord `json:"records"`
}

// ConsentWriteRecord is one consent write entry.
type ConsentWriteRecord struct {
	ID     string `json:"id"`
	Result string `json:"result"`
}

// ReadMultiConsentRequest reads consent for several actions at once.
type ReadMultiConsentRequest struct {
	Actions []string `json:"actions"`
	IDs     []string `json:"ids"`
}

// GetBlobRequest fetches a binary field of a record.
type GetBlobRequest struct {
	SObject string `json:"sobject"`
	ID      string `json:"id"`
	Field   string `json:"field"`
}

// BlobResponse carries binary data, base64-encoded for the JSON ABI.
type BlobResponse struct {
	DataBase64 string `json:"data_base64"`
}

// GetRichTextImageRequest fetches an image embedded in a rich text field.
type GetRichTextImageRequest struct {
	SObject            string `json:"sobject"`
	ID                 string `json:"id"`
	Field              string `json:"field"`
	ContentReferenceID string `json:"content_reference_id"`
}

// GetRelationshipRequest traverses a record relationship.
type GetRelationshipRequest struct {
	SObject          string `json:"sobject"`
	ID               string `json:"id"`
	RelationshipName string `json:"relationship_name"`
}

// ParameterizedSearchRequest runs a parameterized (non-SOSL) search.
type ParameterizedSearchRequest struct {
	Query    string   `json:"q"`
	SObjects []string `json:"sobjects,omitempty"`
	In       string   `json:"in,omitempty"`
	Fields   []string `json:"fields,omitempty"`
}

// SearchSuggestionsRequest fetches typeahead suggestions.
type SearchSuggestionsRequest struct {
	Query   string `json:"query"`
	SObject string `json:"sobject"`
}

// SearchResultLayoutsRequest fetches result layouts for SObjects.
type SearchResultLayoutsRequest struct {
	SObjects []string `json:"sobjects"`
}
