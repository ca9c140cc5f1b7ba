//go:build wasip1

package guest

import (
	"encoding/json"

	"github.com/quillback/sfbridge/wire"
)

// Query runs a SOQL query and returns the first page of results.
func Query(soql string) (wire.QueryResponse, error) {
	return invoke[wire.QueryRequest, wire.QueryResponse](importQuery, wire.QueryRequest{SOQL: soql})
}

// QueryAll runs a SOQL query including deleted and archived records.
func QueryAll(soql string) (wire.QueryResponse, error) {
	return invoke[wire.QueryRequest, wire.QueryResponse](importQuery, wire.QueryRequest{SOQL: soql, IncludeDeleted: true})
}

// QueryMore fetches the next page of an earlier query.
func QueryMore(nextRecordsURL string) (wire.QueryResponse, error) {
	return invoke[wire.QueryMoreRequest, wire.QueryResponse](importQueryMore, wire.QueryMoreRequest{NextRecordsURL: nextRecordsURL})
}

// Create inserts a record and returns its new ID.
func Create(sobject string, record json.RawMessage) (wire.CreateResponse, error) {
	return invoke[wire.CreateRequest, wire.CreateResponse](importCreate, wire.CreateRequest{SObject: sobject, Record: record})
}

// Get reads a record, optionally projecting fields.
func Get(sobject, id string, fields ...string) (json.RawMessage, error) {
	return invoke[wire.GetRequest, json.RawMessage](importGet, wire.GetRequest{SObject: sobject, ID: id, Fields: fields})
}

// Update patches a record.
func Update(sobject, id string, record json.RawMessage) error {
	_, err := invoke[wire.UpdateRequest, wire.Empty](importUpdate, wire.UpdateRequest{SObject: sobject, ID: id, Record: record})
	return err
}

// Delete removes a record.
func Delete(sobject, id string) error {
	_, err := invoke[wire.DeleteRequest, wire.Empty](importDelete, wire.DeleteRequest{SObject: sobject, ID: id})
	return err
}

// Upsert creates or updates a record keyed by an external ID.
func Upsert(sobject, externalIDField, externalIDValue string, record json.RawMessage) (wire.UpsertResponse, error) {
	return invoke[wire.UpsertRequest, wire.UpsertResponse](importUpsert, wire.UpsertRequest{
		SObject:         sobject,
		ExternalIDField: externalIDField,
		ExternalIDValue: externalIDValue,
		Record:          record,
	})
}

// DescribeGlobal lists every SObject in the org.
func DescribeGlobal() (json.RawMessage, error) {
	return invokeNullary[json.RawMessage](importDescribeGlobal)
}

// DescribeSObject returns the full metadata of one SObject.
func DescribeSObject(sobject string) (json.RawMessage, error) {
	return invoke[wire.DescribeSObjectRequest, json.RawMessage](importDescribeSObject, wire.DescribeSObjectRequest{SObject: sobject})
}

// Search runs a SOSL search.
func Search(sosl string) (wire.SearchResponse, error) {
	return invoke[wire.SearchRequest, wire.SearchResponse](importSearch, wire.SearchRequest{SOSL: sosl})
}

// Limits reports the org's API limits.
func Limits() (json.RawMessage, error) {
	return invokeNullary[json.RawMessage](importLimits)
}

// Versions lists the API versions the org supports.
func Versions() ([]wire.APIVersion, error) {
	return invokeNullary[[]wire.APIVersion](importVersions)
}

// GetDeleted lists records deleted within a date range.
func GetDeleted(sobject, start, end string) (wire.GetDeletedResult, error) {
	return invoke[wire.GetDeletedRequest, wire.GetDeletedResult](importGetDeleted, wire.GetDeletedRequest{SObject: sobject, Start: start, End: end})
}

// GetUpdated lists records updated within a date range.
func GetUpdated(sobject, start, end string) (wire.GetUpdatedResult, error) {
	return invoke[wire.GetUpdatedRequest, wire.GetUpdatedResult](importGetUpdated, wire.GetUpdatedRequest{SObject: sobject, Start: start, End: end})
}

// Composite runs up to 25 dependent subrequests in one round trip.
func Composite(req wire.CompositeRequest) (wire.CompositeResponse, error) {
	return invoke[wire.CompositeRequest, wire.CompositeResponse](importComposite, req)
}

// CompositeBatch runs independent subrequests in one round trip.
func CompositeBatch(req wire.CompositeBatchRequest) (wire.CompositeBatchResponse, error) {
	return invoke[wire.CompositeBatchRequest, wire.CompositeBatchResponse](importCompositeBatch, req)
}

// CompositeTree creates nested record trees.
func CompositeTree(req wire.CompositeTreeRequest) (wire.CompositeTreeResponse, error) {
	return invoke[wire.CompositeTreeRequest, wire.CompositeTreeResponse](importCompositeTree, req)
}

// CompositeGraph executes graphs of composite subrequests.
func CompositeGraph(req wire.CompositeGraphRequest) (json.RawMessage, error) {
	return invoke[wire.CompositeGraphRequest, json.RawMessage](importCompositeGraph, req)
}

// CreateMultiple inserts up to 200 records in one call.
func CreateMultiple(req wire.CreateMultipleRequest) ([]wire.CollectionResult, error) {
	return invoke[wire.CreateMultipleRequest, []wire.CollectionResult](importCreateMultiple, req)
}

// UpdateMultiple updates up to 200 records in one call.
func UpdateMultiple(req wire.UpdateMultipleRequest) ([]wire.CollectionResult, error) {
	return invoke[wire.UpdateMultipleRequest, []wire.CollectionResult](importUpdateMultiple, req)
}

// GetMultiple reads up to 2000 records by ID.
func GetMultiple(req wire.GetMultipleRequest) ([]json.RawMessage, error) {
	return invoke[wire.GetMultipleRequest, []json.RawMessage](importGetMultiple, req)
}

// DeleteMultiple deletes up to 200 records in one call.
func DeleteMultiple(req wire.DeleteMultipleRequest) ([]wire.CollectionResult, error) {
	return invoke[wire.DeleteMultipleRequest, []wire.CollectionResult](importDeleteMultiple, req)
}
