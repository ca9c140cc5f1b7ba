//go:build wasip1

package guest

import (
	"encoding/json"

	"github.com/quillback/sfbridge/wire"
)

// ToolingQuery runs a Tooling API SOQL query.
func ToolingQuery(soql string) (wire.QueryResponse, error) {
	return invoke[wire.ToolingQueryRequest, wire.QueryResponse](importToolingQuery, wire.ToolingQueryRequest{SOQL: soql})
}

// ToolingExecuteAnonymous compiles and runs Apex code.
func ToolingExecuteAnonymous(apexCode string) (wire.ExecuteAnonymousResponse, error) {
	return invoke[wire.ExecuteAnonymousRequest, wire.ExecuteAnonymousResponse](importToolingExecuteAnonymous, wire.ExecuteAnonymousRequest{ApexCode: apexCode})
}

// ToolingGet reads a tooling record.
func ToolingGet(sobject, id string) (json.RawMessage, error) {
	return invoke[wire.ToolingGetRequest, json.RawMessage](importToolingGet, wire.ToolingGetRequest{SObject: sobject, ID: id})
}

// ToolingCreate creates a tooling record.
func ToolingCreate(sobject string, record json.RawMessage) (wire.CreateResponse, error) {
	return invoke[wire.ToolingCreateRequest, wire.CreateResponse](importToolingCreate, wire.ToolingCreateRequest{SObject: sobject, Record: record})
}

// ToolingDelete deletes a tooling record.
func ToolingDelete(sobject, id string) error {
	_, err := invoke[wire.ToolingDeleteRequest, wire.Empty](importToolingDelete, wire.ToolingDeleteRequest{SObject: sobject, ID: id})
	return err
}
