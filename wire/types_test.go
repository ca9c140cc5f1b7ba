package wire

import (
	"encoding/json"
	"reflect"
	"testing"
)

// One representative record per category is enough to catch a broken
// or missing json tag; the rest share the same plain-struct shape.
func TestRecordRoundTrips(t *testing.T) {
	line := 4
	skip := true
	records := []any{
		&QueryRequest{SOQL: "SELECT Id FROM Account", IncludeDeleted: true},
		&UpsertRequest{SObject: "Contact", ExternalIDField: "Ext__c", ExternalIDValue: "k-1", Record: json.RawMessage(`{"LastName":"Ng"}`)},
		&CreateResponse{ID: "001xx000003DGb1AAG", Success: true},
		&BulkCreateIngestJobRequest{SObject: "Account", Operation: "upsert", ExternalIDField: "Ext__c", ColumnDelimiter: "SEMICOLON"},
		&BulkJobResponse{ID: "750xx0000005abc", State: "JobComplete", Object: "Account", Operation: "insert", NumberRecordsProcessed: 12, NumberRecordsFailed: 1},
		&ExecuteAnonymousResponse{Compiled: true, CompileProblem: "", ExceptionMessage: "System.NullPointerException", Line: &line},
		&MetadataRetrieveRequest{Types: []MetadataPackageType{{Name: "ApexClass", Members: []string{"*"}}}, APIVersion: "61.0"},
		&MetadataDeployOptions{CheckOnly: true, TestLevel: "RunSpecifiedTests", RunTests: []string{"AccountTest"}},
		&SubmitApprovalRequest{ActionType: "Submit", ContextID: "001xx", Comments: "please review", NextApproverIDs: []string{"005xx"}, SkipEntryCriteria: &skip},
		&BlobResponse{DataBase64: "aGVsbG8="},
	}
	for _, rec := range records {
		name := reflect.TypeOf(rec).Elem().Name()
		t.Run(name, func(t *testing.T) {
			data, err := json.Marshal(rec)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			back := reflect.New(reflect.TypeOf(rec).Elem()).Interface()
			if err := json.Unmarshal(data, back); err != nil {
				t.Fatalf("unmarshal %s: %v", data, err)
			}
			if !reflect.DeepEqual(rec, back) {
				t.Errorf("round trip changed the record:\n  sent %+v\n  got  %+v", rec, back)
			}
		})
	}
}
