package salesforce

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillback/sfbridge/wire"
)

func wireCreateMultiple(sobject, record string) wire.CreateMultipleRequest {
	return wire.CreateMultipleRequest{
		SObject:   sobject,
		Records:   []json.RawMessage{json.RawMessage(record)},
		AllOrNone: true,
	}
}

func wireQuickAction(sobject, action, recordID, body string) wire.InvokeQuickActionRequest {
	return wire.InvokeQuickActionRequest{
		SObject:  sobject,
		Action:   action,
		RecordID: recordID,
		Body:     json.RawMessage(body),
	}
}

func TestQuery(t *testing.T) {
	var gotPath, gotQuery string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(`{"totalSize":2,"done":true,"records":[{"Id":"001A"},{"Id":"001B"}]}`))
	}))
	rest := NewRestClient(c)

	res, err := rest.Query(context.Background(), "SELECT Id FROM Account", false)
	require.NoError(t, err)
	assert.Equal(t, "/services/data/"+DefaultAPIVersion+"/query", gotPath)
	assert.Equal(t, "SELECT Id FROM Account", gotQuery)
	assert.True(t, res.Done)
	assert.Equal(t, uint64(2), res.TotalSize)
	assert.Len(t, res.Records, 2)
}

func TestQueryAllEndpoint(t *testing.T) {
	var gotPath string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"totalSize":0,"done":true,"records":[]}`))
	}))
	rest := NewRestClient(c)

	_, err := rest.Query(context.Background(), "SELECT Id FROM Account", true)
	require.NoError(t, err)
	assert.Equal(t, "/services/data/"+DefaultAPIVersion+"/queryAll", gotPath)
}

func TestQueryMoreRequiresRelativeLocator(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	}))
	rest := NewRestClient(c)

	_, err := rest.QueryMore(context.Background(), "https://evil.example.com/steal")
	var terr *Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, KindConfig, terr.Kind)
}

func TestCreate(t *testing.T) {
	var gotBody []byte
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"001xx000003DGb2AAG","success":true,"errors":[]}`))
	}))
	rest := NewRestClient(c)

	res, err := rest.Create(context.Background(), "Account", json.RawMessage(`{"Name":"Acme"}`))
	require.NoError(t, err)
	assert.Equal(t, "001xx000003DGb2AAG", res.ID)
	assert.True(t, res.Success)
	assert.JSONEq(t, `{"Name":"Acme"}`, string(gotBody))
}

func TestUpsertCreatedFlag(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		w.Write([]byte(`{"id":"001B","success":true,"created":false}`))
	}))
	rest := NewRestClient(c)

	res, err := rest.Upsert(context.Background(), "Account", "Ext__c", "k-1", json.RawMessage(`{"Name":"Acme"}`))
	require.NoError(t, err)
	assert.False(t, res.Created)
}

func TestGetProjectsFields(t *testing.T) {
	var gotFields string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFields = r.URL.Query().Get("fields")
		w.Write([]byte(`{"Id":"001A","Name":"Acme"}`))
	}))
	rest := NewRestClient(c)

	_, err := rest.Get(context.Background(), "Account", "001A", []string{"Id", "Name"})
	require.NoError(t, err)
	assert.Equal(t, "Id,Name", gotFields)
}

func TestSearchDecodesRecords(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "FIND {Acme}", r.URL.Query().Get("q"))
		w.Write([]byte(`{"searchRecords":[{"Id":"001A"}]}`))
	}))
	rest := NewRestClient(c)

	res, err := rest.Search(context.Background(), "FIND {Acme}")
	require.NoError(t, err)
	require.Len(t, res.SearchRecords, 1)
}

func TestCreateMultipleTagsRecords(t *testing.T) {
	var got struct {
		AllOrNone bool                         `json:"allOrNone"`
		Records   []map[string]json.RawMessage `json:"records"`
	}
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`[{"id":"001A","success":true}]`))
	}))
	rest := NewRestClient(c)

	results, err := rest.CreateMultiple(context.Background(), wireCreateMultiple("Account", `{"Name":"Acme"}`))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, got.AllOrNone)
	require.Len(t, got.Records, 1)
	assert.JSONEq(t, `{"type":"Account"}`, string(got.Records[0]["attributes"]))
}

func TestGetDeleted(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-01-01T00:00:00Z", r.URL.Query().Get("start"))
		w.Write([]byte(`{"deletedRecords":[{"id":"001A","deletedDate":"2026-01-02T03:04:05Z"}],"earliestDateAvailable":"2025-12-01T00:00:00Z","latestDateCovered":"2026-01-31T00:00:00Z"}`))
	}))
	rest := NewRestClient(c)

	res, err := rest.GetDeleted(context.Background(), "Account", "2026-01-01T00:00:00Z", "2026-01-31T00:00:00Z")
	require.NoError(t, err)
	require.Len(t, res.DeletedRecords, 1)
	assert.Equal(t, "001A", res.DeletedRecords[0].ID)
	assert.Equal(t, "2026-01-31T00:00:00Z", res.LatestDateCovered)
}

func TestInvokeQuickActionPathSelection(t *testing.T) {
	var paths []string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	rest := NewRestClient(c)

	_, err := rest.InvokeQuickAction(context.Background(), wireQuickAction("Account", "LogACall", "", `{}`))
	require.NoError(t, err)
	_, err = rest.InvokeQuickAction(context.Background(), wireQuickAction("Account", "LogACall", "001A", `{}`))
	require.NoError(t, err)

	base := "/services/data/" + DefaultAPIVersion
	assert.Equal(t, base+"/sobjects/Account/quickActions/LogACall", paths[0])
	assert.Equal(t, base+"/sobjects/Account/001A/quickActions/LogACall", paths[1])
}

func TestQueryEscaping(t *testing.T) {
	soql := "SELECT Id FROM Account WHERE Name = 'A & B'"
	escaped := url.QueryEscape(soql)
	assert.NotContains(t, escaped, " ")
	assert.NotContains(t, escaped, "&")
}
