package salesforce

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillback/sfbridge/wire"
)

func TestBulkCreateIngestJobDefaults(t *testing.T) {
	var got map[string]any
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"id":"750xx0001","state":"Open","object":"Account","operation":"insert"}`))
	}))
	bulk := NewBulkClient(c)

	job, err := bulk.CreateIngestJob(context.Background(), wire.BulkCreateIngestJobRequest{
		SObject:   "Account",
		Operation: "insert",
	})
	require.NoError(t, err)
	assert.Equal(t, "750xx0001", job.ID)
	assert.Equal(t, "Open", job.State)
	assert.Equal(t, "COMMA", got["columnDelimiter"])
	assert.Equal(t, "LF", got["lineEnding"])
	assert.Equal(t, "CSV", got["contentType"])
	assert.NotContains(t, got, "externalIdFieldName")
}

func TestBulkUploadJobDataSendsCSV(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPut, r.Method)
		w.WriteHeader(http.StatusCreated)
	}))
	bulk := NewBulkClient(c)

	err := bulk.UploadJobData(context.Background(), "750xx0001", "Name\nAcme\n")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", gotContentType)
	assert.Equal(t, "Name\nAcme\n", string(gotBody))
}

func TestBulkCloseAndAbortSetState(t *testing.T) {
	var states []string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		states = append(states, body["state"])
		w.Write([]byte(`{"id":"750xx0001","state":"` + body["state"] + `"}`))
	}))
	bulk := NewBulkClient(c)

	_, err := bulk.CloseIngestJob(context.Background(), "750xx0001")
	require.NoError(t, err)
	_, err = bulk.AbortIngestJob(context.Background(), "750xx0001")
	require.NoError(t, err)
	assert.Equal(t, []string{"UploadComplete", "Aborted"}, states)
}

func TestBulkGetQueryResultsLocator(t *testing.T) {
	var gotLocator string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLocator = r.URL.Query().Get("locator")
		w.Header().Set("Sforce-Locator", "null")
		w.Write([]byte("Id,Name\n001A,Acme\n"))
	}))
	bulk := NewBulkClient(c)

	res, err := bulk.GetQueryResults(context.Background(), wire.BulkQueryResultsRequest{
		JobID:   "750xx0002",
		Locator: "abc123",
	})
	require.NoError(t, err)
	assert.Equal(t, "abc123", gotLocator)
	assert.Equal(t, "Id,Name\n001A,Acme\n", res.CSVData)
	// A "null" locator header means the final page.
	assert.Empty(t, res.Locator)
}

func TestBulkErrorCarriesTransport(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(404)
		w.Write([]byte(`[{"message":"job not found","errorCode":"NOT_FOUND"}]`))
	}))
	bulk := NewBulkClient(c)

	_, err := bulk.GetIngestJob(context.Background(), "750xx0009")
	var berr *BulkError
	require.ErrorAs(t, err, &berr)
	require.NotNil(t, berr.Transport)
	assert.Equal(t, KindNotFound, berr.Transport.Kind)
}
