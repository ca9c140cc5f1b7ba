package salesforce

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/quillback/sfbridge/wire"
)

// compositeSubrequestBody is the Salesforce-casing subrequest shape.
type compositeSubrequestBody struct {
	Method      string          `json:"method"`
	URL         string          `json:"url"`
	ReferenceID string          `json:"referenceId"`
	Body        json.RawMessage `json:"body,omitempty"`
}

// Composite runs up to 25 dependent subrequests in one round trip.
func (r *RestClient) Composite(ctx context.Context, req wire.CompositeRequest) (wire.CompositeResponse, error) {
	subs := make([]compositeSubrequestBody, len(req.Subrequests))
	for i, s := range req.Subrequests {
		subs[i] = compositeSubrequestBody{
			Method:      s.Method,
			URL:         s.URL,
			ReferenceID: s.ReferenceID,
			Body:        s.Body,
		}
	}
	body := struct {
		AllOrNone        bool                      `json:"allOrNone"`
		CompositeRequest []compositeSubrequestBody `json:"compositeRequest"`
	}{req.AllOrNone, subs}

	var resBody struct {
		CompositeResponse []struct {
			Body           json.RawMessage `json:"body"`
			HTTPStatusCode int             `json:"httpStatusCode"`
			ReferenceID    string          `json:"referenceId"`
		} `json:"compositeResponse"`
	}
	if err := r.c.post(ctx, r.c.dataPath("composite"), body, &resBody); err != nil {
		return wire.CompositeResponse{}, err
	}
	out := wire.CompositeResponse{Responses: make([]wire.CompositeSubresponse, len(resBody.CompositeResponse))}
	for i, s := range resBody.CompositeResponse {
		out.Responses[i] = wire.CompositeSubresponse{
			Body:           s.Body,
			HTTPStatusCode: s.HTTPStatusCode,
			ReferenceID:    s.ReferenceID,
		}
	}
	return out, nil
}

// CompositeBatch runs up to 25 independent subrequests in one call.
func (r *RestClient) CompositeBatch(ctx context.Context, req wire.CompositeBatchRequest) (wire.CompositeBatchResponse, error) {
	type batchSub struct {
		Method    string          `json:"method"`
		URL       string          `json:"url"`
		RichInput json.RawMessage `json:"richInput,omitempty"`
	}
	subs := make([]batchSub, len(req.Subrequests))
	for i, s := range req.Subrequests {
		subs[i] = batchSub{Method: s.Method, URL: s.URL, RichInput: s.RichInput}
	}
	body := struct {
		HaltOnError   bool       `json:"haltOnError"`
		BatchRequests []batchSub `json:"batchRequests"`
	}{req.HaltOnError, subs}

	var resBody struct {
		HasErrors bool `json:"hasErrors"`
		Results   []struct {
			StatusCode int             `json:"statusCode"`
			Result     json.RawMessage `json:"result"`
		} `json:"results"`
	}
	if err := r.c.post(ctx, r.c.dataPath("composite", "batch"), body, &resBody); err != nil {
		return wire.CompositeBatchResponse{}, err
	}
	out := wire.CompositeBatchResponse{
		HasErrors: resBody.HasErrors,
		Results:   make([]wire.CompositeBatchSubresponse, len(resBody.Results)),
	}
	for i, s := range resBody.Results {
		out.Results[i] = wire.CompositeBatchSubresponse{StatusCode: s.StatusCode, Result: s.Result}
	}
	return out, nil
}

// CompositeTree creates nested record trees for one SObject type.
func (r *RestClient) CompositeTree(ctx context.Context, sobject string, records []json.RawMessage) (wire.CompositeTreeResponse, error) {
	body := struct {
		Records []json.RawMessage `json:"records"`
	}{records}

	var resBody struct {
		HasErrors bool `json:"hasErrors"`
		Results   []struct {
			ReferenceID string           `json:"referenceId"`
			ID          string           `json:"id"`
			Errors      []wire.APIError  `json:"errors"`
		} `json:"results"`
	}
	if err := r.c.post(ctx, r.c.dataPath("composite", "tree", sobject), body, &resBody); err != nil {
		return wire.CompositeTreeResponse{}, err
	}
	out := wire.CompositeTreeResponse{
		HasErrors: resBody.HasErrors,
		Results:   make([]wire.CompositeTreeResult, len(resBody.Results)),
	}
	for i, s := range resBody.Results {
		out.Results[i] = wire.CompositeTreeResult{ReferenceID: s.ReferenceID, ID: s.ID, Errors: s.Errors}
	}
	return out, nil
}

// CompositeGraph executes graphs of composite subrequests with
// per-graph transaction boundaries. The graph schema is passed through
// opaquely.
func (r *RestClient) CompositeGraph(ctx context.Context, graphs []json.RawMessage) (json.RawMessage, error) {
	body := struct {
		Graphs []json.RawMessage `json:"graphs"`
	}{graphs}
	var out json.RawMessage
	err := r.c.post(ctx, r.c.dataPath("composite", "graph"), body, &out)
	return out, err
}

// CreateMultiple inserts up to 200 records in one call.
func (r *RestClient) CreateMultiple(ctx context.Context, req wire.CreateMultipleRequest) ([]wire.CollectionResult, error) {
	records, err := tagRecords(req.SObject, req.Records)
	if err != nil {
		return nil, err
	}
	body := struct {
		AllOrNone bool              `json:"allOrNone"`
		Records   []json.RawMessage `json:"records"`
	}{req.AllOrNone, records}
	var out []wire.CollectionResult
	err = r.c.post(ctx, r.c.dataPath("composite", "sobjects"), body, &out)
	return out, err
}

// UpdateMultiple updates up to 200 records in one call.
func (r *RestClient) UpdateMultiple(ctx context.Context, req wire.UpdateMultipleRequest) ([]wire.CollectionResult, error) {
	records := make([]json.RawMessage, len(req.Records))
	for i, rec := range req.Records {
		merged, err := mergeRecordID(req.SObject, rec.ID, rec.Fields)
		if err != nil {
			return nil, err
		}
		records[i] = merged
	}
	body := struct {
		AllOrNone bool              `json:"allOrNone"`
		Records   []json.RawMessage `json:"records"`
	}{req.AllOrNone, records}
	var out []wire.CollectionResult
	err := r.c.patch(ctx, r.c.dataPath("composite", "sobjects"), body, &out)
	return out, err
}

// GetMultiple reads up to 2000 records by ID. Missing records come back
// as JSON null entries.
func (r *RestClient) GetMultiple(ctx context.Context, req wire.GetMultipleRequest) ([]json.RawMessage, error) {
	path := r.c.dataPath("composite", "sobjects", req.SObject) +
		"?ids=" + url.QueryEscape(strings.Join(req.IDs, ",")) +
		"&fields=" + url.QueryEscape(strings.Join(req.Fields, ","))
	var out []json.RawMessage
	err := r.c.get(ctx, path, &out)
	return out, err
}

// DeleteMultiple deletes up to 200 records in one call.
func (r *RestClient) DeleteMultiple(ctx context.Context, req wire.DeleteMultipleRequest) ([]wire.CollectionResult, error) {
	path := r.c.dataPath("composite", "sobjects") +
		"?ids=" + url.QueryEscape(strings.Join(req.IDs, ",")) +
		"&allOrNone=" + strconv.FormatBool(req.AllOrNone)
	var out []wire.CollectionResult
	err := r.c.delete(ctx, path, &out)
	return out, err
}

// tagRecords injects {"attributes":{"type":sobject}} into each record,
// as the collections endpoint requires.
func tagRecords(sobject string, records []json.RawMessage) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, len(records))
	for i, rec := range records {
		var m map[string]json.RawMessage
		if err := json.Unmarshal(rec, &m); err != nil {
			return nil, wrapErr(KindSerialization, "record is not a JSON object", err)
		}
		attrs, _ := json.Marshal(map[string]string{"type": sobject})
		m["attributes"] = attrs
		tagged, err := json.Marshal(m)
		if err != nil {
			return nil, wrapErr(KindSerialization, err.Error(), err)
		}
		out[i] = tagged
	}
	return out, nil
}

func mergeRecordID(sobject, id string, fields json.RawMessage) (json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(fields, &m); err != nil {
		return nil, wrapErr(KindSerialization, "record fields are not a JSON object", err)
	}
	attrs, _ := json.Marshal(map[string]string{"type": sobject})
	m["attributes"] = attrs
	idRaw, _ := json.Marshal(id)
	m["Id"] = idRaw
	return json.Marshal(m)
}
