package wire

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestResultMarshalOk(t *testing.T) {
	r := Ok(QueryResponse{TotalSize: 1, Done: true})
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"ok"`) {
		t.Fatalf("expected ok key, got %s", data)
	}
	if strings.Contains(string(data), `"err"`) {
		t.Fatalf("unexpected err key in %s", data)
	}
}

func TestResultMarshalOkEmpty(t *testing.T) {
	// An empty success still carries the ok tag so guests can tell it
	// apart from a malformed envelope.
	data, err := json.Marshal(Ok(Empty{}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"ok":{}}` {
		t.Fatalf("got %s", data)
	}
}

func TestResultMarshalErr(t *testing.T) {
	r := Errf[Empty]("NOT_FOUND", "no such record %s", "001xx")
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"err":{"code":"NOT_FOUND","message":"no such record 001xx"}}`
	if string(data) != want {
		t.Fatalf("got %s, want %s", data, want)
	}
}

func TestResultUnmarshalOk(t *testing.T) {
	var r Result[CreateResponse]
	if err := json.Unmarshal([]byte(`{"ok":{"id":"003xx","success":true}}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !r.IsOk() {
		t.Fatalf("expected ok, got err %v", r.Err)
	}
	if r.Value.ID != "003xx" || !r.Value.Success {
		t.Fatalf("unexpected value %+v", r.Value)
	}
}

func TestResultUnmarshalErr(t *testing.T) {
	var r Result[Empty]
	if err := json.Unmarshal([]byte(`{"err":{"code":"RATE_LIMITED","message":"throttled"}}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.IsOk() {
		t.Fatal("expected err")
	}
	if _, err := r.Unwrap(); err == nil || err.Error() != "RATE_LIMITED: throttled" {
		t.Fatalf("unexpected unwrap error: %v", err)
	}
}

func TestResultUnmarshalNeitherTag(t *testing.T) {
	var r Result[Empty]
	if err := json.Unmarshal([]byte(`{"value":1}`), &r); err == nil {
		t.Fatal("expected error for envelope without ok or err")
	}
}

func TestResultRoundTrip(t *testing.T) {
	orig := Ok(UpsertResponse{ID: "001A", Success: true, Created: true})
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Result[UpsertResponse]
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(back.Value, orig.Value) {
		t.Fatalf("got %+v, want %+v", back.Value, orig.Value)
	}
}
