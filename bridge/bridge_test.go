package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/quillback/sfbridge/salesforce"
	"github.com/quillback/sfbridge/wire"
)

const bridgeTestToken = "00Dxx0000001gPL!AQEAQHbridge_session_secret"

func newBridgeState(t *testing.T, url string) *State {
	t.Helper()
	c, err := salesforce.NewClient(url, bridgeTestToken, salesforce.WithMaxRetries(1))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return NewState(c)
}

func decodeEnvelope[T any](t *testing.T, data []byte) wire.Result[T] {
	t.Helper()
	var r wire.Result[T]
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatalf("decode envelope %s: %v", data, err)
	}
	return r
}

func TestCallQueryEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/query") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"totalSize":1,"done":true,"records":[{"Id":"001xx000003DGb1AAG","Name":"Acme"}]}`))
	}))
	defer server.Close()

	ctx := context.Background()
	guest := buildGuest(guestImport{name: wire.NameQuery})
	b, err := New(ctx, guest, newBridgeState(t, server.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer b.Close(ctx)

	input, _ := json.Marshal(wire.QueryRequest{SOQL: "SELECT Id, Name FROM Account"})
	out, err := b.Call(ctx, "call0", input)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}

	res := decodeEnvelope[wire.QueryResponse](t, out)
	if !res.IsOk() {
		t.Fatalf("expected ok envelope, got %v", res.Err)
	}
	if res.Value.TotalSize != 1 || !res.Value.Done {
		t.Errorf("unexpected page header: %+v", res.Value)
	}
	if len(res.Value.Records) != 1 || !strings.Contains(string(res.Value.Records[0]), "Acme") {
		t.Errorf("unexpected records: %v", res.Value.Records)
	}
}

func TestCallNullaryImport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"DailyApiRequests":{"Max":15000,"Remaining":14999}}`))
	}))
	defer server.Close()

	ctx := context.Background()
	guest := buildGuest(guestImport{name: wire.NameLimits, nullary: true})
	b, err := New(ctx, guest, newBridgeState(t, server.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer b.Close(ctx)

	out, err := b.Call(ctx, "call0", nil)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	res := decodeEnvelope[json.RawMessage](t, out)
	if !res.IsOk() {
		t.Fatalf("expected ok envelope, got %v", res.Err)
	}
	if !strings.Contains(string(res.Value), "DailyApiRequests") {
		t.Errorf("unexpected payload: %s", res.Value)
	}
}

func TestCallSanitizesAuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
		w.Write([]byte(`[{"message":"Session expired or invalid","errorCode":"INVALID_SESSION_ID"}]`))
	}))
	defer server.Close()

	ctx := context.Background()
	guest := buildGuest(guestImport{name: wire.NameQuery})
	b, err := New(ctx, guest, newBridgeState(t, server.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer b.Close(ctx)

	input, _ := json.Marshal(wire.QueryRequest{SOQL: "SELECT Id FROM Account"})
	out, err := b.Call(ctx, "call0", input)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	res := decodeEnvelope[wire.QueryResponse](t, out)
	if res.IsOk() {
		t.Fatal("expected err envelope")
	}
	if res.Err.Code != "AUTH_ERROR" {
		t.Errorf("expected AUTH_ERROR, got %s", res.Err.Code)
	}
	if strings.Contains(string(out), bridgeTestToken) {
		t.Error("session token leaked into guest-visible envelope")
	}
}

func TestNewRejectsUnknownImport(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	guest := buildGuest(guestImport{name: "sf_not_a_function"})
	_, err := New(context.Background(), guest, newBridgeState(t, server.URL))
	if err == nil {
		t.Fatal("expected construction to fail")
	}
	if !strings.Contains(err.Error(), "sf_not_a_function") {
		t.Errorf("error does not name the bad import: %v", err)
	}
}

func TestNewRejectsDisabledCategory(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	// Only the REST category is enabled; a guest linked against a bulk
	// operation must be rejected up front.
	state := newBridgeState(t, server.URL)
	state.Bulk = nil
	state.Tooling = nil
	state.Metadata = nil

	guest := buildGuest(guestImport{name: wire.NameBulkGetIngestJob})
	_, err := New(context.Background(), guest, state)
	if err == nil {
		t.Fatal("expected construction to fail")
	}
	if !strings.Contains(err.Error(), wire.NameBulkGetIngestJob) {
		t.Errorf("error does not name the disabled import: %v", err)
	}
}

func TestNewRejectsWrongSignature(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	// sf_limits takes no argument; importing it with one must fail.
	guest := buildGuest(guestImport{name: wire.NameLimits})
	_, err := New(context.Background(), guest, newBridgeState(t, server.URL))
	if err == nil {
		t.Fatal("expected construction to fail")
	}
	if !strings.Contains(err.Error(), wire.NameLimits) {
		t.Errorf("error does not name the mismatched import: %v", err)
	}
}

func TestNewRejectsMissingAllocator(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	guest := buildGuestModule(false, guestImport{name: wire.NameQuery})
	_, err := New(context.Background(), guest, newBridgeState(t, server.URL))
	if err == nil {
		t.Fatal("expected construction to fail")
	}
	if !strings.Contains(err.Error(), "sf_alloc") {
		t.Errorf("error does not name the allocator: %v", err)
	}
}

func TestNewRequiresState(t *testing.T) {
	if _, err := New(context.Background(), buildGuest(), nil); err == nil {
		t.Fatal("expected construction to fail")
	}
}

func TestCallUnknownExport(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	ctx := context.Background()
	b, err := New(ctx, buildGuest(guestImport{name: wire.NameQuery}), newBridgeState(t, server.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer b.Close(ctx)

	if _, err := b.Call(ctx, "no_such_export", nil); err == nil {
		t.Fatal("expected call to fail")
	}
}

func TestCallAfterClose(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	ctx := context.Background()
	b, err := New(ctx, buildGuest(guestImport{name: wire.NameQuery}), newBridgeState(t, server.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := b.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := b.Close(ctx); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, err := b.Call(ctx, "call0", nil); err == nil {
		t.Fatal("expected call on closed bridge to fail")
	}
}

// Four calls across two bridges must all be in flight at the same
// time. The backend holds every request until it has seen all four, so
// any serialization deadlocks into the timeout path and fails the
// calls.
func TestConcurrentCallsAcrossBridges(t *testing.T) {
	const calls = 4

	var mu sync.Mutex
	inflight := 0
	allArrived := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		inflight++
		if inflight == calls {
			close(allArrived)
		}
		mu.Unlock()

		select {
		case <-allArrived:
		case <-time.After(10 * time.Second):
			w.WriteHeader(500)
			return
		}
		w.Write([]byte(`{"totalSize":0,"done":true,"records":[]}`))
	}))
	defer server.Close()

	ctx := context.Background()
	guest := buildGuest(guestImport{name: wire.NameQuery})

	bridges := make([]*Bridge, 2)
	for i := range bridges {
		b, err := New(ctx, guest, newBridgeState(t, server.URL))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		defer b.Close(ctx)
		bridges[i] = b
	}

	input, _ := json.Marshal(wire.QueryRequest{SOQL: "SELECT Id FROM Account"})
	var g errgroup.Group
	for i := 0; i < calls; i++ {
		b := bridges[i%len(bridges)]
		g.Go(func() error {
			out, err := b.Call(ctx, "call0", input)
			if err != nil {
				return err
			}
			res := decodeEnvelope[wire.QueryResponse](t, out)
			if !res.IsOk() {
				return res.Err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent calls: %v", err)
	}
}

func TestFunctionsListsRegistry(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	ctx := context.Background()
	b, err := New(ctx, buildGuest(), newBridgeState(t, server.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer b.Close(ctx)

	names := b.Functions()
	found := false
	for _, name := range names {
		if name == wire.NameQuery {
			found = true
		}
	}
	if !found {
		t.Errorf("Functions() does not list %s", wire.NameQuery)
	}
}
