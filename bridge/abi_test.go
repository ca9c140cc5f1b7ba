package bridge

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/quillback/sfbridge/wire"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	tests := []struct {
		ptr, size uint32
	}{
		{0, 0},
		{1024, 1},
		{1, 1024},
		{math.MaxUint32, math.MaxUint32},
		{0x12345678, 0x9abcdef0},
	}
	for _, tt := range tests {
		packed := packPtr(tt.ptr, tt.size)
		ptr, size := unpackPtr(packed)
		if ptr != tt.ptr || size != tt.size {
			t.Errorf("round trip (%d, %d) came back as (%d, %d)", tt.ptr, tt.size, ptr, size)
		}
	}
}

func TestEncodeResultFallsBackOnUnencodableValue(t *testing.T) {
	out := encodeResult(wire.Ok(make(chan int)))
	res := decodeEnvelope[wire.Empty](t, out)
	if res.IsOk() {
		t.Fatal("expected err envelope")
	}
	if res.Err.Code != "SERIALIZATION_ERROR" {
		t.Errorf("expected SERIALIZATION_ERROR, got %s", res.Err.Code)
	}
}

func TestUnaryEnvelopes(t *testing.T) {
	fn := unary("sf_echo", sanitizeRest, func(ctx context.Context, s *State, req wire.IDRequest) (wire.IDRequest, error) {
		if req.ID == "" {
			return wire.IDRequest{}, invalidRequestf("id is required")
		}
		return req, nil
	})

	out := fn.Call(context.Background(), &State{}, []byte(`{"id":"001"}`))
	ok := decodeEnvelope[wire.IDRequest](t, out)
	if !ok.IsOk() || ok.Value.ID != "001" {
		t.Errorf("unexpected result %+v", ok)
	}

	out = fn.Call(context.Background(), &State{}, []byte(`{"id":""}`))
	rejected := decodeEnvelope[wire.IDRequest](t, out)
	if rejected.IsOk() || rejected.Err.Code != "INVALID_REQUEST" {
		t.Errorf("expected INVALID_REQUEST, got %+v", rejected)
	}

	out = fn.Call(context.Background(), &State{}, []byte(`not json`))
	malformed := decodeEnvelope[wire.IDRequest](t, out)
	if malformed.IsOk() || malformed.Err.Code != "DECODE_ERROR" {
		t.Errorf("expected DECODE_ERROR, got %+v", malformed)
	}
}

func TestNullaryEnvelopes(t *testing.T) {
	fn := nullary("sf_static", sanitizeRest, func(ctx context.Context, s *State) (wire.Empty, error) {
		return wire.Empty{}, nil
	})
	out := fn.Call(context.Background(), &State{}, nil)
	res := decodeEnvelope[wire.Empty](t, out)
	if !res.IsOk() {
		t.Errorf("expected ok envelope, got %v", res.Err)
	}

	failing := nullary("sf_broken", sanitizeRest, func(ctx context.Context, s *State) (wire.Empty, error) {
		return wire.Empty{}, errors.New("backend unreachable")
	})
	out = failing.Call(context.Background(), &State{}, nil)
	res = decodeEnvelope[wire.Empty](t, out)
	if res.IsOk() || res.Err.Code != "OTHER_ERROR" {
		t.Errorf("expected OTHER_ERROR, got %+v", res)
	}
}

func TestFaultSlotRecordsFirstFaultOnly(t *testing.T) {
	ctx, fault := withCallFault(context.Background())
	first := &ABIError{Fn: "sf_query", Op: "read", Err: errors.New("bad region")}
	second := &ABIError{Fn: "sf_query", Op: "write", Err: errors.New("later")}
	recordFault(ctx, first)
	recordFault(ctx, second)
	if fault.err != first {
		t.Errorf("expected the first fault to win, got %v", fault.err)
	}
}

func TestFaultFromMissingSlot(t *testing.T) {
	if faultFrom(context.Background()) != nil {
		t.Error("expected no fault slot on a bare context")
	}
	// recordFault on a bare context must be a no-op, not a panic.
	recordFault(context.Background(), &ABIError{Fn: "sf_query", Op: "read", Err: errors.New("x")})
}
