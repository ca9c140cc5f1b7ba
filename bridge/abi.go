package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tetratelabs/wazero/api"

	"github.com/quillback/sfbridge/wire"
)

const (
	importModule = wire.ImportModule
	allocExport  = wire.AllocExport
)

// ABIError is the only fault the ABI layer itself can raise: the host
// could not place a buffer into guest linear memory, either because the
// guest's allocator failed or because the returned region is out of
// bounds. It surfaces from Bridge.Call; it is never silently dropped.
type ABIError struct {
	Fn  string
	Op  string
	Err error
}

func (e *ABIError) Error() string {
	return fmt.Sprintf("abi: %s: %s: %v", e.Fn, e.Op, e.Err)
}

func (e *ABIError) Unwrap() error { return e.Err }

// packPtr packs a guest memory region into the u64 the ABI passes
// across the boundary.
func packPtr(ptr, size uint32) uint64 {
	return uint64(ptr)<<32 | uint64(size)
}

// unpackPtr splits a packed u64 back into pointer and length.
func unpackPtr(packed uint64) (ptr, size uint32) {
	return uint32(packed >> 32), uint32(packed)
}

// callFault records an ABI fault raised inside a host function so
// Bridge.Call can surface it. One value lives in the context of every
// guest invocation.
type callFault struct {
	err *ABIError
}

type callFaultKey struct{}

func withCallFault(ctx context.Context) (context.Context, *callFault) {
	fault := &callFault{}
	return context.WithValue(ctx, callFaultKey{}, fault), fault
}

func faultFrom(ctx context.Context) *callFault {
	fault, _ := ctx.Value(callFaultKey{}).(*callFault)
	return fault
}

// readGuestBytes copies a packed region out of guest memory. A region
// outside the guest's linear memory yields ok=false.
func readGuestBytes(mod api.Module, packed uint64) ([]byte, bool) {
	ptr, size := unpackPtr(packed)
	if size == 0 {
		return nil, true
	}
	data, ok := mod.Memory().Read(ptr, size)
	if !ok {
		return nil, false
	}
	// The view aliases guest memory, which the guest may reuse.
	out := make([]byte, len(data))
	copy(out, data)
	return out, true
}

// writeGuestBytes allocates guest memory through the guest's exported
// allocator and copies data into it, returning the packed region.
func writeGuestBytes(ctx context.Context, mod api.Module, fnName string, data []byte) (uint64, error) {
	alloc := mod.ExportedFunction(allocExport)
	if alloc == nil {
		return 0, &ABIError{Fn: fnName, Op: "alloc", Err: fmt.Errorf("guest does not export %s", allocExport)}
	}
	results, err := alloc.Call(ctx, uint64(len(data)))
	if err != nil {
		return 0, &ABIError{Fn: fnName, Op: "alloc", Err: err}
	}
	if len(results) != 1 {
		return 0, &ABIError{Fn: fnName, Op: "alloc", Err: fmt.Errorf("allocator returned %d values", len(results))}
	}
	ptr := uint32(results[0])
	if !mod.Memory().Write(ptr, data) {
		return 0, &ABIError{Fn: fnName, Op: "write", Err: fmt.Errorf("region [%d, %d) is outside guest memory", ptr, int(ptr)+len(data))}
	}
	return packPtr(ptr, uint32(len(data))), nil
}

// wasmFunc adapts a HostFunc to wazero's stack calling convention.
// Reachable handler failures come back as encoded err envelopes; only
// a guest-memory fault is recorded on the call's fault slot, making
// the current invocation return a zero pointer.
func wasmFunc(fn HostFunc, state *State) api.GoModuleFunction {
	return api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
		var input []byte
		if fn.Arity == Arity1 {
			data, ok := readGuestBytes(mod, stack[0])
			if !ok {
				recordFault(ctx, &ABIError{Fn: fn.Name, Op: "read", Err: fmt.Errorf("request region is outside guest memory")})
				setResult(fn.Arity, stack, 0)
				return
			}
			input = data
		}

		output := fn.Call(ctx, state, input)

		packed, err := writeGuestBytes(ctx, mod, fn.Name, output)
		if err != nil {
			recordFault(ctx, err.(*ABIError))
			setResult(fn.Arity, stack, 0)
			return
		}
		setResult(fn.Arity, stack, packed)
	})
}

func setResult(arity Arity, stack []uint64, packed uint64) {
	// Results overwrite the parameter slots; a nullary function's
	// stack has one slot reserved for the result.
	stack[0] = packed
}

func recordFault(ctx context.Context, err *ABIError) {
	if fault := faultFrom(ctx); fault != nil && fault.err == nil {
		fault.err = err
	}
}

// paramTypes returns the wazero signature for an arity.
func paramTypes(arity Arity) []api.ValueType {
	if arity == Arity1 {
		return []api.ValueType{api.ValueTypeI64}
	}
	return nil
}

var resultTypes = []api.ValueType{api.ValueTypeI64}

// encodeResult marshals a result envelope. Encoding a success value
// can fail on exotic payloads; the fallback is a serialization error
// envelope, which cannot fail.
func encodeResult[T any](r wire.Result[T]) []byte {
	data, err := json.Marshal(r)
	if err != nil {
		fallback, _ := json.Marshal(wire.ErrFrom[wire.Empty](codeSerializationError, "unable to encode result: "+err.Error()))
		return fallback
	}
	return data
}

// unary builds a one-argument host function: decode the request,
// invoke fn, sanitize any failure.
func unary[Req, Resp any](name string, sanitize sanitizer, fn func(context.Context, *State, Req) (Resp, error)) HostFunc {
	return HostFunc{
		Name:  name,
		Arity: Arity1,
		Call: func(ctx context.Context, state *State, input []byte) []byte {
			var req Req
			if err := json.Unmarshal(input, &req); err != nil {
				return encodeResult(wire.Errf[Resp](codeDecodeError, "invalid request: %v", err))
			}
			resp, err := fn(ctx, state, req)
			if err != nil {
				code, msg := sanitize(state, err)
				return encodeResult(wire.ErrFrom[Resp](code, msg))
			}
			return encodeResult(wire.Ok(resp))
		},
	}
}

// nullary builds a zero-argument host function.
func nullary[Resp any](name string, sanitize sanitizer, fn func(context.Context, *State) (Resp, error)) HostFunc {
	return HostFunc{
		Name:  name,
		Arity: Arity0,
		Call: func(ctx context.Context, state *State, _ []byte) []byte {
			resp, err := fn(ctx, state)
			if err != nil {
				code, msg := sanitize(state, err)
				return encodeResult(wire.ErrFrom[Resp](code, msg))
			}
			return encodeResult(wire.Ok(resp))
		},
	}
}
