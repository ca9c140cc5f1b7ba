//go:build wasip1

package guest

import (
	"encoding/json"
	"runtime"
	"unsafe"

	"github.com/quillback/sfbridge/wire"
)

// live pins buffers the host writes into (via sf_alloc) or reads from
// (via Return) so the collector keeps them while the host holds raw
// pointers. Guest code is single-threaded; no locking.
var live = map[uint32][]byte{}

//go:wasmexport sf_alloc
func sfAlloc(size uint32) uint32 {
	if size == 0 {
		return 0
	}
	buf := make([]byte, size)
	ptr := uint32(uintptr(unsafe.Pointer(&buf[0])))
	live[ptr] = buf
	return ptr
}

func pack(b []byte) uint64 {
	if len(b) == 0 {
		return 0
	}
	ptr := uint32(uintptr(unsafe.Pointer(&b[0])))
	return uint64(ptr)<<32 | uint64(uint32(len(b)))
}

// take copies the buffer a packed pointer names and releases its pin.
func take(packed uint64) []byte {
	ptr := uint32(packed >> 32)
	size := uint32(packed)
	if size == 0 {
		return nil
	}
	view := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(ptr))), size)
	out := make([]byte, size)
	copy(out, view)
	delete(live, ptr)
	return out
}

// Payload copies the request bytes the host delivered to an entry point.
func Payload(packed uint64) []byte {
	return take(packed)
}

// Return hands response bytes back to the host. The buffer stays pinned
// for the remainder of the instance's life; instances are per-call.
func Return(data []byte) uint64 {
	if len(data) == 0 {
		return 0
	}
	ptr := uint32(uintptr(unsafe.Pointer(&data[0])))
	live[ptr] = data
	return uint64(ptr)<<32 | uint64(uint32(len(data)))
}

func invoke[Req, Resp any](fn func(uint64) uint64, req Req) (Resp, error) {
	var zero Resp
	payload, err := json.Marshal(req)
	if err != nil {
		return zero, &wire.Error{Code: "SERIALIZATION_ERROR", Message: err.Error()}
	}
	out := fn(pack(payload))
	runtime.KeepAlive(payload)
	return decodeResult[Resp](take(out))
}

func invokeNullary[Resp any](fn func() uint64) (Resp, error) {
	return decodeResult[Resp](take(fn()))
}

func decodeResult[Resp any](data []byte) (Resp, error) {
	var res wire.Result[Resp]
	if err := json.Unmarshal(data, &res); err != nil {
		var zero Resp
		return zero, &wire.Error{Code: "DECODE_ERROR", Message: err.Error()}
	}
	return res.Unwrap()
}
