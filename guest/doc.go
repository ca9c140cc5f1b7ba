//go:build wasip1

// Package guest is the plugin-side SDK. It mirrors every host function
// the bridge registers as a typed Go function, hiding the packed
// pointer ABI and the JSON result envelope. Plugins built with this
// package compile with GOOS=wasip1 GOARCH=wasm and run inside a bridge.
//
// The package exports the sf_alloc allocator the host uses to place
// buffers in guest memory. Entry points receive their request through
// Payload and hand their response back through Return:
//
//	//go:wasmexport run
//	func run(packed uint64) uint64 {
//		var req MyRequest
//		json.Unmarshal(guest.Payload(packed), &req)
//		resp, err := guest.Query("SELECT Id FROM Account")
//		...
//		return guest.Return(out)
//	}
package guest
