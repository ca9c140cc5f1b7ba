// Package sfbridge runs untrusted WASM plugins against Salesforce without
// ever exposing org credentials to the plugin.
//
// # Overview
//
// A plugin imports Salesforce operations as host functions and exchanges
// JSON payloads with the host over a packed pointer/length ABI. The host
// authenticates every operation with credentials the guest never sees and
// sanitizes every error before it crosses the boundary.
//
// # Basic Usage
//
//	client, _ := salesforce.NewClient(instanceURL, accessToken)
//	b, _ := bridge.New(ctx, wasmBytes, bridge.NewState(client))
//	defer b.Close(ctx)
//
//	out, _ := b.Call(ctx, "run", []byte(`{"soql":"SELECT Id FROM Account"}`))
//	fmt.Println(string(out))
//
// # Writing Plugins
//
// Plugins built with GOOS=wasip1 use the [guest] package, which wraps every
// host function in a typed Go API:
//
//	res, err := guest.Query("SELECT Id, Name FROM Account")
//
// See the [bridge], [salesforce], [wire], and [guest] packages for detailed
// API documentation.
package sfbridge
