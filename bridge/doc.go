// Package bridge runs untrusted WASM guest code against the Salesforce
// APIs without ever exposing credentials to it.
//
// A Bridge compiles a guest module once, registers one host function
// per Salesforce operation under the "env" import module, and invokes
// guest entry points on demand. Payloads cross the boundary as JSON
// buffers in guest linear memory, addressed by a packed u64
// (pointer<<32 | length); results use a tagged {"ok"...}/{"err"...}
// envelope so a guest can always tell success from failure.
//
// Which operations a guest may import is decided by which clients are
// present in its State: a guest compiled against sf_bulk_* imports
// fails at construction time when the State carries no bulk client.
// Error messages returned to guests are sanitized to a fixed code
// vocabulary and scrubbed of secrets.
package bridge
