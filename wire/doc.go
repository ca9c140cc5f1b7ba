// Package wire defines the types that cross the WASM boundary between
// the bridge host and guest plugins.
//
// Every host function accepts one of these request records (or none) and
// returns a [Result] wrapping one of these response records, serialized
// as JSON in both directions. The records are deliberately plain data:
// no live resources, no I/O, and field sets that are narrower than the
// salesforce package's own types, so that the guest-facing contract can
// stay stable while the client schema evolves.
//
// The package also declares the canonical host function names (see
// names.go). Both the bridge host and the guest SDK use these constants,
// which is what keeps the two sides of the ABI in agreement.
package wire
