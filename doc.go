// The Symbol SDK for Go provides the primitives needed to describe Symbol
// ledger transactions from Go: network and address handling, deterministic
// mosaic and namespace identifier derivation, and transaction descriptors
// used by documentation tooling.
//
// # Packages
//
//   - pkg/symbol: networks, addresses, identifiers, mosaic flags and amounts
//   - pkg/facade: network-bound entry point mirroring the SDK facade
//   - pkg/descriptors: mosaic definition and supply change descriptors
//   - pkg/shared: network normalization and environment configuration
//
// # Installation
//
//	go get github.com/symbol/symbol-sdk-go@latest
package symbol_sdk_go
