// Package shared provides common utilities used across the Symbol SDK for Go
// examples. It includes network name normalization and configuration loading
// from environment variables or .env files.
//
// # Environment Variables
//
//   - SYMBOL_NETWORK (or NETWORK): mainnet or testnet, defaults to testnet
//   - SYMBOL_SAMPLE_ADDRESS: owner address used for mosaic id derivation
//   - SYMBOL_MOSAIC_NONCE: nonce used for mosaic id derivation, defaults to 123
//   - SYMBOL_ENV_FILE: explicit .env path, or "none" to skip .env loading
//
// This package is typically used internally by other SDK packages but is
// also available for direct use when building custom tooling.
package shared
