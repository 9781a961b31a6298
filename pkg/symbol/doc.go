// Package symbol implements the Symbol ledger primitives needed to describe
// mosaic transactions: networks, addresses, public keys, deterministic mosaic
// and namespace identifier derivation, mosaic flags, supply change actions and
// amount scaling.
//
// # Addresses
//
// A Symbol address is 24 bytes: the network identifier byte, the RIPEMD-160
// digest of the SHA3-256 digest of the account public key, and a three byte
// checksum taken from the SHA3-256 digest of the preceding 21 bytes. Its
// textual form is 39 characters of unpadded RFC 4648 base32.
//
// # Identifiers
//
// Mosaic identifiers are derived from an owner address and a 32-bit nonce and
// always have the high bit cleared. Namespace identifiers are derived from a
// name and the parent namespace identifier and always have the high bit set,
// so the two id spaces never overlap.
package symbol
