// Package descriptors produces transaction descriptors: plain records naming
// the intended fields of a Symbol transaction before it is built and signed.
//
// DescriptorFactory returns the canonical mosaic example pair: a mosaic
// definition followed by a supply change that mints 1000 whole units of the
// mosaic it defines. The mosaic identifier in the second descriptor is derived
// from the sample owner address and the nonce carried by the first.
//
// Descriptors render to JSON with exactly the keys listed by Fields, which lets
// documentation tooling filter them with jq expressions through Query.
package descriptors
