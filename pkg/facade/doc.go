// Package facade exposes the network-bound entry point used by examples and
// documentation tooling to build Symbol addresses and identifiers without
// touching the lower level symbol package directly.
package facade
