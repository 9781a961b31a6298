package facade

import (
	"fmt"

	"github.com/symbol/symbol-sdk-go/pkg/symbol"
)

type SymbolFacade struct {
	Network symbol.Network
}

// NewSymbolFacade creates a facade bound to the named network.
func NewSymbolFacade(network string) (*SymbolFacade, error) {
	resolved, err := symbol.NetworkByName(network)
	if err != nil {
		return nil, err
	}
	return &SymbolFacade{Network: resolved}, nil
}

// Address decodes an encoded address without binding it to a network.
func Address(encoded string) (symbol.Address, error) {
	return symbol.NewAddressFromString(encoded)
}

// Address decodes an encoded address and requires it to be valid on the
// facade network.
func (f *SymbolFacade) Address(encoded string) (symbol.Address, error) {
	address, err := symbol.NewAddressFromString(encoded)
	if err != nil {
		return symbol.Address{}, err
	}
	if !f.Network.IsValidAddress(address) {
		return symbol.Address{}, fmt.Errorf("address %s is not valid on %s", address, f.Network)
	}
	return address, nil
}

// PublicKeyToAddress performs the requested operation.
func (f *SymbolFacade) PublicKeyToAddress(publicKey symbol.PublicKey) symbol.Address {
	return f.Network.PublicKeyToAddress(publicKey)
}

// GenerateMosaicID performs the requested operation.
func (f *SymbolFacade) GenerateMosaicID(owner symbol.Address, nonce uint32) symbol.MosaicID {
	return symbol.GenerateMosaicID(owner, nonce)
}
