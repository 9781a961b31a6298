package symbol

import (
	"fmt"

	"github.com/symbol/symbol-sdk-go/pkg/shared"
)

type Network struct {
	Name       string
	Identifier byte
}

var (
	MainNet = Network{Name: shared.NetworkMainnet, Identifier: 0x68}
	TestNet = Network{Name: shared.NetworkTestnet, Identifier: 0x98}
)

// NetworkByName resolves a network from its (case-insensitive) name. An empty
// name resolves to testnet.
func NetworkByName(name string) (Network, error) {
	normalized, err := shared.NormalizeNetwork(name)
	if err != nil {
		return Network{}, fmt.Errorf("%w: %v", ErrUnknownNetwork, err)
	}
	if normalized == shared.NetworkMainnet {
		return MainNet, nil
	}
	return TestNet, nil
}

// NetworkByIdentifier resolves a network from its identifier byte.
func NetworkByIdentifier(identifier byte) (Network, error) {
	for _, network := range []Network{MainNet, TestNet} {
		if network.Identifier == identifier {
			return network, nil
		}
	}
	return Network{}, fmt.Errorf("%w: identifier 0x%02X", ErrUnknownNetwork, identifier)
}

func (n Network) String() string {
	return n.Name
}

// PublicKeyToAddress derives the address owned by publicKey on this network.
func (n Network) PublicKeyToAddress(publicKey PublicKey) Address {
	var address Address
	address[0] = n.Identifier
	copy(address[1:1+addressHashSize], publicKeyHash(publicKey))
	checksum := addressChecksum(address[:1+addressHashSize])
	copy(address[1+addressHashSize:], checksum)
	return address
}

// IsValidAddress reports whether address belongs to this network and carries
// a correct checksum.
func (n Network) IsValidAddress(address Address) bool {
	if address[0] != n.Identifier {
		return false
	}
	checksum := addressChecksum(address[:1+addressHashSize])
	for index, value := range checksum {
		if address[1+addressHashSize+index] != value {
			return false
		}
	}
	return true
}

// IsValidAddressString performs the requested operation.
func (n Network) IsValidAddressString(encoded string) bool {
	address, err := NewAddressFromString(encoded)
	if err != nil {
		return false
	}
	return n.IsValidAddress(address)
}
