package facade

import (
	"testing"

	"github.com/symbol/symbol-sdk-go/pkg/symbol"
)

const testPublicKey = "3B6A27BCCEB6A42D62A3A8D02A6F0D73653215771DE243A63AC048A18B59DA29"

func TestNewSymbolFacade(t *testing.T) {
	facade, err := NewSymbolFacade("mainnet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if facade.Network != symbol.MainNet {
		t.Fatalf("expected mainnet, got %s", facade.Network)
	}

	facade, err = NewSymbolFacade("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if facade.Network != symbol.TestNet {
		t.Fatalf("expected testnet default, got %s", facade.Network)
	}

	if _, err := NewSymbolFacade("invalid"); err == nil {
		t.Fatal("expected error for unsupported network")
	}
}

func TestAddressIsNetworkIndependent(t *testing.T) {
	address, err := Address("TASYMBOLLK6FSL7GSEMQEAWN7VW55ZSZU2Q2Q5Y")
	if err != nil {
		t.Fatalf("Address failed: %v", err)
	}
	if address.String() != "TASYMBOLLK6FSL7GSEMQEAWN7VW55ZSZU2Q2Q5Y" {
		t.Fatalf("unexpected address: %s", address)
	}

	if _, err := Address("TASYMBOL"); err == nil {
		t.Fatal("expected malformed address to fail")
	}
}

func TestFacadeAddressRequiresNetworkMatch(t *testing.T) {
	publicKey, err := symbol.PublicKeyFromHex(testPublicKey)
	if err != nil {
		t.Fatalf("PublicKeyFromHex failed: %v", err)
	}

	testnet, _ := NewSymbolFacade("testnet")
	mainnet, _ := NewSymbolFacade("mainnet")
	encoded := testnet.PublicKeyToAddress(publicKey).String()

	address, err := testnet.Address(encoded)
	if err != nil {
		t.Fatalf("expected testnet address to be accepted: %v", err)
	}
	if address.String() != encoded {
		t.Fatalf("unexpected address: %s", address)
	}

	if _, err := mainnet.Address(encoded); err == nil {
		t.Fatal("expected testnet address to be rejected by mainnet facade")
	}
	if _, err := testnet.Address("bad"); err == nil {
		t.Fatal("expected malformed address to fail")
	}
}

func TestFacadeGenerateMosaicID(t *testing.T) {
	facade, _ := NewSymbolFacade("testnet")
	owner, _ := Address("TASYMBOLLK6FSL7GSEMQEAWN7VW55ZSZU2Q2Q5Y")

	if facade.GenerateMosaicID(owner, 123) != symbol.GenerateMosaicID(owner, 123) {
		t.Fatal("expected facade to delegate mosaic id derivation")
	}
}
