package symbol

import (
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

const (
	AddressSize        = 24
	AddressEncodedSize = 39
	PublicKeySize      = 32

	addressHashSize     = 20
	addressChecksumSize = 3
)

type Address [AddressSize]byte

type PublicKey [PublicKeySize]byte

// NewAddressFromString decodes the 39 character base32 form of an address.
// The checksum is not verified; use Network.IsValidAddress for that.
func NewAddressFromString(encoded string) (Address, error) {
	candidate := strings.ToUpper(strings.TrimSpace(encoded))
	if len(candidate) != AddressEncodedSize {
		return Address{}, fmt.Errorf(
			"%w: expected %d characters, got %d",
			ErrInvalidAddressLength,
			AddressEncodedSize,
			len(candidate),
		)
	}

	// 24 bytes do not fill a whole base32 block, so pad with a zero character
	// and drop the resulting trailing byte. Non-zero padding bits in the last
	// character are discarded rather than rejected, so String may not return
	// the input for such strings.
	decoded, err := base32.StdEncoding.DecodeString(candidate + "A")
	if err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrInvalidAddressEncoding, err)
	}

	var address Address
	copy(address[:], decoded[:AddressSize])
	return address, nil
}

// NewAddressFromBytes performs the requested operation.
func NewAddressFromBytes(raw []byte) (Address, error) {
	if len(raw) != AddressSize {
		return Address{}, fmt.Errorf(
			"%w: expected %d bytes, got %d",
			ErrInvalidAddressLength,
			AddressSize,
			len(raw),
		)
	}
	var address Address
	copy(address[:], raw)
	return address, nil
}

func (a Address) String() string {
	padded := make([]byte, AddressSize+1)
	copy(padded, a[:])
	return base32.StdEncoding.EncodeToString(padded)[:AddressEncodedSize]
}

func (a Address) Bytes() []byte {
	out := make([]byte, AddressSize)
	copy(out, a[:])
	return out
}

// Network returns the network named by the address identifier byte.
func (a Address) Network() (Network, error) {
	return NetworkByIdentifier(a[0])
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := NewAddressFromString(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// PublicKeyFromHex parses a 64 character hex encoded public key.
func PublicKeyFromHex(raw string) (PublicKey, error) {
	candidate := strings.TrimPrefix(strings.TrimSpace(raw), "0x")
	decoded, err := hex.DecodeString(candidate)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	if len(decoded) != PublicKeySize {
		return PublicKey{}, fmt.Errorf(
			"%w: expected %d bytes, got %d",
			ErrInvalidPublicKey,
			PublicKeySize,
			len(decoded),
		)
	}
	var publicKey PublicKey
	copy(publicKey[:], decoded)
	return publicKey, nil
}

func (p PublicKey) String() string {
	return strings.ToUpper(hex.EncodeToString(p[:]))
}

func publicKeyHash(publicKey PublicKey) []byte {
	partHash := sha3.Sum256(publicKey[:])
	hasher := ripemd160.New()
	hasher.Write(partHash[:])
	return hasher.Sum(nil)
}

func addressChecksum(prefix []byte) []byte {
	digest := sha3.Sum256(prefix)
	return digest[:addressChecksumSize]
}
