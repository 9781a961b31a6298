package symbol

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/sha3"
)

const namespaceFlag = uint64(1) << 63

type MosaicID uint64

type NamespaceID uint64

// GenerateMosaicID derives the mosaic identifier owned by owner for nonce.
// The same owner and nonce always produce the same identifier.
func GenerateMosaicID(owner Address, nonce uint32) MosaicID {
	var nonceBytes [4]byte
	binary.LittleEndian.PutUint32(nonceBytes[:], nonce)

	hasher := sha3.New256()
	hasher.Write(nonceBytes[:])
	hasher.Write(owner[:])
	digest := hasher.Sum(nil)

	return MosaicID(binary.LittleEndian.Uint64(digest[:8]) &^ namespaceFlag)
}

// GenerateNamespaceID derives the identifier of name under parent. Root
// namespaces use a zero parent.
func GenerateNamespaceID(name string, parent NamespaceID) NamespaceID {
	var parentBytes [8]byte
	binary.LittleEndian.PutUint64(parentBytes[:], uint64(parent))

	hasher := sha3.New256()
	hasher.Write(parentBytes[:])
	hasher.Write([]byte(name))
	digest := hasher.Sum(nil)

	return NamespaceID(binary.LittleEndian.Uint64(digest[:8]) | namespaceFlag)
}

// IsValidNamespaceName reports whether name is a single valid namespace part:
// lowercase alphanumerics, '_' and '-', starting with an alphanumeric.
func IsValidNamespaceName(name string) bool {
	if name == "" || !isAlphanumeric(name[0]) {
		return false
	}
	for index := 0; index < len(name); index++ {
		character := name[index]
		if !isAlphanumeric(character) && character != '_' && character != '-' {
			return false
		}
	}
	return true
}

// GenerateNamespacePath returns the identifiers of every level of a fully
// qualified namespace name such as "symbol.xym", root first.
func GenerateNamespacePath(fullyQualifiedName string) ([]NamespaceID, error) {
	parts := strings.Split(fullyQualifiedName, ".")
	path := make([]NamespaceID, 0, len(parts))

	parent := NamespaceID(0)
	for _, part := range parts {
		if !IsValidNamespaceName(part) {
			return nil, fmt.Errorf("%w: invalid part name %q", ErrInvalidNamespaceName, part)
		}
		parent = GenerateNamespaceID(part, parent)
		path = append(path, parent)
	}

	return path, nil
}

// GenerateMosaicAliasID returns the namespace identifier a mosaic alias such
// as "symbol.xym" resolves through.
func GenerateMosaicAliasID(fullyQualifiedName string) (NamespaceID, error) {
	path, err := GenerateNamespacePath(fullyQualifiedName)
	if err != nil {
		return 0, err
	}
	return path[len(path)-1], nil
}

func (id MosaicID) String() string {
	return formatID(uint64(id))
}

func (id MosaicID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *MosaicID) UnmarshalText(text []byte) error {
	value, err := parseID(string(text))
	if err != nil {
		return fmt.Errorf("invalid mosaic id: %w", err)
	}
	*id = MosaicID(value)
	return nil
}

func (id NamespaceID) String() string {
	return formatID(uint64(id))
}

func (id NamespaceID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *NamespaceID) UnmarshalText(text []byte) error {
	value, err := parseID(string(text))
	if err != nil {
		return fmt.Errorf("invalid namespace id: %w", err)
	}
	*id = NamespaceID(value)
	return nil
}

func formatID(value uint64) string {
	return fmt.Sprintf("%016X", value)
}

func parseID(raw string) (uint64, error) {
	candidate := strings.TrimSpace(raw)
	candidate = strings.TrimPrefix(strings.TrimPrefix(candidate, "0x"), "0X")
	return strconv.ParseUint(candidate, 16, 64)
}

func isAlphanumeric(character byte) bool {
	return (character >= 'a' && character <= 'z') || (character >= '0' && character <= '9')
}
