package symbol

import (
	"fmt"
	"strings"
)

type TransactionType uint16

const (
	TransactionTypeMosaicDefinition   TransactionType = 0x414D
	TransactionTypeMosaicSupplyChange TransactionType = 0x424D
)

var transactionTypeNames = map[TransactionType]string{
	TransactionTypeMosaicDefinition:   "mosaic_definition",
	TransactionTypeMosaicSupplyChange: "mosaic_supply_change",
}

// ParseTransactionType performs the requested operation.
func ParseTransactionType(name string) (TransactionType, error) {
	candidate := strings.ToLower(strings.TrimSpace(name))
	for transactionType, typeName := range transactionTypeNames {
		if typeName == candidate {
			return transactionType, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTransactionType, name)
}

func (t TransactionType) String() string {
	if name, ok := transactionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("0x%04X", uint16(t))
}

func (t TransactionType) MarshalText() ([]byte, error) {
	if _, ok := transactionTypeNames[t]; !ok {
		return nil, fmt.Errorf("%w: 0x%04X", ErrUnknownTransactionType, uint16(t))
	}
	return []byte(t.String()), nil
}

func (t *TransactionType) UnmarshalText(text []byte) error {
	parsed, err := ParseTransactionType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

type MosaicFlags uint8

const (
	MosaicFlagsNone          MosaicFlags = 0
	MosaicFlagsSupplyMutable MosaicFlags = 1
	MosaicFlagsTransferable  MosaicFlags = 2
	MosaicFlagsRestrictable  MosaicFlags = 4
	MosaicFlagsRevokable     MosaicFlags = 8
)

// Ordered by bit so String output is stable.
var mosaicFlagNames = []struct {
	flag MosaicFlags
	name string
}{
	{MosaicFlagsSupplyMutable, "supply_mutable"},
	{MosaicFlagsTransferable, "transferable"},
	{MosaicFlagsRestrictable, "restrictable"},
	{MosaicFlagsRevokable, "revokable"},
}

// ParseMosaicFlags parses a space separated flag list such as
// "transferable restrictable". An empty list or "none" yields no flags.
func ParseMosaicFlags(raw string) (MosaicFlags, error) {
	flags := MosaicFlagsNone
	for _, token := range strings.Fields(strings.ToLower(raw)) {
		if token == "none" {
			continue
		}
		matched := false
		for _, entry := range mosaicFlagNames {
			if entry.name == token {
				flags |= entry.flag
				matched = true
				break
			}
		}
		if !matched {
			return 0, fmt.Errorf("%w: %q", ErrUnknownMosaicFlag, token)
		}
	}
	return flags, nil
}

func (f MosaicFlags) Has(flag MosaicFlags) bool {
	return f&flag == flag
}

func (f MosaicFlags) String() string {
	if f == MosaicFlagsNone {
		return "none"
	}
	names := make([]string, 0, len(mosaicFlagNames))
	for _, entry := range mosaicFlagNames {
		if f.Has(entry.flag) {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, " ")
}

type MosaicSupplyChangeAction uint8

const (
	MosaicSupplyChangeActionDecrease MosaicSupplyChangeAction = 0
	MosaicSupplyChangeActionIncrease MosaicSupplyChangeAction = 1
)

// ParseMosaicSupplyChangeAction performs the requested operation.
func ParseMosaicSupplyChangeAction(raw string) (MosaicSupplyChangeAction, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "decrease":
		return MosaicSupplyChangeActionDecrease, nil
	case "increase":
		return MosaicSupplyChangeActionIncrease, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSupplyAction, raw)
	}
}

func (a MosaicSupplyChangeAction) String() string {
	switch a {
	case MosaicSupplyChangeActionDecrease:
		return "decrease"
	case MosaicSupplyChangeActionIncrease:
		return "increase"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(a))
	}
}

func (a MosaicSupplyChangeAction) MarshalText() ([]byte, error) {
	if a > MosaicSupplyChangeActionIncrease {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSupplyAction, uint8(a))
	}
	return []byte(a.String()), nil
}

func (a *MosaicSupplyChangeAction) UnmarshalText(text []byte) error {
	parsed, err := ParseMosaicSupplyChangeAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
