package descriptors

import (
	"github.com/shopspring/decimal"
	"github.com/symbol/symbol-sdk-go/pkg/shared"
	"github.com/symbol/symbol-sdk-go/pkg/symbol"
)

const (
	SampleAddress = shared.DefaultSampleAddress
	SampleNonce   = shared.DefaultMosaicNonce
)

type Descriptor interface {
	TransactionType() symbol.TransactionType
	Fields() map[string]any
}

type MosaicDefinitionDescriptor struct {
	Type         symbol.TransactionType `json:"type"`
	Duration     uint64                 `json:"duration"`
	Nonce        uint32                 `json:"nonce"`
	Flags        string                 `json:"flags"`
	Divisibility uint8                  `json:"divisibility"`
}

func (d MosaicDefinitionDescriptor) TransactionType() symbol.TransactionType {
	return d.Type
}

func (d MosaicDefinitionDescriptor) Fields() map[string]any {
	return map[string]any{
		"type":         d.Type,
		"duration":     d.Duration,
		"nonce":        d.Nonce,
		"flags":        d.Flags,
		"divisibility": d.Divisibility,
	}
}

type MosaicSupplyChangeDescriptor struct {
	Type     symbol.TransactionType `json:"type"`
	MosaicID symbol.MosaicID        `json:"mosaic_id"`
	Delta    uint64                 `json:"delta"`
	Action   string                 `json:"action"`
}

func (d MosaicSupplyChangeDescriptor) TransactionType() symbol.TransactionType {
	return d.Type
}

func (d MosaicSupplyChangeDescriptor) Fields() map[string]any {
	return map[string]any{
		"type":      d.Type,
		"mosaic_id": d.MosaicID,
		"delta":     d.Delta,
		"action":    d.Action,
	}
}

type MosaicDescriptorOptions struct {
	Address      string
	Nonce        uint32
	Duration     uint64
	Flags        string
	Divisibility uint8
	Quantity     decimal.Decimal
	Action       string
}

// DefaultMosaicDescriptorOptions returns the values of the canonical example.
func DefaultMosaicDescriptorOptions() MosaicDescriptorOptions {
	return MosaicDescriptorOptions{
		Address:      SampleAddress,
		Nonce:        SampleNonce,
		Duration:     1,
		Flags:        "transferable restrictable",
		Divisibility: 2,
		Quantity:     decimal.NewFromInt(1000),
		Action:       "increase",
	}
}
