package descriptors

import (
	"github.com/symbol/symbol-sdk-go/pkg/facade"
	"github.com/symbol/symbol-sdk-go/pkg/symbol"
)

// DescriptorFactory returns the mosaic definition and mosaic supply change
// descriptors of the canonical example, in that order.
func DescriptorFactory() ([]Descriptor, error) {
	return MosaicDescriptors(DefaultMosaicDescriptorOptions())
}

// MosaicDescriptors returns a definition descriptor and a supply change
// descriptor for the mosaic owned by options.Address with options.Nonce.
// Errors from address decoding and amount scaling are returned unchanged.
func MosaicDescriptors(options MosaicDescriptorOptions) ([]Descriptor, error) {
	owner, err := facade.Address(options.Address)
	if err != nil {
		return nil, err
	}

	delta, err := symbol.ToAtomicAmount(options.Quantity, options.Divisibility)
	if err != nil {
		return nil, err
	}

	return []Descriptor{
		MosaicDefinitionDescriptor{
			Type:         symbol.TransactionTypeMosaicDefinition,
			Duration:     options.Duration,
			Nonce:        options.Nonce,
			Flags:        options.Flags,
			Divisibility: options.Divisibility,
		},
		MosaicSupplyChangeDescriptor{
			Type:     symbol.TransactionTypeMosaicSupplyChange,
			MosaicID: symbol.GenerateMosaicID(owner, options.Nonce),
			Delta:    delta,
			Action:   options.Action,
		},
	}, nil
}
