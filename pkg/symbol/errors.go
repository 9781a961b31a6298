package symbol

import "errors"

var (
	ErrInvalidAddressLength   = errors.New("invalid address length")
	ErrInvalidAddressEncoding = errors.New("invalid address encoding")
	ErrInvalidPublicKey       = errors.New("invalid public key")
	ErrUnknownNetwork         = errors.New("unknown network")
	ErrInvalidNamespaceName   = errors.New("invalid namespace name")
	ErrUnknownMosaicFlag      = errors.New("unknown mosaic flag")
	ErrUnknownSupplyAction    = errors.New("unknown mosaic supply change action")
	ErrUnknownTransactionType = errors.New("unknown transaction type")
	ErrInvalidAmount          = errors.New("invalid amount")
)
