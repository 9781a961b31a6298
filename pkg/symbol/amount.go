package symbol

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

const MaxDivisibility = 6

// ToAtomicAmount scales a human readable quantity to raw mosaic units, so 1000
// units of a mosaic with divisibility 2 become 100000.
func ToAtomicAmount(quantity decimal.Decimal, divisibility uint8) (uint64, error) {
	if divisibility > MaxDivisibility {
		return 0, fmt.Errorf("%w: divisibility %d exceeds %d", ErrInvalidAmount, divisibility, MaxDivisibility)
	}
	if quantity.IsNegative() {
		return 0, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, quantity.String())
	}

	scaled := quantity.Shift(int32(divisibility))
	if !scaled.IsInteger() {
		return 0, fmt.Errorf(
			"%w: %s has more than %d decimal places",
			ErrInvalidAmount,
			quantity.String(),
			divisibility,
		)
	}

	raw := scaled.BigInt()
	if !raw.IsUint64() {
		return 0, fmt.Errorf("%w: %s overflows uint64", ErrInvalidAmount, scaled.String())
	}
	return raw.Uint64(), nil
}

// FromAtomicAmount is the inverse of ToAtomicAmount.
func FromAtomicAmount(raw uint64, divisibility uint8) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(raw), -int32(divisibility))
}
