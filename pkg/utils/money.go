package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MinorUnits converts a decimal amount to integer minor units for the
// payment processor (12.34 -> 1234). Rounded half-up to absorb any drift
// from upstream arithmetic.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// ParsePrice parses a client-supplied price string into a non-negative
// two-decimal amount.
func ParsePrice(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrInvalidPrice
	}
	if d.IsNegative() {
		return decimal.Zero, ErrInvalidPrice
	}
	return d.Round(2), nil
}

// FormatFileSize renders a byte count the way the catalog stores it,
// e.g. "12.34 MB".
func FormatFileSize(sizeBytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(sizeBytes)/(1024*1024))
}
