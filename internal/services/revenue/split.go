// Package revenue implements the network revenue split.
//
// The network runs a fixed 50/50 policy: affiliates are shown and paid half
// of the true gross revenue. The affiliate share is computed by
// multiplication and the network share by subtraction, so the two shares
// always sum exactly to the gross amount.
package revenue

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned for a negative gross amount.
var ErrInvalidAmount = errors.New("invalid revenue amount")

var half = decimal.NewFromFloat(0.5)

// Split divides gross revenue into the network share and the affiliate
// share. Values are kept at full precision; rounding happens only at
// presentation time via Round2.
func Split(gross decimal.Decimal) (network, affiliate decimal.Decimal, err error) {
	if gross.IsNegative() {
		return decimal.Zero, decimal.Zero, ErrInvalidAmount
	}
	affiliate = gross.Mul(half)
	network = gross.Sub(affiliate)
	return network, affiliate, nil
}

// Round2 rounds a money value to two decimal places for presentation.
// Accumulated balances stay unrounded in the store so rounding error never
// compounds across conversions.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
