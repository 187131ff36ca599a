package amounts

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/shopspring/decimal"
)

// randomName is the name of the only function in the language.
const randomName = "random"

// randInt draws uniformly from the integers in [lo, hi]. lo must not exceed
// hi.
func randInt(r io.Reader, lo, hi *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, big.NewInt(1))
	n, err := rand.Int(r, span)
	if err != nil {
		return nil, fmt.Errorf("amounts: drawing random value: %w", err)
	}
	return n.Add(n, lo), nil
}

// randDecimal draws uniformly from [lo, hi] at the finer scale of the two
// bounds, so random(1, 1.5) draws tenths and random(1, 3) draws integers.
func randDecimal(r io.Reader, lo, hi decimal.Decimal) (decimal.Decimal, error) {
	scale := int32(0)
	if s := -lo.Exponent(); s > scale {
		scale = s
	}
	if s := -hi.Exponent(); s > scale {
		scale = s
	}
	n, err := randInt(r, lo.Shift(scale).BigInt(), hi.Shift(scale).BigInt())
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromBigInt(n, -scale), nil
}
