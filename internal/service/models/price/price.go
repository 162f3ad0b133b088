package price

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is a price in minor currency units. Valid prices fit in 16 unsigned
// bits (0–65535 cents); Parse enforces the range, storage does not.
type Cents int64

const MaxCents Cents = math.MaxUint16

var (
	ErrNotANumber      = errors.New("price is not a number")
	ErrInvalidFraction = errors.New("invalid price fraction")
	ErrTooLarge        = errors.New("price too large")
)

// Parse converts a human-entered decimal price string to cents. It accepts a
// bare integer ("3") or a decimal with exactly one or two fractional digits
// ("3.5", "3.50"). No locale handling, currency symbols or negative prices.
func Parse(s string) (Cents, error) {
	whole, fraction, found := strings.Cut(s, ".")

	w, err := strconv.ParseUint(whole, 10, 16)
	if err != nil {
		return 0, ErrNotANumber
	}

	if !found {
		return checkRange(w * 100)
	}

	var scale uint64
	switch len(fraction) {
	case 1:
		scale = 10
	case 2:
		scale = 1
	default:
		return 0, ErrInvalidFraction
	}

	f, err := strconv.ParseUint(fraction, 10, 16)
	if err != nil {
		return 0, ErrNotANumber
	}

	return checkRange(w*100 + f*scale)
}

// checkRange guards the whole×100+fraction computation. Inputs are bounded
// by the 16-bit parses above, so the uint64 arithmetic itself cannot wrap.
func checkRange(v uint64) (Cents, error) {
	if v > uint64(MaxCents) {
		return 0, ErrTooLarge
	}
	return Cents(v), nil
}

// String renders cents as a decimal string with exactly two fractional
// digits, e.g. 350 -> "3.50". Used for CSV rows and template display.
func (c Cents) String() string {
	return decimal.New(int64(c), -2).StringFixed(2)
}
