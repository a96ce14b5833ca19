package units

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxScale is the widest scale accepted, the digit count of a uint256.
const MaxScale = 77

var ErrFormat error = errors.New("invalid decimal string")
var ErrScale error = errors.New("invalid decimal scale")
var ErrUnknownDenomination error = errors.New("unknown denomination")

var decimalPattern = regexp.MustCompile(`^(-)?([0-9]*)(?:\.([0-9]*))?$`)

// FormatError reports a human amount that does not match [-]?(\d+)?(\.\d*)?.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %q", ErrFormat.Error(), e.Input)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// Expand converts a human decimal string into an integer scaled by 10^scale.
// Fractional digits beyond scale are dropped, never rounded.
func Expand(value string, scale int) (*big.Int, error) {
	if scale < 0 || scale > MaxScale {
		return nil, fmt.Errorf("%w: %d", ErrScale, scale)
	}

	m := decimalPattern.FindStringSubmatch(value)
	if m == nil || value == "" || value == "-" {
		return nil, &FormatError{Input: value}
	}

	negative, whole, fraction := m[1] == "-", m[2], m[3]
	if whole == "" {
		whole = "0"
	}

	if len(fraction) > scale {
		fraction = fraction[:scale]
	}
	fraction += strings.Repeat("0", scale-len(fraction))

	result, ok := new(big.Int).SetString(whole+fraction, 10)
	if !ok {
		return nil, &FormatError{Input: value}
	}

	if negative {
		result.Neg(result)
	}

	return result, nil
}

// ExpandTo18Decimals is Expand at the base unit scale.
func ExpandTo18Decimals(value string) (*big.Int, error) {
	return Expand(value, Ether)
}

// MustExpand is like Expand but panics on malformed input. Meant for constants.
func MustExpand(value string, scale int) *big.Int {
	v, err := Expand(value, scale)
	if err != nil {
		panic(err)
	}
	return v
}

// Format divides value by 10^scale without losing precision. Integral results
// keep a single trailing ".0" and fractions are never zero padded.
func Format(value *big.Int, scale int) string {
	s := toDecimal(value, scale).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatUnits divides value by 10^scale and truncates the result toward zero
// to the given number of decimal places. A negative places keeps every digit.
func FormatUnits(value *big.Int, scale int, places int) string {
	d := toDecimal(value, scale)
	if places >= 0 {
		d = d.Truncate(int32(clampScale(places)))
	}
	return d.String()
}

func toDecimal(value *big.Int, scale int) decimal.Decimal {
	if value == nil {
		value = new(big.Int)
	}
	return decimal.NewFromBigInt(value, -int32(clampScale(scale)))
}

// clampScale bounds scale to [0, MaxScale].
func clampScale(scale int) int {
	switch {
	case scale < 0:
		return 0
	case scale > MaxScale:
		return MaxScale
	}
	return scale
}
