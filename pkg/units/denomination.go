package units

import (
	"fmt"
	"math/big"
	"strings"
)

// Named decimal scales. Ether is the chain base unit (VET/VTHO use it too).
const (
	Wei     = 0
	Kwei    = 3
	Mwei    = 6
	Gwei    = 9
	Szabo   = 12
	Finney  = 15
	Ether   = 18
	Satoshi = 8
)

var denominations = map[string]int{
	"wei":     Wei,
	"kwei":    Kwei,
	"mwei":    Mwei,
	"gwei":    Gwei,
	"szabo":   Szabo,
	"finney":  Finney,
	"ether":   Ether,
	"satoshi": Satoshi,
}

// ParseDenomination returns the scale for a named denomination.
func ParseDenomination(name string) (int, error) {
	scale, ok := denominations[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDenomination, name)
	}
	return scale, nil
}

// Parse expands value using a named denomination.
func Parse(value, denomination string) (*big.Int, error) {
	scale, err := ParseDenomination(denomination)
	if err != nil {
		return nil, err
	}
	return Expand(value, scale)
}

// FormatAs formats value using a named denomination.
func FormatAs(value *big.Int, denomination string) (string, error) {
	scale, err := ParseDenomination(denomination)
	if err != nil {
		return "", err
	}
	return Format(value, scale), nil
}
