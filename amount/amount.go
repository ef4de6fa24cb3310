// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package amount

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// DECIMALS is the number of fractional digits of the smallest base unit (lamport).
	DECIMALS = 9
)

var (
	// FEE_RESERVE is kept back from the balance when the maximum amount is requested.
	FEE_RESERVE = decimal.New(1, -2)

	inputPattern = regexp.MustCompile(`^\d*\.?\d{0,9}$`)
)

// Accept filters a single edit of the amount field. The edit is accepted only when
// it is a decimal with at most nine fractional digits, otherwise the previous value
// is kept. A lone decimal point is rewritten to "0.".
func Accept(prev string, raw string) string {
	if raw == "." {
		return "0."
	}

	if raw == "" || Valid(raw) {
		return raw
	}

	return prev
}

// Valid reports whether raw is a plain decimal with at most nine fractional digits.
// Signs, exponents and separators other than a single point are not valid.
func Valid(raw string) bool {
	return inputPattern.MatchString(raw)
}

// Normalize collapses leading zeros of the integer part and keeps the fractional
// part verbatim. Empty input stays empty.
func Normalize(raw string) string {
	if raw == "" {
		return raw
	}

	if !Valid(raw) || raw == "." {
		return raw
	}

	whole, fraction, hasPoint := strings.Cut(raw, ".")
	whole = strings.TrimLeft(whole, "0")
	if whole == "" {
		whole = "0"
	}

	if hasPoint {
		return fmt.Sprintf("%s.%s", whole, fraction)
	}
	return whole
}

// Parse returns the numeric value of the amount string. Empty input is zero.
func Parse(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	return d, nil
}

// ToBaseUnits converts a display amount into lamports, rounding to the nearest unit.
func ToBaseUnits(d decimal.Decimal) (uint64, error) {
	if d.IsNegative() {
		return 0, fmt.Errorf("amount %s is negative", d)
	}

	units := d.Shift(DECIMALS).Round(0).BigInt()
	if !units.IsUint64() {
		return 0, fmt.Errorf("amount %s overflows base units", d)
	}

	return units.Uint64(), nil
}

// FromBaseUnits converts lamports into the display amount.
func FromBaseUnits(units uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(units), -DECIMALS)
}

// Max returns the largest amount that can be restaked from the balance, leaving
// FEE_RESERVE for transaction fees.
func Max(balance decimal.Decimal) string {
	m := balance.Sub(FEE_RESERVE)
	if m.IsNegative() {
		m = decimal.Zero
	}

	return trimZeros(m.StringFixed(DECIMALS))
}

// Format renders a display amount with a fixed number of decimals.
func Format(d decimal.Decimal, places int32) string {
	return d.StringFixed(places)
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}

	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
