package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrFractionOutOfRange = errors.New("fraction must be between 0 and 1")
	ErrPercentOutOfRange  = errors.New("percentage must be between 0 and 100")
)

var oneHundred = decimal.NewFromInt(100)

// Fraction is a percentage stored on the 0-1 scale. The API surface speaks
// 0-100; conversion happens exactly once, at the DTO boundary, through
// FractionFromPercent and Percent. Persisting the type (rather than a bare
// decimal) keeps a double conversion from type-checking.
type Fraction struct {
	decimal.Decimal
}

// NewFraction wraps a 0-1 scaled decimal.
func NewFraction(d decimal.Decimal) Fraction {
	return Fraction{Decimal: d}
}

// FractionFromPercent converts an API-scale percentage (0-100) to the
// internal 0-1 representation.
func FractionFromPercent(percent decimal.Decimal) (Fraction, error) {
	if percent.LessThan(decimal.Zero) || percent.GreaterThan(oneHundred) {
		return Fraction{}, ErrPercentOutOfRange
	}
	return Fraction{Decimal: percent.Div(oneHundred)}, nil
}

// Percent converts back to the API-scale 0-100 representation.
func (f Fraction) Percent() decimal.Decimal {
	return f.Decimal.Mul(oneHundred)
}

// Of applies the fraction to a total, e.g. target value = fraction of the
// period's grand total.
func (f Fraction) Of(total decimal.Decimal) decimal.Decimal {
	return f.Decimal.Mul(total)
}

// Validate checks the internal-scale range invariant.
func (f Fraction) Validate() error {
	if f.Decimal.LessThan(decimal.Zero) || f.Decimal.GreaterThan(decimal.NewFromInt(1)) {
		return ErrFractionOutOfRange
	}
	return nil
}
