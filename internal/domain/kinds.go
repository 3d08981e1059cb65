package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type GeneratorID string

type UpgradeID string

// Mode decides how a generator produces.
type Mode string

const (
	// ModeManual generators only produce on an explicit click.
	ModeManual Mode = "manual"
	// ModePassive generators accrue on every tick.
	ModePassive Mode = "passive"
)

func (m Mode) Valid() bool {
	return m == ModeManual || m == ModePassive
}

// Curve selects the geometric growth rate applied to repeated purchases.
type Curve string

const (
	CurveAdditive       Curve = "additive"
	CurveMultiplicative Curve = "multiplicative"
	CurveExponential    Curve = "exponential"
)

var growthRates = map[Curve]decimal.Decimal{
	CurveAdditive:       decimal.RequireFromString("1.05"),
	CurveMultiplicative: decimal.RequireFromString("1.9"),
	CurveExponential:    decimal.RequireFromString("1.14"),
}

// Growth returns the per-purchase cost ratio of the curve.
func (c Curve) Growth() (decimal.Decimal, error) {
	g, ok := growthRates[c]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownCurve, c)
	}
	return g, nil
}

func (c Curve) Valid() bool {
	_, ok := growthRates[c]
	return ok
}

// CostAt returns base * growth(c)^n. Multiplication is exact, so
// CostAt(base, c, n+1) == CostAt(base, c, n) * growth(c).
func CostAt(base decimal.Decimal, c Curve, n uint64) (decimal.Decimal, error) {
	g, err := c.Growth()
	if err != nil {
		return decimal.Zero, err
	}
	return base.Mul(powUint(g, n)), nil
}

func powUint(x decimal.Decimal, n uint64) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(x)
		}
		n >>= 1
		if n > 0 {
			x = x.Mul(x)
		}
	}
	return result
}

// ModifierKind is how an upgrade changes its target's production rate.
type ModifierKind string

const (
	ModifierAdditive       ModifierKind = "additive"
	ModifierMultiplicative ModifierKind = "multiplicative"
)

// Effect is a production modifier carried by an upgrade.
type Effect struct {
	Kind  ModifierKind
	Value decimal.Decimal
}

func (e Effect) Validate() error {
	if e.Kind != ModifierAdditive && e.Kind != ModifierMultiplicative {
		return fmt.Errorf("%w: kind %q", ErrInvalidEffect, e.Kind)
	}
	if e.Value.IsNegative() {
		return fmt.Errorf("%w: negative value %s", ErrInvalidEffect, e.Value)
	}
	return nil
}

// Apply returns rate modified by the effect.
func (e Effect) Apply(rate decimal.Decimal) (decimal.Decimal, error) {
	if err := e.Validate(); err != nil {
		return rate, err
	}
	if e.Kind == ModifierMultiplicative {
		return rate.Mul(e.Value), nil
	}
	return rate.Add(e.Value), nil
}
