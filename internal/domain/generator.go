package domain

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Generator is a production unit owned by the economy.
type Generator struct {
	ID       GeneratorID
	Name     string
	Mode     Mode
	Quantity uint64
	Rate     decimal.Decimal

	// Curve must be a known curve; RecomputeCost panics otherwise.
	Curve       Curve
	BaseCost    decimal.Decimal
	CurrentCost decimal.Decimal
	// Purchased counts bought units; starting quantity is free.
	Purchased uint64
}

// NewGenerator builds a generator with its first purchase priced at baseCost.
func NewGenerator(id GeneratorID, name string, mode Mode, quantity uint64, rate decimal.Decimal, curve Curve, baseCost decimal.Decimal) (*Generator, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("generator %s: unknown mode %q", id, mode)
	}
	if rate.IsNegative() {
		return nil, fmt.Errorf("generator %s: rate: %w", id, ErrNegativeAmount)
	}
	if baseCost.IsNegative() {
		return nil, fmt.Errorf("generator %s: base cost: %w", id, ErrNegativeAmount)
	}
	if !curve.Valid() {
		return nil, fmt.Errorf("generator %s: %w: %q", id, ErrUnknownCurve, curve)
	}
	return &Generator{
		ID:          id,
		Name:        name,
		Mode:        mode,
		Quantity:    quantity,
		Rate:        rate,
		Curve:       curve,
		BaseCost:    baseCost,
		CurrentCost: baseCost,
	}, nil
}

// Production is rate times quantity; zero when none are owned.
func (g *Generator) Production() decimal.Decimal {
	return g.Rate.Mul(decimal.NewFromBigInt(new(big.Int).SetUint64(g.Quantity), 0))
}

func (g *Generator) Cost() decimal.Decimal {
	return g.CurrentCost
}

// IncrementQuantity records one bought unit and reprices the next one.
func (g *Generator) IncrementQuantity() {
	g.Quantity++
	g.Purchased++
	g.RecomputeCost()
}

// RecomputeCost reprices the next unit from Purchased. It panics when Curve
// was changed to an unknown curve after NewGenerator.
func (g *Generator) RecomputeCost() {
	cost, err := CostAt(g.BaseCost, g.Curve, g.Purchased)
	if err != nil {
		// curve is checked in NewGenerator
		panic(err)
	}
	g.CurrentCost = cost
}

func (g *Generator) ApplyEffect(e Effect) error {
	rate, err := e.Apply(g.Rate)
	if err != nil {
		return fmt.Errorf("generator %s: %w", g.ID, err)
	}
	g.Rate = rate
	return nil
}

func (g *Generator) View() GeneratorView {
	return GeneratorView{
		ID:         g.ID,
		Name:       g.Name,
		Mode:       g.Mode,
		Quantity:   g.Quantity,
		Rate:       g.Rate,
		Production: g.Production(),
		Cost:       g.CurrentCost,
	}
}
