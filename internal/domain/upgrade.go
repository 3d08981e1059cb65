package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Upgrade is a repeatable purchase that modifies one generator.
// Curve prices repeated purchases; Effect changes production. The two are independent.
type Upgrade struct {
	ID            UpgradeID
	Name          string
	Target        GeneratorID
	// Curve must be a known curve; RecomputeCost panics otherwise.
	Curve         Curve
	Effect        Effect
	PurchaseCount uint64
	BaseCost      decimal.Decimal
	CurrentCost   decimal.Decimal
}

func NewUpgrade(id UpgradeID, name string, target GeneratorID, curve Curve, effect Effect, baseCost decimal.Decimal) (*Upgrade, error) {
	if !curve.Valid() {
		return nil, fmt.Errorf("upgrade %s: %w: %q", id, ErrUnknownCurve, curve)
	}
	if err := effect.Validate(); err != nil {
		return nil, fmt.Errorf("upgrade %s: %w", id, err)
	}
	if baseCost.IsNegative() {
		return nil, fmt.Errorf("upgrade %s: base cost: %w", id, ErrNegativeAmount)
	}
	return &Upgrade{
		ID:          id,
		Name:        name,
		Target:      target,
		Curve:       curve,
		Effect:      effect,
		BaseCost:    baseCost,
		CurrentCost: baseCost,
	}, nil
}

// Cost is the price of the next purchase.
func (u *Upgrade) Cost() decimal.Decimal {
	return u.CurrentCost
}

// RecomputeCost reprices the upgrade from its purchase count.
// Call once per successful purchase, after incrementing PurchaseCount.
// It panics when Curve was changed to an unknown curve after NewUpgrade.
func (u *Upgrade) RecomputeCost() {
	cost, err := CostAt(u.BaseCost, u.Curve, u.PurchaseCount)
	if err != nil {
		// curve is checked in NewUpgrade
		panic(err)
	}
	u.CurrentCost = cost
}

func (u *Upgrade) View() UpgradeView {
	return UpgradeView{
		ID:            u.ID,
		Name:          u.Name,
		Target:        u.Target,
		Cost:          u.CurrentCost,
		PurchaseCount: u.PurchaseCount,
	}
}
