// Package economy holds the resource balance, the generators and the
// upgrades of one game session and is the only place they change.
//
// An Economy is not safe for concurrent use and never reads the system
// clock: callers pass the current time to Tick and PurchaseGenerator.
package economy

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"electrons/internal/config"
	"electrons/internal/domain"
)

type Economy struct {
	balance  decimal.Decimal
	lastTick time.Time

	generators map[domain.GeneratorID]*domain.Generator
	upgrades   map[domain.UpgradeID]*domain.Upgrade
	// declaration order, for listing
	generatorOrder []domain.GeneratorID
	upgradeOrder   []domain.UpgradeID
}

// New builds an economy from a validated roster, with accrual starting at start.
func New(cfg config.Config, start time.Time) (*Economy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid roster: %w", err)
	}

	e := &Economy{
		balance:    cfg.StartingBalance,
		lastTick:   start,
		generators: make(map[domain.GeneratorID]*domain.Generator, len(cfg.Generators)),
		upgrades:   make(map[domain.UpgradeID]*domain.Upgrade, len(cfg.Upgrades)),
	}
	for _, s := range cfg.Generators {
		g, err := domain.NewGenerator(s.ID, s.Name, s.Mode, s.Quantity, s.Rate, s.Curve, s.BaseCost)
		if err != nil {
			return nil, err
		}
		e.generators[g.ID] = g
		e.generatorOrder = append(e.generatorOrder, g.ID)
	}
	for _, s := range cfg.Upgrades {
		u, err := domain.NewUpgrade(s.ID, s.Name, s.Target, s.Curve, s.Effect(), s.BaseCost)
		if err != nil {
			return nil, err
		}
		e.upgrades[u.ID] = u
		e.upgradeOrder = append(e.upgradeOrder, u.ID)
	}
	return e, nil
}

func (e *Economy) Balance() decimal.Decimal {
	return e.balance
}

func (e *Economy) LastTickAt() time.Time {
	return e.lastTick
}

// Tick credits passive production for every whole second between the last
// tick and now, then moves the last tick to now. Nothing happens until at
// least one whole second has passed, or when now is earlier than the last tick.
func (e *Economy) Tick(now time.Time) decimal.Decimal {
	elapsed := wholeSeconds(e.lastTick, now)
	if elapsed < 1 {
		return decimal.Zero
	}

	minted := e.IncomePerSecond().Mul(decimal.NewFromInt(elapsed))
	e.balance = e.balance.Add(minted)
	e.lastTick = now
	return minted
}

// IncomePerSecond sums the production of owned passive generators.
func (e *Economy) IncomePerSecond() decimal.Decimal {
	total := decimal.Zero
	for _, id := range e.generatorOrder {
		g := e.generators[id]
		if g.Mode != domain.ModePassive || g.Quantity == 0 {
			continue
		}
		total = total.Add(g.Production())
	}
	return total
}

// Click credits one round of a manual generator's production.
func (e *Economy) Click(id domain.GeneratorID) (decimal.Decimal, error) {
	g, err := e.generator(id)
	if err != nil {
		return decimal.Zero, err
	}
	if g.Mode != domain.ModeManual {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrNotClickable, id)
	}

	produced := g.Production()
	e.balance = e.balance.Add(produced)
	return produced, nil
}

func (e *Economy) CanAfford(cost decimal.Decimal) bool {
	return e.balance.GreaterThanOrEqual(cost)
}

func (e *Economy) CanBuyGenerator(id domain.GeneratorID) bool {
	g, ok := e.generators[id]
	return ok && e.CanAfford(g.Cost())
}

func (e *Economy) CanBuyUpgrade(id domain.UpgradeID) bool {
	u, ok := e.upgrades[id]
	return ok && e.CanAfford(u.Cost())
}

// PurchaseGenerator buys one unit of a generator at its current cost.
//
// Buying the first unit of a passive generator settles the other generators
// up to now and then restarts the accrual window at now, so the new unit is
// never credited for time before it existed.
func (e *Economy) PurchaseGenerator(id domain.GeneratorID, now time.Time) error {
	g, err := e.generator(id)
	if err != nil {
		return err
	}
	cost := g.Cost()
	if !e.CanAfford(cost) {
		return &domain.PurchaseError{Ref: "generator " + string(id), Cost: cost, Balance: e.balance}
	}

	if g.Mode == domain.ModePassive && g.Quantity == 0 {
		e.Tick(now)
		if now.After(e.lastTick) {
			e.lastTick = now
		}
	}
	e.balance = e.balance.Sub(cost)
	g.IncrementQuantity()
	return nil
}

// PurchaseUpgrade buys one tier of an upgrade and applies its effect.
// Either every step happens or none does.
func (e *Economy) PurchaseUpgrade(id domain.UpgradeID) error {
	u, ok := e.upgrades[id]
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownUpgrade, id)
	}
	g, err := e.generator(u.Target)
	if err != nil {
		return fmt.Errorf("upgrade %s: %w", id, err)
	}
	cost := u.Cost()
	if !e.CanAfford(cost) {
		return &domain.PurchaseError{Ref: "upgrade " + string(id), Cost: cost, Balance: e.balance}
	}
	rate, err := u.Effect.Apply(g.Rate)
	if err != nil {
		return fmt.Errorf("upgrade %s: %w", id, err)
	}

	e.balance = e.balance.Sub(cost)
	u.PurchaseCount++
	u.RecomputeCost()
	g.Rate = rate
	return nil
}

// Credit adds a non-negative amount to the balance.
func (e *Economy) Credit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("credit %s: %w", amount, domain.ErrNegativeAmount)
	}
	e.balance = e.balance.Add(amount)
	return nil
}

func (e *Economy) Generator(id domain.GeneratorID) (domain.GeneratorView, error) {
	g, err := e.generator(id)
	if err != nil {
		return domain.GeneratorView{}, err
	}
	return g.View(), nil
}

func (e *Economy) Upgrade(id domain.UpgradeID) (domain.UpgradeView, error) {
	u, ok := e.upgrades[id]
	if !ok {
		return domain.UpgradeView{}, fmt.Errorf("%w: %q", domain.ErrUnknownUpgrade, id)
	}
	return u.View(), nil
}

// State returns a snapshot in roster order.
func (e *Economy) State() domain.State {
	st := domain.State{
		Balance:    e.balance,
		LastTickAt: e.lastTick,
		Generators: make([]domain.GeneratorView, 0, len(e.generatorOrder)),
		Upgrades:   make([]domain.UpgradeView, 0, len(e.upgradeOrder)),
	}
	for _, id := range e.generatorOrder {
		st.Generators = append(st.Generators, e.generators[id].View())
	}
	for _, id := range e.upgradeOrder {
		st.Upgrades = append(st.Upgrades, e.upgrades[id].View())
	}
	return st
}

func (e *Economy) generator(id domain.GeneratorID) (*domain.Generator, error) {
	g, ok := e.generators[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownGenerator, id)
	}
	return g, nil
}

func wholeSeconds(from, to time.Time) int64 {
	d := to.Sub(from)
	if d <= 0 {
		return 0
	}
	return int64(d / time.Second)
}
