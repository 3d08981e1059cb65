package commands

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"electrons/internal/domain"
)

// Command represents a typed command for the GameService executor.
type Command interface {
	CommandID() string
	Name() string
}

// NewID returns a fresh correlation id for a command.
func NewID() string {
	return uuid.NewString()
}

// SyncState settles accrual and requests a state snapshot.
type SyncState struct {
	ID string
}

func (c SyncState) CommandID() string {
	return c.ID
}

func (c SyncState) Name() string {
	return "SyncState"
}

// Settle requests passive accrual and exposes the minted amount.
type Settle struct {
	ID     string
	Minted decimal.Decimal
}

func (c *Settle) CommandID() string {
	return c.ID
}

func (c *Settle) Name() string {
	return "Settle"
}

// Click operates a manual generator once and exposes what it produced.
type Click struct {
	ID          string
	GeneratorID domain.GeneratorID
	Produced    decimal.Decimal
}

func (c *Click) CommandID() string {
	return c.ID
}

func (c *Click) Name() string {
	return "Click"
}

// BuyGenerator buys one unit of a generator.
type BuyGenerator struct {
	ID          string
	GeneratorID domain.GeneratorID
}

func (c BuyGenerator) CommandID() string {
	return c.ID
}

func (c BuyGenerator) Name() string {
	return "BuyGenerator"
}

// BuyUpgrade buys one tier of an upgrade.
type BuyUpgrade struct {
	ID        string
	UpgradeID domain.UpgradeID
}

func (c BuyUpgrade) CommandID() string {
	return c.ID
}

func (c BuyUpgrade) Name() string {
	return "BuyUpgrade"
}
