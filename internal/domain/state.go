package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// State is a read-only snapshot of the economy.
type State struct {
	Balance    decimal.Decimal
	LastTickAt time.Time
	Generators []GeneratorView
	Upgrades   []UpgradeView
}

type GeneratorView struct {
	ID         GeneratorID
	Name       string
	Mode       Mode
	Quantity   uint64
	Rate       decimal.Decimal
	Production decimal.Decimal
	Cost       decimal.Decimal
}

type UpgradeView struct {
	ID            UpgradeID
	Name          string
	Target        GeneratorID
	Cost          decimal.Decimal
	PurchaseCount uint64
}
