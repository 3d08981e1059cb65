package events

import (
	"time"

	"github.com/shopspring/decimal"

	"electrons/internal/domain"
)

// EventType describes the kind of event emitted by the game.
type EventType string

const (
	EventTypeAccrued            EventType = "Accrued"
	EventTypeClicked            EventType = "Clicked"
	EventTypeGeneratorPurchased EventType = "GeneratorPurchased"
	EventTypeUpgradePurchased   EventType = "UpgradePurchased"
	EventTypePurchaseRejected   EventType = "PurchaseRejected"
)

// AccruedData is the payload for passive accrual over [From, To).
type AccruedData struct {
	Minted decimal.Decimal
	From   time.Time
	To     time.Time
}

type ClickedData struct {
	GeneratorID domain.GeneratorID
	Produced    decimal.Decimal
}

type GeneratorPurchasedData struct {
	GeneratorID domain.GeneratorID
	Cost        decimal.Decimal
	Quantity    uint64
}

type UpgradePurchasedData struct {
	UpgradeID     domain.UpgradeID
	Target        domain.GeneratorID
	Cost          decimal.Decimal
	PurchaseCount uint64
}

type PurchaseRejectedData struct {
	Ref     string
	Cost    decimal.Decimal
	Balance decimal.Decimal
}

// Event represents a game event produced by command execution.
type Event struct {
	ID        uint64
	At        time.Time
	CommandID string
	Type      EventType
	Data      any
}

// New constructs a new Event with the provided fields.
func New(id uint64, at time.Time, commandID string, eventType EventType, data any) Event {
	return Event{
		ID:        id,
		At:        at,
		CommandID: commandID,
		Type:      eventType,
		Data:      data,
	}
}
