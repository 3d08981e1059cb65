package service

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"electrons/internal/clock"
	"electrons/internal/commands"
	"electrons/internal/config"
	"electrons/internal/domain"
	"electrons/internal/economy"
	"electrons/internal/events"
)

var ErrUnknownCommand = errors.New("unknown command")

// GameService owns the economy of one session and serializes access to it.
type GameService struct {
	mu     sync.Mutex
	clk    clock.Clock
	log    *slog.Logger
	eco    *economy.Economy
	nextID uint64
}

func NewGameService(cfg config.Config, clk clock.Clock, logger *slog.Logger) (*GameService, error) {
	if logger == nil {
		logger = slog.Default()
	}
	eco, err := economy.New(cfg, clk.Now())
	if err != nil {
		return nil, err
	}
	return &GameService{
		clk: clk,
		log: logger,
		eco: eco,
	}, nil
}

func (s *GameService) GetState() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eco.State()
}

// Settle credits passive accrual up to now and returns the minted amount.
func (s *GameService) Settle() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eco.Tick(s.clk.Now())
}

// Execute runs one command and returns the events it produced. A rejected
// purchase returns both a PurchaseRejected event and the error.
func (s *GameService) Execute(cmd commands.Command) ([]events.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clk.Now()
	switch c := cmd.(type) {
	case commands.SyncState, *commands.SyncState:
		return s.settle(now, cmd.CommandID()), nil

	case *commands.Settle:
		from := s.eco.LastTickAt()
		evs := s.settle(now, c.ID)
		c.Minted = decimal.Zero
		if len(evs) > 0 {
			c.Minted = evs[0].Data.(events.AccruedData).Minted
		} else {
			s.log.Debug("nothing to settle", "from", from, "now", now)
		}
		return evs, nil

	case *commands.Click:
		produced, err := s.eco.Click(c.GeneratorID)
		if err != nil {
			return nil, s.fail(cmd, err)
		}
		c.Produced = produced
		return []events.Event{s.event(now, c.ID, events.EventTypeClicked, events.ClickedData{
			GeneratorID: c.GeneratorID,
			Produced:    produced,
		})}, nil

	case commands.BuyGenerator:
		return s.buyGenerator(now, c)
	case *commands.BuyGenerator:
		return s.buyGenerator(now, *c)

	case commands.BuyUpgrade:
		return s.buyUpgrade(now, c)
	case *commands.BuyUpgrade:
		return s.buyUpgrade(now, *c)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
}

func (s *GameService) buyGenerator(now time.Time, c commands.BuyGenerator) ([]events.Event, error) {
	evs := s.settle(now, c.ID)
	before, err := s.eco.Generator(c.GeneratorID)
	if err != nil {
		return evs, s.fail(c, err)
	}
	if err := s.eco.PurchaseGenerator(c.GeneratorID, now); err != nil {
		return append(evs, s.reject(now, c, err)...), s.fail(c, err)
	}
	after, _ := s.eco.Generator(c.GeneratorID)

	s.log.Info("generator purchased",
		"generator", c.GeneratorID,
		"cost", before.Cost.String(),
		"quantity", after.Quantity,
		"balance", s.eco.Balance().String(),
	)
	return append(evs, s.event(now, c.ID, events.EventTypeGeneratorPurchased, events.GeneratorPurchasedData{
		GeneratorID: c.GeneratorID,
		Cost:        before.Cost,
		Quantity:    after.Quantity,
	})), nil
}

func (s *GameService) buyUpgrade(now time.Time, c commands.BuyUpgrade) ([]events.Event, error) {
	evs := s.settle(now, c.ID)
	before, err := s.eco.Upgrade(c.UpgradeID)
	if err != nil {
		return evs, s.fail(c, err)
	}
	if err := s.eco.PurchaseUpgrade(c.UpgradeID); err != nil {
		return append(evs, s.reject(now, c, err)...), s.fail(c, err)
	}
	after, _ := s.eco.Upgrade(c.UpgradeID)

	s.log.Info("upgrade purchased",
		"upgrade", c.UpgradeID,
		"target", after.Target,
		"cost", before.Cost.String(),
		"tier", after.PurchaseCount,
		"balance", s.eco.Balance().String(),
	)
	return append(evs, s.event(now, c.ID, events.EventTypeUpgradePurchased, events.UpgradePurchasedData{
		UpgradeID:     c.UpgradeID,
		Target:        after.Target,
		Cost:          before.Cost,
		PurchaseCount: after.PurchaseCount,
	})), nil
}

func (s *GameService) settle(now time.Time, commandID string) []events.Event {
	from := s.eco.LastTickAt()
	minted := s.eco.Tick(now)
	if minted.IsZero() {
		return nil
	}
	to := s.eco.LastTickAt()
	s.log.Debug("accrued", "minted", minted.String(), "seconds", int64(to.Sub(from)/time.Second))
	return []events.Event{s.event(now, commandID, events.EventTypeAccrued, events.AccruedData{
		Minted: minted,
		From:   from,
		To:     to,
	})}
}

func (s *GameService) reject(now time.Time, cmd commands.Command, err error) []events.Event {
	var pe *domain.PurchaseError
	if !errors.As(err, &pe) {
		return nil
	}
	return []events.Event{s.event(now, cmd.CommandID(), events.EventTypePurchaseRejected, events.PurchaseRejectedData{
		Ref:     pe.Ref,
		Cost:    pe.Cost,
		Balance: pe.Balance,
	})}
}

// fail logs err at a level matching its cause and returns it wrapped.
func (s *GameService) fail(cmd commands.Command, err error) error {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds), errors.Is(err, domain.ErrNotClickable):
		s.log.Debug("command rejected", "command", cmd.Name(), "id", cmd.CommandID(), "err", err)
	default:
		s.log.Error("command failed", "command", cmd.Name(), "id", cmd.CommandID(), "err", err)
	}
	return fmt.Errorf("%s: %w", cmd.Name(), err)
}

func (s *GameService) event(at time.Time, commandID string, t events.EventType, data any) events.Event {
	s.nextID++
	return events.New(s.nextID, at, commandID, t, data)
}
