package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"electrons/internal/domain"
)

// Config is the starting roster of one game session.
type Config struct {
	StartingBalance decimal.Decimal `yaml:"starting_balance"`
	Generators      []GeneratorSpec `yaml:"generators"`
	Upgrades        []UpgradeSpec   `yaml:"upgrades"`
}

type GeneratorSpec struct {
	ID       domain.GeneratorID `yaml:"id"`
	Name     string             `yaml:"name"`
	Mode     domain.Mode        `yaml:"mode"`
	Quantity uint64             `yaml:"quantity"`
	Rate     decimal.Decimal    `yaml:"rate"`
	Curve    domain.Curve       `yaml:"curve"`
	BaseCost decimal.Decimal    `yaml:"base_cost"`
}

type UpgradeSpec struct {
	ID       domain.UpgradeID    `yaml:"id"`
	Name     string              `yaml:"name"`
	Target   domain.GeneratorID  `yaml:"target"`
	Curve    domain.Curve        `yaml:"curve"`
	Modifier domain.ModifierKind `yaml:"modifier"`
	Value    decimal.Decimal     `yaml:"value"`
	BaseCost decimal.Decimal     `yaml:"base_cost"`
}

func (u UpgradeSpec) Effect() domain.Effect {
	return domain.Effect{Kind: u.Modifier, Value: u.Value}
}

func Default() Config {
	return Config{
		StartingBalance: decimal.Zero,
		Generators: []GeneratorSpec{
			{
				ID:       "clicker",
				Name:     "Clicker",
				Mode:     domain.ModeManual,
				Quantity: 1,
				Rate:     decimal.NewFromInt(1),
				Curve:    domain.CurveExponential,
				BaseCost: decimal.NewFromInt(10),
			},
			{
				ID:       "auto-clicker",
				Name:     "Auto Clicker",
				Mode:     domain.ModePassive,
				Rate:     decimal.NewFromInt(1),
				Curve:    domain.CurveExponential,
				BaseCost: decimal.NewFromInt(15),
			},
			{
				ID:       "cursor-farm",
				Name:     "Cursor Farm",
				Mode:     domain.ModePassive,
				Rate:     decimal.NewFromInt(8),
				Curve:    domain.CurveExponential,
				BaseCost: decimal.NewFromInt(100),
			},
		},
		Upgrades: []UpgradeSpec{
			{
				ID:       "reinforced-finger",
				Name:     "Reinforced Finger",
				Target:   "clicker",
				Curve:    domain.CurveAdditive,
				Modifier: domain.ModifierAdditive,
				Value:    decimal.NewFromInt(1),
				BaseCost: decimal.NewFromInt(10),
			},
			{
				ID:       "overclock",
				Name:     "Overclock",
				Target:   "auto-clicker",
				Curve:    domain.CurveExponential,
				Modifier: domain.ModifierAdditive,
				Value:    decimal.NewFromInt(1),
				BaseCost: decimal.NewFromInt(30),
			},
			{
				ID:       "turbo-relay",
				Name:     "Turbo Relay",
				Target:   "auto-clicker",
				Curve:    domain.CurveMultiplicative,
				Modifier: domain.ModifierMultiplicative,
				Value:    decimal.NewFromInt(2),
				BaseCost: decimal.NewFromInt(100),
			},
			{
				ID:       "farm-automation",
				Name:     "Farm Automation",
				Target:   "cursor-farm",
				Curve:    domain.CurveMultiplicative,
				Modifier: domain.ModifierMultiplicative,
				Value:    decimal.NewFromInt(2),
				BaseCost: decimal.NewFromInt(500),
			},
		},
	}
}

// Load reads and validates a YAML roster file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem in the roster at once.
func (c Config) Validate() error {
	var errs []error
	if c.StartingBalance.IsNegative() {
		errs = append(errs, fmt.Errorf("starting_balance: %w", domain.ErrNegativeAmount))
	}
	if len(c.Generators) == 0 {
		errs = append(errs, errors.New("no generators"))
	}

	gens := make(map[domain.GeneratorID]bool, len(c.Generators))
	for i, g := range c.Generators {
		switch {
		case g.ID == "":
			errs = append(errs, fmt.Errorf("generators[%d]: missing id", i))
		case gens[g.ID]:
			errs = append(errs, fmt.Errorf("generator %s: duplicate id", g.ID))
		}
		gens[g.ID] = true
		if !g.Mode.Valid() {
			errs = append(errs, fmt.Errorf("generator %s: unknown mode %q", g.ID, g.Mode))
		}
		if !g.Curve.Valid() {
			errs = append(errs, fmt.Errorf("generator %s: %w: %q", g.ID, domain.ErrUnknownCurve, g.Curve))
		}
		if g.Rate.IsNegative() || g.BaseCost.IsNegative() {
			errs = append(errs, fmt.Errorf("generator %s: %w", g.ID, domain.ErrNegativeAmount))
		}
	}

	ups := make(map[domain.UpgradeID]bool, len(c.Upgrades))
	for i, u := range c.Upgrades {
		switch {
		case u.ID == "":
			errs = append(errs, fmt.Errorf("upgrades[%d]: missing id", i))
		case ups[u.ID]:
			errs = append(errs, fmt.Errorf("upgrade %s: duplicate id", u.ID))
		}
		ups[u.ID] = true
		if !gens[u.Target] {
			errs = append(errs, fmt.Errorf("upgrade %s: target %q: %w", u.ID, u.Target, domain.ErrUnknownGenerator))
		}
		if !u.Curve.Valid() {
			errs = append(errs, fmt.Errorf("upgrade %s: %w: %q", u.ID, domain.ErrUnknownCurve, u.Curve))
		}
		if err := u.Effect().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("upgrade %s: %w", u.ID, err))
		}
		if u.BaseCost.IsNegative() {
			errs = append(errs, fmt.Errorf("upgrade %s: %w", u.ID, domain.ErrNegativeAmount))
		}
	}
	return errors.Join(errs...)
}
