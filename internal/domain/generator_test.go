package domain

import (
	"errors"
	"testing"
)

func TestGeneratorProductionScalesWithQuantity(t *testing.T) {
	g, err := NewGenerator("auto-clicker", "Auto Clicker", ModePassive, 0, dec("1.5"), CurveExponential, dec("15"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !g.Production().IsZero() {
		t.Fatalf("expected zero production with zero quantity got %s", g.Production())
	}

	g.IncrementQuantity()
	g.IncrementQuantity()
	if g.Quantity != 2 {
		t.Fatalf("expected quantity 2 got %d", g.Quantity)
	}
	if !g.Production().Equal(dec("3")) {
		t.Fatalf("expected production 3 got %s", g.Production())
	}
}

func TestGeneratorIncrementReprices(t *testing.T) {
	g, err := NewGenerator("clicker", "Clicker", ModeManual, 1, dec("1"), CurveExponential, dec("10"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !g.Cost().Equal(dec("10")) {
		t.Fatalf("expected cost 10 got %s", g.Cost())
	}

	g.IncrementQuantity()
	if g.Quantity != 2 || g.Purchased != 1 {
		t.Fatalf("expected quantity 2 purchased 1 got %d %d", g.Quantity, g.Purchased)
	}
	if !g.Cost().Equal(dec("11.4")) {
		t.Fatalf("expected cost 11.4 got %s", g.Cost())
	}
}

func TestGeneratorApplyEffect(t *testing.T) {
	g, _ := NewGenerator("clicker", "Clicker", ModeManual, 1, dec("1"), CurveAdditive, dec("10"))

	if err := g.ApplyEffect(Effect{Kind: ModifierAdditive, Value: dec("1")}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := g.ApplyEffect(Effect{Kind: ModifierMultiplicative, Value: dec("2")}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if !g.Rate.Equal(dec("4")) {
		t.Fatalf("expected rate 4 got %s", g.Rate)
	}

	if err := g.ApplyEffect(Effect{Kind: "bogus", Value: dec("2")}); !errors.Is(err, ErrInvalidEffect) {
		t.Fatalf("expected ErrInvalidEffect got %v", err)
	}
	if !g.Rate.Equal(dec("4")) {
		t.Fatalf("expected rate unchanged at 4 got %s", g.Rate)
	}
}

func TestNewGeneratorRejectsBadInput(t *testing.T) {
	if _, err := NewGenerator("x", "X", "idle", 0, dec("1"), CurveAdditive, dec("1")); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
	if _, err := NewGenerator("x", "X", ModePassive, 0, dec("-1"), CurveAdditive, dec("1")); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount for rate got %v", err)
	}
	if _, err := NewGenerator("x", "X", ModePassive, 0, dec("1"), CurveAdditive, dec("-1")); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount for cost got %v", err)
	}
	if _, err := NewGenerator("x", "X", ModePassive, 0, dec("1"), "steep", dec("1")); !errors.Is(err, ErrUnknownCurve) {
		t.Fatalf("expected ErrUnknownCurve got %v", err)
	}
}

func TestGeneratorView(t *testing.T) {
	g, _ := NewGenerator("auto-clicker", "Auto Clicker", ModePassive, 3, dec("2"), CurveExponential, dec("15"))
	v := g.View()
	if v.ID != "auto-clicker" || v.Name != "Auto Clicker" || v.Quantity != 3 {
		t.Fatalf("unexpected view %+v", v)
	}
	if !v.Production.Equal(dec("6")) || !v.Cost.Equal(dec("15")) {
		t.Fatalf("unexpected production/cost %s %s", v.Production, v.Cost)
	}
}

func TestRecomputeCostPanicsOnUnknownCurve(t *testing.T) {
	g, _ := NewGenerator("clicker", "Clicker", ModeManual, 1, dec("1"), CurveExponential, dec("10"))
	u, _ := NewUpgrade("overclock", "Overclock", "clicker", CurveExponential, Effect{Kind: ModifierAdditive, Value: dec("1")}, dec("30"))
	g.Curve = "steep"
	u.Curve = "steep"

	for name, fn := range map[string]func(){"generator": g.RecomputeCost, "upgrade": u.RecomputeCost} {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrUnknownCurve) {
					t.Fatalf("%s: expected panic with ErrUnknownCurve got %v", name, r)
				}
			}()
			fn()
		}()
	}
}
