package domain

import (
	"errors"
	"testing"
)

func TestUpgradeRecomputeCost(t *testing.T) {
	cases := []struct {
		curve  Curve
		growth string
	}{
		{CurveAdditive, "1.05"},
		{CurveMultiplicative, "1.9"},
		{CurveExponential, "1.14"},
	}
	for _, tc := range cases {
		u, err := NewUpgrade("u", "U", "clicker", tc.curve, Effect{Kind: ModifierAdditive, Value: dec("1")}, dec("30"))
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.curve, err)
		}
		prev := u.Cost()
		for i := 0; i < 10; i++ {
			u.PurchaseCount++
			u.RecomputeCost()
			want := prev.Mul(dec(tc.growth))
			if !u.Cost().Equal(want) {
				t.Fatalf("%s purchase %d: expected %s got %s", tc.curve, u.PurchaseCount, want, u.Cost())
			}
			if !u.Cost().GreaterThan(prev) {
				t.Fatalf("%s: expected cost to increase", tc.curve)
			}
			prev = u.Cost()
		}
	}
}

func TestNewUpgradeValidation(t *testing.T) {
	ok := Effect{Kind: ModifierMultiplicative, Value: dec("2")}
	if _, err := NewUpgrade("u", "U", "clicker", "flat", ok, dec("1")); !errors.Is(err, ErrUnknownCurve) {
		t.Fatalf("expected ErrUnknownCurve got %v", err)
	}
	if _, err := NewUpgrade("u", "U", "clicker", CurveExponential, Effect{Kind: "exponential", Value: dec("2")}, dec("1")); !errors.Is(err, ErrInvalidEffect) {
		t.Fatalf("expected ErrInvalidEffect got %v", err)
	}
	if _, err := NewUpgrade("u", "U", "clicker", CurveExponential, ok, dec("-5")); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount got %v", err)
	}
}

func TestUpgradeView(t *testing.T) {
	u, _ := NewUpgrade("overclock", "Overclock", "auto-clicker", CurveExponential, Effect{Kind: ModifierAdditive, Value: dec("1")}, dec("30"))
	v := u.View()
	if v.ID != "overclock" || v.Target != "auto-clicker" || v.PurchaseCount != 0 || !v.Cost.Equal(dec("30")) {
		t.Fatalf("unexpected view %+v", v)
	}
}

func TestPurchaseErrorUnwraps(t *testing.T) {
	err := error(&PurchaseError{Ref: "upgrade overclock", Cost: dec("30"), Balance: dec("10")})
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds")
	}
	var pe *PurchaseError
	if !errors.As(err, &pe) || !pe.Cost.Equal(dec("30")) {
		t.Fatalf("expected PurchaseError with cost 30 got %v", err)
	}
}
