package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownGenerator  = errors.New("unknown generator")
	ErrUnknownUpgrade    = errors.New("unknown upgrade")
	ErrNotClickable      = errors.New("generator is not clickable")
	ErrUnknownCurve      = errors.New("unknown cost curve")
	ErrInvalidEffect     = errors.New("invalid effect")
	ErrNegativeAmount    = errors.New("negative amount")
)

// PurchaseError reports a purchase rejected for lack of funds.
type PurchaseError struct {
	Ref     string
	Cost    decimal.Decimal
	Balance decimal.Decimal
}

func (e *PurchaseError) Error() string {
	return fmt.Sprintf("buy %s: %v: cost %s, balance %s", e.Ref, ErrInsufficientFunds, e.Cost, e.Balance)
}

func (e *PurchaseError) Unwrap() error {
	return ErrInsufficientFunds
}
