package commands

import (
	"testing"

	"github.com/google/uuid"
)

func TestSyncStateCommand(t *testing.T) {
	cmd := SyncState{ID: "sync-1"}
	if cmd.CommandID() != "sync-1" {
		t.Fatalf("expected CommandID sync-1 got %s", cmd.CommandID())
	}
	if cmd.Name() != "SyncState" {
		t.Fatalf("expected name SyncState got %s", cmd.Name())
	}
}

func TestSettleCommand(t *testing.T) {
	cmd := &Settle{ID: "settle-1"}
	if cmd.CommandID() != "settle-1" {
		t.Fatalf("expected CommandID settle-1 got %s", cmd.CommandID())
	}
	if cmd.Name() != "Settle" {
		t.Fatalf("expected name Settle got %s", cmd.Name())
	}
}

func TestClickCommand(t *testing.T) {
	cmd := &Click{ID: "click-1", GeneratorID: "clicker"}
	if cmd.CommandID() != "click-1" {
		t.Fatalf("expected CommandID click-1 got %s", cmd.CommandID())
	}
	if cmd.Name() != "Click" {
		t.Fatalf("expected name Click got %s", cmd.Name())
	}
}

func TestBuyGeneratorCommand(t *testing.T) {
	cmd := BuyGenerator{ID: "buy-1", GeneratorID: "auto-clicker"}
	if cmd.CommandID() != "buy-1" {
		t.Fatalf("expected CommandID buy-1 got %s", cmd.CommandID())
	}
	if cmd.Name() != "BuyGenerator" {
		t.Fatalf("expected name BuyGenerator got %s", cmd.Name())
	}
}

func TestBuyUpgradeCommand(t *testing.T) {
	cmd := BuyUpgrade{ID: "upgrade-1", UpgradeID: "overclock"}
	if cmd.CommandID() != "upgrade-1" {
		t.Fatalf("expected CommandID upgrade-1 got %s", cmd.CommandID())
	}
	if cmd.Name() != "BuyUpgrade" {
		t.Fatalf("expected name BuyUpgrade got %s", cmd.Name())
	}
}

func TestNewIDIsUnique(t *testing.T) {
	a, b := NewID(), NewID()
	if a == b {
		t.Fatalf("expected distinct ids got %s twice", a)
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Fatalf("expected uuid got %s: %v", a, err)
	}
}
