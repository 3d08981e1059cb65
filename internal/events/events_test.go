package events

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewEvent(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	data := ClickedData{GeneratorID: "clicker", Produced: decimal.NewFromInt(1)}

	ev := New(7, at, "click-1", EventTypeClicked, data)
	if ev.ID != 7 || !ev.At.Equal(at) || ev.CommandID != "click-1" || ev.Type != EventTypeClicked {
		t.Fatalf("unexpected event %+v", ev)
	}
	got, ok := ev.Data.(ClickedData)
	if !ok {
		t.Fatalf("expected ClickedData got %T", ev.Data)
	}
	if got.GeneratorID != "clicker" || !got.Produced.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("unexpected payload %+v", got)
	}
}
