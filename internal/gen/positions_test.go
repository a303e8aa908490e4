package gen

import (
	"testing"

	"dashmock/internal/models"
	"dashmock/internal/randx"
)

func TestPositionsProjection(t *testing.T) {
	trades := testLedger(t, 21)
	positions := Positions(trades)

	openCount := 0
	for _, tr := range trades {
		if tr.Status == models.StatusOpen {
			openCount++
		}
	}
	if len(positions) != openCount {
		t.Fatalf("got %d positions want %d", len(positions), openCount)
	}

	for _, p := range positions {
		wantNotional := randx.Round(p.Quantity*p.EntryPrice, 2)
		if p.Notional != wantNotional {
			t.Fatalf("%s: notional=%v want %v", p.Symbol, p.Notional, wantNotional)
		}
		wantMargin := randx.Round(p.Notional/p.Leverage, 2)
		if p.Margin != wantMargin {
			t.Fatalf("%s: margin=%v want %v", p.Symbol, p.Margin, wantMargin)
		}
		switch p.Side {
		case "long":
			if p.LiquidationPrice >= p.EntryPrice {
				t.Fatalf("%s long: liq %v not below entry %v", p.Symbol, p.LiquidationPrice, p.EntryPrice)
			}
		case "short":
			if p.LiquidationPrice <= p.EntryPrice {
				t.Fatalf("%s short: liq %v not above entry %v", p.Symbol, p.LiquidationPrice, p.EntryPrice)
			}
		default:
			t.Fatalf("%s: unknown side %q", p.Symbol, p.Side)
		}
	}
}

func TestPositionsDeterministic(t *testing.T) {
	trades := testLedger(t, 33)
	a := Positions(trades)
	b := Positions(trades)
	if len(a) != len(b) {
		t.Fatalf("projection size changed: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("projection not referentially transparent at %d", i)
		}
	}
}
