package gen

import (
	"testing"

	"dashmock/internal/randx"
)

func TestCandleMemoization(t *testing.T) {
	cache := NewCandleCache(randx.New(7))
	first := cache.Get("BTCUSDT")
	second := cache.Get("BTCUSDT")
	if len(first) != SeriesLength || len(second) != SeriesLength {
		t.Fatalf("lengths %d/%d want %d", len(first), len(second), SeriesLength)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("bar %d differs between fetches", i)
		}
	}
}

func TestCandleSymbolsIndependent(t *testing.T) {
	cache := NewCandleCache(randx.New(7))
	btc := cache.Get("BTCUSDT")
	eth := cache.Get("ETHUSDT")
	same := true
	for i := range btc {
		if btc[i].Close != eth[i].Close {
			same = false
			break
		}
	}
	if same {
		t.Fatal("two symbols produced identical series")
	}
}

func TestCandleInvariants(t *testing.T) {
	cache := NewCandleCache(randx.New(13))
	for _, sym := range []string{"BTCUSDT", "SOLUSDT", "ES", "UNKNOWN"} {
		bars := cache.Get(sym)
		for i, b := range bars {
			hi := b.Open
			if b.Close > hi {
				hi = b.Close
			}
			lo := b.Open
			if b.Close < lo {
				lo = b.Close
			}
			if b.High < hi {
				t.Fatalf("%s bar %d: high %v below body %v", sym, i, b.High, hi)
			}
			if b.Low > lo {
				t.Fatalf("%s bar %d: low %v above body %v", sym, i, b.Low, lo)
			}
			if b.Volume <= 0 {
				t.Fatalf("%s bar %d: volume %v", sym, i, b.Volume)
			}
			if i > 0 && !bars[i-1].Time.Before(b.Time) {
				t.Fatalf("%s bar %d: timestamps not increasing", sym, i)
			}
		}
	}
}
