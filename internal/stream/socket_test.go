package stream

import (
	"context"
	"testing"
	"time"

	"dashmock/internal/models"
	"dashmock/internal/randx"
	"dashmock/internal/refdata"
)

type staticSource struct {
	trades []models.TradeRecord
}

func (s staticSource) Trades(refdata.AssetClass) []models.TradeRecord { return s.trades }

func (s staticSource) StatusSnapshot(refdata.AssetClass) map[string]any {
	return map[string]any{"running": true}
}

func testSimulator() *Simulator {
	return &Simulator{
		Rnd: randx.New(1),
		Source: staticSource{trades: []models.TradeRecord{
			{ID: "C-1", Symbol: "BTCUSDT", Side: "long", Status: models.StatusOpen},
		}},
		TickMin: 5 * time.Millisecond,
		TickMax: 10 * time.Millisecond,
	}
}

func waitEvent(t *testing.T, c *Conn) Event {
	t.Helper()
	select {
	case ev, ok := <-c.Events():
		if !ok {
			t.Fatal("event channel closed early")
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func TestSocketHelloFirst(t *testing.T) {
	sim := testSimulator()
	conn := sim.Open(context.Background(), refdata.ClassCrypto)
	defer conn.Close()

	ev := waitEvent(t, conn)
	if ev.Type != "log" {
		t.Fatalf("first event type %q want log", ev.Type)
	}
	log, ok := ev.Data.(models.LogEvent)
	if !ok {
		t.Fatalf("hello data %T", ev.Data)
	}
	if log.Level != "info" || log.Source != "stream" {
		t.Fatalf("hello event %+v", log)
	}
}

func TestSocketEmitsAfterHello(t *testing.T) {
	sim := testSimulator()
	conn := sim.Open(context.Background(), refdata.ClassCrypto)
	defer conn.Close()

	waitEvent(t, conn)
	for i := 0; i < 5; i++ {
		ev := waitEvent(t, conn)
		switch ev.Type {
		case "log", "trade_update", "status":
		default:
			t.Fatalf("unexpected event type %q", ev.Type)
		}
	}
}

func TestSocketCloseStopsEmissions(t *testing.T) {
	sim := testSimulator()
	conn := sim.Open(context.Background(), refdata.ClassCrypto)
	waitEvent(t, conn)

	if err := conn.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-conn.Events():
			if !ok {
				return
			}
			// Events already buffered before Close may still drain.
		case <-deadline:
			t.Fatal("event channel never closed after Close")
		}
	}
}

func TestSocketSendDiscarded(t *testing.T) {
	sim := testSimulator()
	conn := sim.Open(context.Background(), refdata.ClassCrypto)
	defer conn.Close()
	if err := conn.Send([]byte(`{"op":"subscribe"}`)); err != nil {
		t.Fatalf("send: %v", err)
	}
}

func TestPushStreamHelloThenQuiet(t *testing.T) {
	ps := &PushStream{}
	conn := ps.Open(context.Background())

	ev := waitEvent(t, conn)
	if ev.Type != "log" {
		t.Fatalf("first event type %q want log", ev.Type)
	}

	// The next scheduled event is a heartbeat 30s out; nothing should
	// arrive in a short window.
	select {
	case got, ok := <-conn.Events():
		if ok {
			t.Fatalf("unexpected event %q before heartbeat interval", got.Type)
		}
		t.Fatal("channel closed while open")
	case <-time.After(50 * time.Millisecond):
	}

	conn.Close()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-conn.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("push stream channel never closed")
		}
	}
}

func TestConnIDsUnique(t *testing.T) {
	sim := testSimulator()
	a := sim.Open(context.Background(), refdata.ClassCrypto)
	b := sim.Open(context.Background(), refdata.ClassFutures)
	defer a.Close()
	defer b.Close()
	if a.ID() == b.ID() || a.ID() == "" {
		t.Fatalf("ids %q/%q", a.ID(), b.ID())
	}
}
