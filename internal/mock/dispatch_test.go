package mock

import (
	"testing"

	"dashmock/internal/gen"
	"dashmock/internal/models"
	"dashmock/internal/randx"
)

func testDispatcher(seed int64) *Dispatcher {
	return NewDispatcher(Options{Rnd: randx.New(seed)})
}

func TestMutatingReturnsSimulatedAck(t *testing.T) {
	d := testDispatcher(1)
	for _, method := range []string{"POST", "PUT", "PATCH", "DELETE"} {
		res := d.Resolve(ParseRequest("https://bot.example.com/api/trades", method))
		if res.Decision != DecisionRespond {
			t.Fatalf("%s: decision %v want respond", method, res.Decision)
		}
		data, ok := res.Payload.Data.(map[string]any)
		if !ok {
			t.Fatalf("%s: payload data %T", method, res.Payload.Data)
		}
		if data["simulated"] != true {
			t.Fatalf("%s: missing simulated marker: %v", method, data)
		}
		if res.Notice == "" {
			t.Fatalf("%s: expected a user notice", method)
		}
	}
}

func TestSettingsWriteBareAck(t *testing.T) {
	d := testDispatcher(1)
	res := d.Resolve(ParseRequest("https://bot.example.com/api/settings", "POST"))
	data, ok := res.Payload.Data.(map[string]any)
	if !ok {
		t.Fatalf("payload data %T", res.Payload.Data)
	}
	if data["saved"] != true {
		t.Fatalf("settings ack missing saved flag: %v", data)
	}
	if _, found := data["simulated"]; found {
		t.Fatal("settings ack must not carry simulated marker")
	}
	if res.Notice != "" {
		t.Fatalf("settings write surfaced notice %q", res.Notice)
	}
}

func TestUnmatchedAPIFallsBackToEmptySuccess(t *testing.T) {
	d := testDispatcher(1)
	res := d.Resolve(ParseRequest("https://bot.example.com/api/unmodeled/endpoint", "GET"))
	if res.Decision != DecisionRespond {
		t.Fatal("api-shaped path must be answered, not passed through")
	}
	if res.Payload.Code != 0 || res.Payload.Data != nil {
		t.Fatalf("fallback payload = %+v", res.Payload)
	}
	if res.Route != "fallback-empty" {
		t.Fatalf("route %q", res.Route)
	}
}

func TestAllowListPassthrough(t *testing.T) {
	d := testDispatcher(1)
	res := d.Resolve(ParseRequest("https://api.coingecko.com/api/v3/simple/price", "GET"))
	if res.Decision != DecisionPassthrough {
		t.Fatal("allow-listed host must pass through")
	}
}

func TestNonAPIPassthrough(t *testing.T) {
	d := testDispatcher(1)
	res := d.Resolve(ParseRequest("https://bot.example.com/assets/logo.svg", "GET"))
	if res.Decision != DecisionPassthrough {
		t.Fatal("non-api path must pass through")
	}
}

func TestCandlesStableAcrossRequests(t *testing.T) {
	d := testDispatcher(2)
	first := d.Resolve(ParseRequest("https://bot.example.com/api/candles/BTCUSDT", "GET"))
	second := d.Resolve(ParseRequest("https://bot.example.com/api/candles/BTCUSDT", "GET"))
	a, ok := first.Payload.Data.([]models.Candle)
	if !ok {
		t.Fatalf("candles payload %T", first.Payload.Data)
	}
	b := second.Payload.Data.([]models.Candle)
	if len(a) != gen.SeriesLength || len(b) != gen.SeriesLength {
		t.Fatalf("series lengths %d/%d want %d", len(a), len(b), gen.SeriesLength)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("bar %d changed between requests", i)
		}
	}
}

func TestAlertLimitCapped(t *testing.T) {
	d := testDispatcher(2)
	res := d.Resolve(ParseRequest("https://monitor.example.com/api/alerts?limit=500", "GET"))
	alerts, ok := res.Payload.Data.([]models.Alert)
	if !ok {
		t.Fatalf("alerts payload %T (route %s)", res.Payload.Data, res.Route)
	}
	if len(alerts) != gen.MaxAlerts {
		t.Fatalf("got %d alerts want ceiling %d", len(alerts), gen.MaxAlerts)
	}
}

func TestAssetClassRouting(t *testing.T) {
	d := testDispatcher(3)
	res := d.Resolve(ParseRequest("https://bot.example.com/api/futures/trades", "GET"))
	trades, ok := res.Payload.Data.([]models.TradeRecord)
	if !ok {
		t.Fatalf("trades payload %T (route %s)", res.Payload.Data, res.Route)
	}
	for _, tr := range trades {
		if tr.ID[0] != 'F' {
			t.Fatalf("futures context served trade %s", tr.ID)
		}
	}

	res = d.Resolve(ParseRequest("https://bot.example.com/api/trades", "GET"))
	trades = res.Payload.Data.([]models.TradeRecord)
	for _, tr := range trades {
		if tr.ID[0] != 'C' {
			t.Fatalf("primary context served trade %s", tr.ID)
		}
	}
}

func TestFirstMatchWinsOnOverlap(t *testing.T) {
	d := testDispatcher(3)
	res := d.Resolve(ParseRequest("https://bot.example.com/api/stats/accurate", "GET"))
	if res.Route != "stats-accurate" {
		t.Fatalf("route %q want stats-accurate", res.Route)
	}
	res = d.Resolve(ParseRequest("https://bot.example.com/api/stats", "GET"))
	if res.Route != "stats" {
		t.Fatalf("route %q want stats", res.Route)
	}
}

func TestMonitorContextOwnsStatus(t *testing.T) {
	d := testDispatcher(3)
	res := d.Resolve(ParseRequest("https://monitor.example.com/api/status", "GET"))
	if res.Route != "monitor-status" {
		t.Fatalf("route %q want monitor-status", res.Route)
	}
	res = d.Resolve(ParseRequest("https://bot.example.com/api/status", "GET"))
	if res.Route != "status" {
		t.Fatalf("route %q want status", res.Route)
	}
}

func TestRespondCarriesMarkerAndLatency(t *testing.T) {
	d := NewDispatcher(Options{Rnd: randx.New(4)})
	res := d.Resolve(ParseRequest("https://bot.example.com/api/positions", "GET"))
	if res.Header.Get("X-Mock-Data") != "true" {
		t.Fatal("marker header missing")
	}
	if res.Latency <= 0 {
		t.Fatalf("latency %v", res.Latency)
	}
}

func TestKillSwitchAndDriftCheck(t *testing.T) {
	d := testDispatcher(5)
	res := d.Resolve(ParseRequest("https://bot.example.com/api/kill-switch", "GET"))
	data := res.Payload.Data.(map[string]any)
	if data["active"] != false {
		t.Fatalf("kill switch payload %v", data)
	}
	res = d.Resolve(ParseRequest("https://bot.example.com/api/drift-check", "GET"))
	data = res.Payload.Data.(map[string]any)
	if data["drift_detected"] != false {
		t.Fatalf("drift payload %v", data)
	}
}
