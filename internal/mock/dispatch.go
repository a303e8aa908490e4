package mock

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"dashmock/internal/gen"
	"dashmock/internal/models"
	"dashmock/internal/randx"
	"dashmock/internal/refdata"
)

const apiPrefix = "/api"

// DefaultAllowHosts are the external providers a demo page may still
// reach for real: public market data and static assets.
var DefaultAllowHosts = []string{
	"api.coingecko.com",
	"api.binance.com",
	"fonts.googleapis.com",
	"fonts.gstatic.com",
	"cdn.jsdelivr.net",
}

type serviceContext int

const (
	ctxPrimary serviceContext = iota
	ctxAlternate
	ctxMonitor
	ctxHarvest
)

// Decision says whether the dispatcher synthesized an answer or the
// call must go out over the real transport.
type Decision int

const (
	DecisionRespond Decision = iota
	DecisionPassthrough
)

// Result carries everything a transport shim needs to deliver one
// synthesized response.
type Result struct {
	Decision Decision
	Payload  Payload
	Latency  time.Duration
	Header   http.Header
	// Notice is a transient user-visible message ("action simulated"),
	// empty when nothing should surface.
	Notice string
	// Route names the matched table entry, for diagnostics only.
	Route string
}

// LedgerConfig sizes one asset class's generated history.
type LedgerConfig struct {
	Count     int
	OpenCount int
	Leverage  float64
}

type Options struct {
	Logger     *zap.Logger
	Rnd        *randx.Source
	LatencyMin time.Duration
	LatencyMax time.Duration
	AllowHosts []string
	Crypto     LedgerConfig
	Futures    LedgerConfig
}

// Dispatcher owns the route table and all generated state. Ledgers are
// generated once at construction and frozen; the candle cache fills
// lazily per symbol.
type Dispatcher struct {
	logger     *zap.Logger
	rnd        *randx.Source
	latencyMin time.Duration
	latencyMax time.Duration
	allowHosts []string

	cryptoTrades  []models.TradeRecord
	futuresTrades []models.TradeRecord
	candles       *gen.CandleCache

	routes []route
}

func NewDispatcher(opts Options) *Dispatcher {
	if opts.Rnd == nil {
		opts.Rnd = randx.New(0)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.LatencyMin <= 0 {
		opts.LatencyMin = 30 * time.Millisecond
	}
	if opts.LatencyMax < opts.LatencyMin {
		opts.LatencyMax = opts.LatencyMin + 60*time.Millisecond
	}
	if opts.AllowHosts == nil {
		opts.AllowHosts = DefaultAllowHosts
	}
	if opts.Crypto.Count == 0 {
		opts.Crypto = LedgerConfig{Count: 40, OpenCount: 3, Leverage: 10}
	}
	if opts.Futures.Count == 0 {
		opts.Futures = LedgerConfig{Count: 25, OpenCount: 2, Leverage: 4}
	}

	d := &Dispatcher{
		logger:     opts.Logger,
		rnd:        opts.Rnd,
		latencyMin: opts.LatencyMin,
		latencyMax: opts.LatencyMax,
		allowHosts: opts.AllowHosts,
		candles:    gen.NewCandleCache(opts.Rnd),
	}
	d.cryptoTrades = gen.Ledger(opts.Rnd, gen.LedgerParams{
		Symbols:   refdata.CryptoSymbols,
		RefPrices: refdata.ReferencePrices,
		Leverage:  opts.Crypto.Leverage,
		Count:     opts.Crypto.Count,
		OpenCount: opts.Crypto.OpenCount,
		IDPrefix:  "C",
	})
	d.futuresTrades = gen.Ledger(opts.Rnd, gen.LedgerParams{
		Symbols:   refdata.FuturesSymbols,
		RefPrices: refdata.ReferencePrices,
		Leverage:  opts.Futures.Leverage,
		Count:     opts.Futures.Count,
		OpenCount: opts.Futures.OpenCount,
		IDPrefix:  "F",
	})
	d.routes = d.buildRoutes()
	return d
}

// Resolve runs the state machine over one request. It never fails: the
// worst case is a passthrough decision or the empty-success fallback.
func (d *Dispatcher) Resolve(req Request) Result {
	ctx := classify(req)

	if req.IsMutating() {
		if isSettingsPath(req.Path()) {
			return d.respond("settings-write", SettingsAck(), "")
		}
		return d.respond("simulated-action", SimulatedAck(), "Action simulated: demo mode discards writes")
	}

	if d.isAllowListed(req.Host()) {
		return Result{Decision: DecisionPassthrough}
	}

	for _, rt := range d.routes {
		// First match wins; the table order is the tie-break for
		// overlapping predicates.
		if rt.match(req, ctx) {
			return d.respond(rt.name, rt.handle(req, ctx), "")
		}
	}

	if strings.HasPrefix(req.Path(), apiPrefix) {
		d.logger.Debug("unmodeled api path, answering empty success",
			zap.String("path", req.Path()),
			zap.String("method", req.Method),
		)
		return d.respond("fallback-empty", Empty(), "")
	}

	return Result{Decision: DecisionPassthrough}
}

func (d *Dispatcher) respond(routeName string, p Payload, notice string) Result {
	h := http.Header{}
	h.Set("X-Mock-Data", "true")
	h.Set("Content-Type", "application/json")
	return Result{
		Decision: DecisionRespond,
		Payload:  p,
		Latency:  d.rnd.Duration(d.latencyMin, d.latencyMax),
		Header:   h,
		Notice:   notice,
		Route:    routeName,
	}
}

func (d *Dispatcher) isAllowListed(host string) bool {
	if host == "" {
		return false
	}
	for _, allowed := range d.allowHosts {
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}
	return false
}

// RouteNames lists the table entries in match order.
func (d *Dispatcher) RouteNames() []string {
	out := make([]string, 0, len(d.routes))
	for _, rt := range d.routes {
		out = append(out, rt.name)
	}
	return out
}

// Trades exposes the frozen ledger for a class; used by the stream
// simulator to emit trade updates consistent with the REST payloads.
func (d *Dispatcher) Trades(class refdata.AssetClass) []models.TradeRecord {
	if class == refdata.ClassFutures {
		return d.futuresTrades
	}
	return d.cryptoTrades
}

// classify derives the service context from host/path markers. The
// futures marker selects the alternate trading class; monitor and
// harvest markers route to those services' own handlers.
func classify(req Request) serviceContext {
	target := strings.ToLower(req.Host() + req.Path())
	switch {
	case strings.Contains(target, "monitor") || strings.Contains(target, "sentinel"):
		return ctxMonitor
	case strings.Contains(target, "harvest"):
		return ctxHarvest
	case strings.Contains(target, "futures"):
		return ctxAlternate
	default:
		return ctxPrimary
	}
}

func classOf(ctx serviceContext) refdata.AssetClass {
	if ctx == ctxAlternate {
		return refdata.ClassFutures
	}
	return refdata.ClassCrypto
}

func isSettingsPath(path string) bool {
	return strings.Contains(path, "/settings")
}
