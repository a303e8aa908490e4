// Package stream simulates the persistent connections the dashboard
// keeps open: a chatty socket that mixes log, trade-update and status
// events on a randomized cadence, and a quieter push stream that only
// heartbeats. Both stop emitting the moment Close is called.
package stream

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"dashmock/internal/gen"
	"dashmock/internal/models"
	"dashmock/internal/randx"
	"dashmock/internal/refdata"
)

const (
	// openDelay models the connect handshake before the hello event.
	openDelay = 300 * time.Millisecond

	defaultTickMin = 5 * time.Second
	defaultTickMax = 10 * time.Second

	// Per-tick odds for the payload mixture.
	tradeUpdateChance = 1.0 / 8
	statusChance      = 1.0 / 12
)

type Event struct {
	Type string    `json:"type"`
	Time time.Time `json:"time"`
	Data any       `json:"data"`
}

// DataSource supplies the frozen ledger and status snapshots so socket
// events stay consistent with the REST payloads.
type DataSource interface {
	Trades(class refdata.AssetClass) []models.TradeRecord
	StatusSnapshot(class refdata.AssetClass) map[string]any
}

type Simulator struct {
	Logger  *zap.Logger
	Rnd     *randx.Source
	Source  DataSource
	TickMin time.Duration
	TickMax time.Duration
}

// Conn is one simulated connection. Events arrive on Events() until
// Close; the channel is closed once the emit loop has fully stopped.
type Conn struct {
	id     string
	events chan Event
	cancel context.CancelFunc
}

func (c *Conn) ID() string           { return c.id }
func (c *Conn) Events() <-chan Event { return c.events }

// Send accepts and discards an inbound client message. The simulated
// backend never replies to client traffic.
func (c *Conn) Send([]byte) error { return nil }

// Close requests shutdown. The timer is cancelled immediately: no
// event is emitted after Close returns, so repeated connect/disconnect
// cycles cannot leak tickers.
func (c *Conn) Close() error {
	c.cancel()
	return nil
}

// Open starts a simulated connection for an asset class. The first
// event is an informational hello log, delivered after the open delay.
func (s *Simulator) Open(ctx context.Context, class refdata.AssetClass) *Conn {
	ctx, cancel := context.WithCancel(ctx)
	c := &Conn{
		id:     ulid.Make().String(),
		events: make(chan Event, 16),
		cancel: cancel,
	}
	go s.run(ctx, c, class)
	return c
}

func (s *Simulator) run(ctx context.Context, c *Conn, class refdata.AssetClass) {
	defer close(c.events)

	if !sleep(ctx, openDelay) {
		return
	}
	s.emit(ctx, c, Event{
		Type: "log",
		Time: time.Now().UTC(),
		Data: models.LogEvent{
			Time:    time.Now().UTC(),
			Level:   "info",
			Message: "stream connected, live updates enabled",
			Source:  "stream",
		},
	})
	if s.Logger != nil {
		s.Logger.Debug("socket sim opened", zap.String("conn", c.id), zap.String("class", string(class)))
	}

	for {
		if !sleep(ctx, s.Rnd.Duration(s.tickMin(), s.tickMax())) {
			return
		}
		s.emit(ctx, c, Event{Type: "log", Time: time.Now().UTC(), Data: gen.LogLine(s.Rnd)})
		if s.Rnd.Chance(tradeUpdateChance) {
			if trades := s.Source.Trades(class); len(trades) > 0 {
				s.emit(ctx, c, Event{
					Type: "trade_update",
					Time: time.Now().UTC(),
					Data: randx.Choice(s.Rnd, trades),
				})
			}
		}
		if s.Rnd.Chance(statusChance) {
			s.emit(ctx, c, Event{
				Type: "status",
				Time: time.Now().UTC(),
				Data: s.Source.StatusSnapshot(class),
			})
		}
	}
}

func (s *Simulator) emit(ctx context.Context, c *Conn, ev Event) {
	select {
	case <-ctx.Done():
	case c.events <- ev:
	}
}

func (s *Simulator) tickMin() time.Duration {
	if s.TickMin > 0 {
		return s.TickMin
	}
	return defaultTickMin
}

func (s *Simulator) tickMax() time.Duration {
	if s.TickMax > s.tickMin() {
		return s.TickMax
	}
	return defaultTickMax
}

// sleep waits d or returns false if the context ends first.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
