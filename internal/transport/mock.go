package transport

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"dashmock/internal/mock"
	"dashmock/internal/randx"
	"dashmock/internal/refdata"
	"dashmock/internal/stream"
)

// Mock answers every intercepted call from the dispatch engine and
// only touches the network through its fallback for passthrough
// decisions. Each instance owns its dispatcher, stream simulator and
// candle cache: independent instances never share state.
type Mock struct {
	Dispatcher *mock.Dispatcher
	Sim        *stream.Simulator
	Push       *stream.PushStream
	Fallback   Transport
	Logger     *zap.Logger
	// NotifyFunc surfaces transient user-visible notices (the
	// "action simulated" toast). Optional.
	NotifyFunc func(string)
}

type MockOptions struct {
	Logger     *zap.Logger
	Rnd        *randx.Source
	Dispatch   mock.Options
	TickMin    time.Duration
	TickMax    time.Duration
	Fallback   Transport
	NotifyFunc func(string)
}

func NewMock(opts MockOptions) *Mock {
	if opts.Rnd == nil {
		opts.Rnd = randx.New(0)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Dispatch.Rnd == nil {
		opts.Dispatch.Rnd = opts.Rnd
	}
	if opts.Dispatch.Logger == nil {
		opts.Dispatch.Logger = opts.Logger
	}
	if opts.Fallback == nil {
		opts.Fallback = NewReal(opts.Logger)
	}
	d := mock.NewDispatcher(opts.Dispatch)
	return &Mock{
		Dispatcher: d,
		Sim: &stream.Simulator{
			Logger:  opts.Logger,
			Rnd:     opts.Rnd,
			Source:  d,
			TickMin: opts.TickMin,
			TickMax: opts.TickMax,
		},
		Push:       &stream.PushStream{Logger: opts.Logger},
		Fallback:   opts.Fallback,
		Logger:     opts.Logger,
		NotifyFunc: opts.NotifyFunc,
	}
}

// IssueRequest resolves the request through the route table, waits out
// the injected latency, and delivers the synthesized body. Passthrough
// decisions delegate to the fallback transport unchanged.
func (m *Mock) IssueRequest(ctx context.Context, req mock.Request) (*Response, error) {
	res := m.Dispatcher.Resolve(req)
	if res.Decision == mock.DecisionPassthrough {
		return m.Fallback.IssueRequest(ctx, req)
	}

	if res.Notice != "" && m.NotifyFunc != nil {
		m.NotifyFunc(res.Notice)
	}

	timer := time.NewTimer(res.Latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	body, err := json.Marshal(res.Payload)
	if err != nil {
		// Payloads are built from plain maps and structs; this does
		// not happen in practice, but the contract is never-fail.
		body = []byte(`{"code":0,"message":"ok","data":null}`)
	}
	m.Logger.Debug("mock response",
		zap.String("route", res.Route),
		zap.String("path", req.Path()),
		zap.Duration("latency", res.Latency),
	)
	return &Response{Status: 200, Header: res.Header, Body: body, Mocked: true}, nil
}

// OpenConnection starts a simulated socket; the asset class comes from
// the same marker classification the dispatcher uses.
func (m *Mock) OpenConnection(ctx context.Context, target string) (Conn, error) {
	class := refdata.ClassCrypto
	if strings.Contains(strings.ToLower(target), "futures") {
		class = refdata.ClassFutures
	}
	return newSimConn(m.Sim.Open(ctx, class)), nil
}

func (m *Mock) OpenPushStream(ctx context.Context, target string) (Conn, error) {
	return newSimConn(m.Push.Open(ctx)), nil
}

// simConn adapts a simulator connection to the transport contract,
// marshaling each event to JSON.
type simConn struct {
	conn *stream.Conn
	msgs chan []byte
}

func newSimConn(c *stream.Conn) *simConn {
	sc := &simConn{conn: c, msgs: make(chan []byte, 16)}
	go func() {
		defer close(sc.msgs)
		for ev := range c.Events() {
			data, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			sc.msgs <- data
		}
	}()
	return sc
}

func (c *simConn) ID() string              { return c.conn.ID() }
func (c *simConn) Messages() <-chan []byte { return c.msgs }

// Send accepts and discards client messages, like the simulator.
func (c *simConn) Send(ctx context.Context, data []byte) error {
	return c.conn.Send(data)
}

func (c *simConn) Close() error {
	return c.conn.Close()
}
