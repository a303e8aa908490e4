package stream

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"dashmock/internal/models"
)

const heartbeatInterval = 30 * time.Second

// PushStream is the server-push variant: same open delay and hello
// event as the socket, then heartbeats only, no payload mixture.
type PushStream struct {
	Logger *zap.Logger
}

func (p *PushStream) Open(ctx context.Context) *Conn {
	ctx, cancel := context.WithCancel(ctx)
	c := &Conn{
		id:     ulid.Make().String(),
		events: make(chan Event, 4),
		cancel: cancel,
	}
	go p.run(ctx, c)
	return c
}

func (p *PushStream) run(ctx context.Context, c *Conn) {
	defer close(c.events)

	if !sleep(ctx, openDelay) {
		return
	}
	hello := Event{
		Type: "log",
		Time: time.Now().UTC(),
		Data: models.LogEvent{
			Time:    time.Now().UTC(),
			Level:   "info",
			Message: "push stream connected",
			Source:  "stream",
		},
	}
	select {
	case <-ctx.Done():
		return
	case c.events <- hello:
	}
	if p.Logger != nil {
		p.Logger.Debug("push stream opened", zap.String("conn", c.id))
	}

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ev := Event{Type: "heartbeat", Time: time.Now().UTC()}
			select {
			case <-ctx.Done():
				return
			case c.events <- ev:
			}
		}
	}
}
