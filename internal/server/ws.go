package server

import (
	"context"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"nhooyr.io/websocket"

	"dashmock/internal/transport"
)

// socket upgrades the request and bridges a simulated connection onto
// it. Inbound client frames are read and dropped, matching the
// simulator contract.
func (s *Server) socket(c *gin.Context) {
	s.bridge(c, func(ctx context.Context) (transport.Conn, error) {
		return s.Transport.OpenConnection(ctx, c.Request.URL.String())
	})
}

func (s *Server) pushStream(c *gin.Context) {
	s.bridge(c, func(ctx context.Context) (transport.Conn, error) {
		return s.Transport.OpenPushStream(ctx, c.Request.URL.String())
	})
}

func (s *Server) bridge(c *gin.Context, open func(context.Context) (transport.Conn, error)) {
	ws, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		return
	}
	defer ws.Close(websocket.StatusNormalClosure, "closed")

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	conn, err := open(ctx)
	if err != nil {
		return
	}
	defer conn.Close()

	atomic.AddInt64(&s.sessions, 1)
	defer atomic.AddInt64(&s.sessions, -1)
	if s.Logger != nil {
		s.Logger.Info("stream session opened", zap.String("conn", conn.ID()))
	}

	// Drain inbound frames; the simulator discards them anyway.
	go func() {
		for {
			_, _, err := ws.Read(ctx)
			if err != nil {
				cancel()
				return
			}
		}
	}()

	for msg := range conn.Messages() {
		if err := ws.Write(ctx, websocket.MessageText, msg); err != nil {
			return
		}
	}
}
