// Package server exposes the mock transport over HTTP and websocket so
// the dashboard frontend can run against it unchanged: every request
// under the server goes through the dispatch engine, and /ws and
// /stream bridge the connection simulators.
package server

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dashmock/internal/mock"
	"dashmock/internal/transport"
)

type Server struct {
	Transport *transport.Mock
	Logger    *zap.Logger

	requests int64
	sessions int64
}

func (s *Server) Register(r *gin.Engine) {
	r.GET("/healthz", s.health)
	r.GET("/ws", s.socket)
	r.GET("/futures/ws", s.socket)
	r.GET("/stream", s.pushStream)
	r.NoRoute(s.dispatch)
}

// dispatch feeds any unclaimed route through the mock transport and
// relays the synthesized body verbatim.
func (s *Server) dispatch(c *gin.Context) {
	atomic.AddInt64(&s.requests, 1)

	target := c.Request.URL.String()
	req := mock.ParseRequest(target, c.Request.Method)
	req.Header = c.Request.Header
	if c.Request.Body != nil {
		body, err := c.GetRawData()
		if err == nil {
			req.Body = body
		}
	}

	resp, err := s.Transport.IssueRequest(c.Request.Context(), req)
	if err != nil {
		// Passthrough of a relative path has nowhere to go when the
		// mock engine declined it; treat it as not found.
		c.JSON(http.StatusNotFound, gin.H{"code": http.StatusNotFound, "message": "not intercepted"})
		return
	}
	for k, vs := range resp.Header {
		for _, v := range vs {
			c.Writer.Header().Add(k, v)
		}
	}
	c.Data(resp.Status, "application/json", resp.Body)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"requests": atomic.LoadInt64(&s.requests),
		"sessions": atomic.LoadInt64(&s.sessions),
		"time":     time.Now().UTC(),
	})
}

// Snapshot reports runtime counters for the periodic cron log line.
func (s *Server) Snapshot() (requests, sessions int64) {
	return atomic.LoadInt64(&s.requests), atomic.LoadInt64(&s.sessions)
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
