package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"nhooyr.io/websocket"

	"dashmock/internal/mock"
)

// Real performs actual network I/O. The mock transport delegates here
// for allow-listed hosts and non-API paths.
type Real struct {
	Client *http.Client
	Logger *zap.Logger
}

func NewReal(logger *zap.Logger) *Real {
	return &Real{
		Client: &http.Client{Timeout: 15 * time.Second},
		Logger: logger,
	}
}

func (r *Real) IssueRequest(ctx context.Context, req mock.Request) (*Response, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.Raw, body)
	if err != nil {
		return nil, err
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	resp, err := r.Client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Response{Status: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

func (r *Real) OpenConnection(ctx context.Context, target string) (Conn, error) {
	ws, _, err := websocket.Dial(ctx, target, nil)
	if err != nil {
		return nil, err
	}
	return newRealConn(ctx, ws, r.Logger), nil
}

func (r *Real) OpenPushStream(ctx context.Context, target string) (Conn, error) {
	return r.OpenConnection(ctx, target)
}

type realConn struct {
	id     string
	ws     *websocket.Conn
	msgs   chan []byte
	cancel context.CancelFunc
}

func newRealConn(ctx context.Context, ws *websocket.Conn, logger *zap.Logger) *realConn {
	ctx, cancel := context.WithCancel(ctx)
	c := &realConn{
		id:     ulid.Make().String(),
		ws:     ws,
		msgs:   make(chan []byte, 16),
		cancel: cancel,
	}
	go func() {
		defer close(c.msgs)
		for {
			_, data, err := ws.Read(ctx)
			if err != nil {
				if logger != nil && ctx.Err() == nil {
					logger.Debug("ws read ended", zap.Error(err))
				}
				return
			}
			select {
			case <-ctx.Done():
				return
			case c.msgs <- data:
			}
		}
	}()
	return c
}

func (c *realConn) ID() string              { return c.id }
func (c *realConn) Messages() <-chan []byte { return c.msgs }

func (c *realConn) Send(ctx context.Context, data []byte) error {
	return c.ws.Write(ctx, websocket.MessageText, data)
}

func (c *realConn) Close() error {
	c.cancel()
	return c.ws.Close(websocket.StatusNormalClosure, "client close")
}
