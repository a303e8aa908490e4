// Package transport defines the capability the dashboard code depends
// on for all network I/O, with two implementations: the real network
// and the mock engine. Selecting the implementation at startup replaces
// the override/restore discipline of patching globals.
package transport

import (
	"context"
	"net/http"

	"dashmock/internal/mock"
)

// Response is the uniform answer for request/response calls.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
	// Mocked marks synthesized responses; the real transport never
	// sets it.
	Mocked bool
}

// Conn abstracts a persistent connection: a stream of inbound messages
// plus a discard-or-deliver outbound side.
type Conn interface {
	ID() string
	// Messages yields inbound payloads until the connection closes;
	// the channel is closed afterwards.
	Messages() <-chan []byte
	Send(ctx context.Context, data []byte) error
	Close() error
}

type Transport interface {
	IssueRequest(ctx context.Context, req mock.Request) (*Response, error)
	OpenConnection(ctx context.Context, target string) (Conn, error)
	OpenPushStream(ctx context.Context, target string) (Conn, error)
}
