package transport

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dashmock/internal/mock"
	"dashmock/internal/randx"
)

// recordingFallback counts delegated calls so tests can assert which
// requests escaped the mock engine.
type recordingFallback struct {
	calls int
}

func (f *recordingFallback) IssueRequest(ctx context.Context, req mock.Request) (*Response, error) {
	f.calls++
	return &Response{Status: 200, Body: []byte("real")}, nil
}

func (f *recordingFallback) OpenConnection(ctx context.Context, target string) (Conn, error) {
	return nil, errors.New("not implemented")
}

func (f *recordingFallback) OpenPushStream(ctx context.Context, target string) (Conn, error) {
	return nil, errors.New("not implemented")
}

func testMock(fallback Transport) *Mock {
	return NewMock(MockOptions{
		Rnd:      randx.New(1),
		Fallback: fallback,
		Dispatch: mock.Options{
			LatencyMin: time.Millisecond,
			LatencyMax: 2 * time.Millisecond,
		},
		TickMin: 5 * time.Millisecond,
		TickMax: 10 * time.Millisecond,
	})
}

func TestIssueRequestSynthesizes(t *testing.T) {
	fb := &recordingFallback{}
	m := testMock(fb)

	res, err := m.IssueRequest(context.Background(), mock.ParseRequest("https://bot.example.com/api/trades", "GET"))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !res.Mocked || res.Status != 200 {
		t.Fatalf("response %+v", res)
	}
	if res.Header.Get("X-Mock-Data") != "true" {
		t.Fatal("marker header missing")
	}
	var payload struct {
		Code int             `json:"code"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(res.Body, &payload); err != nil {
		t.Fatalf("body not json: %v", err)
	}
	if payload.Code != 0 || len(payload.Data) == 0 {
		t.Fatalf("payload %+v", payload)
	}
	if fb.calls != 0 {
		t.Fatalf("fallback reached %d times for an intercepted path", fb.calls)
	}
}

func TestIssueRequestDelegatesPassthrough(t *testing.T) {
	fb := &recordingFallback{}
	m := testMock(fb)

	res, err := m.IssueRequest(context.Background(), mock.ParseRequest("https://api.coingecko.com/api/v3/ping", "GET"))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if res.Mocked {
		t.Fatal("allow-listed host came back mocked")
	}
	if fb.calls != 1 {
		t.Fatalf("fallback calls=%d want 1", fb.calls)
	}
}

func TestIssueRequestSurfacesNotice(t *testing.T) {
	fb := &recordingFallback{}
	m := testMock(fb)
	var notices []string
	m.NotifyFunc = func(msg string) { notices = append(notices, msg) }

	if _, err := m.IssueRequest(context.Background(), mock.ParseRequest("https://bot.example.com/api/trades", "POST")); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if len(notices) != 1 {
		t.Fatalf("notices %v", notices)
	}

	notices = nil
	if _, err := m.IssueRequest(context.Background(), mock.ParseRequest("https://bot.example.com/api/settings", "POST")); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if len(notices) != 0 {
		t.Fatalf("settings write surfaced notices %v", notices)
	}
}

func TestIssueRequestHonorsContext(t *testing.T) {
	m := NewMock(MockOptions{
		Rnd:      randx.New(1),
		Fallback: &recordingFallback{},
		Dispatch: mock.Options{
			LatencyMin: time.Second,
			LatencyMax: 2 * time.Second,
		},
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.IssueRequest(ctx, mock.ParseRequest("https://bot.example.com/api/trades", "GET")); err == nil {
		t.Fatal("cancelled context did not abort the latency wait")
	}
}

func TestOpenConnectionDeliversJSON(t *testing.T) {
	m := testMock(&recordingFallback{})
	conn, err := m.OpenConnection(context.Background(), "wss://bot.example.com/ws")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer conn.Close()

	select {
	case data, ok := <-conn.Messages():
		if !ok {
			t.Fatal("message channel closed early")
		}
		var ev struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(data, &ev); err != nil {
			t.Fatalf("frame not json: %v", err)
		}
		if ev.Type != "log" {
			t.Fatalf("first frame type %q want log", ev.Type)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for hello frame")
	}
}
