package mock

import "testing"

func TestParseRequestMalformedAddress(t *testing.T) {
	req := ParseRequest("https://%zz/api/trades?limit=5", "GET")
	if req.Path() != "/api/trades" {
		t.Fatalf("path %q want /api/trades", req.Path())
	}
}

func TestParseRequestDefaultsMethod(t *testing.T) {
	req := ParseRequest("https://bot.example.com/api/status", "")
	if req.Method != "GET" {
		t.Fatalf("method %q", req.Method)
	}
	if req.IsMutating() {
		t.Fatal("GET flagged as mutating")
	}
}

func TestParseRequestRelativePath(t *testing.T) {
	req := ParseRequest("/api/positions", "get")
	if req.Host() != "" {
		t.Fatalf("host %q want empty", req.Host())
	}
	if req.Path() != "/api/positions" {
		t.Fatalf("path %q", req.Path())
	}
}

func TestIntQuery(t *testing.T) {
	req := ParseRequest("https://bot.example.com/api/alerts?limit=25", "GET")
	if got := req.IntQuery("limit", 10); got != 25 {
		t.Fatalf("limit=%d want 25", got)
	}
	if got := req.IntQuery("offset", 10); got != 10 {
		t.Fatalf("missing key: got %d want default", got)
	}
	req = ParseRequest("https://bot.example.com/api/alerts?limit=abc", "GET")
	if got := req.IntQuery("limit", 10); got != 10 {
		t.Fatalf("bad value: got %d want default", got)
	}
}
