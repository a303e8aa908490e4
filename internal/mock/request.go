// Package mock implements the route-matching and response-synthesis
// engine: it maps an intercepted outbound request onto a generated,
// internally consistent payload. Every route resolves; matching never
// returns an error.
package mock

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Request is the transport-neutral descriptor the dispatcher consumes.
type Request struct {
	Raw    string
	URL    *url.URL
	Method string
	Header http.Header
	Body   []byte
}

// ParseRequest builds a descriptor from a raw address. A malformed
// address falls back to naive path extraction instead of failing: the
// dispatcher must always have something to match on.
func ParseRequest(raw, method string) Request {
	if method == "" {
		method = http.MethodGet
	}
	req := Request{Raw: raw, Method: strings.ToUpper(method)}
	if u, err := url.Parse(raw); err == nil {
		req.URL = u
		return req
	}
	path := raw
	if i := strings.Index(path, "://"); i >= 0 {
		path = path[i+3:]
		if j := strings.Index(path, "/"); j >= 0 {
			path = path[j:]
		} else {
			path = "/"
		}
	}
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	req.URL = &url.URL{Path: path}
	return req
}

// Path returns the request path, never empty.
func (r Request) Path() string {
	if r.URL == nil || r.URL.Path == "" {
		return "/"
	}
	return r.URL.Path
}

// Host returns the target host, possibly empty for relative addresses.
func (r Request) Host() string {
	if r.URL == nil {
		return ""
	}
	return r.URL.Hostname()
}

// IntQuery reads an integer query parameter with a default.
func (r Request) IntQuery(key string, def int) int {
	if r.URL == nil {
		return def
	}
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// IsMutating reports whether the method carries create/update/delete
// semantics.
func (r Request) IsMutating() bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
