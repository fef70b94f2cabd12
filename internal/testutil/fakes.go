package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/prilive-com/tgbot/tg"
)

// Responder produces the response of a FakePool round trip.
type Responder func(req *http.Request) (*http.Response, error)

// RespondOK returns a Responder that answers {"ok":true,"result":result}.
func RespondOK(result any) Responder {
	return func(req *http.Request) (*http.Response, error) {
		data, err := json.Marshal(TelegramEnvelope{OK: true, Result: result})
		if err != nil {
			return nil, err
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(bytes.NewReader(data)),
			Request:    req,
		}, nil
	}
}

// ErrFakeNetwork is returned by FakePool for paths marked with FailPath.
var ErrFakeNetwork = errors.New("fake: connection reset by peer")

// FakePool implements transport.Pool without touching the network.
type FakePool struct {
	mu        sync.Mutex
	respond   Responder
	failPaths map[string]bool
	requests  []*http.Request
	bodies    [][]byte
}

// NewFakePool creates a FakePool answering every request with respond.
func NewFakePool(respond Responder) *FakePool {
	return &FakePool{
		respond:   respond,
		failPaths: make(map[string]bool),
	}
}

// FailPath makes requests whose URL path ends with suffix fail with ErrFakeNetwork.
func (p *FakePool) FailPath(suffix string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failPaths[suffix] = true
}

// Do records the request and returns the configured response.
func (p *FakePool) Do(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		_ = req.Body.Close()
	}

	p.mu.Lock()
	p.requests = append(p.requests, req)
	p.bodies = append(p.bodies, body)
	fail := false
	for suffix := range p.failPaths {
		if strings.HasSuffix(req.URL.Path, suffix) {
			fail = true
			break
		}
	}
	respond := p.respond
	p.mu.Unlock()

	if fail {
		return nil, ErrFakeNetwork
	}
	return respond(req)
}

// CallCount returns how many requests reached the pool.
func (p *FakePool) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

// Requests returns the recorded requests. Bodies are already drained; use Bodies.
func (p *FakePool) Requests() []*http.Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*http.Request{}, p.requests...)
}

// Bodies returns the recorded request bodies, in request order.
func (p *FakePool) Bodies() [][]byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([][]byte{}, p.bodies...)
}

// TransportCall is one call recorded by FakeTransport.
type TransportCall struct {
	HTTPMethod string
	Target     string // full URL for GET, path for POST
	Body       any
}

// FakeTransport satisfies the bot transport interface and records calls.
type FakeTransport struct {
	mu       sync.Mutex
	baseURL  string
	calls    []TransportCall
	Response *tg.APIResponse
	Err      error
}

// NewFakeTransport creates a FakeTransport answering {"ok":true,"result":true}.
func NewFakeTransport(baseURL string) *FakeTransport {
	return &FakeTransport{
		baseURL:  baseURL,
		Response: &tg.APIResponse{OK: true, Result: json.RawMessage("true")},
	}
}

// Get records a GET call.
func (f *FakeTransport) Get(_ context.Context, rawURL string) (*tg.APIResponse, error) {
	return f.record(TransportCall{HTTPMethod: http.MethodGet, Target: rawURL})
}

// Post records a POST call.
func (f *FakeTransport) Post(_ context.Context, urlPath string, body any) (*tg.APIResponse, error) {
	return f.record(TransportCall{HTTPMethod: http.MethodPost, Target: urlPath, Body: body})
}

// BaseURL returns the configured base URL.
func (f *FakeTransport) BaseURL() string {
	return f.baseURL
}

func (f *FakeTransport) record(call TransportCall) (*tg.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Response, nil
}

// CallCount returns how many Get and Post calls were made.
func (f *FakeTransport) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// Calls returns the recorded calls.
func (f *FakeTransport) Calls() []TransportCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]TransportCall{}, f.calls...)
}
