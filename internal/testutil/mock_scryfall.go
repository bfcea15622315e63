// Package testutil provides testing utilities for the Scryfall client.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// MockResponse defines the behavior for a mock Scryfall endpoint response.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Delay      time.Duration
}

// MockScryfall is a configurable mock Scryfall API server for testing.
type MockScryfall struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	RequestCount      int
	LastRequestHeader http.Header
	LastQuery         string
}

// NewMockScryfall creates a new mock Scryfall server.
func NewMockScryfall() *MockScryfall {
	mock := &MockScryfall{
		handlers: make(map[string]func(w http.ResponseWriter, r *http.Request)),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.LastRequestHeader = r.Header.Clone()
		mock.LastQuery = r.URL.Query().Get("q")
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		mock.defaultHandler(w, r)
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockScryfall) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockScryfall) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockScryfall) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.LastRequestHeader = nil
	m.LastQuery = ""
}

// SetHandler sets a custom handler for a specific path.
func (m *MockScryfall) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a simple response for a path.
func (m *MockScryfall) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}

		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}

		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetSearchResponse configures /cards/search to return the given cards.
// Each card name becomes a minimal card object in the result list.
func (m *MockScryfall) SetSearchResponse(names ...string) {
	m.SetResponse("/cards/search", MockResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       SearchResultJSON(names...),
	})
}

// SetAutocompleteResponse configures /cards/autocomplete with a catalog
// of the given names.
func (m *MockScryfall) SetAutocompleteResponse(names ...string) {
	m.SetResponse("/cards/autocomplete", MockResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       CatalogJSON(names...),
	})
}

// SetErrorResponse configures a path to fail with a Scryfall error object.
func (m *MockScryfall) SetErrorResponse(path string, statusCode int, details string) {
	m.SetResponse(path, MockResponse{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body: fmt.Sprintf(`{"object":"error","code":"mock","status":%d,"details":%q}`,
			statusCode, details),
	})
}

// FailThenSucceed makes a path fail with statusCode for the first n
// requests and return body afterwards. Used to drive retry paths.
func (m *MockScryfall) FailThenSucceed(path string, n int, statusCode int, body string) {
	var mu sync.Mutex
	count := 0
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		count++
		failing := count <= n
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if failing {
			w.WriteHeader(statusCode)
			fmt.Fprintf(w, `{"object":"error","code":"mock","status":%d,"details":"transient"}`, statusCode)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	})
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockScryfall) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// GetLastQuery returns the q parameter of the most recent request.
func (m *MockScryfall) GetLastQuery() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.LastQuery
}

// defaultHandler answers unconfigured paths with an empty search result.
func (m *MockScryfall) defaultHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"object":"list","total_cards":0,"has_more":false,"data":[]}`))
}

// SearchResultJSON builds a minimal Scryfall search result payload.
func SearchResultJSON(names ...string) string {
	cards := ""
	for i, name := range names {
		if i > 0 {
			cards += ","
		}
		cards += fmt.Sprintf(`{"object":"card","id":"00000000-0000-0000-0000-%012d","name":%q,"lang":"en"}`, i+1, name)
	}
	return fmt.Sprintf(`{"object":"list","total_cards":%d,"has_more":false,"data":[%s]}`, len(names), cards)
}

// CatalogJSON builds a minimal Scryfall catalog payload.
func CatalogJSON(names ...string) string {
	items := ""
	for i, name := range names {
		if i > 0 {
			items += ","
		}
		items += fmt.Sprintf("%q", name)
	}
	return fmt.Sprintf(`{"object":"catalog","total_values":%d,"data":[%s]}`, len(names), items)
}
