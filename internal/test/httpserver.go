package test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// NewHttpServerWithHandlers starts a server that answers the n-th request with the n-th handler. The test fails if a
// request arrives after the handlers are used up, or if some handlers were never called. The server is closed when
// the test ends.
func NewHttpServerWithHandlers(t *testing.T, handlers []http.HandlerFunc) *httptest.Server {
	t.Helper()

	var mu sync.Mutex
	idx := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		if idx >= len(handlers) {
			mu.Unlock()
			t.Errorf("unexpected request %s %s, add a handler func for it", r.Method, r.URL)
			w.WriteHeader(http.StatusNotImplemented)
			return
		}
		handler := handlers[idx]
		idx++
		mu.Unlock()

		handler(w, r)
	}))

	t.Cleanup(func() {
		srv.Close()

		mu.Lock()
		defer mu.Unlock()
		if diff := len(handlers) - idx; diff != 0 {
			t.Errorf("too many configured handlers, remove %d handler(s)", diff)
		}
	})
	return srv
}
