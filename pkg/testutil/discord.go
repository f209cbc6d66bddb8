package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/puzpuzpuz/xsync"
)

// Route is the canned answer of FakeDiscord for one method and path.
type Route struct {
	Status int

	// Body is written as JSON unless it is a string, which is written as
	// text/plain.
	Body any
}

// RecordedRequest is what FakeDiscord saw of a request.
type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// FakeDiscord is an httptest server answering with registered routes and
// remembering the last request per route. Unknown routes get Discord's 404
// payload.
type FakeDiscord struct {
	*httptest.Server

	routes   *xsync.MapOf[string, Route]
	requests *xsync.MapOf[string, RecordedRequest]
	hits     *xsync.Counter
}

func NewFakeDiscord() *FakeDiscord {
	f := &FakeDiscord{
		routes:   xsync.NewMapOf[Route](),
		requests: xsync.NewMapOf[RecordedRequest](),
		hits:     new(xsync.Counter),
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))

	return f
}

func routeKey(method, path string) string {
	return method + " " + path
}

// Handle registers the answer for method and path. The path is the full URL
// path, including the /vN prefix.
func (f *FakeDiscord) Handle(method, path string, route Route) {
	if route.Status == 0 {
		route.Status = http.StatusOK
	}

	f.routes.Store(routeKey(method, path), route)
}

// Last returns the last request received for method and path.
func (f *FakeDiscord) Last(method, path string) (RecordedRequest, bool) {
	return f.requests.Load(routeKey(method, path))
}

// Hits counts every request received, routed or not.
func (f *FakeDiscord) Hits() int64 {
	return f.hits.Value()
}

func (f *FakeDiscord) serve(w http.ResponseWriter, r *http.Request) {
	f.hits.Inc()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	key := routeKey(r.Method, r.URL.Path)
	f.requests.Store(key, RecordedRequest{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
	})

	route, ok := f.routes.Load(key)
	if !ok {
		route = Route{
			Status: http.StatusNotFound,
			Body:   map[string]any{"code": 0, "message": "404: Not Found"},
		}
	}

	writeRoute(w, route)
}

func writeRoute(w http.ResponseWriter, route Route) {
	switch body := route.Body.(type) {
	case nil:
		w.WriteHeader(route.Status)
	case string:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(route.Status)
		_, _ = io.WriteString(w, body)
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(route.Status)
		_ = json.NewEncoder(w).Encode(body)
	}
}
