package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method string
	uri    string
	header http.Header
	body   string
}

func newTestServer(t *testing.T, contentType, body string, code int) (*httptest.Server, *capturedRequest) {
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		captured.method = r.Method
		captured.uri = r.URL.RequestURI()
		captured.header = r.Header.Clone()
		captured.body = string(b)

		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv, captured
}

func TestClient_GET(t *testing.T) {
	srv, captured := newTestServer(t, "application/json; charset=utf-8", `{"id":"42"}`, http.StatusOK)

	resp, err := NewGenerator().New(srv.URL, "/users/%s", "42").
		Query(Parameter{"with_counts": "true"}).
		Header("X-Custom", "yes").
		GET(context.Background(), OAuth2("Bot", "token"), UserAgent("ua"))
	require.NoError(t, err)

	require.Equal(t, http.MethodGet, captured.method)
	require.Equal(t, "/users/42?with_counts=true", captured.uri)
	require.Equal(t, "Bot token", captured.header.Get("Authorization"))
	require.Equal(t, "ua", captured.header.Get("User-Agent"))
	require.Equal(t, "yes", captured.header.Get("X-Custom"))
	require.Empty(t, captured.header.Get("Content-Type"))

	require.True(t, resp.OK())
	require.Equal(t, JSON{"id": "42"}, resp.Body)
	require.Equal(t, `{"id":"42"}`, string(resp.RawBody))
}

func TestClient_HeaderOverridesOpt(t *testing.T) {
	srv, captured := newTestServer(t, "", "", http.StatusNoContent)

	_, err := NewGenerator().New(srv.URL, "/x").
		Headers(http.Header{"user-agent": {"caller"}}).
		DELETE(context.Background(), UserAgent("base"))
	require.NoError(t, err)
	require.Equal(t, http.MethodDelete, captured.method)
	require.Equal(t, []string{"caller"}, captured.header.Values("User-Agent"))
}

func TestClient_PATCHWithBody(t *testing.T) {
	srv, captured := newTestServer(t, "application/json", `[{"id":"1"}]`, http.StatusOK)

	resp, err := NewGenerator().New(srv.URL, "/guilds/1/roles").
		Body(JSON{"id": "1", "position": 2}).
		PATCH(context.Background())
	require.NoError(t, err)

	require.Equal(t, http.MethodPatch, captured.method)
	require.Equal(t, "application/json", captured.header.Get("Content-Type"))
	require.JSONEq(t, `{"id":"1","position":2}`, captured.body)
	require.Equal(t, Array{{"id": "1"}}, resp.Body)
}

func TestClient_TextResponse(t *testing.T) {
	srv, _ := newTestServer(t, "text/plain", "pong", http.StatusOK)

	resp, err := NewGenerator().New(srv.URL, "/ping").POST(context.Background())
	require.NoError(t, err)
	require.Equal(t, "pong", resp.Body)
}

func TestClient_InvalidJSONFallsBackToText(t *testing.T) {
	srv, _ := newTestServer(t, "application/json", "{oops", http.StatusBadGateway)

	resp, err := NewGenerator().New(srv.URL, "/x").PUT(context.Background())
	require.NoError(t, err)
	require.False(t, resp.OK())
	require.Equal(t, http.StatusBadGateway, resp.Code)
	require.Equal(t, "{oops", resp.Body)
}

func TestClient_PathWithQuery(t *testing.T) {
	srv, captured := newTestServer(t, "", "", http.StatusOK)

	_, err := NewGenerator().New(srv.URL, "/a?b=1%202").
		Query(Parameter{"c": "3"}).
		GET(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/a?b=1%202&c=3", captured.uri)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	resp, err := NewGenerator().New(url, "/x").GET(context.Background())
	require.Error(t, err)
	require.Nil(t, resp)
}

func TestClient_Canceled(t *testing.T) {
	srv, _ := newTestServer(t, "", "", http.StatusOK)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator().New(srv.URL, "/x").GET(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
