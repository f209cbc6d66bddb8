package discord

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/questx-lab/tinfoil/config"
	"github.com/questx-lab/tinfoil/pkg/api"
	"github.com/questx-lab/tinfoil/pkg/errorx"
	"github.com/questx-lab/tinfoil/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *testutil.FakeDiscord) {
	f := testutil.NewFakeDiscord()
	t.Cleanup(f.Close)

	c, err := New(config.DiscordConfigs{BotToken: "token", URL: f.URL})
	require.NoError(t, err)

	return c, f
}

func TestNew_NoToken(t *testing.T) {
	_, err := New(config.DiscordConfigs{URL: "http://localhost"})
	require.ErrorIs(t, err, ErrNoToken)
}

func TestNew_Defaults(t *testing.T) {
	c, err := New(config.DiscordConfigs{BotToken: "token", Version: 9})
	require.NoError(t, err)

	require.Equal(t, config.DiscordConfigs{
		BotToken:  "token",
		URL:       DefaultURL,
		CDNURL:    DefaultCDNURL,
		Version:   9,
		UserAgent: DefaultUserAgent,
	}, c.Config())
	require.Equal(t, "https://discord.com/api/v9", c.BaseURL())

	require.NotNil(t, c.User.Me)
	require.NotNil(t, c.Guild.Bans)
	require.NotNil(t, c.Application.RoleConnections)
}

func TestRequest_BaseHeaders(t *testing.T) {
	c, f := newTestClient(t)
	f.Handle(http.MethodGet, "/v10/users/@me", testutil.Route{Body: map[string]any{"id": "1", "username": "bot"}})

	_, err := c.Request(context.Background(), http.MethodGet, "/users/@me")
	require.NoError(t, err)

	req, ok := f.Last(http.MethodGet, "/v10/users/@me")
	require.True(t, ok)
	require.Equal(t, "Bot token", req.Header.Get("Authorization"))
	require.Equal(t, DefaultUserAgent, req.Header.Get("User-Agent"))
	require.Empty(t, req.Header.Get("Content-Type"))
	require.Empty(t, req.Body)
}

func TestRequest_CallerHeadersOverride(t *testing.T) {
	c, f := newTestClient(t)
	f.Handle(http.MethodGet, "/v10/users/@me", testutil.Route{Body: map[string]any{}})

	_, err := c.Request(context.Background(), http.MethodGet, "/users/@me",
		WithHeader("authorization", "Bearer other"),
		WithHeader("X-Custom", "1"),
	)
	require.NoError(t, err)

	req, _ := f.Last(http.MethodGet, "/v10/users/@me")
	require.Equal(t, []string{"Bearer other"}, req.Header.Values("Authorization"))
	require.Equal(t, "1", req.Header.Get("X-Custom"))
}

func TestRequest_NotSupportedMethod(t *testing.T) {
	c, f := newTestClient(t)

	_, err := c.Request(context.Background(), http.MethodHead, "/users/@me")
	require.ErrorIs(t, err, errorx.ErrNotSupportedMethod)
	require.Zero(t, f.Hits())
}

func TestRequest_HTTPError(t *testing.T) {
	c, f := newTestClient(t)
	f.Handle(http.MethodGet, "/v10/guilds/1", testutil.Route{
		Status: http.StatusNotFound,
		Body:   map[string]any{"code": 10004, "message": "Unknown Guild"},
	})

	_, err := c.Guild.Get(context.Background(), "1", false)
	require.Error(t, err)

	httpErr, ok := IsHTTPError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, httpErr.StatusCode())
	require.Equal(t, errorx.UnknownGuild, httpErr.APIError.Code)
	require.Equal(t, "Unknown Guild", httpErr.APIError.Message)
	require.True(t, errors.Is(err, errorx.Error{Code: errorx.UnknownGuild}))
	require.Contains(t, err.Error(), "Unknown Guild")
}

func TestRequest_InvalidFormBody(t *testing.T) {
	c, f := newTestClient(t)
	f.Handle(http.MethodPost, "/v10/guilds/1/roles", testutil.Route{
		Status: http.StatusBadRequest,
		Body: map[string]any{
			"code":    50035,
			"message": "Invalid Form Body",
			"errors": map[string]any{
				"name": map[string]any{
					"_errors": []any{map[string]any{"code": "BASE_TYPE_MAX_LENGTH", "message": "Too long"}},
				},
			},
		},
	})

	_, err := c.Guild.Roles.Create(context.Background(), "1", CreateRoleParams{Name: "x"}, "")

	httpErr, ok := IsHTTPError(err)
	require.True(t, ok)
	require.Equal(t, errorx.InvalidFormBody, httpErr.APIError.Code)

	fieldErrors, err := httpErr.Errors.Get("name._errors")
	require.NoError(t, err)
	require.Len(t, fieldErrors, 1)
}

func TestRequest_BodyPassthrough(t *testing.T) {
	c, f := newTestClient(t)
	f.Handle(http.MethodPost, "/v10/things", testutil.Route{Status: http.StatusNoContent})

	_, err := c.Request(context.Background(), http.MethodPost, "/things",
		WithBody(api.Parameter{"b": "2", "a": "x y"}))
	require.NoError(t, err)

	req, _ := f.Last(http.MethodPost, "/v10/things")
	require.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))
	require.Equal(t, "a=x%20y&b=2", string(req.Body))

	_, err = c.Request(context.Background(), http.MethodPost, "/things",
		WithBody(api.JSON{"id": "1"}))
	require.NoError(t, err)

	req, _ = f.Last(http.MethodPost, "/v10/things")
	require.Equal(t, "application/json", req.Header.Get("Content-Type"))
	require.JSONEq(t, `{"id":"1"}`, string(req.Body))
}

func TestRequest_HTTPErrorWithoutPayload(t *testing.T) {
	c, f := newTestClient(t)
	f.Handle(http.MethodDelete, "/v10/guilds/1", testutil.Route{Status: http.StatusForbidden, Body: "nope"})

	err := c.Guild.Delete(context.Background(), "1")

	httpErr, ok := IsHTTPError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusForbidden, httpErr.StatusCode())
	require.Equal(t, errorx.GeneralError, httpErr.APIError.Code)
	require.Equal(t, "Forbidden", httpErr.APIError.Message)
	require.Equal(t, "nope", httpErr.Response.Body)
}

func TestRequest_TextResponse(t *testing.T) {
	c, f := newTestClient(t)
	f.Handle(http.MethodGet, "/v10/gateway", testutil.Route{Body: "hello"})

	resp, err := c.Request(context.Background(), http.MethodGet, "/gateway")
	require.NoError(t, err)
	require.Equal(t, "hello", resp.Body)

	text, err := Do[string](context.Background(), c, http.MethodGet, "/gateway")
	require.NoError(t, err)
	require.Equal(t, "hello", text)
}

func TestRequest_TransportError(t *testing.T) {
	c, f := newTestClient(t)
	f.Close()

	_, err := c.User.Me.Get(context.Background())
	require.Error(t, err)

	_, ok := IsHTTPError(err)
	require.False(t, ok)
}

func TestDo_RoundTrip(t *testing.T) {
	c, f := newTestClient(t)
	f.Handle(http.MethodGet, "/v10/users/80351110224678912", testutil.Route{Body: map[string]any{
		"id":            "80351110224678912",
		"username":      "Nelly",
		"discriminator": "1337",
		"avatar":        "8342729096ea3675442027381ff50dfe",
		"verified":      true,
		"flags":         64,
	}})

	user, err := c.User.Get(context.Background(), "80351110224678912")
	require.NoError(t, err)

	avatar := "8342729096ea3675442027381ff50dfe"
	require.Equal(t, User{
		ID:            "80351110224678912",
		Username:      "Nelly",
		Discriminator: "1337",
		Avatar:        &avatar,
		Verified:      true,
		Flags:         64,
	}, user)
}

func TestRequest_MockGenerator(t *testing.T) {
	var gotHeader http.Header
	var gotOpts int
	generator := &api.MockAPIGenerator{}
	generator.MockClient.HeadersFunc = func(header http.Header) api.Client {
		gotHeader = header
		return &generator.MockClient
	}
	generator.MockClient.DELETEFunc = func(ctx context.Context, opts ...api.Opt) (*api.Response, error) {
		gotOpts = len(opts)
		return &api.Response{Code: http.StatusNoContent, Body: ""}, nil
	}

	c, err := New(config.DiscordConfigs{BotToken: "token"})
	require.NoError(t, err)
	c.apiGenerator = generator

	err = c.Guild.Members.Kick(context.Background(), "1", "2", "bye")
	require.NoError(t, err)

	require.Equal(t, "https://discord.com/api/v10", generator.Domain)
	require.Equal(t, "/guilds/1/members/2", generator.Path)
	require.Equal(t, "bye", gotHeader.Get(AuditLogReasonHeader))
	require.Equal(t, 2, gotOpts)
}
