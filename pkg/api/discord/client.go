package discord

import (
	"context"
	"fmt"
	"net/http"

	"github.com/imdario/mergo"
	"github.com/questx-lab/tinfoil/config"
	"github.com/questx-lab/tinfoil/pkg/api"
	"github.com/questx-lab/tinfoil/pkg/errorx"
	"golang.org/x/exp/slices"
)

// Version of this library, reported in the default user agent.
const Version = 0

const (
	DefaultURL        = "https://discord.com/api"
	DefaultCDNURL     = "https://cdn.discordapp.com"
	DefaultAPIVersion = 10
)

var DefaultUserAgent = fmt.Sprintf("DiscordBot (https://tinfoil.dev, %d)", Version)

var ErrNoToken = errorx.ErrNoToken

var supportedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPatch,
	http.MethodPut,
	http.MethodDelete,
}

// Requester performs one authenticated call against the API. *Client is the
// only production implementation; endpoint groups hold it through this
// interface.
type Requester interface {
	Request(ctx context.Context, method, path string, opts ...RequestOption) (*api.Response, error)
}

// Client is the entry point to the Discord REST API. It is safe for concurrent
// use: nothing in it changes after New returns.
type Client struct {
	cfg          config.DiscordConfigs
	apiGenerator api.Generator

	User        *UserEndpoints
	Guild       *GuildEndpoints
	Application *ApplicationEndpoints
}

// New builds a client authenticated with cfg.BotToken. Zero fields of cfg are
// taken from the defaults.
func New(cfg config.DiscordConfigs) (*Client, error) {
	if cfg.BotToken == "" {
		return nil, ErrNoToken
	}

	if err := mergo.Merge(&cfg, config.DiscordConfigs{
		URL:       DefaultURL,
		CDNURL:    DefaultCDNURL,
		Version:   DefaultAPIVersion,
		UserAgent: DefaultUserAgent,
	}); err != nil {
		return nil, err
	}

	c := &Client{
		cfg:          cfg,
		apiGenerator: api.NewGenerator(),
	}

	c.User = newUserEndpoints(c)
	c.Guild = newGuildEndpoints(c)
	c.Application = newApplicationEndpoints(c)

	return c, nil
}

// Config returns a copy of the effective configuration.
func (c *Client) Config() config.DiscordConfigs {
	return c.cfg
}

// BaseURL is the versioned API root every path is appended to.
func (c *Client) BaseURL() string {
	return fmt.Sprintf("%s/v%d", c.cfg.URL, c.cfg.Version)
}

// Request sends method to path, which must start with "/" and may already
// hold an encoded query. A response with a non-2xx status is returned as an
// *HTTPError.
func (c *Client) Request(ctx context.Context, method, path string, opts ...RequestOption) (*api.Response, error) {
	if !slices.Contains(supportedMethods, method) {
		return nil, errorx.New(errorx.NotSupportedMethod, "not supported method %s", method)
	}

	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}

	client := c.apiGenerator.New(c.BaseURL(), path).Headers(o.header)
	if o.query != nil {
		client = client.Query(o.query)
	}
	switch body := o.body.(type) {
	case nil:
	case api.Body:
		client = client.Body(body)
	default:
		client = client.Body(api.JSONBody(body))
	}

	auth := []api.Opt{
		api.OAuth2("Bot", c.cfg.BotToken),
		api.UserAgent(c.cfg.UserAgent),
	}

	var resp *api.Response
	var err error
	switch method {
	case http.MethodGet:
		resp, err = client.GET(ctx, auth...)
	case http.MethodPost:
		resp, err = client.POST(ctx, auth...)
	case http.MethodPatch:
		resp, err = client.PATCH(ctx, auth...)
	case http.MethodPut:
		resp, err = client.PUT(ctx, auth...)
	case http.MethodDelete:
		resp, err = client.DELETE(ctx, auth...)
	}
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		return nil, newHTTPError(resp)
	}

	return resp, nil
}

// Do calls r.Request and decodes a successful response into T.
func Do[T any](ctx context.Context, r Requester, method, path string, opts ...RequestOption) (T, error) {
	var result T

	resp, err := r.Request(ctx, method, path, opts...)
	if err != nil {
		return result, err
	}

	if err := resp.Decode(&result); err != nil {
		return result, err
	}

	return result, nil
}

func exec(ctx context.Context, r Requester, method, path string, opts ...RequestOption) error {
	_, err := r.Request(ctx, method, path, opts...)
	return err
}
