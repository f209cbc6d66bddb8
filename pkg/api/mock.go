package api

import (
	"context"
	"net/http"
)

type MockAPIGenerator struct {
	MockClient MockAPIClient

	// Domain and Path hold the arguments of the last New call.
	Domain string
	Path   string
}

func (m *MockAPIGenerator) New(domain, path string, args ...any) Client {
	m.Domain = domain
	m.Path = path
	return &m.MockClient
}

type MockAPIClient struct {
	HeaderFunc  func(name, value string) Client
	HeadersFunc func(header http.Header) Client
	QueryFunc   func(query any) Client
	BodyFunc    func(body Body) Client
	GETFunc     func(ctx context.Context, opts ...Opt) (*Response, error)
	POSTFunc    func(ctx context.Context, opts ...Opt) (*Response, error)
	PUTFunc     func(ctx context.Context, opts ...Opt) (*Response, error)
	PATCHFunc   func(ctx context.Context, opts ...Opt) (*Response, error)
	DELETEFunc  func(ctx context.Context, opts ...Opt) (*Response, error)
}

func (c *MockAPIClient) Header(name, value string) Client {
	if c.HeaderFunc != nil {
		return c.HeaderFunc(name, value)
	}

	return c
}

func (c *MockAPIClient) Headers(header http.Header) Client {
	if c.HeadersFunc != nil {
		return c.HeadersFunc(header)
	}

	return c
}

func (c *MockAPIClient) Query(query any) Client {
	if c.QueryFunc != nil {
		return c.QueryFunc(query)
	}

	return c
}

func (c *MockAPIClient) Body(body Body) Client {
	if c.BodyFunc != nil {
		return c.BodyFunc(body)
	}

	return c
}

func (c *MockAPIClient) GET(ctx context.Context, opts ...Opt) (*Response, error) {
	if c.GETFunc != nil {
		return c.GETFunc(ctx, opts...)
	}

	panic("not implemented")
}

func (c *MockAPIClient) POST(ctx context.Context, opts ...Opt) (*Response, error) {
	if c.POSTFunc != nil {
		return c.POSTFunc(ctx, opts...)
	}

	panic("not implemented")
}

func (c *MockAPIClient) PUT(ctx context.Context, opts ...Opt) (*Response, error) {
	if c.PUTFunc != nil {
		return c.PUTFunc(ctx, opts...)
	}

	panic("not implemented")
}

func (c *MockAPIClient) PATCH(ctx context.Context, opts ...Opt) (*Response, error) {
	if c.PATCHFunc != nil {
		return c.PATCHFunc(ctx, opts...)
	}

	panic("not implemented")
}

func (c *MockAPIClient) DELETE(ctx context.Context, opts ...Opt) (*Response, error) {
	if c.DELETEFunc != nil {
		return c.DELETEFunc(ctx, opts...)
	}

	panic("not implemented")
}
