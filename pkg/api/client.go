package api

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/questx-lab/tinfoil/pkg/prometheus"
	"github.com/questx-lab/tinfoil/pkg/xcontext"
)

type Client interface {
	Header(name, value string) Client
	Headers(header http.Header) Client
	Query(query any) Client
	Body(body Body) Client
	GET(ctx context.Context, opts ...Opt) (*Response, error)
	POST(ctx context.Context, opts ...Opt) (*Response, error)
	PUT(ctx context.Context, opts ...Opt) (*Response, error)
	PATCH(ctx context.Context, opts ...Opt) (*Response, error)
	DELETE(ctx context.Context, opts ...Opt) (*Response, error)
}

type Generator interface {
	New(domain, path string, args ...any) Client
}

type defaultGenerator struct{}

func NewGenerator() *defaultGenerator {
	return &defaultGenerator{}
}

// New starts a request against domain+path. The path is only formatted when
// args are given, so a path that already carries an encoded query is kept as
// is.
func (g *defaultGenerator) New(domain, path string, args ...any) Client {
	if len(args) > 0 {
		path = fmt.Sprintf(path, args...)
	}

	return &defaultClient{
		domain:  domain,
		path:    path,
		headers: make(http.Header),
	}
}

type Body interface {
	ToReader() (io.Reader, string, error)
}

type Opt interface {
	Do(defaultClient, *http.Request)
}

type defaultClient struct {
	domain  string
	method  string
	path    string
	headers http.Header
	query   any
	body    Body
}

func (c *defaultClient) Header(name, value string) Client {
	c.headers[http.CanonicalHeaderKey(name)] = []string{value}
	return c
}

func (c *defaultClient) Headers(header http.Header) Client {
	for name, values := range header {
		c.headers[http.CanonicalHeaderKey(name)] = values
	}
	return c
}

func (c *defaultClient) Query(query any) Client {
	c.query = query
	return c
}

func (c *defaultClient) Body(body Body) Client {
	c.body = body
	return c
}

func (c *defaultClient) GET(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodGet
	return c.call(ctx, opts...)
}

func (c *defaultClient) POST(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodPost
	return c.call(ctx, opts...)
}

func (c *defaultClient) PUT(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodPut
	return c.call(ctx, opts...)
}

func (c *defaultClient) PATCH(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodPatch
	return c.call(ctx, opts...)
}

func (c *defaultClient) DELETE(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodDelete
	return c.call(ctx, opts...)
}

func (c *defaultClient) url() string {
	url := c.domain + c.path
	query := Query(c.query)
	if query != "" && strings.Contains(c.path, "?") {
		query = "&" + query[1:]
	}
	return url + query
}

func (c *defaultClient) call(ctx context.Context, opts ...Opt) (*Response, error) {
	var reader io.Reader
	var contentType string
	if c.body != nil {
		var err error
		reader, contentType, err = c.body.ToReader()
		if err != nil {
			return nil, err
		}
	}

	url := c.url()
	req, err := http.NewRequestWithContext(ctx, c.method, url, reader)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	for _, opt := range opts {
		opt.Do(*c, req)
	}

	// Headers set on the builder win over the ones added by opts.
	for h, values := range c.headers {
		req.Header.Del(h)
		for _, v := range values {
			req.Header.Add(h, v)
		}
	}

	start := time.Now()
	result, err := xcontext.HTTPClient(ctx).Do(req)
	if err != nil {
		xcontext.Logger(ctx).Warnf("An error occurred when calling %s %s: %v", c.method, url, err)
		return nil, err
	}
	defer result.Body.Close()

	body, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, err
	}

	observe(c.method, result.StatusCode, time.Since(start))
	xcontext.Logger(ctx).Debugf("%s %s -> %d (%s)", c.method, url, result.StatusCode, time.Since(start))

	response := &Response{
		Method:  c.method,
		URL:     url,
		Code:    result.StatusCode,
		Header:  result.Header,
		RawBody: body,
		Body:    string(body),
	}

	if isJSON(result.Header.Get("Content-Type")) && len(body) > 0 {
		if b, err := bytesToBody(body); err == nil {
			response.Body = b
		} else {
			xcontext.Logger(ctx).Warnf("Cannot parse JSON body of %s: %v", url, err)
		}
	}

	return response, nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}

func observe(method string, code int, elapsed time.Duration) {
	status := fmt.Sprint(code)
	prometheus.PromCounters[prometheus.HTTPRequestTotal].WithLabelValues(method, status).Inc()
	prometheus.PromHistograms[prometheus.HTTPRequestDurationSeconds].
		WithLabelValues(method, status).Observe(elapsed.Seconds())
}
