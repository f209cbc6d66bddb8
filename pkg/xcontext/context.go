package xcontext

import (
	"context"
	"net/http"

	"github.com/questx-lab/tinfoil/pkg/logger"
)

type (
	loggerKey     struct{}
	httpClientKey struct{}
)

// WithLogger returns a copy of ctx carrying the given logger.
func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// Logger returns the logger stored in ctx. A silent logger is returned when
// none was set.
func Logger(ctx context.Context) logger.Logger {
	if l, ok := ctx.Value(loggerKey{}).(logger.Logger); ok && l != nil {
		return l
	}

	return logger.NewLogger(logger.SILENCE)
}

// WithHTTPClient returns a copy of ctx whose outbound calls go through c.
func WithHTTPClient(ctx context.Context, c *http.Client) context.Context {
	return context.WithValue(ctx, httpClientKey{}, c)
}

func HTTPClient(ctx context.Context) *http.Client {
	if c, ok := ctx.Value(httpClientKey{}).(*http.Client); ok && c != nil {
		return c
	}

	return http.DefaultClient
}
