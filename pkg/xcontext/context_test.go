package xcontext

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/questx-lab/tinfoil/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	ctx := context.Background()
	require.NotNil(t, Logger(ctx))

	l := logger.NewLogger(logger.DEBUG)
	require.Equal(t, l, Logger(WithLogger(ctx, l)))
}

func TestHTTPClient(t *testing.T) {
	ctx := context.Background()
	require.Equal(t, http.DefaultClient, HTTPClient(ctx))

	c := &http.Client{Timeout: time.Second}
	require.Equal(t, c, HTTPClient(WithHTTPClient(ctx, c)))
}
