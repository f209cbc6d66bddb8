package prometheus

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNewHandler(t *testing.T) {
	PromCounters[HTTPRequestTotal].WithLabelValues(http.MethodGet, "200").Inc()
	PromHistograms[HTTPRequestDurationSeconds].WithLabelValues(http.MethodGet, "200").Observe(0.1)

	rec := httptest.NewRecorder()
	NewHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), HTTPRequestTotal+`{method="GET",status_code="200"}`)
	require.Contains(t, string(body), HTTPRequestDurationSeconds+"_count")
}

func TestRegister_Twice(t *testing.T) {
	registry := prometheus.NewRegistry()
	require.NoError(t, Register(registry))
	require.Error(t, Register(registry))
}
