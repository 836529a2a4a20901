package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	m := observability.NewMetrics()

	// record one sample per family so every vector shows up
	m.ObserveHTTP("/", "GET", 200, 12*time.Millisecond)
	m.ObserveExternal("leads", "/leads", 201, 40*time.Millisecond)
	m.ObserveSelection("GBP", "UK")
	m.ObserveLead("accepted")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	for _, name := range []string{
		"rols_web_http_requests_total",
		"rols_web_external_requests_total",
		`rols_web_selections_total{currency="GBP",region="UK"} 1`,
		`rols_web_trial_leads_total{outcome="accepted"} 1`,
	} {
		require.True(t, strings.Contains(out, name), "expected %s in output", name)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *observability.Metrics
	m.ObserveHTTP("/", "GET", 200, time.Millisecond)
	m.ObserveLead("failed")
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	l, err := observability.NewLogger("not-a-level")
	require.NoError(t, err)
	require.NotNil(t, l)
	require.False(t, l.Core().Enabled(zapcore.DebugLevel))

	dbg, err := observability.NewLogger("debug")
	require.NoError(t, err)
	require.True(t, dbg.Core().Enabled(zapcore.DebugLevel))
}
