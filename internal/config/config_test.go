package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "dev", cfg.Env)
	require.False(t, cfg.IsProd())
	require.Equal(t, "templates", cfg.TemplatesDir)
	require.Equal(t, "content", cfg.ContentDir)
	require.Equal(t, "5-M", cfg.TrialRateLimit)
	require.Equal(t, 8*time.Second, cfg.LeadsTimeout)
	require.Equal(t, 5*time.Minute, cfg.ContentCacheTTL)
	require.True(t, cfg.MetricsEnabled)
	require.Empty(t, cfg.LeadsEndpoint)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ROLS_WEB_LEADS_ENDPOINT", " https://crm.example.com/hooks ")
	t.Setenv("ROLS_WEB_METRICS_ENABLED", "false")
	t.Setenv("ROLS_WEB_BASE_URL", "https://rolsplus.example/")
	t.Setenv("ROLS_WEB_DEV", "true")

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.Addr)
	require.Equal(t, "https://crm.example.com/hooks", cfg.LeadsEndpoint)
	require.False(t, cfg.MetricsEnabled)
	require.Equal(t, "https://rolsplus.example", cfg.BaseURL)
	require.True(t, cfg.DevMode)
}

func TestLoadFlagsWinOverEnvironment(t *testing.T) {
	t.Setenv("ROLS_WEB_ADDR", ":7000")
	cfg, err := Load([]string{"-addr", ":7001", "-templates", "../../templates"})
	require.NoError(t, err)
	require.Equal(t, ":7001", cfg.Addr)
	require.Equal(t, "../../templates", cfg.TemplatesDir)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("ROLS_WEB_LEADS_TIMEOUT", "soon")
	_, err := Load(nil)
	require.ErrorContains(t, err, "LEADS_TIMEOUT")
}

func TestLoadProdRequiresSigningKey(t *testing.T) {
	t.Setenv("ROLS_WEB_ENV", "prod")
	t.Setenv("ROLS_WEB_SESSION_SIGNING_KEY", "")
	_, err := Load(nil)
	require.ErrorContains(t, err, "SESSION_SIGNING_KEY")

	t.Setenv("ROLS_WEB_SESSION_SIGNING_KEY", "0123456789abcdef0123456789abcdef")
	cfg, err := Load(nil)
	require.NoError(t, err)
	require.True(t, cfg.IsProd())
}
