// Package config loads web server settings from .env, ROLS_WEB_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "ROLS_WEB"

// Config holds everything cmd/web needs to start.
type Config struct {
	Addr         string
	Env          string // "dev" or "prod"
	DevMode      bool   // reparse templates on every request
	LogLevel     string
	BaseURL      string
	TemplatesDir string
	PublicDir    string
	ContentDir   string

	SessionSigningKey string

	LeadsEndpoint string
	LeadsTimeout  time.Duration
	// TrialRateLimit uses the limiter format "<limit>-<period>", e.g. "5-M".
	TrialRateLimit string

	MetricsEnabled  bool
	ContentCacheTTL time.Duration

	GA4MeasurementID string
	GTMContainerID   string
}

// IsProd reports whether cookies should be marked Secure.
func (c Config) IsProd() bool { return c.Env == "prod" }

// Load reads configuration. args are the command-line arguments without the program name.
func Load(args []string) (Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("ADDR", "")
	v.SetDefault("ENV", "dev")
	v.SetDefault("DEV", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BASE_URL", "")
	v.SetDefault("TEMPLATES_DIR", "templates")
	v.SetDefault("PUBLIC_DIR", "public")
	v.SetDefault("CONTENT_DIR", "content")
	v.SetDefault("SESSION_SIGNING_KEY", "")
	v.SetDefault("LEADS_ENDPOINT", "")
	v.SetDefault("LEADS_TIMEOUT", "8s")
	v.SetDefault("TRIAL_RATE_LIMIT", "5-M")
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("CONTENT_CACHE_TTL", "5m")
	v.SetDefault("GA_MEASUREMENT_ID", "")
	v.SetDefault("GTM_CONTAINER_ID", "")
	// Cloud Run style PORT without our prefix
	_ = v.BindEnv("PORT", "PORT")

	cfg := Config{
		Addr:              v.GetString("ADDR"),
		Env:               strings.ToLower(strings.TrimSpace(v.GetString("ENV"))),
		DevMode:           v.GetBool("DEV"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		BaseURL:           strings.TrimRight(strings.TrimSpace(v.GetString("BASE_URL")), "/"),
		TemplatesDir:      v.GetString("TEMPLATES_DIR"),
		PublicDir:         v.GetString("PUBLIC_DIR"),
		ContentDir:        v.GetString("CONTENT_DIR"),
		SessionSigningKey: v.GetString("SESSION_SIGNING_KEY"),
		LeadsEndpoint:     strings.TrimSpace(v.GetString("LEADS_ENDPOINT")),
		TrialRateLimit:    strings.TrimSpace(v.GetString("TRIAL_RATE_LIMIT")),
		MetricsEnabled:    v.GetBool("METRICS_ENABLED"),
		GA4MeasurementID:  v.GetString("GA_MEASUREMENT_ID"),
		GTMContainerID:    v.GetString("GTM_CONTAINER_ID"),
	}
	if cfg.Addr == "" {
		port := strings.TrimSpace(v.GetString("PORT"))
		if port == "" {
			port = "8080"
		}
		cfg.Addr = ":" + port
	}

	var err error
	if cfg.LeadsTimeout, err = parseDuration(v, "LEADS_TIMEOUT"); err != nil {
		return Config{}, err
	}
	if cfg.ContentCacheTTL, err = parseDuration(v, "CONTENT_CACHE_TTL"); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	fs.StringVar(&cfg.TemplatesDir, "templates", cfg.TemplatesDir, "templates directory")
	fs.StringVar(&cfg.PublicDir, "public", cfg.PublicDir, "public assets directory")
	fs.StringVar(&cfg.ContentDir, "content", cfg.ContentDir, "markdown content directory")
	fs.BoolVar(&cfg.DevMode, "dev", cfg.DevMode, "reparse templates on every request")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: parse flags: %w", err)
	}

	if cfg.Env != "dev" && cfg.Env != "prod" {
		return Config{}, fmt.Errorf("config: %s_ENV must be dev or prod, got %q", envPrefix, cfg.Env)
	}
	if cfg.IsProd() && cfg.SessionSigningKey == "" {
		return Config{}, fmt.Errorf("config: %s_SESSION_SIGNING_KEY is required in prod", envPrefix)
	}
	return cfg, nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s_%s: %w", envPrefix, key, err)
	}
	return d, nil
}
