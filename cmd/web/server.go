package main

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/config"
	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/content"
	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/leads"
	mw "github.com/rolsplusschoolofmusic-a11y/rols-music/internal/middleware"
	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/observability"
	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/page"
)

// server holds the collaborators shared by every handler.
type server struct {
	cfg     config.Config
	log     *zap.Logger
	tmpl    *templateSet
	content *content.Store
	leads   leads.Submitter
	metrics *observability.Metrics
	now     func() time.Time
}

func newServer(cfg config.Config, logger *zap.Logger) (*server, error) {
	s := &server{
		cfg:     cfg,
		log:     logger,
		content: content.NewStore(cfg.ContentDir, cfg.ContentCacheTTL),
		now:     time.Now,
	}
	// parse once even in dev mode so a broken template fails start-up
	tc, err := parseTemplates(cfg.TemplatesDir)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	s.tmpl = tc

	leadOpts := []leads.Option{leads.WithTimeout(cfg.LeadsTimeout)}
	if cfg.MetricsEnabled {
		s.metrics = observability.NewMetrics()
		leadOpts = append(leadOpts, leads.WithRecorder(s.metrics))
	}
	client := leads.NewClient(cfg.LeadsEndpoint, leadOpts...)
	if !client.Forwarding() {
		logger.Info("leads endpoint not configured; trial requests are acknowledged locally")
	}
	s.leads = client
	return s, nil
}

// routes builds the chi router.
func (s *server) routes() (http.Handler, error) {
	trialLimit, err := mw.RateLimit(s.cfg.TrialRateLimit)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(middleware.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Logger(s.log))
	r.Use(mw.Recoverer)
	r.Use(mw.Metrics(s.metrics))
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}
	r.Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(s.cfg.PublicDir, "assets"))))

	r.Group(func(r chi.Router) {
		r.Use(mw.Session)
		r.Use(mw.CSRF)

		r.Get("/", s.handleHome)
		r.Get(page.PricingFragmentURL, s.handlePricingFragment)
		r.Get(page.ContactFragmentURL, s.handleContactFragment)
		r.With(trialLimit).Post("/trial", s.handleTrial)
		r.Get("/legal", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/legal/privacy", http.StatusFound)
		})
		r.Get("/legal/{slug}", s.handleLegal)
	})
	return r, nil
}
