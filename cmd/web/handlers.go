package main

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/content"
	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/leads"
	mw "github.com/rolsplusschoolofmusic-a11y/rols-music/internal/middleware"
	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/page"
	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/pricing"
	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/region"
)

const trialSentParam = "trial"

// handleHome renders the landing page for the selection in the query string.
func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	sel := s.selection(r)
	opts := s.pageOptions(r)
	if r.URL.Query().Get(trialSentParam) == "sent" {
		res := page.BuildTrialResult(sel.Region, "", true)
		opts.TrialResult = &res
	}
	s.renderPage(w, r, "home", page.BuildHome(sel, opts), http.StatusOK)
}

// handlePricingFragment re-renders the pricing section after a currency change.
func (s *server) handlePricingFragment(w http.ResponseWriter, r *http.Request) {
	sel := s.selection(r)
	w.Header().Set("HX-Push-Url", sel.URL("/"))
	s.renderTemplate(w, r, "frag_pricing", page.BuildHome(sel, s.pageOptions(r)), http.StatusOK)
}

// handleContactFragment re-renders the region's contact points after a region change.
func (s *server) handleContactFragment(w http.ResponseWriter, r *http.Request) {
	sel := s.selection(r)
	w.Header().Set("HX-Push-Url", sel.URL("/"))
	s.renderTemplate(w, r, "frag_contact", page.BuildHome(sel, s.pageOptions(r)), http.StatusOK)
}

// handleTrial passes the trial form to the lead intake collaborator. Values are trimmed
// and forwarded as typed; the form is not validated.
func (s *server) handleTrial(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := r.PostForm
	sel := page.DefaultSelection()
	if c, ok := pricing.ParseCode(form.Get(page.ParamCurrency)); ok {
		sel.Currency = c
	}
	if reg, ok := region.Parse(form.Get(page.ParamRegion)); ok {
		sel.Region = reg
	}

	lead := leads.Lead{
		Name:        form.Get("name"),
		Email:       form.Get("email"),
		Instrument:  form.Get("instrument"),
		Region:      strings.TrimSpace(form.Get(page.ParamRegion)),
		Currency:    strings.TrimSpace(form.Get(page.ParamCurrency)),
		Message:     form.Get("message"),
		SubmittedAt: s.now().UTC(),
	}
	log := mw.Log(r.Context())
	receipt, err := s.leads.Submit(r.Context(), lead)
	if err != nil {
		log.Error("trial lead submission failed", zap.Error(err), zap.String("region", sel.Region.String()))
		s.metrics.ObserveLead("failed")
		res := page.BuildTrialResult(sel.Region, "", false)
		if mw.IsHTMX(r.Context()) {
			s.renderTemplate(w, r, "frag_trial_result", res, http.StatusBadGateway)
			return
		}
		opts := s.pageOptions(r)
		opts.TrialResult = &res
		s.renderPage(w, r, "home", page.BuildHome(sel, opts), http.StatusBadGateway)
		return
	}

	log.Info("trial lead accepted",
		zap.String("reference", receipt.Reference),
		zap.String("status", receipt.Status),
		zap.Bool("forwarded", receipt.Forwarded),
		zap.String("region", sel.Region.String()),
	)
	s.metrics.ObserveLead("accepted")
	if mw.IsHTMX(r.Context()) {
		s.renderTemplate(w, r, "frag_trial_result", page.BuildTrialResult(sel.Region, receipt.Reference, true), http.StatusOK)
		return
	}
	q := sel.Values()
	q.Set(trialSentParam, "sent")
	http.Redirect(w, r, "/?"+q.Encode()+"#trial", http.StatusSeeOther)
}

// handleLegal renders a markdown policy page.
func (s *server) handleLegal(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	p, err := s.content.Page("legal", slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		mw.Log(r.Context()).Error("load legal page", zap.String("slug", slug), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	etag := legalETag(p, r.URL.RawQuery)
	w.Header().Set("Cache-Control", "public, max-age=600")
	w.Header().Set("ETag", etag)
	if !p.UpdatedAt.IsZero() {
		w.Header().Set("Last-Modified", p.UpdatedAt.UTC().Format(http.TimeFormat))
	}
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	s.renderPage(w, r, "legal", page.BuildLegal(p, s.selection(r), s.pageOptions(r)), http.StatusOK)
}

// legalETag changes with the document and with the query, which picks the footer contact.
func legalETag(p content.Page, rawQuery string) string {
	h := sha256.New()
	for _, part := range []string{p.Slug, p.Version, p.UpdatedAt.UTC().Format(time.RFC3339), p.HTML, rawQuery} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return `W/"` + hex.EncodeToString(h.Sum(nil)[:12]) + `"`
}

// selection parses the query at the request boundary. Rejected values fall back to the
// defaults and are logged; accepted selections are counted.
func (s *server) selection(r *http.Request) page.Selection {
	sel, rejected := page.SelectionFromQuery(r.URL.Query())
	log := mw.Log(r.Context())
	for _, rj := range rejected {
		log.Debug("rejected selection value", zap.String("param", rj.Param), zap.String("value", rj.Value))
	}
	s.metrics.ObserveSelection(sel.Currency.String(), sel.Region.String())
	return sel
}

func (s *server) pageOptions(r *http.Request) page.Options {
	return page.Options{
		BaseURL: s.baseURL(r),
		Path:    r.URL.Path,
		Now:     s.now(),
		Analytics: page.Analytics{
			GA4MeasurementID: s.cfg.GA4MeasurementID,
			GTMContainerID:   s.cfg.GTMContainerID,
			Debug:            !s.cfg.IsProd(),
		},
		CSRFToken: mw.CSRFToken(r),
	}
}

// baseURL prefers the configured origin; otherwise it is derived from the request.
func (s *server) baseURL(r *http.Request) string {
	if s.cfg.BaseURL != "" {
		return s.cfg.BaseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p == "http" || p == "https" {
		scheme = p
	}
	return scheme + "://" + r.Host
}
