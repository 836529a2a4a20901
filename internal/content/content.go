// Package content serves the markdown-backed static pages (privacy, terms) linked
// from the landing page footer and trial form.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no page exists for a kind/slug.
var ErrNotFound = errors.New("content: page not found")

// Page is a rendered static page.
type Page struct {
	Kind      string
	Slug      string
	Title     string
	Summary   string
	HTML      string // sanitized
	Format    string // "markdown" (default) or "html"
	UpdatedAt time.Time
	Version   string
	SEO       SEO
	Banner    *Banner
}

// SEO holds optional metadata overrides.
type SEO struct {
	Title       string
	Description string
}

// Banner is an optional notice displayed above the body.
type Banner struct {
	Variant string
	Title   string
	Message string
}

type frontMatter struct {
	Title     string             `yaml:"title"`
	Summary   string             `yaml:"summary"`
	Format    string             `yaml:"format"`
	UpdatedAt string             `yaml:"updated_at"`
	Version   string             `yaml:"version"`
	SEO       frontMatterSEO     `yaml:"seo"`
	Banner    *frontMatterBanner `yaml:"banner"`
}

type frontMatterSEO struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type frontMatterBanner struct {
	Variant string `yaml:"variant"`
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
}

const (
	defaultFormat = "markdown"
	defaultDir    = "content"
	defaultTTL    = 5 * time.Minute
)

// Store reads pages from <dir>/<kind>/<slug>.md and caches the rendered result.
type Store struct {
	dir    string
	ttl    time.Duration
	md     goldmark.Markdown
	policy *bluemonday.Policy
	now    func() time.Time

	mu    sync.RWMutex
	items map[string]cacheEntry
}

type cacheEntry struct {
	page    Page
	expires time.Time
}

// NewStore builds a store rooted at dir. ttl <= 0 uses the default of five minutes.
func NewStore(dir string, ttl time.Duration) *Store {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = defaultDir
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{
		dir:    dir,
		ttl:    ttl,
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: bluemonday.UGCPolicy(),
		now:    time.Now,
		items:  map[string]cacheEntry{},
	}
}

// Page returns the rendered page for kind/slug.
func (s *Store) Page(kind, slug string) (Page, error) {
	kind = sanitizeSlug(kind)
	slug = sanitizeSlug(slug)
	if kind == "" || slug == "" {
		return Page{}, ErrNotFound
	}
	key := kind + "|" + slug
	if page, ok := s.cached(key); ok {
		return page, nil
	}
	page, err := s.read(kind, slug)
	if err != nil {
		return Page{}, err
	}
	s.store(key, page)
	return clonePage(page), nil
}

func (s *Store) read(kind, slug string) (Page, error) {
	file := filepath.Join(s.dir, kind, slug+".md")
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Page{}, ErrNotFound
		}
		return Page{}, fmt.Errorf("content: read %s: %w", file, err)
	}
	fm, body := splitFrontMatter(string(data))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("content: parse front matter %s: %w", file, err)
		}
	}

	page := Page{
		Kind:    kind,
		Slug:    slug,
		Title:   strings.TrimSpace(front.Title),
		Summary: strings.TrimSpace(front.Summary),
		Format:  strings.ToLower(strings.TrimSpace(front.Format)),
		Version: strings.TrimSpace(front.Version),
		SEO: SEO{
			Title:       strings.TrimSpace(front.SEO.Title),
			Description: strings.TrimSpace(front.SEO.Description),
		},
	}
	if page.Format == "" {
		page.Format = defaultFormat
	}
	if front.Banner != nil {
		page.Banner = &Banner{
			Variant: strings.TrimSpace(front.Banner.Variant),
			Title:   strings.TrimSpace(front.Banner.Title),
			Message: strings.TrimSpace(front.Banner.Message),
		}
	}
	page.UpdatedAt = parseDate(front.UpdatedAt)
	if page.UpdatedAt.IsZero() {
		if info, err := os.Stat(file); err == nil {
			page.UpdatedAt = info.ModTime()
		}
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}

	html, err := s.render(page.Format, body)
	if err != nil {
		return Page{}, fmt.Errorf("content: render %s: %w", file, err)
	}
	page.HTML = html
	return page, nil
}

// render converts the body to HTML and strips anything outside the UGC policy.
func (s *Store) render(format, body string) (string, error) {
	raw := []byte(body)
	if format != "html" {
		var buf bytes.Buffer
		if err := s.md.Convert(raw, &buf); err != nil {
			return "", err
		}
		raw = buf.Bytes()
	}
	return string(s.policy.SanitizeBytes(raw)), nil
}

func (s *Store) cached(key string) (Page, bool) {
	s.mu.RLock()
	entry, ok := s.items[key]
	s.mu.RUnlock()
	if !ok || s.now().After(entry.expires) {
		return Page{}, false
	}
	return clonePage(entry.page), true
}

func (s *Store) store(key string, page Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = cacheEntry{page: clonePage(page), expires: s.now().Add(s.ttl)}
}

func clonePage(src Page) Page {
	cp := src
	if src.Banner != nil {
		b := *src.Banner
		cp.Banner = &b
	}
	return cp
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if runes[0] >= 'a' && runes[0] <= 'z' {
			runes[0] -= 'a' - 'A'
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.Trim(strings.TrimSpace(strings.ToLower(slug)), "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}
