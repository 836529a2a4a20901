package main

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	mw "github.com/rolsplusschoolofmusic-a11y/rols-music/internal/middleware"
)

// templateSet holds the shared layouts, partials and fragments plus one clone per page
// with that page's "content" block parsed in.
type templateSet struct {
	shared *template.Template
	pages  map[string]*template.Template
}

var funcMap = template.FuncMap{
	"now":    time.Now,
	"dict":   dict,
	"tel":    telURL,
	"jsonld": func(s string) template.JS { return template.JS(s) },
}

// parseTemplates walks dir for .tmpl files. Files under pages/ become pages; everything
// else is shared. ParseGlob doesn't support **, hence the walk.
func parseTemplates(dir string) (*templateSet, error) {
	var shared, pages []string
	if err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".tmpl") {
			return nil
		}
		if filepath.Base(filepath.Dir(path)) == "pages" {
			pages = append(pages, path)
		} else {
			shared = append(shared, path)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("walk templates: %w", err)
	}
	if len(shared) == 0 {
		return nil, fmt.Errorf("no templates found under %s", dir)
	}

	root, err := template.New("_root").Funcs(funcMap).ParseFiles(shared...)
	if err != nil {
		return nil, err
	}
	set := &templateSet{shared: root, pages: make(map[string]*template.Template, len(pages))}
	for _, p := range pages {
		clone, err := root.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFiles(p); err != nil {
			return nil, err
		}
		set.pages[strings.TrimSuffix(filepath.Base(p), ".tmpl")] = clone
	}
	return set, nil
}

// templates returns the cached set, or a fresh parse in dev mode.
func (s *server) templates() (*templateSet, error) {
	if s.cfg.DevMode {
		return parseTemplates(s.cfg.TemplatesDir)
	}
	if s.tmpl == nil {
		return nil, errors.New("template not initialized")
	}
	return s.tmpl, nil
}

// renderPage executes the base layout for page name.
func (s *server) renderPage(w http.ResponseWriter, r *http.Request, name string, data any, status int) {
	set, err := s.templates()
	if err != nil {
		s.templateError(w, r, "template parse error", err)
		return
	}
	t, ok := set.pages[name]
	if !ok {
		s.templateError(w, r, "template exec error", fmt.Errorf("unknown page %q", name))
		return
	}
	s.execute(w, r, t, "base", data, status)
}

// renderTemplate executes a single shared template, typically an htmx fragment.
func (s *server) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any, status int) {
	set, err := s.templates()
	if err != nil {
		s.templateError(w, r, "template parse error", err)
		return
	}
	s.execute(w, r, set.shared, name, data, status)
}

func (s *server) execute(w http.ResponseWriter, r *http.Request, t *template.Template, name string, data any, status int) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		s.templateError(w, r, "template exec error", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *server) templateError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	mw.Log(r.Context()).Error(msg, zap.Error(err))
	http.Error(w, fmt.Sprintf("%s: %v", msg, err), http.StatusInternalServerError)
}

func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, errors.New("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}

// telURL marks a tel: URI as safe for href; html/template rewrites unknown schemes.
// Only dial characters are accepted; spaces and hyphens are percent-encoded on output.
func telURL(s string) template.URL {
	num, ok := strings.CutPrefix(s, "tel:+")
	if !ok || num == "" {
		return template.URL("#")
	}
	for _, c := range num {
		switch {
		case c >= '0' && c <= '9':
		case strings.ContainsRune(" ()-\u2011", c):
		default:
			return template.URL("#")
		}
	}
	return template.URL(s)
}
