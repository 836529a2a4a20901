package page

import (
	"html/template"
	"strings"

	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/content"
	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/format"
	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/nav"
	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/seo"
)

// LegalData is the view model for a markdown-backed policy page.
type LegalData struct {
	Title     string
	Lang      string
	SEO       seo.Meta
	Analytics Analytics

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	Summary    string
	Body       template.HTML
	Updated    string
	UpdatedISO string
	Version    string
	Banner     *content.Banner
	Footer     FooterView
}

// BuildLegal wraps a content page in the shared layout. The body was sanitized by the
// content store and is trusted here. Footer contact follows sel like the landing page.
func BuildLegal(p content.Page, sel Selection, opts Options) LegalData {
	home := BuildHome(sel, opts)
	title := p.Title + " | " + SiteTitle
	if p.SEO.Title != "" {
		title = p.SEO.Title
	}
	desc := p.Summary
	if p.SEO.Description != "" {
		desc = p.SEO.Description
	}
	base := strings.TrimRight(opts.BaseURL, "/")
	canonical := base + opts.Path

	data := LegalData{
		Title:       p.Title,
		Lang:        home.Lang,
		Analytics:   opts.Analytics,
		Path:        opts.Path,
		Nav:         home.Nav,
		Breadcrumbs: nav.Breadcrumbs(opts.Path, map[string]string{"/legal": "Legal", opts.Path: p.Title}),
		Summary:     p.Summary,
		Body:        template.HTML(p.HTML),
		Updated:     format.Date(p.UpdatedAt),
		UpdatedISO:  format.ISODate(p.UpdatedAt),
		Version:     p.Version,
		Banner:      p.Banner,
		Footer:      home.Footer,
	}
	data.SEO = seo.Meta{
		Title:       title,
		Description: desc,
		Canonical:   canonical,
		OG: seo.OpenGraph{
			Title:       p.Title,
			Description: desc,
			Type:        "article",
			URL:         canonical,
			SiteName:    Brand,
		},
		Twitter: seo.Twitter{Card: "summary"},
	}
	crumbs := make([]seo.BreadcrumbItem, 0, len(data.Breadcrumbs))
	for _, c := range data.Breadcrumbs {
		crumbs = append(crumbs, seo.BreadcrumbItem{Name: c.Label, Item: base + c.Href})
	}
	data.SEO.JSONLD = []string{
		seo.JSON(seo.Article(p.Title, canonical, Brand, data.UpdatedISO)),
		seo.JSON(seo.BreadcrumbList(crumbs)),
	}
	return data
}
