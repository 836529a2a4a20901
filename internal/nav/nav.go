package nav

import (
	"path"
	"strings"
)

// Item represents a top-level navigation entry. Anchor entries point at a section of the
// landing page ("#pricing"); path entries point at a separate page.
type Item struct {
	Href  string // e.g. "#programs" or "/legal/privacy"
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the landing page section navigation.
var Main = []Item{
	{Href: "#programs", Label: "Programs"},
	{Href: "#pricing", Label: "Pricing"},
	{Href: "#why", Label: "Why Us"},
	{Href: "#testimonials", Label: "Reviews"},
	{Href: "#trial", Label: "Free Trial"},
}

// Build renders navigation items for the page at currentPath. Section anchors are
// prefixed with "/" when rendered off the landing page so they link back to it.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		href := it.Href
		if strings.HasPrefix(href, "#") && currentPath != "/" {
			href = "/" + href
		}
		items = append(items, RenderedItem{
			Href:   href,
			Label:  it.Label,
			Active: isActive(it.Href, currentPath),
		})
	}
	return items
}

func isActive(itemHref, currentPath string) bool {
	if strings.HasPrefix(itemHref, "#") {
		// anchors are never "current"; the browser owns scroll position
		return false
	}
	if currentPath == itemHref {
		return true
	}
	return strings.HasPrefix(currentPath, itemHref+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path.
// Rules:
// - Always start with Home
// - Deeper segments use a prettified segment label unless labels supplies one
func Breadcrumbs(currentPath string, labels map[string]string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	if clean == "." {
		clean = "/"
	}
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	href := ""
	for i, seg := range parts {
		if seg == "" {
			continue
		}
		href = href + "/" + seg
		label := labels[href]
		if label == "" {
			label = titleFromSegment(seg)
		}
		crumbs = append(crumbs, Crumb{
			Href:   href,
			Label:  label,
			Active: i == len(parts)-1,
		})
	}
	return crumbs
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	r := []rune(s)
	r[0] = toUpper(r[0])
	return string(r)
}

func toUpper(r rune) rune {
	// ASCII only is sufficient for slugs here
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
