package seo

import (
	"encoding/json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal organization schema. kind selects the schema.org type,
// e.g. "MusicSchool"; empty means "Organization".
func Organization(kind, name, url, logoURL string) map[string]any {
	if kind == "" {
		kind = "Organization"
	}
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    kind,
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url, description string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if description != "" {
		m["description"] = description
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// Offer is a priced plan inside an OfferCatalog.
type Offer struct {
	Name     string
	Price    string // decimal string in Currency, e.g. "30"
	Currency string // ISO 4217
}

// OfferCatalog returns a schema.org OfferCatalog listing monthly plans.
func OfferCatalog(name string, offers []Offer) map[string]any {
	items := make([]map[string]any, 0, len(offers))
	for _, o := range offers {
		items = append(items, map[string]any{
			"@type":         "Offer",
			"name":          o.Name,
			"price":         o.Price,
			"priceCurrency": o.Currency,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "OfferCatalog",
		"name":            name,
		"itemListElement": items,
	}
}

// Article returns a minimal Article schema payload. dateModified may be empty.
func Article(headline, url, authorName, dateModified string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Article",
		"headline": headline,
	}
	if url != "" {
		m["url"] = url
	}
	if authorName != "" {
		m["author"] = map[string]any{"@type": "Organization", "name": authorName}
	}
	if dateModified != "" {
		m["dateModified"] = dateModified
	}
	return m
}

