// Package page builds the view models rendered by the web templates.
package page

import (
	"net/url"
	"strings"

	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/pricing"
	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/region"
)

// Query parameter names carrying the selection.
const (
	ParamCurrency = "currency"
	ParamRegion   = "region"
)

// Fragment endpoints the selects call when they change.
const (
	PricingFragmentURL = "/fragments/pricing"
	ContactFragmentURL = "/fragments/contact"
)

// Selection is the visitor's currency and region for one page view. It travels in the
// URL query and is passed to builders by value.
type Selection struct {
	Currency pricing.Code
	Region   region.Region
}

// DefaultSelection is what a visitor sees before choosing anything.
func DefaultSelection() Selection {
	return Selection{Currency: pricing.Reference, Region: region.Default}
}

// Rejected is a query value that did not match a table entry.
type Rejected struct {
	Param string
	Value string
}

// SelectionFromQuery parses the selection out of q. Missing values take the defaults
// silently; unknown values take the defaults and are returned for logging.
func SelectionFromQuery(q url.Values) (Selection, []Rejected) {
	sel := DefaultSelection()
	var rejected []Rejected

	if raw := strings.TrimSpace(q.Get(ParamCurrency)); raw != "" {
		if code, ok := pricing.ParseCode(raw); ok {
			sel.Currency = code
		} else {
			rejected = append(rejected, Rejected{Param: ParamCurrency, Value: raw})
		}
	}
	if raw := strings.TrimSpace(q.Get(ParamRegion)); raw != "" {
		if r, ok := region.Parse(raw); ok {
			sel.Region = r
		} else {
			rejected = append(rejected, Rejected{Param: ParamRegion, Value: raw})
		}
	}
	return sel, rejected
}

// Values encodes the selection as query parameters.
func (s Selection) Values() url.Values {
	return url.Values{
		ParamCurrency: {s.Currency.String()},
		ParamRegion:   {s.Region.String()},
	}
}

// URL returns path with the selection appended as its query,
// e.g. "/?currency=GBP&region=UK".
func (s Selection) URL(path string) string {
	if path == "" {
		path = "/"
	}
	return path + "?" + s.Values().Encode()
}

// Option is a <select> entry.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// CurrencyOptions lists every currency with the selected one flagged.
func (s Selection) CurrencyOptions() []Option {
	codes := pricing.Codes()
	out := make([]Option, 0, len(codes))
	for _, c := range codes {
		out = append(out, Option{Value: c.String(), Label: c.String(), Selected: c == s.Currency})
	}
	return out
}

// RegionOptions lists every region. long selects the full country label used by the
// trial form; otherwise the short code is shown, as in the header.
func (s Selection) RegionOptions(long bool) []Option {
	contacts := region.Contacts()
	out := make([]Option, 0, len(contacts))
	for _, c := range contacts {
		label := c.Region.String()
		if long {
			label = c.Label
		}
		out = append(out, Option{Value: c.Region.String(), Label: label, Selected: c.Region == s.Region})
	}
	return out
}
