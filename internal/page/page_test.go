package page

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/content"
	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/pricing"
	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/region"
)

func TestSelectionFromQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		want     Selection
		rejected []Rejected
	}{
		{name: "empty", query: "", want: DefaultSelection()},
		{name: "valid", query: "currency=gbp&region=uk", want: Selection{Currency: pricing.GBP, Region: region.UK}},
		{name: "padded", query: "currency=+AED+&region=UAE", want: Selection{Currency: pricing.AED, Region: region.UAE}},
		{
			name:     "unknown currency",
			query:    "currency=XYZ&region=UK",
			want:     Selection{Currency: pricing.USD, Region: region.UK},
			rejected: []Rejected{{Param: ParamCurrency, Value: "XYZ"}},
		},
		{
			name:  "both unknown",
			query: "currency=EUR&region=FR",
			want:  DefaultSelection(),
			rejected: []Rejected{
				{Param: ParamCurrency, Value: "EUR"},
				{Param: ParamRegion, Value: "FR"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			got, rejected := SelectionFromQuery(q)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.rejected, rejected)
		})
	}
}

func TestSelectionURL(t *testing.T) {
	sel := Selection{Currency: pricing.GBP, Region: region.UK}
	require.Equal(t, "/?currency=GBP&region=UK", sel.URL("/"))
	require.Equal(t, "/?currency=GBP&region=UK", sel.URL(""))

	back, rejected := SelectionFromQuery(sel.Values())
	require.Empty(t, rejected)
	require.Equal(t, sel, back)
}

func TestOptionsFlagSelection(t *testing.T) {
	sel := Selection{Currency: pricing.AED, Region: region.UAE}

	var selected []string
	for _, o := range sel.CurrencyOptions() {
		if o.Selected {
			selected = append(selected, o.Value)
		}
	}
	require.Equal(t, []string{"AED"}, selected)

	long := sel.RegionOptions(true)
	require.Len(t, long, 3)
	require.Equal(t, "United Arab Emirates", long[2].Label)
	require.True(t, long[2].Selected)
	require.Equal(t, "US", sel.RegionOptions(false)[0].Label)
}

func TestBuildHomePricesFollowCurrency(t *testing.T) {
	cases := map[pricing.Code][]string{
		pricing.USD: {"$39", "$89", "$129"},
		pricing.GBP: {"£30", "£69", "£101"},
		pricing.AED: {"AED 143", "AED 327", "AED 473"},
	}
	for code, want := range cases {
		data := BuildHome(Selection{Currency: code, Region: region.US}, Options{})
		got := make([]string, 0, len(data.Pricing.Tiers))
		for _, tier := range data.Pricing.Tiers {
			got = append(got, tier.Price)
		}
		require.Equal(t, want, got, code)
		require.Equal(t, code.String(), data.Trial.Currency)
	}
}

func TestBuildHomeContactFollowsRegion(t *testing.T) {
	data := BuildHome(Selection{Currency: pricing.USD, Region: region.UK}, Options{})
	require.Equal(t, "+44 20 1234 5678", data.Contact.Phone)
	require.Equal(t, "tel:+44 20 1234 5678", data.Contact.TelURI)
	require.Equal(t, "https://wa.me/442012345678", data.Contact.WhatsApp)
	require.Equal(t, data.Contact.Phone, data.Footer.Phone)
	require.Equal(t, data.Contact.TelURI, data.Footer.TelURI)
}

func TestBuildHomeStaticSections(t *testing.T) {
	now := time.Date(2031, 6, 1, 0, 0, 0, 0, time.UTC)
	data := BuildHome(DefaultSelection(), Options{
		BaseURL:     "https://rols.example/",
		Now:         now,
		CSRFToken:   "tok",
		TrialResult: &TrialResult{OK: true},
	})

	require.Equal(t, SiteTitle, data.Title)
	require.Equal(t, "en", data.Lang)
	require.Len(t, data.Programs, 5)
	require.Len(t, data.Features, 3)
	require.Len(t, data.Testimonials, 3)
	require.Equal(t, "★★★★★", data.Testimonials[0].Stars)
	require.Equal(t, "A", data.Testimonials[0].Initials)
	require.Len(t, data.Nav, 5)
	require.Equal(t, 2031, data.Footer.Year)
	require.Equal(t, []string{"Zoom", "Stripe", "PayPal", "Calendly"}, data.Footer.Partners)
	require.Equal(t, "tok", data.Trial.CSRFToken)
	require.Equal(t, "_csrf", data.Trial.CSRFField)
	require.True(t, data.Trial.Result.OK)

	require.Equal(t, "https://rols.example/", data.SEO.Canonical)
	require.Equal(t, Tagline, data.SEO.Description)
	require.Len(t, data.SEO.JSONLD, 3)
	require.Contains(t, data.SEO.JSONLD[0], `"@type":"MusicSchool"`)
	require.Contains(t, data.SEO.JSONLD[2], `"priceCurrency":"USD"`)
}

func TestBuildHomeOfferCatalogUsesSelectedCurrency(t *testing.T) {
	data := BuildHome(Selection{Currency: pricing.GBP, Region: region.US}, Options{})
	offers := data.SEO.JSONLD[2]
	require.Contains(t, offers, `"price":"30"`)
	require.Contains(t, offers, `"priceCurrency":"GBP"`)
	require.NotContains(t, offers, "£")
	require.Equal(t, "en_GB", data.SEO.OG.Locale)
}

func TestBuildLegal(t *testing.T) {
	p := content.Page{
		Kind:      "legal",
		Slug:      "privacy",
		Title:     "Privacy Policy",
		Summary:   "How we handle your details.",
		HTML:      "<h2>Data</h2><p>We never share your details.</p>",
		UpdatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Version:   "1.0",
	}
	data := BuildLegal(p, Selection{Currency: pricing.USD, Region: region.UAE}, Options{
		BaseURL: "https://rols.example",
		Path:    "/legal/privacy",
	})

	require.Equal(t, "Privacy Policy | "+SiteTitle, data.SEO.Title)
	require.Equal(t, "https://rols.example/legal/privacy", data.SEO.Canonical)
	require.Equal(t, "Mar 1, 2025", data.Updated)
	require.Equal(t, "2025-03-01", data.UpdatedISO)
	require.True(t, strings.Contains(string(data.Body), "never share"))
	require.Equal(t, "+971 50 123 4567", data.Footer.Phone)

	require.Len(t, data.Breadcrumbs, 3)
	require.Equal(t, "Legal", data.Breadcrumbs[1].Label)
	require.Equal(t, "Privacy Policy", data.Breadcrumbs[2].Label)
	require.True(t, data.Breadcrumbs[2].Active)
	// anchors link back to the landing page
	require.Equal(t, "/#pricing", data.Nav[1].Href)
	require.Contains(t, data.SEO.JSONLD[1], `"item":"https://rols.example/legal/privacy"`)
}

func TestBuildTrialResult(t *testing.T) {
	ok := BuildTrialResult(region.UK, "ref-1", true)
	require.True(t, ok.OK)
	require.Equal(t, "ref-1", ok.Reference)
	require.Contains(t, ok.Message, "Thanks")

	failed := BuildTrialResult(region.UAE, "", false)
	require.False(t, failed.OK)
	require.Equal(t, "https://wa.me/971501234567", failed.WhatsApp)
	require.Equal(t, "tel:+971 50 123 4567", failed.TelURI)
}

func TestAnalyticsEnabled(t *testing.T) {
	require.False(t, Analytics{Debug: true}.Enabled())
	require.True(t, Analytics{GA4MeasurementID: "G-1"}.Enabled())
	require.True(t, Analytics{GTMContainerID: "GTM-1"}.Enabled())
}
