package page

import (
	"strings"
	"time"

	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/catalog"
	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/format"
	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/middleware"
	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/nav"
	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/pricing"
	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/region"
	"github.com/rolsplusschoolofmusic-a11y/rols-music/internal/seo"
)

const (
	// SiteTitle is the document title used by the layout.
	SiteTitle = "ROL's School of Music"
	// Brand is the wordmark shown in the header and footer.
	Brand = "ROL’s+ School of Music"
	// Tagline doubles as the meta description.
	Tagline = "Learn Music. Anytime. Anywhere."
)

// Options carries request-scoped inputs that are not part of the selection.
type Options struct {
	BaseURL   string // absolute origin for canonical and Open Graph URLs, no trailing slash
	Path      string
	Now       time.Time
	Analytics Analytics
	CSRFToken string

	// TrialResult is shown in the form's status area, e.g. after a no-JS post.
	TrialResult *TrialResult
}

// HomeData is the view model for the landing page and its fragments.
type HomeData struct {
	Title     string
	Lang      string
	SEO       seo.Meta
	Analytics Analytics

	Path string
	Nav  []nav.RenderedItem

	Selection Selection
	Controls  ControlsView
	Hero      HeroView

	Programs     []catalog.Program
	Features     []catalog.Feature
	Testimonials []TestimonialView
	Pricing      PricingView
	Contact      ContactView
	Trial        TrialView
	Footer       FooterView
}

// ControlsView drives the header selects. The form works without JavaScript as a plain
// GET to "/"; with htmx each select asks its fragment endpoint instead.
type ControlsView struct {
	Action     string
	Currencies []Option
	Regions    []Option
	PricingURL string
	ContactURL string
}

// HeroView is the static hero copy.
type HeroView struct {
	Lead     string
	Emphasis string
	Trail    string
	Intro    string
	Badges   []string
	TrustTag string
}

// TestimonialView adds avatar initials and a star row to a catalog testimonial.
type TestimonialView struct {
	catalog.Testimonial
	Initials string
	Stars    string
}

// PricingView is the pricing section, re-rendered by the pricing fragment.
type PricingView struct {
	Currency   string
	Region     string // carried by the no-JS form
	Currencies []Option
	Tiers      []PricedTier
	// FragmentURL is requested when the section's own currency select changes.
	FragmentURL string
}

// PricedTier is a pricing card with its price already converted.
type PricedTier struct {
	Key       string
	Name      string
	Price     string // e.g. "£30"
	Period    string
	Perks     []string
	Highlight bool
	Badge     string
}

// ContactView carries the selected region's contact points.
type ContactView struct {
	Region   string
	Label    string
	Phone    string // display form
	TelURI   string
	WhatsApp string
}

// TrialView is the lead capture form.
type TrialView struct {
	Action     string
	CSRFField  string
	CSRFToken  string
	Currency   string
	Regions    []Option
	ContactURL string
	Result     *TrialResult
}

// FooterView is the site footer.
type FooterView struct {
	Brand    string
	Year     int
	Partners []string
	Phone    string
	TelURI   string
	Legal    []nav.Item
}

// LegalLinks are the policy pages linked from the footer and the trial form.
var LegalLinks = []nav.Item{
	{Href: "/legal/privacy", Label: "Privacy"},
	{Href: "/legal/terms", Label: "Terms"},
}

// BuildHome composes the landing page for sel. Prices come from pricing.Convert and
// contact details from region.Resolve; both are total over a parsed selection.
func BuildHome(sel Selection, opts Options) HomeData {
	if opts.Path == "" {
		opts.Path = "/"
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	contact := region.MustResolve(sel.Region)

	data := HomeData{
		Title:     SiteTitle,
		Lang:      "en",
		Analytics: opts.Analytics,
		Path:      opts.Path,
		Nav:       nav.Build(opts.Path),
		Selection: sel,
		Controls: ControlsView{
			Action:     "/",
			Currencies: sel.CurrencyOptions(),
			Regions:    sel.RegionOptions(false),
			PricingURL: PricingFragmentURL,
			ContactURL: ContactFragmentURL,
		},
		Hero: HeroView{
			Lead:     "Learn Music.",
			Emphasis: "Anytime",
			Trail:    ". Anywhere.",
			Intro: "Live 1‑to‑1 and group lessons for Guitar, Piano, Voice, Drums & Theory. " +
				"International syllabi, flexible timings, and uplifting faith-forward culture.",
			Badges:   []string{"Safe, moderated classes", "Flexible time zones"},
			TrustTag: "Trusted by families in US • UK • UAE",
		},
		Programs:     catalog.Programs(),
		Features:     catalog.Features(),
		Testimonials: buildTestimonials(catalog.Testimonials()),
		Pricing:      BuildPricing(sel),
		Contact:      buildContact(contact),
		Trial: TrialView{
			Action:     "/trial",
			CSRFField:  middleware.CSRFFormField,
			CSRFToken:  opts.CSRFToken,
			Currency:   sel.Currency.String(),
			Regions:    sel.RegionOptions(true),
			ContactURL: ContactFragmentURL,
			Result:     opts.TrialResult,
		},
		Footer: FooterView{
			Brand:    Brand,
			Year:     opts.Now.Year(),
			Partners: catalog.Partners(),
			Phone:    contact.Phone,
			TelURI:   contact.TelURI(),
			Legal:    LegalLinks,
		},
	}
	data.SEO = homeSEO(sel, opts.BaseURL)
	return data
}

// BuildPricing prices every tier in the selected currency.
func BuildPricing(sel Selection) PricingView {
	tiers := pricing.Tiers()
	out := make([]PricedTier, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, PricedTier{
			Key:       t.Key,
			Name:      t.Name,
			Price:     t.Price(sel.Currency),
			Period:    t.Period,
			Perks:     t.Perks,
			Highlight: t.Highlight,
			Badge:     t.Badge,
		})
	}
	return PricingView{
		Currency:    sel.Currency.String(),
		Region:      sel.Region.String(),
		Currencies:  sel.CurrencyOptions(),
		Tiers:       out,
		FragmentURL: PricingFragmentURL,
	}
}

func buildContact(c region.Contact) ContactView {
	return ContactView{
		Region:   c.Region.String(),
		Label:    c.Label,
		Phone:    c.Phone,
		TelURI:   c.TelURI(),
		WhatsApp: c.WhatsApp,
	}
}

func buildTestimonials(in []catalog.Testimonial) []TestimonialView {
	out := make([]TestimonialView, 0, len(in))
	for _, t := range in {
		n := t.Rating
		if n < 0 {
			n = 0
		}
		if n > 5 {
			n = 5
		}
		out = append(out, TestimonialView{
			Testimonial: t,
			Initials:    format.Initials(t.Author),
			Stars:       strings.Repeat("★", n),
		})
	}
	return out
}

func homeSEO(sel Selection, baseURL string) seo.Meta {
	base := strings.TrimRight(baseURL, "/")
	canonical := base + "/"
	m := seo.Meta{
		Title:       SiteTitle,
		Description: Tagline,
		Canonical:   canonical,
		OG: seo.OpenGraph{
			Title:       SiteTitle,
			Description: Tagline,
			Type:        "website",
			URL:         canonical,
			SiteName:    Brand,
			Image:       base + "/assets/img/logo.svg",
			Locale:      sel.Currency.OGLocale(),
		},
		Twitter: seo.Twitter{Card: "summary", Image: base + "/assets/img/logo.svg"},
	}

	tiers := pricing.Tiers()
	offers := make([]seo.Offer, 0, len(tiers))
	for _, t := range tiers {
		offers = append(offers, seo.Offer{
			Name:     t.Name,
			Price:    t.Amount(sel.Currency),
			Currency: sel.Currency.ISO(),
		})
	}
	m.JSONLD = []string{
		seo.JSON(seo.Organization("MusicSchool", Brand, canonical, base+"/assets/img/logo.svg")),
		seo.JSON(seo.WebSite(SiteTitle, canonical, Tagline)),
		seo.JSON(seo.OfferCatalog("Monthly lesson plans", offers)),
	}
	return m
}
