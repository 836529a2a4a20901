// Package catalog holds the static copy rendered on the landing page.
package catalog

// Program is an instrument or subject offered by the school.
type Program struct {
	Name  string
	Blurb string
	Icon  string // emoji
}

// Feature is a "why us" value proposition.
type Feature struct {
	Title       string
	Description string
}

// Testimonial is a family quote. Rating is shown as a star marker only.
type Testimonial struct {
	Author string
	Quote  string
	Rating int
}

var programs = []Program{
	{Name: "Guitar", Blurb: "Acoustic & Electric • Trinity/LCM prep", Icon: "🎸"},
	{Name: "Piano/Keys", Blurb: "Classical & Contemporary • ABRSM/Trinity", Icon: "🎹"},
	{Name: "Voice", Blurb: "Vocal technique • Worship leading", Icon: "🎤"},
	{Name: "Drums", Blurb: "Groove, rudiments & styles", Icon: "🥁"},
	{Name: "Music Theory", Blurb: "Grades • Ear training • Notation", Icon: "🎼"},
}

var features = []Feature{
	{Title: "International Standards", Description: "Trinity/ABRSM pathways, structured progress and report cards."},
	{Title: "Faith + Excellence", Description: "Character‑building environment that encourages purpose and creativity."},
	{Title: "Global Schedules", Description: "US/UK/UAE time‑zones with weekend and evening slots."},
}

var testimonials = []Testimonial{
	{Author: "Ava, USA", Quote: "My son looks forward to every class—structured, fun, and faith-positive!", Rating: 5},
	{Author: "Daniel, UK", Quote: "Clear progress each month. The online recitals are brilliant.", Rating: 5},
	{Author: "Mariam, UAE", Quote: "Flexible timings and professional teachers. Highly recommend.", Rating: 5},
}

// Programs returns the program list in display order.
func Programs() []Program { return append([]Program(nil), programs...) }

// Features returns the value propositions in display order.
func Features() []Feature { return append([]Feature(nil), features...) }

// Testimonials returns the family quotes in display order.
func Testimonials() []Testimonial { return append([]Testimonial(nil), testimonials...) }

// Partners are the tools listed in the footer.
func Partners() []string { return []string{"Zoom", "Stripe", "PayPal", "Calendly"} }
