// Package region maps a visitor's market to the contact details shown on the page.
package region

import (
	"errors"
	"fmt"
	"strings"
)

// Region is one of the markets the school serves.
type Region string

const (
	US  Region = "US"
	UK  Region = "UK"
	UAE Region = "UAE"
)

// Default is the region shown before the visitor picks one.
const Default = US

// ErrUnknownRegion is returned when a region outside the table is resolved.
var ErrUnknownRegion = errors.New("region: unknown region")

// Contact holds the phone line and WhatsApp deep link for a region.
type Contact struct {
	Region   Region
	Label    string // e.g. "United Kingdom"
	Phone    string // display form, e.g. "+44 20 1234 5678"
	WhatsApp string // https://wa.me/<digits>
}

var (
	order    = []Region{US, UK, UAE}
	contacts = map[Region]Contact{
		US:  {Region: US, Label: "United States", Phone: "+1 (555) 123‑4567", WhatsApp: whatsAppLink("15551234567")},
		UK:  {Region: UK, Label: "United Kingdom", Phone: "+44 20 1234 5678", WhatsApp: whatsAppLink("442012345678")},
		UAE: {Region: UAE, Label: "United Arab Emirates", Phone: "+971 50 123 4567", WhatsApp: whatsAppLink("971501234567")},
	}
)

func whatsAppLink(digits string) string { return "https://wa.me/" + digits }

// All returns every region in display order.
func All() []Region {
	out := make([]Region, len(order))
	copy(out, order)
	return out
}

// Contacts returns the contact record of every region in display order.
func Contacts() []Contact {
	out := make([]Contact, 0, len(order))
	for _, r := range order {
		out = append(out, contacts[r])
	}
	return out
}

// Parse normalizes raw request input. It reports false for values outside the table.
func Parse(raw string) (Region, bool) {
	r := Region(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := contacts[r]; !ok {
		return Default, false
	}
	return r, true
}

// Resolve returns the contact details for r.
func Resolve(r Region) (Contact, error) {
	c, ok := contacts[r]
	if !ok {
		return Contact{}, fmt.Errorf("%w: %q", ErrUnknownRegion, string(r))
	}
	return c, nil
}

// MustResolve is Resolve for callers whose input is already constrained to the table.
func MustResolve(r Region) Contact {
	c, err := Resolve(r)
	if err != nil {
		panic(err)
	}
	return c
}

// TelURI returns the dial link for the number as displayed, e.g. "tel:+44 20 1234 5678".
// Templates percent-encode it when it lands in an href.
func (c Contact) TelURI() string { return "tel:" + c.Phone }

func (r Region) String() string { return string(r) }
