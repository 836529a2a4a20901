package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Code identifies one of the display currencies offered on the pricing cards.
type Code string

const (
	USD Code = "USD"
	GBP Code = "GBP"
	AED Code = "AED"
)

// Reference is the currency base prices are authored in.
const Reference = USD

// Currency describes how an amount in the reference currency is shown to a visitor.
type Currency struct {
	Code   Code
	Symbol string          // prefix, e.g. "$" or "AED "
	Rate   decimal.Decimal // units of this currency per 1 USD
	Locale language.Tag    // og:locale
	Unit   currency.Unit
}

var (
	order = []Code{USD, GBP, AED}
	table = map[Code]Currency{
		USD: {
			Code:   USD,
			Symbol: "$",
			Rate:   decimal.NewFromInt(1),
			Locale: language.MustParse("en-US"),
			Unit:   currency.MustParseISO("USD"),
		},
		GBP: {
			Code:   GBP,
			Symbol: "£",
			Rate:   decimal.RequireFromString("0.78"),
			Locale: language.MustParse("en-GB"),
			Unit:   currency.MustParseISO("GBP"),
		},
		AED: {
			Code:   AED,
			Symbol: "AED ",
			Rate:   decimal.RequireFromString("3.67"),
			Locale: language.MustParse("en-AE"),
			Unit:   currency.MustParseISO("AED"),
		},
	}
)

// Codes returns the supported currency codes in display order.
func Codes() []Code {
	out := make([]Code, len(order))
	copy(out, order)
	return out
}

// Lookup returns the table entry for code.
func Lookup(code Code) (Currency, bool) {
	c, ok := table[code]
	return c, ok
}

// ParseCode normalizes raw request input into a supported Code.
// It reports false when the value is not one of the supported codes.
func ParseCode(raw string) (Code, bool) {
	code := Code(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := table[code]; !ok {
		return Reference, false
	}
	return code, true
}

// Convert renders amount (expressed in USD) in the given currency as "<symbol><integer>".
// Unknown codes are shown in USD. Whole units only: the converted value is rounded
// half away from zero to 0 decimal places.
func Convert(amount decimal.Decimal, code Code) string {
	c := resolve(code)
	return c.Symbol + c.amount(amount)
}

// Amount is Convert without the symbol, for machine-readable markup.
func Amount(amount decimal.Decimal, code Code) string {
	return resolve(code).amount(amount)
}

func resolve(code Code) Currency {
	if c, ok := table[code]; ok {
		return c
	}
	return table[Reference]
}

func (c Currency) amount(usd decimal.Decimal) string {
	return usd.Mul(c.Rate).StringFixed(0)
}

// ConvertWhole is Convert for whole-dollar base prices.
func ConvertWhole(usd int64, code Code) string {
	return Convert(decimal.NewFromInt(usd), code)
}

func (c Code) String() string { return string(c) }

// ISO returns the ISO 4217 code of c, or of USD for unknown codes.
func (c Code) ISO() string { return resolve(c).Unit.String() }

// OGLocale returns the Open Graph locale (e.g. "en_GB") paired with c.
func (c Code) OGLocale() string {
	return strings.ReplaceAll(resolve(c).Locale.String(), "-", "_")
}
