package pricing

import "github.com/shopspring/decimal"

// Tier is a monthly plan shown as a pricing card.
type Tier struct {
	Key       string
	Name      string
	BaseUSD   int64
	Period    string
	Perks     []string
	Highlight bool
	Badge     string
}

var tiers = []Tier{
	{
		Key:     "group",
		Name:    "Group Class",
		BaseUSD: 39,
		Period:  "/mo",
		Perks: []string{
			"4 live sessions / month",
			"Small cohorts (≤6)",
			"Practice tracks + feedback",
		},
	},
	{
		Key:     "standard",
		Name:    "1:1 Standard",
		BaseUSD: 89,
		Period:  "/mo",
		Perks: []string{
			"4 private lessons / month",
			"Personalized plan + reports",
			"Exam prep (optional)",
		},
		Highlight: true,
		Badge:     "Most Popular",
	},
	{
		Key:     "premium",
		Name:    "1:1 Premium",
		BaseUSD: 129,
		Period:  "/mo",
		Perks: []string{
			"8 private lessons / month",
			"Jury + recital access",
			"Priority scheduling",
		},
	},
}

// Tiers returns a copy of the plan table.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	for i, t := range tiers {
		t.Perks = append([]string(nil), t.Perks...)
		out[i] = t
	}
	return out
}

// Price renders the tier's monthly amount in code.
func (t Tier) Price(code Code) string {
	return ConvertWhole(t.BaseUSD, code)
}

// Amount renders the tier's monthly amount in code without the symbol.
func (t Tier) Amount(code Code) string {
	return Amount(decimal.NewFromInt(t.BaseUSD), code)
}
