package page

import "github.com/rolsplusschoolofmusic-a11y/rols-music/internal/region"

// TrialResult is rendered in place of the trial form's status area after a submission.
type TrialResult struct {
	OK        bool
	Reference string
	Message   string
	Phone     string
	TelURI    string
	WhatsApp  string
}

// BuildTrialResult reports the outcome of a submission. Failures point the visitor at
// the region's WhatsApp and phone line so the enquiry is not lost.
func BuildTrialResult(r region.Region, reference string, ok bool) TrialResult {
	c := region.MustResolve(r)
	res := TrialResult{
		OK:        ok,
		Reference: reference,
		Phone:     c.Phone,
		TelURI:    c.TelURI(),
		WhatsApp:  c.WhatsApp,
	}
	if ok {
		res.Message = "Thanks! Our team will reach out on WhatsApp and email to schedule your free trial."
	} else {
		res.Message = "We couldn't send your request just now. Please try again, or message us on WhatsApp."
	}
	return res
}
