package format

import (
	"strings"
	"time"
)

// Date formats t for body copy, e.g. "Mar 1, 2025". Zero times render empty.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// ISODate formats t for machine-readable attributes (<time datetime>, JSON-LD).
func ISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

// Initials returns up to two upper-case initials of a display name, used for
// testimonial avatars. "Ava, USA" => "A"; "Mary Jane" => "MJ".
func Initials(name string) string {
	if i := strings.Index(name, ","); i >= 0 {
		name = name[:i]
	}
	var out []rune
	for _, f := range strings.Fields(name) {
		r := []rune(f)
		out = append(out, toUpper(r[0]))
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
