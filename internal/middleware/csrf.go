package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"
)

const (
	csrfCookieName = "rols_csrf"
	csrfHeaderName = "X-CSRF-Token"
	csrfCookieTTL  = 24 * time.Hour

	// CSRFFormField is the hidden input carrying the token on plain form posts.
	CSRFFormField = "_csrf"
)

// CSRF keeps a per-session token mirrored in a readable cookie (double submit) and
// rejects unsafe requests whose token is missing or differs. htmx sends the token in
// the X-CSRF-Token header; the no-JS trial form posts it as _csrf.
func CSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionCSRFToken(r)
		if c, err := r.Cookie(csrfCookieName); err != nil || c.Value != token {
			http.SetCookie(w, &http.Cookie{
				Name:     csrfCookieName,
				Value:    token,
				Path:     "/",
				Secure:   sessionSecure,
				SameSite: http.SameSiteLaxMode,
				Expires:  time.Now().Add(csrfCookieTTL),
			})
		}
		if !isSafeMethod(r.Method) && !validCSRF(r, token) {
			writeError(w, r, http.StatusForbidden, "invalid CSRF token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CSRFToken returns the token templates embed for the current session.
func CSRFToken(r *http.Request) string {
	return GetSession(r).CSRFToken
}

func sessionCSRFToken(r *http.Request) string {
	s := GetSession(r)
	if s.CSRFToken == "" {
		s.CSRFToken = newCSRFToken()
		s.MarkDirty()
	}
	return s.CSRFToken
}

func newCSRFToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func validCSRF(r *http.Request, token string) bool {
	got := r.Header.Get(csrfHeaderName)
	if got == "" {
		got = r.PostFormValue(CSRFFormField)
	}
	if got == "" || !tokensEqual(got, token) {
		return false
	}
	c, err := r.Cookie(csrfCookieName)
	return err == nil && tokensEqual(c.Value, token)
}

func tokensEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func isSafeMethod(m string) bool {
	switch m {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}
