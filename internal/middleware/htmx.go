package middleware

import (
	"net/http"
)

// HTMX flags requests issued by htmx and marks every response as varying on the
// HX-Request header, since the same URL may answer with a fragment or a full page.
// History restores ask for the full page and are not treated as htmx requests.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "HX-Request")
		is := r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-History-Restore-Request") != "true"
		next.ServeHTTP(w, r.WithContext(WithHTMX(r.Context(), is)))
	})
}
