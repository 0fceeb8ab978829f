// Package theme holds the visitor's light/dark preference.
package theme

import (
	"net/http"
	"strings"
	"time"
)

// Theme is a visual mode.
type Theme string

const (
	Light  Theme = "light"
	Dark   Theme = "dark"
	System Theme = "system"
)

const (
	// CookieName stores a manual theme choice.
	CookieName = "theme"
	// HintHeader is the client hint carrying the browser's color scheme.
	HintHeader = "Sec-CH-Prefers-Color-Scheme"
)

// Parse returns the theme named by s.
func Parse(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	case System:
		return System, true
	}
	return "", false
}

// Toggle flips light and dark. System is resolved with fallback first, so
// the result is always a concrete theme.
func (t Theme) Toggle(fallback Theme) Theme {
	if t.Resolve(fallback) == Dark {
		return Light
	}
	return Dark
}

// Resolve maps System to fallback, and fallback itself to Light when it is
// not concrete.
func (t Theme) Resolve(fallback Theme) Theme {
	switch t {
	case Light, Dark:
		return t
	}
	if fallback == Dark {
		return Dark
	}
	return Light
}

// Preference reads the stored choice, System when none was made.
func Preference(r *http.Request) Theme {
	if cookie, err := r.Cookie(CookieName); err == nil {
		if t, ok := Parse(cookie.Value); ok {
			return t
		}
	}
	return System
}

// SystemTheme reads the browser's color scheme from the client hint. The
// hint is a structured-header string, sent quoted ("dark").
func SystemTheme(r *http.Request) Theme {
	hint := strings.Trim(strings.TrimSpace(r.Header.Get(HintHeader)), `"`)
	if t, ok := Parse(hint); ok && t != System {
		return t
	}
	return Light
}

// FromRequest returns the concrete theme the page renders with.
func FromRequest(r *http.Request) Theme {
	return Preference(r).Resolve(SystemTheme(r))
}

// SetCookie persists a manual choice.
func SetCookie(w http.ResponseWriter, t Theme, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(t),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// AdvertiseHint asks the browser to send HintHeader on later requests.
func AdvertiseHint(w http.ResponseWriter) {
	w.Header().Set("Accept-CH", HintHeader)
	w.Header().Add("Vary", HintHeader)
}
