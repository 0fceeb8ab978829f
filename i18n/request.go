package i18n

import (
	"net/http"
	"time"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "lang"
)

// ResolveRequest determines the language for the request: query parameter,
// then cookie, then Default. Accept-Language is not consulted, so a first
// visit always renders in Default.
// The bool reports whether the query parameter chose the language and should
// be persisted as a cookie.
func ResolveRequest(r *http.Request) (Lang, bool) {
	if r == nil {
		return Default, false
	}

	if lang, ok := ParseLang(r.URL.Query().Get(LangParam)); ok {
		return lang, true
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if lang, ok := ParseLang(cookie.Value); ok {
			return lang, false
		}
	}

	return Default, false
}

// SetCookie persists the selected language on the response.
func SetCookie(w http.ResponseWriter, lang Lang, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    string(lang),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
