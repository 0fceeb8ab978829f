package handlers

import (
	"net/http"

	"github.com/castrosoft/portfolio/i18n"
	"github.com/castrosoft/portfolio/sections"
	"github.com/castrosoft/portfolio/theme"
)

// LangToggleHandler flips the visitor's language and sends them back to the page.
type LangToggleHandler struct {
	SecureCookies bool
}

func (h *LangToggleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	current, _ := i18n.ResolveRequest(r)
	i18n.SetCookie(w, current.Toggle(), h.SecureCookies)
	redirectHome(w, r)
}

// ThemeToggleHandler flips the visitor's theme between light and dark.
type ThemeToggleHandler struct {
	SecureCookies bool
}

func (h *ThemeToggleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	next := theme.Preference(r).Toggle(theme.SystemTheme(r))
	theme.SetCookie(w, next, h.SecureCookies)
	redirectHome(w, r)
}

// redirectHome returns to the page, at the section named by the "return"
// form value when it is a known one.
func redirectHome(w http.ResponseWriter, r *http.Request) {
	target := "/"
	if anchor, ok := sections.Navigate(r.FormValue("return")); ok {
		target += anchor.Href
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
