package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/castrosoft/portfolio/i18n"
	"github.com/castrosoft/portfolio/models"
	"github.com/castrosoft/portfolio/storage"
	"github.com/castrosoft/portfolio/templates"
	"github.com/castrosoft/portfolio/theme"
)

// HomeHandler renders the portfolio page in the visitor's language and theme.
type HomeHandler struct {
	Content       *models.Content
	Catalog       *i18n.Catalog
	Visits        *storage.VisitCounter
	Logger        *slog.Logger
	SecureCookies bool
}

func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	lang, persist := i18n.ResolveRequest(r)
	if persist {
		i18n.SetCookie(w, lang, h.SecureCookies)
	}
	theme.AdvertiseHint(w)

	page := templates.NewPage(h.Content, h.Catalog, lang, theme.FromRequest(r))
	page.Visits = h.Visits.Increment()

	title := page.T.PageTitle + " - " + h.Content.Site.Name
	var buf bytes.Buffer
	component := templates.Base(title, page, templates.Home(page))
	if err := component.Render(r.Context(), &buf); err != nil {
		h.Logger.Error("render home", "lang", lang, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Add("Vary", "Cookie")
	_, _ = buf.WriteTo(w)
}
