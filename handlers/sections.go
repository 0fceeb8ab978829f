package handlers

import (
	"net/http"

	"github.com/castrosoft/portfolio/sections"
)

// SectionHandler redirects /go/{section} to the section's anchor. Anything
// else under /go/, nested or empty, answers 204 so the browser stays where it is.
type SectionHandler struct{}

func (h *SectionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	anchor, ok := sections.Navigate(r.PathValue("section"))
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/"+anchor.Href, http.StatusSeeOther)
}
