package templates

import (
	"html/template"

	"github.com/castrosoft/portfolio/i18n"
	"github.com/castrosoft/portfolio/models"
	"github.com/castrosoft/portfolio/sections"
	"github.com/castrosoft/portfolio/theme"
)

// Page is the view model every partial renders from.
type Page struct {
	Lang      i18n.Lang
	OtherLang i18n.Lang
	Theme     theme.Theme
	T         i18n.Translations
	Site      models.Site
	Role      string
	About     template.HTML
	Projects  []Card
	Nav       []NavItem
	Resume    string
	Visits    int64

	// Static pages have no server behind them: the language toggle links to
	// the other page and the theme toggle runs in the browser.
	Static   bool
	LangHref string
}

// Card is one project in the grid.
type Card struct {
	Title       string
	Role        string
	Dates       string
	Link        string
	Description template.HTML
}

// NavItem is one header navigation link.
type NavItem struct {
	Section string
	Label   string
	Href    string
}

// NewPage maps content and translations for lang into a view model.
func NewPage(c *models.Content, catalog *i18n.Catalog, lang i18n.Lang, th theme.Theme) Page {
	t := catalog.Get(lang)

	projects := c.Projects[lang]
	cards := make([]Card, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, Card{
			Title:       p.Title,
			Role:        p.Role,
			Dates:       p.DateRange(t.Present),
			Link:        p.Link,
			Description: p.Description,
		})
	}

	return Page{
		Lang:      lang,
		OtherLang: lang.Toggle(),
		Theme:     th,
		T:         t,
		Site:      c.Site,
		Role:      c.Site.RoleFor(lang),
		About:     c.About[lang],
		Projects:  cards,
		Nav:       navItems(t),
		Resume:    c.Site.ResumePath(lang),
	}
}

func navItems(t i18n.Translations) []NavItem {
	labels := map[sections.ID]string{
		sections.About:    t.NavAbout,
		sections.Projects: t.NavProjects,
		sections.Contact:  t.NavContact,
	}

	items := make([]NavItem, 0, len(labels))
	for _, id := range sections.All() {
		anchor, _ := sections.Navigate(string(id))
		items = append(items, NavItem{
			Section: string(id),
			Label:   labels[id],
			Href:    anchor.Href,
		})
	}
	return items
}
