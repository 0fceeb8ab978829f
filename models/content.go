package models

import (
	"fmt"
	"html/template"
	"io/fs"
	"slices"

	"github.com/castrosoft/portfolio/i18n"
)

// Content is everything the page shows that is not a UI label.
type Content struct {
	Site     Site
	About    map[i18n.Lang]template.HTML
	Projects map[i18n.Lang][]Project
}

// LoadContent reads a content set laid out as
//
//	site.toml
//	about.<lang>.md
//	projects/<lang>/<slug>.md
//
// Every language must describe the same projects.
func LoadContent(fsys fs.FS) (*Content, error) {
	site, err := LoadSite(fsys)
	if err != nil {
		return nil, err
	}

	c := &Content{
		Site:     site,
		About:    make(map[i18n.Lang]template.HTML),
		Projects: make(map[i18n.Lang][]Project),
	}

	for _, lang := range i18n.SupportedLanguages() {
		name := "about." + string(lang) + ".md"
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		about, _, err := renderMarkdown(src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		c.About[lang] = about

		projects, err := LoadProjects(fsys, "projects/"+string(lang))
		if err != nil {
			return nil, err
		}
		c.Projects[lang] = projects
	}

	if err := c.checkProjectsMatch(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Content) checkProjectsMatch() error {
	want := slugs(c.Projects[i18n.Default])
	for _, lang := range i18n.SupportedLanguages() {
		if got := slugs(c.Projects[lang]); !slices.Equal(got, want) {
			return fmt.Errorf("%w: projects/%s has %v, projects/%s has %v",
				ErrInvalidContent, lang, got, i18n.Default, want)
		}
	}
	return nil
}

func slugs(projects []Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Slug)
	}
	slices.Sort(out)
	return out
}
