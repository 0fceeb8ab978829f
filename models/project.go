package models

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/url"
	"path"
	"sort"
	"strings"
	"time"
)

// MonthLayout is the date format used in project front matter ("02.2024").
const MonthLayout = "01.2006"

// Project is one card in the projects grid.
type Project struct {
	Slug        string
	Title       string
	Role        string
	Start       time.Time
	End         time.Time // zero while ongoing
	Link        string
	Description template.HTML
}

// Ongoing reports whether the project has no end date.
func (p Project) Ongoing() bool {
	return p.End.IsZero()
}

// DateRange formats the project period, using present for an open end.
func (p Project) DateRange(present string) string {
	end := present
	if !p.Ongoing() {
		end = p.End.Format(MonthLayout)
	}
	return p.Start.Format(MonthLayout) + " - " + end
}

// LoadProjects reads every markdown file in dir, newest first.
func LoadProjects(fsys fs.FS, dir string) ([]Project, error) {
	var projects []Project

	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(p, ".md") {
			return nil
		}

		project, err := parseProject(fsys, p)
		if err != nil {
			return err
		}

		projects = append(projects, project)
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Sort by start date (newest first), slug breaks ties
	sort.Slice(projects, func(i, j int) bool {
		if projects[i].Start.Equal(projects[j].Start) {
			return projects[i].Slug < projects[j].Slug
		}
		return projects[i].Start.After(projects[j].Start)
	})

	return projects, nil
}

func parseProject(fsys fs.FS, p string) (Project, error) {
	content, err := fs.ReadFile(fsys, p)
	if err != nil {
		return Project{}, err
	}

	body, metaData, err := renderMarkdown(content)
	if err != nil {
		return Project{}, fmt.Errorf("%s: %w", p, err)
	}

	project := Project{
		Slug:        strings.TrimSuffix(path.Base(p), ".md"),
		Title:       getStringMeta(metaData, "title", ""),
		Role:        getStringMeta(metaData, "role", ""),
		Link:        getStringMeta(metaData, "link", ""),
		Description: body,
	}

	if project.Title == "" {
		return Project{}, fmt.Errorf("%w: %s: title is required", ErrInvalidContent, p)
	}
	if err := checkLink(project.Link); err != nil {
		return Project{}, fmt.Errorf("%w: %s: %v", ErrInvalidContent, p, err)
	}

	project.Start, err = getMonthMeta(metaData, "start")
	if err != nil || project.Start.IsZero() {
		return Project{}, fmt.Errorf("%w: %s: start must be a %s date", ErrInvalidContent, p, MonthLayout)
	}
	project.End, err = getMonthMeta(metaData, "end")
	if err != nil {
		return Project{}, fmt.Errorf("%w: %s: end: %v", ErrInvalidContent, p, err)
	}
	if !project.Ongoing() && project.End.Before(project.Start) {
		return Project{}, fmt.Errorf("%w: %s: end is before start", ErrInvalidContent, p)
	}

	return project, nil
}

// getMonthMeta returns the zero time when key is absent or empty.
func getMonthMeta(data map[string]interface{}, key string) (time.Time, error) {
	str := getStringMeta(data, key, "")
	if str == "" {
		return time.Time{}, nil
	}
	return time.Parse(MonthLayout, str)
}

func checkLink(link string) error {
	if link == "" {
		return fmt.Errorf("link is required")
	}
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("link: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("link %q must be an absolute http(s) URL", link)
	}
	return nil
}
