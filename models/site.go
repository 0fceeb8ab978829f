package models

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/castrosoft/portfolio/i18n"
)

// ErrInvalidContent marks content files that fail validation.
var ErrInvalidContent = errors.New("invalid content")

// Site holds the owner's details shown in the header, hero and footer.
type Site struct {
	Name     string            `toml:"name"`
	Brand    string            `toml:"brand"`
	Year     int               `toml:"year"`
	GitHub   string            `toml:"github"`
	LinkedIn string            `toml:"linkedin"`
	Role     map[string]string `toml:"role"`
	Resume   map[string]string `toml:"resume"`
}

// RoleFor returns the role line for lang.
func (s Site) RoleFor(lang i18n.Lang) string {
	return s.Role[string(lang)]
}

// ResumePath returns the résumé file for lang.
func (s Site) ResumePath(lang i18n.Lang) string {
	return s.Resume[string(lang)]
}

// LoadSite parses site.toml from fsys.
func LoadSite(fsys fs.FS) (Site, error) {
	data, err := fs.ReadFile(fsys, "site.toml")
	if err != nil {
		return Site{}, err
	}

	var site Site
	if err := toml.Unmarshal(data, &site); err != nil {
		return Site{}, fmt.Errorf("site.toml: %w", err)
	}

	if err := site.validate(); err != nil {
		return Site{}, err
	}
	return site, nil
}

func (s *Site) validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: site.toml: name is required", ErrInvalidContent)
	}
	if s.Brand == "" {
		s.Brand = strings.ToUpper(s.Name)
	}
	if s.Year == 0 {
		s.Year = time.Now().Year()
	}
	if s.Year < 0 {
		return fmt.Errorf("%w: site.toml: year must be positive", ErrInvalidContent)
	}
	for _, link := range []string{s.GitHub, s.LinkedIn} {
		if err := checkLink(link); err != nil {
			return fmt.Errorf("%w: site.toml: %v", ErrInvalidContent, err)
		}
	}
	for _, lang := range i18n.SupportedLanguages() {
		if s.RoleFor(lang) == "" {
			return fmt.Errorf("%w: site.toml: role.%s is required", ErrInvalidContent, lang)
		}
		if p := s.ResumePath(lang); !strings.HasPrefix(p, "/") {
			return fmt.Errorf("%w: site.toml: resume.%s must be an absolute path", ErrInvalidContent, lang)
		}
	}
	return nil
}
