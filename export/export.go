// Package export writes the portfolio as plain files for static hosting.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/castrosoft/portfolio/i18n"
	"github.com/castrosoft/portfolio/models"
	"github.com/castrosoft/portfolio/static"
	"github.com/castrosoft/portfolio/templates"
	"github.com/castrosoft/portfolio/theme"
)

// Options controls a static build.
type Options struct {
	Out       string
	Theme     theme.Theme
	StaticDir string // résumé files are copied from here when present
	Logger    *slog.Logger
}

// PagePath is where the page for lang lives in a static build.
func PagePath(lang i18n.Lang) string {
	if lang == i18n.Default {
		return "/"
	}
	return "/" + string(lang) + "/"
}

// Write renders one page per language plus the assets they link to.
func Write(ctx context.Context, c *models.Content, catalog *i18n.Catalog, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	th := opts.Theme.Resolve(theme.Light)

	for _, lang := range i18n.SupportedLanguages() {
		page := templates.NewPage(c, catalog, lang, th)
		page.Static = true
		page.LangHref = PagePath(lang.Toggle())

		var buf bytes.Buffer
		title := page.T.PageTitle + " - " + c.Site.Name
		if err := templates.Base(title, page, templates.Home(page)).Render(ctx, &buf); err != nil {
			return fmt.Errorf("render %s: %w", lang, err)
		}
		name := filepath.Join(opts.Out, filepath.FromSlash(PagePath(lang)), "index.html")
		if err := writeFile(name, buf.Bytes()); err != nil {
			return err
		}
		opts.Logger.Info("wrote page", "lang", lang, "path", name)
	}

	if err := writeAssets(opts.Out); err != nil {
		return err
	}
	return copyResumes(c.Site, opts)
}

func writeAssets(out string) error {
	err := fs.WalkDir(static.Files, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(static.Files, p)
		if err != nil {
			return err
		}
		return writeFile(filepath.Join(out, "static", filepath.FromSlash(p)), data)
	})
	if err != nil {
		return fmt.Errorf("write assets: %w", err)
	}

	for _, t := range []theme.Theme{theme.Light, theme.Dark} {
		var buf bytes.Buffer
		if err := templates.ChromaCSS(&buf, t); err != nil {
			return err
		}
		if err := writeFile(filepath.Join(out, "static", "chroma-"+string(t)+".css"), buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// copyResumes skips missing files; the build is still usable without them.
func copyResumes(site models.Site, opts Options) error {
	if opts.StaticDir == "" {
		return nil
	}
	for _, lang := range i18n.SupportedLanguages() {
		rel := filepath.FromSlash(strings.TrimPrefix(site.ResumePath(lang), "/"))
		data, err := os.ReadFile(filepath.Join(opts.StaticDir, rel))
		if errors.Is(err, fs.ErrNotExist) {
			opts.Logger.Warn("résumé not found, skipping", "lang", lang, "file", rel)
			continue
		}
		if err != nil {
			return err
		}
		if err := writeFile(filepath.Join(opts.Out, rel), data); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return err
	}
	return os.WriteFile(name, data, 0o644)
}
