package export

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castrosoft/portfolio/content"
	"github.com/castrosoft/portfolio/i18n"
	"github.com/castrosoft/portfolio/models"
	"github.com/castrosoft/portfolio/theme"
)

func TestWrite(t *testing.T) {
	fsys, err := content.Variant("personal")
	require.NoError(t, err)
	c, err := models.LoadContent(fsys)
	require.NoError(t, err)
	catalog, err := i18n.Load()
	require.NoError(t, err)

	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "CV-Castro-Pedro-EN.pdf"), []byte("pdf"), 0o644))

	out := t.TempDir()
	err = Write(context.Background(), c, catalog, Options{
		Out:       out,
		Theme:     theme.Dark,
		StaticDir: src,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	es, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(es), `lang="es" class="dark"`)
	assert.Contains(t, string(es), `href="/en/"`)
	assert.Contains(t, string(es), "data-theme-toggle")

	en, err := os.ReadFile(filepath.Join(out, "en", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(en), `href="/CV-Castro-Pedro-EN.pdf"`)
	assert.Contains(t, string(en), `href="/"`)

	for _, name := range []string{"style.css", "site.js", "chroma-light.css", "chroma-dark.css"} {
		assert.FileExists(t, filepath.Join(out, "static", name))
	}
	assert.FileExists(t, filepath.Join(out, "CV-Castro-Pedro-EN.pdf"))
	assert.NoFileExists(t, filepath.Join(out, "CV-Castro-Pedro-SP.pdf"))
}

func TestPagePath(t *testing.T) {
	assert.Equal(t, "/", PagePath(i18n.ES))
	assert.Equal(t, "/en/", PagePath(i18n.EN))
}
