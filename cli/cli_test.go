package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "site: Pedro Castro")
	assert.Contains(t, out, "es: 4 projects, résumé /CV-Castro-Pedro-SP.pdf")
	assert.Contains(t, out, "en: 4 projects, résumé /CV-Castro-Pedro-EN.pdf")
}

func TestCheckPlaceholder(t *testing.T) {
	out, err := run(t, "check", "--variant", "placeholder")
	require.NoError(t, err)
	assert.Contains(t, out, "en: 2 projects")
}

func TestCheckBadContentDir(t *testing.T) {
	_, err := run(t, "check", "--content-dir", t.TempDir())
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	t.Setenv("STATIC_DIR", t.TempDir())
	out := filepath.Join(t.TempDir(), "site")

	_, err := run(t, "export", "--out", out, "--theme", "dark")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "en", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `class="dark"`)
}

func TestExportRejectsSystemTheme(t *testing.T) {
	_, err := run(t, "export", "--theme", "system")
	assert.ErrorContains(t, err, "--theme")
}
