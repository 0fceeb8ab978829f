package i18n

import (
	"reflect"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryKeyTranslated(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	for _, lang := range SupportedLanguages() {
		tr := c.Get(lang)
		v := reflect.ValueOf(tr)
		for i := range v.NumField() {
			assert.NotEmpty(t, v.Field(i).String(), "%s: %s", lang, v.Type().Field(i).Name)
		}
	}
}

func TestGetByLanguage(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Sobre mí", c.Get(ES).NavAbout)
	assert.Equal(t, "About", c.Get(EN).NavAbout)
	assert.Equal(t, "Download CV", c.Get(EN).DownloadCV)
	assert.Equal(t, c.Get(ES), c.Get(Lang("pt")))
}

func TestKeysAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range Keys() {
		require.NotEmpty(t, k)
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
}

func TestLoadRejectsIncompleteLocale(t *testing.T) {
	es, err := localeFS.ReadFile("locales/active.es.toml")
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"locales/active.es.toml": {Data: es},
		"locales/active.en.toml": {Data: []byte("about = \"About\"\nprojects = \"\"\n")},
	}
	_, err = LoadFS(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "en is missing messages")
	assert.Contains(t, err.Error(), "projects")
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{})
	assert.Error(t, err)
}
