package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleParity(t *testing.T) {
	for _, start := range SupportedLanguages() {
		lang := start
		for n := 1; n <= 6; n++ {
			lang = lang.Toggle()
			if n%2 == 0 {
				assert.Equal(t, start, lang, "after %d toggles", n)
			} else {
				assert.NotEqual(t, start, lang, "after %d toggles", n)
			}
		}
	}
}

func TestToggleFlips(t *testing.T) {
	assert.Equal(t, EN, ES.Toggle())
	assert.Equal(t, ES, EN.Toggle())
}

func TestParseLang(t *testing.T) {
	tests := []struct {
		in   string
		want Lang
		ok   bool
	}{
		{"es", ES, true},
		{"en", EN, true},
		{"en-US", EN, true},
		{"es-AR", ES, true},
		{" EN ", EN, true},
		{"pt", "", false},
		{"", "", false},
		{"not a tag!", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseLang(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseLang(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseLang(%q)", tt.in)
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, "Español", ES.Name())
	assert.Equal(t, "English", EN.Name())
	assert.Equal(t, ES, Default)
}
