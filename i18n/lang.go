package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang represents a supported language
type Lang string

const (
	ES Lang = "es"
	EN Lang = "en"
)

// Default is the language served before a visitor picks one.
const Default = ES

// SupportedLanguages returns all supported languages
func SupportedLanguages() []Lang {
	return []Lang{ES, EN}
}

// Toggle returns the other language (for language switcher)
func (l Lang) Toggle() Lang {
	if l == EN {
		return ES
	}
	return EN
}

// Tag returns the BCP 47 tag for the language.
func (l Lang) Tag() language.Tag {
	if l == EN {
		return language.English
	}
	return language.Spanish
}

// Name returns the display name for a language
func (l Lang) Name() string {
	switch l {
	case EN:
		return "English"
	default:
		return "Español"
	}
}

// Code returns the short code shown on the language toggle.
func (l Lang) Code() string {
	return strings.ToUpper(string(l))
}

// ParseLang accepts "es", "en" or any tag whose base language is one of them
// ("en-US", "es-AR").
func ParseLang(s string) (Lang, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "es":
		return ES, true
	case "en":
		return EN, true
	}
	return "", false
}
