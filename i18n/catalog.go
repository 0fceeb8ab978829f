package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"reflect"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
)

//go:embed locales/active.*.toml
var localeFS embed.FS

// Translations holds all translated strings for a language. The msg tag is
// the message ID in the locale files.
type Translations struct {
	// Navigation
	NavAbout    string `msg:"about"`
	NavProjects string `msg:"projects"`
	NavContact  string `msg:"contact"`
	DownloadCV  string `msg:"downloadCV"`

	// Projects
	ViewProject string `msg:"viewProject"`
	Present     string `msg:"present"`

	// Contact form
	YourName    string `msg:"yourName"`
	YourEmail   string `msg:"yourEmail"`
	YourMessage string `msg:"yourMessage"`
	SendMessage string `msg:"sendMessage"`

	// Footer
	AllRightsReserved string `msg:"allRightsReserved"`
	TermsOfService    string `msg:"termsOfService"`
	PrivacyPolicy     string `msg:"privacyPolicy"`
	Visits            string `msg:"visits"`

	// Controls
	ToggleTheme    string `msg:"toggleTheme"`
	ToggleLanguage string `msg:"toggleLanguage"`

	PageTitle string `msg:"pageTitle"`
}

// Catalog is the immutable translation table, one Translations per language.
type Catalog struct {
	bundle *goi18n.Bundle
	byLang map[Lang]Translations
}

// Load builds the catalog from the locale files embedded in the binary.
func Load() (*Catalog, error) {
	return LoadFS(localeFS)
}

// LoadFS builds the catalog from locales/active.<lang>.toml files in fsys.
// It fails if any message is missing or empty for any supported language.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	bundle := goi18n.NewBundle(Default.Tag())
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, lang := range SupportedLanguages() {
		path := "locales/active." + string(lang) + ".toml"
		file, err := bundle.LoadMessageFileFS(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", path, err)
		}
		if err := checkComplete(lang, file.Messages); err != nil {
			return nil, err
		}
	}

	c := &Catalog{bundle: bundle, byLang: make(map[Lang]Translations)}
	for _, lang := range SupportedLanguages() {
		t, err := c.localize(lang)
		if err != nil {
			return nil, err
		}
		c.byLang[lang] = t
	}
	return c, nil
}

// Get returns the translations for the given language
func (c *Catalog) Get(lang Lang) Translations {
	if t, ok := c.byLang[lang]; ok {
		return t
	}
	return c.byLang[Default]
}

// Keys returns every message ID the page uses.
func Keys() []string {
	typ := reflect.TypeOf(Translations{})
	keys := make([]string, 0, typ.NumField())
	for i := range typ.NumField() {
		keys = append(keys, typ.Field(i).Tag.Get("msg"))
	}
	return keys
}

func (c *Catalog) localize(lang Lang) (Translations, error) {
	localizer := goi18n.NewLocalizer(c.bundle, lang.Tag().String())

	var t Translations
	v := reflect.ValueOf(&t).Elem()
	typ := v.Type()
	for i := range typ.NumField() {
		id := typ.Field(i).Tag.Get("msg")
		msg, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
		if err != nil {
			return Translations{}, fmt.Errorf("i18n: localize %s/%s: %w", lang, id, err)
		}
		v.Field(i).SetString(msg)
	}
	return t, nil
}

func checkComplete(lang Lang, messages []*goi18n.Message) error {
	defined := make(map[string]string, len(messages))
	for _, m := range messages {
		defined[m.ID] = m.Other
	}

	var missing []string
	for _, key := range Keys() {
		if strings.TrimSpace(defined[key]) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("i18n: %s is missing messages: %s", lang, strings.Join(missing, ", "))
	}
	return nil
}
