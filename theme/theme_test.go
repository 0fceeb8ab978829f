package theme

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleParity(t *testing.T) {
	for _, start := range []Theme{Light, Dark} {
		cur := start
		for n := 1; n <= 6; n++ {
			cur = cur.Toggle(Light)
			if n%2 == 0 {
				assert.Equal(t, start, cur, "after %d toggles", n)
			} else {
				assert.NotEqual(t, start, cur, "after %d toggles", n)
			}
		}
	}
}

func TestToggleFromSystem(t *testing.T) {
	assert.Equal(t, Dark, System.Toggle(Light))
	assert.Equal(t, Light, System.Toggle(Dark))

	// Once toggled, System never comes back.
	cur := System
	for range 4 {
		cur = cur.Toggle(Dark)
		assert.NotEqual(t, System, cur)
	}
	assert.Equal(t, Dark, cur)
}

func TestParse(t *testing.T) {
	got, ok := Parse(" Dark ")
	assert.True(t, ok)
	assert.Equal(t, Dark, got)

	_, ok = Parse("sepia")
	assert.False(t, ok)
}

func TestFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, System, Preference(req))
	assert.Equal(t, Light, FromRequest(req))

	req.Header.Set(HintHeader, `"dark"`)
	assert.Equal(t, Dark, FromRequest(req))

	req.AddCookie(&http.Cookie{Name: CookieName, Value: "light"})
	assert.Equal(t, Light, FromRequest(req))
}

func TestSetCookieAndHint(t *testing.T) {
	rec := httptest.NewRecorder()
	SetCookie(rec, Dark, false)
	AdvertiseHint(rec)

	cookies := rec.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, "dark", cookies[0].Value)
	}
	assert.Equal(t, HintHeader, rec.Header().Get("Accept-CH"))
}

func TestSystemThemeHint(t *testing.T) {
	tests := []struct {
		hint string
		want Theme
	}{
		{`"dark"`, Dark},
		{`"light"`, Light},
		{"dark", Dark},
		{` "dark" `, Dark},
		{`"system"`, Light},
		{`"sepia"`, Light},
		{"", Light},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.hint != "" {
			req.Header.Set(HintHeader, tt.hint)
		}
		assert.Equal(t, tt.want, SystemTheme(req), "hint %q", tt.hint)
	}
}
