package models

import (
	"bytes"
	"fmt"
	"html/template"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(
		meta.Meta,
		highlighting.NewHighlighting(
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // Use CSS classes instead of inline styles
				chromahtml.WithLineNumbers(false),
			),
		),
	),
)

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span", "div", "pre")
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// renderMarkdown converts src to sanitized HTML and returns its front matter.
func renderMarkdown(src []byte) (template.HTML, map[string]interface{}, error) {
	var buf bytes.Buffer
	context := parser.NewContext()

	if err := markdown.Convert(src, &buf, parser.WithContext(context)); err != nil {
		return "", nil, fmt.Errorf("convert markdown: %w", err)
	}

	metaData, err := meta.TryGet(context)
	if err != nil {
		return "", nil, fmt.Errorf("front matter: %w", err)
	}

	return template.HTML(policy.SanitizeBytes(buf.Bytes())), metaData, nil
}

func getStringMeta(data map[string]interface{}, key, defaultVal string) string {
	if val, ok := data[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return defaultVal
}
