// Package templates renders the portfolio page as templ components.
package templates

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

//go:embed html/*.html
var htmlFS embed.FS

var partials = template.Must(template.New("").ParseFS(htmlFS, "html/*.html"))

func partial(name string, data any) templ.Component {
	return templ.FromGoHTML(partials.Lookup(name), data)
}

// Header renders the fixed header: brand, navigation, toggles and CV link.
func Header(p Page) templ.Component { return partial("header.html", p) }

// Hero renders the full-viewport introduction.
func Hero(p Page) templ.Component { return partial("hero.html", p) }

// About renders the #about section.
func About(p Page) templ.Component { return partial("about.html", p) }

// Projects renders the #projects card grid.
func Projects(p Page) templ.Component { return partial("projects.html", p) }

// Contact renders the #contact form. The form has no submit target.
func Contact(p Page) templ.Component { return partial("contact.html", p) }

// Footer renders the copyright line and footer links.
func Footer(p Page) templ.Component { return partial("footer.html", p) }

// Home is the single page body.
func Home(p Page) templ.Component {
	return templ.Join(Header(p), Hero(p), About(p), Projects(p), Contact(p))
}

const docHead = `<!DOCTYPE html>
<html lang="%[1]s" class="%[2]s" data-theme="%[2]s">
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>%[3]s</title>
	<link rel="stylesheet" href="/static/style.css">
	<link rel="stylesheet" href="/static/chroma-%[2]s.css" id="chroma-css">
	<script src="/static/site.js" defer></script>
</head>
<body>
	<div class="page">
`

const docTail = `	</div>
</body>
</html>
`

// Base wraps body in the document shell and appends the footer.
func Base(title string, p Page, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, docHead,
			templ.EscapeString(string(p.Lang)),
			templ.EscapeString(string(p.Theme)),
			templ.EscapeString(title),
		)
		if err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		if err := Footer(p).Render(ctx, w); err != nil {
			return err
		}
		_, err = io.WriteString(w, docTail)
		return err
	})
}
