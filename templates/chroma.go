package templates

import (
	"io"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/castrosoft/portfolio/theme"
)

var chromaStyles = map[theme.Theme]string{
	theme.Light: "github",
	theme.Dark:  "github-dark",
}

var chromaFormatter = chromahtml.New(chromahtml.WithClasses(true))

// ChromaCSS writes the code highlighting stylesheet for t.
func ChromaCSS(w io.Writer, t theme.Theme) error {
	return chromaFormatter.WriteCSS(w, styles.Get(chromaStyles[t.Resolve(theme.Light)]))
}
