// Package static embeds the stylesheet and script served under /static/.
package static

import "embed"

//go:embed style.css site.js
var Files embed.FS
