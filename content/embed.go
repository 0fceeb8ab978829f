// Package content embeds the content sets the page can be built from.
package content

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed personal placeholder
var files embed.FS

// Variants returns the names of the embedded content sets.
func Variants() []string {
	return []string{"personal", "placeholder"}
}

// Variant returns the embedded content set called name.
func Variant(name string) (fs.FS, error) {
	if _, err := fs.Stat(files, name+"/site.toml"); err != nil {
		return nil, fmt.Errorf("unknown content variant %q", name)
	}
	return fs.Sub(files, name)
}
