package handlers

import (
	"bytes"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/castrosoft/portfolio/templates"
	"github.com/castrosoft/portfolio/theme"
)

// ChromaHandler serves /static/chroma-{theme}.css.
type ChromaHandler struct {
	Logger *slog.Logger
}

func (h *ChromaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(strings.TrimPrefix(r.PathValue("file"), "chroma-"), ".css")
	t, ok := theme.Parse(name)
	if !ok || t == theme.System {
		http.NotFound(w, r)
		return
	}

	var buf bytes.Buffer
	if err := templates.ChromaCSS(&buf, t); err != nil {
		h.Logger.Error("render chroma css", "theme", t, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = buf.WriteTo(w)
}

// ResumeHandler serves the résumé files named in site.toml from Dir.
type ResumeHandler struct {
	Dir   string
	Paths []string
}

func (h *ResumeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	for _, p := range h.Paths {
		if r.URL.Path == p {
			name := strings.TrimPrefix(path.Clean(p), "/")
			if _, err := fs.Stat(os.DirFS(h.Dir), name); err != nil {
				http.NotFound(w, r)
				return
			}
			http.ServeFileFS(w, r, os.DirFS(h.Dir), name)
			return
		}
	}
	http.NotFound(w, r)
}

// StaticHandler serves embedded assets without directory listings.
func StaticHandler(files fs.FS) http.Handler {
	fileServer := http.FileServerFS(files)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}
