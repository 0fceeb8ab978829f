package handlers

import (
	"log/slog"
	"net/http"

	"github.com/castrosoft/portfolio/i18n"
	"github.com/castrosoft/portfolio/logging"
	"github.com/castrosoft/portfolio/models"
	"github.com/castrosoft/portfolio/static"
	"github.com/castrosoft/portfolio/storage"
)

// Options wires the dependencies of every route.
type Options struct {
	Content       *models.Content
	Catalog       *i18n.Catalog
	Visits        *storage.VisitCounter
	Logger        *slog.Logger
	StaticDir     string
	SecureCookies bool
}

// NewRouter builds the site's HTTP handler.
func NewRouter(opts Options) http.Handler {
	mux := http.NewServeMux()

	home := &HomeHandler{
		Content:       opts.Content,
		Catalog:       opts.Catalog,
		Visits:        opts.Visits,
		Logger:        opts.Logger,
		SecureCookies: opts.SecureCookies,
	}

	resumes := &ResumeHandler{Dir: opts.StaticDir}
	for _, lang := range i18n.SupportedLanguages() {
		resumes.Paths = append(resumes.Paths, opts.Content.Site.ResumePath(lang))
	}

	// Anything that is not a route below: the page itself, a résumé, or 404.
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			home.ServeHTTP(w, r)
			return
		}
		resumes.ServeHTTP(w, r)
	})

	mux.Handle("POST /toggle/lang", &LangToggleHandler{SecureCookies: opts.SecureCookies})
	mux.Handle("POST /toggle/theme", &ThemeToggleHandler{SecureCookies: opts.SecureCookies})
	mux.Handle("GET /go/{section...}", &SectionHandler{})

	mux.Handle("GET /static/{file}", staticOrChroma(opts.Logger))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	return logging.Middleware(opts.Logger)(mux)
}

func staticOrChroma(logger *slog.Logger) http.Handler {
	chroma := &ChromaHandler{Logger: logger}
	assets := http.StripPrefix("/static", StaticHandler(static.Files))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.PathValue("file") {
		case "chroma-light.css", "chroma-dark.css":
			chroma.ServeHTTP(w, r)
		default:
			assets.ServeHTTP(w, r)
		}
	})
}
