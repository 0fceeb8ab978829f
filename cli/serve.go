package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/castrosoft/portfolio/config"
	"github.com/castrosoft/portfolio/handlers"
	"github.com/castrosoft/portfolio/logging"
	"github.com/castrosoft/portfolio/storage"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger, err := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	c, catalog, err := loadSite(cfg)
	if err != nil {
		return err
	}
	for lang, projects := range c.Projects {
		logger.Info("loaded projects", "lang", lang, "count", len(projects))
	}

	visits, err := storage.NewVisitCounter(cfg.VisitsFile, logger)
	if err != nil {
		return fmt.Errorf("initialize visit counter: %w", err)
	}
	logger.Info("visit counter initialized", "visits", visits.Get())

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: handlers.NewRouter(handlers.Options{
			Content:       c,
			Catalog:       catalog,
			Visits:        visits,
			Logger:        logger,
			StaticDir:     cfg.StaticDir,
			SecureCookies: cfg.CookieSecure,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("server starting", "url", "http://localhost:"+cfg.Port)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		// Handlers may still be running; the last saved count stands.
		return fmt.Errorf("shutdown: %w", err)
	}
	return visits.Flush()
}
