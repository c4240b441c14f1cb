package main

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tasktracker/internal/config"
	"tasktracker/internal/handlers"
	"tasktracker/internal/models"
	"tasktracker/internal/seed"
	"tasktracker/internal/session"
	"tasktracker/internal/store"
)

//go:embed templates/*
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tasktracker",
	})

	// Configuration
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"), config.Default())
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		logger.Fatal("invalid environment override", "err", err)
	}
	logger.SetLevel(cfg.LogLevel())

	// Ensure data directory exists
	if err := cfg.EnsureDataDir(); err != nil {
		logger.Fatal("failed to create data directory", "err", err)
	}

	ctx := context.Background()

	// Initialize store
	s, err := store.NewSQLiteStore(ctx, cfg.Database.Path)
	if err != nil {
		logger.Fatal("failed to initialize store", "err", err)
	}
	defer s.Close()

	sess, err := session.Open(ctx, s, session.Options{
		Seed:     seedSource(cfg.Seed.Path),
		Defaults: models.Preferences{ShowCompleted: cfg.View.ShowCompleted},
		Logger:   logger,
	})
	if err != nil {
		logger.Fatal("failed to open session", "err", err)
	}

	// Parse templates
	tmpl, err := parseTemplates()
	if err != nil {
		logger.Fatal("failed to parse templates", "err", err)
	}

	// Initialize handlers
	h := handlers.New(sess, tmpl, logger)

	// Create router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// Static files
	staticSub, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	// Page routes
	r.Get("/", h.Home)
	r.Get("/healthz", h.Healthz)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/views", h.Views)
		r.Post("/moves", h.Move)
		r.Put("/filter", h.Filter)
		r.Put("/progress", h.Progress)
		r.Put("/show-completed", h.ShowCompleted)
	})

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("starting server", "url", "http://localhost"+addr, "db", cfg.Database.Path)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("server failed", "err", err)
	}
}

// seedSource returns the collection used to fill an empty store.
func seedSource(path string) func() (models.TaskCollection, error) {
	if path == "" {
		return func() (models.TaskCollection, error) { return seed.Default(), nil }
	}
	return func() (models.TaskCollection, error) { return seed.Load(path) }
}

func parseTemplates() (*template.Template, error) {
	// Custom template functions
	funcMap := template.FuncMap{
		"dict": func(values ...interface{}) map[string]interface{} {
			if len(values)%2 != 0 {
				return nil
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					continue
				}
				dict[key] = values[i+1]
			}
			return dict
		},
	}

	tmpl := template.New("").Funcs(funcMap)

	// Parse all templates
	patterns := []string{
		"templates/*.html",
		"templates/partials/*.html",
	}

	for _, pattern := range patterns {
		matches, err := fs.Glob(templatesFS, pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to glob pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			content, err := templatesFS.ReadFile(match)
			if err != nil {
				return nil, fmt.Errorf("failed to read template %s: %w", match, err)
			}

			name := filepath.Base(match)
			_, err = tmpl.New(name).Parse(string(content))
			if err != nil {
				return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
			}
		}
	}

	return tmpl, nil
}
