package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/roi-survey/cliparse"
	"github.com/danielhkuo/roi-survey/metrics"
	"github.com/danielhkuo/roi-survey/middleware"
	"github.com/danielhkuo/roi-survey/repository"
	"github.com/danielhkuo/roi-survey/router"
	"github.com/danielhkuo/roi-survey/schema"
	"github.com/danielhkuo/roi-survey/session"
	"github.com/danielhkuo/roi-survey/storage"
)

func main() {
	var err error

	// Load .env if present; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not read .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Questionnaire definition
	questions := schema.Default()
	if cfg.SchemaPath != "" {
		questions, err = schema.LoadFile(cfg.SchemaPath)
		if err != nil {
			slog.Error("schema load failed", "path", cfg.SchemaPath, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("Questionnaire ready", "steps", questions.Len())

	// Storage backend
	var store storage.Store
	if cfg.DatabaseType == storage.TypeMemory {
		store = storage.NewMemoryStore()
		slog.Warn("using in-memory storage, surveys will not survive a restart")
	} else {
		dbConn, err := storage.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		// Create schema (tables)
		if err := storage.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
		store = storage.NewSQLStore(dbConn)
	}

	collector := metrics.New()
	repo := repository.New(store, cfg.StorageKey, repository.WithObserver(collector))
	sess := session.New(questions, repo, session.WithObserver(collector))

	// Create router
	mux := router.NewRouter(router.Deps{
		Schema:  questions,
		Repo:    repo,
		Session: sess,
		Metrics: collector,
	})

	// Create server
	server := http.Server{
		Handler: middleware.CORS(middleware.WithMetrics(collector, mux)),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		if sess.HasUnsavedChanges() {
			slog.Warn("shutting down with unsaved survey changes")
		}
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
