package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/taskdeck/taskdeck-api/internal/api"
	apimiddleware "github.com/taskdeck/taskdeck-api/internal/api/middleware"
	"github.com/taskdeck/taskdeck-api/internal/config"
	"github.com/taskdeck/taskdeck-api/internal/events"
	"github.com/taskdeck/taskdeck-api/internal/job"
	"github.com/taskdeck/taskdeck-api/internal/live"
	"github.com/taskdeck/taskdeck-api/internal/mailer"
	"github.com/taskdeck/taskdeck-api/internal/platform/postgres"
	"github.com/taskdeck/taskdeck-api/internal/service/auth"
	"github.com/taskdeck/taskdeck-api/internal/service/tasks"
)

// readinessCheckInterval is how often the status monitor pings the database.
const readinessCheckInterval = 10 * time.Second

// mailQueueSize bounds pending notification jobs. The queue is lossy on
// overflow; notification mail is best-effort.
const mailQueueSize = 100

// application holds the wired dependencies for the server.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	db          *sql.DB
	monitor     *postgres.StatusMonitor
	hub         *live.Hub
	mailQueue   *job.Queue
	workers     *job.WorkerPool
	authService *auth.Service
	taskService *tasks.Service
}

// newApplication connects the database, runs migrations and wires every
// component together.
func newApplication(cfg *config.Config, log *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, log); err != nil {
		return nil, err
	}

	userStore := postgres.NewPostgresUserStore(db, log)
	taskStore := postgres.NewPostgresTaskStore(db, log)

	authService := auth.NewService(
		userStore,
		auth.NewBcryptHasher(),
		auth.NewBcryptVerifier(),
		log,
	)

	hub := live.NewHub(log)
	emitter := events.NewInMemoryEmitter(log)
	emitter.RegisterHandler(hub)

	mailQueue := job.NewQueue(mailQueueSize, log)
	workers := job.NewWorkerPool(mailQueue, job.DefaultWorkerPoolConfig(), log)

	var mailScheduler tasks.MailScheduler
	if cfg.SMTP.Enabled() {
		m := mailer.New(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Username,
			cfg.SMTP.Password,
			cfg.SMTP.Sender,
		)
		mailScheduler = mailer.NewScheduler(mailQueue, m, cfg.SMTP.AdminEmail, log)
	} else {
		log.Warn("mail transport not configured, recurring task notifications disabled")
	}

	taskService := tasks.NewService(taskStore, emitter, mailScheduler, log)

	return &application{
		config:      cfg,
		logger:      log,
		db:          db,
		monitor:     postgres.NewStatusMonitor(db, readinessCheckInterval, log),
		hub:         hub,
		mailQueue:   mailQueue,
		workers:     workers,
		authService: authService,
		taskService: taskService,
	}, nil
}

// setupDatabase establishes a connection to the database and configures
// the connection pool.
func setupDatabase(cfg *config.Config, log *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connection established")
	return db, nil
}

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := api.NewAuthHandler(app.authService, app.logger)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)

	// Liveness endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("Task API is running")); err != nil {
			app.logger.Error("failed to write liveness response", "error", err)
		}
	})

	// Live-update channel
	r.Get("/ws", live.ServeWS(app.hub))

	// API routes, gated on store readiness
	r.Route("/api", func(r chi.Router) {
		r.Use(apimiddleware.ReadinessGate(app.monitor))

		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)

		r.Get("/tasks", taskHandler.List)
		r.Get("/tasks/date/{date}", taskHandler.ListByDate)
		r.Get("/dashboard-summary", taskHandler.DashboardSummary)
		r.Post("/tasks", taskHandler.Create)
		r.Put("/tasks/{id}", taskHandler.Update)
		r.Delete("/tasks/{id}", taskHandler.Delete)
	})

	return r
}

// serve starts the background components and the HTTP server, then
// blocks until shutdown completes.
func (app *application) serve() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go app.monitor.Run(ctx)
	go app.hub.Run(ctx)
	app.workers.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.Server.Port),
		Handler: app.setupRouter(),
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	serverErrCh := make(chan error, 1)
	go func() {
		app.logger.Info("starting server", "port", app.config.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	select {
	case sig := <-shutdownCh:
		app.logger.Info("shutting down server", "signal", sig.String())
	case err := <-serverErrCh:
		app.logger.Error("server failed", "error", err)
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.cleanup(cancel)

	app.logger.Info("server shutdown completed")
	return nil
}

// cleanup stops background components and closes the database.
// The queue is closed before the workers stop so queued mail drains.
func (app *application) cleanup(cancel context.CancelFunc) {
	app.mailQueue.Close()
	app.workers.Stop()
	cancel()

	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database", "error", err)
	}
}
