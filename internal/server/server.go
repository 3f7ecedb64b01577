// Package server wires the application together: database, services,
// handlers, middleware and routes. It is the composition root — every
// dependency is constructed here and injected downward, so nothing in the
// lower layers reaches for global state.
package server

import (
	"context"
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

	"github.com/sakif/notes-backend/internal/auth"
	"github.com/sakif/notes-backend/internal/handler"
	"github.com/sakif/notes-backend/internal/middleware"
	sqliteRepo "github.com/sakif/notes-backend/internal/repository/sqlite"
	"github.com/sakif/notes-backend/internal/service"
)

// Config holds server configuration, loaded from the environment in main.
type Config struct {
	Port   int
	DBPath string
}

// Server owns the router and the database connection. The connection is
// opened once in New and closed during graceful shutdown.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New opens the database, builds the dependency chain and registers all
// routes. A store that can't be reached fails construction — the server
// never starts without its database.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}
	s.setupRoutes()

	return s, nil
}

// setupRoutes registers middleware and the route table.
//
// Middleware order matters: request ID and real IP first so the logger sees
// them, Recoverer turns panics into 500s, then our structured request log,
// then CORS so even error responses carry the headers browsers need.
func (s *Server) setupRoutes() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	// Permissive cross-origin policy — the API is served to browser
	// clients on other origins and every route is open by design.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// Dependency chain: DB → repositories → services → handlers.
	// Handlers never see the repositories; services never see HTTP.
	passwords := auth.NewPasswordService()
	userService := service.NewUserService(s.db.Users(), passwords, s.logger)
	noteService := service.NewNoteService(s.db.Notes(), s.logger)

	userHandler := handler.NewUserHandler(userService, s.logger)
	noteHandler := handler.NewNoteHandler(noteService, s.logger)

	s.router.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/signup", userHandler.HandleSignUp)
			r.Post("/login", userHandler.HandleLogin)
			r.Get("/getProfile", userHandler.HandleGetProfile)
			r.Put("/updateProfile", userHandler.HandleUpdateProfile)
		})
		r.Route("/notes", func(r chi.Router) {
			r.Post("/addNotes", noteHandler.HandleAdd)
			r.Get("/getNotes", noteHandler.HandleList)
			r.Put("/updateNotes", noteHandler.HandleUpdate)
			r.Delete("/deleteNotes", noteHandler.HandleDelete)
		})
	})
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, give in-flight requests 30
// seconds, close the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
