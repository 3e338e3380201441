// Package server is the composition root: it wires the database, the
// services, the handlers, and the router, and owns the HTTP server's
// lifecycle.
//
// DEPENDENCY FLOW:
//
//	main.go → config.Load() → server.New()
//	New() creates: sqlite.DB → stores → services → handlers → routes
//
// Each layer only receives what it needs: services get the repository
// interfaces (not the concrete sqlite types), handlers get the services.
// All wiring happens here, in one place.
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

	"github.com/sakif/formbot/internal/auth"
	"github.com/sakif/formbot/internal/config"
	"github.com/sakif/formbot/internal/handler"
	"github.com/sakif/formbot/internal/middleware"
	sqliteRepo "github.com/sakif/formbot/internal/repository/sqlite"
	"github.com/sakif/formbot/internal/service"
)

// Server owns the router and the database connection. The database is
// opened in New and closed when Start returns — explicit lifecycle, no
// package-level state.
type Server struct {
	router *chi.Mux
	config config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New creates a Server from the given config, assembling the whole
// dependency chain.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
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

	if err := s.setupRoutes(); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

// Handler exposes the fully wired router. Tests drive it through
// httptest without starting a real listener.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close releases the database. Only needed when Start is never called
// (tests); Start closes the database itself on the way out.
func (s *Server) Close() error {
	return s.db.Close()
}

// setupRoutes configures middleware, builds the handlers, and registers
// every route exactly once.
//
// ROUTE MAP:
//
//	POST   /signup                → create account, issue token
//	POST   /login                 → verify credentials, issue token
//	GET    /folders               → folders with forms populated   [bearer]
//	DELETE /folders/{id}          → delete folder                  [bearer]
//	GET    /username              → authenticated user's username  [bearer]
//	POST   /api/folders           → create folder
//	GET    /api/folders           → folders with form ID references
//	DELETE /api/folders/{id}      → delete folder
//	POST   /api/forms             → create form
//	GET    /api/forms/{folderID}  → forms in a folder
//	DELETE /api/forms/{id}        → delete form
//	GET    /api/globalForms       → list global forms
//	POST   /api/globalForms       → create global form
func (s *Server) setupRoutes() error {
	// Global middleware — runs on every request, in order.
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.config.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Auth plumbing.
	tokens, err := auth.NewTokenService(s.config.JWTSecret)
	if err != nil {
		return fmt.Errorf("creating token service: %w", err)
	}
	passwords := auth.NewPasswordService()

	// Services over the per-entity stores.
	authService := service.NewAuthService(s.db.Users(), tokens, passwords, s.logger)
	folderService := service.NewFolderService(s.db.Folders(), s.logger)
	formService := service.NewFormService(s.db.Forms(), s.logger)
	globalFormService := service.NewGlobalFormService(s.db.GlobalForms(), s.logger)

	// Handlers.
	authHandler := handler.NewAuthHandler(authService, s.logger)
	folderHandler := handler.NewFolderHandler(folderService, s.logger)
	formHandler := handler.NewFormHandler(formService, s.logger)
	globalFormHandler := handler.NewGlobalFormHandler(globalFormService, s.logger)

	// Public auth routes.
	s.router.Post("/signup", authHandler.HandleSignup)
	s.router.Post("/login", authHandler.HandleLogin)

	// Protected routes — bearer token required.
	s.router.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(tokens))
		r.Get("/folders", folderHandler.HandleListWithForms)
		r.Delete("/folders/{id}", folderHandler.HandleDelete)
		r.Get("/username", authHandler.HandleUsername)
	})

	// Public API routes. These predate the auth gate and the frontend
	// calls them without a token.
	s.router.Route("/api", func(r chi.Router) {
		r.Post("/folders", folderHandler.HandleCreate)
		r.Get("/folders", folderHandler.HandleList)
		r.Delete("/folders/{id}", folderHandler.HandleDelete)

		r.Post("/forms", formHandler.HandleCreate)
		r.Get("/forms/{folderID}", formHandler.HandleListByFolder)
		r.Delete("/forms/{id}", formHandler.HandleDelete)

		r.Get("/globalForms", globalFormHandler.HandleList)
		r.Post("/globalForms", globalFormHandler.HandleCreate)
	})

	return nil
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
