// Package api exposes the finance app over HTTP. Every endpoint answers with
// a {data, error} envelope; protected routes expect a Supabase bearer token.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/simpleproject-dev/finance-app/internal/auth"
	"github.com/simpleproject-dev/finance-app/internal/charts"
	"github.com/simpleproject-dev/finance-app/internal/config"
	"github.com/simpleproject-dev/finance-app/internal/log"
	"github.com/simpleproject-dev/finance-app/internal/prefs"
	"github.com/simpleproject-dev/finance-app/internal/service"
)

type Server struct {
	addr      string
	jwtSecret string
	log       *log.Logger

	auth         *auth.Service
	categories   *service.CategoryService
	sources      *service.SourceService
	transactions *service.TransactionService
	dashboard    *service.DashboardService
	prefs        *prefs.Store
	charts       *charts.Generator

	router chi.Router
}

type Services struct {
	Auth         *auth.Service
	Categories   *service.CategoryService
	Sources      *service.SourceService
	Transactions *service.TransactionService
	Dashboard    *service.DashboardService
	Prefs        *prefs.Store
	Charts       *charts.Generator
}

func NewServer(cfg *config.Config, logger *log.Logger, svc Services) *Server {
	s := &Server{
		addr:         ":" + cfg.Port,
		jwtSecret:    cfg.SupabaseJWTSecret,
		log:          logger,
		auth:         svc.Auth,
		categories:   svc.Categories,
		sources:      svc.Sources,
		transactions: svc.Transactions,
		dashboard:    svc.Dashboard,
		prefs:        svc.Prefs,
		charts:       svc.Charts,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.recoverer)
	r.Use(s.requestLogger)
	r.Use(s.cors)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeData(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/logout", s.handleLogout)
		r.Get("/auth/session", s.handleSession)

		r.Group(func(r chi.Router) {
			r.Use(s.authenticate)

			r.Get("/categories", s.handleListCategories)
			r.Post("/categories", s.handleCreateCategory)
			r.Get("/categories/{id}", s.handleGetCategory)
			r.Put("/categories/{id}", s.handleUpdateCategory)
			r.Delete("/categories/{id}", s.handleDeleteCategory)

			r.Get("/sources", s.handleListSources)
			r.Post("/sources", s.handleCreateSource)
			r.Get("/sources/{id}", s.handleGetSource)
			r.Put("/sources/{id}", s.handleUpdateSource)
			r.Delete("/sources/{id}", s.handleDeleteSource)

			r.Get("/transactions", s.handleListTransactions)
			r.Post("/transactions", s.handleCreateTransaction)
			r.Get("/transactions/{id}", s.handleGetTransaction)
			r.Put("/transactions/{id}", s.handleUpdateTransaction)
			r.Delete("/transactions/{id}", s.handleDeleteTransaction)

			r.Get("/summary", s.handleSummary)
			r.Get("/dashboard", s.handleDashboard)
			r.Get("/reports", s.handleReports)
			r.Get("/reports/export", s.handleExport)

			r.Get("/charts/categories.png", s.handleCategoryChart)
			r.Get("/charts/sources.png", s.handleSourceChart)
			r.Get("/charts/monthly.png", s.handleMonthlyChart)

			r.Get("/preferences", s.handleGetPreferences)
			r.Put("/preferences", s.handlePutPreferences)
		})
	})

	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
