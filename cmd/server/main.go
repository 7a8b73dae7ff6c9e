package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/supabase-go"

	"github.com/simpleproject-dev/finance-app/internal/api"
	"github.com/simpleproject-dev/finance-app/internal/auth"
	"github.com/simpleproject-dev/finance-app/internal/charts"
	"github.com/simpleproject-dev/finance-app/internal/config"
	"github.com/simpleproject-dev/finance-app/internal/log"
	"github.com/simpleproject-dev/finance-app/internal/prefs"
	"github.com/simpleproject-dev/finance-app/internal/repository"
	"github.com/simpleproject-dev/finance-app/internal/service"
)

func main() {
	logger := log.New("server")
	cfg := config.Load()

	var (
		repo       repository.Repository
		authClient gotrue.Client
	)
	if cfg.Configured() {
		client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, &supabase.ClientOptions{})
		if err != nil {
			logger.Error("failed to create supabase client", "error", err)
			os.Exit(1)
		}
		cached, err := repository.NewCachedRepository(repository.NewSupabaseRepository(client))
		if err != nil {
			logger.Error("failed to initialize cache", "error", err)
			os.Exit(1)
		}
		repo = cached
		authClient = client.Auth
	} else {
		logger.Warn("supabase credentials missing, storage and auth are disabled")
		repo = repository.NewDisabledRepository()
	}

	authService := auth.NewService(authClient)
	transactions := service.NewTransactionService(repo, logger.WithComponent("transactions"))

	server := api.NewServer(cfg, logger.WithComponent("http"), api.Services{
		Auth:         authService,
		Categories:   service.NewCategoryService(repo),
		Sources:      service.NewSourceService(repo),
		Transactions: transactions,
		Dashboard:    service.NewDashboardService(repo, transactions, logger.WithComponent("dashboard")),
		Prefs:        prefs.NewStore(cfg.PrefsFile),
		Charts:       charts.NewGenerator(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
