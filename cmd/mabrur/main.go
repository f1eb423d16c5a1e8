package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mabrur-erp/mabrur-erp/internal/app"
	"github.com/mabrur-erp/mabrur-erp/internal/auth"
	"github.com/mabrur-erp/mabrur-erp/internal/bookings"
	"github.com/mabrur-erp/mabrur-erp/internal/dashboard"
	"github.com/mabrur-erp/mabrur-erp/internal/inventory"
	"github.com/mabrur-erp/mabrur-erp/internal/ledger/accounts"
	"github.com/mabrur-erp/mabrur-erp/internal/ledger/transactions"
	"github.com/mabrur-erp/mabrur-erp/internal/masterdata/airlines"
	"github.com/mabrur-erp/mabrur-erp/internal/masterdata/banks"
	"github.com/mabrur-erp/mabrur-erp/internal/masterdata/facilities"
	"github.com/mabrur-erp/mabrur-erp/internal/masterdata/identity"
	"github.com/mabrur-erp/mabrur-erp/internal/masterdata/packagetypes"
	"github.com/mabrur-erp/mabrur-erp/internal/masterdata/partners"
	"github.com/mabrur-erp/mabrur-erp/internal/masterdata/pilgrims"
	"github.com/mabrur-erp/mabrur-erp/internal/masterdata/suppliers"
	"github.com/mabrur-erp/mabrur-erp/internal/masterdata/visitcities"
	"github.com/mabrur-erp/mabrur-erp/internal/packages"
	"github.com/mabrur-erp/mabrur-erp/internal/platform/cache"
	"github.com/mabrur-erp/mabrur-erp/internal/simulation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := pgxpool.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	tokenStore := auth.NewTokenStore(redisClient, cfg.TokenTTL)
	authService := auth.NewService(auth.NewRepository(dbpool), tokenStore)
	authHandler := auth.NewHandler(logger, authService)

	accountsService := accounts.NewService(accounts.NewRepository(dbpool))
	accountsHandler := accounts.NewHandler(logger, accountsService)

	transactionsService := transactions.NewService(transactions.NewRepository(dbpool))
	transactionsHandler := transactions.NewHandler(logger, transactionsService)

	bookingsService := bookings.NewService(bookings.NewRepository(dbpool))
	bookingsHandler := bookings.NewHandler(logger, bookingsService)

	pilgrimsHandler := pilgrims.NewHandler(logger, pilgrims.NewService(pilgrims.NewRepository(dbpool)))
	partnersHandler := partners.NewHandler(logger, partners.NewService(partners.NewRepository(dbpool)))
	suppliersHandler := suppliers.NewHandler(logger, suppliers.NewService(suppliers.NewRepository(dbpool)))
	banksHandler := banks.NewHandler(logger, banks.NewService(banks.NewRepository(dbpool)))
	airlinesHandler := airlines.NewHandler(logger, airlines.NewService(airlines.NewRepository(dbpool)))
	facilitiesHandler := facilities.NewHandler(logger, facilities.NewService(facilities.NewRepository(dbpool)))
	visitCitiesHandler := visitcities.NewHandler(logger, visitcities.NewService(visitcities.NewRepository(dbpool)))
	packageTypesHandler := packagetypes.NewHandler(logger, packagetypes.NewService(packagetypes.NewRepository(dbpool)))
	identityHandler := identity.NewHandler(logger, identity.NewService(identity.NewRepository(dbpool)))

	packagesHandler := packages.NewHandler(logger, packages.NewService(packages.NewRepository(dbpool)))
	inventoryHandler := inventory.NewHandler(logger, inventory.NewService(inventory.NewRepository(dbpool)))
	simulationHandler := simulation.NewHandler(logger, simulation.NewService(simulation.NewRepository(dbpool)))

	dashboardService := dashboard.NewService(logger, dashboard.NewRepository(dbpool), redisClient, cfg.DashboardCacheTTL)
	dashboardHandler := dashboard.NewHandler(logger, dashboardService)

	router := app.NewRouter(app.RouterParams{
		Logger:              logger,
		Config:              cfg,
		TokenStore:          tokenStore,
		AuthHandler:         authHandler,
		AccountsHandler:     accountsHandler,
		TransactionsHandler: transactionsHandler,
		BookingsHandler:     bookingsHandler,
		PilgrimsHandler:     pilgrimsHandler,
		PartnersHandler:     partnersHandler,
		SuppliersHandler:    suppliersHandler,
		BanksHandler:        banksHandler,
		AirlinesHandler:     airlinesHandler,
		FacilitiesHandler:   facilitiesHandler,
		VisitCitiesHandler:  visitCitiesHandler,
		PackageTypesHandler: packageTypesHandler,
		IdentityHandler:     identityHandler,
		PackagesHandler:     packagesHandler,
		InventoryHandler:    inventoryHandler,
		SimulationHandler:   simulationHandler,
		DashboardHandler:    dashboardHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
