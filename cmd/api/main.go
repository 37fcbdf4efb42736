package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/nujoom-retail/pos-backend/internal/config"
	"github.com/nujoom-retail/pos-backend/internal/kvstore"
	"github.com/nujoom-retail/pos-backend/internal/metrics"
	"github.com/nujoom-retail/pos-backend/internal/modules/auth"
	"github.com/nujoom-retail/pos-backend/internal/modules/backup"
	"github.com/nujoom-retail/pos-backend/internal/modules/cart"
	"github.com/nujoom-retail/pos-backend/internal/modules/catalog"
	"github.com/nujoom-retail/pos-backend/internal/modules/invoice"
	"github.com/nujoom-retail/pos-backend/internal/modules/ledger"
	"github.com/nujoom-retail/pos-backend/internal/modules/report"
	"github.com/nujoom-retail/pos-backend/internal/modules/settings"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.Load()

	// Local storage. If it cannot be opened the terminal still runs, it
	// just keeps everything in memory until restart.
	store, err := kvstore.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Printf("Local storage unavailable (%v), falling back to in-memory", err)
		store = kvstore.NewMemory()
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.RequestID)
	router.Use(metrics.Middleware())
	router.Get("/metrics", metrics.Handler())

	// ── Phase 1: Cashier auth ───────────────────────────────
	authRepo := auth.NewKVRepository(store)
	authService := auth.NewService(authRepo, cfg.JWTSecret)
	if err := authService.EnsurePIN(context.Background(), cfg.CashierPIN); err != nil {
		log.Fatal(err)
	}
	auth.NewHandler(authService).RegisterRoutes(router)

	router.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(cfg.JWTSecret))

		// ── Phase 2: Catalog ────────────────────────────────
		catalogRepo := catalog.NewKVRepository(store)
		catalogService := catalog.NewService(catalogRepo)
		catalog.NewHandler(catalogService).RegisterRoutes(r)

		// ── Phase 3: Cart & Checkout ────────────────────────
		cartEngine := cart.NewEngine(cfg.TaxRate)
		cart.NewHandler(cartEngine, catalogService).RegisterRoutes(r)

		ledgerRepo := ledger.NewKVRepository(store)
		ledgerService := ledger.NewService(ledgerRepo, cartEngine)
		ledger.NewHandler(ledgerService).RegisterRoutes(r)

		// ── Phase 4: Invoices & Settings ────────────────────
		settingsRepo := settings.NewKVRepository(store, settings.Language(cfg.DefaultLanguage))
		settings.NewHandler(settingsRepo).RegisterRoutes(r)

		renderer := invoice.NewRenderer(invoice.StoreIdentity{
			NameEN:     cfg.StoreNameEN,
			NameAR:     cfg.StoreNameAR,
			TaxNumber:  cfg.TaxNumber,
			CurrencyEN: cfg.CurrencyEN,
			CurrencyAR: cfg.CurrencyAR,
		}, cfg.TaxRate)
		invoice.NewHandler(renderer, ledgerService, settingsRepo).RegisterRoutes(r)

		// ── Phase 5: Reports & Backup ───────────────────────
		reportService := report.NewService(ledgerRepo)
		report.NewHandler(reportService).RegisterRoutes(r)

		backupService := backup.NewService(catalogRepo, ledgerRepo)
		backup.NewHandler(backupService).RegisterRoutes(r)
	})

	// ── Start Server ─────────────────────────────────────────
	fmt.Printf("POS terminal API starting on :%s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
