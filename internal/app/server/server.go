package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"lohnplaner/internal/domain/history"
	"lohnplaner/internal/domain/scenario"
	"lohnplaner/internal/platform/config"
	"lohnplaner/internal/platform/dataset"
	"lohnplaner/internal/platform/db"
	"lohnplaner/internal/platform/metrics"
	"lohnplaner/internal/transport/http/api"
	jurisdictionshandler "lohnplaner/internal/transport/http/handlers/jurisdictions"
	reportshandler "lohnplaner/internal/transport/http/handlers/reports"
	runshandler "lohnplaner/internal/transport/http/handlers/runs"
	scenariohandler "lohnplaner/internal/transport/http/handlers/scenario"
	"lohnplaner/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	rules, err := dataset.Load(cfg.DataDir, cfg.TaxYear)
	if err != nil {
		log.Fatalf("dataset load failed: %v", err)
	}

	eval := scenario.NewEvaluator(rules)
	opt := scenario.NewOptimizer(eval, cfg.OptimizerStep)

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	ctx := context.Background()
	var runStore history.StoreAPI
	var ping func(context.Context) error
	if cfg.HistoryEnabled() {
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db connect failed: %v", err)
		}
		defer pool.Close()

		if cfg.RunMigrations {
			if err := db.Migrate(ctx, pool, "migrations"); err != nil {
				log.Fatalf("migrations failed: %v", err)
			}
		}
		runStore = history.NewStore(pool)
		ping = pool.Ping
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.AuthSecret))

		scenarioHandler := scenariohandler.NewHandler(eval, opt, runStore, collector, cfg.OptimizerStep)
		scenarioHandler.RegisterRoutes(r)

		jurisdictionsHandler := jurisdictionshandler.NewHandler(rules)
		jurisdictionsHandler.RegisterRoutes(r)

		runsHandler := runshandler.NewHandler(runStore)
		runsHandler.RegisterRoutes(r)

		reportsHandler := reportshandler.NewHandler(eval, opt)
		reportsHandler.RegisterRoutes(r)
	})

	log.Printf("lohnplaner listening on %s (tax year %d)", cfg.Addr, rules.Year)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
