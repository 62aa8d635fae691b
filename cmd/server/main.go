package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	httpadapter "phishguard/internal/adapters/http"
	"phishguard/internal/adapters/scorer"
	"phishguard/internal/config"
	historysvc "phishguard/internal/services/history"
	profsvc "phishguard/internal/services/profiles"
	scansvc "phishguard/internal/services/scanner"
	statssvc "phishguard/internal/services/stats"
	"phishguard/internal/wiring"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("warning: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stores, err := wiring.Open(ctx, cfg.DatabaseURL, cfg.MigrateOnStart)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer stores.Close()

	sc := scorer.New(cfg.ScorerURL, cfg.ScorerTimeout)
	scanner := scansvc.New(sc, stores.Ledger, stores.Aggregates)
	history := historysvc.New(stores.Ledger, stores.Aggregates)
	stats := statssvc.New(stores.Ledger)
	profiles := profsvc.New(stores.Aggregates)

	srv := httpadapter.New(scanner, history, stats, profiles)
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	log.Printf("listening on %s (env=%s, scorer=%s)", cfg.ListenAddr, cfg.Env, cfg.ScorerURL)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Printf("shutting down on %s", sig)
		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			stores.Close()
			log.Fatalf("server error: %v", err)
		}
	}
}
