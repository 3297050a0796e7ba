package main

import (
	"net/http"
	"os"
	"time"

	"vet-practice-manager/internal/adapters/auth/identity"
	"vet-practice-manager/internal/platform/logger"
	"vet-practice-manager/internal/ports/auth"
	"vet-practice-manager/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// .env opcional, para dev local
	_ = godotenv.Load()

	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Sin AUTH_VERIFY_URL el gateway corre en modo dev (X-Debug-User-ID).
	var verifier auth.AuthVerifier
	if base := os.Getenv("AUTH_VERIFY_URL"); base != "" {
		v, err := identity.NewVerifier(identity.Config{
			BaseURL: base,
			APIKey:  os.Getenv("AUTH_VERIFY_API_KEY"),
		})
		if err != nil {
			log.Error("identity verifier setup failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		verifier = v
	}

	r := router.NewRouter(router.Options{AuthVerifier: verifier, Log: log})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
