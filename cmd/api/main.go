package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apiserver "github.com/develop-y-minami/v-spa/internal/api/server"

	"github.com/develop-y-minami/v-spa/internal/api/middleware"
	"github.com/develop-y-minami/v-spa/internal/config"
	database "github.com/develop-y-minami/v-spa/internal/db"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting v-spa API Server...")

	// load .env if present (ok if missing in prod)
	_ = godotenv.Load()

	// 1. Setup Configuration
	cfg := config.Load()

	// 2. Initialize Infrastructure
	db := database.New(cfg)

	// 3. Run Database Migrations + seed the role lookup
	db.AutoMigrate()
	if cfg.Database.Seed {
		database.SeedRoleCodes(db.DB)
	}

	// 4. Setup Metrics
	middleware.RegisterMetrics()
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		log.Printf("📊 Metrics exposed at http://localhost%s/metrics", cfg.Server.MetricsPort)
		if err := http.ListenAndServe(cfg.Server.MetricsPort, nil); err != nil {
			log.Printf("⚠️ Metrics server error: %v", err)
		}
	}()

	// 5. Start Server
	srv := apiserver.New(cfg, db)

	log.Printf("🚀 API Server starting on %s", cfg.Server.Port)
	if err := srv.Start(cfg.Server.Port); err != nil {
		log.Fatalf("❌ Server failed to start: %v", err)
	}
}
