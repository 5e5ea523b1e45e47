package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/wesleycpo2/spacered-sub000/alerts"
	"github.com/wesleycpo2/spacered-sub000/channels"
	"github.com/wesleycpo2/spacered-sub000/collector"
	"github.com/wesleycpo2/spacered-sub000/controllers/admins"
	"github.com/wesleycpo2/spacered-sub000/database"
	"github.com/wesleycpo2/spacered-sub000/middleware"
	"github.com/wesleycpo2/spacered-sub000/models"
	"github.com/wesleycpo2/spacered-sub000/routes"
	"github.com/wesleycpo2/spacered-sub000/trends"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present (do not overwrite already-set environment variables).
	if envMap, err := godotenv.Read(); err == nil {
		for k, v := range envMap {
			if os.Getenv(k) == "" {
				os.Setenv(k, v)
			}
		}
	}

	// Validate required environment variables
	requiredEnvVars := []string{"DB_HOST", "DB_USER", "DB_PASS", "DB_NAME", "JWT_SECRET"}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Auto-migrate only in development to avoid accidental production schema changes
	if strings.ToLower(os.Getenv("ENV")) == "development" {
		log.Println("Running in development mode - performing auto-migration")
		if err := database.RunMigrationsWithBackup(db,
			&models.RefreshToken{},
			&models.User{},
			&models.Subscription{},
			&models.NotificationConfig{},
			&models.Niche{},
			&models.Product{},
			&models.Trend{},
			&models.TrendSignal{},
			&models.Alert{},
			&models.AiReport{},
			&models.AppState{},
		); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
		log.Println("Auto-migration completed successfully")
	} else {
		log.Println("Running in production mode - skipping auto-migration")
	}

	// Channel adapters: fall back to log-only delivery when credentials are
	// missing so local development works without real channel access.
	adapters := channels.Registry{}
	if tg, err := channels.NewTelegramAdapter(); err != nil {
		log.Printf("[main] telegram adapter nonaktif: %v", err)
		adapters[channels.Telegram] = &channels.LogAdapter{Channel: channels.Telegram}
	} else {
		adapters[channels.Telegram] = tg
	}
	if wa, err := channels.NewWhatsAppAdapter(); err != nil {
		log.Printf("[main] whatsapp adapter nonaktif: %v", err)
		adapters[channels.Whatsapp] = &channels.LogAdapter{Channel: channels.Whatsapp}
	} else {
		adapters[channels.Whatsapp] = wa
	}

	analyzer := trends.NewAnalyzer(db)
	collectorSvc := collector.NewService(db, collector.NewTikTokClient(), analyzer)
	dispatcher := alerts.NewDispatcher(db, adapters)

	interval, _ := time.ParseDuration(os.Getenv("COLLECT_INTERVAL"))
	autoCollector := collector.NewAutoCollector(interval, collector.DBStateStore{DB: db}, func() {
		summary := collectorSvc.RunAll()
		log.Printf("[auto-collector] koleksi selesai: %+v", summary)

		if collector.SummaryEnabled() {
			signals, err := analyzer.LatestSignals(50)
			if err != nil {
				log.Printf("[auto-collector] ambil signal untuk ringkasan gagal: %v", err)
			} else if _, err := collector.GenerateAiReport(db, signals); err != nil {
				log.Printf("[auto-collector] laporan AI gagal: %v", err)
			}
		}

		if result, err := dispatcher.ProcessAll(); err != nil {
			log.Printf("[auto-collector] proses alert gagal: %v", err)
		} else {
			log.Printf("[auto-collector] alert selesai: %+v", result)
		}
	})
	if resumed, err := autoCollector.Resume(); err != nil {
		log.Printf("[main] resume auto collector gagal: %v", err)
	} else if resumed {
		log.Println("[main] auto collector dilanjutkan dari state tersimpan")
	}

	admins.Setup(collectorSvc, dispatcher, autoCollector)

	router := routes.InitRouter()

	// Wrap router with global middleware in recommended order
	// Logging -> Security headers -> Request ID -> Max Body -> Timeout -> Recovery -> Metrics -> Suspicious Activity
	handler := middleware.RequestLogMiddleware(
		middleware.SecurityHeadersMiddleware(
			middleware.RequestIDMiddleware(
				middleware.MaxBodyMiddleware(
					middleware.TimeoutMiddleware(
						middleware.RecoveryMiddleware(
							middleware.MetricsMiddleware(
								middleware.SuspiciousActivityMiddleware(router),
							),
						),
					),
				),
			),
		),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
