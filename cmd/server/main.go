package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/babyzion/market/internal/config"
	"github.com/babyzion/market/internal/db"
	"github.com/babyzion/market/internal/events"
	"github.com/babyzion/market/internal/feed"
	"github.com/babyzion/market/internal/httpserver"
	"github.com/babyzion/market/internal/logging"
	"github.com/babyzion/market/internal/middleware/cachecontrol"
	loggingmw "github.com/babyzion/market/internal/middleware/logging"
	"github.com/babyzion/market/internal/middleware/metrics"
	"github.com/babyzion/market/internal/middleware/ratelimit"
	"github.com/babyzion/market/internal/payment"
	"github.com/babyzion/market/internal/repo"
	"github.com/babyzion/market/internal/service"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(ctx, cfg.DatabaseURL, cfg.SQLitePath)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		log.Fatalf("db migrate: %v", err)
	}
	if err := db.Seed(database); err != nil {
		log.Fatalf("db seed: %v", err)
	}

	publisher := events.NewPublisher(cfg.KafkaBrokers, logger)
	defer publisher.Close()

	feedClient := feed.NewClient(cfg.CJBaseURL, cfg.CJEmail, cfg.CJAPIKey)
	paypal := payment.NewPayPalClient(cfg.PayPalBaseURL, cfg.PayPalClientID, cfg.PayPalClientSecret)
	paystack := payment.NewPaystackClient(cfg.PaystackPublicKey)

	r := &repo.GormRepo{DB: database}
	catalogSvc := &service.CatalogService{Repo: r, Feed: feedClient, Events: publisher}
	orderSvc := &service.OrderService{Repo: r, Events: publisher, IDPrefix: cfg.OrderIDPrefix}
	uploadSvc := &service.UploadService{Repo: r, Events: publisher}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())
	e.Use(cachecontrol.NoStore(cfg.Production()))
	e.Use(metrics.Middleware())

	httpserver.Register(e, &httpserver.Deps{
		Catalog:        &httpserver.CatalogHTTP{Svc: catalogSvc},
		Order:          &httpserver.OrderHTTP{Svc: orderSvc},
		Upload:         &httpserver.UploadHTTP{Svc: uploadSvc},
		Payment:        &httpserver.PaymentHTTP{PayPal: paypal, Paystack: paystack},
		OrderRateStore: ratelimit.NewFixedWindowStore(cfg.OrderRateLimit, cfg.OrderRateWindow),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("market listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("market stopped")
}
