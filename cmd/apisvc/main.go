package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"
	log "github.com/sirupsen/logrus"

	config "github.com/finpay/finpay-services/configs"
	"github.com/finpay/finpay-services/internal/apisvc/cache"
	"github.com/finpay/finpay-services/internal/apisvc/db"
	"github.com/finpay/finpay-services/internal/apisvc/events"
	"github.com/finpay/finpay-services/internal/apisvc/handlers"
	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/finpay/finpay-services/internal/apisvc/receipt"
	"github.com/finpay/finpay-services/internal/apisvc/service"
	"github.com/finpay/finpay-services/internal/apisvc/store"
	nats "github.com/finpay/finpay-services/internal/nats"
)

const SERVICE_NAME = "api"

var instanceId string

func init() {
	instanceId = "001"
	config.Logging(SERVICE_NAME + "_service_" + instanceId)
	config.LoadEnv(SERVICE_NAME)
}

func main() {
	// pg connection
	dbpool, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.ClosePool()
	log.Printf("pg connection established successfully")

	// redis is optional: without it the dropdowns and summary go
	// straight to postgres
	var currencyCache *cache.ViewCache[[]*models.Currency]
	var networkCache *cache.ViewCache[[]*models.Network]
	var summaryCache *cache.ViewCache[service.Summary]

	redisClient, err := cache.Connect()
	if err != nil {
		log.Warnf("redis unavailable, view cache disabled: %v", err)
	} else {
		currencyCache = cache.NewViewCache[[]*models.Currency](redisClient, 10*time.Minute)
		networkCache = cache.NewViewCache[[]*models.Network](redisClient, 10*time.Minute)
		summaryCache = cache.NewViewCache[service.Summary](redisClient, 30*time.Second)
		log.Printf("redis connection established successfully")
	}

	// Connect to NATS
	n, err := nats.Connect()
	if err != nil {
		log.Errorf("Error: unable to connect to NATS server %v", err)
		os.Exit(0)
	}

	defer n.Conn.Close()
	log.Printf("NATS connection established successfully %s", n.Url)

	publisher := events.NewPublisher(n.Conn)

	balanceStore := store.NewBalanceStore(dbpool)
	feeStore := store.NewFeeStore(dbpool)
	userStore := store.NewUserStore(dbpool)
	currencyStore := store.NewCurrencyStore(dbpool)
	networkStore := store.NewNetworkStore(dbpool)
	bankStore := store.NewBankStore(dbpool)
	countryStore := store.NewCountryStore(dbpool)
	contentStore := store.NewContentStore(dbpool)
	dashboardStore := store.NewDashboardStore(dbpool)

	h := handlers.NewHandler(handlers.Services{
		Deposits:    service.NewDepositService(balanceStore, feeStore, userStore, publisher),
		Withdrawals: service.NewWithdrawService(balanceStore, feeStore, userStore, publisher),
		Currencies:  service.NewCurrencyService(currencyStore, currencyCache),
		Networks:    service.NewNetworkService(networkStore, networkCache),
		Banks:       service.NewBankService(bankStore),
		Countries:   service.NewCountryService(countryStore),
		Contents:    service.NewContentService(contentStore),
		Fees:        service.NewFeeService(feeStore),
		Users:       service.NewUserService(userStore),
		Auth:        service.NewAuthService(userStore),
		Dashboard:   service.NewDashboardService(dashboardStore, summaryCache),
		Receipts:    receipt.NewVerifier(),
	})

	// Setup router
	r := chi.NewRouter()
	c := config.CORS()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	rateLimitStr := os.Getenv("RATE_LIMIT")
	rateLimit, err := strconv.Atoi(rateLimitStr)
	if err != nil {
		log.Fatalf("Invalid RATE_LIMIT value: %v", err)
	}
	r.Use(httprate.LimitByIP(rateLimit, 1*time.Minute))

	// Init handlers and routes
	h.InitAuth()
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + os.Getenv("API_SERVICE_PORT"),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
