// File: salonify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonify/config"
	"salonify/database"
	appointmentRepo "salonify/database/repository/appointment"
	catalogRepo "salonify/database/repository/catalog"
	packageRepo "salonify/database/repository/clientpackage"
	financeRepo "salonify/database/repository/finance"
	promotionRepo "salonify/database/repository/promotion"
	"salonify/handlers"
	"salonify/routes"
	"salonify/services/booking"
	"salonify/services/finance"
	"salonify/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitLockClient()
	utils.StartHealthMonitor(database.MongoClient, utils.GetCacheClient(), utils.GetLockClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	catRepo := catalogRepo.NewMongoCatalogRepo()
	promoRepo := promotionRepo.NewMongoPromotionRepo()
	pkgRepo := packageRepo.NewMongoPackageRepo()
	finRepo := financeRepo.NewMongoFinanceRepo()

	// financial pipeline: settlements run off-request through asynq.
	settler := &finance.Settler{
		Finance:  finRepo,
		Packages: pkgRepo,
		Payments: finance.NewStripePaymentHandler(logger),
		Currency: config.AppConfig.Currency,
	}
	finance.InitSettlementWorker(settler)
	dispatcher := finance.NewAsynqDispatcher(finance.NewQueueClient())

	location, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid timezone %q: %v", config.AppConfig.Timezone, err)
	}

	engine := &booking.DefaultSchedulingEngine{
		Catalog:      catRepo,
		Appointments: apptRepo,
		Promotions:   promoRepo,
		Packages:     pkgRepo,
		Dispatcher:   dispatcher,
		Locks:        utils.NewRedisDayLocker(utils.GetLockClient()),

		GranularityMin:     config.AppConfig.SlotGranularityMinutes,
		DefaultDurationMin: config.AppConfig.DefaultServiceDurationMin,
		CancellationWindow: time.Duration(config.AppConfig.CancellationWindowHours) * time.Hour,
		StrictResize:       config.AppConfig.StrictResize,
		Location:           location,
	}

	handlerBundle := &handlers.HandlerBundle{
		Booking:  handlers.NewBookingHandler(engine, logger),
		Calendar: handlers.NewCalendarHandler(engine, logger),
		Catalog:  handlers.NewCatalogHandler(catRepo, utils.GetCacheClient()),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
