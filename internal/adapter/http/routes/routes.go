package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "verkstad_portal/docs"
	"verkstad_portal/internal/adapter/http/handlers"
	"verkstad_portal/internal/adapter/persistence/repository"
	"verkstad_portal/internal/infrastructure/config"
	"verkstad_portal/internal/infrastructure/database"
	"verkstad_portal/internal/infrastructure/marketplace"
	"verkstad_portal/internal/infrastructure/metrics"
	"verkstad_portal/internal/infrastructure/scheduler"
	"verkstad_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.Load()
	m := metrics.New(prometheus.DefaultRegisterer)

	setMiddlewares(m)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	job := getRoutes(cfg, m)

	err := router.Run(":" + strconv.Itoa(cfg.HTTPPort))
	if err != nil {
		// log.Fatalf skips deferred calls.
		if job != nil {
			job.Stop()
		}
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config, m *metrics.Metrics) *scheduler.PayoutJob {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		log.Fatalf("failed to connect dynamodb: %v", err)
	}
	if os.Getenv("DYNAMODB_ENDPOINT") != "" {
		if err := database.EnsureSessionsTable(ctx, ddb, cfg.Sessions.Table); err != nil {
			log.Fatalf("failed to provision sessions table: %v", err)
		}
	}

	gateway, err := marketplace.New(cfg.Marketplace)
	if err != nil {
		log.Fatalf("failed to configure marketplace gateway: %v", err)
	}
	if cfg.Marketplace.Mock {
		log.Printf("[marketplace] using in-memory marketplace (MARKETPLACE_MOCK)")
	}

	sessionRepo := repository.NewSessionDynamoRepository(ddb, cfg.Sessions.Table)

	sessionUseCase := usecase.NewSessionUseCase(sessionRepo, cfg.Sessions.TTL, m)
	caseUseCase := usecase.NewCaseUseCase(gateway, m)
	bookingUseCase := usecase.NewBookingUseCase(gateway, m)
	workshopUseCase := usecase.NewWorkshopUseCase(gateway, m)
	adminUseCase := usecase.NewAdminUseCase(gateway, m)

	sessionHandler := handlers.NewSessionHandler(sessionUseCase)
	customerHandler := handlers.NewCustomerHandler(caseUseCase, bookingUseCase)
	workshopHandler := handlers.NewWorkshopHandler(workshopUseCase, cfg.DefaultSearchRadiusKM)
	adminHandler := handlers.NewAdminHandler(adminUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSessionRoutes(v1, sessionUseCase, sessionHandler)

	// Session-scoped routes, one group per role
	addCustomerRoutes(v1, sessionUseCase, customerHandler)
	addWorkshopRoutes(v1, sessionUseCase, workshopHandler)
	addAdminRoutes(v1, sessionUseCase, adminHandler)

	return startPayoutJob(cfg.Payouts, adminUseCase)
}

func startPayoutJob(cfg config.PayoutsConfig, admin usecase.IAdminUseCase) *scheduler.PayoutJob {
	if cfg.ServiceToken == "" {
		log.Printf("[payout][scheduler] disabled: PAYOUT_SERVICE_TOKEN not set")
		return nil
	}
	job, err := scheduler.NewPayoutJob(admin, cfg.Schedule, cfg.ServiceToken, time.Minute)
	if err != nil {
		log.Printf("[payout][scheduler] not started: %v", err)
		return nil
	}
	if err := job.Start(); err != nil {
		log.Printf("[payout][scheduler] not started: %v", err)
		return nil
	}
	return job
}

func setMiddlewares(m *metrics.Metrics) {
	router.Use(m.Middleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
