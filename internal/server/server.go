package server

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/openalert/billing-api/docs" // This will be generated
	"github.com/openalert/billing-api/internal/client/payments"
	stripeclient "github.com/openalert/billing-api/internal/client/payments/stripe"
	"github.com/openalert/billing-api/internal/db"
	"github.com/openalert/billing-api/internal/handlers"
	"github.com/openalert/billing-api/internal/logger"
	"github.com/openalert/billing-api/internal/services"
)

// Handler Definitions
var (
	healthHandler  *handlers.HealthHandler
	webhookHandler *handlers.WebhookHandler
	billingHandler *handlers.BillingHandler

	// Database
	dbQueries *db.Queries
)

func InitializeHandlers() {
	// Get database connection string from environment
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	// Create a connection pool using pgxpool
	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		logger.Fatal("Unable to parse database connection string", zap.Error(err))
	}

	// Configure the connection pool
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	// Create the connection pool
	connPool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	// Create queries instance with the connection pool
	dbQueries = db.New(connPool)

	ctx := context.Background()

	// Configure the Stripe vendor client
	stripeService := stripeclient.NewStripeService(logger.Log)
	err = stripeService.Configure(ctx, map[string]string{
		"api_key":        os.Getenv("STRIPE_SECRET_KEY"),
		"webhook_secret": os.Getenv("STRIPE_WEBHOOK_SECRET"),
	})
	if err != nil {
		logger.Fatal("Unable to configure Stripe client", zap.Error(err))
	}

	vendors := map[string]payments.Client{
		stripeService.GetServiceName(): stripeService,
	}

	seatPriceIDs := services.ParseSeatPriceIDs(os.Getenv("SEAT_PRICE_IDS"))
	if len(seatPriceIDs) == 0 {
		logger.Warn("SEAT_PRICE_IDS not set, seat derivation will rely on metadata and line item quantities")
	}

	billingEvents := services.NewBillingEventService(dbQueries)

	// Merchant notifications are optional; without an API key the reconciler
	// simply skips them.
	var notifier *services.NotificationService
	if resendKey := os.Getenv("RESEND_API_KEY"); resendKey != "" {
		fromEmail := os.Getenv("BILLING_FROM_EMAIL")
		if fromEmail == "" {
			fromEmail = "billing@openalert.app"
		}
		notifier = services.NewNotificationService(resendKey, fromEmail, "OpenAlert Billing", dbQueries)
	}

	// Event fan-out is optional as well.
	var publisher *services.EventPublisher
	if queueURL := os.Getenv("BILLING_EVENTS_QUEUE_URL"); queueURL != "" {
		awsCfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			logger.Fatal("Unable to load AWS config for SQS", zap.Error(err))
		}
		publisher = services.NewEventPublisher(sqs.NewFromConfig(awsCfg), queueURL)
	}

	reconciler := services.NewSubscriptionReconciler(dbQueries, billingEvents, notifier, publisher, seatPriceIDs)

	commonServices := handlers.NewCommonServices(dbQueries)

	// API Handler initialization
	healthHandler = handlers.NewHealthHandler()
	webhookHandler = handlers.NewWebhookHandler(vendors, reconciler)
	billingHandler = handlers.NewBillingHandler(commonServices, billingEvents)
}

func InitializeRoutes(router *gin.Engine) {
	// Configure and apply CORS middleware
	router.Use(configureCORS())

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", healthHandler.Health)

	// if we are not in production, log the request body
	if os.Getenv("GIN_MODE") != "release" {
		router.Use(handlers.LogRequest())
	}

	// Vendor webhooks authenticate by signature, not API key
	router.POST("/webhooks/:provider", webhookHandler.HandleProviderWebhook)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Protected routes (internal API key required)
		protected := v1.Group("/")
		protected.Use(handlers.APIKeyMiddleware())
		{
			merchants := protected.Group("/merchants")
			{
				merchants.GET("/:merchant_id/subscription", billingHandler.GetMerchantSubscription)
				merchants.GET("/:merchant_id/billing-events", billingHandler.ListMerchantBillingEvents)
			}

			protected.GET("/plans", billingHandler.ListPlans)
			protected.GET("/plans/:plan_id", billingHandler.GetPlan)
			protected.GET("/subscriptions", billingHandler.ListSubscriptions)
		}
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		// Split and trim the origins
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key", "Stripe-Signature"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
