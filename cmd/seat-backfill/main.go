package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	awsclient "github.com/openalert/billing-api/internal/client/aws"
	"github.com/openalert/billing-api/internal/client/payments"
	stripeclient "github.com/openalert/billing-api/internal/client/payments/stripe"
	"github.com/openalert/billing-api/internal/db"
	"github.com/openalert/billing-api/internal/helpers"
	"github.com/openalert/billing-api/internal/logger"
	"github.com/openalert/billing-api/internal/services"
)

// Application holds the dependencies for the seat backfill job
type Application struct {
	backfill *services.SeatBackfillService
}

// BackfillRequest is the Lambda invocation payload
type BackfillRequest struct {
	DryRun bool `json:"dry_run"`
}

// BackfillResponse is the Lambda invocation result
type BackfillResponse struct {
	Updated int `json:"updated"`
	DryRun  int `json:"dry_run"`
	Missing int `json:"missing"`
	Failed  int `json:"failed"`
}

// HandleRequest runs one backfill pass.
func (app *Application) HandleRequest(ctx context.Context, request BackfillRequest) (BackfillResponse, error) {
	report, err := app.backfill.Run(ctx, request.DryRun)
	if err != nil {
		return BackfillResponse{}, err
	}
	return BackfillResponse{
		Updated: report.Updated,
		DryRun:  report.DryRun,
		Missing: report.Missing,
		Failed:  report.Failed,
	}, nil
}

func main() {
	dryRun := flag.Bool("dry-run", false, "compute and log updates without writing to the store or the vendor")
	flag.Parse()

	// Load .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v. Proceeding with environment variables/secrets.", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing seat backfill job", zap.String("stage", stage), zap.Bool("dry_run", *dryRun))
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	// --- Initialize AWS Secrets Manager Client ---
	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	// --- Database Connection Setup ---
	var dsn string
	if stage == helpers.StageProd || stage == helpers.StageDev {
		logger.Info("Running in deployed stage, fetching DB credentials from Secrets Manager", zap.String("stage", stage))
		dbEndpoint := os.Getenv("DB_HOST")
		dbName := os.Getenv("DB_NAME")
		dbSecretArn := os.Getenv("RDS_SECRET_ARN")
		dbSSLMode := os.Getenv("DB_SSLMODE")

		if dbEndpoint == "" || dbName == "" || dbSecretArn == "" {
			logger.Fatal("Missing required DB environment variables for deployed environment (DB_HOST, DB_NAME, RDS_SECRET_ARN)")
		}
		if dbSSLMode == "" {
			dbSSLMode = "require"
			logger.Warn("DB_SSLMODE not set, defaulting to 'require'")
		}

		type RdsSecret struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		var secretData RdsSecret
		err = secretsClient.GetSecretJSON(ctx, "RDS_SECRET_ARN", &secretData)
		if err != nil {
			logger.Fatal("Failed to retrieve or parse RDS secret", zap.Error(err))
		}
		if secretData.Username == "" || secretData.Password == "" {
			logger.Fatal("Username or password not found in RDS secret data")
		}

		dsn = fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
			url.QueryEscape(secretData.Username), url.QueryEscape(secretData.Password),
			dbEndpoint, dbName, dbSSLMode)
	} else {
		logger.Info("Running in local stage, using DATABASE_URL from env/secrets")
		dsn, err = secretsClient.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
		if err != nil {
			logger.Fatal("Failed to get DATABASE_URL", zap.Error(err))
		}
	}

	// --- Database Pool Initialization ---
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 15
	connPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	dbQueries := db.New(connPool)

	// --- Stripe Client Setup ---
	stripeKey, err := secretsClient.GetSecretString(ctx, "STRIPE_SECRET_KEY_ARN", "STRIPE_SECRET_KEY")
	if err != nil {
		logger.Fatal("Failed to get Stripe secret key", zap.Error(err))
	}
	webhookSecret, err := secretsClient.GetSecretString(ctx, "STRIPE_WEBHOOK_SECRET_ARN", "STRIPE_WEBHOOK_SECRET")
	if err != nil {
		logger.Fatal("Failed to get Stripe webhook secret", zap.Error(err))
	}

	stripeService := stripeclient.NewStripeService(logger.Log)
	err = stripeService.Configure(ctx, map[string]string{
		"api_key":        stripeKey,
		"webhook_secret": webhookSecret,
	})
	if err != nil {
		logger.Fatal("Unable to configure Stripe client", zap.Error(err))
	}

	var vendor payments.Client = stripeService

	seatPriceIDs := services.ParseSeatPriceIDs(os.Getenv("SEAT_PRICE_IDS"))
	if len(seatPriceIDs) == 0 {
		logger.Warn("SEAT_PRICE_IDS not set, seat derivation will rely on metadata and line item quantities")
	}

	billingEvents := services.NewBillingEventService(dbQueries)
	reconciler := services.NewSubscriptionReconciler(dbQueries, billingEvents, nil, nil, seatPriceIDs)

	app := &Application{
		backfill: services.NewSeatBackfillService(dbQueries, vendor, reconciler, seatPriceIDs),
	}

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(app.HandleRequest)
		return
	}

	report, err := app.HandleRequest(ctx, BackfillRequest{DryRun: *dryRun})
	if err != nil {
		logger.Fatal("Seat backfill failed", zap.Error(err))
	}
	logger.Info("Seat backfill finished",
		zap.Int("updated", report.Updated),
		zap.Int("dry_run", report.DryRun),
		zap.Int("missing", report.Missing),
		zap.Int("failed", report.Failed))
}
