//go:build lambda
// +build lambda

package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/openalert/billing-api/docs" // This will be generated
	"github.com/openalert/billing-api/internal/helpers"
	"github.com/openalert/billing-api/internal/logger"
	"github.com/openalert/billing-api/internal/server"
)

// @title           OpenAlert Billing API
// @version         1.0
// @description     Subscription billing reconciliation service for OpenAlert

// @host      localhost:8000
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

var ginLambda *ginadapter.GinLambda

func init() {
	stage := os.Getenv("STAGE")
	if !helpers.IsValidStage(stage) {
		stage = helpers.StageDev
	}

	// Initialize logger
	logger.InitLogger(stage)

	// Initialize your Gin router
	r := gin.Default()

	// Initialize Handlers
	server.InitializeHandlers()

	// Initialize routes
	server.InitializeRoutes(r)

	ginLambda = ginadapter.New(r)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// Add debug logging
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.Any("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
