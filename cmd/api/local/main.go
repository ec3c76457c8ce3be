//go:build !lambda
// +build !lambda

package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/openalert/billing-api/internal/helpers"
	"github.com/openalert/billing-api/internal/logger"
	"github.com/openalert/billing-api/internal/server"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		// A missing .env file is fine when variables are set directly in the
		// environment.
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	// Initialize logger first
	logger.InitLogger(stage)

	r := gin.Default()
	server.InitializeHandlers()
	server.InitializeRoutes(r)

	log.Printf("Server starting on :8000")
	if err := r.Run(":8000"); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
