package stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

// StripeService implements the payments.Client interface for Stripe.
// Subscription and webhook handling live in subscription.go and webhook.go.

type StripeService struct {
	client        *stripe.Client
	webhookSecret string
	logger        *zap.Logger
}

// NewStripeService creates a new instance of StripeService.
// It does not yet configure the API key, that happens in Configure.
func NewStripeService(logger *zap.Logger) *StripeService {
	return &StripeService{
		logger: logger,
	}
}

// GetServiceName returns the name of the service.
func (s *StripeService) GetServiceName() string {
	return "stripe"
}

// Configure initializes the Stripe service with API key and webhook secret.
func (s *StripeService) Configure(ctx context.Context, config map[string]string) error {
	apiKey, ok := config["api_key"]
	if !ok || apiKey == "" {
		return fmt.Errorf("stripe API key not provided in configuration")
	}

	webhookSecret, ok := config["webhook_secret"]
	if !ok || webhookSecret == "" {
		return fmt.Errorf("stripe webhook secret not provided in configuration")
	}

	s.client = stripe.NewClient(apiKey, nil)
	s.webhookSecret = webhookSecret

	return nil
}

// CheckConnection verifies that the service can connect to Stripe by making a
// simple, non-mutating API call.
func (s *StripeService) CheckConnection(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("stripe client not configured. Call Configure first")
	}

	_, err := s.client.V1Accounts.Retrieve(ctx, &stripe.AccountRetrieveParams{})
	if err != nil {
		return fmt.Errorf("failed to connect to Stripe: %w", err)
	}
	return nil
}
