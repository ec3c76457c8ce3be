package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"

	"github.com/openalert/billing-api/internal/client/payments"
)

// VerifyWebhook processes an incoming webhook request from Stripe.
// It validates the signature, unmarshals the event data, and maps it to a
// canonical payments.WebhookEvent.
func (s *StripeService) VerifyWebhook(ctx context.Context, requestBody []byte, signatureHeader string) (payments.WebhookEvent, error) {
	if s.client == nil || s.webhookSecret == "" {
		return payments.WebhookEvent{}, fmt.Errorf("stripe service not configured for webhooks (client or secret missing)")
	}

	event, err := webhook.ConstructEvent(requestBody, signatureHeader, s.webhookSecret)
	if err != nil {
		s.logger.Error("Webhook signature verification failed", zap.Error(err))
		return payments.WebhookEvent{SignatureValid: false, RawData: requestBody}, fmt.Errorf("webhook signature verification failed: %w", err)
	}

	s.logger.Info("Received Stripe webhook event", zap.String("event_id", event.ID), zap.String("event_type", string(event.Type)))

	psEvent := payments.WebhookEvent{
		ProviderEventID: event.ID,
		Provider:        s.GetServiceName(),
		EventType:       string(event.Type),
		ReceivedAt:      time.Now().Unix(),
		CreatedAt:       event.Created,
		RawData:         requestBody,
		SignatureValid:  true,
	}

	switch event.Type {
	case stripe.EventTypeCustomerSubscriptionCreated,
		stripe.EventTypeCustomerSubscriptionUpdated,
		stripe.EventTypeCustomerSubscriptionDeleted,
		stripe.EventTypeCustomerSubscriptionPaused,
		stripe.EventTypeCustomerSubscriptionResumed,
		stripe.EventTypeCustomerSubscriptionTrialWillEnd:
		var subscription stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
			s.logger.Error("Failed to unmarshal webhook event data for subscription", zap.String("event_type", string(event.Type)), zap.Error(err))
			return psEvent, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
		}
		mapped := mapStripeSubscription(&subscription)
		psEvent.Subscription = &mapped

	default:
		s.logger.Debug("Unmapped Stripe webhook event type", zap.String("event_type", string(event.Type)), zap.String("event_id", event.ID))
	}

	return psEvent, nil
}
