package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openalert/billing-api/internal/client/payments"
	"github.com/openalert/billing-api/internal/logger"
)

// billingEventMessage is the fan-out message body for downstream consumers.
type billingEventMessage struct {
	ProviderEventID string `json:"provider_event_id"`
	Provider        string `json:"provider"`
	EventType       string `json:"event_type"`
	MerchantID      string `json:"merchant_id"`
	ReceivedAt      int64  `json:"received_at"`
}

// EventPublisher fans processed billing events out to an SQS queue so other
// systems (analytics, CRM sync) can react without touching the billing store.
type EventPublisher struct {
	sqsClient *sqs.Client
	queueURL  string
	logger    *zap.Logger
}

// NewEventPublisher creates a new SQS-backed event publisher.
func NewEventPublisher(sqsClient *sqs.Client, queueURL string) *EventPublisher {
	return &EventPublisher{
		sqsClient: sqsClient,
		queueURL:  queueURL,
		logger:    logger.Log,
	}
}

// PublishBillingEvent sends one processed event to the queue.
func (p *EventPublisher) PublishBillingEvent(ctx context.Context, event payments.WebhookEvent, merchantID uuid.UUID) error {
	body, err := json.Marshal(billingEventMessage{
		ProviderEventID: event.ProviderEventID,
		Provider:        event.Provider,
		EventType:       event.EventType,
		MerchantID:      merchantID.String(),
		ReceivedAt:      event.ReceivedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal billing event message: %w", err)
	}

	_, err = p.sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"Provider": {
				StringValue: aws.String(event.Provider),
				DataType:    aws.String("String"),
			},
			"EventType": {
				StringValue: aws.String(event.EventType),
				DataType:    aws.String("String"),
			},
			"MerchantID": {
				StringValue: aws.String(merchantID.String()),
				DataType:    aws.String("String"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send billing event to SQS: %w", err)
	}

	p.logger.Debug("Published billing event",
		zap.String("provider_event_id", event.ProviderEventID),
		zap.String("merchant_id", merchantID.String()))

	return nil
}
