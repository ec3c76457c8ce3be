package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openalert/billing-api/internal/client/payments"
	"github.com/openalert/billing-api/internal/db"
	"github.com/openalert/billing-api/internal/logger"
)

// BillingEventService maintains the append-only audit log of vendor billing
// notifications. Rows are inserted once and never updated or deleted here.
type BillingEventService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewBillingEventService creates a new billing event service.
func NewBillingEventService(queries db.Querier) *BillingEventService {
	return &BillingEventService{
		queries: queries,
		logger:  logger.Log,
	}
}

// RecordBillingEvent appends one audit row for a handled webhook event. The
// raw payload is stored verbatim. subscriptionID may be null when the event
// was handled before a local row existed.
func (s *BillingEventService) RecordBillingEvent(ctx context.Context, event payments.WebhookEvent, merchantID uuid.UUID, subscriptionID uuid.NullUUID) (db.BillingEvent, error) {
	payload := event.RawData
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	row, err := s.queries.CreateBillingEvent(ctx, db.CreateBillingEventParams{
		EventType:       event.EventType,
		Provider:        event.Provider,
		ProviderEventID: event.ProviderEventID,
		MerchantID:      merchantID,
		SubscriptionID:  subscriptionID,
		EventCreatedAt:  epochToTimestamptz(event.CreatedAt),
		Payload:         payload,
		Processed:       true,
	})
	if err != nil {
		return db.BillingEvent{}, fmt.Errorf("failed to create billing event %s: %w", event.ProviderEventID, err)
	}

	s.logger.Debug("Recorded billing event",
		zap.String("provider_event_id", event.ProviderEventID),
		zap.String("merchant_id", merchantID.String()),
		zap.String("event_type", event.EventType))

	return row, nil
}

// ListMerchantBillingEvents returns a page of a merchant's audit log, newest
// first, together with the merchant's total event count.
func (s *BillingEventService) ListMerchantBillingEvents(ctx context.Context, merchantID uuid.UUID, limit, offset int32) ([]db.BillingEvent, int64, error) {
	events, err := s.queries.ListBillingEventsByMerchant(ctx, db.ListBillingEventsByMerchantParams{
		MerchantID: merchantID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list billing events for merchant %s: %w", merchantID, err)
	}

	total, err := s.queries.CountBillingEventsByMerchant(ctx, merchantID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count billing events for merchant %s: %w", merchantID, err)
	}

	return events, total, nil
}
