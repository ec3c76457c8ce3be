package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/openalert/billing-api/internal/client/payments"
	"github.com/openalert/billing-api/internal/db"
	"github.com/openalert/billing-api/internal/logger"
)

// ReconcileOutcome classifies what a webhook event did to local state.
type ReconcileOutcome string

const (
	ReconcileUpserted   ReconcileOutcome = "upserted"
	ReconcileIgnored    ReconcileOutcome = "ignored"
	ReconcileUnresolved ReconcileOutcome = "unresolved"
	ReconcileFailed     ReconcileOutcome = "failed"
)

// ReconcileResult reports the outcome of handling one webhook event.
type ReconcileResult struct {
	Outcome        ReconcileOutcome
	MerchantID     uuid.UUID
	SubscriptionID uuid.NullUUID
	Status         string
}

// MerchantResolution is the result of mapping a vendor subscription to a
// merchant account.
type MerchantResolution struct {
	MerchantID             uuid.UUID
	ExistingSubscriptionID uuid.NullUUID
	PreviousStatus         string
	ProviderCustomerID     string
	Resolved               bool
}

// SubscriptionReconciler applies vendor subscription state to the local
// subscription rows and records an audit event for every handled webhook.
type SubscriptionReconciler struct {
	queries      db.Querier
	events       *BillingEventService
	notifier     *NotificationService
	publisher    *EventPublisher
	seatPriceIDs map[string]bool
	logger       *zap.Logger
}

// NewSubscriptionReconciler creates a new subscription reconciler.
// notifier and publisher may be nil when those integrations are not configured.
func NewSubscriptionReconciler(queries db.Querier, events *BillingEventService, notifier *NotificationService, publisher *EventPublisher, seatPriceIDs map[string]bool) *SubscriptionReconciler {
	return &SubscriptionReconciler{
		queries:      queries,
		events:       events,
		notifier:     notifier,
		publisher:    publisher,
		seatPriceIDs: seatPriceIDs,
		logger:       logger.Log,
	}
}

// HandleWebhookEvent runs the full chain for one verified webhook event:
// resolve the merchant, upsert the subscription row, record the audit event,
// then fan out notifications. Store failures are logged and reflected in the
// outcome, never returned: the webhook endpoint acknowledges every verified
// event so the vendor does not escalate retries against a degraded store.
func (r *SubscriptionReconciler) HandleWebhookEvent(ctx context.Context, event payments.WebhookEvent) ReconcileResult {
	if event.Subscription == nil {
		r.logger.Debug("Ignoring webhook event without subscription payload",
			zap.String("event_type", event.EventType),
			zap.String("provider_event_id", event.ProviderEventID))
		return ReconcileResult{Outcome: ReconcileIgnored}
	}

	vendorSub := *event.Subscription

	resolution := r.ResolveMerchant(ctx, vendorSub)
	if !resolution.Resolved {
		r.logger.Warn("No merchant found for webhook event, skipping",
			zap.String("event_type", event.EventType),
			zap.String("provider_event_id", event.ProviderEventID),
			zap.String("provider_subscription_id", vendorSub.ExternalID),
			zap.String("provider_customer_id", vendorSub.CustomerID))
		return ReconcileResult{Outcome: ReconcileUnresolved}
	}

	seats := DeriveSeatCount(vendorSub, r.seatPriceIDs)

	result := ReconcileResult{
		Outcome:    ReconcileUpserted,
		MerchantID: resolution.MerchantID,
	}

	row, err := r.UpsertFromVendor(ctx, event.Provider, resolution.MerchantID, vendorSub, seats)
	if err != nil {
		r.logger.Error("Failed to upsert subscription from webhook event",
			zap.String("event_type", event.EventType),
			zap.String("provider_event_id", event.ProviderEventID),
			zap.String("merchant_id", resolution.MerchantID.String()),
			zap.Error(err))
		result.Outcome = ReconcileFailed
		result.SubscriptionID = resolution.ExistingSubscriptionID
	} else {
		result.SubscriptionID = uuid.NullUUID{UUID: row.ID, Valid: true}
		result.Status = row.Status
	}

	// The audit record is written even when the upsert failed, so the event
	// payload survives for replay.
	if _, err := r.events.RecordBillingEvent(ctx, event, resolution.MerchantID, result.SubscriptionID); err != nil {
		r.logger.Error("Failed to record billing event",
			zap.String("provider_event_id", event.ProviderEventID),
			zap.String("merchant_id", resolution.MerchantID.String()),
			zap.Error(err))
	}

	if result.Outcome == ReconcileUpserted {
		if r.publisher != nil {
			if err := r.publisher.PublishBillingEvent(ctx, event, resolution.MerchantID); err != nil {
				r.logger.Error("Failed to publish billing event",
					zap.String("provider_event_id", event.ProviderEventID),
					zap.Error(err))
			}
		}
		if r.notifier != nil && result.Status != resolution.PreviousStatus {
			switch result.Status {
			case StatusPastDue, StatusCanceled:
				if err := r.notifier.NotifyMerchantStatusChange(ctx, resolution.MerchantID, result.Status); err != nil {
					r.logger.Error("Failed to notify merchant of status change",
						zap.String("merchant_id", resolution.MerchantID.String()),
						zap.String("status", result.Status),
						zap.Error(err))
				}
			}
		}
	}

	r.logger.Info("Reconciled webhook event",
		zap.String("event_type", event.EventType),
		zap.String("provider_event_id", event.ProviderEventID),
		zap.String("merchant_id", resolution.MerchantID.String()),
		zap.String("outcome", string(result.Outcome)),
		zap.String("status", result.Status))

	return result
}

// ResolveMerchant maps a vendor subscription to a merchant. First match wins:
// vendor metadata merchant_id, then the stored provider subscription ID, then
// the stored provider customer ID.
func (r *SubscriptionReconciler) ResolveMerchant(ctx context.Context, sub payments.Subscription) MerchantResolution {
	if raw, ok := sub.Metadata["merchant_id"]; ok && raw != "" {
		merchantID, err := uuid.Parse(raw)
		if err == nil {
			resolution := MerchantResolution{
				MerchantID:         merchantID,
				ProviderCustomerID: sub.CustomerID,
				Resolved:           true,
			}
			existing, err := r.queries.GetSubscriptionByMerchant(ctx, merchantID)
			if err == nil {
				resolution.ExistingSubscriptionID = uuid.NullUUID{UUID: existing.ID, Valid: true}
				resolution.PreviousStatus = existing.Status
			} else if !errors.Is(err, pgx.ErrNoRows) {
				r.logger.Warn("Failed to load existing subscription for merchant",
					zap.String("merchant_id", merchantID.String()),
					zap.Error(err))
			}
			return resolution
		}
		r.logger.Warn("Malformed merchant_id in vendor metadata, falling back to stored lookups",
			zap.String("merchant_id", raw),
			zap.String("provider_subscription_id", sub.ExternalID))
	}

	if sub.ExternalID != "" {
		row, err := r.queries.GetSubscriptionByProviderSubscriptionID(ctx, pgtype.Text{String: sub.ExternalID, Valid: true})
		if err == nil {
			return resolutionFromRow(row, sub.CustomerID)
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("Lookup by provider subscription ID failed",
				zap.String("provider_subscription_id", sub.ExternalID),
				zap.Error(err))
		}
	}

	if sub.CustomerID != "" {
		row, err := r.queries.GetSubscriptionByProviderCustomerID(ctx, pgtype.Text{String: sub.CustomerID, Valid: true})
		if err == nil {
			return resolutionFromRow(row, sub.CustomerID)
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("Lookup by provider customer ID failed",
				zap.String("provider_customer_id", sub.CustomerID),
				zap.Error(err))
		}
	}

	return MerchantResolution{}
}

func resolutionFromRow(row db.Subscription, customerID string) MerchantResolution {
	if customerID == "" && row.ProviderCustomerID.Valid {
		customerID = row.ProviderCustomerID.String
	}
	return MerchantResolution{
		MerchantID:             row.MerchantID,
		ExistingSubscriptionID: uuid.NullUUID{UUID: row.ID, Valid: true},
		PreviousStatus:         row.Status,
		ProviderCustomerID:     customerID,
		Resolved:               true,
	}
}

// UpsertFromVendor writes the vendor subscription state to the merchant's row,
// creating it if necessary. Last writer wins on conflicting fields.
func (r *SubscriptionReconciler) UpsertFromVendor(ctx context.Context, provider string, merchantID uuid.UUID, sub payments.Subscription, seats int32) (db.Subscription, error) {
	params := r.BuildSubscriptionUpdate(provider, merchantID, sub, seats)
	row, err := r.queries.UpsertSubscription(ctx, params)
	if err != nil {
		return db.Subscription{}, fmt.Errorf("failed to upsert subscription for merchant %s: %w", merchantID, err)
	}
	return row, nil
}

// UpdateFromVendor writes the vendor subscription state to an existing row.
// Used by the backfill path, where the row must already exist.
func (r *SubscriptionReconciler) UpdateFromVendor(ctx context.Context, provider string, merchantID uuid.UUID, sub payments.Subscription, seats int32) (db.Subscription, error) {
	p := r.BuildSubscriptionUpdate(provider, merchantID, sub, seats)
	row, err := r.queries.UpdateSubscriptionByMerchant(ctx, db.UpdateSubscriptionByMerchantParams{
		MerchantID:             p.MerchantID,
		Provider:               p.Provider,
		ProviderCustomerID:     p.ProviderCustomerID,
		ProviderSubscriptionID: p.ProviderSubscriptionID,
		Status:                 p.Status,
		CancelAtPeriodEnd:      p.CancelAtPeriodEnd,
		CurrentPeriodStart:     p.CurrentPeriodStart,
		CurrentPeriodEnd:       p.CurrentPeriodEnd,
		TrialStart:             p.TrialStart,
		TrialEnd:               p.TrialEnd,
		CanceledAt:             p.CanceledAt,
		PausedAt:               p.PausedAt,
		PauseResumesAt:         p.PauseResumesAt,
		PlanID:                 p.PlanID,
		Seats:                  p.Seats,
		UpdatedAt:              p.UpdatedAt,
	})
	if err != nil {
		return db.Subscription{}, fmt.Errorf("failed to update subscription for merchant %s: %w", merchantID, err)
	}
	return row, nil
}

// BuildSubscriptionUpdate converts a vendor subscription into the full set of
// row fields. Epoch timestamps at or below zero become NULL. Pause presence
// stamps paused_at with the current time; absence clears both pause fields.
func (r *SubscriptionReconciler) BuildSubscriptionUpdate(provider string, merchantID uuid.UUID, sub payments.Subscription, seats int32) db.UpsertSubscriptionParams {
	now := pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true}

	params := db.UpsertSubscriptionParams{
		MerchantID:             merchantID,
		Provider:               provider,
		ProviderCustomerID:     textOrNull(sub.CustomerID),
		ProviderSubscriptionID: textOrNull(sub.ExternalID),
		Status:                 MapSubscriptionStatus(sub.Status, sub.Pause),
		CancelAtPeriodEnd:      sub.CancelAtPeriodEnd,
		CurrentPeriodStart:     epochToTimestamptz(sub.CurrentPeriodStart),
		CurrentPeriodEnd:       epochToTimestamptz(sub.CurrentPeriodEnd),
		TrialStart:             epochToTimestamptz(sub.TrialStart),
		TrialEnd:               epochToTimestamptz(sub.TrialEnd),
		CanceledAt:             epochToTimestamptz(sub.CanceledAt),
		UpdatedAt:              now,
	}

	if sub.Pause != nil {
		params.PausedAt = now
		params.PauseResumesAt = epochToTimestamptz(sub.Pause.ResumesAt)
	}

	if raw, ok := sub.Metadata["plan_id"]; ok && raw != "" {
		if planID, err := uuid.Parse(raw); err == nil {
			params.PlanID = uuid.NullUUID{UUID: planID, Valid: true}
		} else {
			r.logger.Warn("Malformed plan_id in vendor metadata, keeping stored plan",
				zap.String("plan_id", raw),
				zap.String("merchant_id", merchantID.String()))
		}
	}

	if seats > 0 {
		params.Seats = pgtype.Int4{Int32: seats, Valid: true}
	}

	return params
}

func epochToTimestamptz(epoch int64) pgtype.Timestamptz {
	if epoch <= 0 {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: time.Unix(epoch, 0).UTC(), Valid: true}
}

func textOrNull(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
