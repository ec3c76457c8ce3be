package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/openalert/billing-api/internal/client/payments"
	"github.com/openalert/billing-api/internal/db"
	"github.com/openalert/billing-api/internal/logger"
)

// BackfillOutcome classifies what the backfill did for one merchant.
type BackfillOutcome string

const (
	BackfillUpdated BackfillOutcome = "updated"
	BackfillDryRun  BackfillOutcome = "dry_run"
	BackfillMissing BackfillOutcome = "missing"
	BackfillFailed  BackfillOutcome = "failed"
)

// MerchantBackfillResult is the per-merchant unit of work result.
type MerchantBackfillResult struct {
	MerchantID uuid.UUID
	Outcome    BackfillOutcome
	Seats      int32
	Status     string
}

// BackfillReport is the final tally of a backfill run.
type BackfillReport struct {
	Updated int
	DryRun  int
	Missing int
	Failed  int
	Results []MerchantBackfillResult
}

// SeatBackfillService re-derives authoritative seat counts from the vendor's
// live subscription data for every merchant and corrects drift in the store.
// Merchants are processed strictly sequentially; vendor calls are rate limited
// and retried with exponential backoff.
type SeatBackfillService struct {
	queries      db.Querier
	vendor       payments.Client
	reconciler   *SubscriptionReconciler
	seatPriceIDs map[string]bool
	limiter      *rate.Limiter
	logger       *zap.Logger
}

// NewSeatBackfillService creates a new seat backfill service.
func NewSeatBackfillService(queries db.Querier, vendor payments.Client, reconciler *SubscriptionReconciler, seatPriceIDs map[string]bool) *SeatBackfillService {
	return &SeatBackfillService{
		queries:      queries,
		vendor:       vendor,
		reconciler:   reconciler,
		seatPriceIDs: seatPriceIDs,
		limiter:      rate.NewLimiter(rate.Limit(5), 1),
		logger:       logger.Log,
	}
}

// Run walks every stored subscription row and reconciles its seat count
// against the vendor. With dryRun set, nothing is written to the store or the
// vendor; the would-be updates are logged instead. One merchant's failure
// never aborts the run.
func (s *SeatBackfillService) Run(ctx context.Context, dryRun bool) (BackfillReport, error) {
	report := BackfillReport{}

	rows, err := s.queries.ListSubscriptions(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to list subscriptions for backfill: %w", err)
	}

	s.logger.Info("Starting seat backfill",
		zap.Int("merchant_count", len(rows)),
		zap.Bool("dry_run", dryRun))

	for _, row := range rows {
		result := s.backfillMerchant(ctx, row, dryRun)
		report.Results = append(report.Results, result)

		switch result.Outcome {
		case BackfillUpdated:
			report.Updated++
		case BackfillDryRun:
			report.DryRun++
		case BackfillMissing:
			report.Missing++
		case BackfillFailed:
			report.Failed++
		}

		s.logger.Info("Backfill progress",
			zap.String("merchant_id", result.MerchantID.String()),
			zap.String("outcome", string(result.Outcome)),
			zap.Int32("seats", result.Seats),
			zap.String("status", result.Status))
	}

	s.logger.Info("Seat backfill complete",
		zap.Int("updated", report.Updated),
		zap.Int("dry_run", report.DryRun),
		zap.Int("missing", report.Missing),
		zap.Int("failed", report.Failed))

	return report, nil
}

func (s *SeatBackfillService) backfillMerchant(ctx context.Context, row db.Subscription, dryRun bool) MerchantBackfillResult {
	result := MerchantBackfillResult{MerchantID: row.MerchantID}

	vendorSub, found := s.resolveVendorSubscription(ctx, row)
	if !found {
		result.Outcome = BackfillMissing
		return result
	}

	seats := DeriveSeatCount(vendorSub, s.seatPriceIDs)
	result.Seats = seats
	result.Status = MapSubscriptionStatus(vendorSub.Status, vendorSub.Pause)

	if dryRun {
		s.logger.Info("Dry run: would update subscription",
			zap.String("merchant_id", row.MerchantID.String()),
			zap.String("provider_subscription_id", vendorSub.ExternalID),
			zap.Int32("stored_seats", row.Seats),
			zap.Int32("derived_seats", seats),
			zap.String("status", result.Status))
		result.Outcome = BackfillDryRun
		return result
	}

	if _, err := s.reconciler.UpdateFromVendor(ctx, row.Provider, row.MerchantID, vendorSub, seats); err != nil {
		s.logger.Error("Failed to update subscription during backfill",
			zap.String("merchant_id", row.MerchantID.String()),
			zap.Error(err))
		result.Outcome = BackfillFailed
		return result
	}

	// Push the derived count back into the vendor metadata so both sides
	// agree going forward. Best effort: a failure here does not undo the
	// row update above.
	s.pushSeatMetadata(ctx, vendorSub, seats)

	result.Outcome = BackfillUpdated
	return result
}

// resolveVendorSubscription finds the merchant's live vendor subscription.
// Resolution order: vendor-side search by merchant metadata, then a list of
// the stored customer's subscriptions, then a direct retrieve of the stored
// subscription ID. Each path's candidates are ranked best-first. Vendor API
// failures are logged and the next path is tried.
func (s *SeatBackfillService) resolveVendorSubscription(ctx context.Context, row db.Subscription) (payments.Subscription, bool) {
	var candidates []payments.Subscription
	err := s.callVendor(ctx, func() error {
		var searchErr error
		candidates, searchErr = s.vendor.SearchSubscriptionsByMerchant(ctx, row.MerchantID.String())
		return searchErr
	})
	if err != nil {
		s.logger.Warn("Vendor search by merchant metadata failed",
			zap.String("merchant_id", row.MerchantID.String()),
			zap.Error(err))
	} else if best, ok := PickBestSubscription(candidates); ok {
		return best, true
	}

	if row.ProviderCustomerID.Valid {
		err := s.callVendor(ctx, func() error {
			var listErr error
			candidates, listErr = s.vendor.ListSubscriptionsByCustomer(ctx, row.ProviderCustomerID.String)
			return listErr
		})
		if err != nil {
			s.logger.Warn("Vendor list by customer failed",
				zap.String("merchant_id", row.MerchantID.String()),
				zap.String("provider_customer_id", row.ProviderCustomerID.String),
				zap.Error(err))
		} else if best, ok := PickBestSubscription(candidates); ok {
			return best, true
		}
	}

	if row.ProviderSubscriptionID.Valid {
		var sub payments.Subscription
		err := s.callVendor(ctx, func() error {
			var getErr error
			sub, getErr = s.vendor.GetSubscription(ctx, row.ProviderSubscriptionID.String)
			return getErr
		})
		if err != nil {
			s.logger.Warn("Vendor retrieve by subscription ID failed",
				zap.String("merchant_id", row.MerchantID.String()),
				zap.String("provider_subscription_id", row.ProviderSubscriptionID.String),
				zap.Error(err))
		} else {
			return sub, true
		}
	}

	return payments.Subscription{}, false
}

// pushSeatMetadata writes the derived seat count into the vendor metadata when
// the vendor's stored value disagrees.
func (s *SeatBackfillService) pushSeatMetadata(ctx context.Context, vendorSub payments.Subscription, seats int32) {
	if current, err := strconv.Atoi(vendorSub.Metadata["seats_count"]); err == nil && int32(current) == seats {
		return
	}

	err := s.callVendor(ctx, func() error {
		_, updateErr := s.vendor.UpdateSubscriptionMetadata(ctx, vendorSub.ExternalID, map[string]string{
			"seats_count": strconv.Itoa(int(seats)),
		})
		return updateErr
	})
	if err != nil {
		s.logger.Error("Failed to push seat count to vendor metadata",
			zap.String("provider_subscription_id", vendorSub.ExternalID),
			zap.Int32("seats", seats),
			zap.Error(err))
	}
}

// callVendor paces and retries one vendor API call. Client errors other than
// rate limiting are not retried.
func (s *SeatBackfillService) callVendor(ctx context.Context, op func() error) error {
	return backoff.Retry(func() error {
		if err := s.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}
		err := op()
		if err != nil && !isRetryableVendorError(err) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx))
}

func isRetryableVendorError(err error) bool {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.HTTPStatusCode == http.StatusTooManyRequests {
			return true
		}
		return stripeErr.HTTPStatusCode < http.StatusBadRequest || stripeErr.HTTPStatusCode >= http.StatusInternalServerError
	}
	return true
}
