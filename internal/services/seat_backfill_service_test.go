package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/mock/gomock"

	"github.com/openalert/billing-api/internal/client/payments"
	"github.com/openalert/billing-api/internal/db"
	"github.com/openalert/billing-api/internal/mocks"
	"github.com/openalert/billing-api/internal/services"
)

func newTestBackfill(t *testing.T) (*services.SeatBackfillService, *mocks.MockQuerier, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockVendor := mocks.NewMockClient(ctrl)
	seatPriceIDs := map[string]bool{"price_seat": true}
	reconciler := services.NewSubscriptionReconciler(mockQuerier, services.NewBillingEventService(mockQuerier), nil, nil, seatPriceIDs)
	backfill := services.NewSeatBackfillService(mockQuerier, mockVendor, reconciler, seatPriceIDs)
	return backfill, mockQuerier, mockVendor
}

func TestSeatBackfillService_Run_DryRun(t *testing.T) {
	backfill, mockQuerier, mockVendor := newTestBackfill(t)
	ctx := context.Background()

	merchantID := uuid.New()
	row := db.Subscription{
		ID:         uuid.New(),
		MerchantID: merchantID,
		Provider:   "stripe",
		Status:     "active",
		Seats:      1,
	}

	vendorSub := payments.Subscription{
		ExternalID: "sub_123",
		Status:     "active",
		Items: []payments.SubscriptionItem{
			{PriceID: "price_seat", Quantity: 5},
		},
	}

	mockQuerier.EXPECT().ListSubscriptions(ctx).Return([]db.Subscription{row}, nil)
	mockVendor.EXPECT().SearchSubscriptionsByMerchant(ctx, merchantID.String()).Return([]payments.Subscription{vendorSub}, nil)
	// No UpdateSubscriptionByMerchant and no UpdateSubscriptionMetadata calls
	// may happen in a dry run; the mock controller enforces that.

	report, err := backfill.Run(ctx, true)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.DryRun)
	assert.Equal(t, 0, report.Updated)
	assert.Equal(t, 0, report.Missing)
	assert.Equal(t, 0, report.Failed)
	assert.Len(t, report.Results, 1)
	assert.Equal(t, services.BackfillDryRun, report.Results[0].Outcome)
	assert.Equal(t, int32(5), report.Results[0].Seats)
	assert.Equal(t, services.StatusActive, report.Results[0].Status)
}

func TestSeatBackfillService_Run_UpdatesAndPushesMetadata(t *testing.T) {
	backfill, mockQuerier, mockVendor := newTestBackfill(t)
	ctx := context.Background()

	merchantID := uuid.New()
	row := db.Subscription{
		ID:         uuid.New(),
		MerchantID: merchantID,
		Provider:   "stripe",
		Status:     "active",
		Seats:      2,
	}

	vendorSub := payments.Subscription{
		ExternalID: "sub_123",
		CustomerID: "cus_123",
		Status:     "active",
		Items: []payments.SubscriptionItem{
			{PriceID: "price_seat", Quantity: 4},
		},
		Metadata: map[string]string{"seats_count": "2"},
	}

	mockQuerier.EXPECT().ListSubscriptions(ctx).Return([]db.Subscription{row}, nil)
	mockVendor.EXPECT().SearchSubscriptionsByMerchant(ctx, merchantID.String()).Return([]payments.Subscription{vendorSub}, nil)
	mockQuerier.EXPECT().UpdateSubscriptionByMerchant(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.UpdateSubscriptionByMerchantParams) (db.Subscription, error) {
			assert.Equal(t, merchantID, arg.MerchantID)
			assert.Equal(t, pgtype.Int4{Int32: 4, Valid: true}, arg.Seats)
			assert.Equal(t, "active", arg.Status)
			return db.Subscription{ID: row.ID, MerchantID: merchantID, Status: "active", Seats: 4}, nil
		})
	mockVendor.EXPECT().UpdateSubscriptionMetadata(ctx, "sub_123", map[string]string{"seats_count": "4"}).Return(vendorSub, nil)

	report, err := backfill.Run(ctx, false)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, services.BackfillUpdated, report.Results[0].Outcome)
	assert.Equal(t, int32(4), report.Results[0].Seats)
}

func TestSeatBackfillService_Run_SkipsMetadataPushWhenVendorAgrees(t *testing.T) {
	backfill, mockQuerier, mockVendor := newTestBackfill(t)
	ctx := context.Background()

	merchantID := uuid.New()
	row := db.Subscription{
		ID:         uuid.New(),
		MerchantID: merchantID,
		Provider:   "stripe",
		Status:     "active",
		Seats:      3,
	}

	vendorSub := payments.Subscription{
		ExternalID: "sub_123",
		Status:     "active",
		Items: []payments.SubscriptionItem{
			{PriceID: "price_seat", Quantity: 3},
		},
		Metadata: map[string]string{"seats_count": "3"},
	}

	mockQuerier.EXPECT().ListSubscriptions(ctx).Return([]db.Subscription{row}, nil)
	mockVendor.EXPECT().SearchSubscriptionsByMerchant(ctx, merchantID.String()).Return([]payments.Subscription{vendorSub}, nil)
	mockQuerier.EXPECT().UpdateSubscriptionByMerchant(ctx, gomock.Any()).Return(db.Subscription{ID: row.ID, MerchantID: merchantID}, nil)
	// Vendor metadata already carries the derived count, so no
	// UpdateSubscriptionMetadata call is expected.

	report, err := backfill.Run(ctx, false)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.Updated)
}

func TestSeatBackfillService_Run_ResolutionFallbacks(t *testing.T) {
	backfill, mockQuerier, mockVendor := newTestBackfill(t)
	ctx := context.Background()

	merchantID := uuid.New()
	row := db.Subscription{
		ID:                     uuid.New(),
		MerchantID:             merchantID,
		Provider:               "stripe",
		Status:                 "active",
		Seats:                  1,
		ProviderCustomerID:     pgtype.Text{String: "cus_123", Valid: true},
		ProviderSubscriptionID: pgtype.Text{String: "sub_123", Valid: true},
	}

	vendorSub := payments.Subscription{
		ExternalID: "sub_123",
		CustomerID: "cus_123",
		Status:     "active",
		Metadata:   map[string]string{"seats_count": "2"},
	}

	mockQuerier.EXPECT().ListSubscriptions(ctx).Return([]db.Subscription{row}, nil)
	mockVendor.EXPECT().SearchSubscriptionsByMerchant(ctx, merchantID.String()).Return(nil, nil)
	mockVendor.EXPECT().ListSubscriptionsByCustomer(ctx, "cus_123").Return(nil, nil)
	mockVendor.EXPECT().GetSubscription(ctx, "sub_123").Return(vendorSub, nil)

	report, err := backfill.Run(ctx, true)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.DryRun)
	assert.Equal(t, int32(2), report.Results[0].Seats)
}

func TestSeatBackfillService_Run_MissingWhenNothingFound(t *testing.T) {
	backfill, mockQuerier, mockVendor := newTestBackfill(t)
	ctx := context.Background()

	merchantID := uuid.New()
	row := db.Subscription{
		ID:         uuid.New(),
		MerchantID: merchantID,
		Provider:   "stripe",
		Status:     "active",
	}

	mockQuerier.EXPECT().ListSubscriptions(ctx).Return([]db.Subscription{row}, nil)
	mockVendor.EXPECT().SearchSubscriptionsByMerchant(ctx, merchantID.String()).Return(nil, nil)

	report, err := backfill.Run(ctx, false)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.Missing)
	assert.Equal(t, services.BackfillMissing, report.Results[0].Outcome)
}

func TestSeatBackfillService_Run_VendorFailureMarksMissingAndContinues(t *testing.T) {
	backfill, mockQuerier, mockVendor := newTestBackfill(t)
	ctx := context.Background()

	brokenID := uuid.New()
	healthyID := uuid.New()
	rows := []db.Subscription{
		{ID: uuid.New(), MerchantID: brokenID, Provider: "stripe", Status: "active"},
		{ID: uuid.New(), MerchantID: healthyID, Provider: "stripe", Status: "active"},
	}

	vendorSub := payments.Subscription{
		ExternalID: "sub_healthy",
		Status:     "active",
		Metadata:   map[string]string{"seats_count": "2"},
	}

	mockQuerier.EXPECT().ListSubscriptions(ctx).Return(rows, nil)
	mockVendor.EXPECT().SearchSubscriptionsByMerchant(ctx, brokenID.String()).Return(nil, errors.New("vendor unavailable")).AnyTimes()
	mockVendor.EXPECT().SearchSubscriptionsByMerchant(ctx, healthyID.String()).Return([]payments.Subscription{vendorSub}, nil)

	report, err := backfill.Run(ctx, true)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.Missing)
	assert.Equal(t, 1, report.DryRun)
	assert.Equal(t, services.BackfillMissing, report.Results[0].Outcome)
	assert.Equal(t, services.BackfillDryRun, report.Results[1].Outcome)
}

func TestSeatBackfillService_Run_VendorClientErrorIsNotRetried(t *testing.T) {
	backfill, mockQuerier, mockVendor := newTestBackfill(t)
	ctx := context.Background()

	merchantID := uuid.New()
	row := db.Subscription{
		ID:                     uuid.New(),
		MerchantID:             merchantID,
		Provider:               "stripe",
		Status:                 "active",
		ProviderSubscriptionID: pgtype.Text{String: "sub_gone", Valid: true},
	}

	notFound := &stripe.Error{HTTPStatusCode: 404, Code: stripe.ErrorCodeResourceMissing}

	mockQuerier.EXPECT().ListSubscriptions(ctx).Return([]db.Subscription{row}, nil)
	mockVendor.EXPECT().SearchSubscriptionsByMerchant(ctx, merchantID.String()).Return(nil, nil)
	// A 404 on a deleted subscription must not be retried: exactly one call.
	mockVendor.EXPECT().GetSubscription(ctx, "sub_gone").Return(payments.Subscription{}, notFound).Times(1)

	report, err := backfill.Run(ctx, false)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.Missing)
	assert.Equal(t, services.BackfillMissing, report.Results[0].Outcome)
}

func TestSeatBackfillService_Run_StoreFailureMarksFailed(t *testing.T) {
	backfill, mockQuerier, mockVendor := newTestBackfill(t)
	ctx := context.Background()

	merchantID := uuid.New()
	row := db.Subscription{
		ID:         uuid.New(),
		MerchantID: merchantID,
		Provider:   "stripe",
		Status:     "active",
	}

	vendorSub := payments.Subscription{
		ExternalID: "sub_123",
		Status:     "active",
		Metadata:   map[string]string{"seats_count": "2"},
	}

	mockQuerier.EXPECT().ListSubscriptions(ctx).Return([]db.Subscription{row}, nil)
	mockVendor.EXPECT().SearchSubscriptionsByMerchant(ctx, merchantID.String()).Return([]payments.Subscription{vendorSub}, nil)
	mockQuerier.EXPECT().UpdateSubscriptionByMerchant(ctx, gomock.Any()).Return(db.Subscription{}, errors.New(errMsgDatabaseError))
	// The metadata push is skipped when the row update fails.

	report, err := backfill.Run(ctx, false)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, services.BackfillFailed, report.Results[0].Outcome)
}

func TestSeatBackfillService_Run_ListFailureAborts(t *testing.T) {
	backfill, mockQuerier, _ := newTestBackfill(t)
	ctx := context.Background()

	mockQuerier.EXPECT().ListSubscriptions(ctx).Return(nil, errors.New(errMsgDatabaseError))

	_, err := backfill.Run(ctx, false)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), errMsgFailedToList+" subscriptions")
}
