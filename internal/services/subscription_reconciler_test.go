package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/openalert/billing-api/internal/client/payments"
	"github.com/openalert/billing-api/internal/db"
	"github.com/openalert/billing-api/internal/mocks"
	"github.com/openalert/billing-api/internal/services"
)

func newTestReconciler(mockQuerier *mocks.MockQuerier, seatPriceIDs map[string]bool) *services.SubscriptionReconciler {
	events := services.NewBillingEventService(mockQuerier)
	return services.NewSubscriptionReconciler(mockQuerier, events, nil, nil, seatPriceIDs)
}

func TestSubscriptionReconciler_ResolveMerchant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	reconciler := newTestReconciler(mockQuerier, nil)
	ctx := context.Background()

	merchantID := uuid.New()
	rowID := uuid.New()

	storedRow := db.Subscription{
		ID:                 rowID,
		MerchantID:         merchantID,
		Status:             "active",
		ProviderCustomerID: pgtype.Text{String: "cus_123", Valid: true},
	}

	tests := []struct {
		name           string
		sub            payments.Subscription
		setupMocks     func()
		wantResolved   bool
		wantMerchantID uuid.UUID
		wantPrevStatus string
	}{
		{
			name: "metadata merchant_id wins",
			sub: payments.Subscription{
				ExternalID: "sub_123",
				CustomerID: "cus_123",
				Metadata:   map[string]string{"merchant_id": merchantID.String()},
			},
			setupMocks: func() {
				mockQuerier.EXPECT().GetSubscriptionByMerchant(ctx, merchantID).Return(storedRow, nil)
			},
			wantResolved:   true,
			wantMerchantID: merchantID,
			wantPrevStatus: "active",
		},
		{
			name: "metadata merchant_id resolves without an existing row",
			sub: payments.Subscription{
				ExternalID: "sub_123",
				Metadata:   map[string]string{"merchant_id": merchantID.String()},
			},
			setupMocks: func() {
				mockQuerier.EXPECT().GetSubscriptionByMerchant(ctx, merchantID).Return(db.Subscription{}, pgx.ErrNoRows)
			},
			wantResolved:   true,
			wantMerchantID: merchantID,
			wantPrevStatus: "",
		},
		{
			name: "malformed metadata falls back to subscription ID lookup",
			sub: payments.Subscription{
				ExternalID: "sub_123",
				Metadata:   map[string]string{"merchant_id": "not-a-uuid"},
			},
			setupMocks: func() {
				mockQuerier.EXPECT().GetSubscriptionByProviderSubscriptionID(ctx, pgtype.Text{String: "sub_123", Valid: true}).Return(storedRow, nil)
			},
			wantResolved:   true,
			wantMerchantID: merchantID,
			wantPrevStatus: "active",
		},
		{
			name: "subscription ID lookup misses, customer ID lookup hits",
			sub: payments.Subscription{
				ExternalID: "sub_456",
				CustomerID: "cus_123",
			},
			setupMocks: func() {
				mockQuerier.EXPECT().GetSubscriptionByProviderSubscriptionID(ctx, pgtype.Text{String: "sub_456", Valid: true}).Return(db.Subscription{}, pgx.ErrNoRows)
				mockQuerier.EXPECT().GetSubscriptionByProviderCustomerID(ctx, pgtype.Text{String: "cus_123", Valid: true}).Return(storedRow, nil)
			},
			wantResolved:   true,
			wantMerchantID: merchantID,
			wantPrevStatus: "active",
		},
		{
			name: "nothing matches",
			sub: payments.Subscription{
				ExternalID: "sub_789",
				CustomerID: "cus_789",
			},
			setupMocks: func() {
				mockQuerier.EXPECT().GetSubscriptionByProviderSubscriptionID(ctx, pgtype.Text{String: "sub_789", Valid: true}).Return(db.Subscription{}, pgx.ErrNoRows)
				mockQuerier.EXPECT().GetSubscriptionByProviderCustomerID(ctx, pgtype.Text{String: "cus_789", Valid: true}).Return(db.Subscription{}, pgx.ErrNoRows)
			},
			wantResolved: false,
		},
		{
			name: "no identifiers at all",
			sub:  payments.Subscription{},
			setupMocks: func() {
			},
			wantResolved: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			resolution := reconciler.ResolveMerchant(ctx, tt.sub)

			assert.Equal(t, tt.wantResolved, resolution.Resolved)
			if tt.wantResolved {
				assert.Equal(t, tt.wantMerchantID, resolution.MerchantID)
				assert.Equal(t, tt.wantPrevStatus, resolution.PreviousStatus)
			}
		})
	}
}

func TestSubscriptionReconciler_HandleWebhookEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	reconciler := newTestReconciler(mockQuerier, map[string]bool{"price_seat": true})
	ctx := context.Background()

	merchantID := uuid.New()
	rowID := uuid.New()

	vendorSub := payments.Subscription{
		ExternalID:         "sub_123",
		CustomerID:         "cus_123",
		Status:             "active",
		CurrentPeriodStart: 1700000000,
		CurrentPeriodEnd:   1702592000,
		Items: []payments.SubscriptionItem{
			{PriceID: "price_seat", Quantity: 4},
		},
		Metadata: map[string]string{"merchant_id": merchantID.String()},
	}

	event := payments.WebhookEvent{
		ProviderEventID: "evt_123",
		Provider:        "stripe",
		EventType:       "customer.subscription.updated",
		CreatedAt:       1700000100,
		RawData:         []byte(`{"id":"evt_123"}`),
		SignatureValid:  true,
		Subscription:    &vendorSub,
	}

	t.Run("event without subscription payload is ignored", func(t *testing.T) {
		result := reconciler.HandleWebhookEvent(ctx, payments.WebhookEvent{
			ProviderEventID: "evt_ignored",
			EventType:       "invoice.paid",
		})
		assert.Equal(t, services.ReconcileIgnored, result.Outcome)
	})

	t.Run("unresolved merchant skips all writes", func(t *testing.T) {
		orphan := payments.Subscription{ExternalID: "sub_orphan", CustomerID: "cus_orphan"}
		mockQuerier.EXPECT().GetSubscriptionByProviderSubscriptionID(ctx, pgtype.Text{String: "sub_orphan", Valid: true}).Return(db.Subscription{}, pgx.ErrNoRows)
		mockQuerier.EXPECT().GetSubscriptionByProviderCustomerID(ctx, pgtype.Text{String: "cus_orphan", Valid: true}).Return(db.Subscription{}, pgx.ErrNoRows)

		result := reconciler.HandleWebhookEvent(ctx, payments.WebhookEvent{
			ProviderEventID: "evt_orphan",
			Provider:        "stripe",
			EventType:       "customer.subscription.updated",
			Subscription:    &orphan,
		})

		assert.Equal(t, services.ReconcileUnresolved, result.Outcome)
	})

	t.Run("resolved event upserts the row and records the audit event", func(t *testing.T) {
		var captured db.UpsertSubscriptionParams
		mockQuerier.EXPECT().GetSubscriptionByMerchant(ctx, merchantID).Return(db.Subscription{}, pgx.ErrNoRows)
		mockQuerier.EXPECT().UpsertSubscription(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.UpsertSubscriptionParams) (db.Subscription, error) {
				captured = arg
				return db.Subscription{ID: rowID, MerchantID: merchantID, Status: "active"}, nil
			})
		mockQuerier.EXPECT().CreateBillingEvent(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.CreateBillingEventParams) (db.BillingEvent, error) {
				assert.Equal(t, "evt_123", arg.ProviderEventID)
				assert.Equal(t, merchantID, arg.MerchantID)
				assert.Equal(t, uuid.NullUUID{UUID: rowID, Valid: true}, arg.SubscriptionID)
				assert.True(t, arg.Processed)
				return db.BillingEvent{ID: uuid.New()}, nil
			})

		result := reconciler.HandleWebhookEvent(ctx, event)

		assert.Equal(t, services.ReconcileUpserted, result.Outcome)
		assert.Equal(t, merchantID, result.MerchantID)
		assert.Equal(t, uuid.NullUUID{UUID: rowID, Valid: true}, result.SubscriptionID)
		assert.Equal(t, "active", result.Status)

		assert.Equal(t, merchantID, captured.MerchantID)
		assert.Equal(t, "stripe", captured.Provider)
		assert.Equal(t, "active", captured.Status)
		assert.Equal(t, pgtype.Int4{Int32: 4, Valid: true}, captured.Seats)
	})

	t.Run("audit event recorded even when the upsert fails", func(t *testing.T) {
		mockQuerier.EXPECT().GetSubscriptionByMerchant(ctx, merchantID).Return(db.Subscription{}, pgx.ErrNoRows)
		mockQuerier.EXPECT().UpsertSubscription(ctx, gomock.Any()).Return(db.Subscription{}, errors.New(errMsgDatabaseError))
		mockQuerier.EXPECT().CreateBillingEvent(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.CreateBillingEventParams) (db.BillingEvent, error) {
				assert.Equal(t, "evt_123", arg.ProviderEventID)
				assert.False(t, arg.SubscriptionID.Valid)
				return db.BillingEvent{ID: uuid.New()}, nil
			})

		result := reconciler.HandleWebhookEvent(ctx, event)

		assert.Equal(t, services.ReconcileFailed, result.Outcome)
		assert.Equal(t, merchantID, result.MerchantID)
	})
}

func TestSubscriptionReconciler_RepeatedUpsertIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	reconciler := newTestReconciler(mockQuerier, map[string]bool{"price_seat": true})
	ctx := context.Background()

	merchantID := uuid.New()
	planID := uuid.New()

	vendorSub := payments.Subscription{
		ExternalID:         "sub_123",
		CustomerID:         "cus_123",
		Status:             "past_due",
		CancelAtPeriodEnd:  true,
		CurrentPeriodStart: 1700000000,
		CurrentPeriodEnd:   1702592000,
		TrialStart:         1690000000,
		TrialEnd:           1692592000,
		Items: []payments.SubscriptionItem{
			{PriceID: "price_seat", Quantity: 3},
		},
		Metadata: map[string]string{"plan_id": planID.String()},
	}

	captured := make([]db.UpsertSubscriptionParams, 0, 2)
	mockQuerier.EXPECT().UpsertSubscription(ctx, gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, arg db.UpsertSubscriptionParams) (db.Subscription, error) {
			captured = append(captured, arg)
			return db.Subscription{ID: uuid.New(), MerchantID: merchantID, Status: arg.Status}, nil
		})

	_, err := reconciler.UpsertFromVendor(ctx, "stripe", merchantID, vendorSub, 3)
	assert.NoError(t, err)
	_, err = reconciler.UpsertFromVendor(ctx, "stripe", merchantID, vendorSub, 3)
	assert.NoError(t, err)

	// Applying the same vendor state twice writes identical field values,
	// the update stamp aside.
	first, second := captured[0], captured[1]
	first.UpdatedAt, second.UpdatedAt = pgtype.Timestamptz{}, pgtype.Timestamptz{}
	assert.Equal(t, first, second)
}

func TestSubscriptionReconciler_BuildSubscriptionUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	reconciler := newTestReconciler(mockQuerier, nil)

	merchantID := uuid.New()
	planID := uuid.New()

	t.Run("epoch timestamps at or below zero become null", func(t *testing.T) {
		params := reconciler.BuildSubscriptionUpdate("stripe", merchantID, payments.Subscription{
			ExternalID:         "sub_123",
			Status:             "trialing",
			CurrentPeriodStart: 1700000000,
			TrialStart:         0,
			TrialEnd:           -1,
		}, 1)

		assert.True(t, params.CurrentPeriodStart.Valid)
		assert.False(t, params.CurrentPeriodEnd.Valid)
		assert.False(t, params.TrialStart.Valid)
		assert.False(t, params.TrialEnd.Valid)
		assert.False(t, params.CanceledAt.Valid)
		assert.Equal(t, services.StatusTrialing, params.Status)
	})

	t.Run("pause stamps paused_at and clears on absence", func(t *testing.T) {
		paused := reconciler.BuildSubscriptionUpdate("stripe", merchantID, payments.Subscription{
			Status: "active",
			Pause:  &payments.PauseCollection{Behavior: "void", ResumesAt: 1710000000},
		}, 1)
		assert.Equal(t, services.StatusPaused, paused.Status)
		assert.True(t, paused.PausedAt.Valid)
		assert.True(t, paused.PauseResumesAt.Valid)

		resumed := reconciler.BuildSubscriptionUpdate("stripe", merchantID, payments.Subscription{
			Status: "active",
		}, 1)
		assert.Equal(t, services.StatusActive, resumed.Status)
		assert.False(t, resumed.PausedAt.Valid)
		assert.False(t, resumed.PauseResumesAt.Valid)
	})

	t.Run("plan_id metadata override", func(t *testing.T) {
		params := reconciler.BuildSubscriptionUpdate("stripe", merchantID, payments.Subscription{
			Status:   "active",
			Metadata: map[string]string{"plan_id": planID.String()},
		}, 1)
		assert.Equal(t, uuid.NullUUID{UUID: planID, Valid: true}, params.PlanID)
	})

	t.Run("malformed plan_id keeps the stored plan", func(t *testing.T) {
		params := reconciler.BuildSubscriptionUpdate("stripe", merchantID, payments.Subscription{
			Status:   "active",
			Metadata: map[string]string{"plan_id": "not-a-uuid"},
		}, 1)
		assert.False(t, params.PlanID.Valid)
	})

	t.Run("empty identifiers stored as null", func(t *testing.T) {
		params := reconciler.BuildSubscriptionUpdate("stripe", merchantID, payments.Subscription{
			Status: "active",
		}, 0)
		assert.False(t, params.ProviderCustomerID.Valid)
		assert.False(t, params.ProviderSubscriptionID.Valid)
		assert.False(t, params.Seats.Valid)
	})
}
