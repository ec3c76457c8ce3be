package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/openalert/billing-api/internal/client/payments"
	"github.com/openalert/billing-api/internal/db"
	"github.com/openalert/billing-api/internal/handlers"
	"github.com/openalert/billing-api/internal/logger"
	"github.com/openalert/billing-api/internal/mocks"
	"github.com/openalert/billing-api/internal/services"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

func newWebhookRouter(vendor payments.Client, mockQuerier *mocks.MockQuerier) *gin.Engine {
	events := services.NewBillingEventService(mockQuerier)
	reconciler := services.NewSubscriptionReconciler(mockQuerier, events, nil, nil, nil)
	handler := handlers.NewWebhookHandler(map[string]payments.Client{"stripe": vendor}, reconciler)

	r := gin.New()
	r.POST("/webhooks/:provider", handler.HandleProviderWebhook)
	return r
}

func postWebhook(r *gin.Engine, path, signature string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookHandler_HandleProviderWebhook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockVendor := mocks.NewMockClient(ctrl)
	router := newWebhookRouter(mockVendor, mockQuerier)

	merchantID := uuid.New()
	rowID := uuid.New()
	payload := []byte(`{"id":"evt_123","type":"customer.subscription.updated"}`)

	t.Run("unsupported provider returns 400", func(t *testing.T) {
		w := postWebhook(router, "/webhooks/paypal", "sig", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing signature header returns 400", func(t *testing.T) {
		w := postWebhook(router, "/webhooks/stripe", "", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("failed verification returns 400 and writes nothing", func(t *testing.T) {
		mockVendor.EXPECT().VerifyWebhook(gomock.Any(), payload, "bad-sig").
			Return(payments.WebhookEvent{SignatureValid: false}, errors.New("signature mismatch"))

		w := postWebhook(router, "/webhooks/stripe", "bad-sig", payload)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("verified event is reconciled and acknowledged", func(t *testing.T) {
		event := payments.WebhookEvent{
			ProviderEventID: "evt_123",
			Provider:        "stripe",
			EventType:       "customer.subscription.updated",
			RawData:         payload,
			SignatureValid:  true,
			Subscription: &payments.Subscription{
				ExternalID: "sub_123",
				CustomerID: "cus_123",
				Status:     "active",
				Metadata:   map[string]string{"merchant_id": merchantID.String()},
			},
		}

		mockVendor.EXPECT().VerifyWebhook(gomock.Any(), payload, "good-sig").Return(event, nil)
		mockQuerier.EXPECT().GetSubscriptionByMerchant(gomock.Any(), merchantID).Return(db.Subscription{}, pgx.ErrNoRows)
		mockQuerier.EXPECT().UpsertSubscription(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.UpsertSubscriptionParams) (db.Subscription, error) {
				assert.Equal(t, merchantID, arg.MerchantID)
				assert.Equal(t, "active", arg.Status)
				return db.Subscription{ID: rowID, MerchantID: merchantID, Status: "active"}, nil
			})
		mockQuerier.EXPECT().CreateBillingEvent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.CreateBillingEventParams) (db.BillingEvent, error) {
				assert.Equal(t, "evt_123", arg.ProviderEventID)
				assert.Equal(t, merchantID, arg.MerchantID)
				return db.BillingEvent{ID: uuid.New()}, nil
			})

		w := postWebhook(router, "/webhooks/stripe", "good-sig", payload)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp handlers.WebhookResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Received)
	})

	t.Run("verified event with store failure still returns 200", func(t *testing.T) {
		event := payments.WebhookEvent{
			ProviderEventID: "evt_456",
			Provider:        "stripe",
			EventType:       "customer.subscription.deleted",
			RawData:         payload,
			SignatureValid:  true,
			Subscription: &payments.Subscription{
				ExternalID: "sub_123",
				Status:     "canceled",
				Metadata:   map[string]string{"merchant_id": merchantID.String()},
			},
		}

		mockVendor.EXPECT().VerifyWebhook(gomock.Any(), payload, "good-sig").Return(event, nil)
		mockQuerier.EXPECT().GetSubscriptionByMerchant(gomock.Any(), merchantID).Return(db.Subscription{}, pgx.ErrNoRows)
		mockQuerier.EXPECT().UpsertSubscription(gomock.Any(), gomock.Any()).Return(db.Subscription{}, errors.New("database error"))
		mockQuerier.EXPECT().CreateBillingEvent(gomock.Any(), gomock.Any()).Return(db.BillingEvent{}, nil)

		w := postWebhook(router, "/webhooks/stripe", "good-sig", payload)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("verified event without subscription payload is acknowledged", func(t *testing.T) {
		event := payments.WebhookEvent{
			ProviderEventID: "evt_789",
			Provider:        "stripe",
			EventType:       "invoice.paid",
			RawData:         payload,
			SignatureValid:  true,
		}

		mockVendor.EXPECT().VerifyWebhook(gomock.Any(), payload, "good-sig").Return(event, nil)

		w := postWebhook(router, "/webhooks/stripe", "good-sig", payload)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
