package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/openalert/billing-api/internal/client/payments"
	"github.com/openalert/billing-api/internal/logger"
	"github.com/openalert/billing-api/internal/services"
)

// WebhookHandler receives billing webhooks from payment vendors
type WebhookHandler struct {
	vendors    map[string]payments.Client
	reconciler *services.SubscriptionReconciler
}

// NewWebhookHandler creates a new webhook handler with the configured vendor
// clients keyed by provider name
func NewWebhookHandler(vendors map[string]payments.Client, reconciler *services.SubscriptionReconciler) *WebhookHandler {
	return &WebhookHandler{
		vendors:    vendors,
		reconciler: reconciler,
	}
}

// WebhookResponse acknowledges a verified webhook delivery
type WebhookResponse struct {
	Received bool `json:"received"`
}

// signatureHeaderName returns the vendor-specific signature header for a provider
func signatureHeaderName(provider string) string {
	switch provider {
	case "stripe":
		return "Stripe-Signature"
	default:
		return ""
	}
}

// HandleProviderWebhook godoc
// @Summary Receive a billing webhook
// @Description Verifies and processes a subscription billing event from a payment vendor
// @Tags webhooks
// @Accept json
// @Produce json
// @Param provider path string true "Payment provider (e.g. stripe)"
// @Success 200 {object} WebhookResponse
// @Failure 400 {object} ErrorResponse
// @Router /webhooks/{provider} [post]
func (h *WebhookHandler) HandleProviderWebhook(c *gin.Context) {
	provider := c.Param("provider")

	vendor, ok := h.vendors[provider]
	if !ok {
		sendError(c, http.StatusBadRequest, "Unsupported provider", nil)
		return
	}

	headerName := signatureHeaderName(provider)
	if headerName == "" {
		sendError(c, http.StatusBadRequest, "Unsupported provider", nil)
		return
	}
	signature := c.GetHeader(headerName)
	if signature == "" {
		sendError(c, http.StatusBadRequest, "Missing signature header", nil)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	event, err := vendor.VerifyWebhook(c.Request.Context(), body, signature)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Webhook verification failed", err)
		return
	}

	// Once the signature is verified the vendor always gets a 200, even when
	// downstream processing degrades. Erroring here would put every later
	// delivery into the vendor's retry escalation.
	result := h.reconciler.HandleWebhookEvent(c.Request.Context(), event)

	logger.Debug("Webhook handled",
		zap.String("provider", provider),
		zap.String("event_type", event.EventType),
		zap.String("outcome", string(result.Outcome)))

	sendSuccess(c, http.StatusOK, WebhookResponse{Received: true})
}
