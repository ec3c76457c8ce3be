package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/openalert/billing-api/internal/services"
)

// BillingHandler exposes read access to merchant subscription state, plans,
// and the billing event audit log
type BillingHandler struct {
	common        *CommonServices
	billingEvents *services.BillingEventService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(common *CommonServices, billingEvents *services.BillingEventService) *BillingHandler {
	return &BillingHandler{
		common:        common,
		billingEvents: billingEvents,
	}
}

// GetMerchantSubscription godoc
// @Summary Get a merchant's subscription
// @Description Retrieves the subscription row for a merchant
// @Tags billing
// @Accept json
// @Produce json
// @Param merchant_id path string true "Merchant ID"
// @Success 200 {object} db.Subscription
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /merchants/{merchant_id}/subscription [get]
func (h *BillingHandler) GetMerchantSubscription(c *gin.Context) {
	merchantID, err := uuid.Parse(c.Param("merchant_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid merchant ID format", err)
		return
	}

	subscription, err := h.common.db.GetSubscriptionByMerchant(c.Request.Context(), merchantID)
	if err != nil {
		handleDBError(c, err, "Subscription not found")
		return
	}

	sendSuccess(c, http.StatusOK, subscription)
}

// ListMerchantBillingEvents godoc
// @Summary List a merchant's billing events
// @Description Returns a page of the merchant's billing event audit log, newest first
// @Tags billing
// @Accept json
// @Produce json
// @Param merchant_id path string true "Merchant ID"
// @Param limit query int false "Page size (default 25, max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /merchants/{merchant_id}/billing-events [get]
func (h *BillingHandler) ListMerchantBillingEvents(c *gin.Context) {
	merchantID, err := uuid.Parse(c.Param("merchant_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid merchant ID format", err)
		return
	}

	limit := parseQueryInt(c, "limit", 25)
	if limit < 1 || limit > 100 {
		limit = 25
	}
	offset := parseQueryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	events, total, err := h.billingEvents.ListMerchantBillingEvents(c.Request.Context(), merchantID, limit, offset)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list billing events", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   events,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// ListPlans godoc
// @Summary List plans
// @Description Lists the plan catalog ordered by price
// @Tags billing
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /plans [get]
func (h *BillingHandler) ListPlans(c *gin.Context) {
	plans, err := h.common.db.ListPlans(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list plans", err)
		return
	}

	sendList(c, plans)
}

// GetPlan godoc
// @Summary Get a plan
// @Description Retrieves one plan from the catalog
// @Tags billing
// @Accept json
// @Produce json
// @Param plan_id path string true "Plan ID"
// @Success 200 {object} db.Plan
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /plans/{plan_id} [get]
func (h *BillingHandler) GetPlan(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("plan_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid plan ID format", err)
		return
	}

	plan, err := h.common.db.GetPlan(c.Request.Context(), planID)
	if err != nil {
		handleDBError(c, err, "Plan not found")
		return
	}

	sendSuccess(c, http.StatusOK, plan)
}

// ListSubscriptions godoc
// @Summary List subscriptions
// @Description Lists subscriptions, optionally filtered by status
// @Tags billing
// @Accept json
// @Produce json
// @Param status query string false "Filter by internal status (e.g. past_due)"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /subscriptions [get]
func (h *BillingHandler) ListSubscriptions(c *gin.Context) {
	ctx := c.Request.Context()

	if status := c.Query("status"); status != "" {
		subscriptions, err := h.common.db.ListSubscriptionsByStatus(ctx, status)
		if err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to list subscriptions", err)
			return
		}
		sendList(c, subscriptions)
		return
	}

	subscriptions, err := h.common.db.ListSubscriptions(ctx)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list subscriptions", err)
		return
	}
	sendList(c, subscriptions)
}

func parseQueryInt(c *gin.Context, key string, fallback int32) int32 {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return int32(n)
}
