package stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/openalert/billing-api/internal/client/payments"
)

// mapStripeSubscriptionItem converts a Stripe SubscriptionItem to the canonical item.
func mapStripeSubscriptionItem(stripeItem *stripe.SubscriptionItem) payments.SubscriptionItem {
	if stripeItem == nil {
		return payments.SubscriptionItem{}
	}

	var priceID string
	if stripeItem.Price != nil {
		priceID = stripeItem.Price.ID
	}

	return payments.SubscriptionItem{
		ExternalID: stripeItem.ID,
		PriceID:    priceID,
		Quantity:   stripeItem.Quantity,
		Metadata:   stripeItem.Metadata,
	}
}

// mapStripeSubscription converts a Stripe Subscription object to the canonical
// payments.Subscription. Billing period timestamps live on the subscription
// items in this API version, so the first item's period is taken as primary.
func mapStripeSubscription(stripeSub *stripe.Subscription) payments.Subscription {
	if stripeSub == nil {
		return payments.Subscription{}
	}

	var items []payments.SubscriptionItem
	var primaryCurrentPeriodStart int64
	var primaryCurrentPeriodEnd int64

	if stripeSub.Items != nil && len(stripeSub.Items.Data) > 0 {
		items = make([]payments.SubscriptionItem, len(stripeSub.Items.Data))
		for i, item := range stripeSub.Items.Data {
			items[i] = mapStripeSubscriptionItem(item)
		}
		if stripeSub.Items.Data[0] != nil {
			primaryCurrentPeriodStart = stripeSub.Items.Data[0].CurrentPeriodStart
			primaryCurrentPeriodEnd = stripeSub.Items.Data[0].CurrentPeriodEnd
		}
	}

	var customerID string
	if stripeSub.Customer != nil {
		customerID = stripeSub.Customer.ID
	}

	var pause *payments.PauseCollection
	if stripeSub.PauseCollection != nil {
		pause = &payments.PauseCollection{
			Behavior:  string(stripeSub.PauseCollection.Behavior),
			ResumesAt: stripeSub.PauseCollection.ResumesAt,
		}
	}

	return payments.Subscription{
		ExternalID:         stripeSub.ID,
		CustomerID:         customerID,
		Status:             string(stripeSub.Status),
		CancelAtPeriodEnd:  stripeSub.CancelAtPeriodEnd,
		CurrentPeriodStart: primaryCurrentPeriodStart,
		CurrentPeriodEnd:   primaryCurrentPeriodEnd,
		TrialStart:         stripeSub.TrialStart,
		TrialEnd:           stripeSub.TrialEnd,
		CanceledAt:         stripeSub.CanceledAt,
		CreatedAt:          stripeSub.Created,
		Pause:              pause,
		Items:              items,
		Metadata:           stripeSub.Metadata,
	}
}

// GetSubscription retrieves a subscription by its external ID from Stripe.
func (s *StripeService) GetSubscription(ctx context.Context, externalID string) (payments.Subscription, error) {
	if s.client == nil {
		return payments.Subscription{}, fmt.Errorf("stripe client not configured")
	}

	params := &stripe.SubscriptionRetrieveParams{}
	params.AddExpand("items.data")

	stripeSub, err := s.client.V1Subscriptions.Retrieve(ctx, externalID, params)
	if err != nil {
		s.logger.Error("Failed to fetch Stripe subscription", zap.Error(err), zap.String("stripe_subscription_id", externalID))
		return payments.Subscription{}, fmt.Errorf("stripe_service.GetSubscription: %w", err)
	}

	return mapStripeSubscription(stripeSub), nil
}

// ListSubscriptionsByCustomer retrieves all subscriptions for a Stripe customer,
// including canceled ones.
func (s *StripeService) ListSubscriptionsByCustomer(ctx context.Context, customerID string) ([]payments.Subscription, error) {
	if s.client == nil {
		return nil, fmt.Errorf("stripe client not configured")
	}

	stripeParams := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerID),
		Status:   stripe.String("all"),
	}
	stripeParams.AddExpand("items.data")

	var subscriptions []payments.Subscription
	for stripeSub, err := range s.client.V1Subscriptions.List(ctx, stripeParams) {
		if err != nil {
			s.logger.Error("Error iterating Stripe subscriptions list", zap.Error(err), zap.String("stripe_customer_id", customerID))
			return nil, fmt.Errorf("stripe_service.ListSubscriptionsByCustomer: error during iteration: %w", err)
		}
		if stripeSub == nil {
			continue
		}
		subscriptions = append(subscriptions, mapStripeSubscription(stripeSub))
	}

	return subscriptions, nil
}

// SearchSubscriptionsByMerchant finds subscriptions that carry the given
// merchant ID in their Stripe metadata.
func (s *StripeService) SearchSubscriptionsByMerchant(ctx context.Context, merchantID string) ([]payments.Subscription, error) {
	if s.client == nil {
		return nil, fmt.Errorf("stripe client not configured")
	}

	searchParams := &stripe.SubscriptionSearchParams{
		SearchParams: stripe.SearchParams{
			Query: fmt.Sprintf("metadata['merchant_id']:'%s'", merchantID),
		},
	}

	var subscriptions []payments.Subscription
	for stripeSub, err := range s.client.V1Subscriptions.Search(ctx, searchParams) {
		if err != nil {
			s.logger.Error("Error iterating Stripe subscription search", zap.Error(err), zap.String("merchant_id", merchantID))
			return nil, fmt.Errorf("stripe_service.SearchSubscriptionsByMerchant: error during iteration: %w", err)
		}
		if stripeSub == nil {
			continue
		}
		subscriptions = append(subscriptions, mapStripeSubscription(stripeSub))
	}

	return subscriptions, nil
}

// UpdateSubscriptionMetadata merges the given keys into the subscription's
// Stripe metadata. Existing keys not named are left untouched.
func (s *StripeService) UpdateSubscriptionMetadata(ctx context.Context, externalID string, metadata map[string]string) (payments.Subscription, error) {
	if s.client == nil {
		return payments.Subscription{}, fmt.Errorf("stripe client not configured")
	}

	params := &stripe.SubscriptionUpdateParams{
		Metadata: metadata,
	}
	params.AddExpand("items.data")

	s.logger.Info("Updating Stripe subscription metadata", zap.String("stripe_subscription_id", externalID))

	updatedStripeSub, err := s.client.V1Subscriptions.Update(ctx, externalID, params)
	if err != nil {
		s.logger.Error("Failed to update Stripe subscription metadata", zap.Error(err), zap.String("stripe_subscription_id", externalID))
		return payments.Subscription{}, fmt.Errorf("stripe_service.UpdateSubscriptionMetadata: %w", err)
	}

	return mapStripeSubscription(updatedStripeSub), nil
}
