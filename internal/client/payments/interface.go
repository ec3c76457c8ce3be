package payments

import "context"

// Subscription is the canonical, provider-neutral view of a billing
// subscription. Timestamps are Unix seconds; zero or negative means unset.
type Subscription struct {
	ExternalID         string // ID from the billing vendor (e.g. Stripe sub_xxx)
	CustomerID         string // Vendor customer ID (e.g. Stripe cus_xxx)
	Status             string // Vendor status string, e.g. "active", "trialing", "past_due"
	CancelAtPeriodEnd  bool
	CurrentPeriodStart int64
	CurrentPeriodEnd   int64
	TrialStart         int64
	TrialEnd           int64
	CanceledAt         int64
	CreatedAt          int64
	Pause              *PauseCollection // Non-nil when the vendor reports payment collection paused
	Items              []SubscriptionItem
	Metadata           map[string]string
}

// PauseCollection describes a vendor-side pause of payment collection.
type PauseCollection struct {
	Behavior  string // e.g. "void", "keep_as_draft", "mark_uncollectible"
	ResumesAt int64  // Unix timestamp, zero when open-ended
}

// SubscriptionItem represents a line item within a subscription.
type SubscriptionItem struct {
	ExternalID string
	PriceID    string // Vendor price ID
	Quantity   int64
	Metadata   map[string]string
}

// WebhookEvent represents a normalized webhook event from any payment provider.
type WebhookEvent struct {
	ProviderEventID string // The event ID from the provider (e.g. Stripe evt_xxx)
	Provider        string // e.g. "stripe"
	EventType       string // e.g. "customer.subscription.updated"
	ReceivedAt      int64  // Unix timestamp when our system received it
	CreatedAt       int64  // Unix timestamp from the provider, when the event was created
	RawData         []byte // Raw event payload for auditing
	SignatureValid  bool   // Whether the webhook signature was successfully verified
	// Subscription is populated for subscription lifecycle events; nil otherwise.
	Subscription *Subscription
}

// Client defines the interface for interacting with a subscription billing
// vendor. Implementations handle the specifics of each platform.
type Client interface {
	// GetServiceName returns a unique identifier for the implementation (e.g. "stripe").
	GetServiceName() string

	// Configure initializes the client with credentials and settings.
	// config contains platform-specific keys like "api_key", "webhook_secret".
	Configure(ctx context.Context, config map[string]string) error

	// CheckConnection verifies connectivity to the vendor.
	CheckConnection(ctx context.Context) error

	// VerifyWebhook validates an incoming webhook request and maps it to a
	// canonical WebhookEvent. The signatureHeader is the raw value from the
	// vendor's signature HTTP header (e.g. "Stripe-Signature").
	VerifyWebhook(ctx context.Context, requestBody []byte, signatureHeader string) (WebhookEvent, error)

	// GetSubscription retrieves a subscription by its vendor ID.
	GetSubscription(ctx context.Context, externalID string) (Subscription, error)

	// ListSubscriptionsByCustomer retrieves all subscriptions for a vendor customer.
	ListSubscriptionsByCustomer(ctx context.Context, customerID string) ([]Subscription, error)

	// SearchSubscriptionsByMerchant finds subscriptions carrying the given
	// merchant ID in their vendor metadata.
	SearchSubscriptionsByMerchant(ctx context.Context, merchantID string) ([]Subscription, error)

	// UpdateSubscriptionMetadata merges the given keys into the vendor-side
	// subscription metadata.
	UpdateSubscriptionMetadata(ctx context.Context, externalID string, metadata map[string]string) (Subscription, error)
}
