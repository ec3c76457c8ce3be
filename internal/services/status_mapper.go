package services

import "github.com/openalert/billing-api/internal/client/payments"

// Internal subscription statuses. Stored as plain text so that a vendor
// status we have never seen still lands in the row unchanged.
const (
	StatusTrialing   = "trialing"
	StatusActive     = "active"
	StatusPastDue    = "past_due"
	StatusCanceled   = "canceled"
	StatusIncomplete = "incomplete"
	StatusPaused     = "paused"
)

// MapSubscriptionStatus translates a vendor subscription status into the
// internal status. A present pause-collection wins over whatever status
// string the vendor reports.
func MapSubscriptionStatus(vendorStatus string, pause *payments.PauseCollection) string {
	if pause != nil {
		return StatusPaused
	}

	switch vendorStatus {
	case StatusTrialing, StatusActive, StatusPastDue, StatusCanceled:
		return vendorStatus
	case "unpaid":
		return StatusPastDue
	case "incomplete":
		return StatusIncomplete
	case "incomplete_expired":
		return StatusCanceled
	default:
		// Forward-compatible: unknown vendor statuses pass through unchanged.
		return vendorStatus
	}
}
