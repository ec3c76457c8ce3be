package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/openalert/billing-api/internal/client/payments"
)

// ParseSeatPriceIDs parses a comma-separated list of vendor price IDs that
// bill per staff seat (e.g. the SEAT_PRICE_IDS environment variable).
func ParseSeatPriceIDs(raw string) map[string]bool {
	ids := make(map[string]bool)
	for _, id := range strings.Split(raw, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids[id] = true
		}
	}
	return ids
}

// DeriveSeatCount derives the authoritative seat count from a vendor
// subscription. Resolution order:
//  1. quantity of the line item whose price is in the seat-price set
//  2. a positive integer seats_count in the vendor metadata
//  3. the maximum quantity across all line items
//  4. one seat
func DeriveSeatCount(sub payments.Subscription, seatPriceIDs map[string]bool) int32 {
	for _, item := range sub.Items {
		if seatPriceIDs[item.PriceID] && item.Quantity > 0 {
			return int32(item.Quantity)
		}
	}

	if raw, ok := sub.Metadata["seats_count"]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n > 0 {
			return int32(n)
		}
	}

	var maxQuantity int64
	for _, item := range sub.Items {
		if item.Quantity > maxQuantity {
			maxQuantity = item.Quantity
		}
	}
	if maxQuantity > 0 {
		return int32(maxQuantity)
	}

	return 1
}

// statusPriority ranks vendor subscriptions for picking the merchant's live
// one. Lower is better.
func statusPriority(sub payments.Subscription) int {
	if sub.Pause != nil {
		return 1
	}
	switch sub.Status {
	case StatusActive, StatusTrialing:
		return 0
	case StatusPastDue, StatusPaused:
		return 1
	case StatusIncomplete, "unpaid":
		return 2
	case StatusCanceled, "incomplete_expired":
		return 3
	default:
		return 4
	}
}

// recencyStamp is the tie-break timestamp: period start when the vendor
// reports one, creation time otherwise.
func recencyStamp(sub payments.Subscription) int64 {
	if sub.CurrentPeriodStart > 0 {
		return sub.CurrentPeriodStart
	}
	return sub.CreatedAt
}

// RankSubscriptions orders vendor subscriptions best-first: by status
// priority, then by most recent period start or creation time.
func RankSubscriptions(subs []payments.Subscription) []payments.Subscription {
	ranked := make([]payments.Subscription, len(subs))
	copy(ranked, subs)
	sort.SliceStable(ranked, func(i, j int) bool {
		pi, pj := statusPriority(ranked[i]), statusPriority(ranked[j])
		if pi != pj {
			return pi < pj
		}
		return recencyStamp(ranked[i]) > recencyStamp(ranked[j])
	})
	return ranked
}

// PickBestSubscription returns the highest-ranked subscription, or false when
// the slice is empty.
func PickBestSubscription(subs []payments.Subscription) (payments.Subscription, bool) {
	if len(subs) == 0 {
		return payments.Subscription{}, false
	}
	return RankSubscriptions(subs)[0], true
}
