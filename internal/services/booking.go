package services

import (
	"math"
	"time"
)

// RecommendedBookingDate back-calculates when an order should be booked:
// the requested delivery date minus the expected lead time truncated to
// whole days. If either input is absent the result is nil rather than a
// guess.
func RecommendedBookingDate(requestedDelivery *time.Time, expectedLeadTimeDays *float64) *time.Time {
	if requestedDelivery == nil || requestedDelivery.IsZero() || expectedLeadTimeDays == nil {
		return nil
	}
	days := int(math.Floor(*expectedLeadTimeDays))
	booking := requestedDelivery.AddDate(0, 0, -days)
	return &booking
}
