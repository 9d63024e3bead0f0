package domain

import "time"

// Lifecycle status of a shipment order. Transitions only move forward
// (pending -> confirmed -> in_transit -> delivered); cancellation is
// allowed from any non-terminal status.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusInTransit OrderStatus = "in_transit"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

var statusRank = map[OrderStatus]int{
	StatusPending:   0,
	StatusConfirmed: 1,
	StatusInTransit: 2,
	StatusDelivered: 3,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Open reports whether the order still participates in prediction runs.
func (s OrderStatus) Open() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusInTransit
}

// CanTransitionTo reports whether moving from s to next is a legal
// forward progression.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !s.Valid() || !next.Valid() || s == next {
		return false
	}
	if s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return statusRank[next] > statusRank[s]
}

// OpenStatuses lists the statuses considered "open" for prediction runs.
func OpenStatuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusConfirmed, StatusInTransit}
}

// A customer shipment request. Cargo figures are aggregated over the
// order's line items; most attributes are optional because orders arrive
// from ingestion with uneven coverage.
type Order struct {
	OrderID               int
	OrderNumber           string
	CustomerName          string
	RequestedDeliveryDate time.Time
	OriginCountry         string
	OriginRegion          string
	DestinationCountry    string
	DestinationRegion     string
	GrossWeightKg         *float64
	NetWeightKg           *float64
	TotalWidth            *float64
	DeliveryMethod        *int
	VehicleTypeID         *int
	Status                OrderStatus
	LoadDate              *time.Time
	LeadTimeDays          *int
	EstimatedArrival      *time.Time
	Notes                 string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
