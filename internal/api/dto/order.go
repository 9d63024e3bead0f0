package dto

import (
	"time"

	"github.com/master-racoon/hackathon-last-mile/internal/domain"
)

type OrderRequest struct {
	OrderNumber           string     `json:"order_number"`
	CustomerName          string     `json:"customer_name"`
	RequestedDeliveryDate time.Time  `json:"requested_delivery_date"`
	OriginCountry         string     `json:"origin_country"`
	OriginRegion          string     `json:"origin_region"`
	DestinationCountry    string     `json:"destination_country"`
	DestinationRegion     string     `json:"destination_region"`
	GrossWeightKg         *float64   `json:"gross_weight_kg"`
	NetWeightKg           *float64   `json:"net_weight_kg"`
	TotalWidth            *float64   `json:"total_width"`
	DeliveryMethod        *int       `json:"delivery_method"`
	VehicleTypeID         *int       `json:"vehicle_type_id"`
	Status                string     `json:"status"`
	LoadDate              *time.Time `json:"load_date"`
	LeadTimeDays          *int       `json:"lead_time_days"`
	EstimatedArrival      *time.Time `json:"estimated_arrival"`
	Notes                 string     `json:"notes"`
}

func (r *OrderRequest) ToDomain() *domain.Order {
	return &domain.Order{
		OrderNumber:           r.OrderNumber,
		CustomerName:          r.CustomerName,
		RequestedDeliveryDate: r.RequestedDeliveryDate,
		OriginCountry:         r.OriginCountry,
		OriginRegion:          r.OriginRegion,
		DestinationCountry:    r.DestinationCountry,
		DestinationRegion:     r.DestinationRegion,
		GrossWeightKg:         r.GrossWeightKg,
		NetWeightKg:           r.NetWeightKg,
		TotalWidth:            r.TotalWidth,
		DeliveryMethod:        r.DeliveryMethod,
		VehicleTypeID:         r.VehicleTypeID,
		Status:                domain.OrderStatus(r.Status),
		LoadDate:              r.LoadDate,
		LeadTimeDays:          r.LeadTimeDays,
		EstimatedArrival:      r.EstimatedArrival,
		Notes:                 r.Notes,
	}
}

type OrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	OrderID               int        `json:"order_id"`
	OrderNumber           string     `json:"order_number"`
	CustomerName          string     `json:"customer_name"`
	RequestedDeliveryDate time.Time  `json:"requested_delivery_date"`
	OriginCountry         string     `json:"origin_country"`
	OriginRegion          string     `json:"origin_region"`
	DestinationCountry    string     `json:"destination_country"`
	DestinationRegion     string     `json:"destination_region"`
	GrossWeightKg         *float64   `json:"gross_weight_kg"`
	NetWeightKg           *float64   `json:"net_weight_kg"`
	TotalWidth            *float64   `json:"total_width"`
	DeliveryMethod        *int       `json:"delivery_method"`
	VehicleTypeID         *int       `json:"vehicle_type_id"`
	Status                string     `json:"status"`
	LoadDate              *time.Time `json:"load_date"`
	LeadTimeDays          *int       `json:"lead_time_days"`
	EstimatedArrival      *time.Time `json:"estimated_arrival"`
	Notes                 string     `json:"notes"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func OrderFromDomain(o *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:               o.OrderID,
		OrderNumber:           o.OrderNumber,
		CustomerName:          o.CustomerName,
		RequestedDeliveryDate: o.RequestedDeliveryDate,
		OriginCountry:         o.OriginCountry,
		OriginRegion:          o.OriginRegion,
		DestinationCountry:    o.DestinationCountry,
		DestinationRegion:     o.DestinationRegion,
		GrossWeightKg:         o.GrossWeightKg,
		NetWeightKg:           o.NetWeightKg,
		TotalWidth:            o.TotalWidth,
		DeliveryMethod:        o.DeliveryMethod,
		VehicleTypeID:         o.VehicleTypeID,
		Status:                string(o.Status),
		LoadDate:              o.LoadDate,
		LeadTimeDays:          o.LeadTimeDays,
		EstimatedArrival:      o.EstimatedArrival,
		Notes:                 o.Notes,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}
