package domain

import "testing"

func TestOrderStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusInTransit, true},
		{StatusPending, StatusDelivered, true},
		{StatusConfirmed, StatusInTransit, true},
		{StatusInTransit, StatusDelivered, true},
		{StatusConfirmed, StatusPending, false},
		{StatusInTransit, StatusConfirmed, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusPending, StatusCancelled, true},
		{StatusInTransit, StatusCancelled, true},
		{StatusPending, StatusPending, false},
		{StatusPending, OrderStatus("bogus"), false},
	}

	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.want {
			t.Errorf("%s -> %s = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestOrderStatusOpen(t *testing.T) {
	open := []OrderStatus{StatusPending, StatusConfirmed, StatusInTransit}
	for _, s := range open {
		if !s.Open() {
			t.Errorf("%s should be open", s)
		}
	}

	for _, s := range []OrderStatus{StatusDelivered, StatusCancelled} {
		if s.Open() {
			t.Errorf("%s should not be open", s)
		}
	}
}

func TestVehicleTypeFits(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	cases := []struct {
		name     string
		vehicle  VehicleType
		weightKg *float64
		volumeM3 *float64
		want     bool
	}{
		{"both capacities cover", VehicleType{MaxWeightKg: f(4000), MaxVolumeM3: f(15)}, f(3000), f(10), true},
		{"weight too heavy", VehicleType{MaxWeightKg: f(1000), MaxVolumeM3: f(15)}, f(3000), f(10), false},
		{"volume too large", VehicleType{MaxWeightKg: f(4000), MaxVolumeM3: f(5)}, f(3000), f(10), false},
		{"unset capacity never disqualifies", VehicleType{}, f(99999), f(99999), true},
		{"unset requirement always satisfied", VehicleType{MaxWeightKg: f(1000)}, nil, nil, true},
		{"exact boundary fits", VehicleType{MaxWeightKg: f(4000)}, f(4000), nil, true},
	}

	for _, c := range cases {
		if got := c.vehicle.Fits(c.weightKg, c.volumeM3); got != c.want {
			t.Errorf("%s: Fits = %v, want %v", c.name, got, c.want)
		}
	}
}
