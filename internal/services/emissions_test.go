package services

import (
	"math"
	"testing"

	"github.com/master-racoon/hackathon-last-mile/internal/domain"
)

func TestEstimateCO2Kg(t *testing.T) {
	// 1000km * 0.27 * (1 + 0.1*5) * (1 + 0) = 405.0
	got := EstimateCO2Kg(1000, 500, 25, 0.27)
	if math.Abs(got-405.0) > 1e-9 {
		t.Fatalf("EstimateCO2Kg = %v, want 405.0", got)
	}
}

func TestEstimateCO2KgTemperatureAdjustment(t *testing.T) {
	at25 := EstimateCO2Kg(100, 0, 25, 0.27)
	at35 := EstimateCO2Kg(100, 0, 35, 0.27)
	at15 := EstimateCO2Kg(100, 0, 15, 0.27)

	if math.Abs(at35-at25*1.10) > 1e-9 {
		t.Errorf("+10C should add 10%%: got %v, want %v", at35, at25*1.10)
	}
	if math.Abs(at15-at25*0.90) > 1e-9 {
		t.Errorf("-10C should discount 10%%: got %v, want %v", at15, at25*0.90)
	}
}

func TestEstimateCO2KgMonotonic(t *testing.T) {
	base := EstimateCO2Kg(1000, 500, 30, 0.27)

	if EstimateCO2Kg(1100, 500, 30, 0.27) <= base {
		t.Error("not increasing in distance")
	}
	if EstimateCO2Kg(1000, 600, 30, 0.27) <= base {
		t.Error("not increasing in weight")
	}
	if EstimateCO2Kg(1000, 500, 31, 0.27) <= base {
		t.Error("not increasing in temperature above baseline")
	}
	if EstimateCO2Kg(1000, 500, 20, 0.27) >= EstimateCO2Kg(1000, 500, 24, 0.27) {
		t.Error("not decreasing as temperature drops below baseline")
	}
}

func TestEmissionFactorKgPerKm(t *testing.T) {
	cases := []struct {
		name    string
		vehicle domain.VehicleType
		want    float64
	}{
		{"declared factor wins", domain.VehicleType{Diesel: true, EmissionFactorKgPerKm: f(0.5), DieselLPerKm: f(0.1)}, 0.5},
		{"diesel from consumption", domain.VehicleType{Diesel: true, DieselLPerKm: f(0.1)}, 0.1 * 2.68},
		{"diesel default", domain.VehicleType{Diesel: true}, 0.27},
		{"electric from consumption", domain.VehicleType{Electric: true, EnergyKWhPerKm: f(0.2)}, 0.2 * 0.95},
		{"electric default", domain.VehicleType{Electric: true}, 0.08},
		{"hybrid midpoint", domain.VehicleType{Hybrid: true}, 0.175},
		{"catch-all", domain.VehicleType{}, 0.20},
	}

	for _, c := range cases {
		if got := EmissionFactorKgPerKm(&c.vehicle); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("%s: factor = %v, want %v", c.name, got, c.want)
		}
	}
}
