package services

import (
	"testing"

	"github.com/master-racoon/hackathon-last-mile/internal/domain"
)

func f(v float64) *float64 { return &v }

func tonner(id int, name string, maxKg float64) *domain.VehicleType {
	return &domain.VehicleType{VehicleTypeID: id, Name: name, MaxWeightKg: f(maxKg)}
}

func TestRecommendVehiclePicksSmallestFitting(t *testing.T) {
	catalog := []*domain.VehicleType{
		tonner(1, "1 TONNER", 1000),
		tonner(2, "4 TONNER", 4000),
		tonner(3, "8 TONNER", 8000),
	}

	got := RecommendVehicle(catalog, f(5500), nil)
	if got == nil || got.Name != "8 TONNER" {
		t.Fatalf("weight=5500 should pick 8 TONNER, got %+v", got)
	}

	got = RecommendVehicle(catalog, f(900), nil)
	if got == nil || got.Name != "1 TONNER" {
		t.Fatalf("weight=900 should pick 1 TONNER, got %+v", got)
	}
}

func TestRecommendVehicleNoFit(t *testing.T) {
	catalog := []*domain.VehicleType{
		tonner(1, "1 TONNER", 1000),
		tonner(2, "4 TONNER", 4000),
	}

	if got := RecommendVehicle(catalog, f(9000), nil); got != nil {
		t.Fatalf("nothing fits 9000kg, got %+v", got)
	}
}

func TestRecommendVehicleUnsetCapacityIsLastResort(t *testing.T) {
	openEnded := &domain.VehicleType{VehicleTypeID: 9, Name: "FLATBED"}
	catalog := []*domain.VehicleType{
		openEnded,
		tonner(2, "4 TONNER", 4000),
	}

	// A declared capacity that fits always beats an undeclared one.
	got := RecommendVehicle(catalog, f(3000), nil)
	if got == nil || got.Name != "4 TONNER" {
		t.Fatalf("declared capacity should win, got %+v", got)
	}

	// Only the open-ended vehicle can take the overweight load.
	got = RecommendVehicle(catalog, f(5000), nil)
	if got == nil || got.Name != "FLATBED" {
		t.Fatalf("open-ended vehicle should be the fallback, got %+v", got)
	}
}

func TestRecommendVehicleVolumeBreaksWeightTies(t *testing.T) {
	a := &domain.VehicleType{VehicleTypeID: 1, Name: "BIG BOX", MaxWeightKg: f(4000), MaxVolumeM3: f(30)}
	b := &domain.VehicleType{VehicleTypeID: 2, Name: "SMALL BOX", MaxWeightKg: f(4000), MaxVolumeM3: f(15)}

	got := RecommendVehicle([]*domain.VehicleType{a, b}, f(1000), f(10))
	if got == nil || got.Name != "SMALL BOX" {
		t.Fatalf("tie on weight should fall to smaller volume, got %+v", got)
	}
}

func TestRecommendVehicleTiesKeepInputOrder(t *testing.T) {
	a := &domain.VehicleType{VehicleTypeID: 1, Name: "FIRST", MaxWeightKg: f(4000), MaxVolumeM3: f(15)}
	b := &domain.VehicleType{VehicleTypeID: 2, Name: "SECOND", MaxWeightKg: f(4000), MaxVolumeM3: f(15)}

	got := RecommendVehicle([]*domain.VehicleType{a, b}, f(1000), nil)
	if got == nil || got.Name != "FIRST" {
		t.Fatalf("full tie should keep input order, got %+v", got)
	}
}

func TestRecommendVehicleRespectsDeclaredCapacities(t *testing.T) {
	catalog := []*domain.VehicleType{
		{VehicleTypeID: 1, Name: "A", MaxWeightKg: f(2000), MaxVolumeM3: f(5)},
		{VehicleTypeID: 2, Name: "B", MaxWeightKg: f(8000), MaxVolumeM3: f(30)},
	}

	got := RecommendVehicle(catalog, f(1500), f(10))
	if got == nil {
		t.Fatal("expected a recommendation")
	}
	if got.MaxWeightKg != nil && *got.MaxWeightKg < 1500 {
		t.Fatalf("declared weight capacity %v below requirement", *got.MaxWeightKg)
	}
	if got.MaxVolumeM3 != nil && *got.MaxVolumeM3 < 10 {
		t.Fatalf("declared volume capacity %v below requirement", *got.MaxVolumeM3)
	}
}

func TestRecommendVehicleEmptyCatalog(t *testing.T) {
	if got := RecommendVehicle(nil, f(100), nil); got != nil {
		t.Fatalf("empty catalog should return nil, got %+v", got)
	}
}
