package services

import (
	"testing"
	"time"
)

func TestRecommendedBookingDate(t *testing.T) {
	delivery := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	lead := 13.29

	got := RecommendedBookingDate(&delivery, &lead)
	if got == nil {
		t.Fatal("expected a booking date")
	}

	want := time.Date(2026, 1, 18, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("booking date = %v, want %v", got, want)
	}
}

func TestRecommendedBookingDateFloorsLeadTime(t *testing.T) {
	delivery := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	for _, lead := range []float64{5.0, 5.1, 5.99} {
		got := RecommendedBookingDate(&delivery, &lead)
		want := delivery.AddDate(0, 0, -5)
		if got == nil || !got.Equal(want) {
			t.Errorf("lead=%v: booking date = %v, want %v", lead, got, want)
		}
	}
}

func TestRecommendedBookingDateUnsetInputs(t *testing.T) {
	delivery := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	lead := 13.29
	var zero time.Time

	if got := RecommendedBookingDate(nil, &lead); got != nil {
		t.Errorf("nil delivery date should give nil, got %v", got)
	}
	if got := RecommendedBookingDate(&zero, &lead); got != nil {
		t.Errorf("zero delivery date should give nil, got %v", got)
	}
	if got := RecommendedBookingDate(&delivery, nil); got != nil {
		t.Errorf("nil lead time should give nil, got %v", got)
	}
}
