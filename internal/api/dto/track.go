package dto

import "github.com/master-racoon/hackathon-last-mile/internal/domain"

type TrackRequest struct {
	OriginCountry      string   `json:"origin_country"`
	OriginCity         string   `json:"origin_city"`
	DestinationCountry string   `json:"destination_country"`
	DestinationCity    string   `json:"destination_city"`
	DistanceKm         *float64 `json:"distance_km"`
	OriginTempMean     *float64 `json:"origin_temp_mean"`
	DestTempMean       *float64 `json:"dest_temp_mean"`
}

func (r *TrackRequest) ToDomain() *domain.DestinationTrack {
	return &domain.DestinationTrack{
		OriginCountry:      r.OriginCountry,
		OriginCity:         r.OriginCity,
		DestinationCountry: r.DestinationCountry,
		DestinationCity:    r.DestinationCity,
		DistanceKm:         r.DistanceKm,
		OriginTempMean:     r.OriginTempMean,
		DestTempMean:       r.DestTempMean,
	}
}

type TrackResponse struct {
	TrackID            int      `json:"track_id"`
	OriginCountry      string   `json:"origin_country"`
	OriginCity         string   `json:"origin_city"`
	DestinationCountry string   `json:"destination_country"`
	DestinationCity    string   `json:"destination_city"`
	DistanceKm         *float64 `json:"distance_km"`
	OriginTempMean     *float64 `json:"origin_temp_mean"`
	DestTempMean       *float64 `json:"dest_temp_mean"`
}

func TrackFromDomain(t *domain.DestinationTrack) TrackResponse {
	return TrackResponse{
		TrackID:            t.TrackID,
		OriginCountry:      t.OriginCountry,
		OriginCity:         t.OriginCity,
		DestinationCountry: t.DestinationCountry,
		DestinationCity:    t.DestinationCity,
		DistanceKm:         t.DistanceKm,
		OriginTempMean:     t.OriginTempMean,
		DestTempMean:       t.DestTempMean,
	}
}

type ListTracksResponse struct {
	Tracks []TrackResponse `json:"tracks"`
}
