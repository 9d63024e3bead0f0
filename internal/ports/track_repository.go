package ports

import (
	"context"

	"github.com/master-racoon/hackathon-last-mile/internal/domain"
)

// Port: a boundary for looking up aggregated route records.
//
// FindTrack matches the (origin city, destination city) key exactly and
// case-sensitively; there is no geocoding or fuzzy matching. If duplicate
// tracks exist for a key, the lowest-id row is authoritative.
type TrackFinder interface {
	FindTrack(ctx context.Context, originCity, destinationCity string) (*domain.DestinationTrack, error)
}

// Port: full route atlas access, including reference-data maintenance.
type TrackRepository interface {
	TrackFinder

	// Retrieve all tracks ordered by id.
	ListTracks(ctx context.Context) ([]*domain.DestinationTrack, error)

	// Persist a new track.
	CreateTrack(ctx context.Context, track *domain.DestinationTrack) (*domain.DestinationTrack, error)
}
