package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/master-racoon/hackathon-last-mile/internal/domain"
	"github.com/master-racoon/hackathon-last-mile/internal/platform/obs"
	"github.com/master-racoon/hackathon-last-mile/internal/ports"
)

// Postgres-backed implementation of the TrackRepository port.
type PostgresTrackRepository struct{ DB *sql.DB }

func NewPostgresTrackRepository(db *sql.DB) *PostgresTrackRepository {
	return &PostgresTrackRepository{DB: db}
}

const trackColumns = `
	track_id, origin_country, origin_city, destination_country, destination_city,
	distance_km, origin_temp_mean, dest_temp_mean`

func scanTrack(s interface{ Scan(...any) error }) (*domain.DestinationTrack, error) {
	var (
		t                    domain.DestinationTrack
		distance             sql.NullFloat64
		originTemp, destTemp sql.NullFloat64
	)

	err := s.Scan(
		&t.TrackID, &t.OriginCountry, &t.OriginCity, &t.DestinationCountry, &t.DestinationCity,
		&distance, &originTemp, &destTemp,
	)
	if err != nil {
		return nil, err
	}

	t.DistanceKm = floatPtr(distance)
	t.OriginTempMean = floatPtr(originTemp)
	t.DestTempMean = floatPtr(destTemp)
	return &t, nil
}

// FindTrack matches the route key exactly and case-sensitively. Duplicate
// tracks for one key are tolerated; the lowest-id row wins.
func (r *PostgresTrackRepository) FindTrack(ctx context.Context, originCity, destinationCity string) (_ *domain.DestinationTrack, err error) {
	defer obs.Time(ctx, "track.repo.FindTrack")(&err)

	query := `SELECT` + trackColumns + `
	FROM destination_tracks
	WHERE origin_city = $1 AND destination_city = $2
	ORDER BY track_id
	LIMIT 1;`

	t, err := scanTrack(r.DB.QueryRowContext(ctx, query, originCity, destinationCity))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find track %q -> %q: %w", originCity, destinationCity, err)
	}
	return t, nil
}

func (r *PostgresTrackRepository) ListTracks(ctx context.Context) ([]*domain.DestinationTrack, error) {
	if r.DB == nil {
		return nil, errors.New("track repository: DB is nil")
	}

	query := `SELECT` + trackColumns + ` FROM destination_tracks ORDER BY track_id;`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tracks: query destination_tracks table: %w", err)
	}
	defer rows.Close()

	tracks := make([]*domain.DestinationTrack, 0, 64)
	for rows.Next() {
		t, err := scanTrack(rows)
		if err != nil {
			return nil, fmt.Errorf("list tracks: scan row: %w", err)
		}
		tracks = append(tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tracks: row iteration: %w", err)
	}
	return tracks, nil
}

func (r *PostgresTrackRepository) CreateTrack(ctx context.Context, track *domain.DestinationTrack) (*domain.DestinationTrack, error) {
	query := `
	INSERT INTO destination_tracks (
		origin_country, origin_city, destination_country, destination_city,
		distance_km, origin_temp_mean, dest_temp_mean
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING track_id;`

	err := r.DB.QueryRowContext(ctx, query,
		track.OriginCountry, track.OriginCity, track.DestinationCountry, track.DestinationCity,
		nullFloat(track.DistanceKm), nullFloat(track.OriginTempMean), nullFloat(track.DestTempMean),
	).Scan(&track.TrackID)
	if err != nil {
		return nil, fmt.Errorf("create track %q -> %q: %w", track.OriginCity, track.DestinationCity, err)
	}
	return track, nil
}
