package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/master-racoon/hackathon-last-mile/internal/domain"
	"github.com/master-racoon/hackathon-last-mile/internal/platform/obs"
	"github.com/master-racoon/hackathon-last-mile/internal/ports"
)

// Sentinel value cached for routes with no matching track, so repeated
// misses don't keep hitting the database.
const noTrackSentinel = "none"

// RedisTrackCache is a read-through cache in front of a TrackFinder.
// Tracks are reference data that changes rarely, so a generous TTL is
// fine. Cache failures degrade to the inner lookup and are logged, never
// surfaced to the caller.
type RedisTrackCache struct {
	Inner ports.TrackFinder
	RDB   *redis.Client
	TTL   time.Duration
	Log   zerolog.Logger
}

func NewRedisTrackCache(inner ports.TrackFinder, rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *RedisTrackCache {
	return &RedisTrackCache{Inner: inner, RDB: rdb, TTL: ttl, Log: log}
}

func trackKey(originCity, destinationCity string) string {
	return "track:" + originCity + "|" + destinationCity
}

func (c *RedisTrackCache) FindTrack(ctx context.Context, originCity, destinationCity string) (_ *domain.DestinationTrack, err error) {
	defer obs.Time(ctx, "track.cache.FindTrack")(&err)

	key := trackKey(originCity, destinationCity)

	cached, err := c.RDB.Get(ctx, key).Result()
	switch {
	case err == nil:
		if cached == noTrackSentinel {
			return nil, ports.ErrNotFound
		}
		var t domain.DestinationTrack
		if err := json.Unmarshal([]byte(cached), &t); err == nil {
			return &t, nil
		}
		// Corrupt entry: fall through to the database and rewrite it.
		c.Log.Warn().Str("key", key).Msg("dropping corrupt track cache entry")
	case errors.Is(err, redis.Nil):
		// miss
	default:
		c.Log.Warn().Err(err).Str("key", key).Msg("track cache unavailable, falling back to database")
	}

	track, err := c.Inner.FindTrack(ctx, originCity, destinationCity)
	if errors.Is(err, ports.ErrNotFound) {
		c.put(ctx, key, noTrackSentinel)
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(track)
	if err != nil {
		return nil, fmt.Errorf("track cache: encode track %d: %w", track.TrackID, err)
	}
	c.put(ctx, key, string(raw))

	return track, nil
}

func (c *RedisTrackCache) put(ctx context.Context, key, value string) {
	if err := c.RDB.Set(ctx, key, value, c.TTL).Err(); err != nil {
		c.Log.Warn().Err(err).Str("key", key).Msg("track cache write failed")
	}
}
