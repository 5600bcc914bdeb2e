package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/tumpangan/liveride/internal/pkg/constants"
	"github.com/tumpangan/liveride/internal/pkg/database"
	"github.com/tumpangan/liveride/internal/pkg/models"
)

const lastLocationTTL = 24 * time.Hour

// TrackingCacheRepo keeps the latest committed location per ride in redis.
// The database stays authoritative; a cache miss falls through to it.
type TrackingCacheRepo struct {
	client *database.RedisClient
}

func NewTrackingCacheRepository(client *database.RedisClient) *TrackingCacheRepo {
	return &TrackingCacheRepo{client: client}
}

// SetLastLocation stores the newest location entry for a ride
func (r *TrackingCacheRepo) SetLastLocation(ctx context.Context, entry *models.LocationEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal location entry: %w", err)
	}

	key := fmt.Sprintf(constants.KeyRideLocation, entry.RideID)
	if err := r.client.Set(ctx, key, data, lastLocationTTL); err != nil {
		return fmt.Errorf("failed to cache location entry: %w", err)
	}

	return nil
}

// GetLastLocation retrieves the cached latest location for a ride.
// A miss returns nil without error.
func (r *TrackingCacheRepo) GetLastLocation(ctx context.Context, rideID string) (*models.LocationEntry, error) {
	key := fmt.Sprintf(constants.KeyRideLocation, rideID)
	data, err := r.client.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached location: %w", err)
	}

	var entry models.LocationEntry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached location: %w", err)
	}

	return &entry, nil
}
