package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/tumpangan/liveride/internal/pkg/apperrors"
	"github.com/tumpangan/liveride/internal/pkg/geo"
	"github.com/tumpangan/liveride/internal/pkg/models"
)

// TrackingRepo persists live tracking records, tracked passengers and the
// location log. Mutations that touch both the ride and tracking aggregates
// run in a single transaction, and the row lock on the tracking record
// serializes concurrent writers per ride.
type TrackingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewTrackingRepository(cfg *models.Config, db *sqlx.DB) *TrackingRepo {
	return &TrackingRepo{
		cfg: cfg,
		db:  db,
	}
}

// StartRide atomically creates the tracking record, seeds the tracked
// passengers from the ride's accepted requests, writes the first location
// entry and moves the ride to in_progress. The unique tracking row per ride
// turns a concurrent double start into a conflict.
func (r *TrackingRepo) StartRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.LiveTracking, *models.LocationEntry, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var ride models.Ride
	err = tx.GetContext(ctx, &ride, `
		SELECT ride_id, driver_id, status, origin_lat, origin_lng
		FROM rides
		WHERE ride_id = $1
		FOR UPDATE
	`, rideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, apperrors.NotFound(apperrors.CodeRideNotFound, "ride not found").WithRide(rideID.String())
		}
		return nil, nil, fmt.Errorf("failed to get ride: %w", err)
	}
	if ride.DriverID != driverID {
		return nil, nil, apperrors.Unauthorized(apperrors.CodeUnauthorizedDriver, "only the ride driver can start tracking").WithRide(rideID.String())
	}

	accepted := []models.PassengerRequest{}
	err = tx.SelectContext(ctx, &accepted, `
		SELECT ride_id, user_id, pickup_location, dropoff_location
		FROM ride_passengers
		WHERE ride_id = $1 AND status = $2
		ORDER BY requested_at
	`, rideID, models.RequestStatusAccepted)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list accepted passengers: %w", err)
	}
	if len(accepted) == 0 {
		return nil, nil, apperrors.Validation(apperrors.CodeNoAcceptedPassengers, "ride has no accepted passengers").WithRide(rideID.String())
	}

	now := time.Now()
	tracking := &models.LiveTracking{
		RideID:    rideID,
		DriverID:  driverID,
		Status:    models.TrackingStatusInProgress,
		StartTime: now,
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO live_tracking (ride_id, driver_id, status, start_time)
		VALUES ($1, $2, $3, $4)
	`, tracking.RideID, tracking.DriverID, tracking.Status, tracking.StartTime)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, nil, apperrors.Conflict(apperrors.CodeDuplicateRide, "live tracking already exists for this ride").WithRide(rideID.String())
		}
		return nil, nil, fmt.Errorf("failed to insert live tracking: %w", err)
	}

	tracking.Passengers = make([]models.TrackedPassenger, 0, len(accepted))
	for _, p := range accepted {
		tp := models.TrackedPassenger{
			RideID:          rideID,
			UserID:          p.UserID,
			Status:          models.PassengerStatusAccepted,
			PickupLocation:  p.PickupLocation,
			DropoffLocation: p.DropoffLocation,
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO tracking_passengers (ride_id, user_id, status, pickup_location, dropoff_location)
			VALUES ($1, $2, $3, $4, $5)
		`, tp.RideID, tp.UserID, tp.Status, tp.PickupLocation, tp.DropoffLocation)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to insert tracked passenger: %w", err)
		}
		tracking.Passengers = append(tracking.Passengers, tp)
	}

	first := &models.LocationEntry{
		RideID:   rideID.String(),
		Sequence: 1,
		Location: models.Location{
			Latitude:  ride.OriginLat,
			Longitude: ride.OriginLng,
			Timestamp: now,
		},
		Geohash: geo.Encode(ride.OriginLat, ride.OriginLng),
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO tracking_locations (ride_id, seq, latitude, longitude, geohash, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rideID, first.Sequence, first.Location.Latitude, first.Location.Longitude, first.Geohash, now)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to insert first location: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE rides SET status = $1, started_at = $2 WHERE ride_id = $3
	`, models.RideStatusInProgress, now, rideID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update ride status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return tracking, first, nil
}

// AppendLocation appends one entry to the ride's location log. The lock on
// the tracking row serializes appends so sequence numbers come out dense
// and strictly increasing.
func (r *TrackingRepo) AppendLocation(ctx context.Context, rideID, driverID uuid.UUID, latitude, longitude float64) (*models.LocationEntry, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = r.lockTracking(ctx, tx, rideID, driverID); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := &models.LocationEntry{
		RideID: rideID.String(),
		Location: models.Location{
			Latitude:  latitude,
			Longitude: longitude,
			Timestamp: now,
		},
		Geohash: geo.Encode(latitude, longitude),
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO tracking_locations (ride_id, seq, latitude, longitude, geohash, recorded_at)
		SELECT $1, COALESCE(MAX(seq), 0) + 1, $2, $3, $4, $5
		FROM tracking_locations
		WHERE ride_id = $1
		RETURNING seq
	`, rideID, latitude, longitude, entry.Geohash, now).Scan(&entry.Sequence)
	if err != nil {
		return nil, fmt.Errorf("failed to append location: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return entry, nil
}

// CompletePassenger marks one passenger's leg as completed. When that was
// the last active passenger, the tracking record and the ride complete in
// the same transaction.
func (r *TrackingRepo) CompletePassenger(ctx context.Context, rideID, passengerID uuid.UUID) (*models.PassengerEndResponse, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var tracking models.LiveTracking
	err = tx.GetContext(ctx, &tracking, `
		SELECT ride_id, driver_id, status, start_time, end_time
		FROM live_tracking
		WHERE ride_id = $1
		FOR UPDATE
	`, rideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(apperrors.CodeRideNotFound, "live tracking not found").WithRide(rideID.String())
		}
		return nil, fmt.Errorf("failed to get live tracking: %w", err)
	}

	now := time.Now()
	res, err := tx.ExecContext(ctx, `
		UPDATE tracking_passengers
		SET status = $1, end_time = $2
		WHERE ride_id = $3 AND user_id = $4 AND status = $5
	`, models.PassengerStatusCompleted, now, rideID, passengerID, models.PassengerStatusAccepted)
	if err != nil {
		return nil, fmt.Errorf("failed to complete passenger: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		var status models.PassengerStatus
		err = tx.GetContext(ctx, &status, `
			SELECT status FROM tracking_passengers WHERE ride_id = $1 AND user_id = $2
		`, rideID, passengerID)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(apperrors.CodePassengerNotFound, "passenger not found in this ride").WithRide(rideID.String())
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get passenger status: %w", err)
		}
		return nil, apperrors.Conflict(apperrors.CodePassengerAlreadyEnded,
			fmt.Sprintf("passenger ride already %s", status)).WithRide(rideID.String())
	}

	var remaining int
	err = tx.GetContext(ctx, &remaining, `
		SELECT COUNT(*) FROM tracking_passengers WHERE ride_id = $1 AND status = $2
	`, rideID, models.PassengerStatusAccepted)
	if err != nil {
		return nil, fmt.Errorf("failed to count active passengers: %w", err)
	}

	result := &models.PassengerEndResponse{
		PassengerID: passengerID.String(),
		Status:      models.PassengerStatusCompleted,
		EndTime:     now,
	}

	if remaining == 0 {
		if err = r.completeRideTx(ctx, tx, rideID, now); err != nil {
			return nil, err
		}
		result.RideCompleted = true
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return result, nil
}

// CompleteRide force-completes the whole ride: every tracked passenger,
// the tracking record and the ride all get the same end timestamp.
func (r *TrackingRepo) CompleteRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.LiveTracking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	tracking, err := r.lockTracking(ctx, tx, rideID, driverID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	_, err = tx.ExecContext(ctx, `
		UPDATE tracking_passengers
		SET status = $1, end_time = $2
		WHERE ride_id = $3 AND status = $4
	`, models.PassengerStatusCompleted, now, rideID, models.PassengerStatusAccepted)
	if err != nil {
		return nil, fmt.Errorf("failed to complete passengers: %w", err)
	}

	if err = r.completeRideTx(ctx, tx, rideID, now); err != nil {
		return nil, err
	}

	passengers, err := r.getTrackedPassengers(ctx, tx, rideID)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	tracking.Status = models.TrackingStatusCompleted
	tracking.EndTime = &now
	tracking.Passengers = passengers

	return tracking, nil
}

// GetTracking retrieves a tracking record with its passengers
func (r *TrackingRepo) GetTracking(ctx context.Context, rideID uuid.UUID) (*models.LiveTracking, error) {
	var tracking models.LiveTracking
	err := r.db.GetContext(ctx, &tracking, `
		SELECT ride_id, driver_id, status, start_time, end_time
		FROM live_tracking
		WHERE ride_id = $1
	`, rideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(apperrors.CodeRideNotFound, "live tracking not found").WithRide(rideID.String())
		}
		return nil, fmt.Errorf("failed to get live tracking: %w", err)
	}

	passengers, err := r.getTrackedPassengers(ctx, r.db, rideID)
	if err != nil {
		return nil, err
	}
	tracking.Passengers = passengers

	return &tracking, nil
}

// GetLastLocation retrieves the newest entry of a ride's location log
func (r *TrackingRepo) GetLastLocation(ctx context.Context, rideID uuid.UUID) (*models.LocationEntry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT ride_id, seq, latitude, longitude, geohash, recorded_at
		FROM tracking_locations
		WHERE ride_id = $1
		ORDER BY seq DESC
		LIMIT 1
	`, rideID)

	var entry models.LocationEntry
	err := row.Scan(
		&entry.RideID,
		&entry.Sequence,
		&entry.Location.Latitude,
		&entry.Location.Longitude,
		&entry.Geohash,
		&entry.Location.Timestamp,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last location: %w", err)
	}

	return &entry, nil
}

// lockTracking loads and row-locks the tracking record, verifying the
// caller is the recorded driver
func (r *TrackingRepo) lockTracking(ctx context.Context, tx *sqlx.Tx, rideID, driverID uuid.UUID) (*models.LiveTracking, error) {
	var tracking models.LiveTracking
	err := tx.GetContext(ctx, &tracking, `
		SELECT ride_id, driver_id, status, start_time, end_time
		FROM live_tracking
		WHERE ride_id = $1
		FOR UPDATE
	`, rideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(apperrors.CodeRideNotFound, "live tracking not found").WithRide(rideID.String())
		}
		return nil, fmt.Errorf("failed to get live tracking: %w", err)
	}
	if tracking.DriverID != driverID {
		return nil, apperrors.Unauthorized(apperrors.CodeUnauthorizedDriver, "only the ride driver can perform this action").WithRide(rideID.String())
	}

	return &tracking, nil
}

// completeRideTx moves both the tracking record and the ride to completed
// inside the caller's transaction
func (r *TrackingRepo) completeRideTx(ctx context.Context, tx *sqlx.Tx, rideID uuid.UUID, endTime time.Time) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE live_tracking
		SET status = $1, end_time = $2
		WHERE ride_id = $3 AND status = $4
	`, models.TrackingStatusCompleted, endTime, rideID, models.TrackingStatusInProgress)
	if err != nil {
		return fmt.Errorf("failed to complete live tracking: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE rides
		SET status = $1, completed_at = $2
		WHERE ride_id = $3
	`, models.RideStatusCompleted, endTime, rideID)
	if err != nil {
		return fmt.Errorf("failed to complete ride: %w", err)
	}

	return nil
}

func (r *TrackingRepo) getTrackedPassengers(ctx context.Context, q sqlx.QueryerContext, rideID uuid.UUID) ([]models.TrackedPassenger, error) {
	passengers := []models.TrackedPassenger{}
	err := sqlx.SelectContext(ctx, q, &passengers, `
		SELECT ride_id, user_id, status, pickup_location, dropoff_location, end_time
		FROM tracking_passengers
		WHERE ride_id = $1
		ORDER BY user_id
	`, rideID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked passengers: %w", err)
	}

	return passengers, nil
}
