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
	"github.com/tumpangan/liveride/internal/pkg/models"
)

const pgUniqueViolation = "23505"

// RideRepo persists ride offerings and join requests
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateRide inserts a new ride offering
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, error) {
	ride.RideID = uuid.New()
	ride.Status = models.RideStatusOpen
	ride.AvailableSeats = ride.TotalSeats
	ride.CreatedAt = time.Now()

	query := `
		INSERT INTO rides (
			ride_id, driver_id, origin, destination,
			total_seats, available_seats, distance, duration,
			status, origin_lat, origin_lng,
			destination_lat, destination_lng, created_at
		) VALUES (
			:ride_id, :driver_id, :origin, :destination,
			:total_seats, :available_seats, :distance, :duration,
			:status, :origin_lat, :origin_lng,
			:destination_lat, :destination_lng, :created_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, ride); err != nil {
		return nil, fmt.Errorf("failed to insert ride: %w", err)
	}

	return ride, nil
}

// GetRide retrieves a ride with its passenger requests
func (r *RideRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := `
		SELECT ride_id, driver_id, origin, destination,
			total_seats, available_seats, distance, duration,
			status, origin_lat, origin_lng, destination_lat, destination_lng,
			created_at, started_at, completed_at
		FROM rides
		WHERE ride_id = $1
	`

	var ride models.Ride
	err := r.db.GetContext(ctx, &ride, query, rideID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(apperrors.CodeRideNotFound, "ride not found")
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}

	passengers, err := r.getPassengerRequests(ctx, r.db, rideID)
	if err != nil {
		return nil, err
	}
	ride.Passengers = passengers

	return &ride, nil
}

// GetAvailableRides lists open rides with free seats, optionally filtered
// by origin and destination substrings
func (r *RideRepo) GetAvailableRides(ctx context.Context, origin, destination string) ([]models.Ride, error) {
	query := `
		SELECT ride_id, driver_id, origin, destination,
			total_seats, available_seats, distance, duration,
			status, origin_lat, origin_lng, destination_lat, destination_lng,
			created_at, started_at, completed_at
		FROM rides
		WHERE status = $1
			AND available_seats > 0
			AND ($2 = '' OR origin ILIKE '%' || $2 || '%')
			AND ($3 = '' OR destination ILIKE '%' || $3 || '%')
		ORDER BY created_at DESC
	`

	rides := []models.Ride{}
	if err := r.db.SelectContext(ctx, &rides, query, models.RideStatusOpen, origin, destination); err != nil {
		return nil, fmt.Errorf("failed to list available rides: %w", err)
	}

	return rides, nil
}

// GetDriverRides lists all rides offered by a driver, newest first
func (r *RideRepo) GetDriverRides(ctx context.Context, driverID uuid.UUID) ([]models.Ride, error) {
	query := `
		SELECT ride_id, driver_id, origin, destination,
			total_seats, available_seats, distance, duration,
			status, origin_lat, origin_lng, destination_lat, destination_lng,
			created_at, started_at, completed_at
		FROM rides
		WHERE driver_id = $1
		ORDER BY created_at DESC
	`

	rides := []models.Ride{}
	if err := r.db.SelectContext(ctx, &rides, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list driver rides: %w", err)
	}

	return rides, nil
}

// AddJoinRequest records a passenger's pending request to join a ride.
// The primary key on (ride_id, user_id) rejects repeat requests.
func (r *RideRepo) AddJoinRequest(ctx context.Context, req *models.PassengerRequest) error {
	req.Status = models.RequestStatusPending
	req.RequestedAt = time.Now()

	query := `
		INSERT INTO ride_passengers (
			ride_id, user_id, status, pickup_location, dropoff_location, requested_at
		) VALUES (
			:ride_id, :user_id, :status, :pickup_location, :dropoff_location, :requested_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, req); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.Conflict(apperrors.CodeDuplicateRequest, "join request already exists for this ride")
		}
		return fmt.Errorf("failed to insert join request: %w", err)
	}

	return nil
}

// AcceptJoinRequest flips a pending request to accepted and takes one seat,
// both inside a single transaction
func (r *RideRepo) AcceptJoinRequest(ctx context.Context, rideID, passengerID uuid.UUID) (*models.PassengerRequest, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	res, err := tx.ExecContext(ctx, `
		UPDATE ride_passengers
		SET status = $1, approved_at = $2
		WHERE ride_id = $3 AND user_id = $4 AND status = $5
	`, models.RequestStatusAccepted, now, rideID, passengerID, models.RequestStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to accept join request: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, apperrors.NotFound(apperrors.CodeRequestNotFound, "pending join request not found")
	}

	res, err = tx.ExecContext(ctx, `
		UPDATE rides
		SET available_seats = available_seats - 1
		WHERE ride_id = $1 AND available_seats > 0
	`, rideID)
	if err != nil {
		return nil, fmt.Errorf("failed to take seat: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, apperrors.Conflict(apperrors.CodeNoAvailableSeats, "no available seats left on this ride")
	}

	req, err := r.getPassengerRequest(ctx, tx, rideID, passengerID)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return req, nil
}

// RejectJoinRequest flips a pending request to rejected
func (r *RideRepo) RejectJoinRequest(ctx context.Context, rideID, passengerID uuid.UUID) (*models.PassengerRequest, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE ride_passengers
		SET status = $1
		WHERE ride_id = $2 AND user_id = $3 AND status = $4
	`, models.RequestStatusRejected, rideID, passengerID, models.RequestStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to reject join request: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, apperrors.NotFound(apperrors.CodeRequestNotFound, "pending join request not found")
	}

	return r.getPassengerRequest(ctx, r.db, rideID, passengerID)
}

func (r *RideRepo) getPassengerRequest(ctx context.Context, q sqlx.QueryerContext, rideID, passengerID uuid.UUID) (*models.PassengerRequest, error) {
	var req models.PassengerRequest
	err := sqlx.GetContext(ctx, q, &req, `
		SELECT ride_id, user_id, status, pickup_location, dropoff_location, requested_at, approved_at
		FROM ride_passengers
		WHERE ride_id = $1 AND user_id = $2
	`, rideID, passengerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(apperrors.CodeRequestNotFound, "join request not found")
		}
		return nil, fmt.Errorf("failed to get join request: %w", err)
	}

	return &req, nil
}

func (r *RideRepo) getPassengerRequests(ctx context.Context, q sqlx.QueryerContext, rideID uuid.UUID) ([]models.PassengerRequest, error) {
	reqs := []models.PassengerRequest{}
	err := sqlx.SelectContext(ctx, q, &reqs, `
		SELECT ride_id, user_id, status, pickup_location, dropoff_location, requested_at, approved_at
		FROM ride_passengers
		WHERE ride_id = $1
		ORDER BY requested_at
	`, rideID)
	if err != nil {
		return nil, fmt.Errorf("failed to list join requests: %w", err)
	}

	return reqs, nil
}
