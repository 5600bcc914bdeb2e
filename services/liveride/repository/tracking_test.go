package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tumpangan/liveride/internal/pkg/apperrors"
	"github.com/tumpangan/liveride/internal/pkg/models"
)

func setupTrackingRepoTest(t *testing.T) (*TrackingRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	return &TrackingRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}, mock
}

func trackingRows(rideID, driverID uuid.UUID, status models.TrackingStatus) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"ride_id", "driver_id", "status", "start_time", "end_time"}).
		AddRow(rideID, driverID, status, time.Now(), nil)
}

func TestStartRide_DuplicateTracking(t *testing.T) {
	repo, mock := setupTrackingRepoTest(t)

	rideID := uuid.New()
	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM rides WHERE ride_id").
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows([]string{"ride_id", "driver_id", "status", "origin_lat", "origin_lng"}).
			AddRow(rideID, driverID, models.RideStatusOpen, -6.2, 106.8))
	mock.ExpectQuery("FROM ride_passengers WHERE ride_id").
		WithArgs(rideID, models.RequestStatusAccepted).
		WillReturnRows(sqlmock.NewRows([]string{"ride_id", "user_id", "pickup_location", "dropoff_location"}).
			AddRow(rideID, uuid.New(), "Lebak Bulus", "Pasteur"))
	mock.ExpectExec("INSERT INTO live_tracking").
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})
	mock.ExpectRollback()

	_, _, err := repo.StartRide(context.Background(), rideID, driverID)

	appErr := apperrors.FromError(err)
	assert.Equal(t, apperrors.KindConflict, appErr.Kind)
	assert.Equal(t, apperrors.CodeDuplicateRide, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStartRide_WrongDriver(t *testing.T) {
	repo, mock := setupTrackingRepoTest(t)

	rideID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM rides WHERE ride_id").
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows([]string{"ride_id", "driver_id", "status", "origin_lat", "origin_lng"}).
			AddRow(rideID, uuid.New(), models.RideStatusOpen, -6.2, 106.8))
	mock.ExpectRollback()

	_, _, err := repo.StartRide(context.Background(), rideID, uuid.New())

	appErr := apperrors.FromError(err)
	assert.Equal(t, apperrors.KindUnauthorized, appErr.Kind)
	assert.Equal(t, apperrors.CodeUnauthorizedDriver, appErr.Code)
}

func TestStartRide_NoAcceptedPassengers(t *testing.T) {
	repo, mock := setupTrackingRepoTest(t)

	rideID := uuid.New()
	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM rides WHERE ride_id").
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows([]string{"ride_id", "driver_id", "status", "origin_lat", "origin_lng"}).
			AddRow(rideID, driverID, models.RideStatusOpen, -6.2, 106.8))
	mock.ExpectQuery("FROM ride_passengers WHERE ride_id").
		WithArgs(rideID, models.RequestStatusAccepted).
		WillReturnRows(sqlmock.NewRows([]string{"ride_id", "user_id", "pickup_location", "dropoff_location"}))
	mock.ExpectRollback()

	_, _, err := repo.StartRide(context.Background(), rideID, driverID)

	appErr := apperrors.FromError(err)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	assert.Equal(t, apperrors.CodeNoAcceptedPassengers, appErr.Code)
}

func TestStartRide_Success(t *testing.T) {
	repo, mock := setupTrackingRepoTest(t)

	rideID := uuid.New()
	driverID := uuid.New()
	passengerID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM rides WHERE ride_id").
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows([]string{"ride_id", "driver_id", "status", "origin_lat", "origin_lng"}).
			AddRow(rideID, driverID, models.RideStatusOpen, -6.2, 106.8))
	mock.ExpectQuery("FROM ride_passengers WHERE ride_id").
		WithArgs(rideID, models.RequestStatusAccepted).
		WillReturnRows(sqlmock.NewRows([]string{"ride_id", "user_id", "pickup_location", "dropoff_location"}).
			AddRow(rideID, passengerID, "Lebak Bulus", "Pasteur"))
	mock.ExpectExec("INSERT INTO live_tracking").
		WithArgs(rideID, driverID, models.TrackingStatusInProgress, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO tracking_passengers").
		WithArgs(rideID, passengerID, models.PassengerStatusAccepted, "Lebak Bulus", "Pasteur").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO tracking_locations").
		WithArgs(rideID, int64(1), -6.2, 106.8, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE rides SET status").
		WithArgs(models.RideStatusInProgress, sqlmock.AnyArg(), rideID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tracking, first, err := repo.StartRide(context.Background(), rideID, driverID)

	require.NoError(t, err)
	assert.Equal(t, models.TrackingStatusInProgress, tracking.Status)
	require.Len(t, tracking.Passengers, 1)
	assert.Equal(t, passengerID, tracking.Passengers[0].UserID)
	assert.Equal(t, int64(1), first.Sequence)
	assert.Equal(t, -6.2, first.Location.Latitude)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendLocation_Success(t *testing.T) {
	repo, mock := setupTrackingRepoTest(t)

	rideID := uuid.New()
	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM live_tracking WHERE ride_id").
		WithArgs(rideID).
		WillReturnRows(trackingRows(rideID, driverID, models.TrackingStatusInProgress))
	mock.ExpectQuery("INSERT INTO tracking_locations").
		WithArgs(rideID, -6.25, 106.85, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(int64(4)))
	mock.ExpectCommit()

	entry, err := repo.AppendLocation(context.Background(), rideID, driverID, -6.25, 106.85)

	require.NoError(t, err)
	assert.Equal(t, int64(4), entry.Sequence)
	assert.Equal(t, rideID.String(), entry.RideID)
	assert.NotEmpty(t, entry.Geohash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendLocation_WrongDriver(t *testing.T) {
	repo, mock := setupTrackingRepoTest(t)

	rideID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM live_tracking WHERE ride_id").
		WithArgs(rideID).
		WillReturnRows(trackingRows(rideID, uuid.New(), models.TrackingStatusInProgress))
	mock.ExpectRollback()

	_, err := repo.AppendLocation(context.Background(), rideID, uuid.New(), -6.25, 106.85)

	assert.Equal(t, apperrors.CodeUnauthorizedDriver, apperrors.FromError(err).Code)
}

func TestAppendLocation_TrackingMissing(t *testing.T) {
	repo, mock := setupTrackingRepoTest(t)

	rideID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM live_tracking WHERE ride_id").
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows([]string{"ride_id", "driver_id", "status", "start_time", "end_time"}))
	mock.ExpectRollback()

	_, err := repo.AppendLocation(context.Background(), rideID, uuid.New(), -6.25, 106.85)

	assert.Equal(t, apperrors.CodeRideNotFound, apperrors.FromError(err).Code)
}

func TestCompletePassenger_LastPassengerCompletesRide(t *testing.T) {
	repo, mock := setupTrackingRepoTest(t)

	rideID := uuid.New()
	driverID := uuid.New()
	passengerID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM live_tracking WHERE ride_id").
		WithArgs(rideID).
		WillReturnRows(trackingRows(rideID, driverID, models.TrackingStatusInProgress))
	mock.ExpectExec("UPDATE tracking_passengers SET status").
		WithArgs(models.PassengerStatusCompleted, sqlmock.AnyArg(), rideID, passengerID, models.PassengerStatusAccepted).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(rideID, models.PassengerStatusAccepted).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("UPDATE live_tracking SET status").
		WithArgs(models.TrackingStatusCompleted, sqlmock.AnyArg(), rideID, models.TrackingStatusInProgress).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE rides SET status").
		WithArgs(models.RideStatusCompleted, sqlmock.AnyArg(), rideID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.CompletePassenger(context.Background(), rideID, passengerID)

	require.NoError(t, err)
	assert.True(t, result.RideCompleted)
	assert.Equal(t, models.PassengerStatusCompleted, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompletePassenger_OthersStillActive(t *testing.T) {
	repo, mock := setupTrackingRepoTest(t)

	rideID := uuid.New()
	passengerID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM live_tracking WHERE ride_id").
		WithArgs(rideID).
		WillReturnRows(trackingRows(rideID, uuid.New(), models.TrackingStatusInProgress))
	mock.ExpectExec("UPDATE tracking_passengers SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(rideID, models.PassengerStatusAccepted).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectCommit()

	result, err := repo.CompletePassenger(context.Background(), rideID, passengerID)

	require.NoError(t, err)
	assert.False(t, result.RideCompleted)
}

func TestCompletePassenger_AlreadyEnded(t *testing.T) {
	repo, mock := setupTrackingRepoTest(t)

	rideID := uuid.New()
	passengerID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM live_tracking WHERE ride_id").
		WithArgs(rideID).
		WillReturnRows(trackingRows(rideID, uuid.New(), models.TrackingStatusInProgress))
	mock.ExpectExec("UPDATE tracking_passengers SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status FROM tracking_passengers").
		WithArgs(rideID, passengerID).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(models.PassengerStatusCompleted))
	mock.ExpectRollback()

	_, err := repo.CompletePassenger(context.Background(), rideID, passengerID)

	appErr := apperrors.FromError(err)
	assert.Equal(t, apperrors.KindConflict, appErr.Kind)
	assert.Equal(t, apperrors.CodePassengerAlreadyEnded, appErr.Code)
}

func TestCompletePassenger_PassengerNotFound(t *testing.T) {
	repo, mock := setupTrackingRepoTest(t)

	rideID := uuid.New()
	passengerID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM live_tracking WHERE ride_id").
		WithArgs(rideID).
		WillReturnRows(trackingRows(rideID, uuid.New(), models.TrackingStatusInProgress))
	mock.ExpectExec("UPDATE tracking_passengers SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status FROM tracking_passengers").
		WithArgs(rideID, passengerID).
		WillReturnRows(sqlmock.NewRows([]string{"status"}))
	mock.ExpectRollback()

	_, err := repo.CompletePassenger(context.Background(), rideID, passengerID)

	appErr := apperrors.FromError(err)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
	assert.Equal(t, apperrors.CodePassengerNotFound, appErr.Code)
}

func TestCompleteRide_Success(t *testing.T) {
	repo, mock := setupTrackingRepoTest(t)

	rideID := uuid.New()
	driverID := uuid.New()
	passengerID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("FROM live_tracking WHERE ride_id").
		WithArgs(rideID).
		WillReturnRows(trackingRows(rideID, driverID, models.TrackingStatusInProgress))
	mock.ExpectExec("UPDATE tracking_passengers SET status").
		WithArgs(models.PassengerStatusCompleted, sqlmock.AnyArg(), rideID, models.PassengerStatusAccepted).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE live_tracking SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE rides SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM tracking_passengers WHERE ride_id").
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows([]string{"ride_id", "user_id", "status", "pickup_location", "dropoff_location", "end_time"}).
			AddRow(rideID, passengerID, models.PassengerStatusCompleted, "Lebak Bulus", "Pasteur", time.Now()))
	mock.ExpectCommit()

	tracking, err := repo.CompleteRide(context.Background(), rideID, driverID)

	require.NoError(t, err)
	assert.Equal(t, models.TrackingStatusCompleted, tracking.Status)
	require.NotNil(t, tracking.EndTime)
	require.Len(t, tracking.Passengers, 1)
	assert.Equal(t, models.PassengerStatusCompleted, tracking.Passengers[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLastLocation_EmptyLog(t *testing.T) {
	repo, mock := setupTrackingRepoTest(t)

	rideID := uuid.New()

	mock.ExpectQuery("FROM tracking_locations WHERE ride_id").
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows([]string{"ride_id", "seq", "latitude", "longitude", "geohash", "recorded_at"}))

	entry, err := repo.GetLastLocation(context.Background(), rideID)

	assert.NoError(t, err)
	assert.Nil(t, entry)
}

func TestGetTracking_NotFound(t *testing.T) {
	repo, mock := setupTrackingRepoTest(t)

	rideID := uuid.New()

	mock.ExpectQuery("FROM live_tracking WHERE ride_id").
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows([]string{"ride_id", "driver_id", "status", "start_time", "end_time"}))

	_, err := repo.GetTracking(context.Background(), rideID)

	assert.Equal(t, apperrors.CodeRideNotFound, apperrors.FromError(err).Code)
}
