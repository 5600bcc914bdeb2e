package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tumpangan/liveride/internal/pkg/apperrors"
	"github.com/tumpangan/liveride/internal/pkg/logger"
	"github.com/tumpangan/liveride/internal/pkg/models"
	"github.com/tumpangan/liveride/services/liveride"
	"github.com/tumpangan/liveride/services/liveride/mocks"
)

type trackingMocks struct {
	rideRepo     *mocks.MockRideRepo
	trackingRepo *mocks.MockTrackingRepo
	cache        *mocks.MockTrackingCache
	fanoutGW     *mocks.MockFanoutGW
}

func newTrackingUC(t *testing.T, cfg *models.Config) (liveride.TrackingUC, trackingMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := trackingMocks{
		rideRepo:     mocks.NewMockRideRepo(ctrl),
		trackingRepo: mocks.NewMockTrackingRepo(ctrl),
		cache:        mocks.NewMockTrackingCache(ctrl),
		fanoutGW:     mocks.NewMockFanoutGW(ctrl),
	}

	zapLogger, err := logger.NewZapLogger(logger.ZapConfig{Level: "error"})
	require.NoError(t, err)

	uc, err := NewTrackingUC(cfg, m.rideRepo, m.trackingRepo, m.cache, m.fanoutGW, zapLogger)
	require.NoError(t, err)

	return uc, m
}

func TestStartRide_Success(t *testing.T) {
	uc, m := newTrackingUC(t, &models.Config{})

	rideID := uuid.New()
	driverID := uuid.New()
	passengerID := uuid.New()
	now := time.Now()

	tracking := &models.LiveTracking{
		RideID:    rideID,
		DriverID:  driverID,
		Status:    models.TrackingStatusInProgress,
		StartTime: now,
		Passengers: []models.TrackedPassenger{
			{RideID: rideID, UserID: passengerID, Status: models.PassengerStatusAccepted},
		},
	}
	first := &models.LocationEntry{
		RideID:   rideID.String(),
		Sequence: 1,
		Location: models.Location{Latitude: -6.2, Longitude: 106.8, Timestamp: now},
	}

	m.trackingRepo.EXPECT().StartRide(gomock.Any(), rideID, driverID).Return(tracking, first, nil)
	m.cache.EXPECT().SetLastLocation(gomock.Any(), first).Return(nil)
	m.fanoutGW.EXPECT().RideStarted(gomock.Any()).Do(func(ev models.RideStartedEvent) {
		assert.Equal(t, rideID.String(), ev.RideID)
		assert.Equal(t, 1, ev.PassengerCount)
	})

	resp, err := uc.StartRide(context.Background(), rideID.String(), driverID)

	require.NoError(t, err)
	assert.Equal(t, rideID.String(), resp.LiveRideID)
	assert.Equal(t, now, resp.StartTime)
	assert.Len(t, resp.Passengers, 1)
}

func TestStartRide_InvalidRideID(t *testing.T) {
	uc, _ := newTrackingUC(t, &models.Config{})

	_, err := uc.StartRide(context.Background(), "not-a-uuid", uuid.New())

	appErr := apperrors.FromError(err)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	assert.Equal(t, apperrors.CodeInvalidRideID, appErr.Code)

	_, err = uc.StartRide(context.Background(), "", uuid.New())
	assert.Equal(t, apperrors.CodeMissingRideID, apperrors.FromError(err).Code)
}

func TestStartRide_DuplicatePassesThrough(t *testing.T) {
	uc, m := newTrackingUC(t, &models.Config{})

	rideID := uuid.New()
	driverID := uuid.New()
	conflict := apperrors.Conflict(apperrors.CodeDuplicateRide, "live tracking already exists for this ride")

	m.trackingRepo.EXPECT().StartRide(gomock.Any(), rideID, driverID).Return(nil, nil, conflict)

	_, err := uc.StartRide(context.Background(), rideID.String(), driverID)

	appErr := apperrors.FromError(err)
	assert.Equal(t, apperrors.KindConflict, appErr.Kind)
	assert.Equal(t, apperrors.CodeDuplicateRide, appErr.Code)
}

func TestStartRide_BreakerOpensAfterFailures(t *testing.T) {
	cfg := &models.Config{}
	cfg.Breaker.FailureThreshold = 1
	uc, m := newTrackingUC(t, cfg)

	rideID := uuid.New()
	driverID := uuid.New()

	m.trackingRepo.EXPECT().StartRide(gomock.Any(), rideID, driverID).
		Return(nil, nil, errors.New("db down")).Times(1)

	_, err := uc.StartRide(context.Background(), rideID.String(), driverID)
	require.Error(t, err)

	// Breaker is now open: the repository must not be invoked again
	_, err = uc.StartRide(context.Background(), rideID.String(), driverID)

	appErr := apperrors.FromError(err)
	assert.Equal(t, apperrors.KindUnavailable, appErr.Kind)
	assert.Equal(t, apperrors.CodeServiceUnavailable, appErr.Code)
}

func TestUpdateLocation_Success(t *testing.T) {
	uc, m := newTrackingUC(t, &models.Config{})

	rideID := uuid.New()
	driverID := uuid.New()
	entry := &models.LocationEntry{
		RideID:   rideID.String(),
		Sequence: 7,
		Location: models.Location{Latitude: -6.21, Longitude: 106.82, Timestamp: time.Now()},
		Geohash:  "qqguyu9hz",
	}

	m.trackingRepo.EXPECT().AppendLocation(gomock.Any(), rideID, driverID, -6.21, 106.82).Return(entry, nil)
	m.cache.EXPECT().SetLastLocation(gomock.Any(), entry).Return(nil)
	m.fanoutGW.EXPECT().LocationUpdated(gomock.Any()).Do(func(ev models.LocationUpdatedEvent) {
		assert.Equal(t, int64(7), ev.Sequence)
		assert.Equal(t, rideID.String(), ev.RideID)
	})

	got, err := uc.UpdateLocation(context.Background(), rideID.String(), driverID, -6.21, 106.82)

	require.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestUpdateLocation_InvalidCoordinates(t *testing.T) {
	uc, _ := newTrackingUC(t, &models.Config{})

	_, err := uc.UpdateLocation(context.Background(), uuid.NewString(), uuid.New(), 100.0, 200.0)

	appErr := apperrors.FromError(err)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	assert.Equal(t, apperrors.CodeInvalidCoordinates, appErr.Code)
}

func TestUpdateLocation_CacheFailureDoesNotFailRequest(t *testing.T) {
	uc, m := newTrackingUC(t, &models.Config{})

	rideID := uuid.New()
	driverID := uuid.New()
	entry := &models.LocationEntry{RideID: rideID.String(), Sequence: 2}

	m.trackingRepo.EXPECT().AppendLocation(gomock.Any(), rideID, driverID, -6.2, 106.8).Return(entry, nil)
	m.cache.EXPECT().SetLastLocation(gomock.Any(), entry).Return(errors.New("redis down"))
	m.fanoutGW.EXPECT().LocationUpdated(gomock.Any())

	_, err := uc.UpdateLocation(context.Background(), rideID.String(), driverID, -6.2, 106.8)

	assert.NoError(t, err)
}

func TestEndRideForPassenger_DriverEndsPassenger(t *testing.T) {
	uc, m := newTrackingUC(t, &models.Config{})

	rideID := uuid.New()
	driverID := uuid.New()
	passengerID := uuid.New()
	now := time.Now()

	tracking := &models.LiveTracking{
		RideID:   rideID,
		DriverID: driverID,
		Status:   models.TrackingStatusInProgress,
		Passengers: []models.TrackedPassenger{
			{UserID: passengerID, Status: models.PassengerStatusAccepted},
			{UserID: uuid.New(), Status: models.PassengerStatusAccepted},
		},
	}
	result := &models.PassengerEndResponse{
		PassengerID:   passengerID.String(),
		Status:        models.PassengerStatusCompleted,
		EndTime:       now,
		RideCompleted: false,
	}

	m.trackingRepo.EXPECT().GetTracking(gomock.Any(), rideID).Return(tracking, nil)
	m.trackingRepo.EXPECT().CompletePassenger(gomock.Any(), rideID, passengerID).Return(result, nil)
	m.fanoutGW.EXPECT().PassengerRideEnded(models.PassengerRideEndedEvent{
		RideID:      rideID.String(),
		PassengerID: passengerID.String(),
		EndTime:     now,
	})

	got, err := uc.EndRideForPassenger(context.Background(), rideID.String(), passengerID.String(), driverID)

	require.NoError(t, err)
	assert.False(t, got.RideCompleted)
}

func TestEndRideForPassenger_LastPassengerCompletesRide(t *testing.T) {
	uc, m := newTrackingUC(t, &models.Config{})

	rideID := uuid.New()
	driverID := uuid.New()
	passengerID := uuid.New()
	now := time.Now()

	tracking := &models.LiveTracking{
		RideID:   rideID,
		DriverID: driverID,
		Passengers: []models.TrackedPassenger{
			{UserID: passengerID, Status: models.PassengerStatusAccepted},
		},
	}
	result := &models.PassengerEndResponse{
		PassengerID:   passengerID.String(),
		Status:        models.PassengerStatusCompleted,
		EndTime:       now,
		RideCompleted: true,
	}

	// Passenger ends their own leg
	m.trackingRepo.EXPECT().GetTracking(gomock.Any(), rideID).Return(tracking, nil)
	m.trackingRepo.EXPECT().CompletePassenger(gomock.Any(), rideID, passengerID).Return(result, nil)
	m.fanoutGW.EXPECT().PassengerRideEnded(gomock.Any())
	m.fanoutGW.EXPECT().RideEnded(models.RideEndedEvent{RideID: rideID.String(), EndTime: now})

	got, err := uc.EndRideForPassenger(context.Background(), rideID.String(), passengerID.String(), passengerID)

	require.NoError(t, err)
	assert.True(t, got.RideCompleted)
}

func TestEndRideForPassenger_UnrelatedCallerRejected(t *testing.T) {
	uc, m := newTrackingUC(t, &models.Config{})

	rideID := uuid.New()
	passengerID := uuid.New()

	tracking := &models.LiveTracking{
		RideID:   rideID,
		DriverID: uuid.New(),
		Passengers: []models.TrackedPassenger{
			{UserID: passengerID, Status: models.PassengerStatusAccepted},
		},
	}

	m.trackingRepo.EXPECT().GetTracking(gomock.Any(), rideID).Return(tracking, nil)

	_, err := uc.EndRideForPassenger(context.Background(), rideID.String(), passengerID.String(), uuid.New())

	appErr := apperrors.FromError(err)
	assert.Equal(t, apperrors.KindUnauthorized, appErr.Kind)
	assert.Equal(t, apperrors.CodeUnauthorized, appErr.Code)
}

func TestEndRide_NotifiesEveryPassenger(t *testing.T) {
	uc, m := newTrackingUC(t, &models.Config{})

	rideID := uuid.New()
	driverID := uuid.New()
	now := time.Now()
	p1 := uuid.New()
	p2 := uuid.New()

	tracking := &models.LiveTracking{
		RideID:   rideID,
		DriverID: driverID,
		Status:   models.TrackingStatusCompleted,
		EndTime:  &now,
		Passengers: []models.TrackedPassenger{
			{UserID: p1, Status: models.PassengerStatusCompleted, EndTime: &now},
			{UserID: p2, Status: models.PassengerStatusCompleted, EndTime: &now},
		},
	}

	m.trackingRepo.EXPECT().CompleteRide(gomock.Any(), rideID, driverID).Return(tracking, nil)
	m.fanoutGW.EXPECT().PassengerRideEnded(gomock.Any()).Times(2)
	m.fanoutGW.EXPECT().RideEnded(models.RideEndedEvent{RideID: rideID.String(), EndTime: now})

	got, err := uc.EndRide(context.Background(), rideID.String(), driverID)

	require.NoError(t, err)
	assert.Equal(t, models.TrackingStatusCompleted, got.Status)
}

func TestGetRideStatus_UsesCachedLocation(t *testing.T) {
	uc, m := newTrackingUC(t, &models.Config{})

	rideID := uuid.New()
	driverID := uuid.New()
	cached := &models.LocationEntry{RideID: rideID.String(), Sequence: 12}

	tracking := &models.LiveTracking{
		RideID:   rideID,
		DriverID: driverID,
		Status:   models.TrackingStatusInProgress,
	}
	ride := &models.Ride{
		RideID:      rideID,
		DriverID:    driverID,
		Origin:      "Jakarta",
		Destination: "Bandung",
		Distance:    150,
		Duration:    180,
	}

	m.trackingRepo.EXPECT().GetTracking(gomock.Any(), rideID).Return(tracking, nil)
	m.cache.EXPECT().GetLastLocation(gomock.Any(), rideID.String()).Return(cached, nil)
	m.rideRepo.EXPECT().GetRide(gomock.Any(), rideID).Return(ride, nil)

	status, err := uc.GetRideStatus(context.Background(), rideID.String(), driverID)

	require.NoError(t, err)
	assert.Equal(t, cached, status.CurrentLocation)
	assert.Equal(t, "Bandung", status.RideDetails.Destination)
}

func TestGetRideStatus_CacheMissFallsBackToRepo(t *testing.T) {
	uc, m := newTrackingUC(t, &models.Config{})

	rideID := uuid.New()
	passengerID := uuid.New()
	stored := &models.LocationEntry{RideID: rideID.String(), Sequence: 3}

	tracking := &models.LiveTracking{
		RideID:   rideID,
		DriverID: uuid.New(),
		Passengers: []models.TrackedPassenger{
			{UserID: passengerID, Status: models.PassengerStatusAccepted},
		},
	}

	m.trackingRepo.EXPECT().GetTracking(gomock.Any(), rideID).Return(tracking, nil)
	m.cache.EXPECT().GetLastLocation(gomock.Any(), rideID.String()).Return(nil, nil)
	m.trackingRepo.EXPECT().GetLastLocation(gomock.Any(), rideID).Return(stored, nil)
	m.rideRepo.EXPECT().GetRide(gomock.Any(), rideID).Return(&models.Ride{RideID: rideID}, nil)

	status, err := uc.GetRideStatus(context.Background(), rideID.String(), passengerID)

	require.NoError(t, err)
	assert.Equal(t, stored, status.CurrentLocation)
}

func TestGetRideStatus_NonParticipantRejected(t *testing.T) {
	uc, m := newTrackingUC(t, &models.Config{})

	rideID := uuid.New()
	tracking := &models.LiveTracking{RideID: rideID, DriverID: uuid.New()}

	m.trackingRepo.EXPECT().GetTracking(gomock.Any(), rideID).Return(tracking, nil)

	_, err := uc.GetRideStatus(context.Background(), rideID.String(), uuid.New())

	assert.Equal(t, apperrors.KindUnauthorized, apperrors.FromError(err).Kind)
}

func TestAuthorizeRideJoin_Participant(t *testing.T) {
	uc, m := newTrackingUC(t, &models.Config{})

	rideID := uuid.New()
	passengerID := uuid.New()
	tracking := &models.LiveTracking{
		RideID:   rideID,
		DriverID: uuid.New(),
		Passengers: []models.TrackedPassenger{
			{UserID: passengerID, Status: models.PassengerStatusAccepted},
		},
	}

	m.trackingRepo.EXPECT().GetTracking(gomock.Any(), rideID).Return(tracking, nil)
	m.cache.EXPECT().GetLastLocation(gomock.Any(), rideID.String()).Return(&models.LocationEntry{Sequence: 5}, nil)
	m.rideRepo.EXPECT().GetRide(gomock.Any(), rideID).Return(&models.Ride{Origin: "A", Destination: "B"}, nil)

	details, err := uc.AuthorizeRideJoin(context.Background(), rideID.String(), passengerID)

	require.NoError(t, err)
	assert.Equal(t, "B", details.Destination)
	assert.Equal(t, int64(5), details.CurrentLocation.Sequence)
}

func TestAuthorizeRideJoin_TrackingMissing(t *testing.T) {
	uc, m := newTrackingUC(t, &models.Config{})

	rideID := uuid.New()
	notFound := apperrors.NotFound(apperrors.CodeRideNotFound, "live tracking not found")

	m.trackingRepo.EXPECT().GetTracking(gomock.Any(), rideID).Return(nil, notFound)

	_, err := uc.AuthorizeRideJoin(context.Background(), rideID.String(), uuid.New())

	assert.Equal(t, apperrors.CodeRideNotFound, apperrors.FromError(err).Code)
}
