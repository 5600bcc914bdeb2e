package usecase

import (
	"context"
	"testing"

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

func newRideUC(t *testing.T) (liveride.RideUC, *mocks.MockRideRepo) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockRideRepo(ctrl)

	zapLogger, err := logger.NewZapLogger(logger.ZapConfig{Level: "error"})
	require.NoError(t, err)

	uc, err := NewRideUC(&models.Config{}, repo, zapLogger)
	require.NoError(t, err)

	return uc, repo
}

func TestCreateRide_Success(t *testing.T) {
	uc, repo := newRideUC(t)

	driverID := uuid.New()
	req := models.CreateRideRequest{
		Origin:      "Jakarta",
		Destination: "Bandung",
		TotalSeats:  3,
		Distance:    150,
		Duration:    180,
		OriginLat:   -6.2,
		OriginLng:   106.8,
	}

	repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ride *models.Ride) (*models.Ride, error) {
			assert.Equal(t, driverID, ride.DriverID)
			assert.Equal(t, 3, ride.TotalSeats)
			ride.RideID = uuid.New()
			ride.Status = models.RideStatusOpen
			ride.AvailableSeats = ride.TotalSeats
			return ride, nil
		})

	ride, err := uc.CreateRide(context.Background(), driverID, req)

	require.NoError(t, err)
	assert.Equal(t, models.RideStatusOpen, ride.Status)
	assert.Equal(t, 3, ride.AvailableSeats)
}

func TestCreateRide_DerivesDistanceFromCoordinates(t *testing.T) {
	uc, repo := newRideUC(t)

	repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ride *models.Ride) (*models.Ride, error) {
			return ride, nil
		})

	ride, err := uc.CreateRide(context.Background(), uuid.New(), models.CreateRideRequest{
		Origin:         "Jakarta",
		Destination:    "Bandung",
		TotalSeats:     3,
		OriginLat:      -6.2,
		OriginLng:      106.8,
		DestinationLat: -6.9,
		DestinationLng: 107.6,
	})

	require.NoError(t, err)
	// haversine Jakarta to Bandung, roughly 118 km
	assert.InDelta(t, 117.8, ride.Distance, 1.0)
}

func TestCreateRide_ExplicitDistanceWins(t *testing.T) {
	uc, repo := newRideUC(t)

	repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ride *models.Ride) (*models.Ride, error) {
			return ride, nil
		})

	ride, err := uc.CreateRide(context.Background(), uuid.New(), models.CreateRideRequest{
		Origin:         "Jakarta",
		Destination:    "Bandung",
		TotalSeats:     3,
		Distance:       150,
		OriginLat:      -6.2,
		OriginLng:      106.8,
		DestinationLat: -6.9,
		DestinationLng: 107.6,
	})

	require.NoError(t, err)
	assert.Equal(t, 150.0, ride.Distance)
}

func TestCreateRide_Validation(t *testing.T) {
	uc, _ := newRideUC(t)

	tests := []struct {
		name string
		req  models.CreateRideRequest
		code string
	}{
		{
			name: "missing origin",
			req:  models.CreateRideRequest{Destination: "Bandung", TotalSeats: 2},
			code: apperrors.CodeInvalidRequest,
		},
		{
			name: "zero seats",
			req:  models.CreateRideRequest{Origin: "Jakarta", Destination: "Bandung"},
			code: apperrors.CodeInvalidRequest,
		},
		{
			name: "bad origin coordinates",
			req:  models.CreateRideRequest{Origin: "Jakarta", Destination: "Bandung", TotalSeats: 2, OriginLat: 95},
			code: apperrors.CodeInvalidCoordinates,
		},
		{
			name: "bad destination coordinates",
			req:  models.CreateRideRequest{Origin: "Jakarta", Destination: "Bandung", TotalSeats: 2, DestinationLng: 200},
			code: apperrors.CodeInvalidCoordinates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateRide(context.Background(), uuid.New(), tt.req)
			appErr := apperrors.FromError(err)
			assert.Equal(t, apperrors.KindValidation, appErr.Kind)
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestJoinRide_Success(t *testing.T) {
	uc, repo := newRideUC(t)

	rideID := uuid.New()
	userID := uuid.New()
	ride := &models.Ride{
		RideID:         rideID,
		DriverID:       uuid.New(),
		Status:         models.RideStatusOpen,
		AvailableSeats: 2,
	}

	repo.EXPECT().GetRide(gomock.Any(), rideID).Return(ride, nil)
	repo.EXPECT().AddJoinRequest(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *models.PassengerRequest) error {
			assert.Equal(t, userID, req.UserID)
			assert.Equal(t, "Lebak Bulus", req.PickupLocation)
			return nil
		})

	request, err := uc.JoinRide(context.Background(), rideID.String(), userID, models.JoinRideRequest{
		PickupLocation:  "Lebak Bulus",
		DropoffLocation: "Pasteur",
	})

	require.NoError(t, err)
	assert.Equal(t, rideID, request.RideID)
}

func TestJoinRide_Rejections(t *testing.T) {
	driverID := uuid.New()
	rideID := uuid.New()

	tests := []struct {
		name   string
		ride   *models.Ride
		caller uuid.UUID
		code   string
	}{
		{
			name:   "own ride",
			ride:   &models.Ride{RideID: rideID, DriverID: driverID, Status: models.RideStatusOpen, AvailableSeats: 2},
			caller: driverID,
			code:   apperrors.CodeInvalidRequest,
		},
		{
			name:   "not open",
			ride:   &models.Ride{RideID: rideID, DriverID: driverID, Status: models.RideStatusInProgress, AvailableSeats: 2},
			caller: uuid.New(),
			code:   apperrors.CodeRideNotOpen,
		},
		{
			name:   "full",
			ride:   &models.Ride{RideID: rideID, DriverID: driverID, Status: models.RideStatusOpen, AvailableSeats: 0},
			caller: uuid.New(),
			code:   apperrors.CodeNoAvailableSeats,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newRideUC(t)
			repo.EXPECT().GetRide(gomock.Any(), rideID).Return(tt.ride, nil)

			_, err := uc.JoinRide(context.Background(), rideID.String(), tt.caller, models.JoinRideRequest{})

			assert.Equal(t, tt.code, apperrors.FromError(err).Code)
		})
	}
}

func TestHandleJoinRequest_Accept(t *testing.T) {
	uc, repo := newRideUC(t)

	rideID := uuid.New()
	driverID := uuid.New()
	passengerID := uuid.New()

	ride := &models.Ride{RideID: rideID, DriverID: driverID, Status: models.RideStatusOpen}
	accepted := &models.PassengerRequest{RideID: rideID, UserID: passengerID, Status: models.RequestStatusAccepted}

	repo.EXPECT().GetRide(gomock.Any(), rideID).Return(ride, nil)
	repo.EXPECT().AcceptJoinRequest(gomock.Any(), rideID, passengerID).Return(accepted, nil)

	got, err := uc.HandleJoinRequest(context.Background(), rideID.String(), passengerID.String(), driverID, models.RequestStatusAccepted)

	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, got.Status)
}

func TestHandleJoinRequest_NotDriver(t *testing.T) {
	uc, repo := newRideUC(t)

	rideID := uuid.New()
	ride := &models.Ride{RideID: rideID, DriverID: uuid.New()}

	repo.EXPECT().GetRide(gomock.Any(), rideID).Return(ride, nil)

	_, err := uc.HandleJoinRequest(context.Background(), rideID.String(), uuid.NewString(), uuid.New(), models.RequestStatusRejected)

	appErr := apperrors.FromError(err)
	assert.Equal(t, apperrors.KindUnauthorized, appErr.Kind)
	assert.Equal(t, apperrors.CodeUnauthorizedDriver, appErr.Code)
}

func TestHandleJoinRequest_InvalidStatus(t *testing.T) {
	uc, _ := newRideUC(t)

	_, err := uc.HandleJoinRequest(context.Background(), uuid.NewString(), uuid.NewString(), uuid.New(), models.RequestStatusPending)

	assert.Equal(t, apperrors.CodeInvalidRequest, apperrors.FromError(err).Code)
}
