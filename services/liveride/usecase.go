package liveride

import (
	"context"

	"github.com/google/uuid"

	"github.com/tumpangan/liveride/internal/pkg/models"
)

// TrackingUC is the lifecycle controller for live ride tracking
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/tumpangan/liveride/services/liveride TrackingUC,RideUC
type TrackingUC interface {
	StartRide(ctx context.Context, rideID string, driverID uuid.UUID) (*models.StartRideResponse, error)
	UpdateLocation(ctx context.Context, rideID string, driverID uuid.UUID, latitude, longitude float64) (*models.LocationEntry, error)
	EndRideForPassenger(ctx context.Context, rideID, passengerID string, callerID uuid.UUID) (*models.PassengerEndResponse, error)
	EndRide(ctx context.Context, rideID string, driverID uuid.UUID) (*models.LiveTracking, error)
	GetRideStatus(ctx context.Context, rideID string, callerID uuid.UUID) (*models.RideStatusResponse, error)
	AuthorizeRideJoin(ctx context.Context, rideID string, userID uuid.UUID) (*models.RideDetailsEvent, error)
}

// RideUC manages ride offerings before they go live
type RideUC interface {
	CreateRide(ctx context.Context, driverID uuid.UUID, req models.CreateRideRequest) (*models.Ride, error)
	GetAvailableRides(ctx context.Context, origin, destination string) ([]models.Ride, error)
	GetDriverRides(ctx context.Context, driverID uuid.UUID) ([]models.Ride, error)
	JoinRide(ctx context.Context, rideID string, userID uuid.UUID, req models.JoinRideRequest) (*models.PassengerRequest, error)
	HandleJoinRequest(ctx context.Context, rideID, passengerID string, driverID uuid.UUID, status models.RequestStatus) (*models.PassengerRequest, error)
}
