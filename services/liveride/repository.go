package liveride

import (
	"context"

	"github.com/google/uuid"

	"github.com/tumpangan/liveride/internal/pkg/models"
)

// RideRepo defines persistence for the ride aggregate
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/tumpangan/liveride/services/liveride RideRepo,TrackingRepo,TrackingCache
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, error)
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	GetAvailableRides(ctx context.Context, origin, destination string) ([]models.Ride, error)
	GetDriverRides(ctx context.Context, driverID uuid.UUID) ([]models.Ride, error)
	AddJoinRequest(ctx context.Context, req *models.PassengerRequest) error
	AcceptJoinRequest(ctx context.Context, rideID, passengerID uuid.UUID) (*models.PassengerRequest, error)
	RejectJoinRequest(ctx context.Context, rideID, passengerID uuid.UUID) (*models.PassengerRequest, error)
}

// TrackingRepo defines persistence for the live tracking aggregate. Every
// mutation spans both aggregates inside a single transaction: the ride status
// and tracking status move in lock-step or not at all.
type TrackingRepo interface {
	StartRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.LiveTracking, *models.LocationEntry, error)
	AppendLocation(ctx context.Context, rideID, driverID uuid.UUID, latitude, longitude float64) (*models.LocationEntry, error)
	CompletePassenger(ctx context.Context, rideID, passengerID uuid.UUID) (*models.PassengerEndResponse, error)
	CompleteRide(ctx context.Context, rideID, driverID uuid.UUID) (*models.LiveTracking, error)
	GetTracking(ctx context.Context, rideID uuid.UUID) (*models.LiveTracking, error)
	GetLastLocation(ctx context.Context, rideID uuid.UUID) (*models.LocationEntry, error)
}

// TrackingCache is a read-through projection of the latest committed location
// per ride. It is never the write target for authoritative state.
type TrackingCache interface {
	SetLastLocation(ctx context.Context, entry *models.LocationEntry) error
	GetLastLocation(ctx context.Context, rideID string) (*models.LocationEntry, error)
}
