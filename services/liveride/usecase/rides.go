package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/tumpangan/liveride/internal/pkg/apperrors"
	"github.com/tumpangan/liveride/internal/pkg/geo"
	"github.com/tumpangan/liveride/internal/pkg/logger"
	"github.com/tumpangan/liveride/internal/pkg/models"
	"github.com/tumpangan/liveride/services/liveride"
)

// rideUC implements the liveride.RideUC interface
type rideUC struct {
	cfg      *models.Config
	rideRepo liveride.RideRepo
	logger   *logger.ZapLogger
}

// NewRideUC creates the ride offering use case
func NewRideUC(
	cfg *models.Config,
	rideRepo liveride.RideRepo,
	zapLogger *logger.ZapLogger,
) (liveride.RideUC, error) {
	return &rideUC{
		cfg:      cfg,
		rideRepo: rideRepo,
		logger:   zapLogger,
	}, nil
}

// CreateRide publishes a new ride offering for a driver
func (uc *rideUC) CreateRide(ctx context.Context, driverID uuid.UUID, req models.CreateRideRequest) (*models.Ride, error) {
	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		return nil, apperrors.Validation(apperrors.CodeInvalidRequest, "origin and destination are required")
	}
	if req.TotalSeats <= 0 {
		return nil, apperrors.Validation(apperrors.CodeInvalidRequest, "total seats must be positive")
	}
	if !geo.ValidCoordinates(req.OriginLat, req.OriginLng) {
		return nil, apperrors.Validation(apperrors.CodeInvalidCoordinates, "origin coordinates out of range")
	}
	if !geo.ValidCoordinates(req.DestinationLat, req.DestinationLng) {
		return nil, apperrors.Validation(apperrors.CodeInvalidCoordinates, "destination coordinates out of range")
	}

	distance := req.Distance
	if distance == 0 && (req.DestinationLat != 0 || req.DestinationLng != 0) {
		distance = geo.Distance(req.OriginLat, req.OriginLng, req.DestinationLat, req.DestinationLng)
	}

	ride := &models.Ride{
		DriverID:       driverID,
		Origin:         req.Origin,
		Destination:    req.Destination,
		TotalSeats:     req.TotalSeats,
		Distance:       distance,
		Duration:       req.Duration,
		OriginLat:      req.OriginLat,
		OriginLng:      req.OriginLng,
		DestinationLat: req.DestinationLat,
		DestinationLng: req.DestinationLng,
	}

	created, err := uc.rideRepo.CreateRide(ctx, ride)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Ride created",
		logger.String("ride_id", created.RideID.String()),
		logger.String("driver_id", driverID.String()),
		logger.Int("seats", created.TotalSeats))

	return created, nil
}

// GetAvailableRides lists joinable rides matching the optional filters
func (uc *rideUC) GetAvailableRides(ctx context.Context, origin, destination string) ([]models.Ride, error) {
	return uc.rideRepo.GetAvailableRides(ctx, strings.TrimSpace(origin), strings.TrimSpace(destination))
}

// GetDriverRides lists the rides offered by the calling driver
func (uc *rideUC) GetDriverRides(ctx context.Context, driverID uuid.UUID) ([]models.Ride, error) {
	return uc.rideRepo.GetDriverRides(ctx, driverID)
}

// JoinRide files a passenger's request to join an open ride
func (uc *rideUC) JoinRide(ctx context.Context, rideID string, userID uuid.UUID, req models.JoinRideRequest) (*models.PassengerRequest, error) {
	id, err := parseRideID(rideID)
	if err != nil {
		return nil, err
	}

	ride, err := uc.rideRepo.GetRide(ctx, id)
	if err != nil {
		return nil, err
	}
	if ride.DriverID == userID {
		return nil, apperrors.Validation(apperrors.CodeInvalidRequest, "driver cannot join their own ride").WithRide(rideID)
	}
	if ride.Status != models.RideStatusOpen {
		return nil, apperrors.Conflict(apperrors.CodeRideNotOpen, "ride is not open for join requests").WithRide(rideID)
	}
	if ride.AvailableSeats <= 0 {
		return nil, apperrors.Conflict(apperrors.CodeNoAvailableSeats, "no available seats left on this ride").WithRide(rideID)
	}

	request := &models.PassengerRequest{
		RideID:          id,
		UserID:          userID,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
	}
	if err := uc.rideRepo.AddJoinRequest(ctx, request); err != nil {
		return nil, err
	}

	uc.logger.Info("Join request filed",
		logger.String("ride_id", rideID),
		logger.String("user_id", userID.String()))

	return request, nil
}

// HandleJoinRequest lets the ride's driver accept or reject a pending request
func (uc *rideUC) HandleJoinRequest(ctx context.Context, rideID, passengerID string, driverID uuid.UUID, status models.RequestStatus) (*models.PassengerRequest, error) {
	id, err := parseRideID(rideID)
	if err != nil {
		return nil, err
	}
	pid, err := uuid.Parse(passengerID)
	if err != nil {
		return nil, apperrors.NotFound(apperrors.CodeRequestNotFound, "join request not found").WithRide(rideID)
	}
	if status != models.RequestStatusAccepted && status != models.RequestStatusRejected {
		return nil, apperrors.Validation(apperrors.CodeInvalidRequest, "status must be accepted or rejected")
	}

	ride, err := uc.rideRepo.GetRide(ctx, id)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, apperrors.Unauthorized(apperrors.CodeUnauthorizedDriver, "only the ride driver can handle join requests").WithRide(rideID)
	}

	var handled *models.PassengerRequest
	if status == models.RequestStatusAccepted {
		handled, err = uc.rideRepo.AcceptJoinRequest(ctx, id, pid)
	} else {
		handled, err = uc.rideRepo.RejectJoinRequest(ctx, id, pid)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Join request handled",
		logger.String("ride_id", rideID),
		logger.String("passenger_id", passengerID),
		logger.String("status", string(status)))

	return handled, nil
}
