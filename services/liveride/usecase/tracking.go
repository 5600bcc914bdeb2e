package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tumpangan/liveride/internal/pkg/apperrors"
	"github.com/tumpangan/liveride/internal/pkg/circuitbreaker"
	"github.com/tumpangan/liveride/internal/pkg/geo"
	"github.com/tumpangan/liveride/internal/pkg/logger"
	"github.com/tumpangan/liveride/internal/pkg/models"
	"github.com/tumpangan/liveride/services/liveride"
)

// trackingUC implements the liveride.TrackingUC interface
type trackingUC struct {
	cfg          *models.Config
	rideRepo     liveride.RideRepo
	trackingRepo liveride.TrackingRepo
	cache        liveride.TrackingCache
	fanoutGW     liveride.FanoutGW
	breaker      *circuitbreaker.CircuitBreaker
	logger       *logger.ZapLogger
}

// NewTrackingUC creates the live tracking use case. The ride start path runs
// behind a circuit breaker since it is the contention hot spot.
func NewTrackingUC(
	cfg *models.Config,
	rideRepo liveride.RideRepo,
	trackingRepo liveride.TrackingRepo,
	cache liveride.TrackingCache,
	fanoutGW liveride.FanoutGW,
	zapLogger *logger.ZapLogger,
) (liveride.TrackingUC, error) {
	breakerCfg := circuitbreaker.DefaultConfig("start-ride")
	if cfg.Breaker.FailureThreshold > 0 {
		breakerCfg.FailureThreshold = cfg.Breaker.FailureThreshold
	}
	if cfg.Breaker.SuccessThreshold > 0 {
		breakerCfg.SuccessThreshold = cfg.Breaker.SuccessThreshold
	}
	if cfg.Breaker.MaxHalfOpen > 0 {
		breakerCfg.MaxRequests = cfg.Breaker.MaxHalfOpen
	}
	if cfg.Breaker.CooldownSeconds > 0 {
		breakerCfg.Timeout = time.Duration(cfg.Breaker.CooldownSeconds) * time.Second
	}
	if cfg.Breaker.CallTimeoutMs > 0 {
		breakerCfg.CallTimeout = time.Duration(cfg.Breaker.CallTimeoutMs) * time.Millisecond
	}

	return &trackingUC{
		cfg:          cfg,
		rideRepo:     rideRepo,
		trackingRepo: trackingRepo,
		cache:        cache,
		fanoutGW:     fanoutGW,
		breaker:      circuitbreaker.New(breakerCfg, zapLogger),
		logger:       zapLogger,
	}, nil
}

// StartRide starts live tracking for a ride. The whole critical section runs
// behind the circuit breaker; events and the cache projection are only
// touched after the transaction commits.
func (uc *trackingUC) StartRide(ctx context.Context, rideID string, driverID uuid.UUID) (*models.StartRideResponse, error) {
	id, err := parseRideID(rideID)
	if err != nil {
		return nil, err
	}

	var (
		tracking *models.LiveTracking
		first    *models.LocationEntry
	)
	err = uc.breaker.Execute(ctx, func(ctx context.Context) error {
		var execErr error
		tracking, first, execErr = uc.trackingRepo.StartRide(ctx, id, driverID)
		return execErr
	})
	if err != nil {
		if errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen) || errors.Is(err, circuitbreaker.ErrTooManyRequests) {
			return nil, apperrors.Unavailable(apperrors.CodeServiceUnavailable, "ride start temporarily unavailable").WithRide(rideID)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.Unavailable(apperrors.CodeStartRideFailed, "ride start timed out").WithRide(rideID)
		}
		return nil, err
	}

	uc.logger.Info("Live tracking started",
		logger.String("ride_id", rideID),
		logger.String("driver_id", driverID.String()),
		logger.Int("passengers", len(tracking.Passengers)))

	uc.cacheLastLocation(first)
	uc.fanoutGW.RideStarted(models.RideStartedEvent{
		RideID:         rideID,
		StartTime:      tracking.StartTime,
		DriverID:       driverID.String(),
		PassengerCount: len(tracking.Passengers),
		FirstLocation:  first.Location,
	})

	return &models.StartRideResponse{
		LiveRideID:    rideID,
		StartTime:     tracking.StartTime,
		FirstLocation: first.Location,
		Passengers:    tracking.Passengers,
	}, nil
}

// UpdateLocation validates and appends a driver location report
func (uc *trackingUC) UpdateLocation(ctx context.Context, rideID string, driverID uuid.UUID, latitude, longitude float64) (*models.LocationEntry, error) {
	id, err := parseRideID(rideID)
	if err != nil {
		return nil, err
	}
	if !geo.ValidCoordinates(latitude, longitude) {
		return nil, apperrors.Validation(apperrors.CodeInvalidCoordinates, "latitude or longitude out of range").WithRide(rideID)
	}

	entry, err := uc.trackingRepo.AppendLocation(ctx, id, driverID, latitude, longitude)
	if err != nil {
		return nil, err
	}

	uc.cacheLastLocation(entry)
	uc.fanoutGW.LocationUpdated(models.LocationUpdatedEvent{
		RideID:   rideID,
		Location: entry.Location,
		Geohash:  entry.Geohash,
		Sequence: entry.Sequence,
	})

	return entry, nil
}

// EndRideForPassenger ends the ride for one passenger. The driver may end
// any passenger's leg; a passenger may only end their own.
func (uc *trackingUC) EndRideForPassenger(ctx context.Context, rideID, passengerID string, callerID uuid.UUID) (*models.PassengerEndResponse, error) {
	id, err := parseRideID(rideID)
	if err != nil {
		return nil, err
	}
	pid, err := uuid.Parse(passengerID)
	if err != nil {
		return nil, apperrors.NotFound(apperrors.CodePassengerNotFound, "passenger not found in this ride").WithRide(rideID)
	}

	tracking, err := uc.trackingRepo.GetTracking(ctx, id)
	if err != nil {
		return nil, err
	}
	if callerID != tracking.DriverID && callerID != pid {
		return nil, apperrors.Unauthorized(apperrors.CodeUnauthorized, "not allowed to end this passenger's ride").WithRide(rideID)
	}

	result, err := uc.trackingRepo.CompletePassenger(ctx, id, pid)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Passenger ride ended",
		logger.String("ride_id", rideID),
		logger.String("passenger_id", passengerID),
		logger.Bool("ride_completed", result.RideCompleted))

	uc.fanoutGW.PassengerRideEnded(models.PassengerRideEndedEvent{
		RideID:      rideID,
		PassengerID: passengerID,
		EndTime:     result.EndTime,
	})
	if result.RideCompleted {
		uc.fanoutGW.RideEnded(models.RideEndedEvent{
			RideID:  rideID,
			EndTime: result.EndTime,
		})
	}

	return result, nil
}

// EndRide force-completes the whole ride on the driver's behalf
func (uc *trackingUC) EndRide(ctx context.Context, rideID string, driverID uuid.UUID) (*models.LiveTracking, error) {
	id, err := parseRideID(rideID)
	if err != nil {
		return nil, err
	}

	tracking, err := uc.trackingRepo.CompleteRide(ctx, id, driverID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Ride ended",
		logger.String("ride_id", rideID),
		logger.Int("passengers", len(tracking.Passengers)))

	for _, p := range tracking.Passengers {
		if p.EndTime == nil {
			continue
		}
		uc.fanoutGW.PassengerRideEnded(models.PassengerRideEndedEvent{
			RideID:      rideID,
			PassengerID: p.UserID.String(),
			EndTime:     *p.EndTime,
		})
	}
	uc.fanoutGW.RideEnded(models.RideEndedEvent{
		RideID:  rideID,
		EndTime: *tracking.EndTime,
	})

	return tracking, nil
}

// GetRideStatus returns the live view of a ride to its driver or one of its
// tracked passengers
func (uc *trackingUC) GetRideStatus(ctx context.Context, rideID string, callerID uuid.UUID) (*models.RideStatusResponse, error) {
	id, err := parseRideID(rideID)
	if err != nil {
		return nil, err
	}

	tracking, err := uc.trackingRepo.GetTracking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canViewRide(tracking, callerID) {
		return nil, apperrors.Unauthorized(apperrors.CodeUnauthorized, "not a participant of this ride").WithRide(rideID)
	}

	status := &models.RideStatusResponse{
		Status:          tracking.Status,
		CurrentLocation: uc.lastLocation(ctx, id),
		StartTime:       tracking.StartTime,
		EndTime:         tracking.EndTime,
		Passengers:      tracking.Passengers,
	}

	if ride, err := uc.rideRepo.GetRide(ctx, id); err == nil {
		status.RideDetails = &models.RideDetails{
			Origin:      ride.Origin,
			Destination: ride.Destination,
			Distance:    ride.Distance,
			Duration:    ride.Duration,
		}
	} else {
		uc.logger.Warn("Failed to load ride details for status",
			logger.String("ride_id", rideID),
			logger.Err(err))
	}

	return status, nil
}

// AuthorizeRideJoin checks whether a user may enter the ride room and
// returns the snapshot sent right after joining
func (uc *trackingUC) AuthorizeRideJoin(ctx context.Context, rideID string, userID uuid.UUID) (*models.RideDetailsEvent, error) {
	id, err := parseRideID(rideID)
	if err != nil {
		return nil, err
	}

	tracking, err := uc.trackingRepo.GetTracking(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canViewRide(tracking, userID) {
		return nil, apperrors.Unauthorized(apperrors.CodeUnauthorized, "not a participant of this ride").WithRide(rideID)
	}

	details := &models.RideDetailsEvent{
		RideID:          rideID,
		CurrentLocation: uc.lastLocation(ctx, id),
	}
	if ride, err := uc.rideRepo.GetRide(ctx, id); err == nil {
		details.Origin = ride.Origin
		details.Destination = ride.Destination
	}

	return details, nil
}

// lastLocation reads the latest location, preferring the cache projection
func (uc *trackingUC) lastLocation(ctx context.Context, rideID uuid.UUID) *models.LocationEntry {
	if entry, err := uc.cache.GetLastLocation(ctx, rideID.String()); err == nil && entry != nil {
		return entry
	}

	entry, err := uc.trackingRepo.GetLastLocation(ctx, rideID)
	if err != nil {
		uc.logger.Warn("Failed to read last location",
			logger.String("ride_id", rideID.String()),
			logger.Err(err))
		return nil
	}
	return entry
}

// cacheLastLocation updates the projection after a commit, best effort
func (uc *trackingUC) cacheLastLocation(entry *models.LocationEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := uc.cache.SetLastLocation(ctx, entry); err != nil {
		uc.logger.Warn("Failed to cache last location",
			logger.String("ride_id", entry.RideID),
			logger.Err(err))
	}
}

// canViewRide reports whether the user is the driver or a tracked passenger
func canViewRide(tracking *models.LiveTracking, userID uuid.UUID) bool {
	if tracking.DriverID == userID {
		return true
	}
	for _, p := range tracking.Passengers {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// parseRideID validates the ride id path/body parameter
func parseRideID(rideID string) (uuid.UUID, error) {
	if rideID == "" {
		return uuid.Nil, apperrors.Validation(apperrors.CodeMissingRideID, "ride id is required")
	}
	id, err := uuid.Parse(rideID)
	if err != nil {
		return uuid.Nil, apperrors.Validation(apperrors.CodeInvalidRideID, "ride id is not a valid uuid").WithRide(rideID)
	}
	return id, nil
}
