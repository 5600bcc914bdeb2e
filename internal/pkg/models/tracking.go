package models

import (
	"time"

	"github.com/google/uuid"
)

// TrackingStatus represents the overall status of a live tracking record
type TrackingStatus string

const (
	TrackingStatusInProgress TrackingStatus = "in_progress"
	TrackingStatusCompleted  TrackingStatus = "completed"
	TrackingStatusCanceled   TrackingStatus = "canceled"
)

// PassengerStatus represents the sub-status of a tracked passenger
type PassengerStatus string

const (
	PassengerStatusAccepted  PassengerStatus = "accepted"
	PassengerStatusCompleted PassengerStatus = "completed"
	PassengerStatusCanceled  PassengerStatus = "canceled"
)

// LiveTracking is the live operational state of a started ride.
// There is at most one record per ride id; duplicate creation is rejected.
type LiveTracking struct {
	RideID    uuid.UUID      `json:"ride_id" db:"ride_id"`
	DriverID  uuid.UUID      `json:"driver_id" db:"driver_id"`
	Status    TrackingStatus `json:"status" db:"status"`
	StartTime time.Time      `json:"start_time" db:"start_time"`
	EndTime   *time.Time     `json:"end_time,omitempty" db:"end_time"`

	Passengers []TrackedPassenger `json:"passengers,omitempty"`
}

// TrackedPassenger is the per-passenger progress within a live ride
type TrackedPassenger struct {
	RideID          uuid.UUID       `json:"ride_id" db:"ride_id"`
	UserID          uuid.UUID       `json:"user_id" db:"user_id"`
	Status          PassengerStatus `json:"status" db:"status"`
	PickupLocation  string          `json:"pickup_location" db:"pickup_location"`
	DropoffLocation string          `json:"dropoff_location" db:"dropoff_location"`
	EndTime         *time.Time      `json:"end_time,omitempty" db:"end_time"`
}

// StartRideRequest is the body of the ride start call
type StartRideRequest struct {
	RideID string `json:"ride_id"`
}

// EndRideRequest is the body of the full ride end call
type EndRideRequest struct {
	RideID string `json:"ride_id"`
}

// StartRideResponse is returned when a ride is started
type StartRideResponse struct {
	LiveRideID    string             `json:"live_ride_id"`
	StartTime     time.Time          `json:"start_time"`
	FirstLocation Location           `json:"first_location"`
	Passengers    []TrackedPassenger `json:"passengers"`
}

// PassengerEndResponse is returned when a single passenger's ride ends
type PassengerEndResponse struct {
	PassengerID   string          `json:"passenger_id"`
	Status        PassengerStatus `json:"status"`
	EndTime       time.Time       `json:"end_time"`
	RideCompleted bool            `json:"ride_completed"`
}

// RideStatusResponse is the read-only view of a live ride
type RideStatusResponse struct {
	Status          TrackingStatus     `json:"status"`
	CurrentLocation *LocationEntry     `json:"current_location"`
	StartTime       time.Time          `json:"start_time"`
	EndTime         *time.Time         `json:"end_time,omitempty"`
	Passengers      []TrackedPassenger `json:"passengers"`
	RideDetails     *RideDetails       `json:"ride_details,omitempty"`
}

// RideDetails is the static portion of the ride shown in status reads
type RideDetails struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Distance    float64 `json:"distance"`
	Duration    int     `json:"duration"`
}
