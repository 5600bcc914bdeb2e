package models

import "time"

// RideStartedEvent is published to the ride room after a ride start commits
type RideStartedEvent struct {
	RideID         string    `json:"ride_id"`
	StartTime      time.Time `json:"start_time"`
	DriverID       string    `json:"driver_id"`
	PassengerCount int       `json:"passenger_count"`
	FirstLocation  Location  `json:"first_location"`
}

// LocationUpdatedEvent is published to the ride room on each location append
type LocationUpdatedEvent struct {
	RideID   string   `json:"ride_id"`
	Location Location `json:"location"`
	Geohash  string   `json:"geohash,omitempty"`
	Sequence int64    `json:"sequence"`
}

// PassengerRideEndedEvent is sent to a passenger's own room when their leg ends
type PassengerRideEndedEvent struct {
	RideID      string    `json:"ride_id"`
	PassengerID string    `json:"passenger_id"`
	EndTime     time.Time `json:"end_time"`
}

// RideEndedEvent is published to the ride room when the whole ride completes
type RideEndedEvent struct {
	RideID  string    `json:"ride_id"`
	EndTime time.Time `json:"end_time"`
}

// RideDetailsEvent is sent to a passenger right after joining a ride room
type RideDetailsEvent struct {
	RideID          string         `json:"ride_id"`
	Origin          string         `json:"origin"`
	Destination     string         `json:"destination"`
	CurrentLocation *LocationEntry `json:"current_location"`
}
