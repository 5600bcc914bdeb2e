package constants

// WebSocket server events
const (
	EventError            = "error"
	EventRideStarted      = "ride_started"
	EventLocationUpdated  = "location_updated"
	EventPassengerRideEnd = "passenger_ride_ended"
	EventRideEnded        = "ride_ended"
	EventRideDetails      = "ride_details"
)

// WebSocket client events
const (
	EventJoinRide         = "join_ride"
	EventUpdateLocation   = "update_location"
	EventEndPassengerRide = "end_passenger_ride"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "INVALID_FORMAT"
	ErrorUnauthorized  = "UNAUTHORIZED"
	ErrorJoinFailed    = "JOIN_FAILED"
	ErrorInternal      = "INTERNAL_ERROR"
)

// Room name prefixes. Each ride has one room, each user has a private room
// for direct notifications.
const (
	RoomRidePrefix = "ride_"
	RoomUserPrefix = "user_"
)
