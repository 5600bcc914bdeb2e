package constants

// NATS subjects for downstream consumers
const (
	SubjectRideStarted            = "ride.started"
	SubjectRideLocation           = "ride.location"
	SubjectRidePassengerCompleted = "ride.passenger_completed"
	SubjectRideCompleted          = "ride.completed"
)
