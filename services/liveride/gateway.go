package liveride

import (
	"github.com/tumpangan/liveride/internal/pkg/models"
)

// FanoutGW dispatches committed ride events to connected clients and the
// message bus. All methods are fire-and-forget: they enqueue and return,
// and delivery failures never surface to the caller.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/tumpangan/liveride/services/liveride FanoutGW
type FanoutGW interface {
	RideStarted(ev models.RideStartedEvent)
	LocationUpdated(ev models.LocationUpdatedEvent)
	PassengerRideEnded(ev models.PassengerRideEndedEvent)
	RideEnded(ev models.RideEndedEvent)
}
