package gateway

import (
	"context"
	"sync"
	"time"

	"github.com/tumpangan/liveride/internal/pkg/constants"
	"github.com/tumpangan/liveride/internal/pkg/logger"
	"github.com/tumpangan/liveride/internal/pkg/models"
	natspkg "github.com/tumpangan/liveride/internal/pkg/nats"
	"github.com/tumpangan/liveride/internal/pkg/retry"
	"github.com/tumpangan/liveride/internal/pkg/websocket"
)

const (
	defaultQueueSize  = 256
	publishTimeout    = 3 * time.Second
	publishMaxRetries = 2
	publishBaseDelay  = 50 * time.Millisecond
)

// fanoutEvent is one unit of post-commit dispatch work
type fanoutEvent struct {
	room      string
	user      string
	name      string
	subject   string
	payload   interface{}
	closeRoom bool
}

// FanoutGW pushes committed ride events to WebSocket rooms and NATS.
// Dispatch happens on a dedicated goroutine so database callers never block
// on slow consumers; a full queue drops the event with a warning.
type FanoutGW struct {
	hub     *websocket.Manager
	nats    *natspkg.Client
	logger  *logger.ZapLogger
	retrier *retry.Retrier
	events  chan fanoutEvent
	done    chan struct{}

	mu      sync.Mutex // guards stopped and the close of events
	stopped bool
}

// NewFanoutGW creates the fanout gateway
func NewFanoutGW(hub *websocket.Manager, natsClient *natspkg.Client, zapLogger *logger.ZapLogger) *FanoutGW {
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = publishMaxRetries
	retryCfg.BaseDelay = publishBaseDelay

	return &FanoutGW{
		hub:     hub,
		nats:    natsClient,
		logger:  zapLogger,
		retrier: retry.New(retryCfg, zapLogger),
		events:  make(chan fanoutEvent, defaultQueueSize),
		done:    make(chan struct{}),
	}
}

// Start launches the dispatch loop
func (g *FanoutGW) Start() {
	go g.run()
}

// Stop drains in-flight events and stops the dispatch loop. Events enqueued
// after Stop are dropped with a warning; WebSocket sessions may outlive the
// HTTP drain, so late publishes must never be fatal.
func (g *FanoutGW) Stop(ctx context.Context) error {
	g.mu.Lock()
	if !g.stopped {
		g.stopped = true
		close(g.events)
	}
	g.mu.Unlock()

	select {
	case <-g.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RideStarted fans out a ride start to the ride room
func (g *FanoutGW) RideStarted(ev models.RideStartedEvent) {
	g.enqueue(fanoutEvent{
		room:    constants.RoomRidePrefix + ev.RideID,
		name:    constants.EventRideStarted,
		subject: constants.SubjectRideStarted,
		payload: ev,
	})
}

// LocationUpdated fans out a location append to the ride room
func (g *FanoutGW) LocationUpdated(ev models.LocationUpdatedEvent) {
	g.enqueue(fanoutEvent{
		room:    constants.RoomRidePrefix + ev.RideID,
		name:    constants.EventLocationUpdated,
		subject: constants.SubjectRideLocation,
		payload: ev,
	})
}

// PassengerRideEnded notifies the affected passenger directly
func (g *FanoutGW) PassengerRideEnded(ev models.PassengerRideEndedEvent) {
	g.enqueue(fanoutEvent{
		user:    ev.PassengerID,
		name:    constants.EventPassengerRideEnd,
		subject: constants.SubjectRidePassengerCompleted,
		payload: ev,
	})
}

// RideEnded fans out ride completion to the ride room, then closes it
func (g *FanoutGW) RideEnded(ev models.RideEndedEvent) {
	g.enqueue(fanoutEvent{
		room:      constants.RoomRidePrefix + ev.RideID,
		name:      constants.EventRideEnded,
		subject:   constants.SubjectRideCompleted,
		payload:   ev,
		closeRoom: true,
	})
}

func (g *FanoutGW) enqueue(ev fanoutEvent) {
	g.mu.Lock()
	if g.stopped {
		g.mu.Unlock()
		g.logger.Warn("Fanout stopped, dropping event",
			logger.String("event", ev.name),
			logger.String("room", ev.room))
		return
	}

	select {
	case g.events <- ev:
		g.mu.Unlock()
	default:
		g.mu.Unlock()
		g.logger.Warn("Fanout queue full, dropping event",
			logger.String("event", ev.name),
			logger.String("room", ev.room))
	}
}

func (g *FanoutGW) run() {
	defer close(g.done)

	for ev := range g.events {
		g.dispatch(ev)
	}
}

func (g *FanoutGW) dispatch(ev fanoutEvent) {
	if ev.user != "" {
		g.hub.NotifyUser(ev.user, ev.name, ev.payload)
	}
	if ev.room != "" {
		g.hub.BroadcastToRoom(ev.room, ev.name, ev.payload)
	}

	if ev.subject != "" && g.nats != nil {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		err := g.retrier.Execute(ctx, func(context.Context) error {
			return g.nats.PublishJSON(ev.subject, ev.payload)
		})
		cancel()
		if err != nil {
			g.logger.Warn("Failed to publish event to NATS",
				logger.String("subject", ev.subject),
				logger.String("event", ev.name),
				logger.Err(err))
		}
	}

	if ev.closeRoom && ev.room != "" {
		g.hub.CloseRoom(ev.room)
	}
}
