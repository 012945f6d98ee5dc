package host

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	gametypes "gamecore/pkg/game/types"
	"gamecore/pkg/log"
	"nhooyr.io/websocket"
)

const eventWriteTimeout = 5 * time.Second

// StateChangedEvent is pushed to subscribers after every committed
// state change, mirroring the event channel front ends listen on.
type StateChangedEvent struct {
	Event string              `json:"event"`
	State gametypes.GameState `json:"state"`
}

// EventBroker fans state change events out to websocket subscribers.
type EventBroker struct {
	lock        sync.RWMutex
	subscribers map[*websocket.Conn]struct{}
}

func NewEventBroker() *EventBroker {
	return &EventBroker{
		subscribers: make(map[*websocket.Conn]struct{}),
	}
}

// HandleSubscribe upgrades the request to a websocket and streams
// events until the client disconnects. Clients are not expected to
// send messages; reads only detect disconnects.
func (b *EventBroker) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Error("Failed to accept websocket connection: %v", err)
		return
	}
	log.Debug("New event subscriber from %s", r.RemoteAddr)

	b.add(conn)
	defer b.remove(conn)

	ctx := r.Context()
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			conn.Close(websocket.StatusNormalClosure, "")
			return
		}
	}
}

// Publish sends a state changed event to all subscribers. Slow or dead
// subscribers are skipped after a write timeout and cleaned up by their
// own read loop.
func (b *EventBroker) Publish(gameState gametypes.GameState) {
	payload, err := json.Marshal(StateChangedEvent{
		Event: "state_changed",
		State: gameState,
	})
	if err != nil {
		log.Error("Failed to encode state changed event: %v", err)
		return
	}

	b.lock.RLock()
	defer b.lock.RUnlock()
	for conn := range b.subscribers {
		ctx, cancel := context.WithTimeout(context.Background(), eventWriteTimeout)
		if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
			log.Debug("Failed to write event to subscriber: %v", err)
		}
		cancel()
	}
}

// CloseAll disconnects all subscribers.
func (b *EventBroker) CloseAll() {
	b.lock.Lock()
	defer b.lock.Unlock()
	for conn := range b.subscribers {
		conn.Close(websocket.StatusGoingAway, "host shutting down")
	}
	b.subscribers = make(map[*websocket.Conn]struct{})
}

// Subscribers returns the number of connected subscribers.
func (b *EventBroker) Subscribers() int {
	b.lock.RLock()
	defer b.lock.RUnlock()
	return len(b.subscribers)
}

func (b *EventBroker) add(conn *websocket.Conn) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.subscribers[conn] = struct{}{}
}

func (b *EventBroker) remove(conn *websocket.Conn) {
	b.lock.Lock()
	defer b.lock.Unlock()
	delete(b.subscribers, conn)
}
