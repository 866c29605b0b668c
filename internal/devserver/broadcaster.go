package devserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	klog "k8s.io/klog/v2"

	"github.com/wasmlab/audiotag/common"
)

// Event types pushed over the /events stream.
const (
	// EventConnected is sent once when a browser subscribes.
	EventConnected = "connected"
	// EventReload tells the browser to reload the page, after a successful rebuild.
	EventReload = "reload"
	// EventBuildError carries the compiler output of a failed rebuild.
	EventBuildError = "build-error"
)

// ReloadEvent is what connected browsers receive, JSON-encoded, over the
// server-sent events stream.
type ReloadEvent struct {
	Type      string    `json:"type"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Broadcaster fans ReloadEvents out to the connected SSE clients. All client
// bookkeeping happens in the run goroutine started by Start; the exported
// methods only exchange channels with it.
type Broadcaster struct {
	clients   map[chan ReloadEvent]bool
	addClient chan chan ReloadEvent
	rmClient  chan chan ReloadEvent
	broadcast chan ReloadEvent
	stop      *common.Latch
}

// NewBroadcaster creates a Broadcaster. Call Start before subscribing.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		clients:   make(map[chan ReloadEvent]bool),
		addClient: make(chan chan ReloadEvent),
		rmClient:  make(chan chan ReloadEvent),
		broadcast: make(chan ReloadEvent, 10), // Buffer for events
		stop:      common.NewLatch(),
	}
}

// Start runs the client bookkeeping loop in a goroutine, until Stop.
func (b *Broadcaster) Start() {
	go func() {
		for {
			select {
			case client := <-b.addClient:
				b.clients[client] = true
				klog.V(1).Infof("SSE client connected (total: %d)", len(b.clients))

			case client := <-b.rmClient:
				if _, ok := b.clients[client]; ok {
					delete(b.clients, client)
					close(client)
				}
				klog.V(1).Infof("SSE client disconnected (total: %d)", len(b.clients))

			case event := <-b.broadcast:
				for client := range b.clients {
					select {
					case client <- event:
					default:
						// Client is slow/blocked, remove it.
						delete(b.clients, client)
						close(client)
					}
				}
				klog.V(1).Infof("broadcasted event %q to %d clients", event.Type, len(b.clients))

			case <-b.stop.WaitChan():
				for client := range b.clients {
					delete(b.clients, client)
					close(client)
				}
				return
			}
		}
	}()
}

// Stop shuts the run loop down and disconnects all clients. Idempotent.
func (b *Broadcaster) Stop() {
	b.stop.Trigger()
}

// Broadcast queues the event for delivery to all connected clients. Events
// are dropped (with a log line) when the queue is full or after Stop.
func (b *Broadcaster) Broadcast(event ReloadEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case b.broadcast <- event:
	case <-b.stop.WaitChan():
		klog.V(1).Infof("broadcaster stopped, dropping event %q", event.Type)
	default:
		klog.Warningf("event broadcast buffer full, dropping event %q", event.Type)
	}
}

// subscribe registers a new client channel with the run loop. Returns nil
// after Stop.
func (b *Broadcaster) subscribe() chan ReloadEvent {
	// Small buffer, so a client caught between two writes isn't dropped.
	client := make(chan ReloadEvent, 4)
	select {
	case b.addClient <- client:
		return client
	case <-b.stop.WaitChan():
		return nil
	}
}

func (b *Broadcaster) unsubscribe(client chan ReloadEvent) {
	select {
	case b.rmClient <- client:
	case <-b.stop.WaitChan():
	}
}

// ServeHTTP serves the server-sent events stream: one `data: <json>` block
// per ReloadEvent, starting with an EventConnected.
func (b *Broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	client := b.subscribe()
	if client == nil {
		http.Error(w, "server shutting down", http.StatusServiceUnavailable)
		return
	}

	writeEvent := func(event ReloadEvent) {
		eventData, err := json.Marshal(event)
		if err != nil {
			klog.Errorf("failed to marshal reload event: %v", err)
			return
		}
		_, _ = fmt.Fprintf(w, "data: %s\n\n", eventData)
		flusher.Flush()
	}
	writeEvent(ReloadEvent{Type: EventConnected, Timestamp: time.Now()})

	for {
		select {
		case event, ok := <-client:
			if !ok {
				// Stopped or dropped for being slow.
				return
			}
			writeEvent(event)
		case <-r.Context().Done():
			b.unsubscribe(client)
			return
		}
	}
}
