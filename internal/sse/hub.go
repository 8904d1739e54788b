// Package sse streams applied statistic updates to HTTP clients as
// server-sent events.
package sse

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ArmaRealms/ToolStats/internal/domain"
	"github.com/ArmaRealms/ToolStats/internal/metrics"
)

// Event is one message on the stream
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// Client is a connected stream consumer
type Client struct {
	ID     string
	Events chan Event
	// nil receives every statistic
	stats map[domain.StatKind]bool
}

func (c *Client) wants(stat domain.StatKind) bool {
	return c.stats == nil || c.stats[stat]
}

// Hub fans statistic updates out to connected clients. A client that falls
// behind misses updates rather than slowing the tick that produced them.
type Hub struct {
	mu        sync.RWMutex
	clients   map[string]*Client
	closed    bool
	broadcast chan Event
	shutdown  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// NewHub creates a hub; updates are delivered once Start is called
func NewHub() *Hub {
	return &Hub{
		clients:   make(map[string]*Client),
		broadcast: make(chan Event, BroadcastBufferSize),
		shutdown:  make(chan struct{}),
	}
}

// Start starts the broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the broadcast loop and closes every client channel. Safe to call
// more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		h.closed = true
		for id, client := range h.clients {
			close(client.Events)
			delete(h.clients, id)
		}
		h.mu.Unlock()
		metrics.StreamClients.Set(0)
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case evt := <-h.broadcast:
			h.deliver(evt)
		case <-h.shutdown:
			return
		}
	}
}

func (h *Hub) deliver(evt Event) {
	update, _ := evt.Payload.(domain.StatUpdate)

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		if !client.wants(update.Stat) {
			continue
		}
		select {
		case client.Events <- evt:
		default:
			metrics.StreamDropped.Inc()
		}
	}
}

// Register adds a client interested in the given statistics, or in every
// statistic when none are named. On a stopped hub the client's channel is
// returned already closed.
func (h *Hub) Register(stats []domain.StatKind) *Client {
	client := &Client{
		ID:     uuid.NewString(),
		Events: make(chan Event, ClientEventBuffer),
	}
	if len(stats) > 0 {
		client.stats = make(map[domain.StatKind]bool, len(stats))
		for _, s := range stats {
			client.stats[s] = true
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(client.Events)
		return client
	}
	h.clients[client.ID] = client
	metrics.StreamClients.Set(float64(len(h.clients)))
	return client
}

// Unregister removes a client and closes its channel
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[id]; ok {
		close(client.Events)
		delete(h.clients, id)
		metrics.StreamClients.Set(float64(len(h.clients)))
	}
}

// Broadcast queues an update for every interested client. Updates are dropped
// when the hub is saturated.
func (h *Hub) Broadcast(update domain.StatUpdate) {
	evt := Event{
		ID:        uuid.NewString(),
		Type:      EventTypeStatUpdated,
		Timestamp: time.Now().Unix(),
		Payload:   update,
	}

	select {
	case h.broadcast <- evt:
	default:
		metrics.StreamDropped.Inc()
	}
}

// ClientCount returns the number of registered clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatMessage renders an event in the text/event-stream wire format
func FormatMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}
	return fmt.Appendf(nil, "id: %s\nevent: %s\ndata: %s\n\n", evt.ID, evt.Type, data), nil
}
