package notify

import (
	"encoding/json"
	"log/slog"
	"sync"
)

const (
	broadcastBuffer = 32
	clientBuffer    = 16
)

// Hub fans events out to the connected feed clients. Publish never blocks the game flow:
// when the broadcast buffer or a client buffer is full the event is dropped for that reader.
type Hub struct {
	logger *slog.Logger
	encode Encoder

	mu        sync.Mutex
	clients   map[*Client]struct{}
	broadcast chan Event
}

type Client struct {
	send chan []byte
}

// Encoder turns an event into the bytes written to clients.
type Encoder func(event Event) ([]byte, error)

type Option func(hub *Hub)

// WithEncoder - replaces the default plain JSON encoding of events.
func WithEncoder(encode Encoder) Option {
	return func(hub *Hub) {
		hub.encode = encode
	}
}

func NewHub(logger *slog.Logger, opts ...Option) *Hub {
	hub := &Hub{
		logger:    logger.With("component", "notify"),
		clients:   make(map[*Client]struct{}),
		broadcast: make(chan Event, broadcastBuffer),
		encode:    func(event Event) ([]byte, error) { return json.Marshal(event) },
	}

	for _, opt := range opts {
		opt(hub)
	}

	return hub
}

func NewClient() *Client {
	return &Client{send: make(chan []byte, clientBuffer)}
}

// Publish - queues the event for every client.
func (that *Hub) Publish(event Event) {
	select {
	case that.broadcast <- event:
	default:
		that.logger.Warn("broadcast buffer is full, event dropped", "type", event.Kind, "game_id", event.GameID)
	}
}

// Run - delivers queued events until done is closed.
func (that *Hub) Run(done <-chan struct{}) {
	log := that.logger.With("method", "Run")

	for {
		select {
		case <-done:
			return
		case event := <-that.broadcast:
			data, err := that.encode(event)
			if err != nil {
				log.Error("failed to encode event", "error", err)
				continue
			}

			that.mu.Lock()
			for client := range that.clients {
				client.Push(data)
			}
			that.mu.Unlock()
		}
	}
}

func (that *Hub) Register(client *Client) {
	that.mu.Lock()
	that.clients[client] = struct{}{}
	that.mu.Unlock()
}

// Unregister - removes the client and closes its channel.
func (that *Hub) Unregister(client *Client) {
	that.mu.Lock()
	if _, ok := that.clients[client]; ok {
		delete(that.clients, client)
		close(client.send)
	}
	that.mu.Unlock()
}

func (that *Hub) ClientsCount() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.clients)
}

// Push - queues a raw message for this client only, dropping it when the client is too slow.
// Only the hub and the connection handler holding the client call Push, never after Unregister.
func (that *Client) Push(data []byte) {
	select {
	case that.send <- data:
	default:
	}
}

// Messages is closed when the client is unregistered.
func (that *Client) Messages() <-chan []byte {
	return that.send
}
