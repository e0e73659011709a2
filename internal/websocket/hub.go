package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"brandkit-admin-be/internal/dto"
	"brandkit-admin-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	StatusChannel          = "generation_status"
	MessageTypeStatus      = "generation_status"
	clientSendBufferLength = 256
)

// Hub fans generation status frames out to every connected operator. With a
// Redis client, frames are also relayed to hubs running in other instances.
type Hub struct {
	id uuid.UUID

	clients map[*Client]struct{}
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client
	done       chan struct{} // closed when Run returns
	stopOnce   sync.Once

	rdb    *redis.Client
	logger logger.ILogger
}

type frame struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type relayed struct {
	Origin  string          `json:"origin"`
	Message json.RawMessage `json:"message"`
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		id:         uuid.New(),
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client, clientSendBufferLength),
		done:       make(chan struct{}),
		rdb:        rdb,
		logger:     log,
	}
}

// Run owns client registration until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			h.stopOnce.Do(func() { close(h.done) })
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			count := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"client_id": client.ID, "clients": count})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"client_id": client.ID})
		}
	}
}

// join reports false when the hub has already stopped.
func (h *Hub) join(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// leave is a no-op after shutdown; closeAll has released every client.
func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastStatus pushes the latest state of an entity product to all operators.
func (h *Hub) BroadcastStatus(ep *dto.EntityProductResponse) {
	data, err := json.Marshal(frame{Type: MessageTypeStatus, Data: ep})
	if err != nil {
		h.logger.Error("Hub", "Failed to encode status frame", map[string]interface{}{"error": err.Error()})
		return
	}

	h.deliverLocal(data)

	if h.rdb != nil {
		payload, _ := json.Marshal(relayed{Origin: h.id.String(), Message: data})
		if err := h.rdb.Publish(context.Background(), StatusChannel, payload).Err(); err != nil {
			h.logger.Warn("Hub", "Failed to relay status frame", map[string]interface{}{"error": err.Error()})
		}
	}
}

// deliverLocal never blocks: a client whose buffer is full is dropped and
// will reconnect.
func (h *Hub) deliverLocal(data []byte) {
	var stale []*Client

	h.mu.RLock()
	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			stale = append(stale, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range stale {
		h.logger.Warn("Hub", "Client send buffer full, dropping client", map[string]interface{}{"client_id": client.ID})
		select {
		case h.unregister <- client:
		default:
			go h.leave(client)
		}
	}
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, StatusChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var payload relayed
			if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
				h.logger.Warn("Hub", "Dropping malformed relay payload", map[string]interface{}{"error": err.Error()})
				continue
			}
			if payload.Origin == h.id.String() {
				continue
			}
			h.deliverLocal(payload.Message)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		delete(h.clients, client)
		close(client.Send)
	}
}
