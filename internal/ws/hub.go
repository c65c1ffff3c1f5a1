package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog"
)

// Event is a stock-change notification pushed to connected dashboards.
type Event struct {
	Type   string                 `json:"type"`
	Action string                 `json:"action"`
	Data   map[string]interface{} `json:"data"`
}

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	log        zerolog.Logger
	mutex      sync.Mutex
}

// broadcastBuffer bounds how many pending events the hub holds before it
// starts dropping.
const broadcastBuffer = 64

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, broadcastBuffer),
		log:        log,
	}
}

// BroadcastEvent serializes an event and queues it for fan-out. The send
// never blocks the caller's request: events are delivered in order while the
// buffer has room, and dropped with a warning once it fills.
func (h *Hub) BroadcastEvent(event Event) {
	msg, err := json.Marshal(event)
	if err != nil {
		h.log.Warn().Err(err).Msg("gagal serialisasi event ws")
		return
	}
	select {
	case h.Broadcast <- msg:
	default:
		h.log.Warn().Str("type", event.Type).Msg("buffer broadcast penuh, event dibuang")
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			h.log.Debug().Msg("klien ws terhubung")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
