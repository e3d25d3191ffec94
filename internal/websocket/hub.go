package websocket

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"sync"

	"invoicer/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins for dev simplicity
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client represents a single connected preview subscriber, bound to one
// draft session.
type Client struct {
	Hub     *Hub
	Conn    *websocket.Conn
	Send    chan []byte
	Session string
}

type draftEvent struct {
	session string
	payload []byte
}

// Hub fans recomputed draft state out to the subscribers of each session.
type Hub struct {
	sessions   map[string]map[*Client]bool
	events     chan draftEvent
	register   chan *Client
	unregister chan *Client
	mu         sync.Mutex
	log        *slog.Logger
}

// NewHub initializes a new WS Hub instance
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		sessions:   make(map[string]map[*Client]bool),
		events:     make(chan draftEvent, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        logger,
	}
}

// PublishDraft queues recomputed editor state for every subscriber of the
// session. Delivery is best effort: a full hub drops the event rather than
// blocking the editing path.
func (h *Hub) PublishDraft(sessionID string, payload []byte) {
	select {
	case h.events <- draftEvent{session: sessionID, payload: payload}:
	default:
		h.log.Warn("preview event dropped", slog.String("session", sessionID))
	}
}

// Run starts the core dispatch loop for WebSocket events
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.sessions[client.Session] == nil {
				h.sessions[client.Session] = make(map[*Client]bool)
			}
			h.sessions[client.Session][client] = true
			h.mu.Unlock()
			h.log.Debug("preview subscriber connected", slog.String("session", client.Session))
		case client := <-h.unregister:
			h.mu.Lock()
			if subs, ok := h.sessions[client.Session]; ok && subs[client] {
				delete(subs, client)
				close(client.Send)
				if len(subs) == 0 {
					delete(h.sessions, client.Session)
				}
				h.log.Debug("preview subscriber disconnected", slog.String("session", client.Session))
			}
			h.mu.Unlock()
		case event := <-h.events:
			h.mu.Lock()
			for client := range h.sessions[event.session] {
				select {
				case client.Send <- event.payload:
				default:
					close(client.Send)
					delete(h.sessions[event.session], client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// writePump handles writing messages from the Hub to the WebSocket connection
func (c *Client) writePump() {
	defer func() {
		_ = c.Conn.Close()
	}()
	for message := range c.Send {
		w, err := c.Conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		_, _ = w.Write(message)

		// Fast track writing queued messages
		n := len(c.Send)
		for i := 0; i < n; i++ {
			_, _ = w.Write([]byte{'\n'})
			_, _ = w.Write(<-c.Send)
		}

		if err := w.Close(); err != nil {
			return
		}
	}
	_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump pumps messages from the WebSocket connection to the hub
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		_ = c.Conn.Close()
	}()
	for {
		// Just reading to keep connection alive or handle client messages if necessary
		_, _, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.log.Debug("preview socket error", slog.String("error", err.Error()))
			}
			break
		}
	}
}

// ServeWs upgrades a preview subscription for one draft session. The token
// query param must match the locally held access token; verification of the
// token itself is the backend's job, this only gates the local socket.
func ServeWs(hub *Hub, c *gin.Context, tokens *token.Store) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	current := tokens.AccessToken()
	if current == "" || subtle.ConstantTimeCompare([]byte(tokenString), []byte(current)) != 1 {
		hub.log.Warn("preview socket rejected: token mismatch")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	session := c.Param("session")
	if session == "" {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		hub.log.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	client := &Client{Hub: hub, Conn: conn, Send: make(chan []byte, 256), Session: session}
	client.Hub.register <- client

	// Allow collection of memory referenced by the caller by doing all work in new goroutines
	go client.writePump()
	go client.readPump()
}
