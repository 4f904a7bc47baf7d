package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"mtgsim/internal/logger"
	"mtgsim/internal/session"
	"mtgsim/internal/state"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client represents one websocket connection relaying session traffic.
type Client struct {
	ID   string
	conn *websocket.Conn
	send chan []byte
	hub  *Hub
}

func newClient(conn *websocket.Conn, hub *Hub) *Client {
	return &Client{ID: uniqueClientID(), conn: conn, send: make(chan []byte, 64), hub: hub}
}

func uniqueClientID() string {
	return time.Now().Format("20060102150405.000000000")
}

// ServeWS upgrades an HTTP request to a websocket connection and starts its
// read/write pumps.
func ServeWS(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Get().Error("websocket upgrade failed", zap.Error(err))
		return
	}
	c := newClient(conn, hub)
	hub.register <- c
	go c.writePump()
	go c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.sendError("invalid message format")
			continue
		}
		c.handle(msg)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handle(msg Message) {
	s, ok := c.hub.manager.Get(msg.SessionID)
	if !ok {
		c.sendError("session not found")
		return
	}
	switch msg.Type {
	case MessageTypeStep:
		c.sendState(s.Step(msg.ActionIndex))
	case MessageTypeReset:
		c.sendState(s.Reset(msg.Seed))
	case MessageTypeGetState:
		c.sendState(s.State())
	default:
		c.sendError("unknown message type")
	}
}

func (c *Client) sendState(r session.StepResult) {
	c.send <- mustMarshal(Message{Type: MessageTypeStateSync, Payload: stateSyncPayload(r)})
}

func (c *Client) sendError(msg string) {
	c.send <- mustMarshal(Message{Type: MessageTypeError, Payload: ErrorPayload{Message: msg}})
}

func mustMarshal(m Message) []byte {
	data, err := json.Marshal(m)
	if err != nil {
		return []byte(`{"type":"error","payload":{"message":"internal marshal error"}}`)
	}
	return data
}

// statePayload is the ws-relay's view of a StepResult, kept separate from
// the HTTP gateway's DTO so the two transports can evolve independently.
type statePayload struct {
	Observation  [25]float64     `json:"observation"`
	Reward       float64         `json:"reward"`
	Done         bool            `json:"done"`
	Truncated    bool            `json:"truncated"`
	StepCount    int             `json:"stepCount"`
	Turn         int             `json:"turn"`
	Phase        state.Phase     `json:"phase"`
	Winner       *state.PlayerID `json:"winner,omitempty"`
	Error        string          `json:"error,omitempty"`
}

func stateSyncPayload(r session.StepResult) statePayload {
	return statePayload{
		Observation: r.Observation,
		Reward:      r.Reward,
		Done:        r.Done,
		Truncated:   r.Truncated,
		StepCount:   r.StepCount,
		Turn:        r.Turn,
		Phase:       r.Phase,
		Winner:      r.Winner,
		Error:       r.Err,
	}
}
