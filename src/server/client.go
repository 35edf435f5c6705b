package server

import (
	"sync"
	"time"

	"fitness-spc/src/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// -----------------------------------------------------------------------------
// Constants
// -----------------------------------------------------------------------------

const (
	writeWait      = 2 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

// -----------------------------------------------------------------------------
// Client Structure
// -----------------------------------------------------------------------------

type Client struct {
	id   string
	hub  *APIServer
	conn *websocket.Conn
	send chan *models.MLatestData

	// Empty means every metric
	mu      sync.Mutex
	metrics map[string]struct{}
	closed  bool
}

// -----------------------------------------------------------------------------

func newClient(hub *APIServer, conn *websocket.Conn) *Client {
	return &Client{
		id:   uuid.NewString(),
		hub:  hub,
		conn: conn,
		// Buffered channel to prevent blocking the Hub loop
		send:    make(chan *models.MLatestData, 256),
		metrics: make(map[string]struct{}),
	}
}

// -----------------------------------------------------------------------------

func (c *Client) subscribe(metrics []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.metrics = make(map[string]struct{}, len(metrics))
	for _, m := range metrics {
		c.metrics[m] = struct{}{}
	}
}

// -----------------------------------------------------------------------------

// filter returns a copy of data holding only the subscribed reports.
func (c *Client) filter(data *models.MLatestData) *models.MLatestData {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := &models.MLatestData{
		Type:      data.Type,
		Reports:   make(map[string]models.MMetricReport),
		Timestamp: data.Timestamp,
	}
	for metric, report := range data.Reports {
		if containsMetric(c.metrics, metric) {
			out.Reports[metric] = report
		}
	}
	return out
}

// -----------------------------------------------------------------------------

// deliver queues a message without blocking; false means the client is gone
// or too slow.
func (c *Client) deliver(message *models.MLatestData) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	select {
	case c.send <- message:
		return true
	default:
		return false
	}
}

// -----------------------------------------------------------------------------

func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// -----------------------------------------------------------------------------
// readPump - handles incoming messages from client
// Act as a Watchdog for the connection
// -----------------------------------------------------------------------------

func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.quit:
		}
		c.conn.Close()
		c.hub.Logger.Debug("Client %s disconnected", c.id)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.Logger.Info("WebSocket error for client %s: %v", c.id, err)
			}
			break
		}
		c.hub.HandleClientMessage(c, message)
	}
}

// -----------------------------------------------------------------------------
// writePump - sends messages to client
// -----------------------------------------------------------------------------

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				c.hub.Logger.Info("Write error for client %s: %v", c.id, err)
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
