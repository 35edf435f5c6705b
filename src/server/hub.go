package server

import (
	"encoding/json"
	"net/http"

	"fitness-spc/src/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// -----------------------------------------------------------------------------
// Hub Pattern Implementation
// -----------------------------------------------------------------------------

// handleWebsockets is the main Hub loop
func (s *APIServer) handleWebsockets() {
	for {
		select {
		case <-s.quit:
			for client := range s.clients {
				s.dropClient(client)
			}
			return

		case client := <-s.register:
			s.clients[client] = struct{}{}
			s.clientCount.Add(1)
			// Send initial state on connect
			s.stateMutex.RLock()
			snapshot := s.snapshotFor(client, "INITIAL")
			s.stateMutex.RUnlock()
			client.deliver(snapshot)

		case client := <-s.unregister:
			if _, ok := s.clients[client]; ok {
				s.dropClient(client)
			}

		case message := <-s.broadcast:
			s.mergeState(message)

			for client := range s.clients {
				filtered := client.filter(message)
				if len(filtered.Reports) == 0 {
					continue
				}
				if !client.deliver(filtered) {
					// Client too slow, disconnect to prevent Hub blocking
					s.dropClient(client)
				}
			}
		}
	}
}

// -----------------------------------------------------------------------------

func (s *APIServer) dropClient(client *Client) {
	delete(s.clients, client)
	s.clientCount.Add(-1)
	client.close()
}

// -----------------------------------------------------------------------------

// mergeState replaces the stored report of every metric in the update.
func (s *APIServer) mergeState(update *models.MLatestData) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	for metric, report := range update.Reports {
		s.latestState.Reports[metric] = report
	}
	s.latestState.Timestamp = update.Timestamp
}

// -----------------------------------------------------------------------------
// Data Exchange Interface Implementation
// -----------------------------------------------------------------------------

// Broadcast queues an update for the hub without blocking the caller.
func (s *APIServer) Broadcast(message *models.MLatestData) {
	select {
	case s.broadcast <- message:
	default:
		s.Logger.Warning("Broadcast queue full, dropping update with %d report(s)", len(message.Reports))
	}
}

// -----------------------------------------------------------------------------

// SetLatestState seeds the snapshot sent to new clients.
func (s *APIServer) SetLatestState(reports map[string]models.MMetricReport, timestamp int64) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	s.latestState.Reports = make(map[string]models.MMetricReport, len(reports))
	for metric, report := range reports {
		s.latestState.Reports[metric] = report
	}
	s.latestState.Timestamp = timestamp
}

// -----------------------------------------------------------------------------

// snapshotFor copies the state visible to a client. Callers hold stateMutex.
func (s *APIServer) snapshotFor(client *Client, kind string) *models.MLatestData {
	snapshot := client.filter(s.latestState)
	snapshot.Type = kind
	return snapshot
}

// -----------------------------------------------------------------------------
// WebSocket Handlers
// -----------------------------------------------------------------------------

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// -----------------------------------------------------------------------------

func (s *APIServer) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Logger.Info("Failed to upgrade websocket: %v", err)
		return
	}

	client := newClient(s, conn)
	s.Logger.Debug("Client %s connected from %s", client.id, c.ClientIP())

	select {
	case s.register <- client:
	case <-s.quit:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// -----------------------------------------------------------------------------
// Client Message Handling
// -----------------------------------------------------------------------------

// HandleClientMessage applies a subscribe command and answers with the
// matching part of the current state.
func (s *APIServer) HandleClientMessage(client *Client, message []byte) {
	var cmd models.MSubscribeCommand
	if err := json.Unmarshal(message, &cmd); err != nil {
		s.Logger.Info("Failed to parse client command: %v, disconnecting client", err)
		client.conn.Close()
		return
	}

	if cmd.Command != "subscribe" {
		return
	}

	client.subscribe(cmd.Metrics)

	s.stateMutex.RLock()
	response := s.snapshotFor(client, "INITIAL")
	s.stateMutex.RUnlock()

	if !client.deliver(response) {
		s.Logger.Warning("Client unavailable, subscribe response dropped")
	}
}
