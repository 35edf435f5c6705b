package models

// -----------------------------------------------------------------------------
// Push message sent to websocket clients
// -----------------------------------------------------------------------------

type MLatestData struct {
	Type      string                   `json:"type"` // "INITIAL" or "UPDATE"
	Reports   map[string]MMetricReport `json:"reports"`
	Timestamp int64                    `json:"timestamp"`
}

// -----------------------------------------------------------------------------
// SubscribeCommand for client messages
// -----------------------------------------------------------------------------

type MSubscribeCommand struct {
	Command string   `json:"command"`
	Metrics []string `json:"metrics"`
}
