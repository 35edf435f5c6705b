package interfaces

import "fitness-spc/src/models"

// -----------------------------------------------------------------------------
// IDataExchanger pushes recomputed reports to external listeners.
// -----------------------------------------------------------------------------

type IDataExchanger interface {
	// -----------------------------------------------------------------------------
	// Broadcast queues reports for every connected listener.
	Broadcast(update *models.MLatestData)

	// -----------------------------------------------------------------------------
	// Start the server
	Start() error

	// -----------------------------------------------------------------------------
	// Stop the server gracefully
	Stop() error
}
