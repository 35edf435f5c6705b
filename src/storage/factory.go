package storage

import (
	"fmt"

	"fitness-spc/src/interfaces"
	"fitness-spc/src/logger"
	"fitness-spc/src/models"
)

// -----------------------------------------------------------------------------

// New returns the backend named by cfg.Storage.DBType, not yet initialized.
func New(cfg *models.MConfig, log *logger.Logger) (interfaces.IDatabase, error) {
	switch cfg.Storage.DBType {
	case "postgres":
		db, err := NewPostgresDB(cfg, log)
		if err != nil {
			return nil, err
		}
		return db, nil
	case "sqlite", "":
		db, err := NewSQLiteDB(cfg, log)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database type: %q", cfg.Storage.DBType)
	}
}
