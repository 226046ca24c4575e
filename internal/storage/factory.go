package storage

import (
	"fmt"
	"time"

	"github.com/VolentCry/Your-Daily-Helper-Bot/internal"
)

// NewMoodRepository picks the backend by name: "sqlite" (default, local file)
// or "postgres".
func NewMoodRepository(backend, sqlitePath, postgresDSN string, loc *time.Location, logger internal.Logger) (MoodRepository, error) {
	switch backend {
	case "sqlite":
		return NewSQLiteStore(sqlitePath, loc, logger)
	case "postgres":
		return NewPostgresStore(postgresDSN, loc, logger)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
