package storage

import (
	"context"

	"github.com/VolentCry/Your-Daily-Helper-Bot/internal"
)

// MoodRepository is the append-only mood ledger. There is deliberately no
// update or delete: mood history is a ledger, not a mutable record.
type MoodRepository interface {
	// Append validates the category, stamps the current local time and
	// returns the assigned monotonic id.
	Append(ctx context.Context, categoryID int) (int64, error)
	// AllEntries returns every stored entry with no caching; it reflects
	// all prior successful appends.
	AllEntries(ctx context.Context) ([]internal.MoodEntry, error)
	Ping(ctx context.Context) error
	Close() error
}
