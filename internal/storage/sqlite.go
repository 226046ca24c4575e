package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/VolentCry/Your-Daily-Helper-Bot/internal"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/mood"
)

// timeLayout matches the text timestamps in the moods table.
const timeLayout = "2006-01-02 15:04:05"

type SQLiteStore struct {
	db     *sql.DB
	loc    *time.Location
	logger internal.Logger
}

// NewSQLiteStore opens the ledger at path. Timestamps are stamped and read
// back in loc, so window math stays in the configured zone regardless of the
// host's system zone.
func NewSQLiteStore(path string, loc *time.Location, logger internal.Logger) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: creating %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: opening %s: %w", path, err)
	}
	// Single writer keeps id assignment monotonic and append order stable.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS moods (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		mood_id INTEGER NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: creating moods table: %w", err)
	}
	return &SQLiteStore{db: db, loc: loc, logger: logger}, nil
}

func (s *SQLiteStore) Append(ctx context.Context, categoryID int) (int64, error) {
	if !mood.Valid(categoryID) {
		return 0, internal.ErrInvalidCategory
	}
	ts := time.Now().In(s.loc).Format(timeLayout)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO moods (timestamp, mood_id) VALUES (?, ?)`, ts, categoryID)
	if err != nil {
		s.logger.Errorf("storage: failed to insert mood: %v", err)
		return 0, fmt.Errorf("storage: inserting mood: %w", err)
	}
	return res.LastInsertId()
}

func (s *SQLiteStore) AllEntries(ctx context.Context) ([]internal.MoodEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, timestamp, mood_id FROM moods ORDER BY id`)
	if err != nil {
		s.logger.Errorf("storage: failed to query moods: %v", err)
		return nil, fmt.Errorf("storage: querying moods: %w", err)
	}
	defer rows.Close()

	var entries []internal.MoodEntry
	for rows.Next() {
		var e internal.MoodEntry
		var ts string
		if err := rows.Scan(&e.ID, &ts, &e.Category); err != nil {
			return nil, fmt.Errorf("storage: scanning mood row: %w", err)
		}
		e.Timestamp, err = time.ParseInLocation(timeLayout, ts, s.loc)
		if err != nil {
			return nil, fmt.Errorf("storage: bad timestamp %q: %w", ts, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ MoodRepository = (*SQLiteStore)(nil)
