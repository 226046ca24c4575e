package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/VolentCry/Your-Daily-Helper-Bot/internal"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/mood"
)

type PostgresStore struct {
	pool   *pgxpool.Pool
	loc    *time.Location
	logger internal.Logger
}

func NewPostgresStore(dsn string, loc *time.Location, logger internal.Logger) (*PostgresStore, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("storage: failed to connect to postgres: %v", err)
		return nil, fmt.Errorf("storage: connecting to postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS moods (
		id BIGSERIAL PRIMARY KEY,
		timestamp TEXT NOT NULL,
		mood_id INTEGER NOT NULL
	)`); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage: creating moods table: %w", err)
	}
	return &PostgresStore{pool: pool, loc: loc, logger: logger}, nil
}

func (p *PostgresStore) Append(ctx context.Context, categoryID int) (int64, error) {
	if !mood.Valid(categoryID) {
		return 0, internal.ErrInvalidCategory
	}
	ts := time.Now().In(p.loc).Format(timeLayout)
	var id int64
	err := p.pool.QueryRow(ctx,
		`INSERT INTO moods (timestamp, mood_id) VALUES ($1, $2) RETURNING id`,
		ts, categoryID).Scan(&id)
	if err != nil {
		p.logger.Errorf("storage: failed to insert mood: %v", err)
		return 0, fmt.Errorf("storage: inserting mood: %w", err)
	}
	return id, nil
}

func (p *PostgresStore) AllEntries(ctx context.Context) ([]internal.MoodEntry, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, timestamp, mood_id FROM moods ORDER BY id`)
	if err != nil {
		p.logger.Errorf("storage: failed to query moods: %v", err)
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
		e.Timestamp, err = time.ParseInLocation(timeLayout, ts, p.loc)
		if err != nil {
			return nil, fmt.Errorf("storage: bad timestamp %q: %w", ts, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *PostgresStore) Close() error {
	p.pool.Close()
	return nil
}

var _ MoodRepository = (*PostgresStore)(nil)
