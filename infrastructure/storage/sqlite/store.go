// ABOUTME: SQLite-based recency store for persistent recent-search records
// ABOUTME: Provides a file-based store that survives application restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"searchpage-api/core/domain"
)

// pruneKeep bounds how many rows survive a cleanup pass. Reads are capped
// well below this, so pruning never affects what callers can see.
const pruneKeep = 100

// Store implements the RecencyStore interface using SQLite
type Store struct {
	db       *sql.DB
	filePath string
}

// NewRecencyStore creates a new SQLite recency store
func NewRecencyStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "recent_searches.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{
		db:       db,
		filePath: filePath,
	}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	go store.cleanupRoutine()

	return store, nil
}

// initSchema creates the searches table if it doesn't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS recent_searches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			query TEXT NOT NULL,
			searched_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_searched_at ON recent_searches(searched_at);
	`

	_, err := s.db.Exec(query)
	return err
}

// Append records one submitted query. Records are append-only; duplicates
// are allowed and collapse at read time.
func (s *Store) Append(ctx context.Context, query string, ts time.Time) error {
	if query == "" {
		return errors.New("query cannot be empty")
	}

	insert := `
		INSERT INTO recent_searches (query, searched_at)
		VALUES (?, ?)
	`

	_, err := s.db.ExecContext(ctx, insert, query, ts.Unix())
	if err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}

	return nil
}

// List returns the most recent queries newest-first, bounded to limit.
// Exact-duplicate query strings are collapsed, keeping the newest.
func (s *Store) List(ctx context.Context, limit int) ([]domain.RecencyEntry, error) {
	if limit <= 0 {
		limit = domain.DefaultRecencyLimit
	}

	query := `
		SELECT query, MAX(searched_at) AS last_searched
		FROM recent_searches
		GROUP BY query
		ORDER BY last_searched DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent searches: %w", err)
	}
	defer rows.Close()

	var entries []domain.RecencyEntry
	for rows.Next() {
		var text string
		var unix int64
		if err := rows.Scan(&text, &unix); err != nil {
			return nil, fmt.Errorf("failed to scan recent search: %w", err)
		}
		entries = append(entries, domain.RecencyEntry{
			Query:     text,
			Timestamp: time.Unix(unix, 0),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recent searches: %w", err)
	}

	return entries, nil
}

// cleanupRoutine periodically prunes old rows
func (s *Store) cleanupRoutine() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		s.prune()
	}
}

// prune drops everything older than the newest pruneKeep rows
func (s *Store) prune() {
	query := `
		DELETE FROM recent_searches
		WHERE id NOT IN (
			SELECT id FROM recent_searches
			ORDER BY searched_at DESC, id DESC
			LIMIT ?
		)
	`
	_, _ = s.db.Exec(query, pruneKeep)
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
