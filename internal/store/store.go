// Package store persists classified error occurrences in SQLite so agents
// can be audited after the fact: which errors fired, how often, and for whom.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/invincible-jha/aumai-error-taxonomy/pkg/taxonomy"
)

const storedTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Occurrence is a record of a single error produced by an agent.
type Occurrence struct {
	ID         string
	ErrorCode  int
	Timestamp  time.Time
	AgentID    string
	Context    string
	StackTrace string
}

// Store persists occurrences in a SQLite database.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens (and initialises) the occurrence store at path. Use ":memory:"
// for an ephemeral in-memory database, suitable for tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS error_occurrences (
		id TEXT PRIMARY KEY,
		error_code INTEGER NOT NULL,
		timestamp TEXT NOT NULL,
		agent_id TEXT NOT NULL DEFAULT '',
		context TEXT NOT NULL DEFAULT '',
		stack_trace TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_occurrences_agent_id ON error_occurrences(agent_id);
	CREATE INDEX IF NOT EXISTS idx_occurrences_error_code ON error_occurrences(error_code);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record persists a new occurrence and returns its generated ID.
func (s *Store) Record(ctx context.Context, occ Occurrence) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if occ.ID == "" {
		occ.ID = uuid.NewString()
	}
	if occ.Timestamp.IsZero() {
		occ.Timestamp = time.Now().UTC()
	}

	// Fixed-width fraction keeps lexical ORDER BY equal to chronological order.
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO error_occurrences (id, error_code, timestamp, agent_id, context, stack_trace) VALUES (?, ?, ?, ?, ?, ?)",
		occ.ID, occ.ErrorCode, occ.Timestamp.UTC().Format(storedTimeLayout), occ.AgentID, occ.Context, occ.StackTrace,
	)
	if err != nil {
		return "", fmt.Errorf("insert occurrence: %w", err)
	}
	return occ.ID, nil
}

// RecordError is a convenience wrapper persisting an occurrence of def.
func (s *Store) RecordError(ctx context.Context, def taxonomy.AgentError, agentID, contextMsg string) (string, error) {
	return s.Record(ctx, Occurrence{
		ErrorCode: def.Code,
		AgentID:   agentID,
		Context:   contextMsg,
	})
}

// Get fetches a single occurrence by ID; found is false when absent.
func (s *Store) Get(ctx context.Context, id string) (Occurrence, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT id, error_code, timestamp, agent_id, context, stack_trace FROM error_occurrences WHERE id = ?", id)
	occ, err := scanOccurrence(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Occurrence{}, false, nil
	}
	if err != nil {
		return Occurrence{}, false, fmt.Errorf("query occurrence: %w", err)
	}
	return occ, true, nil
}

// Delete removes an occurrence by ID, reporting whether it existed.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM error_occurrences WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete occurrence: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ByAgent returns all occurrences produced by agentID, oldest first.
func (s *Store) ByAgent(ctx context.Context, agentID string) ([]Occurrence, error) {
	return s.query(ctx,
		"SELECT id, error_code, timestamp, agent_id, context, stack_trace FROM error_occurrences WHERE agent_id = ? ORDER BY timestamp",
		agentID)
}

// ByCode returns all occurrences of a specific error code, oldest first.
func (s *Store) ByCode(ctx context.Context, code int) ([]Occurrence, error) {
	return s.query(ctx,
		"SELECT id, error_code, timestamp, agent_id, context, stack_trace FROM error_occurrences WHERE error_code = ? ORDER BY timestamp",
		code)
}

// ByCategory returns all occurrences whose code belongs to category in the
// built-in catalog.
func (s *Store) ByCategory(ctx context.Context, category taxonomy.Category) ([]Occurrence, error) {
	defs := taxonomy.ErrorsByCategory(category)
	if len(defs) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(defs))
	args := make([]any, len(defs))
	for i, def := range defs {
		placeholders[i] = "?"
		args[i] = def.Code
	}
	q := fmt.Sprintf(
		"SELECT id, error_code, timestamp, agent_id, context, stack_trace FROM error_occurrences WHERE error_code IN (%s) ORDER BY timestamp",
		strings.Join(placeholders, ", "))
	return s.query(ctx, q, args...)
}

// Recent returns the limit most recently recorded occurrences, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Occurrence, error) {
	return s.query(ctx,
		"SELECT id, error_code, timestamp, agent_id, context, stack_trace FROM error_occurrences ORDER BY timestamp DESC LIMIT ?",
		limit)
}

// List returns paginated occurrences with no ordering guarantee.
func (s *Store) List(ctx context.Context, limit, offset int) ([]Occurrence, error) {
	return s.query(ctx,
		"SELECT id, error_code, timestamp, agent_id, context, stack_trace FROM error_occurrences LIMIT ? OFFSET ?",
		limit, offset)
}

// Frequency returns a mapping of error code to occurrence count.
func (s *Store) Frequency(ctx context.Context) (map[int]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT error_code, COUNT(*) FROM error_occurrences GROUP BY error_code")
	if err != nil {
		return nil, fmt.Errorf("query frequency: %w", err)
	}
	defer rows.Close()

	freq := make(map[int]int)
	for rows.Next() {
		var code, count int
		if err := rows.Scan(&code, &count); err != nil {
			return nil, err
		}
		freq[code] = count
	}
	return freq, rows.Err()
}

// Count returns the total number of stored occurrences.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM error_occurrences").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count occurrences: %w", err)
	}
	return n, nil
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]Occurrence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query occurrences: %w", err)
	}
	defer rows.Close()

	var out []Occurrence
	for rows.Next() {
		occ, err := scanOccurrence(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, occ)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOccurrence(row rowScanner) (Occurrence, error) {
	var occ Occurrence
	var ts string
	if err := row.Scan(&occ.ID, &occ.ErrorCode, &ts, &occ.AgentID, &occ.Context, &occ.StackTrace); err != nil {
		return Occurrence{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return Occurrence{}, fmt.Errorf("parse occurrence timestamp %q: %w", ts, err)
	}
	occ.Timestamp = parsed
	return occ, nil
}
