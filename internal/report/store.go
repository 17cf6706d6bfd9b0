package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/sro/foundation/core/error"
)

// Store defines the interface for report persistence
type Store interface {
	Save(ctx context.Context, r *Report) error
	Get(ctx context.Context, id string) (*Report, error)
	// List returns the newest reports first, without their records
	List(ctx context.Context, limit int) ([]*Report, error)
	Stats(ctx context.Context) (Stats, error)
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Close() error
}

// Stats aggregates the stored reports
type Stats struct {
	Reports         int64
	Records         int64
	Rejected        int64
	ReportsByEntity map[string]int64
	LastRun         time.Time
}

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// SQLiteConfig holds configuration for the SQLite store
type SQLiteConfig struct {
	Path string
}

// DefaultSQLiteConfig returns default configuration
func DefaultSQLiteConfig() SQLiteConfig {
	return SQLiteConfig{
		Path: "./data/reports.db",
	}
}

// NewSQLiteStore opens (and creates) the report database
func NewSQLiteStore(cfg SQLiteConfig) (*SQLiteStore, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, storeError(err, "failed to create directory", "report.NewSQLiteStore")
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, storeError(err, "failed to open database", "report.NewSQLiteStore")
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, storeError(err, "failed to initialize schema", "report.NewSQLiteStore")
	}

	return store, nil
}

// initSchema creates the necessary tables
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS reports (
		id TEXT PRIMARY KEY,
		started_at DATETIME NOT NULL,
		source TEXT NOT NULL,
		entity TEXT NOT NULL,
		duration_ns INTEGER NOT NULL,
		total INTEGER NOT NULL,
		valid INTEGER NOT NULL,
		rejected INTEGER NOT NULL,
		records TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_reports_started_at ON reports(started_at DESC);
	CREATE INDEX IF NOT EXISTS idx_reports_entity ON reports(entity);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Save stores a report, replacing one with the same ID
func (s *SQLiteStore) Save(ctx context.Context, r *Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := json.Marshal(r.Records)
	if err != nil {
		return storeError(err, "failed to encode records", "report.Save")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO reports (id, started_at, source, entity, duration_ns, total, valid, rejected, records)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.StartedAt.UTC(), r.Source, r.Entity, int64(r.Duration), r.Total, r.Valid, r.Rejected, string(records))
	if err != nil {
		return storeError(err, "failed to insert report", "report.Save")
	}

	return nil
}

// Get loads a report with its records
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, source, entity, duration_ns, total, valid, rejected, records
		FROM reports WHERE id = ?
	`, id)

	var r Report
	var duration int64
	var records sql.NullString
	err := row.Scan(&r.ID, &r.StartedAt, &r.Source, &r.Entity, &duration, &r.Total, &r.Valid, &r.Rejected, &records)
	if err == sql.ErrNoRows {
		return nil, mdwerror.Newf("report %s not found", id).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("report.Get").
			WithDetail("id", id)
	}
	if err != nil {
		return nil, storeError(err, "failed to load report", "report.Get")
	}
	r.Duration = time.Duration(duration)

	if records.Valid && records.String != "" {
		if err := json.Unmarshal([]byte(records.String), &r.Records); err != nil {
			return nil, storeError(err, "failed to decode records", "report.Get")
		}
	}

	return &r, nil
}

// List returns report summaries, newest first. A limit of zero or less
// returns every report.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]*Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, started_at, source, entity, duration_ns, total, valid, rejected FROM reports ORDER BY started_at DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError(err, "failed to query reports", "report.List")
	}
	defer rows.Close()

	var reports []*Report
	for rows.Next() {
		var r Report
		var duration int64
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.Source, &r.Entity, &duration, &r.Total, &r.Valid, &r.Rejected); err != nil {
			return nil, storeError(err, "failed to scan report", "report.List")
		}
		r.Duration = time.Duration(duration)
		reports = append(reports, &r)
	}

	return reports, rows.Err()
}

// Stats aggregates counts over all stored reports
func (s *SQLiteStore) Stats(ctx context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{ReportsByEntity: make(map[string]int64)}

	var records, rejected sql.NullInt64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*), SUM(total), SUM(rejected) FROM reports`).
		Scan(&stats.Reports, &records, &rejected)
	if err != nil {
		return stats, storeError(err, "failed to count reports", "report.Stats")
	}
	stats.Records = records.Int64
	stats.Rejected = rejected.Int64

	rows, err := s.db.QueryContext(ctx, `SELECT entity, COUNT(*) FROM reports GROUP BY entity`)
	if err != nil {
		return stats, storeError(err, "failed to group reports", "report.Stats")
	}
	defer rows.Close()
	for rows.Next() {
		var entity string
		var count int64
		if err := rows.Scan(&entity, &count); err != nil {
			return stats, storeError(err, "failed to scan entity count", "report.Stats")
		}
		stats.ReportsByEntity[entity] = count
	}

	// MAX() loses the column type, so read the newest row instead
	var last time.Time
	err = s.db.QueryRowContext(ctx, `SELECT started_at FROM reports ORDER BY started_at DESC LIMIT 1`).Scan(&last)
	if err == nil {
		stats.LastRun = last
	} else if err != sql.ErrNoRows {
		return stats, storeError(err, "failed to read last run", "report.Stats")
	}

	return stats, rows.Err()
}

// Vacuum reclaims space after pruning
func (s *SQLiteStore) Vacuum(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "VACUUM")
	return err
}

// Prune deletes reports started before now minus olderThan
func (s *SQLiteStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().UTC().Add(-olderThan)
	result, err := s.db.ExecContext(ctx, `DELETE FROM reports WHERE started_at < ?`, cutoff)
	if err != nil {
		return 0, storeError(err, "failed to prune reports", "report.Prune")
	}
	deleted, _ := result.RowsAffected()

	return deleted, nil
}

// Ping checks that the database answers
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func storeError(err error, message, operation string) error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeDatabaseError).
		WithOperation(operation)
}

// MemoryStore implements Store in memory, for tests and dry runs
type MemoryStore struct {
	reports map[string]*Report
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[string]*Report)}
}

// Save stores a copy of r
func (s *MemoryStore) Save(ctx context.Context, r *Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *r
	cp.Records = append([]RecordOutcome(nil), r.Records...)
	s.reports[r.ID] = &cp
	return nil
}

// Get returns a copy of the report with id
func (s *MemoryStore) Get(ctx context.Context, id string) (*Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reports[id]
	if !ok {
		return nil, mdwerror.Newf("report %s not found", id).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("report.Get").
			WithDetail("id", id)
	}
	cp := *r
	cp.Records = append([]RecordOutcome(nil), r.Records...)
	return &cp, nil
}

// List returns report summaries, newest first
func (s *MemoryStore) List(ctx context.Context, limit int) ([]*Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Report, 0, len(s.reports))
	for _, r := range s.reports {
		cp := *r
		cp.Records = nil
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Stats aggregates counts over all stored reports
func (s *MemoryStore) Stats(ctx context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{ReportsByEntity: make(map[string]int64)}
	for _, r := range s.reports {
		stats.Reports++
		stats.Records += int64(r.Total)
		stats.Rejected += int64(r.Rejected)
		stats.ReportsByEntity[r.Entity]++
		if r.StartedAt.After(stats.LastRun) {
			stats.LastRun = r.StartedAt
		}
	}
	return stats, nil
}

// Prune deletes reports started before now minus olderThan
func (s *MemoryStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	var deleted int64
	for id, r := range s.reports {
		if r.StartedAt.Before(cutoff) {
			delete(s.reports, id)
			deleted++
		}
	}
	return deleted, nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}
