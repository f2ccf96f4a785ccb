// Package storage provides SQLite-based persistence for campaign scores
// and per-level runs. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is the coin total of one finished campaign.
type ScoreEntry struct {
	ID        int64
	PackID    string
	Score     int
	CreatedAt time.Time
}

// Run is one attempt at a single level.
type Run struct {
	ID         string // UUID, assigned by SaveRun when empty
	PackID     string
	LevelIndex int
	LevelName  string
	Status     string // "won" or "lost"
	Coins      int
	Ticks      int
	Duration   time.Duration
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pack_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(pack_id, score DESC);

		CREATE TABLE IF NOT EXISTS runs (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			pack_id TEXT NOT NULL,
			level_index INTEGER NOT NULL,
			level_name TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_pack ON runs(pack_id, level_index);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished campaign for the given pack.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(packID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (pack_id, score) VALUES (?, ?)",
		packID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given pack.
// Results are ordered by score descending.
func (s *Store) TopScores(packID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, pack_id, score, created_at
		 FROM scores
		 WHERE pack_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		packID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.PackID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given pack.
// Returns 0 if no scores exist.
func (s *Store) HighScore(packID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE pack_id = ?",
		packID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores and runs for the given pack.
func (s *Store) ClearScores(packID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE pack_id = ?", packID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs WHERE pack_id = ?", packID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// SaveRun records a level attempt and returns its ID.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, pack_id, level_index, level_name, status, coins, ticks, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.PackID,
		r.LevelIndex,
		r.LevelName,
		r.Status,
		r.Coins,
		r.Ticks,
		r.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return r.ID, nil
}

// RecordRun adapts SaveRun to platformer.RunRecorder.
func (s *Store) RecordRun(rec platformer.RunRecord) error {
	_, err := s.SaveRun(Run{
		PackID:     rec.PackID,
		LevelIndex: rec.LevelIndex,
		LevelName:  rec.LevelName,
		Status:     rec.Status.String(),
		Coins:      rec.Coins,
		Ticks:      rec.Ticks,
		Duration:   rec.Duration,
	})
	return err
}

var _ platformer.RunRecorder = (*Store)(nil)

// RunByID retrieves a run by its ID.
func (s *Store) RunByID(id string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, pack_id, level_index, level_name, status, coins, ticks, duration_ms, created_at
		 FROM runs WHERE id = ?`,
		id,
	)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// BestRuns returns the fastest winning run of each level in a pack,
// ordered by level index.
func (s *Store) BestRuns(packID string) ([]Run, error) {
	return s.queryRuns(
		`SELECT id, pack_id, level_index, level_name, status, coins, ticks, duration_ms, created_at
		 FROM runs r
		 WHERE pack_id = ? AND status = 'won'
		   AND seq = (
			SELECT seq FROM runs b
			WHERE b.pack_id = r.pack_id AND b.level_index = r.level_index AND b.status = 'won'
			ORDER BY b.ticks ASC, b.seq ASC
			LIMIT 1
		   )
		 ORDER BY level_index ASC`,
		packID,
	)
}

// RecentRuns returns the most recent runs across all packs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, pack_id, level_index, level_name, status, coins, ticks, duration_ms, created_at
		 FROM runs
		 ORDER BY seq DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var durationMs int64
	var createdAt any
	err := sc.Scan(&r.ID, &r.PackID, &r.LevelIndex, &r.LevelName, &r.Status,
		&r.Coins, &r.Ticks, &durationMs, &createdAt)
	if err != nil {
		return Run{}, err
	}
	r.Duration = time.Duration(durationMs) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// PackStats contains aggregated statistics for a pack.
type PackStats struct {
	PackID     string
	Runs       int
	Wins       int
	Deaths     int
	Coins      int64
	HighScore  int
	LastPlayed time.Time
}

// GetPackStats retrieves aggregated statistics for a specific pack.
func (s *Store) GetPackStats(packID string) (*PackStats, error) {
	stats := &PackStats{PackID: packID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(status = 'won'), 0),
		        COALESCE(SUM(status = 'lost'), 0),
		        COALESCE(SUM(coins), 0),
		        MAX(created_at)
		 FROM runs WHERE pack_id = ?`,
		packID,
	).Scan(&stats.Runs, &stats.Wins, &stats.Deaths, &stats.Coins, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pack stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	if stats.HighScore, err = s.HighScore(packID); err != nil {
		return nil, err
	}

	return stats, nil
}

// PackIDs returns every pack that has recorded runs or scores.
func (s *Store) PackIDs() ([]string, error) {
	rows, err := s.db.Query(
		`SELECT pack_id FROM runs
		 UNION
		 SELECT pack_id FROM scores
		 ORDER BY pack_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list packs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan pack id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// parseTime converts a DATETIME column, which the driver may return as
// time.Time or as text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
