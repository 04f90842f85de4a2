package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"ChanStruct/internal/model"
)

// SQLiteRecorder persists analysis runs and their zones to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the watcher writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_runs (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			symbol       TEXT,
			strategy     TEXT,
			merge_rule   TEXT,
			bar_count    INTEGER,
			merged_count INTEGER,
			point_count  INTEGER,
			stroke_count INTEGER,
			zone_count   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON analysis_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS zones (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id       INTEGER NOT NULL,
			upper_bound  REAL,
			lower_bound  REAL,
			height_pct   REAL,
			first_stroke INTEGER,
			stroke_count INTEGER,
			FOREIGN KEY (run_id) REFERENCES analysis_runs(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_zones_run ON zones(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun inserts one run row and one row per zone.
func (r *SQLiteRecorder) RecordRun(run *AnalysisRun, zones []model.ConsolidationZone) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.Exec(`INSERT INTO analysis_runs
		(timestamp, symbol, strategy, merge_rule,
		 bar_count, merged_count, point_count, stroke_count, zone_count)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), run.Symbol, run.Strategy, run.MergeRule,
		run.BarCount, run.MergedCount, run.PointCount, run.StrokeCount, run.ZoneCount,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	for _, z := range zones {
		if _, err := r.db.Exec(`INSERT INTO zones
			(run_id, upper_bound, lower_bound, height_pct, first_stroke, stroke_count)
			VALUES (?,?,?,?,?,?)`,
			runID, z.Upper, z.Lower, z.HeightPct, z.FirstStroke, z.StrokeCount,
		); err != nil {
			return fmt.Errorf("insert zone: %w", err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
