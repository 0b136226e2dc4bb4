package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists play history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the history database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

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
		`CREATE TABLE IF NOT EXISTS actions (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			run_id         TEXT NOT NULL,
			action         TEXT NOT NULL,
			detail         TEXT,
			cost           REAL,
			currency_after REAL,
			stars_after    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_actions_run ON actions(run_id)`,

		`CREATE TABLE IF NOT EXISTS prestiges (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			run_id          TEXT NOT NULL,
			next_run_id     TEXT NOT NULL,
			currency_before REAL,
			stars_earned    INTEGER,
			stars_after     INTEGER,
			lifetime_gold   REAL,
			prestige_cost   REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_prestiges_ts ON prestiges(timestamp)`,

		`CREATE TABLE IF NOT EXISTS snapshots (
			id                  INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp           INTEGER NOT NULL,
			run_id              TEXT NOT NULL,
			currency            REAL,
			income_rate         REAL,
			click_yield         REAL,
			upgrade_level       INTEGER,
			double_gps_level    INTEGER,
			click_upgrade_level INTEGER,
			prestige_stars      INTEGER,
			lifetime_gold       REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON snapshots(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAction(evt *ActionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO actions
		(timestamp, run_id, action, detail, cost, currency_after, stars_after)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.RunID, string(evt.Action), evt.Detail,
		evt.Cost, evt.CurrencyAfter, evt.StarsAfter,
	)
	return err
}

func (r *SQLiteRecorder) RecordPrestige(evt *PrestigeEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO prestiges
		(timestamp, run_id, next_run_id, currency_before, stars_earned, stars_after, lifetime_gold, prestige_cost)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.RunID, evt.NextRunID, evt.CurrencyBefore,
		evt.StarsEarned, evt.StarsAfter, evt.LifetimeGold, evt.PrestigeCost,
	)
	return err
}

func (r *SQLiteRecorder) RecordSnapshot(snap *StatsSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := snap.Snapshot
	_, err := r.db.Exec(`INSERT INTO snapshots
		(timestamp, run_id, currency, income_rate, click_yield,
		 upgrade_level, double_gps_level, click_upgrade_level,
		 prestige_stars, lifetime_gold)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.RunID, s.Currency, s.IncomeRate, s.EffectiveClickYield,
		s.UpgradeLevel, s.DoubleGPSLevel, s.ClickUpgradeLevel,
		s.PrestigeStars, s.LifetimeGold,
	)
	return err
}

// CountActions returns how many actions of the given type were recorded for a run.
func (r *SQLiteRecorder) CountActions(runID string, action string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM actions WHERE run_id = ? AND action = ?`, runID, action).Scan(&n)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return n, err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
