package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder journals economy events to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
	now func() time.Time
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log zerolog.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection keeps ":memory:" databases alive and serialises writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log.With().Str("component", "recorder").Logger(), now: time.Now}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

// head returns at most n bytes of s.
func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS trust_events (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			category        TEXT NOT NULL,
			positive        INTEGER NOT NULL,
			score_change    INTEGER NOT NULL,
			resulting_score INTEGER NOT NULL,
			action          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trust_ts ON trust_events(timestamp)`,

		`CREATE TABLE IF NOT EXISTS settlements (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			invoice_id       TEXT NOT NULL,
			source           TEXT,
			amount           INTEGER NOT NULL,
			bones_awarded    INTEGER NOT NULL,
			streak_triggered INTEGER NOT NULL,
			lifetime_after   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_settlements_ts ON settlements(timestamp)`,

		`CREATE TABLE IF NOT EXISTS streak_events (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			event_type    TEXT NOT NULL,
			streak_length INTEGER,
			freezes       INTEGER,
			bonus         INTEGER,
			balance_after INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_streak_ts ON streak_events(timestamp)`,

		`CREATE TABLE IF NOT EXISTS redemptions (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			reward_id     TEXT NOT NULL,
			title         TEXT,
			cost          INTEGER NOT NULL,
			balance_after INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_redemptions_ts ON redemptions(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", head(s, 40), err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordTrust(evt *TrustEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO trust_events
		(timestamp, category, positive, score_change, resulting_score, action)
		VALUES (?,?,?,?,?,?)`,
		r.now().Unix(), evt.Category, evt.Positive, evt.Change, evt.ResultingScore, evt.Action,
	)
	return err
}

func (r *SQLiteRecorder) RecordSettlement(evt *SettlementEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO settlements
		(timestamp, invoice_id, source, amount, bones_awarded, streak_triggered, lifetime_after)
		VALUES (?,?,?,?,?,?,?)`,
		r.now().Unix(), evt.InvoiceID, evt.Source, evt.Amount,
		evt.BonesAwarded, evt.StreakTriggered, evt.LifetimeAfter,
	)
	return err
}

func (r *SQLiteRecorder) RecordStreak(evt *StreakEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO streak_events
		(timestamp, event_type, streak_length, freezes, bonus, balance_after)
		VALUES (?,?,?,?,?,?)`,
		r.now().Unix(), evt.EventType, evt.Current, evt.Freezes, evt.Bonus, evt.BalanceAfter,
	)
	return err
}

func (r *SQLiteRecorder) RecordRedemption(evt *RedemptionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO redemptions
		(timestamp, reward_id, title, cost, balance_after)
		VALUES (?,?,?,?,?)`,
		r.now().Unix(), evt.RewardID, evt.Title, evt.Cost, evt.BalanceAfter,
	)
	return err
}

// BonesAwarded sums cash-back over all journaled settlements.
func (r *SQLiteRecorder) BonesAwarded() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total int
	err := r.db.QueryRow(`SELECT COALESCE(SUM(bones_awarded), 0) FROM settlements`).Scan(&total)
	return total, err
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}
