// Package store persists analysis results to a local SQLite database.
//
// This is a convenience layer for the CLI: the engine itself recomputes
// everything on demand and offers no persistence guarantees.
package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/coachos/pitchpilot/internal/domain/analysis"
	"github.com/coachos/pitchpilot/internal/domain/event"
)

//go:embed schema.sql
var schemaSQL string

// DB wraps a sql.DB for the results store.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database at path and applies the
// schema.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// SaveReport upserts a player summary and replaces that player's stored
// moments for the match.
func (db *DB) SaveReport(matchID int, report analysis.PlayerReport) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	s := report.Summary
	_, err = tx.Exec(`
		INSERT OR REPLACE INTO player_summaries
		(match_id, player_id, player_name, team, outcome, total_impact,
		 total_base, total_actions, positive, negative, pass_accuracy, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		matchID, s.PlayerID, s.Player, s.Team, string(s.Outcome), s.TotalImpact,
		s.TotalBaseValue, s.TotalActions, s.PositiveActions, s.NegativeActions,
		s.PassAccuracy, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert summary: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM moments WHERE match_id = ? AND player_name = ?`,
		matchID, s.Player); err != nil {
		return fmt.Errorf("clear moments: %w", err)
	}
	if err := insertMoments(tx, matchID, "highlight", report.Highlights); err != nil {
		return err
	}
	if err := insertMoments(tx, matchID, "lowlight", report.Lowlights); err != nil {
		return err
	}
	return tx.Commit()
}

// SaveMatchHighlights replaces the stored match-wide highlights.
func (db *DB) SaveMatchHighlights(matchID int, moments []analysis.Moment) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(`DELETE FROM moments WHERE match_id = ? AND kind = 'highlight'`, matchID); err != nil {
		return fmt.Errorf("clear moments: %w", err)
	}
	if err := insertMoments(tx, matchID, "highlight", moments); err != nil {
		return err
	}
	return tx.Commit()
}

func insertMoments(tx *sql.Tx, matchID int, kind string, moments []analysis.Moment) error {
	for _, m := range moments {
		_, err := tx.Exec(`
			INSERT INTO moments
			(match_id, player_name, team, kind, period, minute, second,
			 event_type, label, impact, base_value, spatial_delta)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			matchID, m.Player, m.Team, kind, m.Period, m.Minute, m.Second,
			string(m.EventType), m.Label, m.Impact, m.BaseValue, m.SpatialDelta)
		if err != nil {
			return fmt.Errorf("insert moment: %w", err)
		}
	}
	return nil
}

// TopMoments returns the stored moments for a match, best first for
// highlights and worst first for lowlights.
func (db *DB) TopMoments(matchID int, kind string, limit int) ([]analysis.Moment, error) {
	order := "DESC"
	if kind == "lowlight" {
		order = "ASC"
	}
	rows, err := db.conn.Query(fmt.Sprintf(`
		SELECT player_name, team, period, minute, second, event_type, label,
		       impact, base_value, spatial_delta
		FROM moments
		WHERE match_id = ? AND kind = ?
		ORDER BY impact %s
		LIMIT ?`, order),
		matchID, kind, limit)
	if err != nil {
		return nil, fmt.Errorf("query moments: %w", err)
	}
	defer rows.Close()

	var out []analysis.Moment
	for rows.Next() {
		var m analysis.Moment
		var eventType string
		if err := rows.Scan(&m.Player, &m.Team, &m.Period, &m.Minute, &m.Second,
			&eventType, &m.Label, &m.Impact, &m.BaseValue, &m.SpatialDelta); err != nil {
			return nil, fmt.Errorf("scan moment: %w", err)
		}
		m.EventType = event.Type(eventType)
		m.Clock = fmt.Sprintf("%d:%02d", m.Minute, m.Second)
		out = append(out, m)
	}
	return out, rows.Err()
}
