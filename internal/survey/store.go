// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package survey accumulates access points from many scan logs in a SQLite
// database. Each BSSID is stored once; ingesting a newer log replaces every
// field of an existing access point, the same rule the parser applies within
// a single log.
package survey

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/gmon2kml/pkg/types"
)

const (
	dbFile     = "survey.db"
	defaultDir = "survey"
)

// Store manages the survey SQLite database.
type Store struct {
	db  *sql.DB
	dir string
	now func() time.Time
}

// IngestSummary holds the outcome of one Ingest call.
type IngestSummary struct {
	Inserted int
	Updated  int
}

// Total returns the number of access points written.
func (s IngestSummary) Total() int {
	return s.Inserted + s.Updated
}

// Filter restricts which access points are returned. Zero values match all.
type Filter struct {
	// Crypt matches the encryption value exactly.
	Crypt string
	// SSID matches access points whose SSID contains this text.
	SSID string
}

// NewStore opens or creates the survey database at cfg.Dir/survey.db and
// creates the schema if needed.
func NewStore(cfg types.SurveyConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating survey directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dir: dir, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS access_points (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			bssid TEXT NOT NULL UNIQUE,
			lat TEXT NOT NULL,
			lon TEXT NOT NULL,
			ssid TEXT NOT NULL,
			crypt TEXT NOT NULL,
			beacon_interval TEXT,
			connection_mode TEXT,
			channel TEXT,
			rxl TEXT,
			seen_date TEXT,
			seen_time TEXT,
			source TEXT NOT NULL,
			ingested_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_access_points_crypt ON access_points(crypt)`,
		`CREATE TABLE IF NOT EXISTS scans (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			records INTEGER NOT NULL,
			ingested_at TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Ingest writes every record in set in a single transaction and logs the
// scan under source. Existing access points keep their position in the
// ingest order but take all field values from the new record.
func (s *Store) Ingest(ctx context.Context, source string, set *types.RecordSet) (IngestSummary, error) {
	var sum IngestSummary
	ts := s.now().UTC().Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return sum, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := tx.PrepareContext(ctx, `SELECT count(*) FROM access_points WHERE bssid = ?`)
	if err != nil {
		return sum, fmt.Errorf("preparing lookup: %w", err)
	}
	defer exists.Close()

	upsert, err := tx.PrepareContext(ctx, `INSERT INTO access_points
		(bssid, lat, lon, ssid, crypt, beacon_interval, connection_mode, channel, rxl, seen_date, seen_time, source, ingested_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(bssid) DO UPDATE SET
			lat = excluded.lat,
			lon = excluded.lon,
			ssid = excluded.ssid,
			crypt = excluded.crypt,
			beacon_interval = excluded.beacon_interval,
			connection_mode = excluded.connection_mode,
			channel = excluded.channel,
			rxl = excluded.rxl,
			seen_date = excluded.seen_date,
			seen_time = excluded.seen_time,
			source = excluded.source,
			ingested_at = excluded.ingested_at`)
	if err != nil {
		return sum, fmt.Errorf("preparing upsert: %w", err)
	}
	defer upsert.Close()

	for _, r := range set.Records() {
		var n int
		if err := exists.QueryRowContext(ctx, r.BSSID).Scan(&n); err != nil {
			return sum, fmt.Errorf("looking up %s: %w", r.BSSID, err)
		}
		if _, err := upsert.ExecContext(ctx,
			r.BSSID, r.Lat, r.Lon, r.SSID, r.Crypt, r.BeaconInterval, r.ConnectionMode,
			r.Channel, r.RXL, r.Date, r.Time, source, ts,
		); err != nil {
			return sum, fmt.Errorf("storing %s: %w", r.BSSID, err)
		}
		if n > 0 {
			sum.Updated++
		} else {
			sum.Inserted++
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO scans (source, records, ingested_at) VALUES (?, ?, ?)`,
		source, set.Len(), ts,
	); err != nil {
		return sum, fmt.Errorf("recording scan: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return IngestSummary{}, fmt.Errorf("committing: %w", err)
	}
	return sum, nil
}

// Records returns the stored access points matching f in first-ingest order.
func (s *Store) Records(ctx context.Context, f Filter) (*types.RecordSet, error) {
	entries, err := s.entries(ctx, f)
	if err != nil {
		return nil, err
	}
	set := types.NewRecordSet()
	for _, e := range entries {
		set.Put(e.Record)
	}
	return set, nil
}

// ScanCount returns the number of scan logs ingested so far.
func (s *Store) ScanCount(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM scans`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting scans: %w", err)
	}
	return n, nil
}

func (s *Store) entries(ctx context.Context, f Filter) ([]ExportEntry, error) {
	query := `SELECT bssid, lat, lon, ssid, crypt, beacon_interval, connection_mode,
		channel, rxl, seen_date, seen_time, source, ingested_at FROM access_points`

	var conds []string
	var args []any
	if f.Crypt != "" {
		conds = append(conds, "crypt = ?")
		args = append(args, f.Crypt)
	}
	if f.SSID != "" {
		conds = append(conds, "instr(ssid, ?) > 0")
		args = append(args, f.SSID)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying access points: %w", err)
	}
	defer rows.Close()

	var out []ExportEntry
	for rows.Next() {
		var e ExportEntry
		r := &e.Record
		if err := rows.Scan(&r.BSSID, &r.Lat, &r.Lon, &r.SSID, &r.Crypt, &r.BeaconInterval,
			&r.ConnectionMode, &r.Channel, &r.RXL, &r.Date, &r.Time, &e.Source, &e.IngestedAt); err != nil {
			return nil, fmt.Errorf("scanning access point: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
