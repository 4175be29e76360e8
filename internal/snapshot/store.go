package snapshot

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"verse-trader/internal/catalog"
	"verse-trader/internal/logger"
	"verse-trader/internal/uex"
)

// Store wraps the SQLite database holding the catalog snapshot and the
// resolver's learned name aliases.
type Store struct {
	sql *sql.DB
}

// Open opens (or creates) the database at path and runs migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	s := &Store{sql: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	logger.Success("DB", fmt.Sprintf("Opened %s", path))
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.sql.Close()
}

func (s *Store) migrate() error {
	version := 0
	s.sql.QueryRow("SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)

	if version < 1 {
		_, err := s.sql.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS catalog_snapshot (
				id        INTEGER PRIMARY KEY CHECK (id = 1),
				timestamp INTEGER NOT NULL,
				version   TEXT NOT NULL,
				payload   TEXT NOT NULL
			);

			CREATE TABLE IF NOT EXISTS name_aliases (
				heard     TEXT PRIMARY KEY,
				canonical TEXT NOT NULL,
				added_at  TEXT NOT NULL
			);

			INSERT OR IGNORE INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return err
		}
	}
	return nil
}

// LoadSnapshot returns the stored snapshot, reporting absence without error.
func (s *Store) LoadSnapshot() (*catalog.Snapshot, bool, error) {
	var ts int64
	var version, payload string
	err := s.sql.QueryRow(
		"SELECT timestamp, version, payload FROM catalog_snapshot WHERE id = 1").
		Scan(&ts, &version, &payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var cat uex.Catalog
	if err := json.Unmarshal([]byte(payload), &cat); err != nil {
		return nil, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return &catalog.Snapshot{Timestamp: ts, Version: version, Catalog: cat}, true, nil
}

// SaveSnapshot overwrites the stored snapshot wholesale.
func (s *Store) SaveSnapshot(snap *catalog.Snapshot) error {
	payload, err := json.Marshal(snap.Catalog)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = s.sql.Exec(`
		INSERT INTO catalog_snapshot (id, timestamp, version, payload)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			timestamp = excluded.timestamp,
			version   = excluded.version,
			payload   = excluded.payload`,
		snap.Timestamp, snap.Version, string(payload))
	return err
}

// SaveAlias records that a heard form resolves to a canonical name.
func (s *Store) SaveAlias(heard, canonical string) error {
	_, err := s.sql.Exec(`
		INSERT INTO name_aliases (heard, canonical, added_at)
		VALUES (?, ?, ?)
		ON CONFLICT(heard) DO UPDATE SET
			canonical = excluded.canonical,
			added_at  = excluded.added_at`,
		heard, canonical, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Aliases returns all recorded heard-form → canonical-name pairs.
func (s *Store) Aliases() (map[string]string, error) {
	rows, err := s.sql.Query("SELECT heard, canonical FROM name_aliases")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var heard, canonical string
		if err := rows.Scan(&heard, &canonical); err != nil {
			return nil, err
		}
		out[heard] = canonical
	}
	return out, rows.Err()
}
