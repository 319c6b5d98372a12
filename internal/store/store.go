// Package store persists finished match results to SQLite for batch
// analysis. Live game state is never written here.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"arena_ai/internal/sim"
)

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS matches (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		played_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		field TEXT NOT NULL,
		winner TEXT NOT NULL,
		turns INTEGER NOT NULL,
		duration REAL NOT NULL,
		side_a TEXT NOT NULL,
		side_b TEXT NOT NULL,
		caught_a INTEGER NOT NULL,
		caught_b INTEGER NOT NULL,
		hp_a INTEGER NOT NULL,
		hp_b INTEGER NOT NULL,
		alive_a INTEGER NOT NULL,
		alive_b INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_matches_seed ON matches(seed);
	CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches(winner);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error { return s.db.Close() }

// Save writes one finished match.
func (s *Store) Save(r sim.Result) error {
	_, err := s.db.Exec(`
		INSERT INTO matches (id, seed, played_at, field, winner, turns, duration,
			side_a, side_b, caught_a, caught_b, hp_a, hp_b, alive_a, alive_b)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Seed, time.Now().UTC(), r.Field, r.Winner, r.Turns, r.Duration,
		r.Sides[0].Name, r.Sides[1].Name,
		r.Sides[0].Caught, r.Sides[1].Caught,
		r.Sides[0].HPEnd, r.Sides[1].HPEnd,
		r.Sides[0].Alive, r.Sides[1].Alive,
	)
	if err != nil {
		return fmt.Errorf("save match %s: %w", r.ID, err)
	}
	return nil
}

// Summary aggregates wins per winner name across all stored matches.
func (s *Store) Summary() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT winner, COUNT(*) FROM matches GROUP BY winner`)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var winner string
		var n int
		if err := rows.Scan(&winner, &n); err != nil {
			return nil, err
		}
		out[winner] = n
	}
	return out, rows.Err()
}

// Count reports the number of stored matches.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM matches`).Scan(&n)
	return n, err
}
