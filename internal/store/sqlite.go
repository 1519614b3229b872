// internal/store/sqlite.go
//
// SQLite-backed implementation of solver.Cache.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations from sql/*.sql (idempotent, recorded in _migrations).
//   - Saving and loading rankings row by row, in rank order.

package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/guesser/internal/feedback"
	"github.com/robalobadob/wordle/apps/guesser/internal/solver"
	"github.com/robalobadob/wordle/apps/guesser/internal/words"
)

//go:embed sql/*.sql
var migrations embed.FS

// SQLite is a ranking cache persisted in a SQLite file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if missing) the cache at dsn and migrates it.
func OpenSQLite(dsn string) (*SQLite, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }

/**
 * openDB opens (and creates if missing) a SQLite database file.
 *
 * - Ensures parent directory exists for relative DSNs (e.g. ./data/rankings.db).
 * - Configures busy timeout and WAL journaling mode.
 * - Enforces foreign keys.
 */
func openDB(dsn string) (*sql.DB, error) {
	// Ensure directory exists for ./data/rankings.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

/**
 * migrate applies the embedded sql/*.sql migrations.
 *
 * - Uses a _migrations table to track applied files.
 * - Executes each file in lexical order inside its own transaction.
 * - Skips files already applied.
 */
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Save replaces the ranking stored under key.
func (s *SQLite) Save(ctx context.Context, key string, stats []solver.GuessStats) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM rankings WHERE fingerprint=?`, key); err != nil {
		return fmt.Errorf("clear ranking: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM ranking_sets WHERE fingerprint=?`, key); err != nil {
		return fmt.Errorf("clear ranking: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO ranking_sets (fingerprint, entries) VALUES (?, ?)`, key, len(stats),
	); err != nil {
		return fmt.Errorf("insert ranking set: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO rankings
            (fingerprint, position, guess, expected, worst_case, worst_code, sample, viable)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, st := range stats {
		if _, err := stmt.ExecContext(ctx,
			key, i, st.Guess.String(), st.Expected, st.WorstCase, st.WorstCode.Index(),
			strings.Join(words.Strings(st.WorstSample), " "), st.Viable,
		); err != nil {
			return fmt.Errorf("insert ranking row %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// Load returns the ranking stored under key, in rank order.
func (s *SQLite) Load(ctx context.Context, key string) ([]solver.GuessStats, bool, error) {
	var entries int
	err := s.db.QueryRowContext(ctx,
		`SELECT entries FROM ranking_sets WHERE fingerprint=?`, key,
	).Scan(&entries)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	rows, err := s.db.QueryContext(ctx, `
        SELECT guess, expected, worst_case, worst_code, sample, viable
        FROM rankings
        WHERE fingerprint=?
        ORDER BY position ASC`, key,
	)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	out := make([]solver.GuessStats, 0, entries)
	for rows.Next() {
		var (
			st            solver.GuessStats
			guess, sample string
			code          int
		)
		if err := rows.Scan(&guess, &st.Expected, &st.WorstCase, &code, &sample, &st.Viable); err != nil {
			return nil, false, err
		}
		if st.Guess, err = words.Parse(guess); err != nil {
			return nil, false, fmt.Errorf("stored guess: %w", err)
		}
		st.WorstCode = feedback.FromIndex(code)
		if sample != "" {
			for _, f := range strings.Fields(sample) {
				w, err := words.Parse(f)
				if err != nil {
					return nil, false, fmt.Errorf("stored sample: %w", err)
				}
				st.WorstSample = append(st.WorstSample, w)
			}
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	if len(out) != entries {
		// Partial write from an older run; treat as a miss.
		log.Warn().Str("key", key).Int("want", entries).Int("got", len(out)).Msg("incomplete cached ranking")
		return nil, false, nil
	}
	return out, true, nil
}
