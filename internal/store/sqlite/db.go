package sqlite

import (
	"database/sql"
	"embed"
	"fmt"
	stdfs "io/fs"
	"regexp"
	"sort"
	"strconv"

	_ "github.com/mattn/go-sqlite3"

	"github.com/klemart/markd/internal/utils"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var migFileRe = regexp.MustCompile(`^([0-9]{4})_(.+)\.up\.sql$`)

// Open opens (or creates) the SQLite database at path and applies pending
// migrations. Migration files live under migrations/ following the pattern
// 0001_name.up.sql and are applied in order, each inside its own transaction.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		path = "markd.db"
	}
	d, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := d.Ping(); err != nil {
		_ = d.Close()
		return nil, err
	}

	// journal_mode is unsupported for in-memory databases, ignore errors there.
	_, _ = d.Exec(`PRAGMA journal_mode=WAL`)
	if _, err := d.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		_ = d.Close()
		return nil, err
	}
	if _, err := d.Exec(`PRAGMA foreign_keys=ON`); err != nil {
		_ = d.Close()
		return nil, err
	}

	if err := applyMigrations(d); err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}

func ensureMigrationsTable(d *sql.DB) error {
	_, err := d.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
        version INTEGER PRIMARY KEY,
        applied_at TEXT NOT NULL DEFAULT (CURRENT_TIMESTAMP)
    )`)
	return err
}

func appliedVersions(d *sql.DB) (map[int]bool, error) {
	if err := ensureMigrationsTable(d); err != nil {
		return nil, err
	}
	rows, err := d.Query(`SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer utils.Close(rows)
	got := map[int]bool{}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		got[v] = true
	}
	return got, rows.Err()
}

func applyMigrations(d *sql.DB) error {
	list, err := stdfs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return nil // no migrations directory, nothing to do
	}

	type migration struct {
		version int
		file    string
	}
	var migs []migration
	for _, de := range list {
		m := migFileRe.FindStringSubmatch(de.Name())
		if m == nil {
			continue
		}
		ver, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		migs = append(migs, migration{version: ver, file: "migrations/" + de.Name()})
	}
	sort.Slice(migs, func(i, j int) bool { return migs[i].version < migs[j].version })

	applied, err := appliedVersions(d)
	if err != nil {
		return err
	}

	for _, m := range migs {
		if applied[m.version] {
			continue
		}
		sqlText, err := migrationsFS.ReadFile(m.file)
		if err != nil {
			return err
		}
		tx, err := d.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlText)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %04d failed: %w", m.version, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version) VALUES(?)`, m.version); err != nil {
			_ = tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}
