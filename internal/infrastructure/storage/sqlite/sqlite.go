// Package sqlite is the on-disk local store of the client.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"tau/internal/domain/sync"
	"tau/internal/infrastructure/migration"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// SchemaVersion is the latest migration shipped with the binary.
const SchemaVersion uint = 2

type Storage struct {
	db   *sql.DB
	path string
	log  *slog.Logger
}

// New opens the database at path and migrates it to SchemaVersion.
func New(path string, log *slog.Logger) (*Storage, error) {
	if err := Migrate(path, 0); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Storage{
		db:   db,
		path: path,
		log:  log.With("component", "sqlite_storage"),
	}, nil
}

// Migrate moves the schema at path to version; zero means the latest.
func Migrate(path string, version uint) error {
	src, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	mg := migration.NewMigration(src, migration.SQLiteURL(path), migration.DefaultEngine)
	if version == 0 {
		return mg.Up()
	}
	return mg.To(version)
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) DB() *sql.DB {
	return s.db
}

func (s *Storage) Path() string {
	return s.path
}

// withTx runs fn in a transaction, rolled back when fn fails.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func stateArgs(state sync.State) (sql.NullInt64, bool) {
	remoteID, synced := state.Columns()
	if remoteID == nil {
		return sql.NullInt64{}, synced
	}
	return sql.NullInt64{Int64: *remoteID, Valid: true}, synced
}

func scanState(remoteID sql.NullInt64, synced bool) sync.State {
	if !remoteID.Valid {
		return sync.Restore(nil, synced)
	}
	id := remoteID.Int64
	return sync.Restore(&id, synced)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type scanner interface {
	Scan(dest ...any) error
}
