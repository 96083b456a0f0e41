package migration

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	// Blank import required for SQLite driver registration for migrations
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrator is the subset of *migrate.Migrate the wrapper needs.
type Migrator interface {
	Up() error
	Migrate(version uint) error
	Version() (uint, bool, error)
	Close() (error, error)
}

// MigrationEngine builds a Migrator, so tests can avoid the filesystem and database.
type MigrationEngine func(source fs.FS, databaseURL string) (Migrator, error)

type Migration struct {
	source      fs.FS
	databaseURL string
	engine      MigrationEngine
}

func NewMigration(source fs.FS, databaseURL string, engine MigrationEngine) *Migration {
	if engine == nil {
		engine = DefaultEngine
	}
	return &Migration{
		source:      source,
		databaseURL: databaseURL,
		engine:      engine,
	}
}

// DefaultEngine reads migrations from an embedded filesystem.
func DefaultEngine(source fs.FS, databaseURL string) (Migrator, error) {
	src, err := iofs.New(source, ".")
	if err != nil {
		return nil, fmt.Errorf("open migration source: %w", err)
	}
	return migrate.NewWithSourceInstance("iofs", src, databaseURL)
}

// SQLiteURL returns the database URL golang-migrate expects for a SQLite file.
func SQLiteURL(path string) string {
	return "sqlite3://" + path
}

// Up applies every pending migration. Being up to date is not an error.
func (mg *Migration) Up() error {
	return mg.run(func(m Migrator) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration up: %w", err)
		}
		return nil
	})
}

// To moves the schema to exactly version, up or down.
func (mg *Migration) To(version uint) error {
	return mg.run(func(m Migrator) error {
		if err := m.Migrate(version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate to %d: %w", version, err)
		}
		return nil
	})
}

// Version reports the applied schema version; zero when none is applied.
func (mg *Migration) Version() (version uint, dirty bool, err error) {
	err = mg.run(func(m Migrator) error {
		var verr error
		version, dirty, verr = m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			return nil
		}
		return verr
	})
	return version, dirty, err
}

func (mg *Migration) run(fn func(Migrator) error) (err error) {
	m, err := mg.engine(mg.source, mg.databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()

	return fn(m)
}
