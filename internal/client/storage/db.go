package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/byteme/internal/client/migrations"
	"github.com/dmitrijs2005/byteme/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/byteme/internal/client/repositories/users"
	"github.com/dmitrijs2005/byteme/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Store is an open local database plus the repositories that use it.
type Store struct {
	db           *sql.DB
	users        *users.SQLiteRepository
	localStorage *localstorage.SQLiteRepository
}

// RunMigrations applies every pending embedded migration to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	p, err := newMigrationProvider(db)
	if err != nil {
		return err
	}
	if _, err := p.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func newMigrationProvider(db *sql.DB) (*goose.Provider, error) {
	p, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	return p, nil
}

// Open opens (creating if needed) the database at dsn and migrates it.
// dsn is a file path, a "file:" URI or ":memory:".
func Open(ctx context.Context, dsn string) (*Store, error) {
	if isPlainPath(dsn) {
		if err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if dsn == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(1)

	return &Store{
		db:           db,
		users:        users.NewSQLiteRepository(db),
		localStorage: localstorage.NewSQLiteRepository(db),
	}, nil
}

func isPlainPath(dsn string) bool {
	return dsn != ":memory:" && !strings.HasPrefix(dsn, "file:")
}

func (s *Store) Users() *users.SQLiteRepository { return s.users }

func (s *Store) LocalStorage() *localstorage.SQLiteRepository { return s.localStorage }

func (s *Store) DB() *sql.DB { return s.db }

// SchemaVersion reports the highest applied migration version.
func (s *Store) SchemaVersion(ctx context.Context) (int64, error) {
	p, err := newMigrationProvider(s.db)
	if err != nil {
		return 0, err
	}
	return p.GetDBVersion(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
