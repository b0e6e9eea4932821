package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/account-service/internal/config"
	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/migrations"
)

// Driver names registered by the blank imports above.
const (
	driverPgx     = "pgx"
	driverSQLite3 = "sqlite3"
)

// DB wraps the shared connection pool together with everything that depends
// on the backing database: the SQL placeholder style, the error classifier
// and the migration dialect.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database named by cfg.DSN, checks it is reachable and
// applies the embedded migrations unless cfg.AutoMigrate is false.
//
// Supported DSNs:
//   - postgres://… and postgresql://… via pgx
//   - sqlite://<path>, file:<path> and :memory: via go-sqlite3
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	driverName, dataSource, dialect, err := parseDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("unsupported DSN")
		return nil, err
	}

	if dialect == migrations.DialectSQLite {
		if err = createLocalDBDirIfNotExists(dataSource); err != nil {
			log.Err(err).Str("func", "NewConnect").Msg("error creating database directory")
			return nil, err
		}
	}

	conn, err := sql.Open(driverName, dataSource)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}
	configurePool(conn, dialect)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Str("driver", driverName).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	log.Info().Str("func", "NewConnect").Str("driver", driverName).Msg("connected to database successfully")

	db := newDB(conn, dialect, log)

	if cfg.MigrateOnStart() {
		if err = db.Migrate(ctx); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	return db, nil
}

// newDB wires an open pool to the dialect-specific helpers.
func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Migrate applies pending schema migrations for the connected dialect.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB, db.dialect)
	if err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Str("dialect", db.dialect).Msg("error applying migrations")
		return err
	}

	db.logger.Info().Str("func", "*DB.Migrate").Str("dialect", db.dialect).Int("applied", applied).Msg("database schema is up to date")
	return nil
}

// Dialect returns the migration dialect of the connected database.
func (db *DB) Dialect() string {
	return db.dialect
}

// mapError converts a driver error into one of the package sentinels.
func (db *DB) mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAccountNotFound
	}

	switch db.errorClassificator.Classify(err) {
	case Retryable:
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	case InvalidData:
		return fmt.Errorf("%w: %w", ErrInvalidAccountData, err)
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func parseDSN(dsn string) (driverName, dataSource, dialect string, err error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return driverPgx, dsn, migrations.DialectPostgres, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return driverSQLite3, sqliteDataSource(dsn), migrations.DialectSQLite, nil
	case strings.HasPrefix(dsn, "file:"), dsn == sqliteMemory:
		return driverSQLite3, dsn, migrations.DialectSQLite, nil
	}

	return "", "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
}

func configurePool(conn *sql.DB, dialect string) {
	if dialect == migrations.DialectSQLite {
		// SQLite serialises writers; one connection also keeps ":memory:"
		// databases alive for the lifetime of the pool.
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		conn.SetConnMaxLifetime(0)
		return
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)
	conn.SetConnMaxLifetime(30 * time.Minute)
}
