package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Sanagocat/My-blog-back-end/internal/config"
	"github.com/Sanagocat/My-blog-back-end/internal/logger"
	"github.com/Sanagocat/My-blog-back-end/migrations"
	"github.com/jackc/pgx/v5/pgconn"

	// database/sql adapter for the pgx driver, registered as "pgx".
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB wraps the shared *sql.DB pool together with the error classifier used
// to log whether a storage failure is transient.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens a bounded connection pool to PostgreSQL, verifies
// connectivity with a ping, and returns the wrapped handle.
//
// Every repository call later borrows a connection from this pool for the
// duration of a single query; the database/sql pool guarantees the release
// even on error paths.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// bound the pool
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	return db, nil
}

// Migrate applies the embedded goose migrations to the wrapped database.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
