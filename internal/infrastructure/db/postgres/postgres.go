// Package postgres implements the repository ports on PostgreSQL via the
// pgx stdlib driver. Unique-constraint violations are classified with
// pgerrcode and surfaced as domain "already exists" errors, making the
// database the authority for duplicate keys.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
)

const (
	maxOpenConns = 10
	maxIdleConns = 4
	pingTimeout  = 5 * time.Second
)

// psql builds queries with PostgreSQL-style $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// DB wraps the sql handle so repositories share one connection pool.
type DB struct {
	*sql.DB
}

// Connect opens a pooled connection and verifies it with a ping.
func Connect(ctx context.Context, dsn string, log zerolog.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	log.Info().Msg("connected to postgres")
	return &DB{DB: conn}, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (error code 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
