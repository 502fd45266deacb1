package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/investlab/investment-gateway/src/internal/config"
	"github.com/investlab/investment-gateway/src/internal/domain"
	"github.com/investlab/investment-gateway/src/internal/logger"
)

// Gateway runs parametrized queries and procedure calls. Every call checks a
// connection out of a bounded pool and returns it before the call returns.
type Gateway struct {
	db *sqlx.DB
}

func Open(ctx context.Context, cfg config.Database) (*Gateway, error) {
	db, err := sqlx.Open(cfg.Driver, cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Gateway{db: db}, nil
}

func New(db *sqlx.DB) *Gateway {
	return &Gateway{db: db}
}

func (g *Gateway) Close() error {
	return g.db.Close()
}

func (g *Gateway) Ping(ctx context.Context) error {
	return g.db.PingContext(ctx)
}

func (g *Gateway) Stats() sql.DBStats {
	return g.db.Stats()
}

// FetchAll returns every row of query.
func (g *Gateway) FetchAll(ctx context.Context, query string, args ...any) (rows []domain.Row, err error) {
	defer trace(ctx, "fetch all", time.Now(), &err)

	conn, err := g.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	result, err := conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer result.Close()

	return scanRows(result, 0)
}

// FetchOne returns the first row of query; ok is false when the query yields nothing.
func (g *Gateway) FetchOne(ctx context.Context, query string, args ...any) (row domain.Row, ok bool, err error) {
	defer trace(ctx, "fetch one", time.Now(), &err)

	conn, err := g.db.Connx(ctx)
	if err != nil {
		return domain.Row{}, false, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	result, err := conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return domain.Row{}, false, err
	}
	defer result.Close()

	rows, err := scanRows(result, 1)
	if err != nil {
		return domain.Row{}, false, err
	}
	if len(rows) == 0 {
		return domain.Row{}, false, nil
	}
	return rows[0], true, nil
}

// Get scans a single row into dest; sql.ErrNoRows is returned untouched.
func (g *Gateway) Get(ctx context.Context, dest any, query string, args ...any) (err error) {
	defer trace(ctx, "get", time.Now(), &err)

	conn, err := g.db.Connx(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	return conn.GetContext(ctx, dest, query, args...)
}

// Select scans every row into the slice pointed to by dest.
func (g *Gateway) Select(ctx context.Context, dest any, query string, args ...any) (err error) {
	defer trace(ctx, "select", time.Now(), &err)

	conn, err := g.db.Connx(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	return conn.SelectContext(ctx, dest, query, args...)
}

// Execute runs a mutating statement and commits it.
func (g *Gateway) Execute(ctx context.Context, query string, args ...any) (err error) {
	defer trace(ctx, "execute", time.Now(), &err)

	return g.inTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	})
}

// CallProcedure invokes one of the known procedures with positional arguments and commits.
func (g *Gateway) CallProcedure(ctx context.Context, proc Procedure, args ...any) (err error) {
	defer trace(ctx, "call "+string(proc), time.Now(), &err)

	stmt, err := buildCall(proc, len(args))
	if err != nil {
		return err
	}

	return g.inTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, stmt, args...)
		return err
	})
}

func (g *Gateway) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	conn, err := g.db.Connx(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error(ctx, "gateway rollback failed", rbErr, nil)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func trace(ctx context.Context, op string, start time.Time, err *error) {
	fields := logger.Fields{
		"op":         op,
		"durationMs": time.Since(start).Milliseconds(),
	}
	if *err != nil {
		fields["error"] = (*err).Error()
	}
	logger.Debug(ctx, "gateway call", fields)
}
