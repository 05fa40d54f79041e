// Package clickhouse persists the off-chain audit mirror of verification
// store events.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	ch "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/chainproof/chainproof-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Conn is the subset of the ClickHouse driver the repository uses.
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (Rows, error)
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Close() error
	}

	// Rows iterates a query result.
	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Close() error
	}

	// Batch accumulates rows for a single insert.
	Batch interface {
		Append(v ...any) error
		Send() error
	}

	// Metrics records repository operation outcomes.
	Metrics interface {
		Observe(operation string, chainID model.ChainID, err error, started time.Time)
	}
)

type Repository struct {
	conn    Conn
	metrics Metrics
}

func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := ch.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := ch.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: chConn{conn: conn}, metrics: metrics}, nil
}

// Close releases the underlying connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

// chConn narrows the driver connection to the Conn surface.
type chConn struct {
	conn driver.Conn
}

func (c chConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	return c.conn.Query(ctx, query, args...)
}

func (c chConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	return c.conn.PrepareBatch(ctx, query)
}

func (c chConn) Close() error {
	return c.conn.Close()
}

func firstChainID(records []model.AuditRecord) model.ChainID {
	if len(records) == 0 {
		return ""
	}
	return records[0].ChainID
}
