package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX подмножество pgx, которым пользуются репозитории.
// Ему удовлетворяют *pgxpool.Pool, pgx.Tx и pgxmock.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Pool DBTX, умеющий открывать транзакции.
type Pool interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// WithTx открывает транзакцию, выполняет fn и фиксирует её.
// При ошибке или панике в fn транзакция откатывается, паника пробрасывается дальше.
func WithTx(ctx context.Context, pool Pool, fn func(ctx context.Context, tx DBTX) error) (err error) {
	const op = "storage.WithTx"

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if cerr := tx.Commit(ctx); cerr != nil {
			err = fmt.Errorf("%s: commit: %w", op, cerr)
		}
	}()

	err = fn(ctx, tx)
	return err
}
