// Package storage управляет подключением к PostgreSQL через пул pgx
// и даёт общие для репозиториев примитивы: интерфейсы запросов,
// транзакции и доменные ошибки хранилища.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Ошибки хранилища, которые сервисы переводят в доменные.
var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

// Storage инкапсулирует пул соединений PostgreSQL.
type Storage struct {
	Pool *pgxpool.Pool
}

// New создаёт пул и проверяет соединение.
func New(ctx context.Context, storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	pool, err := pgxpool.New(ctx, storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Storage{Pool: pool}, nil
}

// DB возвращает database/sql обёртку над пулом, нужна для миграций.
// Закрывать её должен вызывающий, пул при этом остаётся открытым.
func (s *Storage) DB() *sql.DB {
	return stdlib.OpenDBFromPool(s.Pool)
}

// Close закрывает пул.
func (s *Storage) Close() {
	s.Pool.Close()
}

// IsUniqueViolation сообщает, что ошибка вызвана нарушением уникального индекса.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
