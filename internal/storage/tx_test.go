package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTx(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		fn        func(ctx context.Context, tx DBTX) error
		wantErr   string
	}{
		{
			name: "commits on success",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM password_reset_tokens`).
					WithArgs(int64(1)).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
				mock.ExpectCommit()
			},
			fn: func(ctx context.Context, tx DBTX) error {
				_, err := tx.Exec(ctx, `DELETE FROM password_reset_tokens WHERE user_id = $1`, int64(1))
				return err
			},
		},
		{
			name: "rolls back when fn fails",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn: func(_ context.Context, _ DBTX) error {
				return errors.New("boom")
			},
			wantErr: "boom",
		},
		{
			name: "begin error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("pool closed"))
			},
			fn: func(_ context.Context, _ DBTX) error {
				return nil
			},
			wantErr: "begin: pool closed",
		},
		{
			name: "commit error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))
			},
			fn: func(_ context.Context, _ DBTX) error {
				return nil
			},
			wantErr: "commit: serialization failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			err = WithTx(context.Background(), mock, tt.fn)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = WithTx(context.Background(), mock, func(_ context.Context, _ DBTX) error {
			panic("kaput")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(wrapPgErr("23505")))
	assert.False(t, IsUniqueViolation(wrapPgErr("23503")))
	assert.False(t, IsUniqueViolation(errors.New("plain")))
}

func wrapPgErr(code string) error {
	return fmt.Errorf("repo.op: %w", &pgconn.PgError{Code: code})
}
