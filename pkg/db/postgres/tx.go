package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"bookjournal/pkg/logger"
)

// Константы сообщений транзакций.
const (
	ErrBeginTx    = "failed to begin transaction"
	ErrCommitTx   = "failed to commit transaction"
	LogRollbackTx = "failed to rollback transaction"
)

// Querier - общий набор методов пула и транзакции pgx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Pool - пул, умеющий открывать транзакции. Ему соответствуют *pgxpool.Pool и pgxmock.
type Pool interface {
	Querier
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type txKeyType struct{}

var txKey = txKeyType{}

// Conn возвращает транзакцию из контекста, а если ее нет - переданный пул.
func Conn(ctx context.Context, pool Querier) Querier {
	if tx, ok := ctx.Value(txKey).(pgx.Tx); ok {
		return tx
	}
	return pool
}

// TxManager выполняет функции в рамках одной транзакции.
type TxManager struct {
	pool Pool
}

// NewTxManager создает менеджер транзакций поверх пула.
func NewTxManager(pool Pool) *TxManager {
	return &TxManager{pool: pool}
}

// WithinTx выполняет fn в транзакции на чтение и запись.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, pgx.TxOptions{}, fn)
}

// WithinReadOnlyTx выполняет fn в транзакции только на чтение.
func (m *TxManager) WithinReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (m *TxManager) run(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context) error) error {
	// Вложенный вызов работает в уже открытой транзакции.
	if _, ok := ctx.Value(txKey).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			rollback(ctx, tx)
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey, tx)); err != nil {
		rollback(ctx, tx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrCommitTx, err)
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.Log(ctx).Warn(ctx, LogRollbackTx, zap.Error(err))
	}
}
