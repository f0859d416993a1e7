package repositories

import "context"

// Transactor выполняет fn в транзакции. Вложенный вызов использует уже открытую транзакцию.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error

	WithinReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error
}
