package repository

import (
	"context"

	"github.com/openstock/openstock-api/internal/domain/entity"
	"github.com/openstock/openstock-api/internal/domain/enum"
)

// FinanceRepository defines data access for the ledger and the three
// specialized transaction kinds. Every specialized create also inserts its
// mirrored ledger row inside the same database transaction.
type FinanceRepository interface {
	CreateTransaction(ctx context.Context, txn *entity.Transaction) error
	GetTransaction(ctx context.Context, id string) (*entity.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	// ListTransactions returns the ledger newest-first, optionally filtered
	// by business line. A zero limit means no limit.
	ListTransactions(ctx context.Context, line *enum.BusinessLine, limit int) ([]entity.Transaction, error)

	CreateCrossBorder(ctx context.Context, cb *entity.CrossBorderTransaction, mirror *entity.Transaction) error
	ListCrossBorder(ctx context.Context) ([]entity.CrossBorderTransaction, error)

	CreateForex(ctx context.Context, fx *entity.ForexTransaction, mirror *entity.Transaction) error
	ListForex(ctx context.Context) ([]entity.ForexTransaction, error)

	CreateCrypto(ctx context.Context, cr *entity.CryptoTransaction, mirror *entity.Transaction) error
	ListCrypto(ctx context.Context) ([]entity.CryptoTransaction, error)
}
