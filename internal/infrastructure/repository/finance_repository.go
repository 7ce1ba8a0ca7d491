package repository

import (
	"context"
	"errors"

	"github.com/openstock/openstock-api/internal/domain/entity"
	"github.com/openstock/openstock-api/internal/domain/enum"
	domainRepo "github.com/openstock/openstock-api/internal/domain/repository"
	"gorm.io/gorm"
)

type financeRepository struct {
	db *gorm.DB
}

// NewFinanceRepository creates a new finance repository
func NewFinanceRepository(db *gorm.DB) domainRepo.FinanceRepository {
	return &financeRepository{db: db}
}

func (r *financeRepository) CreateTransaction(ctx context.Context, txn *entity.Transaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *financeRepository) GetTransaction(ctx context.Context, id string) (*entity.Transaction, error) {
	var txn entity.Transaction
	err := r.db.WithContext(ctx).First(&txn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &txn, err
}

func (r *financeRepository) DeleteTransaction(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Transaction{}, "id = ?", id).Error
}

func (r *financeRepository) ListTransactions(ctx context.Context, line *enum.BusinessLine, limit int) ([]entity.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&entity.Transaction{})
	if line != nil {
		query = query.Where("business_line = ?", *line)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var txns []entity.Transaction
	err := query.Order("created_at DESC").Find(&txns).Error
	return txns, err
}

// CreateCrossBorder inserts the cross-border transaction and its mirrored
// ledger row in one transaction; a crash can never leave one without the
// other.
func (r *financeRepository) CreateCrossBorder(ctx context.Context, cb *entity.CrossBorderTransaction, mirror *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cb).Error; err != nil {
			return err
		}
		return tx.Create(mirror).Error
	})
}

func (r *financeRepository) ListCrossBorder(ctx context.Context) ([]entity.CrossBorderTransaction, error) {
	var txns []entity.CrossBorderTransaction
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&txns).Error
	return txns, err
}

func (r *financeRepository) CreateForex(ctx context.Context, fx *entity.ForexTransaction, mirror *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(fx).Error; err != nil {
			return err
		}
		return tx.Create(mirror).Error
	})
}

func (r *financeRepository) ListForex(ctx context.Context) ([]entity.ForexTransaction, error) {
	var txns []entity.ForexTransaction
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&txns).Error
	return txns, err
}

func (r *financeRepository) CreateCrypto(ctx context.Context, cr *entity.CryptoTransaction, mirror *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cr).Error; err != nil {
			return err
		}
		return tx.Create(mirror).Error
	})
}

func (r *financeRepository) ListCrypto(ctx context.Context) ([]entity.CryptoTransaction, error) {
	var txns []entity.CryptoTransaction
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&txns).Error
	return txns, err
}
