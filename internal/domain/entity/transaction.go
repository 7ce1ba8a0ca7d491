package entity

import (
	"time"

	"github.com/openstock/openstock-api/internal/domain/enum"
)

// Transaction is one row of the shared ins/outs ledger covering every
// business line. Rows are only ever inserted or deleted, never mutated.
type Transaction struct {
	ID           string               `gorm:"size:64;primaryKey" json:"id"`
	Type         enum.TransactionType `gorm:"size:10;not null" json:"type"`
	BusinessLine enum.BusinessLine    `gorm:"size:20;not null;index" json:"business_line"`
	Description  string               `gorm:"size:500;not null" json:"description"`
	Amount       float64              `gorm:"not null" json:"amount"`
	Currency     string               `gorm:"size:10;default:GHS" json:"currency"`
	Reference    *string              `gorm:"size:100" json:"reference,omitempty"`
	Notes        *string              `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
