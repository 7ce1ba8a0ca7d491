package entity

import (
	"time"

	"github.com/openstock/openstock-api/internal/domain/enum"
)

// CrossBorderTransaction is one Nigeria<->Ghana exchange. ProfitGHS is
// supplied by the caller who knows the conversion; every insert mirrors a
// single "in" row onto the shared ledger.
type CrossBorderTransaction struct {
	ID               string                 `gorm:"size:64;primaryKey" json:"id"`
	Direction        string                 `gorm:"size:20;not null" json:"direction"`
	Description      string                 `gorm:"size:500;not null" json:"description"`
	SentAmount       float64                `gorm:"not null" json:"sent_amount"`
	SentCurrency     string                 `gorm:"size:10;not null" json:"sent_currency"`
	ReceivedAmount   float64                `gorm:"not null" json:"received_amount"`
	ReceivedCurrency string                 `gorm:"size:10;not null" json:"received_currency"`
	ExchangeRate     float64                `gorm:"not null" json:"exchange_rate"`
	Fees             float64                `gorm:"default:0" json:"fees"`
	OtherCosts       float64                `gorm:"default:0" json:"other_costs"`
	ProfitGHS        float64                `gorm:"column:profit_ghs;not null" json:"profit_ghs"`
	CustomerName     *string                `gorm:"size:255" json:"customer_name,omitempty"`
	Reference        *string                `gorm:"size:100" json:"reference,omitempty"`
	Status           enum.TransactionStatus `gorm:"size:20;default:completed" json:"status"`
	Notes            *string                `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

func (CrossBorderTransaction) TableName() string {
	return "cross_border_transactions"
}

// ForexTransaction is one USD<->GHS deal. Selling USD brings cedis in,
// buying sends them out; the mirrored ledger row follows that direction.
type ForexTransaction struct {
	ID           string                 `gorm:"size:64;primaryKey" json:"id"`
	Type         enum.TradeSide         `gorm:"size:10;not null" json:"type"`
	USDAmount    float64                `gorm:"column:usd_amount;not null" json:"usd_amount"`
	GHSAmount    float64                `gorm:"column:ghs_amount;not null" json:"ghs_amount"`
	ExchangeRate float64                `gorm:"not null" json:"exchange_rate"`
	MarketRate   *float64               `json:"market_rate,omitempty"`
	ProfitGHS    float64                `gorm:"column:profit_ghs;default:0" json:"profit_ghs"`
	CustomerName *string                `gorm:"size:255" json:"customer_name,omitempty"`
	Reference    *string                `gorm:"size:100" json:"reference,omitempty"`
	Status       enum.TransactionStatus `gorm:"size:20;default:completed" json:"status"`
	Notes        *string                `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func (ForexTransaction) TableName() string {
	return "forex_transactions"
}

// CryptoTransaction is one coin buy/sell settled in cedis.
type CryptoTransaction struct {
	ID              string                 `gorm:"size:64;primaryKey" json:"id"`
	Type            enum.TradeSide         `gorm:"size:10;not null" json:"type"`
	Coin            string                 `gorm:"size:20;not null" json:"coin"`
	CoinAmount      float64                `gorm:"not null" json:"coin_amount"`
	UnitPrice       float64                `gorm:"not null" json:"unit_price"`
	TotalGHS        float64                `gorm:"column:total_ghs;not null" json:"total_ghs"`
	BuyPricePerUnit *float64               `json:"buy_price_per_unit,omitempty"`
	ProfitGHS       float64                `gorm:"column:profit_ghs;default:0" json:"profit_ghs"`
	CustomerName    *string                `gorm:"size:255" json:"customer_name,omitempty"`
	Reference       *string                `gorm:"size:100" json:"reference,omitempty"`
	Status          enum.TransactionStatus `gorm:"size:20;default:completed" json:"status"`
	Notes           *string                `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func (CryptoTransaction) TableName() string {
	return "crypto_transactions"
}
