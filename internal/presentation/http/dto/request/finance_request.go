package request

// CreateTransactionRequest represents a direct ledger entry
type CreateTransactionRequest struct {
	Type         string  `json:"type" binding:"required"`
	BusinessLine string  `json:"business_line" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Amount       float64 `json:"amount" binding:"min=0"`
	Currency     string  `json:"currency"`
	Reference    *string `json:"reference"`
	Notes        *string `json:"notes"`
}

// CreateCrossBorderRequest represents a cross-border transaction
type CreateCrossBorderRequest struct {
	Direction        string  `json:"direction" binding:"required"`
	Description      string  `json:"description" binding:"required"`
	SentAmount       float64 `json:"sent_amount" binding:"min=0"`
	SentCurrency     string  `json:"sent_currency" binding:"required"`
	ReceivedAmount   float64 `json:"received_amount" binding:"min=0"`
	ReceivedCurrency string  `json:"received_currency" binding:"required"`
	ExchangeRate     float64 `json:"exchange_rate"`
	Fees             float64 `json:"fees"`
	OtherCosts       float64 `json:"other_costs"`
	ProfitGHS        float64 `json:"profit_ghs"`
	CustomerName     *string `json:"customer_name"`
	Reference        *string `json:"reference"`
	Status           string  `json:"status"`
	Notes            *string `json:"notes"`
}

// CreateForexRequest represents a USD/GHS deal
type CreateForexRequest struct {
	Type         string   `json:"type" binding:"required"`
	USDAmount    float64  `json:"usd_amount" binding:"min=0"`
	GHSAmount    float64  `json:"ghs_amount" binding:"min=0"`
	ExchangeRate float64  `json:"exchange_rate" binding:"min=0"`
	MarketRate   *float64 `json:"market_rate"`
	ProfitGHS    float64  `json:"profit_ghs"`
	CustomerName *string  `json:"customer_name"`
	Reference    *string  `json:"reference"`
	Status       string   `json:"status"`
	Notes        *string  `json:"notes"`
}

// CreateCryptoRequest represents a coin trade settled in cedis
type CreateCryptoRequest struct {
	Type            string   `json:"type" binding:"required"`
	Coin            string   `json:"coin" binding:"required"`
	CoinAmount      float64  `json:"coin_amount" binding:"min=0"`
	UnitPrice       float64  `json:"unit_price" binding:"min=0"`
	TotalGHS        float64  `json:"total_ghs" binding:"min=0"`
	BuyPricePerUnit *float64 `json:"buy_price_per_unit"`
	ProfitGHS       float64  `json:"profit_ghs"`
	CustomerName    *string  `json:"customer_name"`
	Reference       *string  `json:"reference"`
	Status          string   `json:"status"`
	Notes           *string  `json:"notes"`
}
