package service

import (
	"context"
	"fmt"

	"github.com/openstock/openstock-api/internal/domain/entity"
	"github.com/openstock/openstock-api/internal/domain/enum"
	"github.com/openstock/openstock-api/internal/domain/repository"
	"github.com/openstock/openstock-api/pkg/apperror"
	"github.com/openstock/openstock-api/pkg/identifier"
)

// ledgerCurrency is the base currency every mirrored ledger row is kept in.
const ledgerCurrency = "GHS"

// FinanceService handles the transactions ledger and the three specialized
// transaction kinds, mirroring each specialized insert onto the ledger.
type FinanceService struct {
	financeRepo repository.FinanceRepository
}

// NewFinanceService creates a new finance service
func NewFinanceService(financeRepo repository.FinanceRepository) *FinanceService {
	return &FinanceService{financeRepo: financeRepo}
}

// CreateTransactionInput represents a direct ledger entry
type CreateTransactionInput struct {
	Type         enum.TransactionType
	BusinessLine enum.BusinessLine
	Description  string
	Amount       float64
	Currency     string
	Reference    *string
	Notes        *string
}

// CreateTransaction inserts a ledger row directly
func (s *FinanceService) CreateTransaction(ctx context.Context, input *CreateTransactionInput) (*entity.Transaction, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewBadRequestError("Invalid transaction type")
	}
	if !input.BusinessLine.Valid() {
		return nil, apperror.NewBadRequestError("Invalid business line")
	}

	currency := input.Currency
	if currency == "" {
		currency = ledgerCurrency
	}

	txn := &entity.Transaction{
		ID:           identifier.New("txn"),
		Type:         input.Type,
		BusinessLine: input.BusinessLine,
		Description:  input.Description,
		Amount:       input.Amount,
		Currency:     currency,
		Reference:    input.Reference,
		Notes:        input.Notes,
	}

	if err := s.financeRepo.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// ListTransactions returns the ledger, optionally filtered by business line
func (s *FinanceService) ListTransactions(ctx context.Context, line *enum.BusinessLine) ([]entity.Transaction, error) {
	return s.financeRepo.ListTransactions(ctx, line, 0)
}

// DeleteTransaction removes a ledger row
func (s *FinanceService) DeleteTransaction(ctx context.Context, id string) error {
	txn, err := s.financeRepo.GetTransaction(ctx, id)
	if err != nil {
		return err
	}
	if txn == nil {
		return apperror.NewNotFoundError("Transaction")
	}
	return s.financeRepo.DeleteTransaction(ctx, id)
}

// CreateCrossBorderInput represents a cross-border transaction. ProfitGHS
// is precomputed by the caller, who knows the conversion.
type CreateCrossBorderInput struct {
	Direction        string
	Description      string
	SentAmount       float64
	SentCurrency     string
	ReceivedAmount   float64
	ReceivedCurrency string
	ExchangeRate     float64
	Fees             float64
	OtherCosts       float64
	ProfitGHS        float64
	CustomerName     *string
	Reference        *string
	Status           enum.TransactionStatus
	Notes            *string
}

// CreateCrossBorder inserts a cross-border transaction and its mirrored
// ledger row (type in, amount = profit, currency GHS) atomically.
func (s *FinanceService) CreateCrossBorder(ctx context.Context, input *CreateCrossBorderInput) (*entity.CrossBorderTransaction, error) {
	status := input.Status
	if status == "" {
		status = enum.TxnCompleted
	}

	cb := &entity.CrossBorderTransaction{
		ID:               identifier.New("cb"),
		Direction:        input.Direction,
		Description:      input.Description,
		SentAmount:       input.SentAmount,
		SentCurrency:     input.SentCurrency,
		ReceivedAmount:   input.ReceivedAmount,
		ReceivedCurrency: input.ReceivedCurrency,
		ExchangeRate:     input.ExchangeRate,
		Fees:             input.Fees,
		OtherCosts:       input.OtherCosts,
		ProfitGHS:        input.ProfitGHS,
		CustomerName:     input.CustomerName,
		Reference:        input.Reference,
		Status:           status,
		Notes:            input.Notes,
	}

	notes := fmt.Sprintf("%s | Sent: %v %s → Received: %v %s",
		input.Direction, input.SentAmount, input.SentCurrency,
		input.ReceivedAmount, input.ReceivedCurrency)
	mirror := &entity.Transaction{
		ID:           identifier.New("txn"),
		Type:         enum.TransactionIn,
		BusinessLine: enum.LineCrossBorder,
		Description:  "Cross-border: " + input.Description,
		Amount:       input.ProfitGHS,
		Currency:     ledgerCurrency,
		Reference:    input.Reference,
		Notes:        &notes,
	}

	if err := s.financeRepo.CreateCrossBorder(ctx, cb, mirror); err != nil {
		return nil, err
	}
	return cb, nil
}

// ListCrossBorder lists cross-border transactions newest-first
func (s *FinanceService) ListCrossBorder(ctx context.Context) ([]entity.CrossBorderTransaction, error) {
	return s.financeRepo.ListCrossBorder(ctx)
}

// CreateForexInput represents a USD<->GHS deal
type CreateForexInput struct {
	Type         enum.TradeSide
	USDAmount    float64
	GHSAmount    float64
	ExchangeRate float64
	MarketRate   *float64
	ProfitGHS    float64
	CustomerName *string
	Reference    *string
	Status       enum.TransactionStatus
	Notes        *string
}

// CreateForex inserts a forex transaction and its mirrored ledger row
// (amount = cedi leg, in when selling USD) atomically.
func (s *FinanceService) CreateForex(ctx context.Context, input *CreateForexInput) (*entity.ForexTransaction, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewBadRequestError("Invalid trade side")
	}

	status := input.Status
	if status == "" {
		status = enum.TxnCompleted
	}

	fx := &entity.ForexTransaction{
		ID:           identifier.New("fx"),
		Type:         input.Type,
		USDAmount:    input.USDAmount,
		GHSAmount:    input.GHSAmount,
		ExchangeRate: input.ExchangeRate,
		MarketRate:   input.MarketRate,
		ProfitGHS:    input.ProfitGHS,
		CustomerName: input.CustomerName,
		Reference:    input.Reference,
		Status:       status,
		Notes:        input.Notes,
	}

	mirror := &entity.Transaction{
		ID:           identifier.New("txn"),
		Type:         mirrorType(input.Type),
		BusinessLine: enum.LineForex,
		Description:  fmt.Sprintf("Forex %s: $%v USD @ %v", input.Type, input.USDAmount, input.ExchangeRate),
		Amount:       input.GHSAmount,
		Currency:     ledgerCurrency,
		Reference:    input.Reference,
	}

	if err := s.financeRepo.CreateForex(ctx, fx, mirror); err != nil {
		return nil, err
	}
	return fx, nil
}

// ListForex lists forex transactions newest-first
func (s *FinanceService) ListForex(ctx context.Context) ([]entity.ForexTransaction, error) {
	return s.financeRepo.ListForex(ctx)
}

// CreateCryptoInput represents a coin buy/sell settled in cedis
type CreateCryptoInput struct {
	Type            enum.TradeSide
	Coin            string
	CoinAmount      float64
	UnitPrice       float64
	TotalGHS        float64
	BuyPricePerUnit *float64
	ProfitGHS       float64
	CustomerName    *string
	Reference       *string
	Status          enum.TransactionStatus
	Notes           *string
}

// CreateCrypto inserts a crypto transaction and its mirrored ledger row
// (amount = total cedis, in when selling the coin) atomically.
func (s *FinanceService) CreateCrypto(ctx context.Context, input *CreateCryptoInput) (*entity.CryptoTransaction, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewBadRequestError("Invalid trade side")
	}

	status := input.Status
	if status == "" {
		status = enum.TxnCompleted
	}

	cr := &entity.CryptoTransaction{
		ID:              identifier.New("cry"),
		Type:            input.Type,
		Coin:            input.Coin,
		CoinAmount:      input.CoinAmount,
		UnitPrice:       input.UnitPrice,
		TotalGHS:        input.TotalGHS,
		BuyPricePerUnit: input.BuyPricePerUnit,
		ProfitGHS:       input.ProfitGHS,
		CustomerName:    input.CustomerName,
		Reference:       input.Reference,
		Status:          status,
		Notes:           input.Notes,
	}

	mirror := &entity.Transaction{
		ID:           identifier.New("txn"),
		Type:         mirrorType(input.Type),
		BusinessLine: enum.LineCrypto,
		Description:  fmt.Sprintf("Crypto %s: %v %s @ GHS %v", input.Type, input.CoinAmount, input.Coin, input.UnitPrice),
		Amount:       input.TotalGHS,
		Currency:     ledgerCurrency,
		Reference:    input.Reference,
	}

	if err := s.financeRepo.CreateCrypto(ctx, cr, mirror); err != nil {
		return nil, err
	}
	return cr, nil
}

// ListCrypto lists crypto transactions newest-first
func (s *FinanceService) ListCrypto(ctx context.Context) ([]entity.CryptoTransaction, error) {
	return s.financeRepo.ListCrypto(ctx)
}

// mirrorType maps a trade side onto a ledger direction: selling brings
// cedis in, buying sends them out.
func mirrorType(side enum.TradeSide) enum.TransactionType {
	if side == enum.TradeSell {
		return enum.TransactionIn
	}
	return enum.TransactionOut
}

// LineTotals aggregates ledger ins and outs for one business line.
type LineTotals struct {
	TotalIn  float64 `json:"totalIn"`
	TotalOut float64 `json:"totalOut"`
	Net      float64 `json:"net"`
}

// ProfitTotals aggregates realized profit per specialized kind.
type ProfitTotals struct {
	CrossBorder float64 `json:"crossBorder"`
	Forex       float64 `json:"forex"`
	Crypto      float64 `json:"crypto"`
	Total       float64 `json:"total"`
}

// TransactionCounts reports row counts per table.
type TransactionCounts struct {
	CrossBorder int `json:"crossBorder"`
	Forex       int `json:"forex"`
	Crypto      int `json:"crypto"`
	Total       int `json:"total"`
}

// FinanceSummary is the read-time aggregation over the whole finance store.
// Nothing is cached; every call rescans the ledger.
type FinanceSummary struct {
	Summary            map[string]*LineTotals `json:"summary"`
	Profits            ProfitTotals           `json:"profits"`
	RecentTransactions []entity.Transaction   `json:"recentTransactions"`
	Counts             TransactionCounts      `json:"counts"`
}

// Summary aggregates per-line totals, per-kind realized profit, recent
// ledger activity and row counts.
func (s *FinanceService) Summary(ctx context.Context) (*FinanceSummary, error) {
	ledger, err := s.financeRepo.ListTransactions(ctx, nil, 0)
	if err != nil {
		return nil, err
	}

	summary := map[string]*LineTotals{"overall": {}}
	for _, line := range enum.BusinessLines {
		summary[string(line)] = &LineTotals{}
	}

	for _, txn := range ledger {
		totals, ok := summary[string(txn.BusinessLine)]
		if !ok {
			continue
		}
		if txn.Type == enum.TransactionIn {
			totals.TotalIn += txn.Amount
			summary["overall"].TotalIn += txn.Amount
		} else {
			totals.TotalOut += txn.Amount
			summary["overall"].TotalOut += txn.Amount
		}
	}
	for _, totals := range summary {
		totals.Net = totals.TotalIn - totals.TotalOut
	}

	crossBorder, err := s.financeRepo.ListCrossBorder(ctx)
	if err != nil {
		return nil, err
	}
	forex, err := s.financeRepo.ListForex(ctx)
	if err != nil {
		return nil, err
	}
	crypto, err := s.financeRepo.ListCrypto(ctx)
	if err != nil {
		return nil, err
	}

	var profits ProfitTotals
	for _, t := range crossBorder {
		profits.CrossBorder += t.ProfitGHS
	}
	for _, t := range forex {
		profits.Forex += t.ProfitGHS
	}
	for _, t := range crypto {
		profits.Crypto += t.ProfitGHS
	}
	profits.Total = profits.CrossBorder + profits.Forex + profits.Crypto

	recent, err := s.financeRepo.ListTransactions(ctx, nil, 10)
	if err != nil {
		return nil, err
	}

	return &FinanceSummary{
		Summary:            summary,
		Profits:            profits,
		RecentTransactions: recent,
		Counts: TransactionCounts{
			CrossBorder: len(crossBorder),
			Forex:       len(forex),
			Crypto:      len(crypto),
			Total:       len(ledger),
		},
	}, nil
}
