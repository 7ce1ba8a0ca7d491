package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstock/openstock-api/internal/domain/entity"
	"github.com/openstock/openstock-api/internal/domain/enum"
)

type stubFinanceRepo struct {
	ledger      []*entity.Transaction
	crossBorder []*entity.CrossBorderTransaction
	forex       []*entity.ForexTransaction
	crypto      []*entity.CryptoTransaction
}

func (r *stubFinanceRepo) CreateTransaction(_ context.Context, txn *entity.Transaction) error {
	r.ledger = append(r.ledger, txn)
	return nil
}

func (r *stubFinanceRepo) GetTransaction(_ context.Context, id string) (*entity.Transaction, error) {
	for _, txn := range r.ledger {
		if txn.ID == id {
			return txn, nil
		}
	}
	return nil, nil
}

func (r *stubFinanceRepo) DeleteTransaction(_ context.Context, id string) error {
	for i, txn := range r.ledger {
		if txn.ID == id {
			r.ledger = append(r.ledger[:i], r.ledger[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stubFinanceRepo) ListTransactions(_ context.Context, line *enum.BusinessLine, limit int) ([]entity.Transaction, error) {
	var out []entity.Transaction
	for _, txn := range r.ledger {
		if line != nil && txn.BusinessLine != *line {
			continue
		}
		out = append(out, *txn)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *stubFinanceRepo) CreateCrossBorder(_ context.Context, cb *entity.CrossBorderTransaction, mirror *entity.Transaction) error {
	r.crossBorder = append(r.crossBorder, cb)
	r.ledger = append(r.ledger, mirror)
	return nil
}

func (r *stubFinanceRepo) ListCrossBorder(_ context.Context) ([]entity.CrossBorderTransaction, error) {
	out := make([]entity.CrossBorderTransaction, 0, len(r.crossBorder))
	for _, t := range r.crossBorder {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubFinanceRepo) CreateForex(_ context.Context, fx *entity.ForexTransaction, mirror *entity.Transaction) error {
	r.forex = append(r.forex, fx)
	r.ledger = append(r.ledger, mirror)
	return nil
}

func (r *stubFinanceRepo) ListForex(_ context.Context) ([]entity.ForexTransaction, error) {
	out := make([]entity.ForexTransaction, 0, len(r.forex))
	for _, t := range r.forex {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubFinanceRepo) CreateCrypto(_ context.Context, cr *entity.CryptoTransaction, mirror *entity.Transaction) error {
	r.crypto = append(r.crypto, cr)
	r.ledger = append(r.ledger, mirror)
	return nil
}

func (r *stubFinanceRepo) ListCrypto(_ context.Context) ([]entity.CryptoTransaction, error) {
	out := make([]entity.CryptoTransaction, 0, len(r.crypto))
	for _, t := range r.crypto {
		out = append(out, *t)
	}
	return out, nil
}

func TestCreateCrossBorderMirrorsProfit(t *testing.T) {
	repo := &stubFinanceRepo{}
	svc := NewFinanceService(repo)

	_, err := svc.CreateCrossBorder(context.Background(), &CreateCrossBorderInput{
		Direction:        "ghana_to_china",
		Description:      "Supplier payment",
		SentAmount:       10000,
		SentCurrency:     "GHS",
		ReceivedAmount:   5200,
		ReceivedCurrency: "CNY",
		ProfitGHS:        75,
	})
	require.NoError(t, err)

	require.Len(t, repo.ledger, 1)
	mirror := repo.ledger[0]
	assert.Equal(t, enum.TransactionIn, mirror.Type)
	assert.Equal(t, enum.LineCrossBorder, mirror.BusinessLine)
	assert.InDelta(t, 75.0, mirror.Amount, 0.001)
	assert.Equal(t, "GHS", mirror.Currency)
	assert.Equal(t, "Cross-border: Supplier payment", mirror.Description)
	require.NotNil(t, mirror.Notes)
	assert.Contains(t, *mirror.Notes, "Sent: 10000 GHS")
}

func TestCreateForexMirrorDirection(t *testing.T) {
	repo := &stubFinanceRepo{}
	svc := NewFinanceService(repo)

	_, err := svc.CreateForex(context.Background(), &CreateForexInput{
		Type:         enum.TradeSell,
		USDAmount:    1000,
		GHSAmount:    15500,
		ExchangeRate: 15.5,
	})
	require.NoError(t, err)

	_, err = svc.CreateForex(context.Background(), &CreateForexInput{
		Type:         enum.TradeBuy,
		USDAmount:    500,
		GHSAmount:    7700,
		ExchangeRate: 15.4,
	})
	require.NoError(t, err)

	require.Len(t, repo.ledger, 2)
	assert.Equal(t, enum.TransactionIn, repo.ledger[0].Type)
	assert.InDelta(t, 15500.0, repo.ledger[0].Amount, 0.001)
	assert.Equal(t, enum.TransactionOut, repo.ledger[1].Type)
	assert.InDelta(t, 7700.0, repo.ledger[1].Amount, 0.001)
	assert.Equal(t, "Forex sell: $1000 USD @ 15.5", repo.ledger[0].Description)
}

func TestCreateCryptoMirrorDirection(t *testing.T) {
	repo := &stubFinanceRepo{}
	svc := NewFinanceService(repo)

	_, err := svc.CreateCrypto(context.Background(), &CreateCryptoInput{
		Type:       enum.TradeSell,
		Coin:       "USDT",
		CoinAmount: 200,
		UnitPrice:  15.6,
		TotalGHS:   3120,
	})
	require.NoError(t, err)

	require.Len(t, repo.ledger, 1)
	mirror := repo.ledger[0]
	assert.Equal(t, enum.TransactionIn, mirror.Type)
	assert.Equal(t, enum.LineCrypto, mirror.BusinessLine)
	assert.InDelta(t, 3120.0, mirror.Amount, 0.001)
	assert.Equal(t, "Crypto sell: 200 USDT @ GHS 15.6", mirror.Description)
}

func TestCreateTransactionValidation(t *testing.T) {
	svc := NewFinanceService(&stubFinanceRepo{})

	_, err := svc.CreateTransaction(context.Background(), &CreateTransactionInput{
		Type:         "sideways",
		BusinessLine: enum.LineAppliance,
		Description:  "bad",
		Amount:       10,
	})
	require.Error(t, err)

	_, err = svc.CreateTransaction(context.Background(), &CreateTransactionInput{
		Type:         enum.TransactionIn,
		BusinessLine: "retail",
		Description:  "bad",
		Amount:       10,
	})
	require.Error(t, err)
}

func TestCreateTransactionDefaultsCurrency(t *testing.T) {
	repo := &stubFinanceRepo{}
	svc := NewFinanceService(repo)

	txn, err := svc.CreateTransaction(context.Background(), &CreateTransactionInput{
		Type:         enum.TransactionIn,
		BusinessLine: enum.LineAppliance,
		Description:  "Fridge sale",
		Amount:       2500,
	})
	require.NoError(t, err)
	assert.Equal(t, "GHS", txn.Currency)
}

func TestSummaryAggregates(t *testing.T) {
	repo := &stubFinanceRepo{}
	svc := NewFinanceService(repo)
	ctx := context.Background()

	_, err := svc.CreateTransaction(ctx, &CreateTransactionInput{
		Type:         enum.TransactionIn,
		BusinessLine: enum.LineAppliance,
		Description:  "Fridge sale",
		Amount:       2500,
	})
	require.NoError(t, err)

	_, err = svc.CreateTransaction(ctx, &CreateTransactionInput{
		Type:         enum.TransactionOut,
		BusinessLine: enum.LineAppliance,
		Description:  "Fridge restock",
		Amount:       1800,
	})
	require.NoError(t, err)

	_, err = svc.CreateCrossBorder(ctx, &CreateCrossBorderInput{
		Direction:        "ghana_to_china",
		Description:      "Supplier payment",
		SentAmount:       10000,
		SentCurrency:     "GHS",
		ReceivedAmount:   5200,
		ReceivedCurrency: "CNY",
		ProfitGHS:        75,
	})
	require.NoError(t, err)

	_, err = svc.CreateForex(ctx, &CreateForexInput{
		Type:         enum.TradeSell,
		USDAmount:    1000,
		GHSAmount:    15500,
		ExchangeRate: 15.5,
		ProfitGHS:    200,
	})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	appliance := summary.Summary["appliance"]
	require.NotNil(t, appliance)
	assert.InDelta(t, 2500.0, appliance.TotalIn, 0.001)
	assert.InDelta(t, 1800.0, appliance.TotalOut, 0.001)
	assert.InDelta(t, 700.0, appliance.Net, 0.001)

	overall := summary.Summary["overall"]
	require.NotNil(t, overall)
	assert.InDelta(t, 2500.0+75+15500, overall.TotalIn, 0.001)
	assert.InDelta(t, 1800.0, overall.TotalOut, 0.001)

	assert.InDelta(t, 75.0, summary.Profits.CrossBorder, 0.001)
	assert.InDelta(t, 200.0, summary.Profits.Forex, 0.001)
	assert.InDelta(t, 275.0, summary.Profits.Total, 0.001)

	assert.Equal(t, 1, summary.Counts.CrossBorder)
	assert.Equal(t, 1, summary.Counts.Forex)
	assert.Equal(t, 0, summary.Counts.Crypto)
	assert.Equal(t, 4, summary.Counts.Total)
}

func TestDeleteTransactionNotFound(t *testing.T) {
	svc := NewFinanceService(&stubFinanceRepo{})

	err := svc.DeleteTransaction(context.Background(), "txn_missing")
	require.Error(t, err)
}
