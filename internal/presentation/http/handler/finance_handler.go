package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/openstock/openstock-api/internal/application/service"
	"github.com/openstock/openstock-api/internal/domain/enum"
	"github.com/openstock/openstock-api/internal/presentation/http/dto/request"
	"github.com/openstock/openstock-api/internal/presentation/http/dto/response"
)

// FinanceHandler handles ledger and specialized transaction HTTP requests
type FinanceHandler struct {
	financeService *service.FinanceService
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(financeService *service.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// ListTransactions handles listing the ledger
func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	var line *enum.BusinessLine
	if raw := c.Query("business_line"); raw != "" {
		bl := enum.BusinessLine(raw)
		if !bl.Valid() {
			response.BadRequest(c, "Invalid business line")
			return
		}
		line = &bl
	}

	transactions, err := h.financeService.ListTransactions(c.Request.Context(), line)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transactions retrieved successfully", transactions)
}

// CreateTransaction handles creating a direct ledger entry
func (h *FinanceHandler) CreateTransaction(c *gin.Context) {
	var req request.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	txn, err := h.financeService.CreateTransaction(c.Request.Context(), &service.CreateTransactionInput{
		Type:         enum.TransactionType(req.Type),
		BusinessLine: enum.BusinessLine(req.BusinessLine),
		Description:  req.Description,
		Amount:       req.Amount,
		Currency:     req.Currency,
		Reference:    req.Reference,
		Notes:        req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction created successfully", txn)
}

// DeleteTransaction handles deleting a ledger entry
func (h *FinanceHandler) DeleteTransaction(c *gin.Context) {
	if err := h.financeService.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListCrossBorder handles listing cross-border transactions
func (h *FinanceHandler) ListCrossBorder(c *gin.Context) {
	transactions, err := h.financeService.ListCrossBorder(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cross-border transactions retrieved successfully", transactions)
}

// CreateCrossBorder handles creating a cross-border transaction
func (h *FinanceHandler) CreateCrossBorder(c *gin.Context) {
	var req request.CreateCrossBorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	txn, err := h.financeService.CreateCrossBorder(c.Request.Context(), &service.CreateCrossBorderInput{
		Direction:        req.Direction,
		Description:      req.Description,
		SentAmount:       req.SentAmount,
		SentCurrency:     req.SentCurrency,
		ReceivedAmount:   req.ReceivedAmount,
		ReceivedCurrency: req.ReceivedCurrency,
		ExchangeRate:     req.ExchangeRate,
		Fees:             req.Fees,
		OtherCosts:       req.OtherCosts,
		ProfitGHS:        req.ProfitGHS,
		CustomerName:     req.CustomerName,
		Reference:        req.Reference,
		Status:           enum.TransactionStatus(req.Status),
		Notes:            req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cross-border transaction created successfully", txn)
}

// ListForex handles listing forex transactions
func (h *FinanceHandler) ListForex(c *gin.Context) {
	transactions, err := h.financeService.ListForex(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Forex transactions retrieved successfully", transactions)
}

// CreateForex handles creating a forex transaction
func (h *FinanceHandler) CreateForex(c *gin.Context) {
	var req request.CreateForexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	txn, err := h.financeService.CreateForex(c.Request.Context(), &service.CreateForexInput{
		Type:         enum.TradeSide(req.Type),
		USDAmount:    req.USDAmount,
		GHSAmount:    req.GHSAmount,
		ExchangeRate: req.ExchangeRate,
		MarketRate:   req.MarketRate,
		ProfitGHS:    req.ProfitGHS,
		CustomerName: req.CustomerName,
		Reference:    req.Reference,
		Status:       enum.TransactionStatus(req.Status),
		Notes:        req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Forex transaction created successfully", txn)
}

// ListCrypto handles listing crypto transactions
func (h *FinanceHandler) ListCrypto(c *gin.Context) {
	transactions, err := h.financeService.ListCrypto(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Crypto transactions retrieved successfully", transactions)
}

// CreateCrypto handles creating a crypto transaction
func (h *FinanceHandler) CreateCrypto(c *gin.Context) {
	var req request.CreateCryptoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	txn, err := h.financeService.CreateCrypto(c.Request.Context(), &service.CreateCryptoInput{
		Type:            enum.TradeSide(req.Type),
		Coin:            req.Coin,
		CoinAmount:      req.CoinAmount,
		UnitPrice:       req.UnitPrice,
		TotalGHS:        req.TotalGHS,
		BuyPricePerUnit: req.BuyPricePerUnit,
		ProfitGHS:       req.ProfitGHS,
		CustomerName:    req.CustomerName,
		Reference:       req.Reference,
		Status:          enum.TransactionStatus(req.Status),
		Notes:           req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Crypto transaction created successfully", txn)
}

// Summary handles the finance overview
func (h *FinanceHandler) Summary(c *gin.Context) {
	summary, err := h.financeService.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Finance summary retrieved successfully", summary)
}
