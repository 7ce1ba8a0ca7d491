package request

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMovementRequestBindsZeroQuantity(t *testing.T) {
	var req CreateMovementRequest
	body := []byte(`{"product_id":"prod_1","type":"adjustment","quantity":0}`)

	err := binding.JSON.BindBody(body, &req)
	require.NoError(t, err)
	require.NotNil(t, req.Quantity)
	assert.Equal(t, 0, *req.Quantity)
}

func TestCreateMovementRequestRejectsMissingQuantity(t *testing.T) {
	var req CreateMovementRequest
	body := []byte(`{"product_id":"prod_1","type":"in"}`)

	err := binding.JSON.BindBody(body, &req)
	require.Error(t, err)
}

func TestCreateTransactionRequestBindsZeroAmount(t *testing.T) {
	var req CreateTransactionRequest
	body := []byte(`{"type":"in","business_line":"general","description":"Correction","amount":0}`)

	err := binding.JSON.BindBody(body, &req)
	require.NoError(t, err)
	assert.Zero(t, req.Amount)
}

func TestCreateTransactionRequestRejectsNegativeAmount(t *testing.T) {
	var req CreateTransactionRequest
	body := []byte(`{"type":"in","business_line":"general","description":"Bad","amount":-5}`)

	err := binding.JSON.BindBody(body, &req)
	require.Error(t, err)
}

func TestCreateCrossBorderRequestBindsZeroLegs(t *testing.T) {
	var req CreateCrossBorderRequest
	body := []byte(`{"direction":"outbound","description":"Transfer","sent_amount":0,"sent_currency":"GHS","received_amount":0,"received_currency":"USD"}`)

	err := binding.JSON.BindBody(body, &req)
	require.NoError(t, err)
	assert.Zero(t, req.SentAmount)
	assert.Zero(t, req.Fees)
}

func TestCreateForexRequestBindsZeroAmounts(t *testing.T) {
	var req CreateForexRequest
	body := []byte(`{"type":"sell","usd_amount":0,"ghs_amount":0,"exchange_rate":0}`)

	err := binding.JSON.BindBody(body, &req)
	require.NoError(t, err)
}

func TestCreateCryptoRequestBindsZeroAmounts(t *testing.T) {
	var req CreateCryptoRequest
	body := []byte(`{"type":"buy","coin":"BTC","coin_amount":0,"unit_price":0,"total_ghs":0}`)

	err := binding.JSON.BindBody(body, &req)
	require.NoError(t, err)
}
