package enum

// TransactionType is the direction of a ledger entry.
type TransactionType string

const (
	TransactionIn  TransactionType = "in"
	TransactionOut TransactionType = "out"
)

func (t TransactionType) Valid() bool {
	return t == TransactionIn || t == TransactionOut
}

// BusinessLine partitions the ledger by financial activity.
type BusinessLine string

const (
	LineAppliance   BusinessLine = "appliance"
	LineCrossBorder BusinessLine = "cross_border"
	LineForex       BusinessLine = "forex"
	LineCrypto      BusinessLine = "crypto"
)

// BusinessLines lists every line in reporting order.
var BusinessLines = []BusinessLine{LineAppliance, LineCrossBorder, LineForex, LineCrypto}

func (l BusinessLine) Valid() bool {
	switch l {
	case LineAppliance, LineCrossBorder, LineForex, LineCrypto:
		return true
	}
	return false
}

// TradeSide is the buy/sell side of a forex or crypto deal.
type TradeSide string

const (
	TradeBuy  TradeSide = "buy"
	TradeSell TradeSide = "sell"
)

func (s TradeSide) Valid() bool {
	return s == TradeBuy || s == TradeSell
}

// TransactionStatus is the lifecycle state of a specialized transaction.
type TransactionStatus string

const (
	TxnPending   TransactionStatus = "pending"
	TxnCompleted TransactionStatus = "completed"
	TxnCancelled TransactionStatus = "cancelled"
)
