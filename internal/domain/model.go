package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Базовые доменные сущности

type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

type OrderType string

const (
	OrderTypeMarket    OrderType = "MARKET"
	OrderTypeLimit     OrderType = "LIMIT"
	OrderTypeStopLimit OrderType = "STOP_LIMIT"
)

// OrderRequest — провалидированная заявка. Инвариант: Price задан для
// LIMIT и STOP_LIMIT, StopPrice — только для STOP_LIMIT; у MARKET оба
// поля нулевые.
type OrderRequest struct {
	Symbol    string
	Side      Side
	Type      OrderType
	Quantity  decimal.Decimal
	Price     decimal.Decimal
	StopPrice decimal.Decimal
}

// OrderResult — ответ биржи как есть, без интерпретации.
type OrderResult struct {
	OrderID       int64
	ClientOrderID string
	Symbol        string
	Side          string
	Type          string
	Status        string
	OrigQuantity  string
	ExecutedQty   string
	Price         string
	StopPrice     string
	CumQuote      string
	UpdateTime    int64
}

// SymbolLimits — минимумы символа из фильтров LOT_SIZE и MIN_NOTIONAL.
type SymbolLimits struct {
	Symbol      string
	MinQty      decimal.Decimal
	StepSize    decimal.Decimal
	MinNotional decimal.Decimal
}

type Balance struct {
	Asset     string
	Balance   string
	Available string
}

type PriceLevel struct {
	Price    string
	Quantity string
}

type OrderBook struct {
	Symbol    string
	Timestamp int64
	Asks      []PriceLevel
	Bids      []PriceLevel
}

// Контракт адаптера биржи
type Exchange interface {
	Name() string
	PlaceOrder(ctx context.Context, req OrderRequest) (*OrderResult, error)
	SymbolLimits(ctx context.Context, symbol string) (*SymbolLimits, error)
	Balances(ctx context.Context) ([]Balance, error)
	OrderBook(ctx context.Context, symbol string, limit int) (*OrderBook, error)
	ServerTime(ctx context.Context) (int64, error)
}
