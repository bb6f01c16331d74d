package binanceadapter

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/adshao/go-binance/v2/futures"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pragyajhaa/apex/internal/domain"
	"github.com/pragyajhaa/apex/internal/shared/retry"
)

// Credentials — ключи USDT-M фьючерсного тестнета.
type Credentials struct {
	APIKey    string
	APISecret string
}

type FuturesExchange struct {
	client *futures.Client
}

// New создаёт адаптер тестнета. Подпись запросов, лимиты и транспорт —
// целиком на стороне go-binance.
func New(creds Credentials) *FuturesExchange {
	futures.UseTestnet = true
	client := futures.NewClient(creds.APIKey, creds.APISecret)
	// Чуть мягче таймаут: не висим долго, но и не рвём слишком быстро
	client.HTTPClient = &http.Client{Timeout: 7 * time.Second}
	return &FuturesExchange{client: client}
}

func (b *FuturesExchange) Name() string { return "Binance Futures Testnet" }

// PlaceOrder — ровно один вызов создания заявки, без повторов:
// повтор мог бы выставить заявку дважды.
func (b *FuturesExchange) PlaceOrder(ctx context.Context, req domain.OrderRequest) (*domain.OrderResult, error) {
	svc := b.client.NewCreateOrderService().
		Symbol(req.Symbol).
		Side(futures.SideType(req.Side)).
		Quantity(req.Quantity.String()).
		NewClientOrderID(uuid.NewString())

	switch req.Type {
	case domain.OrderTypeMarket:
		svc.Type(futures.OrderTypeMarket)
	case domain.OrderTypeLimit:
		svc.Type(futures.OrderTypeLimit).
			TimeInForce(futures.TimeInForceTypeGTC).
			Price(req.Price.String())
	case domain.OrderTypeStopLimit:
		// У Binance стоп-лимит называется STOP
		svc.Type(futures.OrderTypeStop).
			TimeInForce(futures.TimeInForceTypeGTC).
			Price(req.Price.String()).
			StopPrice(req.StopPrice.String())
	default:
		return nil, fmt.Errorf("binance: unsupported order type %q", req.Type)
	}

	res, err := svc.Do(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.OrderResult{
		OrderID:       res.OrderID,
		ClientOrderID: res.ClientOrderID,
		Symbol:        res.Symbol,
		Side:          string(res.Side),
		Type:          string(res.Type),
		Status:        string(res.Status),
		OrigQuantity:  res.OrigQuantity,
		ExecutedQty:   res.ExecutedQuantity,
		Price:         res.Price,
		StopPrice:     res.StopPrice,
		CumQuote:      res.CumQuote,
		UpdateTime:    res.UpdateTime,
	}, nil
}

// SymbolLimits достаёт фильтры LOT_SIZE и MIN_NOTIONAL из exchange info.
// Чтение — можно и повторить.
func (b *FuturesExchange) SymbolLimits(ctx context.Context, symbol string) (*domain.SymbolLimits, error) {
	var info *futures.ExchangeInfo
	err := retry.WithRetry(2, 500*time.Millisecond, func() error {
		rctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		var err error
		info, err = b.client.NewExchangeInfoService().Do(rctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("binance: exchange info: %w", err)
	}

	for _, s := range info.Symbols {
		if s.Symbol != symbol || s.Status != "TRADING" {
			continue
		}
		limits := &domain.SymbolLimits{Symbol: symbol}
		if f := s.LotSizeFilter(); f != nil {
			limits.MinQty = parseDecimal(f.MinQuantity)
			limits.StepSize = parseDecimal(f.StepSize)
		}
		if f := s.MinNotionalFilter(); f != nil {
			limits.MinNotional = parseDecimal(f.Notional)
		}
		return limits, nil
	}
	return nil, fmt.Errorf("binance: symbol %s is not trading on the testnet", symbol)
}

// Balances — балансы фьючерсного кошелька; используется и как проба
// соединения при старте.
func (b *FuturesExchange) Balances(ctx context.Context) ([]domain.Balance, error) {
	rctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	raw, err := b.client.NewGetBalanceService().Do(rctx)
	if err != nil {
		return nil, fmt.Errorf("binance: balance: %w", err)
	}
	out := make([]domain.Balance, 0, len(raw))
	for _, r := range raw {
		out = append(out, domain.Balance{
			Asset:     r.Asset,
			Balance:   r.Balance,
			Available: r.AvailableBalance,
		})
	}
	return out, nil
}

func (b *FuturesExchange) OrderBook(ctx context.Context, symbol string, limit int) (*domain.OrderBook, error) {
	var depth *futures.DepthResponse
	// 2 попытки по 5s — компромисс между скоростью и стабильностью
	err := retry.WithRetry(2, 500*time.Millisecond, func() error {
		rctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		var err error
		depth, err = b.client.NewDepthService().Symbol(symbol).Limit(ClampDepthLimit(limit)).Do(rctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("binance: стакан %s: %w", symbol, err)
	}

	ob := &domain.OrderBook{
		Symbol:    symbol,
		Timestamp: time.Now().UnixMilli(),
	}
	for _, a := range depth.Asks {
		ob.Asks = append(ob.Asks, domain.PriceLevel{Price: a.Price, Quantity: a.Quantity})
	}
	for _, d := range depth.Bids {
		ob.Bids = append(ob.Bids, domain.PriceLevel{Price: d.Price, Quantity: d.Quantity})
	}
	return ob, nil
}

func (b *FuturesExchange) ServerTime(ctx context.Context) (int64, error) {
	rctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return b.client.NewServerTimeService().Do(rctx)
}

// ClampDepthLimit подгоняет глубину под поддерживаемые Binance значения.
func ClampDepthLimit(limit int) int {
	allowed := []int{5, 10, 20, 50, 100, 500, 1000}
	chosen := allowed[len(allowed)-1]
	for _, v := range allowed {
		if limit <= v {
			chosen = v
			break
		}
	}
	return chosen
}

func parseDecimal(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return v
}
