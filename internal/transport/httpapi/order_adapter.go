package httpapi

import (
	"context"
	"fmt"

	"github.com/pragyajhaa/apex/internal/usecase/order"
)

// OrderAdapter — тонкий адаптер: маппит httpapi-типы <-> usecase и
// вызывает диспетчер.
type OrderAdapter struct {
	Svc *order.Service
	// WithCreds собирает сервис под разовые ключи из сайдбара.
	WithCreds func(apiKey, apiSecret string) *order.Service
}

func (a *OrderAdapter) Place(ctx context.Context, req OrderRequest) (OrderResponse, error) {
	svc, err := a.service(req)
	if err != nil {
		return OrderResponse{}, err
	}

	raw := order.RawOrder{
		Symbol:    req.Symbol,
		Side:      req.Side,
		Type:      req.Type,
		Quantity:  req.Quantity,
		Price:     req.Price,
		StopPrice: req.StopPrice,
	}
	oreq, err := raw.Validate()
	if err != nil {
		return OrderResponse{}, err
	}

	// Предупреждения о минимумах не блокируют заявку — едут в ответ.
	warns := svc.CheckLimits(ctx, oreq)

	res, err := svc.Place(ctx, oreq)
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		OrderID:       res.OrderID,
		ClientOrderID: res.ClientOrderID,
		Symbol:        res.Symbol,
		Side:          res.Side,
		Type:          res.Type,
		Status:        res.Status,
		OrigQty:       res.OrigQuantity,
		ExecutedQty:   res.ExecutedQty,
		Price:         res.Price,
		StopPrice:     res.StopPrice,
		CumQuote:      res.CumQuote,
		UpdateTime:    res.UpdateTime,
		Warnings:      warns,
	}, nil
}

func (a *OrderAdapter) Limits(ctx context.Context, symbol string) (LimitsResponse, error) {
	svc, err := a.service(OrderRequest{})
	if err != nil {
		return LimitsResponse{}, err
	}
	limits, err := svc.Limits(ctx, symbol)
	if err != nil {
		return LimitsResponse{}, err
	}
	return LimitsResponse{
		Symbol:      limits.Symbol,
		MinQty:      limits.MinQty.String(),
		StepSize:    limits.StepSize.String(),
		MinNotional: limits.MinNotional.String(),
	}, nil
}

func (a *OrderAdapter) Balances(ctx context.Context) ([]BalanceEntry, error) {
	svc, err := a.service(OrderRequest{})
	if err != nil {
		return nil, err
	}
	balances, err := svc.Balances(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BalanceEntry, 0, len(balances))
	for _, b := range balances {
		out = append(out, BalanceEntry{Asset: b.Asset, Balance: b.Balance, Available: b.Available})
	}
	return out, nil
}

func (a *OrderAdapter) Book(ctx context.Context, symbol string, depth int) (BookResponse, error) {
	svc, err := a.service(OrderRequest{})
	if err != nil {
		return BookResponse{}, err
	}
	ob, err := svc.Book(ctx, symbol, depth)
	if err != nil {
		return BookResponse{}, err
	}
	res := BookResponse{Symbol: ob.Symbol, Timestamp: ob.Timestamp}
	for _, l := range ob.Asks {
		res.Asks = append(res.Asks, BookLevel{Price: l.Price, Quantity: l.Quantity})
	}
	for _, l := range ob.Bids {
		res.Bids = append(res.Bids, BookLevel{Price: l.Price, Quantity: l.Quantity})
	}
	return res, nil
}

func (a *OrderAdapter) ServerTime(ctx context.Context) (int64, error) {
	svc, err := a.service(OrderRequest{})
	if err != nil {
		return 0, err
	}
	return svc.ServerTime(ctx)
}

func (a *OrderAdapter) service(req OrderRequest) (*order.Service, error) {
	if req.APIKey != "" || req.APISecret != "" {
		if req.APIKey == "" || req.APISecret == "" {
			return nil, &order.ValidationError{Field: "apiKey", Reason: "both apiKey and apiSecret must be provided"}
		}
		if a.WithCreds == nil {
			return nil, fmt.Errorf("per-request credentials are not supported")
		}
		return a.WithCreds(req.APIKey, req.APISecret), nil
	}
	if a.Svc == nil {
		return nil, fmt.Errorf("service is not initialized")
	}
	return a.Svc, nil
}
