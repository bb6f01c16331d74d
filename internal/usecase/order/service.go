package order

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pragyajhaa/apex/internal/domain"
)

// Service — диспетчер заявок: один вызов внешнего клиента на заявку,
// без повторов и без хранения состояния.
type Service struct {
	ex  domain.Exchange
	log *zap.Logger
}

func NewService(ex domain.Exchange, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{ex: ex, log: log}
}

// Place отправляет провалидированную заявку на биржу. Отказ клиента
// заворачивается в *OrderError с исходным текстом.
func (s *Service) Place(ctx context.Context, req domain.OrderRequest) (*domain.OrderResult, error) {
	s.log.Info("[ORDER] dispatch",
		zap.String("type", string(req.Type)),
		zap.String("symbol", req.Symbol),
		zap.String("side", string(req.Side)),
		zap.String("qty", req.Quantity.String()),
		zap.String("price", req.Price.String()),
		zap.String("stop_price", req.StopPrice.String()),
	)

	res, err := s.ex.PlaceOrder(ctx, req)
	if err != nil {
		s.log.Error("order rejected",
			zap.String("type", string(req.Type)),
			zap.String("symbol", req.Symbol),
			zap.Error(err),
		)
		return nil, &OrderError{Op: string(req.Type), Err: err}
	}

	s.log.Info("order accepted",
		zap.Int64("order_id", res.OrderID),
		zap.String("client_order_id", res.ClientOrderID),
		zap.String("status", res.Status),
	)
	return res, nil
}

// CheckLimits сверяет заявку с минимумами символа. Предупреждения не
// блокируют отправку; недоступность exchange info — тоже предупреждение.
func (s *Service) CheckLimits(ctx context.Context, req domain.OrderRequest) []string {
	limits, err := s.ex.SymbolLimits(ctx, req.Symbol)
	if err != nil {
		s.log.Warn("symbol limits unavailable", zap.String("symbol", req.Symbol), zap.Error(err))
		return []string{fmt.Sprintf("could not validate order size limits for %s: %v", req.Symbol, err)}
	}

	var warns []string
	if limits.MinQty.IsPositive() && req.Quantity.LessThan(limits.MinQty) {
		warns = append(warns, fmt.Sprintf("quantity %s is below the minimum %s for %s",
			req.Quantity, limits.MinQty, req.Symbol))
	}
	// Номинал оцениваем только для заявок с ценой.
	if req.Price.IsPositive() && limits.MinNotional.IsPositive() {
		notional := req.Quantity.Mul(req.Price)
		if notional.LessThan(limits.MinNotional) {
			warns = append(warns, fmt.Sprintf("order value %s USDT is below the minimum notional %s USDT",
				notional.StringFixed(2), limits.MinNotional.StringFixed(2)))
		}
	}
	return warns
}

// Limits отдаёт минимумы символа как есть (для веб-панели).
func (s *Service) Limits(ctx context.Context, symbol string) (*domain.SymbolLimits, error) {
	return s.ex.SymbolLimits(ctx, symbol)
}

// Balances — балансы фьючерсного кошелька.
func (s *Service) Balances(ctx context.Context) ([]domain.Balance, error) {
	return s.ex.Balances(ctx)
}

// Book — срез стакана для панели топ-оф-бук.
func (s *Service) Book(ctx context.Context, symbol string, limit int) (*domain.OrderBook, error) {
	return s.ex.OrderBook(ctx, symbol, limit)
}

// ServerTime — проба связи с биржей для health-чека.
func (s *Service) ServerTime(ctx context.Context) (int64, error) {
	return s.ex.ServerTime(ctx)
}
