package order

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pragyajhaa/apex/internal/domain"
)

// RawOrder — сырые поля из CLI или веб-формы, строки как ввёл пользователь.
type RawOrder struct {
	Symbol    string
	Side      string
	Type      string
	Quantity  string
	Price     string
	StopPrice string
}

// Validate приводит сырой ввод к OrderRequest или возвращает
// *ValidationError с именем проблемного поля. Никаких сайд-эффектов.
func (r RawOrder) Validate() (domain.OrderRequest, error) {
	var req domain.OrderRequest

	symbol := strings.ToUpper(strings.TrimSpace(r.Symbol))
	if symbol == "" {
		return req, newValidationError("symbol", "symbol is required")
	}
	if !strings.HasSuffix(symbol, "USDT") {
		return req, newValidationError("symbol", "only USDT-M futures pairs are supported (symbol must end with 'USDT')")
	}

	side, err := parseSide(r.Side)
	if err != nil {
		return req, err
	}

	typ, err := parseType(r.Type)
	if err != nil {
		return req, err
	}

	qty, err := parsePositive("quantity", r.Quantity)
	if err != nil {
		return req, err
	}

	req = domain.OrderRequest{Symbol: symbol, Side: side, Type: typ, Quantity: qty}

	// У MARKET ценовых полей нет; лишний ввод отбрасываем.
	if typ == domain.OrderTypeMarket {
		return req, nil
	}

	if strings.TrimSpace(r.Price) == "" {
		return req, newValidationError("price", "price is required for %s orders", typ)
	}
	req.Price, err = parsePositive("price", r.Price)
	if err != nil {
		return req, err
	}

	if typ == domain.OrderTypeLimit {
		return req, nil
	}

	if strings.TrimSpace(r.StopPrice) == "" {
		return req, newValidationError("stop_price", "stop_price is required for STOP_LIMIT orders")
	}
	req.StopPrice, err = parsePositive("stop_price", r.StopPrice)
	if err != nil {
		return req, err
	}

	// Стоп по ту сторону лимитной цены, иначе заявка сработала бы сразу.
	if side == domain.SideSell && req.StopPrice.LessThanOrEqual(req.Price) {
		return req, newValidationError("stop_price", "for SELL, stop_price must be greater than price")
	}
	if side == domain.SideBuy && req.StopPrice.GreaterThanOrEqual(req.Price) {
		return req, newValidationError("stop_price", "for BUY, stop_price must be less than price")
	}

	return req, nil
}

func parseSide(s string) (domain.Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(domain.SideBuy):
		return domain.SideBuy, nil
	case string(domain.SideSell):
		return domain.SideSell, nil
	default:
		return "", newValidationError("side", "side must be BUY or SELL")
	}
}

func parseType(s string) (domain.OrderType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(domain.OrderTypeMarket):
		return domain.OrderTypeMarket, nil
	case string(domain.OrderTypeLimit):
		return domain.OrderTypeLimit, nil
	case string(domain.OrderTypeStopLimit):
		return domain.OrderTypeStopLimit, nil
	default:
		return "", newValidationError("type", "type must be MARKET, LIMIT or STOP_LIMIT")
	}
}

func parsePositive(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	// поддержим запятую как разделитель
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return decimal.Zero, newValidationError(field, "%s is required", field)
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, newValidationError(field, "%s must be a number", field)
	}
	if v.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, newValidationError(field, "%s must be positive", field)
	}
	return v, nil
}
