package httpapi

// OrderRequest — тело POST /api/order. Числа приходят строками, как
// ввёл пользователь; разбором занимается валидатор.
type OrderRequest struct {
	Symbol    string `json:"symbol"`
	Side      string `json:"side"`
	Type      string `json:"type"` // MARKET | LIMIT | STOP_LIMIT
	Quantity  string `json:"quantity"`
	Price     string `json:"price,omitempty"`
	StopPrice string `json:"stopPrice,omitempty"`

	// Переопределение ключей из сайдбара на один запрос; пустые поля
	// означают ключи из окружения сервера.
	APIKey    string `json:"apiKey,omitempty"`
	APISecret string `json:"apiSecret,omitempty"`
}

type OrderResponse struct {
	OrderID       int64    `json:"orderId"`
	ClientOrderID string   `json:"clientOrderId"`
	Symbol        string   `json:"symbol"`
	Side          string   `json:"side"`
	Type          string   `json:"type"`
	Status        string   `json:"status"`
	OrigQty       string   `json:"origQty"`
	ExecutedQty   string   `json:"executedQty"`
	Price         string   `json:"price,omitempty"`
	StopPrice     string   `json:"stopPrice,omitempty"`
	CumQuote      string   `json:"cumQuote,omitempty"`
	UpdateTime    int64    `json:"updateTime,omitempty"`
	Warnings      []string `json:"warnings,omitempty"`
}

type LimitsResponse struct {
	Symbol      string `json:"symbol"`
	MinQty      string `json:"minQty"`
	StepSize    string `json:"stepSize"`
	MinNotional string `json:"minNotional"`
}

type BalanceEntry struct {
	Asset     string `json:"asset"`
	Balance   string `json:"balance"`
	Available string `json:"available"`
}

type BookLevel struct {
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

type BookResponse struct {
	Symbol    string      `json:"symbol"`
	Timestamp int64       `json:"timestamp"`
	Asks      []BookLevel `json:"asks"`
	Bids      []BookLevel `json:"bids"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
