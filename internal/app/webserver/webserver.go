package webserver

import (
	"go.uber.org/zap"

	binanceadapter "github.com/pragyajhaa/apex/internal/adapters/exchange/binance"
	"github.com/pragyajhaa/apex/internal/config"
	"github.com/pragyajhaa/apex/internal/transport/httpapi"
	"github.com/pragyajhaa/apex/internal/usecase/order"
)

func New(cfg *config.Config, logger *zap.Logger) *httpapi.Server {
	// Адаптер тестнета на ключах из окружения
	ex := binanceadapter.New(binanceadapter.Credentials{APIKey: cfg.APIKey, APISecret: cfg.APISecret})
	svc := order.NewService(ex, logger)

	adapter := &httpapi.OrderAdapter{
		Svc: svc,
		// Сайдбар может подменить ключи на один запрос
		WithCreds: func(apiKey, apiSecret string) *order.Service {
			ex := binanceadapter.New(binanceadapter.Credentials{APIKey: apiKey, APISecret: apiSecret})
			return order.NewService(ex, logger)
		},
	}
	return httpapi.New(cfg.HTTPAddr, adapter, logger)
}
