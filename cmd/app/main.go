package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	binanceadapter "github.com/pragyajhaa/apex/internal/adapters/exchange/binance"
	"github.com/pragyajhaa/apex/internal/config"
	apexlog "github.com/pragyajhaa/apex/internal/log"
	"github.com/pragyajhaa/apex/internal/transport/cli"
	"github.com/pragyajhaa/apex/internal/usecase/order"
)

func main() { os.Exit(run(os.Args[1:])) }

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка конфигурации: %v\n", err)
		return 1
	}

	logger, err := apexlog.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка логгера: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	ex := binanceadapter.New(binanceadapter.Credentials{APIKey: cfg.APIKey, APISecret: cfg.APISecret})
	ctx := context.Background()

	// Проба соединения до любого ввода: дальше только рабочие ключи
	balances, err := ex.Balances(ctx)
	if err != nil {
		logger.Error("connection check failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Не удалось подключиться к Binance Futures Testnet: проверьте ключи и сеть.")
		return 1
	}

	svc := order.NewService(ex, logger)
	pr := cli.NewCLIPresenter()
	reader := bufio.NewReader(os.Stdin)

	var raw order.RawOrder
	interactive := len(args) == 0
	if interactive {
		fmt.Println("=== APEX — Binance USDT-M Futures Testnet ===")
		pr.ShowBalances(balances)
		raw = cli.GetInteractiveParams(reader)
	} else {
		raw, err = cli.ParseArgs(args, os.Stderr)
		if err != nil {
			return 1
		}
	}

	req, err := raw.Validate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка валидации: %v\n", err)
		return 1
	}

	warns := svc.CheckLimits(ctx, req)
	pr.ShowSummary(req, warns)
	if interactive && len(warns) > 0 {
		if !cli.Confirm(reader, "Продолжить несмотря на предупреждения?") {
			fmt.Println("Заявка отменена.")
			return 0
		}
	}

	res, err := svc.Place(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		return 1
	}
	pr.ShowResult(res)
	return 0
}
