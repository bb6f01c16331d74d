package cli

import (
	"fmt"
	"time"

	"github.com/pragyajhaa/apex/internal/domain"
	"github.com/pragyajhaa/apex/internal/shared/format"
)

type CLIPresenter struct{}

func NewCLIPresenter() *CLIPresenter { return &CLIPresenter{} }

func (c *CLIPresenter) ShowSummary(req domain.OrderRequest, warns []string) {
	fmt.Println("\n=== Заявка ===")
	fmt.Printf("Символ:     %s\n", req.Symbol)
	fmt.Printf("Сторона:    %s\n", req.Side)
	fmt.Printf("Тип:        %s\n", req.Type)
	fmt.Printf("Количество: %s\n", req.Quantity)
	if req.Price.IsPositive() {
		fmt.Printf("Цена:       %s\n", req.Price)
	}
	if req.StopPrice.IsPositive() {
		fmt.Printf("Стоп-цена:  %s\n", req.StopPrice)
	}
	for _, w := range warns {
		fmt.Printf("[WARNING] %s\n", w)
	}
	fmt.Println("==============")
}

func (c *CLIPresenter) ShowResult(res *domain.OrderResult) {
	fmt.Printf("\nЗаявка принята: OrderID=%d, статус=%s\n", res.OrderID, res.Status)
	fmt.Printf("  %s %s %s, количество %s\n",
		res.Symbol, res.Side, res.Type, format.TrimZeros(res.OrigQuantity))
	if p := format.TrimZeros(res.Price); p != "" && p != "0" && p != "0.0" {
		fmt.Printf("  Цена: %s USDT\n", format.GroupThousands(p))
	}
	if p := format.TrimZeros(res.StopPrice); p != "" && p != "0" && p != "0.0" {
		fmt.Printf("  Стоп-цена: %s USDT\n", format.GroupThousands(p))
	}
	if res.UpdateTime > 0 {
		fmt.Printf("  Время биржи: %s\n", time.UnixMilli(res.UpdateTime).Format("15:04:05 02.01.2006"))
	}
}

func (c *CLIPresenter) ShowBalances(balances []domain.Balance) {
	fmt.Println("\n=== Баланс тестнета ===")
	shown := 0
	for _, b := range balances {
		bal := format.TrimZeros(b.Balance)
		if bal == "" || bal == "0" || bal == "0.0" {
			continue
		}
		fmt.Printf("  %s: %s (доступно %s)\n", b.Asset, bal, format.TrimZeros(b.Available))
		shown++
	}
	if shown == 0 {
		fmt.Println("  пусто")
	}
}
