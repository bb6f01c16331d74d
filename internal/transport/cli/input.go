package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/pragyajhaa/apex/internal/usecase/order"
)

// ParseArgs разбирает флаги заявки. Поля остаются строками — всю
// проверку делает валидатор.
func ParseArgs(args []string, errOut io.Writer) (order.RawOrder, error) {
	fs := flag.NewFlagSet("apex", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var raw order.RawOrder
	fs.StringVar(&raw.Symbol, "symbol", "", "торговая пара USDT-M, например BTCUSDT")
	fs.StringVar(&raw.Side, "side", "", "BUY или SELL")
	fs.StringVar(&raw.Type, "type", "", "MARKET, LIMIT или STOP_LIMIT")
	fs.StringVar(&raw.Quantity, "quantity", "", "количество базового актива")
	fs.StringVar(&raw.Price, "price", "", "цена (обязательна для LIMIT и STOP_LIMIT)")
	fs.StringVar(&raw.StopPrice, "stop_price", "", "стоп-цена (обязательна для STOP_LIMIT)")

	if err := fs.Parse(args); err != nil {
		return order.RawOrder{}, err
	}
	return raw, nil
}

// GetInteractiveParams — опрос пользователя в терминале, когда бинарь
// запущен без аргументов.
func GetInteractiveParams(r *bufio.Reader) order.RawOrder {
	var raw order.RawOrder

	raw.Symbol = askString(r, "Символ (Enter = BTCUSDT): ", "BTCUSDT")
	raw.Side = askChoice(r, "Сторона", []string{"BUY", "SELL"})
	raw.Type = askChoice(r, "Тип заявки", []string{"MARKET", "LIMIT", "STOP_LIMIT"})
	raw.Quantity = askRequired(r, "Количество: ")

	if raw.Type != "MARKET" {
		raw.Price = askRequired(r, "Цена: ")
	}
	if raw.Type == "STOP_LIMIT" {
		raw.StopPrice = askRequired(r, "Стоп-цена: ")
	}
	return raw
}

// Confirm — вопрос да/нет; используется при предупреждениях о минимумах.
func Confirm(r *bufio.Reader, prompt string) bool {
	fmt.Print(prompt + " [y/N]: ")
	raw, _ := r.ReadString('\n')
	raw = strings.ToLower(strings.TrimSpace(raw))
	return raw == "y" || raw == "yes"
}

func askString(r *bufio.Reader, prompt, def string) string {
	fmt.Print(prompt)
	raw, _ := r.ReadString('\n')
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	return raw
}

func askRequired(r *bufio.Reader, prompt string) string {
	for {
		fmt.Print(prompt)
		raw, _ := r.ReadString('\n')
		raw = strings.TrimSpace(raw)
		if raw != "" {
			return raw
		}
		fmt.Println("Поле обязательно.")
	}
}

func askChoice(r *bufio.Reader, title string, options []string) string {
	for {
		fmt.Printf("%s:\n", title)
		for i, o := range options {
			fmt.Printf("%d) %s\n", i+1, o)
		}
		fmt.Printf("Ваш выбор [1-%d] (Enter = 1): ", len(options))

		raw, _ := r.ReadString('\n')
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return options[0]
		}
		for i, o := range options {
			if raw == fmt.Sprintf("%d", i+1) || strings.EqualFold(raw, o) {
				return o
			}
		}
		fmt.Println("Введите номер из списка, либо нажмите Enter для значения по умолчанию.")
	}
}
