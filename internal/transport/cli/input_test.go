package cli

import (
	"io"
	"testing"

	"github.com/pragyajhaa/apex/internal/usecase/order"
)

func TestParseArgs(t *testing.T) {
	raw, err := ParseArgs([]string{
		"--symbol", "BTCUSDT",
		"--side", "SELL",
		"--type", "STOP_LIMIT",
		"--quantity", "0.002",
		"--price", "61000",
		"--stop_price", "62000",
	}, io.Discard)
	if err != nil {
		t.Fatalf("ParseArgs() error: %v", err)
	}
	if raw.Symbol != "BTCUSDT" || raw.Side != "SELL" || raw.Type != "STOP_LIMIT" {
		t.Fatalf("raw=%+v", raw)
	}
	if raw.Quantity != "0.002" || raw.Price != "61000" || raw.StopPrice != "62000" {
		t.Fatalf("raw=%+v", raw)
	}
}

func TestParseArgsDefaultsEmpty(t *testing.T) {
	raw, err := ParseArgs(nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseArgs() error: %v", err)
	}
	if raw != (order.RawOrder{}) {
		t.Fatalf("raw=%+v want zero value", raw)
	}
}

func TestParseArgsUnknownFlag(t *testing.T) {
	if _, err := ParseArgs([]string{"--leverage", "10"}, io.Discard); err == nil {
		t.Fatal("unknown flag must fail")
	}
}
