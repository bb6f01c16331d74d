package config

import (
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BINANCE_TESTNET_API_KEY", "BINANCE_TESTNET_API_SECRET",
		"BINANCE_API_KEY", "BINANCE_API_SECRET",
		"APEX_TESTNET", "APEX_HTTP_ADDR", "HTTP_ADDR",
		"APEX_LOG_LEVEL", "APEX_LOG_ENCODING", "APEX_LOG_FILE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BINANCE_TESTNET_API_KEY", "k")
	t.Setenv("BINANCE_TESTNET_API_SECRET", "s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIKey != "k" || cfg.APISecret != "s" {
		t.Fatalf("cfg=%+v", cfg)
	}
	if !cfg.Testnet {
		t.Error("testnet must default to true")
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("addr=%q", cfg.HTTPAddr)
	}
	if cfg.Logging.File != "bot.log" || cfg.Logging.Level != "info" {
		t.Errorf("logging=%+v", cfg.Logging)
	}
}

func TestLoadKeyFallbackChain(t *testing.T) {
	clearEnv(t)
	t.Setenv("BINANCE_API_KEY", "main-key")
	t.Setenv("BINANCE_API_SECRET", "main-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIKey != "main-key" {
		t.Fatalf("APIKey=%q want fallback to BINANCE_API_KEY", cfg.APIKey)
	}

	// Тестнет-ключ перекрывает общий
	t.Setenv("BINANCE_TESTNET_API_KEY", "testnet-key")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIKey != "testnet-key" {
		t.Fatalf("APIKey=%q want testnet key to win", cfg.APIKey)
	}
}

func TestLoadMissingKeys(t *testing.T) {
	clearEnv(t)
	if _, err := Load(); err == nil {
		t.Fatal("expected error without API keys")
	} else if !strings.Contains(err.Error(), "API keys") {
		t.Fatalf("err=%v", err)
	}
}

func TestLoadRejectsMainnet(t *testing.T) {
	clearEnv(t)
	t.Setenv("BINANCE_TESTNET_API_KEY", "k")
	t.Setenv("BINANCE_TESTNET_API_SECRET", "s")
	t.Setenv("APEX_TESTNET", "false")

	if _, err := Load(); err == nil {
		t.Fatal("mainnet mode must be rejected")
	} else if !strings.Contains(err.Error(), "testnet") {
		t.Fatalf("err=%v", err)
	}
}
