package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config — всё окружение приложения. Источники по приоритету:
// ENV > .env > значения по умолчанию.
type Config struct {
	APIKey    string
	APISecret string
	Testnet   bool
	HTTPAddr  string
	Logging   LoggingConfig
}

type LoggingConfig struct {
	Level    string
	Encoding string
	// File — путь до append-only лога; пустая строка отключает файл.
	File string
}

// Load читает .env (если есть) и собирает конфиг из переменных окружения.
func Load() (*Config, error) {
	// .env необязателен — молча едем дальше
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("testnet", true)
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_encoding", "console")
	v.SetDefault("log_file", "bot.log")

	// Сначала тестнет-ключи, затем общие — прежняя цепочка фолбэков
	bindings := map[string][]string{
		"api_key":      {"BINANCE_TESTNET_API_KEY", "BINANCE_API_KEY"},
		"api_secret":   {"BINANCE_TESTNET_API_SECRET", "BINANCE_API_SECRET"},
		"testnet":      {"APEX_TESTNET"},
		"http_addr":    {"APEX_HTTP_ADDR", "HTTP_ADDR"},
		"log_level":    {"APEX_LOG_LEVEL"},
		"log_encoding": {"APEX_LOG_ENCODING"},
		"log_file":     {"APEX_LOG_FILE"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	cfg := &Config{
		APIKey:    v.GetString("api_key"),
		APISecret: v.GetString("api_secret"),
		Testnet:   v.GetBool("testnet"),
		HTTPAddr:  v.GetString("http_addr"),
		Logging: LoggingConfig{
			Level:    v.GetString("log_level"),
			Encoding: v.GetString("log_encoding"),
			File:     v.GetString("log_file"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.APIKey == "" || c.APISecret == "" {
		return errors.New("API keys must be provided via BINANCE_TESTNET_API_KEY / BINANCE_TESTNET_API_SECRET (or a .env file)")
	}
	if !c.Testnet {
		return errors.New("only testnet mode is supported; unset APEX_TESTNET=false")
	}
	return nil
}
