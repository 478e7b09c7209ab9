// internal/config/config.go
//
// 由環境變數（前綴 BANK_）載入設定；若存在 .env 檔會先載入。

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"onlinebanking/internal/logging"
)

const envPrefix = "BANK"

// Config 為服務設定。
type Config struct {
	Addr            string        `envconfig:"ADDR" default:":8080"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
	MetricsEnabled  bool          `envconfig:"METRICS_ENABLED" default:"true"`
	Log             Log           `envconfig:"LOG"`
}

// Log 對應 BANK_LOG_LEVEL / BANK_LOG_FORMAT / BANK_LOG_DEV。
type Log struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"json"`
	Dev    bool   `envconfig:"DEV" default:"false"`
}

// Logging 轉換為 logging.Config。
func (l Log) Logging() logging.Config {
	return logging.Config{Level: l.Level, Format: l.Format, Development: l.Dev}
}

// Load 依序載入指定的 env 檔（未指定時嘗試 .env），再讀取環境變數。
// 不存在的 env 檔會被略過；格式錯誤的檔案或數值則回傳錯誤。
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if cfg.Addr == "" {
		return nil, errors.New("BANK_ADDR must not be empty")
	}
	return &cfg, nil
}
