// Package log 建立 zerolog 日誌器
package log

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jackyeh168/common_wallet/src/internal/config"
)

// New 依設定建立日誌器
//
// Format 為 "json" 時輸出 NDJSON，否則使用 zerolog.ConsoleWriter。
// 無法辨識的 Level 退回 info。
func New(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := w
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
