// Package config 錢包設定（YAML 檔案 + WALLET_ 環境變數）
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// EnvPrefix 環境變數前綴，例如 WALLET_DATABASE_PATH
const EnvPrefix = "WALLET"

// Config 錢包設定
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Wallet   WalletConfig   `mapstructure:"wallet"`
	Cache    CacheConfig    `mapstructure:"cache"`
}

// DatabaseConfig SQLite 設定
type DatabaseConfig struct {
	Path string `mapstructure:"path"` // ":memory:" 表示記憶體資料庫
}

// LogConfig 日誌設定
type LogConfig struct {
	Level  string `mapstructure:"level"`  // trace, debug, info, warn, error
	Format string `mapstructure:"format"` // "console" (default) or "json"
}

// WalletConfig 錢包業務設定
type WalletConfig struct {
	DefaultAsset       string `mapstructure:"default_asset"`
	TransferFeeRate    string `mapstructure:"transfer_fee_rate"` // 十進位字串，例如 "0.01"
	WithdrawFeeRate    string `mapstructure:"withdraw_fee_rate"`
	HistoryPageSize    int    `mapstructure:"history_page_size"`
	HistoryMaxPageSize int    `mapstructure:"history_max_page_size"`
}

// CacheConfig 餘額快取設定
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Defaults 返回預設設定
func Defaults() Config {
	return Config{
		Database: DatabaseConfig{Path: "wallet.db"},
		Log:      LogConfig{Level: "info", Format: "console"},
		Wallet: WalletConfig{
			DefaultAsset:       "sora#demo",
			TransferFeeRate:    "0",
			WithdrawFeeRate:    "0",
			HistoryPageSize:    20,
			HistoryMaxPageSize: 100,
		},
		Cache: CacheConfig{TTL: 10 * time.Minute},
	}
}

// Load 讀取設定
//
// 優先順序：環境變數 > 設定檔 > Defaults()。path 為空時只使用預設值與環境變數。
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Defaults())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("wallet.default_asset", d.Wallet.DefaultAsset)
	v.SetDefault("wallet.transfer_fee_rate", d.Wallet.TransferFeeRate)
	v.SetDefault("wallet.withdraw_fee_rate", d.Wallet.WithdrawFeeRate)
	v.SetDefault("wallet.history_page_size", d.Wallet.HistoryPageSize)
	v.SetDefault("wallet.history_max_page_size", d.Wallet.HistoryMaxPageSize)
	v.SetDefault("cache.ttl", d.Cache.TTL)
}

// Validate 檢查設定值
func (c Config) Validate() error {
	if c.Database.Path == "" {
		return errors.New("database.path cannot be empty")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	if c.Wallet.HistoryPageSize <= 0 || c.Wallet.HistoryPageSize > c.Wallet.HistoryMaxPageSize {
		return fmt.Errorf("wallet.history_page_size must be in 1..%d, got %d",
			c.Wallet.HistoryMaxPageSize, c.Wallet.HistoryPageSize)
	}
	if _, err := c.WalletSettings(); err != nil {
		return err
	}
	return nil
}

// WalletSettings 轉換為領域值物件
func (c Config) WalletSettings() (WalletSettings, error) {
	asset, err := wallet.NewAssetID(c.Wallet.DefaultAsset)
	if err != nil {
		return WalletSettings{}, fmt.Errorf("wallet.default_asset: %w", err)
	}
	transferRate, err := parseFeeRate(c.Wallet.TransferFeeRate)
	if err != nil {
		return WalletSettings{}, fmt.Errorf("wallet.transfer_fee_rate: %w", err)
	}
	withdrawRate, err := parseFeeRate(c.Wallet.WithdrawFeeRate)
	if err != nil {
		return WalletSettings{}, fmt.Errorf("wallet.withdraw_fee_rate: %w", err)
	}
	return WalletSettings{
		DefaultAsset:       asset,
		Fees:               wallet.NewFeeCalculationService(transferRate, withdrawRate),
		HistoryPageSize:    c.Wallet.HistoryPageSize,
		HistoryMaxPageSize: c.Wallet.HistoryMaxPageSize,
	}, nil
}

// WalletSettings 已驗證的錢包設定
type WalletSettings struct {
	DefaultAsset       wallet.AssetID
	Fees               *wallet.FeeCalculationService
	HistoryPageSize    int
	HistoryMaxPageSize int
}

func parseFeeRate(s string) (wallet.FeeRate, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return wallet.FeeRate{}, err
	}
	return wallet.NewFeeRate(d)
}
