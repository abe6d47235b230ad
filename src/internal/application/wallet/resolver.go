package wallet

import (
	"github.com/rs/zerolog"

	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// ===========================
// Resolver
// ===========================

// Settings 錢包的業務設定（由 config 轉換而來，不可變）
type Settings struct {
	DefaultAsset       wallet.AssetID
	Fees               *wallet.FeeCalculationService
	HistoryPageSize    int
	HistoryMaxPageSize int
}

// BalanceCache 餘額快取介面（由 infrastructure/balancecache 實作）
//
// 回填前先取 Generation()，以 PutIfCurrent 寫入；期間被淘汰過就不寫入。
type BalanceCache interface {
	Get(accountID wallet.AccountID) (map[wallet.AssetID]wallet.Amount, bool)
	Generation() uint64
	PutIfCurrent(accountID wallet.AccountID, balances map[wallet.AssetID]wallet.Amount, generation uint64) bool
}

// Resolver 共用服務的定位器
//
// 由組合根（bootstrap）建立並注入；元件只依賴這個介面，不使用全域單例。
// BalanceCache 可以返回 nil（不使用快取）。
type Resolver interface {
	EventCenter() shared.EventCenter
	Accounts() wallet.AccountRepository
	History() wallet.HistoryRepository
	TxManager() shared.TransactionManager
	Settings() Settings
	Logger() zerolog.Logger
	BalanceCache() BalanceCache
}
