package persistence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// ===========================
// 測試輔助函數
// ===========================

// setupTestDB 創建測試用的 SQLite in-memory 資料庫
//
// 每個測試使用獨立的 in-memory DB；連線池限制為 1，
// 確保事務內外看到的是同一個 in-memory 資料庫。
func setupTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	cleanup := func() {
		_ = sqlDB.Close()
	}

	return db, cleanup
}

func mustAccountID(t *testing.T, s string) wallet.AccountID {
	t.Helper()
	id, err := wallet.NewAccountID(s)
	require.NoError(t, err)
	return id
}

func mustAssetID(t *testing.T, s string) wallet.AssetID {
	t.Helper()
	id, err := wallet.NewAssetID(s)
	require.NoError(t, err)
	return id
}

func mustAmount(t *testing.T, s string) wallet.Amount {
	t.Helper()
	a, err := wallet.ParseAmount(s)
	require.NoError(t, err)
	return a
}

// newTestAccount 創建帳戶（已清空事件）
func newTestAccount(t *testing.T, id string, assets ...string) *wallet.WalletAccount {
	t.Helper()
	ids := make([]wallet.AssetID, 0, len(assets))
	for _, a := range assets {
		ids = append(ids, mustAssetID(t, a))
	}
	account, err := wallet.NewWalletAccount(mustAccountID(t, id), ids)
	require.NoError(t, err)
	account.PullEvents()
	return account
}

func newTestRecord(t *testing.T, owner string, direction wallet.Direction, amount string, at time.Time) *wallet.TransactionRecord {
	t.Helper()
	record, err := wallet.NewTransactionRecord(
		wallet.NewTransactionID(),
		mustAccountID(t, owner),
		wallet.AccountID{},
		mustAssetID(t, "sora#demo"),
		mustAmount(t, amount),
		wallet.ZeroAmount(),
		direction,
		"test",
		at,
	)
	require.NoError(t, err)
	return record
}
