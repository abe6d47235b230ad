package persistence

import (
	"time"
)

// ===========================
// GORM Model 定義
// ===========================

// WalletAccountModel 錢包帳戶資料表模型
//
// 資料庫約束：
// - id: 主鍵（name@domain）
// - version: 樂觀鎖，每次 Update 加 1
type WalletAccountModel struct {
	ID        string    `gorm:"column:id;type:varchar(100);primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
	Version   int       `gorm:"column:version;not null;default:1"`
}

// TableName 指定表名
func (WalletAccountModel) TableName() string {
	return "wallet_accounts"
}

// WalletBalanceModel 帳戶資產餘額
//
// amount 以十進位字串保存，避免浮點誤差。
type WalletBalanceModel struct {
	AccountID string `gorm:"column:account_id;type:varchar(100);primaryKey"`
	AssetID   string `gorm:"column:asset_id;type:varchar(100);primaryKey"`
	Amount    string `gorm:"column:amount;type:varchar(64);not null"`
}

// TableName 指定表名
func (WalletBalanceModel) TableName() string {
	return "wallet_balances"
}

// TransactionRecordModel 交易歷史記錄
//
// 一次轉帳產生兩筆記錄，(transaction_id, account_id) 唯一。
type TransactionRecordModel struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement"`
	TransactionID string    `gorm:"column:transaction_id;type:varchar(36);not null;uniqueIndex:idx_tx_account"`
	AccountID     string    `gorm:"column:account_id;type:varchar(100);not null;uniqueIndex:idx_tx_account;index:idx_tx_history"`
	PeerID        string    `gorm:"column:peer_id;type:varchar(100)"`
	AssetID       string    `gorm:"column:asset_id;type:varchar(100);not null"`
	Amount        string    `gorm:"column:amount;type:varchar(64);not null"`
	Fee           string    `gorm:"column:fee;type:varchar(64);not null"`
	Direction     string    `gorm:"column:direction;type:varchar(16);not null"`
	Details       string    `gorm:"column:details;type:varchar(255)"`
	Timestamp     time.Time `gorm:"column:timestamp;not null;index:idx_tx_history"`
}

// TableName 指定表名
func (TransactionRecordModel) TableName() string {
	return "wallet_transactions"
}

// ContactModel 聯絡人資料表模型
//
// (owner_id, account_id) 唯一：同一擁有者不能重複加入同一帳戶。
type ContactModel struct {
	ID          string    `gorm:"column:id;type:varchar(36);primaryKey"`
	OwnerID     string    `gorm:"column:owner_id;type:varchar(100);not null;uniqueIndex:idx_contact_owner_account"`
	AccountID   string    `gorm:"column:account_id;type:varchar(100);not null;uniqueIndex:idx_contact_owner_account"`
	DisplayName string    `gorm:"column:display_name;type:varchar(255);not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
	Version     int       `gorm:"column:version;not null;default:1"`
}

// TableName 指定表名
func (ContactModel) TableName() string {
	return "wallet_contacts"
}
