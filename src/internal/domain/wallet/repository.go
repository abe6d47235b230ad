package wallet

import "github.com/jackyeh168/common_wallet/src/internal/domain/shared"

// ===========================
// Repository 介面
// ===========================

// AccountRepository 錢包帳戶倉儲介面
//
// 設計原則：
// 1. 依賴倒置：Domain Layer 定義介面，Infrastructure Layer 實作
// 2. 聚合根持久化：帳戶與餘額一起保存
// 3. 事務支持：寫操作的 ctx 必須來自 TransactionManager
type AccountRepository interface {
	// Save 保存新帳戶
	// 錯誤：ErrAccountAlreadyExists
	Save(ctx shared.TransactionContext, account *WalletAccount) error

	// FindByID 根據帳戶 ID 查找
	// 錯誤：ErrAccountNotFound
	FindByID(ctx shared.TransactionContext, accountID AccountID) (*WalletAccount, error)

	// Update 更新帳戶餘額（樂觀鎖：載入後被其他事務修改則返回 ErrConcurrentModification）
	// 錯誤：ErrAccountNotFound, ErrConcurrentModification
	Update(ctx shared.TransactionContext, account *WalletAccount) error
}

// HistoryRepository 交易歷史倉儲介面
type HistoryRepository interface {
	// Append 追加交易記錄（記錄不可修改）
	Append(ctx shared.TransactionContext, records ...*TransactionRecord) error

	// FindByAccount 依時間倒序分頁查詢
	FindByAccount(ctx shared.TransactionContext, accountID AccountID, offset, count int) ([]*TransactionRecord, error)
}

// ===========================
// Repository 錯誤定義
// ===========================

const (
	ErrCodeAccountNotFound        ErrorCode = "ACCOUNT_NOT_FOUND"
	ErrCodeAccountAlreadyExists   ErrorCode = "ACCOUNT_ALREADY_EXISTS"
	ErrCodeConcurrentModification ErrorCode = "ACCOUNT_CONCURRENT_MODIFICATION"
	ErrCodeRepositoryError        ErrorCode = "REPOSITORY_ERROR"
)

var (
	// ErrAccountNotFound 帳戶不存在
	ErrAccountNotFound = &DomainError{
		Code:    ErrCodeAccountNotFound,
		Message: "wallet account not found",
	}

	// ErrAccountAlreadyExists 帳戶已存在
	ErrAccountAlreadyExists = &DomainError{
		Code:    ErrCodeAccountAlreadyExists,
		Message: "wallet account already exists",
	}

	// ErrConcurrentModification 帳戶在載入後被修改
	ErrConcurrentModification = &DomainError{
		Code:    ErrCodeConcurrentModification,
		Message: "wallet account was modified concurrently",
	}

	// ErrRepositoryError 倉儲操作錯誤（通用）
	ErrRepositoryError = &DomainError{
		Code:    ErrCodeRepositoryError,
		Message: "repository operation failed",
	}
)
