package persistence

import (
	"gorm.io/gorm"

	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
)

// gormTransactionContext 攜帶 GORMTransactionManager 開啟的 *gorm.DB（tx）
//
// 帳戶、歷史、聯絡人三個倉儲共用同一個 tx，轉帳的雙方餘額與兩筆歷史記錄因此一起提交或回滾。
type gormTransactionContext struct {
	db *gorm.DB
}

// NewGORMTransactionContext 以既有的 tx 包裝事務上下文（整合測試也用它把倉儲接到手動開啟的 tx）
func NewGORMTransactionContext(db *gorm.DB) shared.TransactionContext {
	return &gormTransactionContext{db: db}
}

// GetDB 返回 tx；只在 persistence 內部使用
func (ctx *gormTransactionContext) GetDB() *gorm.DB {
	return ctx.db
}

// dbFrom 倉儲取得本次操作要用的 *gorm.DB
//
// 查詢餘額、歷史與聯絡人時傳入 nil，直接在 fallback 上 auto-commit。
func dbFrom(ctx shared.TransactionContext, fallback *gorm.DB) *gorm.DB {
	if gormCtx, ok := ctx.(*gormTransactionContext); ok && gormCtx != nil {
		return gormCtx.GetDB()
	}
	return fallback
}
