package persistence

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
)

// GORMTransactionManager 以 GORM 實作 shared.TransactionManager
//
// - fn 返回錯誤：回滾，原樣返回錯誤
// - fn panic：回滾後重新拋出
// - 其他情況：提交
type GORMTransactionManager struct {
	db *gorm.DB
}

// NewGORMTransactionManager 創建事務管理器
func NewGORMTransactionManager(db *gorm.DB) *GORMTransactionManager {
	return &GORMTransactionManager{db: db}
}

// InTransaction 在事務中執行 fn
func (m *GORMTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) (err error) {
	tx := m.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err = fn(NewGORMTransactionContext(tx)); err != nil {
		tx.Rollback()
		return err
	}

	if commitErr := tx.Commit().Error; commitErr != nil {
		return fmt.Errorf("commit transaction: %w", commitErr)
	}
	return nil
}
