package persistence

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// ===========================
// GORM AccountRepository 實作
// ===========================

// GORMAccountRepository GORM 實作的錢包帳戶倉儲
//
// 職責：
// - 調用 Mapper (accountToDomain, accountToGORM) 進行轉換
// - 帳戶列與餘額列在同一個 TransactionContext 中寫入
// - 映射 GORM 錯誤到 wallet Domain 錯誤
// - 不包含業務邏輯（業務邏輯在 Domain Layer）
type GORMAccountRepository struct {
	db     *gorm.DB
	errMap errorMapping
}

// NewAccountRepository 創建帳戶倉儲
func NewAccountRepository(db *gorm.DB) *GORMAccountRepository {
	return &GORMAccountRepository{
		db: db,
		errMap: errorMapping{
			notFound:      wallet.ErrAccountNotFound,
			alreadyExists: wallet.ErrAccountAlreadyExists,
			repository:    wallet.ErrRepositoryError,
		},
	}
}

// Save 保存新帳戶與初始餘額
//
// 錯誤：ErrAccountAlreadyExists（主鍵衝突）
func (r *GORMAccountRepository) Save(ctx shared.TransactionContext, account *wallet.WalletAccount) error {
	db := dbFrom(ctx, r.db)
	model, balances := accountToGORM(account)

	if err := db.Create(model).Error; err != nil {
		return r.errMap.mapError(err)
	}
	if len(balances) > 0 {
		if err := db.Create(&balances).Error; err != nil {
			return r.errMap.mapError(err)
		}
	}

	return nil
}

// FindByID 根據帳戶 ID 查找帳戶（含餘額）
func (r *GORMAccountRepository) FindByID(ctx shared.TransactionContext, accountID wallet.AccountID) (*wallet.WalletAccount, error) {
	db := dbFrom(ctx, r.db)

	var model WalletAccountModel
	if err := db.First(&model, "id = ?", accountID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, wallet.ErrAccountNotFound.WithContext("account_id", accountID.String())
		}
		return nil, r.errMap.mapError(err)
	}

	var balances []WalletBalanceModel
	if err := db.Where("account_id = ?", model.ID).Order("asset_id").Find(&balances).Error; err != nil {
		return nil, r.errMap.mapError(err)
	}

	return accountToDomain(&model, balances)
}

// Update 更新帳戶餘額（樂觀鎖）
//
// 實作細節：
// 1. UPDATE ... WHERE id = ? AND version = <載入時版本>，同時 version + 1
// 2. RowsAffected = 0：帳戶不存在 → ErrAccountNotFound，否則 → ErrConcurrentModification
// 3. 餘額以 upsert 寫入（ON CONFLICT (account_id, asset_id) 更新 amount）
func (r *GORMAccountRepository) Update(ctx shared.TransactionContext, account *wallet.WalletAccount) error {
	db := dbFrom(ctx, r.db)
	model, balances := accountToGORM(account)

	result := db.Model(&WalletAccountModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"updated_at": model.UpdatedAt,
			"version":    gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return r.errMap.mapError(result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&WalletAccountModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return r.errMap.mapError(err)
		}
		if count == 0 {
			return wallet.ErrAccountNotFound.WithContext(
				"account_id", model.ID,
				"reason", "account does not exist in database",
			)
		}
		return wallet.ErrConcurrentModification.WithContext(
			"account_id", model.ID,
			"expected_version", model.Version,
		)
	}

	if len(balances) == 0 {
		return nil
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_id"}, {Name: "asset_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount"}),
	}).Create(&balances).Error
	if err != nil {
		return r.errMap.mapError(err)
	}

	return nil
}
