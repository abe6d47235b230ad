package persistence

import (
	"gorm.io/gorm"

	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// GORMHistoryRepository 交易歷史倉儲（只追加）
type GORMHistoryRepository struct {
	db     *gorm.DB
	errMap errorMapping
}

// NewHistoryRepository 創建交易歷史倉儲
func NewHistoryRepository(db *gorm.DB) *GORMHistoryRepository {
	return &GORMHistoryRepository{
		db: db,
		errMap: errorMapping{
			notFound:      wallet.ErrAccountNotFound,
			alreadyExists: wallet.ErrRepositoryError,
			repository:    wallet.ErrRepositoryError,
		},
	}
}

// Append 追加交易記錄
func (r *GORMHistoryRepository) Append(ctx shared.TransactionContext, records ...*wallet.TransactionRecord) error {
	if len(records) == 0 {
		return nil
	}

	models := make([]*TransactionRecordModel, 0, len(records))
	for _, record := range records {
		models = append(models, recordToGORM(record))
	}

	if err := dbFrom(ctx, r.db).Create(&models).Error; err != nil {
		return r.errMap.mapError(err)
	}
	return nil
}

// FindByAccount 依時間倒序分頁查詢
//
// 同一時間戳的記錄以寫入順序倒序排列。
func (r *GORMHistoryRepository) FindByAccount(
	ctx shared.TransactionContext,
	accountID wallet.AccountID,
	offset, count int,
) ([]*wallet.TransactionRecord, error) {
	var models []TransactionRecordModel
	err := dbFrom(ctx, r.db).
		Where("account_id = ?", accountID.String()).
		Order("timestamp DESC").
		Order("id DESC").
		Offset(offset).
		Limit(count).
		Find(&models).Error
	if err != nil {
		return nil, r.errMap.mapError(err)
	}

	records := make([]*wallet.TransactionRecord, 0, len(models))
	for i := range models {
		record, err := recordToDomain(&models[i])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
