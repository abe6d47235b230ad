package persistence

import (
	"gorm.io/gorm"

	"github.com/jackyeh168/common_wallet/src/internal/domain/contact"
	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// GORMContactRepository 聯絡人倉儲（GORM）
type GORMContactRepository struct {
	db     *gorm.DB
	errMap errorMapping
}

// NewContactRepository 創建聯絡人倉儲
func NewContactRepository(db *gorm.DB) *GORMContactRepository {
	return &GORMContactRepository{
		db: db,
		errMap: errorMapping{
			notFound:      contact.ErrContactNotFound,
			alreadyExists: contact.ErrContactAlreadyExists,
			repository:    contact.ErrRepositoryError,
		},
	}
}

// Save 保存聯絡人（Upsert 模式，基於 ContactID）
//
// 錯誤：(owner, account) 唯一約束違反 → ErrContactAlreadyExists
func (r *GORMContactRepository) Save(ctx shared.TransactionContext, c *contact.Contact) error {
	if err := dbFrom(ctx, r.db).Save(contactToGORM(c)).Error; err != nil {
		return r.errMap.mapError(err)
	}
	return nil
}

// FindByOwner 查詢擁有者的所有聯絡人（名稱不分大小寫排序）
func (r *GORMContactRepository) FindByOwner(ctx shared.TransactionContext, ownerID wallet.AccountID) ([]*contact.Contact, error) {
	var models []ContactModel
	err := dbFrom(ctx, r.db).
		Where("owner_id = ?", ownerID.String()).
		Order("LOWER(display_name) ASC").
		Order("account_id ASC").
		Find(&models).Error
	if err != nil {
		return nil, r.errMap.mapError(err)
	}

	contacts := make([]*contact.Contact, 0, len(models))
	for i := range models {
		c, err := contactToDomain(&models[i])
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

// ExistsByOwnerAndAccount 檢查 (owner, account) 是否已存在
func (r *GORMContactRepository) ExistsByOwnerAndAccount(ctx shared.TransactionContext, ownerID, accountID wallet.AccountID) (bool, error) {
	var count int64
	err := dbFrom(ctx, r.db).
		Model(&ContactModel{}).
		Where("owner_id = ? AND account_id = ?", ownerID.String(), accountID.String()).
		Count(&count).Error
	if err != nil {
		return false, r.errMap.mapError(err)
	}
	return count > 0, nil
}

// Delete 刪除聯絡人
//
// 錯誤：ErrContactNotFound
func (r *GORMContactRepository) Delete(ctx shared.TransactionContext, contactID contact.ContactID) error {
	result := dbFrom(ctx, r.db).Delete(&ContactModel{}, "id = ?", contactID.String())
	if result.Error != nil {
		return r.errMap.mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return contact.ErrContactNotFound.WithContext("contact_id", contactID.String())
	}
	return nil
}
