package contact

import (
	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// ContactRepository 聯絡人倉儲接口
//
// 使用範例（檢查重複 + 保存在同一事務）：
//   txManager.InTransaction(func(ctx shared.TransactionContext) error {
//       exists, err := repo.ExistsByOwnerAndAccount(ctx, owner, account)
//       if err != nil {
//           return err
//       }
//       if exists {
//           return ErrContactAlreadyExists
//       }
//       return repo.Save(ctx, c)
//   })
type ContactRepository interface {
	// Save 保存聯絡人（新增或更新，基於 ContactID）
	// 錯誤：ErrContactAlreadyExists（唯一約束）
	Save(ctx shared.TransactionContext, c *Contact) error

	// FindByOwner 查詢擁有者的所有聯絡人（依名稱排序）
	FindByOwner(ctx shared.TransactionContext, ownerID wallet.AccountID) ([]*Contact, error)

	// ExistsByOwnerAndAccount 檢查重複
	ExistsByOwnerAndAccount(ctx shared.TransactionContext, ownerID, accountID wallet.AccountID) (bool, error)

	// Delete 刪除聯絡人
	// 錯誤：ErrContactNotFound
	Delete(ctx shared.TransactionContext, contactID ContactID) error
}
