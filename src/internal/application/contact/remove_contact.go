package contact

import (
	"github.com/jackyeh168/common_wallet/src/internal/domain/contact"
	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
)

// RemoveContactUseCase 刪除聯絡人 Use Case
type RemoveContactUseCase struct {
	contacts  contact.ContactRepository
	txManager shared.TransactionManager
}

// NewRemoveContactUseCase 創建 RemoveContactUseCase 實例
func NewRemoveContactUseCase(contacts contact.ContactRepository, txManager shared.TransactionManager) *RemoveContactUseCase {
	return &RemoveContactUseCase{contacts: contacts, txManager: txManager}
}

// Execute 依 ContactID 刪除；不存在時返回 contact.ErrContactNotFound
func (uc *RemoveContactUseCase) Execute(contactID string) error {
	id, err := contact.ContactIDFromString(contactID)
	if err != nil {
		return err
	}
	return uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		return uc.contacts.Delete(ctx, id)
	})
}
