package contact

import (
	"github.com/jackyeh168/common_wallet/src/internal/domain/contact"
	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// ListContactsQuery 查詢聯絡人
type ListContactsQuery struct {
	OwnerID string
	Search  string // 名稱或帳戶 ID 關鍵字，空白表示全部
}

// ContactItem 聯絡人項目（輸出 DTO）
type ContactItem struct {
	ContactID string
	AccountID string
	Name      string
}

// ListContactsUseCase 查詢聯絡人 Use Case（唯讀，不開事務）
type ListContactsUseCase struct {
	contacts contact.ContactRepository
}

// NewListContactsUseCase 創建 ListContactsUseCase 實例
func NewListContactsUseCase(contacts contact.ContactRepository) *ListContactsUseCase {
	return &ListContactsUseCase{contacts: contacts}
}

// Execute 返回擁有者的聯絡人（依倉儲排序：名稱不分大小寫）
func (uc *ListContactsUseCase) Execute(query ListContactsQuery) ([]ContactItem, error) {
	ownerID, err := wallet.NewAccountID(query.OwnerID)
	if err != nil {
		return nil, err
	}

	contacts, err := uc.contacts.FindByOwner(nil, ownerID)
	if err != nil {
		return nil, err
	}

	items := make([]ContactItem, 0, len(contacts))
	for _, c := range contacts {
		if !c.Matches(query.Search) {
			continue
		}
		items = append(items, ContactItem{
			ContactID: c.ContactID().String(),
			AccountID: c.AccountID().String(),
			Name:      c.DisplayName(),
		})
	}
	return items, nil
}
