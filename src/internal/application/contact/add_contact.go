package contact

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jackyeh168/common_wallet/src/internal/domain/contact"
	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// ===========================
// AddContact Use Case
// ===========================

// AddContactCommand 新增聯絡人指令（Input DTO）
type AddContactCommand struct {
	OwnerID   string // 擁有者帳戶 ID（name@domain）
	AccountID string // 聯絡人帳戶 ID
	Name      string // 顯示名稱
}

// AddContactResult 新增聯絡人結果（Output DTO）
type AddContactResult struct {
	ContactID string
	OwnerID   string
	AccountID string
	Name      string
}

// AddContactUseCase 新增聯絡人 Use Case
//
// 業務規則：
// 1. 擁有者帳戶必須存在
// 2. 不能把自己加為聯絡人
// 3. 同一擁有者下每個帳戶只能出現一次
// 4. 成功後在事務提交後發布 ContactAddedEvent
type AddContactUseCase struct {
	contacts  contact.ContactRepository
	accounts  wallet.AccountRepository
	txManager shared.TransactionManager
	publisher shared.EventPublisher
	logger    zerolog.Logger
}

// NewAddContactUseCase 創建 AddContactUseCase 實例
func NewAddContactUseCase(
	contacts contact.ContactRepository,
	accounts wallet.AccountRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	logger zerolog.Logger,
) *AddContactUseCase {
	return &AddContactUseCase{
		contacts:  contacts,
		accounts:  accounts,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute 執行新增聯絡人
//
// 錯誤處理：
// - 帳戶 ID 格式錯誤 → wallet.ErrInvalidAccountID
// - 擁有者不存在 → wallet.ErrAccountNotFound
// - 自己 → contact.ErrSelfContact
// - 名稱無效 → contact.ErrInvalidDisplayName
// - 已存在 → contact.ErrContactAlreadyExists
func (uc *AddContactUseCase) Execute(cmd AddContactCommand) (*AddContactResult, error) {
	ownerID, err := wallet.NewAccountID(cmd.OwnerID)
	if err != nil {
		return nil, err
	}
	accountID, err := wallet.NewAccountID(cmd.AccountID)
	if err != nil {
		return nil, err
	}

	newContact, err := contact.NewContact(ownerID, accountID, cmd.Name)
	if err != nil {
		return nil, err
	}

	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		if _, err := uc.accounts.FindByID(ctx, ownerID); err != nil {
			return fmt.Errorf("failed to find owner: %w", err)
		}

		exists, err := uc.contacts.ExistsByOwnerAndAccount(ctx, ownerID, accountID)
		if err != nil {
			return err
		}
		if exists {
			return contact.ErrContactAlreadyExists.WithContext(
				"owner", cmd.OwnerID,
				"account", cmd.AccountID,
			)
		}

		return uc.contacts.Save(ctx, newContact)
	})
	if err != nil {
		return nil, err
	}

	if err := uc.publisher.PublishBatch(newContact.PullEvents()); err != nil {
		uc.logger.Warn().Err(err).Str("contact_id", newContact.ContactID().String()).Msg("post-commit publish failed")
	}

	return &AddContactResult{
		ContactID: newContact.ContactID().String(),
		OwnerID:   ownerID.String(),
		AccountID: accountID.String(),
		Name:      newContact.DisplayName(),
	}, nil
}
