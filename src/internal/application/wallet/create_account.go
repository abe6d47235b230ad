package wallet

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// ===========================
// CreateAccount Use Case
// ===========================

// CreateAccountCommand 開戶命令
//
// 輸入：
// - AccountID: name@domain
// - Assets: 要啟用的資產（name#domain）；空白時使用預設資產
type CreateAccountCommand struct {
	AccountID string
	Assets    []string
}

// CreateAccountResult 開戶結果
type CreateAccountResult struct {
	AccountID string
	Balances  []AssetBalance
	CreatedAt time.Time
}

// AssetBalance 單一資產餘額（輸出 DTO）
type AssetBalance struct {
	AssetID string
	Amount  string
}

// CreateAccountUseCase 開戶 Use Case
//
// 並發安全：不使用 check-then-insert，依賴資料庫主鍵約束保證唯一性。
type CreateAccountUseCase struct {
	resolver Resolver
}

// NewCreateAccountUseCase 創建 Use Case 實例
func NewCreateAccountUseCase(resolver Resolver) *CreateAccountUseCase {
	return &CreateAccountUseCase{resolver: resolver}
}

// Execute 執行開戶
//
// 錯誤處理：
// - ErrInvalidAccountID / ErrInvalidAssetID: 輸入格式無效
// - ErrAccountAlreadyExists: 帳戶已存在
func (uc *CreateAccountUseCase) Execute(cmd CreateAccountCommand) (*CreateAccountResult, error) {
	// 1. 驗證輸入
	accountID, err := wallet.NewAccountID(cmd.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse account ID: %w", err)
	}

	settings := uc.resolver.Settings()
	assets := make([]wallet.AssetID, 0, len(cmd.Assets))
	for _, raw := range cmd.Assets {
		asset, err := wallet.NewAssetID(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse asset ID: %w", err)
		}
		assets = append(assets, asset)
	}
	if len(assets) == 0 {
		assets = append(assets, settings.DefaultAsset)
	}

	// 2. 創建聚合
	account, err := wallet.NewWalletAccount(accountID, assets)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet account: %w", err)
	}

	// 3. 在事務中保存
	err = uc.resolver.TxManager().InTransaction(func(ctx shared.TransactionContext) error {
		if err := uc.resolver.Accounts().Save(ctx, account); err != nil {
			if errors.Is(err, wallet.ErrAccountAlreadyExists) {
				return fmt.Errorf("account %s already exists: %w", accountID, err)
			}
			return fmt.Errorf("failed to save account: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 4. 提交後發布事件
	publishAfterCommit(uc.resolver, account.PullEvents())

	return &CreateAccountResult{
		AccountID: account.AccountID().String(),
		Balances:  balanceViews(account.Assets(), account.Balances()),
		CreatedAt: account.CreatedAt(),
	}, nil
}
