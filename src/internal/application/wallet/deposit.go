package wallet

import (
	"fmt"
	"time"

	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// ===========================
// Deposit Use Case
// ===========================

// DepositCommand 入金命令
type DepositCommand struct {
	AccountID string
	AssetID   string // 空白時使用預設資產
	Amount    string
	Details   string
}

// DepositResult 入金結果
type DepositResult struct {
	TransactionID string
	AccountID     string
	AssetID       string
	Amount        string
	Balance       string
}

// DepositUseCase 入金 Use Case
//
// 流程：載入帳戶 → Deposit → Update → 追加 DEPOSIT 歷史記錄（同一事務），
// 提交後發布 FundsDepositedEvent 與 AccountUpdateEvent。
type DepositUseCase struct {
	resolver Resolver
}

// NewDepositUseCase 創建 Use Case 實例
func NewDepositUseCase(resolver Resolver) *DepositUseCase {
	return &DepositUseCase{resolver: resolver}
}

// Execute 執行入金
//
// 錯誤處理：
// - ErrInvalidAccountID / ErrInvalidAssetID / ErrInvalidAmount: 輸入無效
// - ErrAccountNotFound: 帳戶不存在
// - ErrAssetNotSupported: 帳戶未啟用該資產
func (uc *DepositUseCase) Execute(cmd DepositCommand) (*DepositResult, error) {
	accountID, err := wallet.NewAccountID(cmd.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse account ID: %w", err)
	}
	assetID, err := resolveAsset(cmd.AssetID, uc.resolver.Settings())
	if err != nil {
		return nil, fmt.Errorf("failed to parse asset ID: %w", err)
	}
	amount, err := parsePositiveAmount(cmd.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}

	txID := wallet.NewTransactionID()
	var account *wallet.WalletAccount

	err = uc.resolver.TxManager().InTransaction(func(ctx shared.TransactionContext) error {
		account, err = uc.resolver.Accounts().FindByID(ctx, accountID)
		if err != nil {
			return fmt.Errorf("failed to find account: %w", err)
		}
		if err := account.Deposit(assetID, amount, txID); err != nil {
			return err
		}
		if err := uc.resolver.Accounts().Update(ctx, account); err != nil {
			return fmt.Errorf("failed to update account: %w", err)
		}

		record, err := wallet.NewTransactionRecord(
			txID, accountID, wallet.AccountID{}, assetID, amount, wallet.ZeroAmount(),
			wallet.DirectionDeposit, cmd.Details, time.Now(),
		)
		if err != nil {
			return err
		}
		return uc.resolver.History().Append(ctx, record)
	})
	if err != nil {
		return nil, err
	}

	publishAfterCommit(uc.resolver, account.PullEvents())

	balance, _ := account.Balance(assetID)
	return &DepositResult{
		TransactionID: txID.String(),
		AccountID:     accountID.String(),
		AssetID:       assetID.String(),
		Amount:        amount.String(),
		Balance:       balance.String(),
	}, nil
}
