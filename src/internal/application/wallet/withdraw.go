package wallet

import (
	"fmt"
	"strings"
	"time"

	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// ===========================
// Withdraw Use Case
// ===========================

// WithdrawCommand 提領命令
type WithdrawCommand struct {
	AccountID   string
	AssetID     string // 空白時使用預設資產
	Amount      string
	OptionID    string // 提領方式，不能為空
	Destination string // 外部目的地址，寫入歷史描述
}

// WithdrawResult 提領結果
type WithdrawResult struct {
	TransactionID string
	AccountID     string
	AssetID       string
	Amount        string
	Fee           string
	OptionID      string
	Balance       string
}

// WithdrawUseCase 提領 Use Case
//
// 手續費 = floor(金額 × 提領費率)；帳戶扣除 amount + fee。
type WithdrawUseCase struct {
	resolver Resolver
}

// NewWithdrawUseCase 創建 Use Case 實例
func NewWithdrawUseCase(resolver Resolver) *WithdrawUseCase {
	return &WithdrawUseCase{resolver: resolver}
}

// Execute 執行提領
//
// 錯誤處理：
// - ErrInvalidWithdrawOption: OptionID 為空
// - ErrInsufficientFunds: 餘額不足
// - ErrAccountNotFound / ErrAssetNotSupported / 輸入格式錯誤
func (uc *WithdrawUseCase) Execute(cmd WithdrawCommand) (*WithdrawResult, error) {
	optionID := strings.TrimSpace(cmd.OptionID)
	if optionID == "" {
		return nil, wallet.ErrInvalidWithdrawOption.WithContext("reason", "option ID cannot be empty")
	}
	accountID, err := wallet.NewAccountID(cmd.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse account ID: %w", err)
	}

	settings := uc.resolver.Settings()
	assetID, err := resolveAsset(cmd.AssetID, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to parse asset ID: %w", err)
	}
	amount, err := parsePositiveAmount(cmd.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}
	fee := settings.Fees.WithdrawFee(amount)

	txID := wallet.NewTransactionID()
	var account *wallet.WalletAccount

	err = uc.resolver.TxManager().InTransaction(func(ctx shared.TransactionContext) error {
		account, err = uc.resolver.Accounts().FindByID(ctx, accountID)
		if err != nil {
			return fmt.Errorf("failed to find account: %w", err)
		}
		if err := account.Withdraw(assetID, amount, fee, optionID, txID); err != nil {
			return err
		}
		if err := uc.resolver.Accounts().Update(ctx, account); err != nil {
			return fmt.Errorf("failed to update account: %w", err)
		}

		record, err := wallet.NewTransactionRecord(
			txID, accountID, wallet.AccountID{}, assetID, amount, fee,
			wallet.DirectionWithdraw, withdrawDetails(optionID, cmd.Destination), time.Now(),
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
	return &WithdrawResult{
		TransactionID: txID.String(),
		AccountID:     accountID.String(),
		AssetID:       assetID.String(),
		Amount:        amount.String(),
		Fee:           fee.String(),
		OptionID:      optionID,
		Balance:       balance.String(),
	}, nil
}

func withdrawDetails(optionID, destination string) string {
	if destination == "" {
		return "withdraw via " + optionID
	}
	return "withdraw via " + optionID + " to " + destination
}
