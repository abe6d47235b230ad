package wallet

import (
	"fmt"
	"time"

	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// ===========================
// Transfer Use Case
// ===========================

// TransferCommand 轉帳命令
type TransferCommand struct {
	From    string
	To      string
	AssetID string // 空白時使用預設資產
	Amount  string
	Details string
}

// TransferResult 轉帳結果
type TransferResult struct {
	TransactionID string
	From          string
	To            string
	AssetID       string
	Amount        string
	Fee           string
	SenderBalance string
}

// TransferUseCase 轉帳 Use Case
//
// 業務規則：
// - 手續費 = floor(金額 × 轉帳費率)，由發送方支付
// - 發送方扣除 amount + fee，接收方增加 amount
// - 兩筆歷史記錄（OUTGOING / INCOMING）共用同一個 TransactionID
// - 任一步驟失敗，雙方餘額都不變（事務回滾）
type TransferUseCase struct {
	resolver Resolver
}

// NewTransferUseCase 創建 Use Case 實例
func NewTransferUseCase(resolver Resolver) *TransferUseCase {
	return &TransferUseCase{resolver: resolver}
}

// Execute 執行轉帳
//
// 錯誤處理：
// - ErrSelfTransfer: 發送方與接收方相同
// - ErrInsufficientFunds: 餘額不足以支付 amount + fee
// - ErrAccountNotFound / ErrAssetNotSupported / 輸入格式錯誤
func (uc *TransferUseCase) Execute(cmd TransferCommand) (*TransferResult, error) {
	from, err := wallet.NewAccountID(cmd.From)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sender: %w", err)
	}
	to, err := wallet.NewAccountID(cmd.To)
	if err != nil {
		return nil, fmt.Errorf("failed to parse receiver: %w", err)
	}
	if from.Equals(to) {
		return nil, wallet.ErrSelfTransfer.WithContext("account_id", from.String())
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
	fee := settings.Fees.TransferFee(amount)

	txID := wallet.NewTransactionID()
	var sender, receiver *wallet.WalletAccount

	err = uc.resolver.TxManager().InTransaction(func(ctx shared.TransactionContext) error {
		accounts := uc.resolver.Accounts()

		sender, err = accounts.FindByID(ctx, from)
		if err != nil {
			return fmt.Errorf("failed to find sender: %w", err)
		}
		receiver, err = accounts.FindByID(ctx, to)
		if err != nil {
			return fmt.Errorf("failed to find receiver: %w", err)
		}

		if err := sender.SendTransfer(to, assetID, amount, fee, txID); err != nil {
			return err
		}
		if err := receiver.ReceiveTransfer(from, assetID, amount, txID); err != nil {
			return err
		}

		if err := accounts.Update(ctx, sender); err != nil {
			return fmt.Errorf("failed to update sender: %w", err)
		}
		if err := accounts.Update(ctx, receiver); err != nil {
			return fmt.Errorf("failed to update receiver: %w", err)
		}

		now := time.Now()
		outgoing, err := wallet.NewTransactionRecord(
			txID, from, to, assetID, amount, fee, wallet.DirectionOutgoing, cmd.Details, now,
		)
		if err != nil {
			return err
		}
		incoming, err := wallet.NewTransactionRecord(
			txID, to, from, assetID, amount, wallet.ZeroAmount(), wallet.DirectionIncoming, cmd.Details, now,
		)
		if err != nil {
			return err
		}
		return uc.resolver.History().Append(ctx, outgoing, incoming)
	})
	if err != nil {
		return nil, err
	}

	events := append(sender.PullEvents(), receiver.PullEvents()...)
	publishAfterCommit(uc.resolver, events)

	balance, _ := sender.Balance(assetID)
	return &TransferResult{
		TransactionID: txID.String(),
		From:          from.String(),
		To:            to.String(),
		AssetID:       assetID.String(),
		Amount:        amount.String(),
		Fee:           fee.String(),
		SenderBalance: balance.String(),
	}, nil
}
