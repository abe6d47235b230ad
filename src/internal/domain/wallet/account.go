package wallet

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
)

// ===========================
// WalletAccount 聚合根
// ===========================

// WalletAccount 錢包帳戶聚合根
//
// 聚合邊界：
// - 帳戶 ID（name@domain）
// - 已啟用資產及其餘額
//
// 業務不變條件：
// - 每個餘額 >= 0（由 Amount 值對象與扣款前檢查保證）
// - 只能操作已啟用的資產
//
// 交易記錄不屬於聚合（無界集合），由 HistoryRepository 另外保存。
type WalletAccount struct {
	accountID AccountID
	balances  map[AssetID]Amount

	createdAt time.Time
	updatedAt time.Time
	version   int // 樂觀鎖版本號（載入時的版本）

	events []shared.DomainEvent
}

// NewWalletAccount 創建新的錢包帳戶
//
// 業務規則：
// - 至少啟用一個資產，重複的資產只保留一次
// - 所有餘額初始為 0
// - 發布 AccountCreatedEvent
func NewWalletAccount(accountID AccountID, assets []AssetID) (*WalletAccount, error) {
	if accountID.IsEmpty() {
		return nil, ErrInvalidAccountID.WithContext("reason", "account ID cannot be empty")
	}
	if len(assets) == 0 {
		return nil, ErrInvalidAssetID.WithContext("reason", "at least one asset is required")
	}

	balances := make(map[AssetID]Amount, len(assets))
	for _, asset := range assets {
		if asset.IsEmpty() {
			return nil, ErrInvalidAssetID.WithContext("reason", "asset ID cannot be empty")
		}
		balances[asset] = ZeroAmount()
	}

	now := time.Now()
	account := &WalletAccount{
		accountID: accountID,
		balances:  balances,
		createdAt: now,
		updatedAt: now,
		version:   1,
		events:    make([]shared.DomainEvent, 0),
	}

	account.addEvent(NewAccountCreatedEvent(accountID, account.Assets()))

	return account, nil
}

// ReconstructWalletAccount 從持久化存儲重建聚合根（不發布事件）
//
// 即使來自資料庫也驗證餘額，防止損壞資料污染領域層。
func ReconstructWalletAccount(
	accountID AccountID,
	balances map[AssetID]decimal.Decimal,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*WalletAccount, error) {
	if accountID.IsEmpty() {
		return nil, ErrInvalidAccountID.WithContext("reason", "invalid account ID in database")
	}

	restored := make(map[AssetID]Amount, len(balances))
	for asset, value := range balances {
		amount, err := NewAmount(value)
		if err != nil {
			return nil, ErrCorruptedBalance.WithContext(
				"account_id", accountID.String(),
				"asset_id", asset.String(),
				"value", value.String(),
			)
		}
		restored[asset] = amount
	}

	return &WalletAccount{
		accountID: accountID,
		balances:  restored,
		createdAt: createdAt,
		updatedAt: updatedAt,
		version:   version,
		events:    make([]shared.DomainEvent, 0),
	}, nil
}

// ===========================
// 查詢方法
// ===========================

// AccountID 獲取帳戶 ID
func (a *WalletAccount) AccountID() AccountID {
	return a.accountID
}

// CreatedAt 獲取創建時間
func (a *WalletAccount) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt 獲取最後更新時間
func (a *WalletAccount) UpdatedAt() time.Time {
	return a.updatedAt
}

// Version 返回載入時的版本號（用於樂觀鎖）
func (a *WalletAccount) Version() int {
	return a.version
}

// SupportsAsset 判斷資產是否已啟用
func (a *WalletAccount) SupportsAsset(asset AssetID) bool {
	_, ok := a.balances[asset]
	return ok
}

// Balance 獲取指定資產的餘額
func (a *WalletAccount) Balance(asset AssetID) (Amount, error) {
	balance, ok := a.balances[asset]
	if !ok {
		return Amount{}, a.assetNotSupported(asset)
	}
	return balance, nil
}

// Assets 返回已啟用的資產（依字串排序）
func (a *WalletAccount) Assets() []AssetID {
	assets := make([]AssetID, 0, len(a.balances))
	for asset := range a.balances {
		assets = append(assets, asset)
	}
	sort.Slice(assets, func(i, j int) bool {
		return assets[i].String() < assets[j].String()
	})
	return assets
}

// Balances 返回所有餘額的副本
func (a *WalletAccount) Balances() map[AssetID]Amount {
	copied := make(map[AssetID]Amount, len(a.balances))
	for asset, amount := range a.balances {
		copied[asset] = amount
	}
	return copied
}

// ===========================
// 事件管理
// ===========================

func (a *WalletAccount) addEvent(event shared.DomainEvent) {
	a.events = append(a.events, event)
}

// PullEvents 獲取所有待發布事件並清空列表
//
// 在事務提交後由 Application Layer 調用，交給 EventPublisher 發布。
func (a *WalletAccount) PullEvents() []shared.DomainEvent {
	events := a.events
	a.events = make([]shared.DomainEvent, 0)
	return events
}

// ===========================
// 命令方法（狀態變更）
// ===========================

// Deposit 入金
//
// 業務規則：金額必須 > 0，資產必須已啟用
func (a *WalletAccount) Deposit(asset AssetID, amount Amount, txID TransactionID) error {
	if amount.IsZero() {
		return ErrInvalidAmount.WithContext("reason", "deposit amount must be positive")
	}
	balance, err := a.Balance(asset)
	if err != nil {
		return err
	}

	a.balances[asset] = balance.Add(amount)
	a.touch()
	a.addEvent(NewFundsDepositedEvent(a.accountID, asset, amount, txID))

	return nil
}

// SendTransfer 轉出（扣除 amount + fee）
//
// 業務規則：
// - 不能轉給自己
// - 金額必須 > 0
// - 可用餘額必須 >= amount + fee
func (a *WalletAccount) SendTransfer(
	receiver AccountID,
	asset AssetID,
	amount Amount,
	fee Amount,
	txID TransactionID,
) error {
	if receiver.Equals(a.accountID) {
		return ErrSelfTransfer.WithContext("account_id", a.accountID.String())
	}
	if err := a.debit(asset, amount, fee); err != nil {
		return err
	}

	a.addEvent(NewTransferSentEvent(a.accountID, receiver, asset, amount, fee, txID))
	return nil
}

// ReceiveTransfer 轉入
func (a *WalletAccount) ReceiveTransfer(
	sender AccountID,
	asset AssetID,
	amount Amount,
	txID TransactionID,
) error {
	if sender.Equals(a.accountID) {
		return ErrSelfTransfer.WithContext("account_id", a.accountID.String())
	}
	if amount.IsZero() {
		return ErrInvalidAmount.WithContext("reason", "transfer amount must be positive")
	}
	balance, err := a.Balance(asset)
	if err != nil {
		return err
	}

	a.balances[asset] = balance.Add(amount)
	a.touch()
	a.addEvent(NewTransferReceivedEvent(a.accountID, sender, asset, amount, txID))

	return nil
}

// Withdraw 提領到外部（扣除 amount + fee）
//
// optionID 對應提領方式（例如外部鏈或銀行通道），不能為空。
func (a *WalletAccount) Withdraw(
	asset AssetID,
	amount Amount,
	fee Amount,
	optionID string,
	txID TransactionID,
) error {
	if optionID == "" {
		return ErrInvalidWithdrawOption.WithContext("reason", "option ID cannot be empty")
	}
	if err := a.debit(asset, amount, fee); err != nil {
		return err
	}

	a.addEvent(NewWithdrawRequestedEvent(a.accountID, asset, amount, fee, optionID, txID))
	return nil
}

// debit 扣款共用邏輯，失敗時不改變狀態
func (a *WalletAccount) debit(asset AssetID, amount Amount, fee Amount) error {
	if amount.IsZero() {
		return ErrInvalidAmount.WithContext("reason", "amount must be positive")
	}
	balance, err := a.Balance(asset)
	if err != nil {
		return err
	}

	total := amount.Add(fee)
	remaining, err := balance.Subtract(total)
	if err != nil {
		return ErrInsufficientFunds.WithContext(
			"account_id", a.accountID.String(),
			"asset_id", asset.String(),
			"available", balance.String(),
			"requested", total.String(),
		)
	}

	a.balances[asset] = remaining
	a.touch()
	return nil
}

func (a *WalletAccount) touch() {
	a.updatedAt = time.Now()
}

func (a *WalletAccount) assetNotSupported(asset AssetID) error {
	return ErrAssetNotSupported.WithContext(
		"account_id", a.accountID.String(),
		"asset_id", asset.String(),
	)
}
