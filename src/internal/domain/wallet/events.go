package wallet

import (
	"time"

	"github.com/google/uuid"

	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
)

// ===========================
// 事件種類（封閉集合）
// ===========================

const (
	EventKindAccountUpdated    shared.EventKind = "wallet.account_updated"
	EventKindAccountCreated    shared.EventKind = "wallet.account_created"
	EventKindFundsDeposited    shared.EventKind = "wallet.funds_deposited"
	EventKindTransferSent      shared.EventKind = "wallet.transfer_sent"
	EventKindTransferReceived  shared.EventKind = "wallet.transfer_received"
	EventKindWithdrawRequested shared.EventKind = "wallet.withdraw_requested"
)

// BalanceEventKinds 所有會改變餘額的事件種類
func BalanceEventKinds() []shared.EventKind {
	return []shared.EventKind{
		EventKindAccountCreated,
		EventKindFundsDeposited,
		EventKindTransferSent,
		EventKindTransferReceived,
		EventKindWithdrawRequested,
	}
}

// eventMeta 事件共用的元資料
type eventMeta struct {
	eventID    string
	occurredAt time.Time
}

func newEventMeta() eventMeta {
	return eventMeta{
		eventID:    uuid.New().String(),
		occurredAt: time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (m eventMeta) EventID() string {
	return m.eventID
}

// OccurredAt 實現 DomainEvent 介面
func (m eventMeta) OccurredAt() time.Time {
	return m.occurredAt
}

// ===========================
// AccountUpdateEvent
// ===========================

// AccountUpdateEvent 帳戶已更新的通知事件
//
// 標記事件：除了元資料沒有任何欄位，訂閱者收到後自行重新載入。
type AccountUpdateEvent struct {
	eventMeta
}

// NewAccountUpdateEvent 創建帳戶更新事件
func NewAccountUpdateEvent() *AccountUpdateEvent {
	return &AccountUpdateEvent{eventMeta: newEventMeta()}
}

// EventType 實現 DomainEvent 介面
func (e *AccountUpdateEvent) EventType() shared.EventKind {
	return EventKindAccountUpdated
}

// AggregateID 實現 DomainEvent 介面（不屬於任何聚合）
func (e *AccountUpdateEvent) AggregateID() string {
	return ""
}

// ===========================
// AccountCreatedEvent
// ===========================

// AccountCreatedEvent 錢包帳戶創建事件
type AccountCreatedEvent struct {
	eventMeta
	accountID AccountID
	assets    []AssetID
}

// NewAccountCreatedEvent 創建帳戶創建事件
func NewAccountCreatedEvent(accountID AccountID, assets []AssetID) *AccountCreatedEvent {
	copied := make([]AssetID, len(assets))
	copy(copied, assets)
	return &AccountCreatedEvent{
		eventMeta: newEventMeta(),
		accountID: accountID,
		assets:    copied,
	}
}

// EventType 實現 DomainEvent 介面
func (e *AccountCreatedEvent) EventType() shared.EventKind {
	return EventKindAccountCreated
}

// AggregateID 實現 DomainEvent 介面
func (e *AccountCreatedEvent) AggregateID() string {
	return e.accountID.String()
}

// AccountID 獲取帳戶 ID
func (e *AccountCreatedEvent) AccountID() AccountID {
	return e.accountID
}

// Assets 獲取啟用的資產
func (e *AccountCreatedEvent) Assets() []AssetID {
	copied := make([]AssetID, len(e.assets))
	copy(copied, e.assets)
	return copied
}

// ===========================
// FundsDepositedEvent
// ===========================

// FundsDepositedEvent 入金事件
type FundsDepositedEvent struct {
	eventMeta
	accountID     AccountID
	assetID       AssetID
	amount        Amount
	transactionID TransactionID
}

// NewFundsDepositedEvent 創建入金事件
func NewFundsDepositedEvent(accountID AccountID, assetID AssetID, amount Amount, txID TransactionID) *FundsDepositedEvent {
	return &FundsDepositedEvent{
		eventMeta:     newEventMeta(),
		accountID:     accountID,
		assetID:       assetID,
		amount:        amount,
		transactionID: txID,
	}
}

// EventType 實現 DomainEvent 介面
func (e *FundsDepositedEvent) EventType() shared.EventKind {
	return EventKindFundsDeposited
}

// AggregateID 實現 DomainEvent 介面
func (e *FundsDepositedEvent) AggregateID() string {
	return e.accountID.String()
}

// AssetID 獲取資產 ID
func (e *FundsDepositedEvent) AssetID() AssetID {
	return e.assetID
}

// Amount 獲取金額
func (e *FundsDepositedEvent) Amount() Amount {
	return e.amount
}

// TransactionID 獲取交易 ID
func (e *FundsDepositedEvent) TransactionID() TransactionID {
	return e.transactionID
}

// ===========================
// TransferSentEvent / TransferReceivedEvent
// ===========================

// TransferSentEvent 轉出事件（發送方聚合）
type TransferSentEvent struct {
	eventMeta
	accountID     AccountID
	receiver      AccountID
	assetID       AssetID
	amount        Amount
	fee           Amount
	transactionID TransactionID
}

// NewTransferSentEvent 創建轉出事件
func NewTransferSentEvent(
	accountID AccountID,
	receiver AccountID,
	assetID AssetID,
	amount Amount,
	fee Amount,
	txID TransactionID,
) *TransferSentEvent {
	return &TransferSentEvent{
		eventMeta:     newEventMeta(),
		accountID:     accountID,
		receiver:      receiver,
		assetID:       assetID,
		amount:        amount,
		fee:           fee,
		transactionID: txID,
	}
}

// EventType 實現 DomainEvent 介面
func (e *TransferSentEvent) EventType() shared.EventKind {
	return EventKindTransferSent
}

// AggregateID 實現 DomainEvent 介面
func (e *TransferSentEvent) AggregateID() string {
	return e.accountID.String()
}

// Receiver 獲取收款帳戶
func (e *TransferSentEvent) Receiver() AccountID {
	return e.receiver
}

// Amount 獲取轉帳金額（不含手續費）
func (e *TransferSentEvent) Amount() Amount {
	return e.amount
}

// Fee 獲取手續費
func (e *TransferSentEvent) Fee() Amount {
	return e.fee
}

// TransactionID 獲取交易 ID
func (e *TransferSentEvent) TransactionID() TransactionID {
	return e.transactionID
}

// TransferReceivedEvent 轉入事件（收款方聚合）
type TransferReceivedEvent struct {
	eventMeta
	accountID     AccountID
	sender        AccountID
	assetID       AssetID
	amount        Amount
	transactionID TransactionID
}

// NewTransferReceivedEvent 創建轉入事件
func NewTransferReceivedEvent(
	accountID AccountID,
	sender AccountID,
	assetID AssetID,
	amount Amount,
	txID TransactionID,
) *TransferReceivedEvent {
	return &TransferReceivedEvent{
		eventMeta:     newEventMeta(),
		accountID:     accountID,
		sender:        sender,
		assetID:       assetID,
		amount:        amount,
		transactionID: txID,
	}
}

// EventType 實現 DomainEvent 介面
func (e *TransferReceivedEvent) EventType() shared.EventKind {
	return EventKindTransferReceived
}

// AggregateID 實現 DomainEvent 介面
func (e *TransferReceivedEvent) AggregateID() string {
	return e.accountID.String()
}

// Sender 獲取付款帳戶
func (e *TransferReceivedEvent) Sender() AccountID {
	return e.sender
}

// Amount 獲取金額
func (e *TransferReceivedEvent) Amount() Amount {
	return e.amount
}

// ===========================
// WithdrawRequestedEvent
// ===========================

// WithdrawRequestedEvent 提領事件
type WithdrawRequestedEvent struct {
	eventMeta
	accountID     AccountID
	assetID       AssetID
	amount        Amount
	fee           Amount
	optionID      string
	transactionID TransactionID
}

// NewWithdrawRequestedEvent 創建提領事件
func NewWithdrawRequestedEvent(
	accountID AccountID,
	assetID AssetID,
	amount Amount,
	fee Amount,
	optionID string,
	txID TransactionID,
) *WithdrawRequestedEvent {
	return &WithdrawRequestedEvent{
		eventMeta:     newEventMeta(),
		accountID:     accountID,
		assetID:       assetID,
		amount:        amount,
		fee:           fee,
		optionID:      optionID,
		transactionID: txID,
	}
}

// EventType 實現 DomainEvent 介面
func (e *WithdrawRequestedEvent) EventType() shared.EventKind {
	return EventKindWithdrawRequested
}

// AggregateID 實現 DomainEvent 介面
func (e *WithdrawRequestedEvent) AggregateID() string {
	return e.accountID.String()
}

// OptionID 獲取提領選項
func (e *WithdrawRequestedEvent) OptionID() string {
	return e.optionID
}

// Amount 獲取提領金額
func (e *WithdrawRequestedEvent) Amount() Amount {
	return e.amount
}

// Fee 獲取手續費
func (e *WithdrawRequestedEvent) Fee() Amount {
	return e.fee
}
