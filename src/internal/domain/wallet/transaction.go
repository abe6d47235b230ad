package wallet

import (
	"time"
)

// Direction 交易方向（從記錄所屬帳戶的角度）
type Direction string

const (
	DirectionIncoming Direction = "INCOMING"
	DirectionOutgoing Direction = "OUTGOING"
	DirectionDeposit  Direction = "DEPOSIT"
	DirectionWithdraw Direction = "WITHDRAW"
)

// IsValid 判斷方向是否屬於已知集合
func (d Direction) IsValid() bool {
	switch d {
	case DirectionIncoming, DirectionOutgoing, DirectionDeposit, DirectionWithdraw:
		return true
	default:
		return false
	}
}

// TransactionRecord 交易歷史記錄
//
// 一次轉帳產生兩筆記錄（發送方 OUTGOING、接收方 INCOMING），共用同一個 TransactionID。
// 記錄建立後不可變更。
type TransactionRecord struct {
	transactionID TransactionID
	accountID     AccountID
	peerID        AccountID // 入金 / 提領時為空
	assetID       AssetID
	amount        Amount
	fee           Amount
	direction     Direction
	details       string
	timestamp     time.Time
}

// NewTransactionRecord 建立交易記錄
func NewTransactionRecord(
	transactionID TransactionID,
	accountID AccountID,
	peerID AccountID,
	assetID AssetID,
	amount Amount,
	fee Amount,
	direction Direction,
	details string,
	timestamp time.Time,
) (*TransactionRecord, error) {
	if transactionID.IsEmpty() {
		return nil, ErrInvalidTransactionID.WithContext("reason", "transaction ID cannot be empty")
	}
	if accountID.IsEmpty() {
		return nil, ErrInvalidAccountID.WithContext("reason", "record owner cannot be empty")
	}
	if assetID.IsEmpty() {
		return nil, ErrInvalidAssetID.WithContext("reason", "record asset cannot be empty")
	}
	if !direction.IsValid() {
		return nil, ErrInvalidTransactionID.WithContext("reason", "unknown direction", "direction", string(direction))
	}

	return &TransactionRecord{
		transactionID: transactionID,
		accountID:     accountID,
		peerID:        peerID,
		assetID:       assetID,
		amount:        amount,
		fee:           fee,
		direction:     direction,
		details:       details,
		timestamp:     timestamp,
	}, nil
}

// TransactionID 獲取交易 ID
func (r *TransactionRecord) TransactionID() TransactionID { return r.transactionID }

// AccountID 獲取記錄所屬帳戶
func (r *TransactionRecord) AccountID() AccountID { return r.accountID }

// PeerID 獲取對方帳戶（可能為空）
func (r *TransactionRecord) PeerID() AccountID { return r.peerID }

// AssetID 獲取資產
func (r *TransactionRecord) AssetID() AssetID { return r.assetID }

// Amount 獲取金額
func (r *TransactionRecord) Amount() Amount { return r.amount }

// Fee 獲取手續費
func (r *TransactionRecord) Fee() Amount { return r.fee }

// Direction 獲取方向
func (r *TransactionRecord) Direction() Direction { return r.direction }

// Details 獲取描述
func (r *TransactionRecord) Details() string { return r.details }

// Timestamp 獲取交易時間
func (r *TransactionRecord) Timestamp() time.Time { return r.timestamp }
