package persistence

import (
	"github.com/shopspring/decimal"

	"github.com/jackyeh168/common_wallet/src/internal/domain/contact"
	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// ===========================
// Domain ↔ GORM Model 轉換函數
// ===========================

// accountToDomain 將帳戶與餘額模型重建為聚合根
//
// 即使來自資料庫也完整驗證（ID 格式、餘額非負），資料損壞時返回 DomainError。
func accountToDomain(model *WalletAccountModel, balances []WalletBalanceModel) (*wallet.WalletAccount, error) {
	accountID, err := wallet.NewAccountID(model.ID)
	if err != nil {
		return nil, wallet.ErrInvalidAccountID.WithContext(
			"id", model.ID,
			"reason", "invalid account ID in database",
		)
	}

	values := make(map[wallet.AssetID]decimal.Decimal, len(balances))
	for _, b := range balances {
		assetID, err := wallet.NewAssetID(b.AssetID)
		if err != nil {
			return nil, wallet.ErrInvalidAssetID.WithContext(
				"account_id", model.ID,
				"asset_id", b.AssetID,
				"reason", "invalid asset ID in database",
			)
		}
		value, err := decimal.NewFromString(b.Amount)
		if err != nil {
			return nil, wallet.ErrCorruptedBalance.WithContext(
				"account_id", model.ID,
				"asset_id", b.AssetID,
				"value", b.Amount,
			)
		}
		values[assetID] = value
	}

	return wallet.ReconstructWalletAccount(accountID, values, model.CreatedAt, model.UpdatedAt, model.Version)
}

// accountToGORM 將聚合根轉換為帳戶模型與餘額模型
func accountToGORM(account *wallet.WalletAccount) (*WalletAccountModel, []WalletBalanceModel) {
	model := &WalletAccountModel{
		ID:        account.AccountID().String(),
		CreatedAt: account.CreatedAt(),
		UpdatedAt: account.UpdatedAt(),
		Version:   account.Version(),
	}

	balances := account.Balances()
	rows := make([]WalletBalanceModel, 0, len(balances))
	for _, asset := range account.Assets() {
		rows = append(rows, WalletBalanceModel{
			AccountID: model.ID,
			AssetID:   asset.String(),
			Amount:    balances[asset].String(),
		})
	}

	return model, rows
}

func recordToDomain(model *TransactionRecordModel) (*wallet.TransactionRecord, error) {
	txID, err := wallet.TransactionIDFromString(model.TransactionID)
	if err != nil {
		return nil, err
	}
	accountID, err := wallet.NewAccountID(model.AccountID)
	if err != nil {
		return nil, err
	}
	var peerID wallet.AccountID
	if model.PeerID != "" {
		if peerID, err = wallet.NewAccountID(model.PeerID); err != nil {
			return nil, err
		}
	}
	assetID, err := wallet.NewAssetID(model.AssetID)
	if err != nil {
		return nil, err
	}
	amount, err := wallet.ParseAmount(model.Amount)
	if err != nil {
		return nil, err
	}
	fee, err := wallet.ParseAmount(model.Fee)
	if err != nil {
		return nil, err
	}

	return wallet.NewTransactionRecord(
		txID,
		accountID,
		peerID,
		assetID,
		amount,
		fee,
		wallet.Direction(model.Direction),
		model.Details,
		model.Timestamp,
	)
}

func recordToGORM(record *wallet.TransactionRecord) *TransactionRecordModel {
	peer := ""
	if !record.PeerID().IsEmpty() {
		peer = record.PeerID().String()
	}
	return &TransactionRecordModel{
		TransactionID: record.TransactionID().String(),
		AccountID:     record.AccountID().String(),
		PeerID:        peer,
		AssetID:       record.AssetID().String(),
		Amount:        record.Amount().String(),
		Fee:           record.Fee().String(),
		Direction:     string(record.Direction()),
		Details:       record.Details(),
		Timestamp:     record.Timestamp(),
	}
}

func contactToDomain(model *ContactModel) (*contact.Contact, error) {
	contactID, err := contact.ContactIDFromString(model.ID)
	if err != nil {
		return nil, err
	}
	ownerID, err := wallet.NewAccountID(model.OwnerID)
	if err != nil {
		return nil, err
	}
	accountID, err := wallet.NewAccountID(model.AccountID)
	if err != nil {
		return nil, err
	}

	return contact.ReconstructContact(
		contactID,
		ownerID,
		accountID,
		model.DisplayName,
		model.CreatedAt,
		model.UpdatedAt,
		model.Version,
	)
}

func contactToGORM(c *contact.Contact) *ContactModel {
	return &ContactModel{
		ID:          c.ContactID().String(),
		OwnerID:     c.OwnerID().String(),
		AccountID:   c.AccountID().String(),
		DisplayName: c.DisplayName(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
		Version:     c.Version(),
	}
}
