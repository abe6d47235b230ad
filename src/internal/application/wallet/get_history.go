package wallet

import (
	"fmt"
	"time"

	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// GetHistoryQuery 查詢交易歷史
//
// Count 為 0 時使用設定的分頁大小；超過上限或 Offset 為負數時返回 ErrInvalidPagination。
type GetHistoryQuery struct {
	AccountID string
	Offset    int
	Count     int
}

// HistoryItem 交易歷史項目（輸出 DTO）
type HistoryItem struct {
	TransactionID string
	Direction     string
	PeerID        string
	AssetID       string
	Amount        string
	Fee           string
	Details       string
	Timestamp     time.Time
}

// GetHistoryResult 查詢交易歷史結果（新到舊）
type GetHistoryResult struct {
	AccountID string
	Offset    int
	Count     int
	Items     []HistoryItem
}

// GetHistoryUseCase 查詢交易歷史 Use Case
type GetHistoryUseCase struct {
	resolver Resolver
}

// NewGetHistoryUseCase 創建 Use Case 實例
func NewGetHistoryUseCase(resolver Resolver) *GetHistoryUseCase {
	return &GetHistoryUseCase{resolver: resolver}
}

// Execute 執行查詢
//
// 錯誤處理：
// - ErrInvalidPagination: offset < 0、count < 0 或 count 超過上限
// - ErrAccountNotFound: 帳戶不存在
func (uc *GetHistoryUseCase) Execute(query GetHistoryQuery) (*GetHistoryResult, error) {
	accountID, err := wallet.NewAccountID(query.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse account ID: %w", err)
	}

	settings := uc.resolver.Settings()
	count := query.Count
	if count == 0 {
		count = settings.HistoryPageSize
	}
	if query.Offset < 0 || count < 0 || count > settings.HistoryMaxPageSize {
		return nil, wallet.ErrInvalidPagination.WithContext(
			"offset", query.Offset,
			"count", query.Count,
			"max", settings.HistoryMaxPageSize,
		)
	}

	if _, err := uc.resolver.Accounts().FindByID(nil, accountID); err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	records, err := uc.resolver.History().FindByAccount(nil, accountID, query.Offset, count)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	items := make([]HistoryItem, 0, len(records))
	for _, r := range records {
		items = append(items, HistoryItem{
			TransactionID: r.TransactionID().String(),
			Direction:     string(r.Direction()),
			PeerID:        r.PeerID().String(),
			AssetID:       r.AssetID().String(),
			Amount:        r.Amount().String(),
			Fee:           r.Fee().String(),
			Details:       r.Details(),
			Timestamp:     r.Timestamp(),
		})
	}

	return &GetHistoryResult{
		AccountID: accountID.String(),
		Offset:    query.Offset,
		Count:     count,
		Items:     items,
	}, nil
}
